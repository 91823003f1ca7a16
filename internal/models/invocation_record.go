package models

import "math"

// InvocationRecord is one logged function call. Records are appended by the
// ingestion layer and never modified afterwards.
type InvocationRecord struct {
	FuncID      string  `json:"funcID"`
	Timestamp   int64   `json:"timestamp"` // epoch milliseconds
	Latency     float64 `json:"latency"`   // milliseconds
	IsColdStart bool    `json:"isColdStart"`
}

// MissingTimestamp stands in for a timestamp that was absent or unreadable.
// The epoch itself is a valid instant.
const MissingTimestamp int64 = -1

// IsMalformed reports whether the record lacks a function id or a timestamp.
// Any negative timestamp counts as missing.
func (r *InvocationRecord) IsMalformed() bool {
	return r.FuncID == "" || r.Timestamp < 0
}

// LatencyContribution is the latency to add to running sums. Negative,
// NaN and infinite values contribute nothing.
func (r *InvocationRecord) LatencyContribution() float64 {
	if math.IsNaN(r.Latency) || math.IsInf(r.Latency, 0) || r.Latency < 0 {
		return 0
	}
	return r.Latency
}
