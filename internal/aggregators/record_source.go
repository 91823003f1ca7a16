package aggregators

import (
	"iter"
	"slices"

	"function-insights/internal/models"
)

// RecordSource yields invocation records in no particular order.
type RecordSource interface {
	Records() iter.Seq[models.InvocationRecord]
}

// functionScoped is implemented by sources that can narrow a scan to the
// records of a single function.
type functionScoped interface {
	RecordsOf(funcID string) iter.Seq[models.InvocationRecord]
}

// RecordSlice adapts an in-memory slice to RecordSource.
type RecordSlice []models.InvocationRecord

func (s RecordSlice) Records() iter.Seq[models.InvocationRecord] {
	return slices.Values(s)
}

// RecordIndex groups well-formed records by function id in one pass over a
// source. Each group keeps the source order, so any per-function scan over the
// index visits exactly the records, in the same order, that a filtered scan of
// the source would. Floating point sums are therefore bit-identical.
//
// A RecordIndex is immutable once built and safe for concurrent readers.
type RecordIndex struct {
	byFunc  map[string][]models.InvocationRecord
	funcIDs []string // first-seen order
	size    int
	skipped int
}

// NewRecordIndex scans src once. Malformed records are dropped and counted.
func NewRecordIndex(src RecordSource) *RecordIndex {
	idx := &RecordIndex{byFunc: make(map[string][]models.InvocationRecord)}
	for record := range src.Records() {
		if record.IsMalformed() {
			idx.skipped++
			continue
		}
		group, seen := idx.byFunc[record.FuncID]
		if !seen {
			idx.funcIDs = append(idx.funcIDs, record.FuncID)
		}
		idx.byFunc[record.FuncID] = append(group, record)
		idx.size++
	}
	return idx
}

// Records yields every indexed record, grouped by function in first-seen order.
func (idx *RecordIndex) Records() iter.Seq[models.InvocationRecord] {
	return func(yield func(models.InvocationRecord) bool) {
		for _, funcID := range idx.funcIDs {
			for _, record := range idx.byFunc[funcID] {
				if !yield(record) {
					return
				}
			}
		}
	}
}

// RecordsOf yields the records of one function in source order.
func (idx *RecordIndex) RecordsOf(funcID string) iter.Seq[models.InvocationRecord] {
	return slices.Values(idx.byFunc[funcID])
}

// Len is the number of well-formed records in the index.
func (idx *RecordIndex) Len() int { return idx.size }

// Skipped is the number of malformed records dropped while building.
func (idx *RecordIndex) Skipped() int { return idx.skipped }

// indexed returns src unchanged when it can already be scanned per function,
// otherwise an index built from it.
func indexed(src RecordSource) RecordSource {
	if _, ok := src.(functionScoped); ok {
		return src
	}
	return NewRecordIndex(src)
}
