package models

// InvocationBatch is one ingested set of records, stored as a unit and
// deduplicated by BatchID.
type InvocationBatch struct {
	BatchID string
	UserID  string
	Records []InvocationRecord
}
