package events

// InvocationBatchStoredEvent announces that a batch of invocation records has
// been durably stored for a user. Consumers use it to drop derived state, such
// as the user's cached record index, that no longer reflects storage.
//
// Example JSON:
//
//	{
//	  "userId": "abc123",
//	  "batchId": "01ARZ3NDEKTSV4RRFFQ69G5FAV",
//	  "recordCount": 250
//	}
type InvocationBatchStoredEvent struct {
	UserID      string `json:"userId"`
	BatchID     string `json:"batchId"`
	RecordCount int    `json:"recordCount"`
}
