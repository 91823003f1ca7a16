package ids

import (
	"github.com/oklog/ulid/v2"
)

// NewRequestID generates a request id when the caller did not send one.
var NewRequestID = func() string {
	return ulid.Make().String()
}

// NewBatchID names an invocation batch ingested without an idempotency key.
var NewBatchID = func() string {
	return ulid.Make().String()
}

// IsULID reports whether s is a canonical ULID string.
func IsULID(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}
