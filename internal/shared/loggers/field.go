package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldUserID      = "user_id"
	FieldFuncID      = "func_id"
	FieldBatchID     = "batch_id"
	FieldRecordCount = "record_count"
	FieldReport      = "report"

	FieldPartitionId = "partition_id"
)
