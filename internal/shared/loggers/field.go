package loggers

// Keys used on structured log events. Values are snake_case so log queries match metric labels.
const (
	// process
	FieldApp       = "app"
	FieldComponent = "component"

	// request
	FieldRequestID  = "request_id"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"
	FieldUserAgent  = "user_agent"
	FieldDuration   = "duration"
	FieldBytes      = "bytes"

	// failures
	FieldErrorCode  = "error_code"
	FieldErrorStack = "error_stack"

	// analysis run
	FieldSummaryID = "summary_id"
	FieldServer    = "server"
	FieldVersion   = "version"

	// export worker that handled a SummaryCreatedEvent
	FieldPartitionID = "partition_id"
)
