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

	FieldCampaignID  = "campaign_id"
	FieldRangeKey    = "range_key"
	FieldWindowStart = "window_start"
	FieldPartitionId = "partition_id"
	FieldTickID      = "tick_id"
)
