package domain

import "time"

// APILog is an append-only audit record of one external call or pipeline
// error. Entries are never updated after creation.
type APILog struct {
	ID              int64          `json:"id,omitempty"`
	Operation       string         `json:"operation"`
	Endpoint        string         `json:"endpoint"`
	StatusCode      *int           `json:"status_code,omitempty"`
	Success         bool           `json:"success"`
	ErrorMessage    string         `json:"error_message,omitempty"`
	RequestData     map[string]any `json:"request_data,omitempty"`
	ResponseData    map[string]any `json:"response_data,omitempty"`
	ExecutionTimeMS *int64         `json:"execution_time_ms,omitempty"`
	Timestamp       time.Time      `json:"timestamp"`
}
