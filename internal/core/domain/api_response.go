package domain

import "time"

// APIResponse is an immutable record of one external API call. Transport
// failures are encoded by the adapter as a synthetic 500 response, so a
// response object exists for every completed call.
type APIResponse struct {
	StatusCode      int               `json:"status_code"`
	Data            map[string]any    `json:"data"`
	Headers         map[string]string `json:"headers"`
	ExecutionTimeMS int64             `json:"execution_time_ms"`
	Timestamp       time.Time         `json:"timestamp"`
}

// NewAPIResponse captures a response outcome, stamping the capture time.
func NewAPIResponse(statusCode int, data map[string]any, headers map[string]string, executionTimeMS int64) *APIResponse {
	return &APIResponse{
		StatusCode:      statusCode,
		Data:            data,
		Headers:         headers,
		ExecutionTimeMS: executionTimeMS,
		Timestamp:       time.Now(),
	}
}

// IsSuccessful reports whether the HTTP status is in the 2xx range.
func (r *APIResponse) IsSuccessful() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// HasData reports whether the call produced a non-empty payload.
func (r *APIResponse) HasData() bool {
	return len(r.Data) > 0
}
