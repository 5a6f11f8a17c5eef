package models

// Response is the generic API envelope. Success is 1 for successful
// operations and 0 otherwise; Errors carries per-field validation
// messages when the failure happened before any store access.
type Response struct {
	Success      int               `json:"success"`
	ErrorCode    string            `json:"error_code,omitempty"`
	ErrorDetails string            `json:"error_details,omitempty"`
	Errors       map[string]string `json:"errors,omitempty"`
	Data         interface{}       `json:"data,omitempty"`
}
