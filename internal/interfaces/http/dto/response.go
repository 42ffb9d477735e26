package dto

import "time"

// Response is the uniform API envelope
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
	Meta    *Meta      `json:"meta,omitempty"`
}

// ErrorInfo carries error details in the envelope
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Meta carries response metadata
type Meta struct {
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
}

// MutationOutcome is the wire form of an invoice mutation result. Error
// maps field names to their validation messages; Message is the store
// rejection, if any. Both empty means the mutation succeeded.
type MutationOutcome struct {
	Error    map[string][]string `json:"error,omitempty"`
	Message  string              `json:"message,omitempty"`
	Redirect string              `json:"redirect,omitempty"`
}

// SuccessResponse creates a success envelope
func SuccessResponse(data any) Response {
	return Response{
		Success: true,
		Data:    data,
		Meta:    &Meta{Timestamp: time.Now()},
	}
}

// ErrorResponse creates an error envelope
func ErrorResponse(code, message string) Response {
	return Response{
		Success: false,
		Error:   &ErrorInfo{Code: code, Message: message},
		Meta:    &Meta{Timestamp: time.Now()},
	}
}

// ErrorResponseWithDetails creates an error envelope with details attached
func ErrorResponseWithDetails(code, message string, details any) Response {
	return Response{
		Success: false,
		Error:   &ErrorInfo{Code: code, Message: message, Details: details},
		Meta:    &Meta{Timestamp: time.Now()},
	}
}
