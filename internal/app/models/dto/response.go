package dto

import "time"

// APIResponse is the envelope of every successful response
type APIResponse struct {
	Success   bool         `json:"success" example:"true"`
	Message   string       `json:"message,omitempty" example:"Operation completed successfully"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewSuccessResponse wraps data in a successful APIResponse
func NewSuccessResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// SuccessResponse represents a message-only success payload
type SuccessResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports the state of the service and its backing stores
type HealthResponse struct {
	Status    string            `json:"status" example:"OK"`
	Code      ErrorCode         `json:"code,omitempty" example:"SRV_004"`
	Message   string            `json:"message" example:"Server is running"`
	Checks    map[string]string `json:"checks,omitempty"`
	CheckedAt time.Time         `json:"checked_at"`
}
