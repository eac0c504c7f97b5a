package dto

import "time"

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message" example:"Student deleted successfully"`
}

// StructuredResponse wraps operational payloads such as the health report.
type StructuredResponse struct {
	Success   bool         `json:"success" example:"true"`
	Message   string       `json:"message" example:"Operation completed successfully"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewStructuredResponse creates a standard structured API response
func NewStructuredResponse(data interface{}, message string) StructuredResponse {
	return StructuredResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
}

// NewStructuredErrorResponse creates a failed structured response.
func NewStructuredErrorResponse(detail *ErrorDetail, message string) StructuredResponse {
	return StructuredResponse{
		Success:   false,
		Message:   message,
		Error:     detail,
		Timestamp: time.Now().UTC(),
	}
}

// HealthData is the payload of the health endpoint.
type HealthData struct {
	Status string `json:"status" example:"ok"`
	Store  string `json:"store" example:"memory"`
}
