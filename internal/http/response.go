package http

import (
	"briefgen/internal/brief"
	"briefgen/internal/provider"
)

// ErrorResponse is the uniform error envelope for all endpoints.
type ErrorResponse struct {
	Error ErrorInfo `json:"error"`
}

// ErrorInfo carries a stable machine code and a human message.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ProviderErrorResponse adds vendor detail to a failed generation.
type ProviderErrorResponse struct {
	Error    ErrorInfo          `json:"error"`
	Provider provider.ID        `json:"provider"`
	Kind     provider.ErrorKind `json:"kind"`
}

// ParseErrorResponse names the sections the model reply was missing.
type ParseErrorResponse struct {
	Error   ErrorInfo         `json:"error"`
	Missing []brief.SectionID `json:"missing_sections"`
}

// Error codes returned to clients.
const (
	ErrCodeValidation = "VALIDATION_ERROR"
	ErrCodeNotFound   = "NOT_FOUND"
	ErrCodeConflict   = "CONFLICT"
	ErrCodeNoProvider = "NO_PROVIDER_AVAILABLE"
	ErrCodeProvider   = "PROVIDER_ERROR"
	ErrCodeParse      = "PARSE_ERROR"
	ErrCodeInternal   = "INTERNAL_ERROR"
	ErrCodeRateLimit  = "RATE_LIMIT"
)
