package dto

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

const (
	ErrCodeUnauthenticated  = "UNAUTHENTICATED"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeForbidden        = "FORBIDDEN"
	ErrCodeValidation       = "VALIDATION_FAILED"
	ErrCodeConflict         = "CONFLICT"
	ErrCodeInvalidOperation = "INVALID_OPERATION"
	ErrCodeInternal         = "INTERNAL"
)
