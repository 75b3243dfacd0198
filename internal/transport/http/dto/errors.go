package dto

// BaseError is the root error envelope for every JSON failure response.
// Code is machine-oriented (snake_case), Message is short human-readable
// text, Details carries an optional explanation fragment.
type BaseError struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details string       `json:"details,omitempty"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// FieldError describes a single field violation for validation failures.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

func NewValidationError(msg string, fields []FieldError) BaseError {
	return BaseError{Code: "validation_error", Message: msg, Fields: fields}
}

func NewNotFoundError(msg string) BaseError {
	return BaseError{Code: "not_found", Message: msg}
}

func NewConflictError(msg string) BaseError {
	return BaseError{Code: "conflict", Message: msg}
}

func NewUnauthorizedError(msg string) BaseError {
	return BaseError{Code: "unauthorized", Message: msg}
}

func NewForbiddenError(msg string) BaseError {
	return BaseError{Code: "forbidden", Message: msg}
}

func NewInternalError(details string) BaseError {
	return BaseError{Code: "internal_error", Message: "internal server error", Details: details}
}
