package entity

import "fmt"

// ErrorKind classifies a failed generation for the HTTP boundary.
type ErrorKind string

const (
	// ErrKindConfiguration — no usable API credential; nothing was attempted.
	ErrKindConfiguration ErrorKind = "configuration"
	// ErrKindValidation — the request payload is missing a required field.
	ErrKindValidation ErrorKind = "validation"
	// ErrKindUpstream — the completion API call failed.
	ErrKindUpstream ErrorKind = "upstream"
)

// GenerationError is the single failure shape of an orchestration call.
type GenerationError struct {
	Kind    ErrorKind
	Message string
}

func (e *GenerationError) Error() string {
	return e.Message
}

func NewConfigurationError(msg string) *GenerationError {
	return &GenerationError{Kind: ErrKindConfiguration, Message: msg}
}

func NewValidationError(field string) *GenerationError {
	return &GenerationError{
		Kind:    ErrKindValidation,
		Message: fmt.Sprintf("Missing required field: %s", field),
	}
}

func NewUpstreamError(err error) *GenerationError {
	return &GenerationError{Kind: ErrKindUpstream, Message: err.Error()}
}
