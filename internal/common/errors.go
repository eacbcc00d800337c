package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
	ErrDatabase     = errors.New("database error")
	ErrValidation   = errors.New("validation failed")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Input error reasons. Only input errors are fatal to a parse job; everything
// else is expressed through the result data (absent fields, low confidence).
const (
	ReasonDecodeFailed = "decode_failed"
	ReasonEmptyInput   = "empty_input"
	ReasonNoTemplates  = "no_templates"
	ReasonBadFormat    = "unsupported_format"
)

// NewInputError builds the fatal error kind for malformed or empty input.
// It unwraps to ErrInvalidInput so callers can errors.Is on it.
func NewInputError(reason string, cause error) *AppError {
	if cause == nil {
		return NewAppError("INPUT_ERROR", reason, ErrInvalidInput)
	}
	return NewAppError("INPUT_ERROR", reason, errors.Join(ErrInvalidInput, cause))
}

// IsInputError reports whether err is (or wraps) a fatal input error.
func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}
