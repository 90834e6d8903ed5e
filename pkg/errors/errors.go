package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigMissing    ErrorCode = "CONFIG_MISSING"
	ErrConfigShape      ErrorCode = "CONFIG_SHAPE"
	ErrConfigInvalid    ErrorCode = "CONFIG_INVALID"
	ErrConfigLoad       ErrorCode = "CONFIG_LOAD"
	ErrDistFileNotFound ErrorCode = "DIST_NOT_FOUND"
	ErrProcessorUnknown ErrorCode = "PROCESSOR_UNKNOWN"

	// Rendering errors
	ErrRenderInvalid ErrorCode = "RENDER_INVALID"
	ErrPrompt        ErrorCode = "PROMPT"

	// FileSystem errors
	ErrFileRead  ErrorCode = "FILE_READ"
	ErrFileWrite ErrorCode = "FILE_WRITE"
	ErrFileCopy  ErrorCode = "FILE_COPY"
	ErrDirCreate ErrorCode = "DIR_CREATE"
)

// Category groups error codes the way callers react to them
type Category string

const (
	CategoryGeneral Category = "general"
	CategoryConfig  Category = "config"
	CategoryIO      Category = "io"
	CategoryRender  Category = "render"
	CategoryPrompt  Category = "prompt"
)

var categories = map[ErrorCode]Category{
	ErrConfigMissing:    CategoryConfig,
	ErrConfigShape:      CategoryConfig,
	ErrConfigInvalid:    CategoryConfig,
	ErrConfigLoad:       CategoryConfig,
	ErrDistFileNotFound: CategoryConfig,
	ErrProcessorUnknown: CategoryConfig,
	ErrRenderInvalid:    CategoryRender,
	ErrPrompt:           CategoryPrompt,
	ErrFileRead:         CategoryIO,
	ErrFileWrite:        CategoryIO,
	ErrFileCopy:         CategoryIO,
	ErrDirCreate:        CategoryIO,
}

// Category returns the category an error code belongs to
func (c ErrorCode) Category() Category {
	if cat, ok := categories[c]; ok {
		return cat
	}
	return CategoryGeneral
}

// DistfileError represents a structured error with code and details
type DistfileError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DistfileError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DistfileError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DistfileError) Is(target error) bool {
	var targetErr *DistfileError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DistfileError with the given code and message
func New(code ErrorCode, message string) *DistfileError {
	return &DistfileError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DistfileError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DistfileError {
	return &DistfileError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DistfileError
func Wrap(err error, code ErrorCode, message string) *DistfileError {
	if err == nil {
		return nil
	}
	return &DistfileError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DistfileError {
	if err == nil {
		return nil
	}
	return &DistfileError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DistfileError) WithDetail(key string, value interface{}) *DistfileError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *DistfileError) WithDetails(details map[string]interface{}) *DistfileError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var distErr *DistfileError
	if errors.As(err, &distErr) {
		return distErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DistfileError
func GetErrorCode(err error) ErrorCode {
	var distErr *DistfileError
	if errors.As(err, &distErr) {
		return distErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DistfileError
func GetErrorDetails(err error) map[string]interface{} {
	var distErr *DistfileError
	if errors.As(err, &distErr) {
		return distErr.Details
	}
	return nil
}

// IsCategory reports whether err carries a code of the given category
func IsCategory(err error, cat Category) bool {
	var distErr *DistfileError
	if errors.As(err, &distErr) {
		return distErr.Code.Category() == cat
	}
	return false
}

// IsConfigError reports whether err is a configuration error. Configuration
// errors are raised before any filesystem mutation for the entry.
func IsConfigError(err error) bool {
	return IsCategory(err, CategoryConfig)
}

// IsIOError reports whether err wraps a failed read, write, copy or mkdir
func IsIOError(err error) bool {
	return IsCategory(err, CategoryIO)
}
