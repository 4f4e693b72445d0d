package models

import "fmt"

// ErrorType represents different categories of errors
type ErrorType int

const (
	ErrParse ErrorType = iota
	ErrMissingField
	ErrUnknownVariable
	ErrFilter
	ErrSigning
	ErrFileOp
	ErrInvalidConfig
)

// String returns the string representation of ErrorType
func (e ErrorType) String() string {
	switch e {
	case ErrParse:
		return "Parse"
	case ErrMissingField:
		return "MissingField"
	case ErrUnknownVariable:
		return "UnknownVariable"
	case ErrFilter:
		return "Filter"
	case ErrSigning:
		return "Signing"
	case ErrFileOp:
		return "FileOp"
	case ErrInvalidConfig:
		return "InvalidConfig"
	default:
		return "Unknown"
	}
}

// IndexError represents an error during index conversion
type IndexError struct {
	Type ErrorType
	Path string
	Err  error
}

// Error implements the error interface
func (e *IndexError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Path, e.Err)
	}
	return fmt.Sprintf("[%s] %v", e.Type, e.Err)
}

// Unwrap returns the wrapped error
func (e *IndexError) Unwrap() error {
	return e.Err
}

// MissingFieldError is returned when a required field cannot be resolved.
// Path is the full dotted path that was requested.
type MissingFieldError struct {
	Path string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("failed to find %s", e.Path)
}

// UnknownVariableError is returned when a ${name} placeholder has no value
// in the active variable scope.
type UnknownVariableError struct {
	Name string
	Path string
}

func (e *UnknownVariableError) Error() string {
	return fmt.Sprintf("unknown variable %q in %s", e.Name, e.Path)
}

// NewMissingField wraps a MissingFieldError for path.
func NewMissingField(path string) error {
	return &IndexError{
		Type: ErrMissingField,
		Err:  &MissingFieldError{Path: path},
	}
}

// NewUnknownVariable wraps an UnknownVariableError for name at path.
func NewUnknownVariable(name, path string) error {
	return &IndexError{
		Type: ErrUnknownVariable,
		Err:  &UnknownVariableError{Name: name, Path: path},
	}
}
