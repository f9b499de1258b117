// Package errors provides custom error types for skillbox.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrInsufficientArguments = errors.New("insufficient arguments")
	ErrInvalidNumber         = errors.New("invalid number format")
	ErrUnknownOperation      = errors.New("unknown operation")
	ErrDivisionByZero        = errors.New("division by zero is not allowed")
	ErrNoTokenizerConfig     = errors.New("tokenizer config not found")
)

// InvalidNumberError reports an argument that could not be parsed as a number
type InvalidNumberError struct {
	Arg string
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("invalid number format: %q", e.Arg)
}

// Is allows comparison with the ErrInvalidNumber sentinel
func (e *InvalidNumberError) Is(target error) bool {
	if target == ErrInvalidNumber {
		return true
	}
	_, ok := target.(*InvalidNumberError)
	return ok
}

// NewInvalidNumberError creates a new InvalidNumberError
func NewInvalidNumberError(arg string) *InvalidNumberError {
	return &InvalidNumberError{Arg: arg}
}

// UnknownOperationError reports an operation selector outside the known set
type UnknownOperationError struct {
	Operation string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("unknown operation %q (valid operations: add, subtract, multiply, divide)", e.Operation)
}

// Is allows comparison with the ErrUnknownOperation sentinel
func (e *UnknownOperationError) Is(target error) bool {
	if target == ErrUnknownOperation {
		return true
	}
	_, ok := target.(*UnknownOperationError)
	return ok
}

// NewUnknownOperationError creates a new UnknownOperationError
func NewUnknownOperationError(operation string) *UnknownOperationError {
	return &UnknownOperationError{Operation: operation}
}

// DivisionByZeroError reports a zero divisor in a division fold
type DivisionByZeroError struct {
	// Position is the index of the zero element in the input sequence
	Position int
}

func (e *DivisionByZeroError) Error() string {
	return "division by zero is not allowed"
}

// Is allows comparison with the ErrDivisionByZero sentinel
func (e *DivisionByZeroError) Is(target error) bool {
	if target == ErrDivisionByZero {
		return true
	}
	_, ok := target.(*DivisionByZeroError)
	return ok
}

// NewDivisionByZeroError creates a new DivisionByZeroError
func NewDivisionByZeroError(position int) *DivisionByZeroError {
	return &DivisionByZeroError{Position: position}
}

// ModelError represents a model or template related failure
type ModelError struct {
	Message string
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("model error: %s", e.Message)
}

// NewModelError creates a new ModelError
func NewModelError(message string) *ModelError {
	return &ModelError{Message: message}
}

// DownloadError represents a failure fetching a file from the hub
type DownloadError struct {
	URL        string
	StatusCode int
	Message    string
}

func (e *DownloadError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("download failed [%d]: %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("download failed: %s: %s", e.Message, e.URL)
}

// NewDownloadError creates a new DownloadError
func NewDownloadError(message, url string) *DownloadError {
	return &DownloadError{Message: message, URL: url}
}

// NewDownloadErrorWithStatus creates a DownloadError for a non-200 response
func NewDownloadErrorWithStatus(url string, statusCode int) *DownloadError {
	return &DownloadError{URL: url, StatusCode: statusCode}
}
