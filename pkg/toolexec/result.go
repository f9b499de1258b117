package toolexec

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for common tool execution cases
var (
	// ErrToolNotFound is returned when a requested tool is not registered.
	ErrToolNotFound = errors.New("tool not found")

	// ErrNilTool is returned when attempting to register a nil tool.
	ErrNilTool = errors.New("cannot register nil tool")

	// ErrDuplicateTool is returned when registering a name that already exists.
	ErrDuplicateTool = errors.New("tool already registered")

	// ErrExecutionCancelled is returned when execution is cancelled via context.
	ErrExecutionCancelled = errors.New("execution cancelled")
)

// ToolNotFoundError carries the missing tool name
type ToolNotFoundError struct {
	ToolName string
}

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("tool not found: %q", e.ToolName)
}

// Is allows comparison with the ErrToolNotFound sentinel
func (e *ToolNotFoundError) Is(target error) bool {
	if target == ErrToolNotFound {
		return true
	}
	_, ok := target.(*ToolNotFoundError)
	return ok
}

// NewToolNotFoundError creates a new ToolNotFoundError
func NewToolNotFoundError(name string) *ToolNotFoundError {
	return &ToolNotFoundError{ToolName: name}
}

// DuplicateToolError carries the conflicting tool name
type DuplicateToolError struct {
	ToolName string
}

func (e *DuplicateToolError) Error() string {
	return fmt.Sprintf("tool already registered: %q", e.ToolName)
}

// Is allows comparison with the ErrDuplicateTool sentinel
func (e *DuplicateToolError) Is(target error) bool {
	if target == ErrDuplicateTool {
		return true
	}
	_, ok := target.(*DuplicateToolError)
	return ok
}

// NewDuplicateToolError creates a new DuplicateToolError
func NewDuplicateToolError(name string) *DuplicateToolError {
	return &DuplicateToolError{ToolName: name}
}

// PanicError wraps a panic recovered during tool execution
type PanicError struct {
	ToolName string
	Value    any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("tool %q panicked: %v", e.ToolName, e.Value)
}

// Result represents the outcome of an asynchronous tool execution.
type Result struct {
	// ToolName is the name of the tool that was executed.
	ToolName string

	// Output contains the tool's output if execution succeeded.
	Output *Output

	// Error contains any error that occurred during execution.
	Error error

	// Duration is the time taken for execution.
	Duration time.Duration
}

// IsSuccess returns true if the result represents a successful execution.
func (r *Result) IsSuccess() bool {
	return r.Error == nil
}
