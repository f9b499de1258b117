package toolexec

import (
	"context"
	"fmt"
	"time"
)

// Executor runs registered tools with timeout enforcement and panic recovery.
type Executor struct {
	registry Registry
	timeout  time.Duration
}

// ExecutorOption configures an Executor
type ExecutorOption func(*Executor)

// WithTimeout sets the default per-execution timeout.
// Zero disables the executor timeout (the caller's context still applies).
func WithTimeout(timeout time.Duration) ExecutorOption {
	return func(e *Executor) {
		e.timeout = timeout
	}
}

// NewExecutor creates a new Executor over the given registry.
func NewExecutor(registry Registry, opts ...ExecutorOption) *Executor {
	e := &Executor{
		registry: registry,
		timeout:  30 * time.Second,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry returns the registry the executor resolves tools from.
func (e *Executor) Registry() Registry {
	return e.registry
}

// Execute runs a tool synchronously with the given input.
// It blocks until the tool completes or the context is cancelled.
func (e *Executor) Execute(ctx context.Context, toolName string, input *Input) (*Output, error) {
	tool, err := e.registry.Get(toolName)
	if err != nil {
		return nil, err
	}

	// Apply the executor timeout only when the caller set no deadline
	if e.timeout > 0 {
		if _, hasDeadline := ctx.Deadline(); !hasDeadline {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, e.timeout)
			defer cancel()
		}
	}

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %s", ErrExecutionCancelled, toolName)
	default:
	}

	return e.executeWithRecovery(ctx, tool, toolName, input)
}

// ExecuteAsync runs a tool asynchronously and returns a channel that
// receives exactly one Result and then closes.
func (e *Executor) ExecuteAsync(ctx context.Context, toolName string, input *Input) <-chan *Result {
	resultCh := make(chan *Result, 1)

	go func() {
		defer close(resultCh)

		start := time.Now()
		output, err := e.Execute(ctx, toolName, input)
		resultCh <- &Result{
			ToolName: toolName,
			Output:   output,
			Error:    err,
			Duration: time.Since(start),
		}
	}()

	return resultCh
}

// executeWithRecovery converts tool panics into PanicError
func (e *Executor) executeWithRecovery(ctx context.Context, tool Tool, toolName string, input *Input) (output *Output, err error) {
	defer func() {
		if r := recover(); r != nil {
			output = nil
			err = &PanicError{ToolName: toolName, Value: r}
		}
	}()

	return tool.Execute(ctx, input)
}
