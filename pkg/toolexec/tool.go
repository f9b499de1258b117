// Package toolexec provides a small, extensible tool executor for skillbox
// skills: tools are registered by name, discovered, and executed with
// context support.
package toolexec

import "context"

// Tool defines the interface that all executable skills must implement.
type Tool interface {
	// Name returns the unique identifier for this tool.
	// The name is used to register and lookup tools in the registry.
	Name() string

	// Description returns a one-line description of what this tool does.
	Description() string

	// Doc returns the tool's markdown documentation, shown by
	// `skillbox skills docs`.
	Doc() string

	// Execute runs the tool with the given input and returns the output.
	// Implementations must honor ctx cancellation.
	Execute(ctx context.Context, input *Input) (*Output, error)
}

// Input represents the input data passed to a tool for execution.
type Input struct {
	// Params holds the input parameters as key-value pairs.
	Params map[string]any

	// Args holds positional arguments, for tools invoked from the CLI.
	Args []string
}

// NewInput creates a new Input with an initialized parameter map.
func NewInput() *Input {
	return &Input{
		Params: make(map[string]any),
	}
}

// WithParam adds a parameter and returns the Input for chaining.
func (i *Input) WithParam(key string, value any) *Input {
	if i.Params == nil {
		i.Params = make(map[string]any)
	}
	i.Params[key] = value
	return i
}

// WithArgs sets positional arguments and returns the Input for chaining.
func (i *Input) WithArgs(args ...string) *Input {
	i.Args = args
	return i
}

// GetParam retrieves a parameter by key. Returns nil if absent.
func (i *Input) GetParam(key string) any {
	if i.Params == nil {
		return nil
	}
	return i.Params[key]
}

// GetParamString retrieves a string parameter by key.
// Returns empty string if the parameter does not exist or is not a string.
func (i *Input) GetParamString(key string) string {
	if s, ok := i.GetParam(key).(string); ok {
		return s
	}
	return ""
}

// GetParamFloats retrieves a []float64 parameter by key.
// Returns nil if the parameter does not exist or is not a float slice.
func (i *Input) GetParamFloats(key string) []float64 {
	if f, ok := i.GetParam(key).([]float64); ok {
		return f
	}
	return nil
}

// Output represents the result of a tool execution.
type Output struct {
	// Text is the primary human-readable output.
	Text string

	// Result holds structured result data as key-value pairs.
	Result map[string]any
}

// NewOutput creates a new Output with an initialized result map.
func NewOutput(text string) *Output {
	return &Output{
		Text:   text,
		Result: make(map[string]any),
	}
}

// WithResult adds a result entry and returns the Output for chaining.
func (o *Output) WithResult(key string, value any) *Output {
	if o.Result == nil {
		o.Result = make(map[string]any)
	}
	o.Result[key] = value
	return o
}

// ToolInfo describes a registered tool for discovery.
type ToolInfo struct {
	Name        string
	Description string
}
