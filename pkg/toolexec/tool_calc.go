package toolexec

import (
	"context"

	"github.com/thangchung/skillbox/internal/calc"
)

// CalculatorTool exposes the arithmetic skill through the executor.
// It accepts either positional arguments ("add", "5", "3") or the
// "operation" and "numbers" parameters.
type CalculatorTool struct{}

// NewCalculatorTool creates a new CalculatorTool
func NewCalculatorTool() *CalculatorTool {
	return &CalculatorTool{}
}

// Name returns the tool identifier
func (t *CalculatorTool) Name() string {
	return "calculator"
}

// Description returns a one-line summary
func (t *CalculatorTool) Description() string {
	return "Basic arithmetic: add, subtract, multiply, divide over a list of numbers"
}

// Doc returns the tool's markdown documentation
func (t *CalculatorTool) Doc() string {
	return `# Calculator

Basic arithmetic operations over a sequence of numbers.

## Operations

- **add** — sum of all numbers
- **subtract** — subtract subsequent numbers from the first
- **multiply** — multiply all numbers together
- **divide** — divide the first number by subsequent numbers

All folds run left to right. Division by zero is rejected.

## Examples

    skillbox skills run calculator add 5 3
    skillbox skills run calculator divide 20 4
`
}

// Execute evaluates the requested operation
func (t *CalculatorTool) Execute(ctx context.Context, input *Input) (*Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	opName := input.GetParamString("operation")
	numbers := input.GetParamFloats("numbers")

	if len(input.Args) > 0 {
		opName = input.Args[0]
		parsed, err := calc.ParseNumbers(input.Args[1:])
		if err != nil {
			return nil, err
		}
		numbers = parsed
	}

	op, err := calc.ParseOperation(opName)
	if err != nil {
		return nil, err
	}

	result, err := calc.Evaluate(op, numbers)
	if err != nil {
		return nil, err
	}

	return NewOutput(calc.FormatResult(result)).
		WithResult("operation", string(op)).
		WithResult("value", result), nil
}
