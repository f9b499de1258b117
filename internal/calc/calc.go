// Package calc implements the arithmetic skill: operation dispatch and
// left-fold reductions over a sequence of numbers.
package calc

import (
	"math"
	"strconv"
	"strings"

	apierrors "github.com/thangchung/skillbox/internal/errors"
)

// Operation identifies one of the supported reductions
type Operation string

// Supported operations
const (
	OpAdd      Operation = "add"
	OpSubtract Operation = "subtract"
	OpMultiply Operation = "multiply"
	OpDivide   Operation = "divide"
)

// Operations returns all supported operations in display order
func Operations() []Operation {
	return []Operation{OpAdd, OpSubtract, OpMultiply, OpDivide}
}

// ParseOperation maps a selector string to an Operation.
// Matching is case-insensitive. Unknown selectors are rejected before
// any reduction runs.
func ParseOperation(s string) (Operation, error) {
	switch Operation(strings.ToLower(s)) {
	case OpAdd:
		return OpAdd, nil
	case OpSubtract:
		return OpSubtract, nil
	case OpMultiply:
		return OpMultiply, nil
	case OpDivide:
		return OpDivide, nil
	default:
		return "", apierrors.NewUnknownOperationError(s)
	}
}

// ParseNumbers converts decimal literals to floats, failing on the first
// argument that does not parse.
func ParseNumbers(args []string) ([]float64, error) {
	numbers := make([]float64, 0, len(args))
	for _, arg := range args {
		n, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, apierrors.NewInvalidNumberError(arg)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

// Evaluate dispatches to exactly one reduction for the given operation.
func Evaluate(op Operation, numbers []float64) (float64, error) {
	switch op {
	case OpAdd:
		return Add(numbers...), nil
	case OpSubtract:
		return Subtract(numbers...), nil
	case OpMultiply:
		return Multiply(numbers...), nil
	case OpDivide:
		return Divide(numbers...)
	default:
		return 0, apierrors.NewUnknownOperationError(string(op))
	}
}

// Add returns the sum of all numbers. An empty sequence sums to 0.
func Add(numbers ...float64) float64 {
	var sum float64
	for _, n := range numbers {
		sum += n
	}
	return sum
}

// Subtract folds subtraction left to right: ((a1 - a2) - a3) - ...
// An empty sequence yields 0; a single element is returned as-is.
func Subtract(numbers ...float64) float64 {
	if len(numbers) == 0 {
		return 0
	}
	result := numbers[0]
	for _, n := range numbers[1:] {
		result -= n
	}
	return result
}

// Multiply folds multiplication left to right.
// An empty sequence yields 0, not the multiplicative identity. This is the
// contract of the original calculator skill and is preserved as-is.
func Multiply(numbers ...float64) float64 {
	if len(numbers) == 0 {
		return 0
	}
	result := numbers[0]
	for _, n := range numbers[1:] {
		result *= n
	}
	return result
}

// Divide folds division left to right: ((a1 / a2) / a3) / ...
// An empty sequence yields 0; a single element is returned as-is. A zero
// anywhere after the first element fails before any division is performed.
func Divide(numbers ...float64) (float64, error) {
	if len(numbers) == 0 {
		return 0, nil
	}
	if len(numbers) == 1 {
		return numbers[0], nil
	}

	for i, n := range numbers[1:] {
		if n == 0 {
			return 0, apierrors.NewDivisionByZeroError(i + 1)
		}
	}

	result := numbers[0]
	for _, n := range numbers[1:] {
		result /= n
	}
	return result, nil
}

// FormatResult renders a result the way the calculator skill prints floats:
// integral values keep a trailing ".0" (8.0, 5.0), everything else uses the
// shortest decimal form (2.5). Magnitudes at or above 1e16, or below 1e-4,
// switch to exponent form (1e+21, 5e-05).
func FormatResult(v float64) string {
	abs := math.Abs(v)
	if abs >= 1e16 || (abs > 0 && abs < 1e-4) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") && !strings.Contains(s, "Inf") && s != "NaN" {
		s += ".0"
	}
	return s
}
