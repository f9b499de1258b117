package toolexec

import (
	"context"
	"errors"
	"testing"

	apierrors "github.com/thangchung/skillbox/internal/errors"
)

func TestCalculatorTool_Params(t *testing.T) {
	tool := NewCalculatorTool()

	cases := []struct {
		name      string
		operation string
		numbers   []float64
		expected  string
	}{
		{"add", "add", []float64{5, 3}, "8.0"},
		{"subtract fold", "subtract", []float64{10, 4, 1}, "5.0"},
		{"multiply", "multiply", []float64{6, 7}, "42.0"},
		{"divide", "divide", []float64{20, 4}, "5.0"},
		{"divide fractional", "divide", []float64{5, 2}, "2.5"},
		{"empty multiply", "multiply", nil, "0.0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := NewInput().
				WithParam("operation", tc.operation).
				WithParam("numbers", tc.numbers)

			out, err := tool.Execute(context.Background(), input)
			if err != nil {
				t.Fatalf("Execute returned error: %v", err)
			}
			if out.Text != tc.expected {
				t.Errorf("Expected output '%s', got '%s'", tc.expected, out.Text)
			}
		})
	}
}

func TestCalculatorTool_Args(t *testing.T) {
	tool := NewCalculatorTool()

	out, err := tool.Execute(context.Background(), NewInput().WithArgs("add", "1", "2", "3"))
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if out.Text != "6.0" {
		t.Errorf("Expected '6.0', got '%s'", out.Text)
	}
}

func TestCalculatorTool_Errors(t *testing.T) {
	tool := NewCalculatorTool()

	cases := []struct {
		name     string
		args     []string
		sentinel error
	}{
		{"unknown operation", []string{"modulo", "10", "3"}, apierrors.ErrUnknownOperation},
		{"invalid number", []string{"add", "abc"}, apierrors.ErrInvalidNumber},
		{"division by zero", []string{"divide", "1", "0"}, apierrors.ErrDivisionByZero},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tool.Execute(context.Background(), NewInput().WithArgs(tc.args...))
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !errors.Is(err, tc.sentinel) {
				t.Errorf("Expected sentinel %v, got %v", tc.sentinel, err)
			}
		})
	}
}

func TestCalculatorTool_InvalidNumberBeforeOperation(t *testing.T) {
	// A bad number is reported even when the operation is also unknown
	tool := NewCalculatorTool()

	_, err := tool.Execute(context.Background(), NewInput().WithArgs("modulo", "abc"))
	if !errors.Is(err, apierrors.ErrInvalidNumber) {
		t.Errorf("Expected invalid-number error to win, got %v", err)
	}
}
