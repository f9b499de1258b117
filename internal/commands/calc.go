package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thangchung/skillbox/internal/calc"
	"github.com/thangchung/skillbox/internal/config"
	apierrors "github.com/thangchung/skillbox/internal/errors"
	"github.com/thangchung/skillbox/internal/tui"
)

var (
	calcCopyFlag        bool
	calcInteractiveFlag bool
)

var calcCmd = &cobra.Command{
	Use:   "calc <operation> <number>...",
	Short: "Basic arithmetic operations",
	Long: `Evaluate an arithmetic operation over a sequence of numbers.

Operations:
  add       - Add all numbers together
  subtract  - Subtract numbers from the first number
  multiply  - Multiply all numbers together
  divide    - Divide first number by subsequent numbers

Examples:
  skillbox calc add 5 3
  skillbox calc subtract 10 4
  skillbox calc multiply 6 7
  skillbox calc divide 20 4`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if calcInteractiveFlag {
			return tui.RunCalc()
		}
		return runCalc(cmd.OutOrStdout(), args)
	},
}

func init() {
	calcCmd.Flags().BoolVarP(&calcCopyFlag, "copy", "c", false, "Copy the result to the clipboard")
	calcCmd.Flags().BoolVarP(&calcInteractiveFlag, "interactive", "i", false, "Start the interactive calculator")
}

// runCalc validates and evaluates in a fixed order: argument count first,
// then number parsing, then operation lookup, then the reduction itself.
// A non-numeric argument is therefore reported even when the operation is
// also unknown.
func runCalc(out io.Writer, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: usage: skillbox calc <operation> <number>...", apierrors.ErrInsufficientArguments)
	}

	numbers, err := calc.ParseNumbers(args[1:])
	if err != nil {
		return err
	}

	op, err := calc.ParseOperation(args[0])
	if err != nil {
		return err
	}

	result, err := calc.Evaluate(op, numbers)
	if err != nil {
		return err
	}

	formatted := calc.FormatResult(result)
	fmt.Fprintln(out, formatted)

	cfg, cfgErr := config.LoadConfig()
	if calcCopyFlag || (cfgErr == nil && cfg.CopyToClipboard) {
		copyToClipboard(formatted)
	}

	return nil
}
