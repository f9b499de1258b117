// Package commands provides the CLI commands for skillbox.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version info (set at build time)
var (
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "skillbox",
	Short: "Agent skills toolbox",
	Long: `skillbox is a command-line toolbox of agent skills: an arithmetic
calculator and an inference-model template generator for local LLMs.

Examples:
  skillbox calc add 5 3                 Evaluate an arithmetic expression
  skillbox calc -i                      Interactive calculator
  skillbox generate                     Write inference_model.json for the default model
  skillbox skills list                  List registered skills
  skillbox skills docs calculator       Show a skill's documentation`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("skillbox %s (built %s)\n", Version, BuildTime)
			return nil
		}
		return cmd.Help()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")

	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(skillsCmd)
	rootCmd.AddCommand(configCmd)
}
