package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/thangchung/skillbox/internal/render"
	"github.com/thangchung/skillbox/pkg/toolexec"
)

// skillRegistry holds the tools the skills commands operate on
var skillRegistry = toolexec.DefaultRegistry()

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Inspect and run registered skills",
	Long: `List, document and execute the tools registered in skillbox.

Examples:
  skillbox skills list
  skillbox skills docs calculator
  skillbox skills run calculator add 5 3`,
}

var skillsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered skills",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSkillsList(cmd.OutOrStdout())
	},
}

var skillsDocsCmd = &cobra.Command{
	Use:   "docs <name>",
	Short: "Show a skill's documentation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSkillsDocs(cmd.OutOrStdout(), args[0])
	},
}

var skillsRunCmd = &cobra.Command{
	Use:   "run <name> [args...]",
	Short: "Execute a skill",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSkillsRun(cmd, args[0], args[1:])
	},
}

func init() {
	skillsCmd.AddCommand(skillsListCmd)
	skillsCmd.AddCommand(skillsDocsCmd)
	skillsCmd.AddCommand(skillsRunCmd)
}

func runSkillsList(out io.Writer) error {
	nameStyle := lipgloss.NewStyle().Bold(true)

	for _, info := range skillRegistry.List() {
		if isTerminal() {
			fmt.Fprintf(out, "%s\n    %s\n", nameStyle.Render(info.Name), dimStyle.Render(info.Description))
		} else {
			fmt.Fprintf(out, "%s\t%s\n", info.Name, info.Description)
		}
	}
	return nil
}

func runSkillsDocs(out io.Writer, name string) error {
	tool, err := skillRegistry.Get(name)
	if err != nil {
		return err
	}

	doc := tool.Doc()
	if !isTerminal() {
		fmt.Fprint(out, doc)
		return nil
	}

	width := getTerminalWidth()
	if width > 100 {
		width = 100
	}
	rendered, err := render.Markdown(doc, render.LoadOptionsFromConfigWithWidth(width))
	if err != nil {
		// Fall back to the raw markdown
		fmt.Fprint(out, doc)
		return nil
	}
	fmt.Fprint(out, rendered)
	return nil
}

func runSkillsRun(cmd *cobra.Command, name string, args []string) error {
	executor := toolexec.NewExecutor(skillRegistry)

	output, err := executor.Execute(cmd.Context(), name, toolexec.NewInput().WithArgs(args...))
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), output.Text)
	return nil
}
