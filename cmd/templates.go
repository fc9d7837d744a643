package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/killallgit/beekit/pkg/prompt"
	"github.com/spf13/cobra"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	modelStyle  = lipgloss.NewStyle().Width(16)
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Inspect registered chat templates",
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List models with a chat template",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, headerStyle.Render(modelStyle.Render("MODEL")+"STOP SEQUENCE"))
		for _, name := range prompt.Default.List() {
			template, err := prompt.Get(name)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, modelStyle.Render(name)+quoteAll(template.StopSequence))
		}
		return nil
	},
}

var templatesShowCmd = &cobra.Command{
	Use:   "show <model>",
	Short: "Show the stop sequences of a model's chat template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		template, err := prompt.Get(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "model: %s\n", args[0])
		fmt.Fprintf(out, "stop_sequence: %s\n", quoteAll(template.StopSequence))
		return nil
	},
}

func quoteAll(values []string) string {
	quoted := make([]string, 0, len(values))
	for _, v := range values {
		quoted = append(quoted, strconv.Quote(v))
	}
	return strings.Join(quoted, ", ")
}

func init() {
	templatesCmd.AddCommand(templatesListCmd)
	templatesCmd.AddCommand(templatesShowCmd)
	rootCmd.AddCommand(templatesCmd)
}
