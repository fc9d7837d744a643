package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/killallgit/beekit/pkg/chat"
	"github.com/killallgit/beekit/pkg/config"
	"github.com/killallgit/beekit/pkg/prompt"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a conversation with a model's chat template",
	Long: `Render reads a YAML or JSON list of messages ({role, text}) and prints the
prompt produced by the model's chat template. Use "-" to read from stdin.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		model, _ := cmd.Flags().GetString("model")
		if model == "" {
			model = config.Get().Prompt.DefaultModel
		}
		path, _ := cmd.Flags().GetString("messages")

		messages, err := readMessages(cmd.InOrStdin(), path)
		if err != nil {
			return err
		}

		template, err := prompt.Get(model)
		if err != nil {
			return err
		}

		rendered, err := template.Format(messages)
		if err != nil {
			return fmt.Errorf("failed to render prompt for %s: %w", model, err)
		}

		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	},
}

// readMessages decodes messages from path, or from stdin when path is "-".
func readMessages(stdin io.Reader, path string) ([]chat.Message, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read messages: %w", err)
	}

	var messages []chat.Message
	if err := yaml.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}
	return messages, nil
}

func init() {
	renderCmd.Flags().StringP("model", "m", "", "model whose template to use (default from prompt.default_model)")
	renderCmd.Flags().String("messages", "-", "YAML or JSON file with the messages")
	rootCmd.AddCommand(renderCmd)
}
