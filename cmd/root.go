package cmd

import (
	"fmt"
	"os"

	"github.com/killallgit/beekit/pkg/config"
	"github.com/killallgit/beekit/pkg/logger"
	"github.com/killallgit/beekit/pkg/prompt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "beekit",
	Short: "Chat prompt templates for local models",
	Long: `Render role-tagged conversations into model-specific prompts using the
built-in llama3.1, llama3 and qwen2 chat templates or templates declared in
the settings file.`,
	SilenceUsage:      true,
	PersistentPreRunE: initApp,
}

// initApp loads settings, starts the logger and registers templates declared
// in the settings file.
func initApp(cmd *cobra.Command, args []string) error {
	if err := config.Init(cfgFile); err != nil {
		return err
	}
	if err := logger.Init(); err != nil {
		return err
	}
	logger.Debug("Using config file: %s", config.Get().ConfigFile)

	if err := prompt.LoadIntoRegistry(viper.GetViper(), prompt.Default); err != nil {
		return fmt.Errorf("failed to load templates from settings: %w", err)
	}
	return nil
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", ".beekit/settings.yaml", "config file")

	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level")
	viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
}
