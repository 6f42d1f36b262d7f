package cmd

import (
	"github.com/spf13/cobra"

	"go.uber.org/zap"
)

// logger is shared by all subcommands; set once in Execute.
var logger *zap.Logger

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "codescope",
	Short: "Codescope maps a project directory and requests an AI analysis of it",
	Long: `Codescope walks a project directory to render its structure as a tree and
can concatenate the project's source files into a prompt for the OpenRouter
completion API, saving the returned analysis as a report.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and runs it with the
// supplied logger.
func Execute(l *zap.Logger) error {
	logger = l
	return RootCmd.Execute()
}
