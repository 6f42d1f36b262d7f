package cmd

import (
	"codescope/pkg/app"
	"codescope/pkg/config"

	"github.com/spf13/cobra"
)

// analyzeCmd builds the full prompt for the current project, sends it to the
// remote completion service, and writes the returned report. Requires the
// OPENROUTER_API_KEY environment variable.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Send the project to the completion API and save the analysis",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load(".")
		return app.Analyze(cmd.Context(), cfg, logger)
	},
}

func init() {
	RootCmd.AddCommand(analyzeCmd)
}
