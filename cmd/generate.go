package cmd

import (
	"codescope/pkg/app"
	"codescope/pkg/config"

	"github.com/spf13/cobra"
)

// generateCmd renders the directory tree of the current project and writes it
// to a timestamped file. No flags: the root is the working directory and the
// exclusion list comes from the built-in defaults plus .codescope.yaml.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write the project's directory tree to a file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load(".")
		return app.Generate(cfg, logger)
	},
}

func init() {
	RootCmd.AddCommand(generateCmd)
}
