package commands

import (
	"github.com/TYTheBeast/wynn-builder-ui/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the builder UI (default command)",
		Args:  cobra.NoArgs,
		RunE:  c.runE,
	}
	addRunFlags(cmd)
	return cmd
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "", "Settings file (default config/builder-ui.yaml)")
	cmd.Flags().StringP("builder", "b", "", "Builder executable, overrides the settings file")
	cmd.Flags().IntP("lines", "l", 0, "Number of output lines to keep (10-500)")
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, tui, or linear")
	cmd.Flags().Bool("ci", false, "Use linear output mode (shorthand for --output-mode=linear)")
	cmd.Flags().Bool("json-logs", false, "Write diagnostics as JSON")
}

func (c *CLI) runE(cmd *cobra.Command, _ []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	builderPath, _ := cmd.Flags().GetString("builder")
	lines, _ := cmd.Flags().GetInt("lines")
	outputMode, _ := cmd.Flags().GetString("output-mode")
	ci, _ := cmd.Flags().GetBool("ci")
	jsonLogs, _ := cmd.Flags().GetBool("json-logs")

	// If --ci is set, override output-mode to "linear"
	if ci {
		outputMode = "linear"
	}

	return c.app.Run(cmd.Context(), app.RunOptions{
		ConfigPath:  configPath,
		BuilderPath: builderPath,
		Lines:       lines,
		OutputMode:  outputMode,
		JSONLogs:    jsonLogs,
	})
}
