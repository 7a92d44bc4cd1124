package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mlatman/mcpls/internal/logger"
)

var (
	debugMode             bool
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "mcpls",
	Short: "Inventory MCP servers configured in local AI clients",
	Long: `mcpls inspects the configuration files of AI client applications on
this machine (Claude Desktop, Zed) and reports which Model Context
Protocol servers each one has registered, cross-checked against a
catalog of known server definitions.

Entries Claude Desktop has that the catalog doesn't know are still
listed, flagged as unrecognized.`,
	Example: `  mcpls installed                  # Servers configured in every known client
  mcpls installed --client zed     # Restrict to one client
  mcpls servers                    # Show the known-server catalog`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	// Hide the auto-generated completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
}

func initConfig() {
	logger.SetDebug(debugMode)
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("mcpls %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("mcpls %s\n", version)
}
