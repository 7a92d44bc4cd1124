package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mlatman/mcpls/internal/config"
	"github.com/mlatman/mcpls/internal/display"
)

var serversCmd = &cobra.Command{
	Use:   "servers",
	Short: "Show the known MCP server catalog",
	Long: `Prints every server in the catalog with its description. Set
MCPLS_REGISTRY to point at an alternate catalog file.`,
	RunE: runServers,
}

func init() {
	rootCmd.AddCommand(serversCmd)
}

func runServers(cmd *cobra.Command, args []string) error {
	return runServersWithOutput(os.Stdout)
}

func runServersWithOutput(output io.Writer) error {
	settings, err := config.FromEnv()
	if err != nil {
		return err
	}

	reg, err := loadRegistry(settings)
	if err != nil {
		return err
	}

	display.New(output, reg, !settings.ColorDisabled()).Catalog(reg.Servers())
	return nil
}
