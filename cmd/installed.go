package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mlatman/mcpls/internal/config"
	"github.com/mlatman/mcpls/internal/display"
	"github.com/mlatman/mcpls/internal/inspect"
	"github.com/mlatman/mcpls/internal/model"
)

var installedClient string

var installedCmd = &cobra.Command{
	Use:   "installed",
	Short: "List MCP servers configured in local AI clients",
	Long: `Reads each supported client's configuration file and lists the MCP
servers it has registered. Entries matching the known-server catalog are
shown by their catalog ID; Claude Desktop entries with no catalog match
are flagged as unrecognized.

A client whose config file doesn't exist is simply skipped. A corrupt
config is skipped too unless that client was selected explicitly, in
which case the failure is reported.

Examples:
  mcpls installed                  # All clients
  mcpls installed --client claude  # Claude Desktop only`,
	RunE: runInstalled,
}

func init() {
	installedCmd.Flags().StringVar(&installedClient, "client", "", "Restrict to one client (claude or zed)")
	rootCmd.AddCommand(installedCmd)
}

func runInstalled(cmd *cobra.Command, args []string) error {
	return runInstalledWithOutput(os.Stdout, installedClient)
}

func runInstalledWithOutput(output io.Writer, clientName string) error {
	settings, err := config.FromEnv()
	if err != nil {
		return err
	}

	reg, err := loadRegistry(settings)
	if err != nil {
		return err
	}

	var kinds []model.ClientKind
	if clientName != "" {
		kind, err := model.ParseClientKind(clientName)
		if err != nil {
			return err
		}
		kinds = append(kinds, kind)
	}

	report, err := inspect.Run(reg, kinds)
	if err != nil {
		return err
	}

	display.New(output, reg, !settings.ColorDisabled()).Report(report)
	return nil
}
