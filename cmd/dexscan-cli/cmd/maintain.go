package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"dexscan/internal/application/commands"
)

var maintainCmd = &cobra.Command{
	Use:   "maintain",
	Short: "Run all maintenance checks and print a report",
	Long: `Run every maintenance check against the vault and print a
human-readable report: stale inbox files, broken wiki-links, orphaned
people pages and stale memory entries.

The scan is read-only; nothing in the vault is modified.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := commands.NewMaintenanceCommand(GetRepo()).Execute(context.Background())
		if err != nil {
			return err
		}

		commands.RenderReport(os.Stdout, report)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(maintainCmd)
}
