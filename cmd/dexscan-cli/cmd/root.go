package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dexscan/internal/adapters/filesystem"
	"dexscan/internal/config"
	"dexscan/internal/ports"
)

var (
	vaultPath string
	repo      ports.VaultRepository
)

var rootCmd = &cobra.Command{
	Use:   "dexscan-cli",
	Short: "CLI for scanning PKM vault health",
	Long: `dexscan-cli scans a markdown vault for maintenance issues and
semantic-search collection candidates.

It finds stale inbox files, broken wiki-links, orphaned people pages and
stale memory entries, and suggests which directories are worth indexing
as search collections.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		r, err := filesystem.NewRepository(vaultPath)
		if err != nil {
			return err
		}
		repo = r
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&vaultPath, "vault", "v", config.VaultPath(), "path to the vault")
}

// GetRepo returns the initialized repository
func GetRepo() ports.VaultRepository {
	return repo
}
