package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"dexscan/internal/adapters/sqlite"
	"dexscan/internal/domain"
	"dexscan/internal/ports"
)

var fullSync bool

var indexCmd = &cobra.Command{
	Use:   "index [sync|backlinks]",
	Short: "Manage the persistent wiki-link index",
	Long: `Manage the SQLite wiki-link index kept under the XDG data directory.

Examples:
  dexscan-cli index sync
  dexscan-cli index sync --full
  dexscan-cli index backlinks "Jane Doe"`,
}

var indexSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync the link index with the vault",
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := openLinkIndex()
		if err != nil {
			return err
		}
		defer idx.Close()

		var stats *domain.SyncStats
		if fullSync || idx.NeedsFullRebuild() {
			stats, err = idx.SyncFull()
		} else {
			stats, err = idx.SyncIncremental()
		}
		if err != nil {
			return err
		}

		fmt.Printf("scanned %d files: +%d nodes, ~%d updated, -%d deleted, %d edges (%s)\n",
			stats.FilesScanned, stats.NodesAdded, stats.NodesUpdated,
			stats.NodesDeleted, stats.EdgesAdded, stats.Duration.Round(time.Millisecond))
		return nil
	},
}

var indexBacklinksCmd = &cobra.Command{
	Use:   "backlinks <name>",
	Short: "List documents linking to a document name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := openLinkIndex()
		if err != nil {
			return err
		}
		defer idx.Close()

		refs, err := idx.Backlinks(args[0])
		if err != nil {
			return err
		}
		if len(refs) == 0 {
			fmt.Println("No backlinks found.")
			return nil
		}

		for _, ref := range refs {
			fmt.Printf("%s  %s\n", ref.SourcePath, ref.LinkText)
		}
		return nil
	},
}

func openLinkIndex() (ports.LinkIndex, error) {
	idx := sqlite.NewIndex()
	if err := idx.Open(GetRepo().Root()); err != nil {
		return nil, err
	}
	return idx, nil
}

func init() {
	rootCmd.AddCommand(indexCmd)
	indexCmd.AddCommand(indexSyncCmd)
	indexCmd.AddCommand(indexBacklinksCmd)
	indexSyncCmd.Flags().BoolVar(&fullSync, "full", false, "force a full rebuild")
}
