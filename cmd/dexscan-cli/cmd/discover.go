package cmd

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"dexscan/internal/adapters/qmd"
	"dexscan/internal/application/commands"
)

var (
	healthCheck     bool
	suggestionsOnly bool
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Discover semantic-search collection candidates",
	Long: `Evaluate the vault against the built-in collection catalog and print
the result as JSON.

Without flags, prints every candidate evaluation. With --health-check,
cross-references the qmd search index and reports new candidates, stale
collections and pending embeddings. With --suggestions-only, prints just
the actionable suggestion strings.

Examples:
  dexscan-cli discover
  dexscan-cli discover --health-check
  dexscan-cli discover --suggestions-only`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		discover := commands.NewDiscoverCommand(GetRepo(), qmd.NewClient())

		var result any
		switch {
		case healthCheck:
			hc, err := discover.HealthCheck(ctx)
			if err != nil {
				return err
			}
			result = hc
		case suggestionsOnly:
			suggestions, err := discover.Suggestions(ctx)
			if err != nil {
				return err
			}
			if suggestions == nil {
				suggestions = []string{}
			}
			result = suggestions
		default:
			evals, err := discover.Execute(ctx)
			if err != nil {
				return err
			}
			result = evals
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

func init() {
	rootCmd.AddCommand(discoverCmd)
	discoverCmd.Flags().BoolVar(&healthCheck, "health-check", false, "cross-reference the search index")
	discoverCmd.Flags().BoolVar(&suggestionsOnly, "suggestions-only", false, "print only actionable suggestions")
	discoverCmd.MarkFlagsMutuallyExclusive("health-check", "suggestions-only")
}
