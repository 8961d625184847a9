package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show record store statistics",
	Long:  `Prints the record count of every collection in the local store.`,
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	if err := ensureWiring(); err != nil {
		return err
	}

	ctx := cmd.Context()
	store, err := storeProvider.Open(ctx)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer store.Close()

	collections, err := store.Collections(ctx)
	if err != nil {
		return fmt.Errorf("listing collections: %w", err)
	}
	if len(collections) == 0 {
		cmd.Println("The record store is empty.")
		return nil
	}

	for _, collection := range collections {
		count, err := store.Count(ctx, collection)
		if err != nil {
			return fmt.Errorf("counting %s: %w", collection, err)
		}
		cmd.Printf("%-14s %d records\n", collection, count)
	}
	return nil
}
