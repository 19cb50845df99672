package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ranacirrusgo/policynav/internal/search"
)

var searchTopK int

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query...>",
	Short: "Search the local policy knowledge base",
	Long: `Search ranks ingested documents by semantic similarity to the
query, using the configured embedder (local by default, OpenAI when
an API key is configured).

Example:
  policynav search data breach notification
  policynav search cryptocurrency --top 3`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntVar(&searchTopK, "top", 5, "maximum number of results")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	cfg := loadConfig()
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.Timeout)
	defer cancel()

	lib, err := openLibrary(cfg)
	if err != nil {
		return err
	}
	if lib.Len() == 0 {
		return fmt.Errorf("knowledge base is empty; run 'policynav ingest --samples' first")
	}

	store, err := buildIndex(ctx, cfg, lib)
	if err != nil {
		return err
	}

	results, err := store.Search(ctx, query, searchTopK)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	fmt.Println(search.FormatResults(query, results))

	return nil
}
