package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ranacirrusgo/policynav/internal/agent"
	"github.com/ranacirrusgo/policynav/internal/notify"
)

var queryNotify bool

// queryCmd represents the query command
var queryCmd = &cobra.Command{
	Use:   "query <question...>",
	Short: "Ask a policy question",
	Long: `Query routes a natural-language question to the right sources:
status questions go to the Federal Register, case-law questions to
CourtListener, and every question searches the local knowledge base.

Example:
  policynav query "Is Executive Order 14067 still in effect?"
  policynav query "Are there court cases about Section 230?"
  policynav query "data breach notification requirements" --notify`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)

	queryCmd.Flags().BoolVar(&queryNotify, "notify", false, "send the answer to the configured Slack webhook")
}

func runQuery(cmd *cobra.Command, args []string) error {
	question := strings.Join(args, " ")

	cfg := loadConfig()
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.Timeout)
	defer cancel()

	lib, err := openLibrary(cfg)
	if err != nil {
		return err
	}
	if lib.Len() == 0 {
		fmt.Fprintf(os.Stderr, "Knowledge base is empty. Run 'policynav ingest --samples' to seed it.\n")
	}

	store, err := buildIndex(ctx, cfg, lib)
	if err != nil {
		return err
	}

	apiCache := newCache(cfg)
	limiter := newLimiter(cfg)

	a := agent.New(store, newFedRegClient(cfg, apiCache, limiter), newCourtListenerClient(cfg, apiCache, limiter))

	answer, err := a.Query(ctx, question)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	fmt.Println(answer)

	if queryNotify {
		notifier := notify.NewSlackNotifier(cfg.Notify.SlackWebhookURL, cfg.HTTP.Timeout)
		if err := notifier.Send(ctx, answer); err != nil {
			return fmt.Errorf("notify: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Sent answer to Slack\n")
	}

	return nil
}
