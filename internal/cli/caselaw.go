package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ranacirrusgo/policynav/internal/regapi"
)

var (
	caselawLimit   int
	caselawSummary bool
)

// caselawCmd represents the caselaw command
var caselawCmd = &cobra.Command{
	Use:   "caselaw <query...>",
	Short: "Search case law relevant to a policy topic",
	Long: `Caselaw searches CourtListener for court opinions. Without an API
token (COURTLISTENER_TOKEN) it answers from a built-in landmark-case
dataset.

Example:
  policynav caselaw Section 230 immunity
  policynav caselaw digital asset securities --limit 3
  policynav caselaw "Gonzalez v. Google" --summary`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCaselaw,
}

func init() {
	rootCmd.AddCommand(caselawCmd)

	caselawCmd.Flags().IntVar(&caselawLimit, "limit", 5, "maximum number of cases")
	caselawCmd.Flags().BoolVar(&caselawSummary, "summary", false, "print a detailed summary of the best match only")
}

func runCaselaw(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	cfg := loadConfig()
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.Timeout)
	defer cancel()

	client := newCourtListenerClient(cfg, newCache(cfg), newLimiter(cfg))

	if caselawSummary {
		summary, err := client.CaseSummary(ctx, query)
		if err != nil {
			return fmt.Errorf("case summary: %w", err)
		}
		fmt.Println(summary)
		return nil
	}

	cases, err := client.SearchCases(ctx, query, caselawLimit)
	if err != nil {
		return fmt.Errorf("case search: %w", err)
	}

	fmt.Println(regapi.FormatCases(query, cases))

	return nil
}
