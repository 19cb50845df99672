package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ranacirrusgo/policynav/internal/regapi"
)

var statusRecentDays int

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status [eo-number]",
	Short: "Check executive order status or list recent regulations",
	Long: `Status queries the Federal Register.

With an executive order number it reports whether the order has been
published and lists related documents. With --recent it lists final
rules published in the last N days.

Example:
  policynav status 14067
  policynav status --recent 7`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().IntVar(&statusRecentDays, "recent", 0, "list final rules from the last N days")
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.Timeout)
	defer cancel()

	client := newFedRegClient(cfg, newCache(cfg), newLimiter(cfg))

	if statusRecentDays > 0 {
		docs, err := client.RecentRules(ctx, statusRecentDays, 10)
		if err != nil {
			return fmt.Errorf("recent rules: %w", err)
		}
		fmt.Println(regapi.FormatDocuments(fmt.Sprintf("Final Rules, Last %d Days", statusRecentDays), docs))
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("provide an executive order number or use --recent")
	}

	report, err := client.ExecutiveOrderStatus(ctx, args[0])
	if err != nil {
		return fmt.Errorf("status lookup: %w", err)
	}

	fmt.Println(report)

	return nil
}
