package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ranacirrusgo/policynav/internal/analyze"
)

var (
	compareTitleA string
	compareTitleB string
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare <fileA> <fileB>",
	Short: "Compare the compliance complexity of two policies",
	Long: `Compare analyzes two policy documents and reports their shared and
unique mandatory requirement keywords and a complexity score for each.

Example:
  policynav compare old-rule.txt new-rule.txt
  policynav compare a.txt b.txt --title-a "2019 Rule" --title-b "2024 Rule"`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().StringVar(&compareTitleA, "title-a", "", "title for the first policy (default: file name)")
	compareCmd.Flags().StringVar(&compareTitleB, "title-b", "", "title for the second policy (default: file name)")
}

func runCompare(cmd *cobra.Command, args []string) error {
	textA, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read first document: %w", err)
	}
	textB, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("read second document: %w", err)
	}

	titleA := compareTitleA
	if titleA == "" {
		titleA = titleFromPath(args[0])
	}
	titleB := compareTitleB
	if titleB == "" {
		titleB = titleFromPath(args[1])
	}

	fmt.Println(analyze.ComparePolicies(string(textA), titleA, string(textB), titleB))

	return nil
}
