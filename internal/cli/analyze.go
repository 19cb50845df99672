package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ranacirrusgo/policynav/internal/analyze"
)

var (
	analyzeTitle string
	analyzeJSON  string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Extract compliance requirements from a policy document",
	Long: `Analyze reads a policy text file and reports:
- Mandatory requirements, optional provisions, prohibited actions
- Critical deadlines (within N days/months/years)
- Penalty and enforcement provisions
- Key metrics: percentages, dollar amounts, effective dates

Example:
  policynav analyze policy.txt
  policynav analyze policy.txt --title "AML Final Rule" --json analysis.json`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeTitle, "title", "", "document title (default: file name)")
	analyzeCmd.Flags().StringVar(&analyzeJSON, "json", "", "write the structured analysis to a JSON file")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]

	text, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	title := analyzeTitle
	if title == "" {
		title = titleFromPath(path)
	}

	analyzer := analyze.NewAnalyzer()
	analysis := analyzer.Analyze(string(text), title)

	fmt.Println(analyze.FormatReport(analysis))

	if analyzeJSON != "" {
		data, err := json.MarshalIndent(analysis, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal analysis: %w", err)
		}
		if err := os.WriteFile(analyzeJSON, data, 0644); err != nil {
			return fmt.Errorf("write JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote analysis to %s\n", analyzeJSON)
		}
	}

	return nil
}

// titleFromPath turns a file path into a readable document title.
func titleFromPath(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ReplaceAll(base, "_", " ")
	base = strings.ReplaceAll(base, "-", " ")
	return base
}
