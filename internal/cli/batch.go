package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ranacirrusgo/policynav/internal/analyze"
	"github.com/ranacirrusgo/policynav/internal/worker"
)

var (
	batchConcurrency int
	batchOutputDir   string
	batchTimeout     time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <list-file>",
	Short: "Analyze multiple policy documents in parallel",
	Long: `Batch reads document paths from a list file (one per line, # for
comments) and analyzes them concurrently, writing one compliance
report per document to the output directory.

Example:
  policynav batch documents.txt
  policynav batch documents.txt --concurrency 8 --output-dir ./reports`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&batchOutputDir, "output-dir", "./policynav-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
}

// fileAnalyzer adapts the compliance analyzer to the batch worker
// interface.
type fileAnalyzer struct {
	analyzer *analyze.Analyzer
}

func (f *fileAnalyzer) AnalyzeFile(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	text, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}

	analysis := f.analyzer.Analyze(string(text), titleFromPath(path))
	return analyze.FormatReport(analysis), nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	listFile := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "Input file: %s\n", listFile)
	fmt.Fprintf(os.Stderr, "Workers:    %d\n", batchConcurrency)
	fmt.Fprintf(os.Stderr, "Output dir: %s\n\n", batchOutputDir)

	if err := os.MkdirAll(batchOutputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	processor := worker.NewBatchProcessor(&fileAnalyzer{analyzer: analyze.NewAnalyzer()}, batchConcurrency)

	results, err := processor.ProcessFile(ctx, listFile)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	successCount := 0
	failureCount := 0

	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", result.Path, result.Error)
			continue
		}

		outPath := filepath.Join(batchOutputDir, reportFilename(result.Path))
		if err := os.WriteFile(outPath, []byte(result.Report), 0644); err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "FAIL %s: write report: %v\n", result.Path, err)
			continue
		}

		successCount++
		fmt.Fprintf(os.Stderr, "OK   %s -> %s\n", result.Path, outPath)
	}

	fmt.Fprintf(os.Stderr, "\nTotal: %d  Success: %d  Failures: %d\n", len(results), successCount, failureCount)

	if failureCount > 0 {
		return fmt.Errorf("%d of %d documents failed", failureCount, len(results))
	}

	return nil
}

// reportFilename derives the report file name from the document path.
func reportFilename(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if len(base) > 100 {
		base = base[:100]
	}
	return base + "-report.md"
}
