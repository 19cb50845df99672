package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// DocumentAnalyzer produces a compliance report for one policy file.
type DocumentAnalyzer interface {
	AnalyzeFile(ctx context.Context, path string) (string, error)
}

// AnalyzeJob analyzes a single policy document file.
type AnalyzeJob struct {
	Path     string
	Analyzer DocumentAnalyzer
}

// Execute runs the analysis and wraps the outcome.
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	report, err := j.Analyzer.AnalyzeFile(ctx, j.Path)
	if err != nil {
		return &AnalyzeResult{
			Path:  j.Path,
			Error: err,
		}
	}
	return &AnalyzeResult{
		Path:   j.Path,
		Report: report,
	}
}

// AnalyzeResult is the outcome of analyzing one file.
type AnalyzeResult struct {
	Path   string
	Report string
	Error  error
}

// GetError returns the analysis error, if any.
func (r *AnalyzeResult) GetError() error {
	return r.Error
}

// BatchProcessor analyzes many policy files concurrently.
type BatchProcessor struct {
	analyzer    DocumentAnalyzer
	concurrency int
}

// NewBatchProcessor creates a batch processor with the given
// concurrency.
func NewBatchProcessor(analyzer DocumentAnalyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		analyzer:    analyzer,
		concurrency: concurrency,
	}
}

// ProcessPaths analyzes the given files concurrently. Result order is
// not guaranteed.
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []*AnalyzeResult {
	if len(paths) == 0 {
		return []*AnalyzeResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, path := range paths {
		pool.Submit(&AnalyzeJob{
			Path:     path,
			Analyzer: b.analyzer,
		})
	}

	results := pool.Wait()

	analyzeResults := make([]*AnalyzeResult, len(results))
	for i, result := range results {
		analyzeResults[i] = result.(*AnalyzeResult)
	}

	return analyzeResults
}

// ProcessFile reads document paths from a list file and analyzes them
// concurrently.
func (b *BatchProcessor) ProcessFile(ctx context.Context, listPath string) ([]*AnalyzeResult, error) {
	paths, err := ReadPathsFromFile(listPath)
	if err != nil {
		return nil, fmt.Errorf("read document list: %w", err)
	}

	return b.ProcessPaths(ctx, paths), nil
}

// ReadPathsFromFile reads one document path per line, skipping blank
// lines and # comments and dropping duplicates.
func ReadPathsFromFile(listPath string) ([]string, error) {
	file, err := os.Open(listPath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return paths, nil
}
