package runner

import (
	"encoding/json"
	"fmt"
	"os"

	"doclint/internal/crawler"
	"doclint/internal/report"
)

// Runner orchestrates the crawl and classification into a single report.
type Runner struct {
	crawler *crawler.Crawler
}

// NewRunner creates a new runner.
func NewRunner(c *crawler.Crawler) *Runner {
	return &Runner{crawler: c}
}

// Run scans the project root and aggregates every file's results. Each file's
// scan is independent; the report re-sorts by path before display, so walk
// order does not matter.
func (r *Runner) Run(root string) (*report.Report, error) {
	rep := report.New(root)

	err := r.crawler.ScanProject(root, func(res crawler.FileResult) {
		rep.AddFile(res.Violations)
	})
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	return rep, nil
}

// SaveReport persists the report to a JSON file.
func SaveReport(rep *report.Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(rep); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
