package crawler

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"doclint/internal/classifier"
)

// FileResult is the classification outcome for a single source file.
type FileResult struct {
	Path       string // relative to the scan root
	Violations []classifier.Violation
}

// Crawler scans a directory tree for Rust source files.
type Crawler struct {
	ignored []string
}

// NewCrawler creates a new crawler instance.
func NewCrawler() *Crawler {
	return &Crawler{
		ignored: []string{".git", "target", "vendor", "node_modules"},
	}
}

// ScanProject walks the root directory and classifies every .rs file.
// It uses a callback to stream per-file results, preventing large memory
// buildup. Every file that was read is reported, violations or not, so the
// caller can count scanned files.
func (c *Crawler) ScanProject(root string, onFile func(FileResult)) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Skip ignored directories
		if d.IsDir() {
			for _, ign := range c.ignored {
				if d.Name() == ign {
					return filepath.SkipDir
				}
			}
			return nil
		}

		if !strings.HasSuffix(d.Name(), ".rs") {
			return nil
		}

		lines, err := readLines(path)
		if err != nil {
			// Skip unreadable files instead of failing the whole scan
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}

		onFile(FileResult{
			Path:       rel,
			Violations: classifier.CheckLines(rel, lines),
		})
		return nil
	})
}

// readLines reads a file fully into memory as its line sequence.
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return strings.Split(string(data), "\n"), nil
}
