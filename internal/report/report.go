// Package report aggregates classification results for one scan and renders
// the console report.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"

	"doclint/internal/classifier"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
)

// EmptyEnding is the frequency-table key for violations whose right-trimmed
// text is empty.
const EmptyEnding = "(empty)"

// Report holds everything the scan found: how many files were read and every
// violation across them.
type Report struct {
	Root         string                 `json:"root"`
	FilesScanned int                    `json:"files_scanned"`
	Violations   []classifier.Violation `json:"violations"`
}

// New creates an empty report for the given scan root.
func New(root string) *Report {
	return &Report{Root: root}
}

// AddFile records one scanned file and its violations.
func (r *Report) AddFile(violations []classifier.Violation) {
	r.FilesScanned++
	r.Violations = append(r.Violations, violations...)
}

// HasViolations reports whether the scan found at least one violation.
func (r *Report) HasViolations() bool {
	return len(r.Violations) > 0
}

// Ending is one row of the frequency table.
type Ending struct {
	Char  string `json:"char"`
	Count int    `json:"count"`
}

// EndingCounts groups the violations by their final non-whitespace character,
// sorted by descending count (ties by character, for stable output).
func (r *Report) EndingCounts() []Ending {
	counts := make(map[string]int)
	for _, v := range r.Violations {
		counts[endingChar(v.Text)]++
	}

	endings := make([]Ending, 0, len(counts))
	for char, n := range counts {
		endings = append(endings, Ending{Char: char, Count: n})
	}
	sort.Slice(endings, func(i, j int) bool {
		if endings[i].Count != endings[j].Count {
			return endings[i].Count > endings[j].Count
		}
		return endings[i].Char < endings[j].Char
	})
	return endings
}

func endingChar(text string) string {
	trimmed := strings.TrimRightFunc(text, unicode.IsSpace)
	if trimmed == "" {
		return EmptyEnding
	}
	runes := []rune(trimmed)
	return string(runes[len(runes)-1])
}

// Sorted returns the violations ordered by file path, preserving line order
// within each file.
func (r *Report) Sorted() []classifier.Violation {
	sorted := make([]classifier.Violation, len(r.Violations))
	copy(sorted, r.Violations)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Filepath < sorted[j].Filepath
	})
	return sorted
}

// Render writes the full console report: the scan summary, the
// ending-character frequency table, and the violation listing sorted by path.
func (r *Report) Render(w io.Writer) {
	fmt.Fprintf(w, "Scanned %s .rs files under %s\n", humanize.Comma(int64(r.FilesScanned)), r.Root)
	fmt.Fprintf(w, "Found %s doc comment blocks not ending with punctuation\n", humanize.Comma(int64(len(r.Violations))))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "=== Summary by ending character ===")
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Ending", "Count"})
	for _, e := range r.EndingCounts() {
		t.AppendRow(table.Row{fmt.Sprintf("'%s'", e.Char), e.Count})
	}
	t.Render()
	fmt.Fprintln(w)

	fmt.Fprintln(w, "=== All violations ===")
	for _, v := range r.Sorted() {
		fmt.Fprintf(w, "%s:%d: %s\n", v.Filepath, v.Line, v.Text)
	}
}
