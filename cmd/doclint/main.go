package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"doclint/internal/crawler"
	"doclint/internal/runner"

	"github.com/spf13/cobra"
)

var jsonPath string

var rootCmd = &cobra.Command{
	Use:   "doclint <project-root>",
	Short: "Check that the final line of each doc comment block ends with punctuation",
	Long: `doclint scans .rs files under the given root for doc comment blocks
(/// or //!) and reports any block whose last prose line does not end
with '.', '?' or '!'.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		root, err := filepath.Abs(args[0])
		if err != nil {
			log.Fatalf("Failed to resolve path: %v", err)
		}

		if _, err := os.Stat(root); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s does not exist\n", root)
			os.Exit(1)
		}

		run := runner.NewRunner(crawler.NewCrawler())
		rep, err := run.Run(root)
		if err != nil {
			log.Fatalf("Scan failed: %v", err)
		}

		rep.Render(os.Stdout)

		if jsonPath != "" {
			if err := runner.SaveReport(rep, jsonPath); err != nil {
				log.Fatalf("Failed to write JSON report: %v", err)
			}
		}

		if rep.HasViolations() {
			os.Exit(1)
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&jsonPath, "json", "j", "", "Also write the full report to this path as JSON")
}
