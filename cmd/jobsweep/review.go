package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"jobsweep/internal/review"
	"jobsweep/internal/sheet"
)

var reviewCmd = &cobra.Command{
	Use:   "review [output-file]",
	Short: "Browse a run's output in an interactive list",
	Long: "Opens an output spreadsheet in a terminal browser. With no argument,\n" +
		"the most recent new_openings file in the output directory is used.",
	Args: cobra.MaximumNArgs(1),
	RunE: runReview,
}

func init() {
	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	var path string
	if len(args) == 1 {
		path = args[0]
	} else {
		path, err = latestOutput(cfg.OutputDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}

	postings, err := sheet.ReadPostings(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", path, err)
		os.Exit(1)
	}

	return review.Run(postings, filepath.Base(path))
}

// latestOutput finds the newest new_openings file under dir. Output names
// embed a UTC timestamp, so lexical order is chronological order.
func latestOutput(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "new_openings_*"))
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no output files in %s; run a sweep first", dir)
	}
	sort.Strings(matches)
	return matches[len(matches)-1], nil
}
