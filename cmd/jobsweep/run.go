package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"jobsweep/internal/runner"
	"jobsweep/internal/seen"
	"jobsweep/internal/sheet"
)

var concurrency int

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Sweep all companies and write fresh postings",
	Long: "Reads the company spreadsheet, fetches postings from every resolvable\n" +
		"board, filters by keyword, drops previously-seen postings, writes the\n" +
		"rest to the output spreadsheet, and records their fingerprints.",
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntVarP(&concurrency, "concurrency", "n", 0, "companies fetched in parallel (default from config, 1 = sequential)")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if concurrency > 0 {
		cfg.Concurrency = concurrency
	}

	companies, err := sheet.ReadCompanies(cfg.InputPath)
	if err != nil {
		logger.Error("failed to read company spreadsheet", "path", cfg.InputPath, "error", err)
		os.Exit(1)
	}
	logger.Info("input loaded", "path", cfg.InputPath, "companies", len(companies))

	store, err := seen.Open(cfg.SeenPath)
	if err != nil {
		logger.Error("failed to open seen store", "path", cfg.SeenPath, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r := runner.New(runner.DefaultRegistry(), setupClient(cfg), store, logger,
		runner.WithConcurrency(cfg.Concurrency),
		runner.WithDefaultKeywords(cfg.Keywords),
	)

	fresh, err := r.Run(ctx, companies)
	if err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}

	writer := &sheet.Writer{OutputDir: cfg.OutputDir, Logger: logger}
	if err := writer.Write(fresh); err != nil {
		logger.Error("failed to write output", "error", err)
		os.Exit(1)
	}

	if n := setupNotifier(cfg, &http.Client{Timeout: cfg.Timeout}, logger); n != nil && len(fresh) > 0 {
		if err := n.Write(fresh); err != nil {
			logger.Warn("slack notification failed", "error", err)
		}
	}

	return nil
}
