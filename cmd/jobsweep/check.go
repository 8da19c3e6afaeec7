package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"jobsweep/internal/notifier"
	"jobsweep/internal/runner"
	"jobsweep/internal/seen"
	"jobsweep/internal/sheet"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Sweep once, print postings, persist nothing",
	Long: "One-shot sweep: fetches and filters every company's postings and\n" +
		"prints them to the log. The seen store is neither read nor written,\n" +
		"so everything counts as fresh and nothing is recorded.",
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	companies, err := sheet.ReadCompanies(cfg.InputPath)
	if err != nil {
		logger.Error("failed to read company spreadsheet", "path", cfg.InputPath, "error", err)
		os.Exit(1)
	}

	logger.Info("check mode: nothing will be marked as seen")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r := runner.New(runner.DefaultRegistry(), setupClient(cfg), seen.NewNopStore(), logger,
		runner.WithDefaultKeywords(cfg.Keywords),
	)

	fresh, err := r.Run(ctx, companies)
	if err != nil {
		logger.Error("check failed", "error", err)
		os.Exit(1)
	}

	if err := notifier.NewLogWriter(logger).Write(fresh); err != nil {
		return err
	}

	logger.Info("check complete", "postings", len(fresh))
	return nil
}
