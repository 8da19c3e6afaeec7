package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"jobsweep/internal/adapter"
	"jobsweep/internal/config"
	"jobsweep/internal/model"
	"jobsweep/internal/notifier"
)

var (
	cfgPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "jobsweep",
	Short: "Aggregate open job postings across ATS providers",
	Long: "jobsweep reads a company spreadsheet, pulls open postings from each\n" +
		"company's ATS (Greenhouse, Lever, Workable, SmartRecruiters, Ashby,\n" +
		"Workday), filters them by keyword, and writes the not-yet-seen ones\n" +
		"to a timestamped output spreadsheet.",
	// Default to `run` so that `jobsweep` with no args does a full sweep.
	RunE: runRun,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: JOBSWEEP_CONFIG env var, else built-in defaults)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// loadConfig resolves the config path and parses it.
// Priority: explicit path arg > JOBSWEEP_CONFIG env var > env-var defaults.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = os.Getenv("JOBSWEEP_CONFIG")
	}
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func setupLogger(dbg bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
}

func setupClient(cfg *config.Config) *adapter.Client {
	return adapter.NewClient(&http.Client{Timeout: cfg.Timeout}, cfg.UserAgent)
}

// setupNotifier returns the optional Slack announcer, or nil when disabled.
func setupNotifier(cfg *config.Config, httpClient *http.Client, logger *slog.Logger) model.Writer {
	if !cfg.Slack.Enabled {
		return nil
	}
	logger.Info("slack notifications enabled")
	return notifier.NewSlackNotifier(cfg.Slack.WebhookURL, httpClient, logger)
}
