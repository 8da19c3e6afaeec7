package notifier

import (
	"log/slog"

	"jobsweep/internal/model"
)

// Ensure LogWriter implements model.Writer.
var _ model.Writer = (*LogWriter)(nil)

// LogWriter prints fresh postings to the given logger as structured
// messages. Backs check mode, where nothing is written to disk.
type LogWriter struct {
	logger *slog.Logger
}

// NewLogWriter returns a writer that logs each posting via slog.
func NewLogWriter(logger *slog.Logger) *LogWriter {
	return &LogWriter{logger: logger}
}

// Write logs each posting with company, title, location, URL, and source.
// Returns nil (stdout logging does not fail).
func (w *LogWriter) Write(postings []model.Posting) error {
	for _, p := range postings {
		args := []any{"company", p.Company, "title", p.Title, "location", p.Location, "url", p.URL, "source", p.Source}
		if p.PostedAt != "" {
			args = append(args, "posted_at", p.PostedAt)
		}
		w.logger.Info("fresh posting", args...)
	}
	return nil
}
