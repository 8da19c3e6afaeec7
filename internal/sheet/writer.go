package sheet

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"jobsweep/internal/model"
)

// output column order, mirroring the normalized posting schema.
var outputHeader = []string{"company", "title", "location", "url", "source", "postedAt", "snippet"}

// Writer writes a run's fresh postings to a timestamped spreadsheet under
// OutputDir. A file is written even when there are no fresh postings, so
// every run leaves a record.
type Writer struct {
	OutputDir string
	Format    string // "xlsx" (default) or "csv"
	Logger    *slog.Logger

	lastPath string
}

// Write writes the postings and remembers the output path for LastPath.
func (w *Writer) Write(postings []model.Posting) error {
	if err := os.MkdirAll(w.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	format := w.Format
	if format == "" {
		format = "xlsx"
	}
	ts := time.Now().UTC().Format("20060102_150405")
	path := filepath.Join(w.OutputDir, fmt.Sprintf("new_openings_%s.%s", ts, format))

	var err error
	switch format {
	case "csv":
		err = writeCSV(path, postings)
	default:
		err = writeExcel(path, postings)
	}
	if err != nil {
		return err
	}

	w.lastPath = path
	if w.Logger != nil {
		w.Logger.Info("wrote output", "path", path, "rows", len(postings))
	}
	return nil
}

// LastPath returns the path of the most recently written output file.
func (w *Writer) LastPath() string { return w.lastPath }

func postingRow(p model.Posting) []string {
	return []string{p.Company, p.Title, p.Location, p.URL, p.Source, p.PostedAt, p.Snippet}
}

func writeExcel(path string, postings []model.Posting) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := f.GetSheetName(0)
	header := make([]any, len(outputHeader))
	for i, h := range outputHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("write output header: %w", err)
	}

	for i, p := range postings {
		row := postingRow(p)
		cells := make([]any, len(row))
		for j, c := range row {
			cells[j] = c
		}
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("output cell name: %w", err)
		}
		if err := f.SetSheetRow(sheetName, axis, &cells); err != nil {
			return fmt.Errorf("write output row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save output workbook: %w", err)
	}
	return nil
}

func writeCSV(path string, postings []model.Posting) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(outputHeader); err != nil {
		return fmt.Errorf("write output header: %w", err)
	}
	for _, p := range postings {
		if err := w.Write(postingRow(p)); err != nil {
			return fmt.Errorf("write output row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// ReadPostings reads a previously written output file back into postings.
// The review command uses this to browse a run's results.
func ReadPostings(path string) ([]model.Posting, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, nil
	}

	at := func(row []string, i int) string {
		if i >= len(row) {
			return ""
		}
		return row[i]
	}

	postings := make([]model.Posting, 0, len(rows)-1)
	for _, row := range rows[1:] {
		postings = append(postings, model.Posting{
			Company:  at(row, 0),
			Title:    at(row, 1),
			Location: at(row, 2),
			URL:      at(row, 3),
			Source:   at(row, 4),
			PostedAt: at(row, 5),
			Snippet:  at(row, 6),
		})
	}
	return postings, nil
}
