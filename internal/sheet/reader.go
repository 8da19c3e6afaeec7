// Package sheet reads the company input spreadsheet and writes the output
// posting spreadsheet. Both sides speak .xlsx and .csv, chosen by file
// extension.
package sheet

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"jobsweep/internal/model"
)

// input column headers, matched case-insensitively.
const (
	colCompanyName = "company_name"
	colProvider    = "provider"
	colSlug        = "slug"
	colCareerURL   = "career_url"
	colKeywords    = "keywords"
)

// ReadCompanies reads company rows from the spreadsheet at path. The first
// row is a header naming the columns; unknown columns are ignored and
// missing columns read as blank. Rows with an empty company_name are kept:
// the pipeline falls back to the board slug as a label.
func ReadCompanies(path string) ([]model.CompanyInput, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	idx := make(map[string]int)
	for i, h := range rows[0] {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}

	cell := func(row []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var companies []model.CompanyInput
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		ci := model.CompanyInput{
			Name:      cell(row, colCompanyName),
			Provider:  strings.ToLower(cell(row, colProvider)),
			Slug:      cell(row, colSlug),
			CareerURL: cell(row, colCareerURL),
			Keywords:  cell(row, colKeywords),
		}
		if ci == (model.CompanyInput{}) {
			continue
		}
		companies = append(companies, ci)
	}

	return companies, nil
}

func readRows(path string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return readExcelRows(path)
	default:
		return readCSVRows(path)
	}
}

func readExcelRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open input workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("input workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read input sheet %s: %w", sheets[0], err)
	}
	return rows, nil
}

func readCSVRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // input rows are blank-tolerant
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read input csv: %w", err)
	}
	return rows, nil
}
