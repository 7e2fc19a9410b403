// Package importer reads vocabulary spreadsheets. Each data row holds the
// native form, its romanization and its translation in three columns.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/flipwise/flipwise/internal/domain"
	"github.com/xuri/excelize/v2"
)

// ErrUnknownSheet is returned when the requested sheet is not in the workbook.
var ErrUnknownSheet = errors.New("sheet not found")

// Options selects where the words are in a workbook.
type Options struct {
	Sheet              string // default "Sheet1"; ignored for CSV
	StartRow           int    // 1-based, default 2 to skip the header
	NativeColumn       string // default "A"
	RomanizationColumn string // default "B"
	TranslationColumn  string // default "C"
}

// DefaultOptions returns the standard layout.
func DefaultOptions() Options {
	return Options{
		Sheet:              "Sheet1",
		StartRow:           2,
		NativeColumn:       "A",
		RomanizationColumn: "B",
		TranslationColumn:  "C",
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Sheet == "" {
		o.Sheet = d.Sheet
	}
	if o.StartRow < 1 {
		o.StartRow = d.StartRow
	}
	if o.NativeColumn == "" {
		o.NativeColumn = d.NativeColumn
	}
	if o.RomanizationColumn == "" {
		o.RomanizationColumn = d.RomanizationColumn
	}
	if o.TranslationColumn == "" {
		o.TranslationColumn = d.TranslationColumn
	}
	return o
}

// Row is one usable spreadsheet row.
type Row struct {
	Line    int                `json:"line"`
	Content domain.WordContent `json:"content"`
}

// RowError reports a row that was skipped because it was incomplete.
type RowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Line, e.Reason)
}

// Result is the outcome of parsing one sheet.
type Result struct {
	Rows   []Row      `json:"rows"`
	Errors []RowError `json:"errors,omitempty"`
	// Blank counts empty rows that were ignored.
	Blank int `json:"blank"`
}

// Entries returns the content of every usable row.
func (r *Result) Entries() []domain.WordContent {
	entries := make([]domain.WordContent, 0, len(r.Rows))
	for _, row := range r.Rows {
		entries = append(entries, row.Content)
	}
	return entries
}

// Parse reads an xlsx workbook from r.
func Parse(r io.Reader, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	if !hasSheet(f.GetSheetList(), opts.Sheet) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSheet, opts.Sheet)
	}

	rows, err := f.GetRows(opts.Sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	return collect(rows, opts)
}

// ParseCSV reads comma-separated rows from r using the same column layout.
func ParseCSV(r io.Reader, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return collect(rows, opts)
}

// ParseFile picks Parse or ParseCSV by the file extension.
func ParseFile(path string, opts Options) (*Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return ParseCSV(file, opts)
	}
	return Parse(file, opts)
}

func collect(rows [][]string, opts Options) (*Result, error) {
	cols, err := columnIndexes(opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Rows: []Row{}}
	for i, cells := range rows {
		line := i + 1
		if line < opts.StartRow {
			continue
		}

		native := cell(cells, cols[0])
		romanization := cell(cells, cols[1])
		translation := cell(cells, cols[2])

		if native == "" && romanization == "" && translation == "" {
			result.Blank++
			continue
		}

		var missing []string
		if native == "" {
			missing = append(missing, "native")
		}
		if romanization == "" {
			missing = append(missing, "romanization")
		}
		if translation == "" {
			missing = append(missing, "translation")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, RowError{
				Line:   line,
				Reason: "missing " + strings.Join(missing, ", "),
			})
			continue
		}

		result.Rows = append(result.Rows, Row{
			Line: line,
			Content: domain.WordContent{
				Native:       native,
				Romanization: romanization,
				Translation:  translation,
			},
		})
	}
	return result, nil
}

func columnIndexes(opts Options) ([3]int, error) {
	var idx [3]int
	for i, name := range []string{opts.NativeColumn, opts.RomanizationColumn, opts.TranslationColumn} {
		n, err := excelize.ColumnNameToNumber(strings.ToUpper(name))
		if err != nil {
			return idx, fmt.Errorf("invalid column %q: %w", name, err)
		}
		idx[i] = n - 1
	}
	return idx, nil
}

func cell(cells []string, i int) string {
	if i >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[i])
}

func hasSheet(sheets []string, name string) bool {
	for _, s := range sheets {
		if s == name {
			return true
		}
	}
	return false
}
