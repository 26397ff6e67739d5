// Package spreadsheet writes datasets to single-sheet XLSX workbooks.
package spreadsheet

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/maxviazov/report-export-service/internal/model"
)

// ContentType is the registered MIME type of XLSX workbooks.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DefaultColumnWidth is used for derived columns and when no width is configured.
const DefaultColumnWidth = 20

// ErrUnknownColumn is returned when a column refers to a key the dataset does not have.
var ErrUnknownColumn = errors.New("unknown column")

// Column maps a dataset field to a sheet column.
type Column struct {
	Header string  `json:"header"`
	Key    string  `json:"key"`
	Width  float64 `json:"width,omitempty"`
	NumFmt string  `json:"numFmt,omitempty"`
}

// Writer renders datasets to workbooks with one named sheet.
type Writer struct {
	sheet        string
	derivedWidth float64
}

// NewWriter returns a Writer producing sheet name sheet. Derived columns get width colWidth.
func NewWriter(sheet string, colWidth float64) *Writer {
	if sheet == "" {
		sheet = "Reporte"
	}
	if colWidth <= 0 {
		colWidth = DefaultColumnWidth
	}
	return &Writer{sheet: sheet, derivedWidth: colWidth}
}

// Columns returns cols checked against ds, or one column per dataset field when cols is empty.
func (w *Writer) Columns(ds model.Dataset, cols []Column) ([]Column, error) {
	fields := ds.Fields()
	if len(cols) == 0 {
		out := make([]Column, len(fields))
		for i, f := range fields {
			out[i] = Column{Header: f, Key: f, Width: w.derivedWidth}
		}
		return out, nil
	}
	known := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		known[f] = struct{}{}
	}
	out := make([]Column, len(cols))
	for i, c := range cols {
		// an empty dataset has no schema to check against
		if _, ok := known[c.Key]; !ok && ds.Len() > 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, c.Key)
		}
		if c.Header == "" {
			c.Header = c.Key
		}
		out[i] = c
	}
	return out, nil
}

// Write renders ds as a header row followed by one row per record.
// Only the selected columns are written; styles may be nil.
func (w *Writer) Write(ds model.Dataset, cols []Column, styles *Styles) ([]byte, error) {
	cols, err := w.Columns(ds, cols)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), w.sheet); err != nil {
		return nil, fmt.Errorf("spreadsheet: naming sheet: %w", err)
	}

	if styles != nil && styles.ColWidth > 0 {
		width := styles.ColWidth
		if err := f.SetSheetProps(w.sheet, &excelize.SheetPropsOptions{DefaultColWidth: &width}); err != nil {
			return nil, fmt.Errorf("spreadsheet: default column width: %w", err)
		}
	}

	header := make([]any, len(cols))
	for i, c := range cols {
		header[i] = c.Header
		if c.Width > 0 {
			name, err := excelize.ColumnNumberToName(i + 1)
			if err != nil {
				return nil, err
			}
			if err := f.SetColWidth(w.sheet, name, name, c.Width); err != nil {
				return nil, fmt.Errorf("spreadsheet: width of %s: %w", name, err)
			}
		}
	}
	if err := f.SetSheetRow(w.sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("spreadsheet: header row: %w", err)
	}

	records := ds.Records()
	for r, rec := range records {
		row := make([]any, len(cols))
		for i, c := range cols {
			row[i] = rec[c.Key]
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(w.sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("spreadsheet: row %d: %w", r+2, err)
		}
	}

	if err := w.applyStyles(f, cols, len(records), styles); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("spreadsheet: writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (w *Writer) applyStyles(f *excelize.File, cols []Column, rows int, styles *Styles) error {
	if len(cols) == 0 {
		return nil
	}
	last, err := excelize.ColumnNumberToName(len(cols))
	if err != nil {
		return err
	}

	if styles != nil {
		id, err := f.NewStyle(styles.headerStyle())
		if err != nil {
			return fmt.Errorf("spreadsheet: header style: %w", err)
		}
		if err := f.SetCellStyle(w.sheet, "A1", last+"1", id); err != nil {
			return fmt.Errorf("spreadsheet: header style: %w", err)
		}
	}
	if rows == 0 {
		return nil
	}

	// one style per distinct number format
	ids := make(map[string]int)
	for i, c := range cols {
		if styles == nil && c.NumFmt == "" {
			continue
		}
		id, ok := ids[c.NumFmt]
		if !ok {
			id, err = f.NewStyle(styles.dataStyle(c.NumFmt))
			if err != nil {
				return fmt.Errorf("spreadsheet: style for %q: %w", c.Key, err)
			}
			ids[c.NumFmt] = id
		}
		top, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return err
		}
		bottom, err := excelize.CoordinatesToCellName(i+1, rows+1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(w.sheet, top, bottom, id); err != nil {
			return fmt.Errorf("spreadsheet: style for %q: %w", c.Key, err)
		}
	}
	return nil
}
