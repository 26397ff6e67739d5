package handler

// APIV1Prefix is the canonical base path for public HTTP API v1.
const APIV1Prefix = "/api/v1"

const (
	defaultPDFName         = "Reporte.pdf"
	defaultSpreadsheetName = "Reporte.xlsx"
)

// FileNames are the download names sent in Content-Disposition.
type FileNames struct {
	PDF         string
	Spreadsheet string
}

func (f FileNames) withDefaults() FileNames {
	if f.PDF == "" {
		f.PDF = defaultPDFName
	}
	if f.Spreadsheet == "" {
		f.Spreadsheet = defaultSpreadsheetName
	}
	return f
}
