// Package service holds the report export use cases and the small CRUD around movies and stored templates.
// It validates input, shapes domain errors and coordinates repositories, renderers and writers.
package service

import (
	"context"
	"errors"

	"github.com/maxviazov/report-export-service/internal/model"
	"github.com/maxviazov/report-export-service/internal/repository"
	"github.com/maxviazov/report-export-service/internal/spreadsheet"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

func newInvalidInput(fe []FieldError) error {
	if len(fe) == 0 {
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error, wrapped or not.
func FieldErrors(err error) []FieldError {
	var ie *invalidInputError
	if errors.As(err, &ie) {
		return ie.Fields()
	}
	return nil
}

// PDFRequest describes a PDF export of caller-supplied records.
type PDFRequest struct {
	// Fields fixes the column order; empty means the sorted keys of the first record.
	Fields  []string
	Records []model.Record
	// Columns are display headers matched by position to Fields.
	Columns []string
	// Header overrides the configured report header.
	Header *model.ReportHeader
	// PageSize nil means the configured rows per page.
	PageSize *int
	// Template names a stored template to render instead of the built-in one.
	Template string
}

// SpreadsheetRequest describes an XLSX export of caller-supplied records.
type SpreadsheetRequest struct {
	Fields           []string
	Records          []model.Record
	Columns          []spreadsheet.Column
	Styles           *spreadsheet.Styles
	UseDefaultStyles bool
}

// ReportService builds PDF and XLSX exports.
type ReportService interface {
	RenderPDF(ctx context.Context, req PDFRequest) ([]byte, error)
	RenderSpreadsheet(ctx context.Context, req SpreadsheetRequest) ([]byte, error)
	MoviesPDF(ctx context.Context) ([]byte, error)
	MoviesSpreadsheet(ctx context.Context) ([]byte, error)
	SamplePDF(ctx context.Context, rows int, pageSize *int) ([]byte, error)
	MoviesDataset(ctx context.Context) (model.Dataset, error)
	SampleDataset(rows int) (model.Dataset, error)
}

// MovieService defines movie-oriented use cases.
type MovieService interface {
	CreateMovie(ctx context.Context, name, genre string) (model.Movie, error)
	GetMovie(ctx context.Context, id int64) (model.Movie, error)
	ListMovies(ctx context.Context, page repository.Page) (repository.PageResult[model.Movie], error)
}

// TemplateService manages stored HTML report templates.
type TemplateService interface {
	SaveTemplate(ctx context.Context, name, html string) (model.TemplateHTML, error)
	GetTemplate(ctx context.Context, name string) (model.TemplateHTML, error)
}
