package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/report-export-service/internal/config"
	"github.com/maxviazov/report-export-service/internal/model"
	"github.com/maxviazov/report-export-service/internal/pdf"
	"github.com/maxviazov/report-export-service/internal/render"
	"github.com/maxviazov/report-export-service/internal/repository"
	"github.com/maxviazov/report-export-service/internal/spreadsheet"
)

// movieColumns are the display headers of the movies PDF, matched to model.MovieFields.
var movieColumns = []string{"Id", "Nombre", "Género", "Creado", "Actualizado"}

// movieSheetColumns is the column selection of the movies workbook.
var movieSheetColumns = []spreadsheet.Column{
	{Header: "Nombre", Key: "name"},
	{Header: "Género", Key: "genre", Width: 20},
}

type reportService struct {
	engine    pdf.Engine
	writer    *spreadsheet.Writer
	movies    repository.MovieRepository
	templates repository.TemplateRepository
	cfg       config.ReportConfig
	now       func() time.Time
	log       zerolog.Logger
}

// ReportOption customises a ReportService.
type ReportOption func(*reportService)

// WithClock replaces time.Now as the source of the report date.
func WithClock(now func() time.Time) ReportOption {
	return func(s *reportService) { s.now = now }
}

func NewReportService(
	engine pdf.Engine,
	writer *spreadsheet.Writer,
	movies repository.MovieRepository,
	templates repository.TemplateRepository,
	cfg config.ReportConfig,
	logger zerolog.Logger,
	opts ...ReportOption,
) ReportService {
	s := &reportService{
		engine:    engine,
		writer:    writer,
		movies:    movies,
		templates: templates,
		cfg:       cfg,
		now:       time.Now,
		log:       logger.With().Str("module", "service").Str("component", "report").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *reportService) RenderPDF(ctx context.Context, req PDFRequest) ([]byte, error) {
	ds, err := model.NewDataset(req.Fields, req.Records)
	if err != nil {
		return nil, err
	}
	pageSize := s.cfg.RowsPerPage
	if req.PageSize != nil {
		pageSize = *req.PageSize
	}
	header := s.cfg.Header
	if req.Header != nil {
		header = *req.Header
	}
	return s.renderPDF(ctx, ds, req.Columns, header, pageSize, req.Template)
}

func (s *reportService) MoviesPDF(ctx context.Context) ([]byte, error) {
	ds, err := s.MoviesDataset(ctx)
	if err != nil {
		return nil, err
	}
	return s.renderPDF(ctx, ds, movieColumns, s.cfg.Header, s.cfg.RowsPerPage, "")
}

func (s *reportService) SamplePDF(ctx context.Context, rows int, pageSize *int) ([]byte, error) {
	ds, err := s.SampleDataset(rows)
	if err != nil {
		return nil, err
	}
	size := s.cfg.RowsPerPage
	if pageSize != nil {
		size = *pageSize
	}
	return s.renderPDF(ctx, ds, model.SampleColumns, s.cfg.Header, size, "")
}

// renderPDF paginates ds and prints it through the engine, optionally with a stored template.
func (s *reportService) renderPDF(ctx context.Context, ds model.Dataset, columns []string, header model.ReportHeader, pageSize int, tplName string) ([]byte, error) {
	start := time.Now()
	fields := ds.Fields()
	if len(columns) > 0 && len(columns) != len(fields) {
		return nil, newInvalidInput([]FieldError{{
			Field:   "columns",
			Message: fmt.Sprintf("expected %d columns to match fields, got %d", len(fields), len(columns)),
		}})
	}

	pages, err := ds.Paginate(pageSize)
	if err != nil {
		return nil, err
	}
	doc := render.Document{
		Columns:    columns,
		Fields:     fields,
		Pages:      pages,
		Header:     header,
		Date:       render.FormatDate(s.now()),
		PageCount:  len(pages),
		TruncateAt: s.cfg.TruncateAt,
	}

	var out []byte
	if tplName != "" {
		tpl, err := s.templates.GetByName(ctx, tplName)
		if err != nil {
			s.log.Debug().Err(err).Str("template", tplName).Msg("template lookup failed")
			return nil, err
		}
		out, err = s.engine.RenderTemplate(ctx, tpl.Name, tpl.HTML, doc)
		if err != nil {
			s.log.Error().Err(err).Str("template", tplName).Msg("render pdf failed")
			return nil, err
		}
	} else {
		out, err = s.engine.Render(ctx, doc)
		if err != nil {
			s.log.Error().Err(err).Msg("render pdf failed")
			return nil, err
		}
	}

	s.log.Info().
		Int("records", ds.Len()).
		Int("pages", len(pages)).
		Int("page_size", pageSize).
		Int("bytes", len(out)).
		Dur("took", time.Since(start)).
		Msg("pdf rendered")
	return out, nil
}

func (s *reportService) RenderSpreadsheet(ctx context.Context, req SpreadsheetRequest) ([]byte, error) {
	ds, err := model.NewDataset(req.Fields, req.Records)
	if err != nil {
		return nil, err
	}
	styles := req.Styles
	if styles == nil && req.UseDefaultStyles {
		styles = spreadsheet.DefaultStyles()
	}
	return s.writeSpreadsheet(ctx, ds, req.Columns, styles)
}

func (s *reportService) MoviesSpreadsheet(ctx context.Context) ([]byte, error) {
	ds, err := s.MoviesDataset(ctx)
	if err != nil {
		return nil, err
	}
	return s.writeSpreadsheet(ctx, ds, movieSheetColumns, spreadsheet.DefaultStyles())
}

func (s *reportService) writeSpreadsheet(ctx context.Context, ds model.Dataset, cols []spreadsheet.Column, styles *spreadsheet.Styles) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	out, err := s.writer.Write(ds, cols, styles)
	if err != nil {
		s.log.Debug().Err(err).Msg("write spreadsheet failed")
		return nil, err
	}
	s.log.Info().
		Int("records", ds.Len()).
		Int("bytes", len(out)).
		Bool("styled", styles != nil).
		Dur("took", time.Since(start)).
		Msg("spreadsheet written")
	return out, nil
}

// MoviesDataset loads every movie, unfiltered and in id order.
func (s *reportService) MoviesDataset(ctx context.Context) (model.Dataset, error) {
	movies, err := s.movies.ListAll(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list movies failed")
		return model.Dataset{}, err
	}
	records := make([]model.Record, len(movies))
	for i, m := range movies {
		records[i] = m.Record()
	}
	return model.NewDataset(model.MovieFields, records)
}

func (s *reportService) SampleDataset(rows int) (model.Dataset, error) {
	if rows < 1 || rows > s.cfg.MaxSampleRows {
		return model.Dataset{}, newInvalidInput([]FieldError{{
			Field:   "rows",
			Message: fmt.Sprintf("must be between 1 and %d", s.cfg.MaxSampleRows),
		}})
	}
	return model.SampleDataset(rows, s.cfg.SampleSeed)
}
