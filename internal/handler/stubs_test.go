package handler_test

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/report-export-service/internal/handler"
	"github.com/maxviazov/report-export-service/internal/model"
	"github.com/maxviazov/report-export-service/internal/repository"
	"github.com/maxviazov/report-export-service/internal/service"
)

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }

type stubMovieService struct {
	created  model.Movie
	got      model.Movie
	list     repository.PageResult[model.Movie]
	err      error
	lastName string
	lastID   int64
	lastPage repository.Page
}

func (s *stubMovieService) CreateMovie(_ context.Context, name, genre string) (model.Movie, error) {
	s.lastName = name
	return s.created, s.err
}

func (s *stubMovieService) GetMovie(_ context.Context, id int64) (model.Movie, error) {
	s.lastID = id
	return s.got, s.err
}

func (s *stubMovieService) ListMovies(_ context.Context, p repository.Page) (repository.PageResult[model.Movie], error) {
	s.lastPage = p
	return s.list, s.err
}

type stubTemplateService struct {
	tpl      model.TemplateHTML
	err      error
	lastName string
	lastHTML string
}

func (s *stubTemplateService) SaveTemplate(_ context.Context, name, html string) (model.TemplateHTML, error) {
	s.lastName, s.lastHTML = name, html
	return s.tpl, s.err
}

func (s *stubTemplateService) GetTemplate(_ context.Context, name string) (model.TemplateHTML, error) {
	s.lastName = name
	return s.tpl, s.err
}

type stubReportService struct {
	out          []byte
	err          error
	pdfReq       service.PDFRequest
	sheetReq     service.SpreadsheetRequest
	sampleRows   int
	samplePageSz *int
}

func (s *stubReportService) RenderPDF(_ context.Context, req service.PDFRequest) ([]byte, error) {
	s.pdfReq = req
	return s.out, s.err
}

func (s *stubReportService) RenderSpreadsheet(_ context.Context, req service.SpreadsheetRequest) ([]byte, error) {
	s.sheetReq = req
	return s.out, s.err
}

func (s *stubReportService) MoviesPDF(context.Context) ([]byte, error)         { return s.out, s.err }
func (s *stubReportService) MoviesSpreadsheet(context.Context) ([]byte, error) { return s.out, s.err }

func (s *stubReportService) SamplePDF(_ context.Context, rows int, pageSize *int) ([]byte, error) {
	s.sampleRows, s.samplePageSz = rows, pageSize
	return s.out, s.err
}

func (s *stubReportService) MoviesDataset(context.Context) (model.Dataset, error) {
	return model.Dataset{}, s.err
}

func (s *stubReportService) SampleDataset(int) (model.Dataset, error) { return model.Dataset{}, s.err }

var (
	_ service.MovieService    = (*stubMovieService)(nil)
	_ service.TemplateService = (*stubTemplateService)(nil)
	_ service.ReportService   = (*stubReportService)(nil)
)

type engineDeps struct {
	pinger    handler.Pinger
	movies    *stubMovieService
	templates *stubTemplateService
	reports   *stubReportService
	// reportSvc, when set, replaces the stub report service
	reportSvc service.ReportService
}

func newEngine(d engineDeps) *gin.Engine {
	gin.SetMode(gin.TestMode)
	if d.movies == nil {
		d.movies = &stubMovieService{}
	}
	if d.templates == nil {
		d.templates = &stubTemplateService{}
	}
	if d.reports == nil {
		d.reports = &stubReportService{}
	}
	var reports service.ReportService = d.reports
	if d.reportSvc != nil {
		reports = d.reportSvc
	}
	r := gin.New()
	handler.Register(r, d.pinger, handler.Services{
		Reports:   reports,
		Movies:    d.movies,
		Templates: d.templates,
	}, handler.FileNames{})
	return r
}
