package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/report-export-service/internal/model"
	"github.com/maxviazov/report-export-service/internal/service"
	"github.com/maxviazov/report-export-service/internal/spreadsheet"
	"github.com/maxviazov/report-export-service/pkg/response"
)

const (
	pdfContentType    = "application/pdf"
	defaultSampleRows = 100
)

type ReportHandler struct {
	svc   service.ReportService
	files FileNames
}

func NewReportHandler(svc service.ReportService, files FileNames) *ReportHandler {
	return &ReportHandler{svc: svc, files: files.withDefaults()}
}

func (h *ReportHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/reports")
	{
		g.POST("/pdf", h.pdf)
		g.POST("/xlsx", h.xlsx)
		g.GET("/movies.pdf", h.moviesPDF)
		g.GET("/movies.xlsx", h.moviesXLSX)
		g.GET("/sample.pdf", h.samplePDF)
	}
}

type pdfRequest struct {
	Fields   []string            `json:"fields"`
	Records  []model.Record      `json:"records"`
	Columns  []string            `json:"columns"`
	Header   *model.ReportHeader `json:"header"`
	PageSize *int                `json:"page_size"`
	Template string              `json:"template"`
}

type xlsxRequest struct {
	Fields           []string             `json:"fields"`
	Records          []model.Record       `json:"records"`
	Columns          []spreadsheet.Column `json:"columns"`
	Styles           *spreadsheet.Styles  `json:"styles"`
	UseDefaultStyles bool                 `json:"use_default_styles"`
}

func (h *ReportHandler) pdf(c *gin.Context) {
	var req pdfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	out, err := h.svc.RenderPDF(c.Request.Context(), service.PDFRequest{
		Fields:   req.Fields,
		Records:  req.Records,
		Columns:  req.Columns,
		Header:   req.Header,
		PageSize: req.PageSize,
		Template: req.Template,
	})
	h.writePDF(c, out, err)
}

func (h *ReportHandler) xlsx(c *gin.Context) {
	var req xlsxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	out, err := h.svc.RenderSpreadsheet(c.Request.Context(), service.SpreadsheetRequest{
		Fields:           req.Fields,
		Records:          req.Records,
		Columns:          req.Columns,
		Styles:           req.Styles,
		UseDefaultStyles: req.UseDefaultStyles,
	})
	h.writeSpreadsheet(c, out, err)
}

func (h *ReportHandler) moviesPDF(c *gin.Context) {
	out, err := h.svc.MoviesPDF(c.Request.Context())
	h.writePDF(c, out, err)
}

func (h *ReportHandler) moviesXLSX(c *gin.Context) {
	out, err := h.svc.MoviesSpreadsheet(c.Request.Context())
	h.writeSpreadsheet(c, out, err)
}

func (h *ReportHandler) samplePDF(c *gin.Context) {
	rows := defaultSampleRows
	if v := c.Query("rows"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			response.WriteError(c, service.ErrInvalidInput)
			return
		}
		rows = n
	}
	var pageSize *int
	if v := c.Query("page_size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			response.WriteError(c, service.ErrInvalidInput)
			return
		}
		pageSize = &n
	}
	out, err := h.svc.SamplePDF(c.Request.Context(), rows, pageSize)
	h.writePDF(c, out, err)
}

func (h *ReportHandler) writePDF(c *gin.Context, out []byte, err error) {
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteFile(c, pdfContentType, response.Inline, h.files.PDF, out)
}

func (h *ReportHandler) writeSpreadsheet(c *gin.Context, out []byte, err error) {
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteFile(c, spreadsheet.ContentType, response.Attachment, h.files.Spreadsheet, out)
}
