package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/report-export-service/internal/service"
	"github.com/maxviazov/report-export-service/pkg/response"
)

type TemplateHandler struct {
	svc service.TemplateService
}

func NewTemplateHandler(svc service.TemplateService) *TemplateHandler {
	return &TemplateHandler{svc: svc}
}

func (h *TemplateHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/templates")
	{
		g.PUT("/:name", h.save)
		g.GET("/:name", h.get)
	}
}

type saveTemplateRequest struct {
	HTML string `json:"html"`
}

func (h *TemplateHandler) save(c *gin.Context) {
	var req saveTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	tpl, err := h.svc.SaveTemplate(c.Request.Context(), c.Param("name"), req.HTML)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, tpl)
}

func (h *TemplateHandler) get(c *gin.Context) {
	tpl, err := h.svc.GetTemplate(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, tpl)
}
