package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/report-export-service/internal/repository"
	"github.com/maxviazov/report-export-service/internal/service"
	"github.com/maxviazov/report-export-service/pkg/response"
)

type MovieHandler struct {
	svc service.MovieService
}

func NewMovieHandler(svc service.MovieService) *MovieHandler { return &MovieHandler{svc: svc} }

func (h *MovieHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/movies")
	{
		g.POST("", h.create)
		g.GET("/:movie_id", h.getByID)
		g.GET("", h.list)
	}
}

type createMovieRequest struct {
	Name  string `json:"name"`
	Genre string `json:"genre"`
}

func (h *MovieHandler) create(c *gin.Context) {
	var req createMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	movie, err := h.svc.CreateMovie(c.Request.Context(), req.Name, req.Genre)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, movie)
}

func (h *MovieHandler) getByID(c *gin.Context) {
	// unparsable ids become 0 and fail service validation
	id, _ := strconv.ParseInt(c.Param("movie_id"), 10, 64)
	movie, err := h.svc.GetMovie(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, movie)
}

func (h *MovieHandler) list(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	res, err := h.svc.ListMovies(c.Request.Context(), repository.Page{Limit: limit, Offset: offset})
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}
