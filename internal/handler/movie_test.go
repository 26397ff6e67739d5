package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/report-export-service/internal/model"
	"github.com/maxviazov/report-export-service/internal/repository"
	"github.com/maxviazov/report-export-service/internal/service"
	"github.com/maxviazov/report-export-service/pkg/response"
)

func TestMovieHandler_Create(t *testing.T) {
	movies := &stubMovieService{created: model.Movie{ID: 7, Name: "Alien"}}
	r := newEngine(engineDeps{movies: movies})

	w := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"name":"Alien","genre":"Sci-Fi"}`)
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/movies", body))

	require.Equal(t, http.StatusCreated, w.Code)
	var got model.Movie
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "Alien", movies.lastName)
}

func TestMovieHandler_Create_BadJSON(t *testing.T) {
	r := newEngine(engineDeps{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/movies", bytes.NewBufferString(`{"name":`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMovieHandler_Create_ValidationError(t *testing.T) {
	invalid := service.ValidateTemplate("", "")
	r := newEngine(engineDeps{movies: &stubMovieService{err: invalid}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/movies", bytes.NewBufferString(`{"name":""}`)))

	require.Equal(t, http.StatusBadRequest, w.Code)
	var payload response.ErrorPayload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, "invalid_input", payload.Error)
	assert.NotEmpty(t, payload.FieldErrors)
}

func TestMovieHandler_Get(t *testing.T) {
	movies := &stubMovieService{got: model.Movie{ID: 3, Name: "Heat"}}
	r := newEngine(engineDeps{movies: movies})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/movies/3", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(3), movies.lastID)

	movies.err = repository.ErrNotFound
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/movies/99", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMovieHandler_List(t *testing.T) {
	movies := &stubMovieService{list: repository.PageResult[model.Movie]{Items: []model.Movie{{ID: 1}}, Total: 1}}
	r := newEngine(engineDeps{movies: movies})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/movies?limit=10&offset=20", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, repository.Page{Limit: 10, Offset: 20}, movies.lastPage)
	assert.Contains(t, w.Body.String(), `"Total":1`)
}
