package service_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/report-export-service/internal/repository"
	"github.com/maxviazov/report-export-service/internal/service"
)

func TestMovieService_CreateMovie_Validation(t *testing.T) {
	svc := service.NewMovieService(newFakeMovieRepo(), zerolog.New(io.Discard))

	cases := []struct {
		name      string
		movie     string
		genre     string
		wantField string
	}{
		{"empty", "", "", "name"},
		{"spaces", "   ", "Drama", "name"},
		{"name too long", strings.Repeat("a", 1025), "", "name"},
		{"genre too long", "Alien", strings.Repeat("g", 1025), "genre"},
		{"ok", "Alien", "Sci-Fi", ""},
		{"ok without genre", "Alien", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := svc.CreateMovie(context.Background(), tc.movie, tc.genre)
			if tc.wantField == "" {
				require.NoError(t, err)
				assert.NotZero(t, out.ID)
				return
			}
			require.ErrorIs(t, err, service.ErrInvalidInput)
			fields := service.FieldErrors(err)
			require.NotEmpty(t, fields)
			assert.Equal(t, tc.wantField, fields[0].Field)
		})
	}
}

func TestMovieService_CreateMovie_TrimsInput(t *testing.T) {
	svc := service.NewMovieService(newFakeMovieRepo(), zerolog.New(io.Discard))
	out, err := svc.CreateMovie(context.Background(), "  Alien ", " Sci-Fi ")
	require.NoError(t, err)
	assert.Equal(t, "Alien", out.Name)
	assert.Equal(t, "Sci-Fi", out.Genre)
}

func TestMovieService_CreateMovie_RepoErrorPropagates(t *testing.T) {
	repo := newFakeMovieRepo()
	repo.createErr = repository.ErrAlreadyExists
	svc := service.NewMovieService(repo, zerolog.New(io.Discard))
	_, err := svc.CreateMovie(context.Background(), "Alien", "")
	assert.ErrorIs(t, err, repository.ErrAlreadyExists)
}

func TestMovieService_GetMovie(t *testing.T) {
	svc := service.NewMovieService(newFakeMovieRepo("Alien"), zerolog.New(io.Discard))

	got, err := svc.GetMovie(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Alien", got.Name)

	_, err = svc.GetMovie(context.Background(), 0)
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	_, err = svc.GetMovie(context.Background(), 42)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMovieService_ListMovies_PaginationNormalization(t *testing.T) {
	repo := newFakeMovieRepo("A", "B")
	svc := service.NewMovieService(repo, zerolog.New(io.Discard))

	res, err := svc.ListMovies(context.Background(), repository.Page{Limit: -5, Offset: -10})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, repository.Page{Limit: 50, Offset: 0}, repo.lastPage)

	_, err = svc.ListMovies(context.Background(), repository.Page{Limit: 10_000, Offset: 3})
	require.NoError(t, err)
	assert.Equal(t, repository.Page{Limit: 500, Offset: 3}, repo.lastPage)
}
