package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/report-export-service/internal/model"
	"github.com/maxviazov/report-export-service/internal/repository"
)

type movieService struct {
	repo repository.MovieRepository
	log  zerolog.Logger
}

func NewMovieService(repo repository.MovieRepository, logger zerolog.Logger) MovieService {
	l := logger.With().Str("module", "service").Str("component", "movie").Logger()
	return &movieService{repo: repo, log: l}
}

func (s *movieService) CreateMovie(ctx context.Context, name, genre string) (model.Movie, error) {
	start := time.Now()
	name = strings.TrimSpace(name)
	genre = strings.TrimSpace(genre)

	var ferrs []FieldError
	ferrs = checkLength(ferrs, "name", name, true, maxMovieNameLen)
	ferrs = checkLength(ferrs, "genre", genre, false, maxMovieGenreLen)
	if err := newInvalidInput(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Msg("movie validation failed")
		return model.Movie{}, err
	}

	out, err := s.repo.Create(ctx, model.Movie{Name: name, Genre: genre})
	if err != nil {
		s.log.Error().Err(err).Str("name", name).Msg("create movie failed")
		return model.Movie{}, err
	}
	s.log.Info().Dur("took", time.Since(start)).Int64("movie_id", out.ID).Msg("movie created")
	return out, nil
}

func (s *movieService) GetMovie(ctx context.Context, id int64) (model.Movie, error) {
	if id <= 0 {
		return model.Movie{}, newInvalidInput([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	return s.repo.GetByID(ctx, id)
}

func (s *movieService) ListMovies(ctx context.Context, page repository.Page) (repository.PageResult[model.Movie], error) {
	p := page.Normalize()
	res, err := s.repo.List(ctx, p)
	if err != nil {
		s.log.Error().Err(err).Int("limit", p.Limit).Int("offset", p.Offset).Msg("list movies failed")
		return repository.PageResult[model.Movie]{}, err
	}
	return res, nil
}
