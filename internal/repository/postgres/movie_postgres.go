package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maxviazov/report-export-service/internal/model"
	"github.com/maxviazov/report-export-service/internal/repository"
)

const movieColumns = `id, name, COALESCE(genre, ''), created_at, updated_at`

type movieRepository struct{ pool *pgxpool.Pool }

func NewMovieRepository(pool *pgxpool.Pool) repository.MovieRepository {
	return &movieRepository{pool: pool}
}

func scanMovie(row pgx.Row) (model.Movie, error) {
	var m model.Movie
	err := row.Scan(&m.ID, &m.Name, &m.Genre, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func (r *movieRepository) Create(ctx context.Context, m model.Movie) (model.Movie, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Movie{}, err
	}
	row := getQ(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO movie (name, genre) VALUES ($1, NULLIF($2, ''))
		 RETURNING `+movieColumns,
		m.Name, m.Genre,
	)
	out, err := scanMovie(row)
	if err != nil {
		return model.Movie{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *movieRepository) GetByID(ctx context.Context, id int64) (model.Movie, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Movie{}, err
	}
	row := getQ(ctx, r.pool).QueryRow(ctx,
		`SELECT `+movieColumns+` FROM movie WHERE id = $1`, id,
	)
	out, err := scanMovie(row)
	if err != nil {
		return model.Movie{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *movieRepository) List(ctx context.Context, p repository.Page) (repository.PageResult[model.Movie], error) {
	if err := ensurePool(r.pool); err != nil {
		return repository.PageResult[model.Movie]{}, err
	}
	limit, offset := sanitizeLimitOffset(p.Limit, p.Offset)
	rows, err := getQ(ctx, r.pool).Query(ctx,
		`SELECT `+movieColumns+`, COUNT(*) OVER() AS total
		 FROM movie
		 ORDER BY id
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return repository.PageResult[model.Movie]{}, repository.MapPgError(err)
	}
	defer rows.Close()

	res := repository.PageResult[model.Movie]{Items: make([]model.Movie, 0, limit)}
	for rows.Next() {
		var m model.Movie
		var total int
		if err := rows.Scan(&m.ID, &m.Name, &m.Genre, &m.CreatedAt, &m.UpdatedAt, &total); err != nil {
			return repository.PageResult[model.Movie]{}, repository.MapPgError(err)
		}
		res.Items = append(res.Items, m)
		res.Total = total
	}
	if err := rows.Err(); err != nil {
		return repository.PageResult[model.Movie]{}, repository.MapPgError(err)
	}
	if len(res.Items) == 0 {
		// the window function yields no row past the end; count separately
		if err := getQ(ctx, r.pool).QueryRow(ctx, `SELECT COUNT(*) FROM movie`).Scan(&res.Total); err != nil {
			return repository.PageResult[model.Movie]{}, repository.MapPgError(err)
		}
	}
	return res, nil
}

func (r *movieRepository) ListAll(ctx context.Context) ([]model.Movie, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	rows, err := getQ(ctx, r.pool).Query(ctx, `SELECT `+movieColumns+` FROM movie ORDER BY id`)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	movies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Movie, error) {
		return scanMovie(row)
	})
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	return movies, nil
}
