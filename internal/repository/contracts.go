package repository

import (
	"context"

	"github.com/maxviazov/report-export-service/internal/model"
)

// Pinger represents a minimal readiness probe capability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// TxFunc is the unit of work executed within a transaction boundary.
type TxFunc func(ctx context.Context) error

// TxManager abstracts transactional execution for repositories that support it.
type TxManager interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}

// MovieRepository declares persistence operations for movies.
type MovieRepository interface {
	Create(ctx context.Context, m model.Movie) (model.Movie, error)
	GetByID(ctx context.Context, id int64) (model.Movie, error)
	List(ctx context.Context, p Page) (PageResult[model.Movie], error)
	// ListAll returns every movie ordered by id; reports are built from it.
	ListAll(ctx context.Context) ([]model.Movie, error)
}

// TemplateRepository stores named HTML report templates.
type TemplateRepository interface {
	GetByName(ctx context.Context, name string) (model.TemplateHTML, error)
	// Upsert inserts the template or replaces the html of an existing one with the same name.
	Upsert(ctx context.Context, t model.TemplateHTML) (model.TemplateHTML, error)
}
