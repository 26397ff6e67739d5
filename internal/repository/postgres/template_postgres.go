package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maxviazov/report-export-service/internal/model"
	"github.com/maxviazov/report-export-service/internal/repository"
)

type templateRepository struct{ pool *pgxpool.Pool }

func NewTemplateRepository(pool *pgxpool.Pool) repository.TemplateRepository {
	return &templateRepository{pool: pool}
}

func (r *templateRepository) GetByName(ctx context.Context, name string) (model.TemplateHTML, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.TemplateHTML{}, err
	}
	var t model.TemplateHTML
	err := getQ(ctx, r.pool).QueryRow(ctx,
		`SELECT id, name, html, created_at, updated_at FROM template_html WHERE name = $1`, name,
	).Scan(&t.ID, &t.Name, &t.HTML, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return model.TemplateHTML{}, repository.MapPgError(err)
	}
	return t, nil
}

func (r *templateRepository) Upsert(ctx context.Context, in model.TemplateHTML) (model.TemplateHTML, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.TemplateHTML{}, err
	}
	var t model.TemplateHTML
	err := getQ(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO template_html (name, html) VALUES ($1, $2)
		 ON CONFLICT (name) DO UPDATE SET html = EXCLUDED.html, updated_at = now()
		 RETURNING id, name, html, created_at, updated_at`,
		in.Name, in.HTML,
	).Scan(&t.ID, &t.Name, &t.HTML, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return model.TemplateHTML{}, repository.MapPgError(err)
	}
	return t, nil
}
