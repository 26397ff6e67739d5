package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maxviazov/report-export-service/internal/repository"
)

// pingTimeout bounds readiness checks so a stuck pool cannot hang the probe.
const pingTimeout = 2 * time.Second

type pinger struct{ pool *pgxpool.Pool }

func NewPinger(pool *pgxpool.Pool) repository.Pinger { return &pinger{pool: pool} }

func (p *pinger) Ping(ctx context.Context) error {
	if err := ensurePool(p.pool); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return p.pool.Ping(ctx)
}
