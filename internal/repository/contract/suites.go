// Package contract holds behaviour suites every repository implementation must pass.
package contract

import (
	"context"
	"errors"
	"testing"

	"github.com/maxviazov/report-export-service/internal/model"
	"github.com/maxviazov/report-export-service/internal/repository"
)

type MovieFactory func(t *testing.T) (repository.MovieRepository, func())

type TemplateFactory func(t *testing.T) (repository.TemplateRepository, func())

type TxFactory func(t *testing.T) (tx repository.TxManager, movies repository.MovieRepository, cleanup func())

type PingerFactory func(t *testing.T) (repository.Pinger, func())

func RunMovieRepositoryContract(t *testing.T, makeRepo MovieFactory) {
	t.Helper()

	t.Run("create_and_get", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		created, err := repo.Create(ctx, model.Movie{Name: "Alien", Genre: "Sci-Fi"})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if created.ID == 0 || created.CreatedAt.IsZero() {
			t.Fatalf("expected generated id and timestamps, got %+v", created)
		}
		got, err := repo.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.ID != created.ID || got.Name != "Alien" || got.Genre != "Sci-Fi" {
			t.Fatalf("mismatch: %+v", got)
		}
	})

	t.Run("genre_is_optional", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		created, err := repo.Create(context.Background(), model.Movie{Name: "Untitled"})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if created.Genre != "" {
			t.Fatalf("expected empty genre, got %q", created.Genre)
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.GetByID(context.Background(), 999999)
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("list_pagination_total", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		for i := 0; i < 7; i++ {
			if _, err := repo.Create(ctx, model.Movie{Name: "M-" + string(rune('A'+i))}); err != nil {
				t.Fatalf("seed: %v", err)
			}
		}
		res, err := repo.List(ctx, repository.Page{Limit: 3, Offset: 0})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(res.Items) != 3 || res.Total != 7 {
			t.Fatalf("unexpected page: len=%d total=%d", len(res.Items), res.Total)
		}
		res2, err := repo.List(ctx, repository.Page{Limit: 3, Offset: 6})
		if err != nil {
			t.Fatalf("list2: %v", err)
		}
		if len(res2.Items) != 1 || res2.Total != 7 {
			t.Fatalf("unexpected last page: len=%d total=%d", len(res2.Items), res2.Total)
		}
		past, err := repo.List(ctx, repository.Page{Limit: 3, Offset: 30})
		if err != nil {
			t.Fatalf("list past end: %v", err)
		}
		if len(past.Items) != 0 || past.Total != 7 {
			t.Fatalf("unexpected page past end: len=%d total=%d", len(past.Items), past.Total)
		}
	})

	t.Run("list_all_in_id_order", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		names := []string{"Heat", "Up", "Jaws"}
		for _, n := range names {
			if _, err := repo.Create(ctx, model.Movie{Name: n}); err != nil {
				t.Fatalf("seed: %v", err)
			}
		}
		all, err := repo.ListAll(ctx)
		if err != nil {
			t.Fatalf("list all: %v", err)
		}
		if len(all) != len(names) {
			t.Fatalf("expected %d movies, got %d", len(names), len(all))
		}
		for i, m := range all {
			if m.Name != names[i] {
				t.Fatalf("position %d: expected %q, got %q", i, names[i], m.Name)
			}
		}
	})

	t.Run("list_all_empty", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		all, err := repo.ListAll(context.Background())
		if err != nil {
			t.Fatalf("list all: %v", err)
		}
		if len(all) != 0 {
			t.Fatalf("expected no movies, got %d", len(all))
		}
	})
}

func RunTemplateRepositoryContract(t *testing.T, makeRepo TemplateFactory) {
	t.Helper()

	t.Run("upsert_and_get", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		saved, err := repo.Upsert(ctx, model.TemplateHTML{Name: "planilla", HTML: "<p>v1</p>"})
		if err != nil {
			t.Fatalf("upsert: %v", err)
		}
		got, err := repo.GetByName(ctx, "planilla")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.ID != saved.ID || got.HTML != "<p>v1</p>" {
			t.Fatalf("mismatch: %+v", got)
		}
	})

	t.Run("upsert_replaces_html", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		first, err := repo.Upsert(ctx, model.TemplateHTML{Name: "t1", HTML: "<p>v1</p>"})
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		second, err := repo.Upsert(ctx, model.TemplateHTML{Name: "t1", HTML: "<p>v2</p>"})
		if err != nil {
			t.Fatalf("replace: %v", err)
		}
		if second.ID != first.ID || second.HTML != "<p>v2</p>" {
			t.Fatalf("expected same row with new html, got %+v", second)
		}
	})

	t.Run("name_too_long", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.Upsert(context.Background(), model.TemplateHTML{Name: "123456789", HTML: "<p></p>"})
		if !errors.Is(err, repository.ErrInvalidValue) {
			t.Fatalf("expected ErrInvalidValue, got %v", err)
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.GetByName(context.Background(), "nope")
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func RunTxManagerContract(t *testing.T, makeTx TxFactory) {
	t.Helper()

	t.Run("commit_on_nil_error", func(t *testing.T) {
		tx, movies, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		var createdID int64
		err := tx.WithinTx(ctx, func(ctx context.Context) error {
			out, err := movies.Create(ctx, model.Movie{Name: "TxCommit"})
			if err != nil {
				return err
			}
			createdID = out.ID
			return nil
		})
		if err != nil {
			t.Fatalf("WithinTx: %v", err)
		}
		if _, err := movies.GetByID(ctx, createdID); err != nil {
			t.Fatalf("expected committed row visible, got err=%v", err)
		}
	})

	t.Run("rollback_on_error", func(t *testing.T) {
		tx, movies, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		var createdID int64
		errMarker := errors.New("boom")
		err := tx.WithinTx(ctx, func(ctx context.Context) error {
			out, err := movies.Create(ctx, model.Movie{Name: "TxRollback"})
			if err != nil {
				return err
			}
			createdID = out.ID
			return errMarker
		})
		if !errors.Is(err, errMarker) {
			t.Fatalf("expected marker error, got %v", err)
		}
		if _, err := movies.GetByID(ctx, createdID); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound after rollback, got %v", err)
		}
	})

	t.Run("nested_joins_outer", func(t *testing.T) {
		tx, movies, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		var createdID int64
		errMarker := errors.New("outer failed")
		err := tx.WithinTx(ctx, func(ctx context.Context) error {
			if err := tx.WithinTx(ctx, func(ctx context.Context) error {
				out, err := movies.Create(ctx, model.Movie{Name: "Inner"})
				createdID = out.ID
				return err
			}); err != nil {
				return err
			}
			return errMarker
		})
		if !errors.Is(err, errMarker) {
			t.Fatalf("expected marker error, got %v", err)
		}
		if _, err := movies.GetByID(ctx, createdID); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("inner write should roll back with the outer tx, got %v", err)
		}
	})
}

func RunPingerContract(t *testing.T, makePinger PingerFactory) {
	t.Helper()
	t.Run("ping_ok", func(t *testing.T) {
		p, cleanup := makePinger(t)
		t.Cleanup(cleanup)
		if err := p.Ping(context.Background()); err != nil {
			t.Fatalf("expected ping ok, got %v", err)
		}
	})
}
