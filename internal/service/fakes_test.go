package service_test

import (
	"context"
	"sort"

	"github.com/maxviazov/report-export-service/internal/model"
	"github.com/maxviazov/report-export-service/internal/render"
	"github.com/maxviazov/report-export-service/internal/repository"
)

type fakeMovieRepo struct {
	nextID    int64
	items     map[int64]model.Movie
	createErr error
	listErr   error
	lastPage  repository.Page
}

func newFakeMovieRepo(names ...string) *fakeMovieRepo {
	f := &fakeMovieRepo{nextID: 1, items: map[int64]model.Movie{}}
	for _, n := range names {
		_, _ = f.Create(context.Background(), model.Movie{Name: n, Genre: "Drama"})
	}
	return f
}

func (f *fakeMovieRepo) Create(_ context.Context, m model.Movie) (model.Movie, error) {
	if f.createErr != nil {
		return model.Movie{}, f.createErr
	}
	m.ID = f.nextID
	f.nextID++
	f.items[m.ID] = m
	return m, nil
}

func (f *fakeMovieRepo) GetByID(_ context.Context, id int64) (model.Movie, error) {
	it, ok := f.items[id]
	if !ok {
		return model.Movie{}, repository.ErrNotFound
	}
	return it, nil
}

func (f *fakeMovieRepo) List(ctx context.Context, p repository.Page) (repository.PageResult[model.Movie], error) {
	f.lastPage = p
	all, err := f.ListAll(ctx)
	if err != nil {
		return repository.PageResult[model.Movie]{}, err
	}
	return repository.PageResult[model.Movie]{Items: all, Total: len(all)}, nil
}

func (f *fakeMovieRepo) ListAll(context.Context) ([]model.Movie, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]model.Movie, 0, len(f.items))
	for _, v := range f.items {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

var _ repository.MovieRepository = (*fakeMovieRepo)(nil)

type fakeTemplateRepo struct {
	items     map[string]model.TemplateHTML
	upsertErr error
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{items: map[string]model.TemplateHTML{}}
}

func (f *fakeTemplateRepo) GetByName(_ context.Context, name string) (model.TemplateHTML, error) {
	t, ok := f.items[name]
	if !ok {
		return model.TemplateHTML{}, repository.ErrNotFound
	}
	return t, nil
}

func (f *fakeTemplateRepo) Upsert(_ context.Context, t model.TemplateHTML) (model.TemplateHTML, error) {
	if f.upsertErr != nil {
		return model.TemplateHTML{}, f.upsertErr
	}
	if prev, ok := f.items[t.Name]; ok {
		t.ID = prev.ID
	} else {
		t.ID = int64(len(f.items) + 1)
	}
	f.items[t.Name] = t
	return t, nil
}

var _ repository.TemplateRepository = (*fakeTemplateRepo)(nil)

// fakeTx runs fn inline and records how often it was entered.
type fakeTx struct{ calls int }

func (f *fakeTx) WithinTx(ctx context.Context, fn repository.TxFunc) error {
	f.calls++
	return fn(ctx)
}

// fakeEngine records the last document and template it was asked to print.
type fakeEngine struct {
	doc     render.Document
	tplName string
	tplSrc  string
	err     error
}

func (f *fakeEngine) Render(_ context.Context, doc render.Document) ([]byte, error) {
	f.doc = doc
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-fake"), nil
}

func (f *fakeEngine) RenderTemplate(_ context.Context, name, src string, doc render.Document) ([]byte, error) {
	f.tplName, f.tplSrc = name, src
	return f.Render(context.Background(), doc)
}
