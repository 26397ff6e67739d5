package pdf

import (
	"context"
	"fmt"

	"github.com/maxviazov/report-export-service/internal/render"
)

// Engine produces a PDF from a paginated report document.
type Engine interface {
	Render(ctx context.Context, doc render.Document) ([]byte, error)
	// RenderTemplate renders doc with a caller-supplied template source.
	RenderTemplate(ctx context.Context, name, src string, doc render.Document) ([]byte, error)
}

// HTMLConverter is the part of Converter the HTML engine depends on.
type HTMLConverter interface {
	ConvertHTML(ctx context.Context, html string, pg *PageConfig) ([]byte, error)
}

// HTMLEngine renders documents to HTML and prints them with a browser.
type HTMLEngine struct {
	renderer *render.Renderer
	conv     HTMLConverter
	page     PageConfig
}

// NewHTMLEngine wires a renderer to a converter with a fixed page layout.
func NewHTMLEngine(r *render.Renderer, conv HTMLConverter, page PageConfig) *HTMLEngine {
	return &HTMLEngine{renderer: r, conv: conv, page: page}
}

func (e *HTMLEngine) Render(ctx context.Context, doc render.Document) ([]byte, error) {
	html, err := e.renderer.Render(doc)
	if err != nil {
		return nil, err
	}
	return e.print(ctx, html)
}

func (e *HTMLEngine) RenderTemplate(ctx context.Context, name, src string, doc render.Document) ([]byte, error) {
	html, err := e.renderer.RenderSource(name, src, doc)
	if err != nil {
		return nil, err
	}
	return e.print(ctx, html)
}

func (e *HTMLEngine) print(ctx context.Context, html string) ([]byte, error) {
	out, err := e.conv.ConvertHTML(ctx, html, &e.page)
	if err != nil {
		return nil, fmt.Errorf("rasterizing report: %w", err)
	}
	return out, nil
}

var (
	_ Engine = (*HTMLEngine)(nil)
	_ Engine = (*NativeEngine)(nil)
)
