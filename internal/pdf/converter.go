// Package pdf rasterizes report documents to PDF, either through headless Chrome
// or with a pure-Go table writer when no browser is available.
package pdf

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

var (
	// ErrClosed is returned when a closed Converter is used.
	ErrClosed = errors.New("pdf: converter is closed")
	// ErrUnsupported is returned by engines that cannot honour a request, e.g. stored HTML templates without a browser.
	ErrUnsupported = errors.New("pdf: operation not supported by engine")
)

// Converter prints HTML to PDF with a headless Chrome instance that is reused across conversions.
// Each conversion opens its own tab, so a Converter is safe for concurrent use.
type Converter struct {
	cfg           converterConfig
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc

	mu     sync.Mutex
	closed bool
}

// NewConverter starts the browser. Callers must Close the Converter.
func NewConverter(opts ...Option) (*Converter, error) {
	cfg := defaultConverterConfig()
	for _, o := range opts {
		o(&cfg)
	}

	if cfg.chromePath == "" && cfg.autoDownload {
		path, err := downloadBrowser()
		if err != nil {
			return nil, err
		}
		cfg.chromePath = path
	}

	allocOpts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("no-first-run", true),
	)
	if cfg.chromePath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(cfg.chromePath))
	}
	if cfg.noSandbox {
		allocOpts = append(allocOpts, chromedp.NoSandbox)
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), allocOpts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// surface launch failures now rather than on the first request
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("pdf: starting browser: %w", err)
	}

	return &Converter{
		cfg:           cfg,
		allocCancel:   allocCancel,
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
	}, nil
}

// Close stops the browser. It is idempotent.
func (c *Converter) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	c.browserCancel()
	c.allocCancel()
	return nil
}

// ConvertHTML loads html into a blank tab and prints it. A nil pg uses DefaultPageConfig.
func (c *Converter) ConvertHTML(ctx context.Context, html string, pg *PageConfig) ([]byte, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	cfg := pg.resolved()

	if c.cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.timeout)
		defer cancel()
	}

	tabCtx, tabCancel := chromedp.NewContext(c.browserCtx)
	defer tabCancel()

	// the tab outlives ctx otherwise; tie them together
	stop := context.AfterFunc(ctx, tabCancel)
	defer stop()

	width, height := cfg.paperInches()
	var buf []byte
	err := chromedp.Run(tabCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			buf, _, err = page.PrintToPDF().
				WithPaperWidth(width).
				WithPaperHeight(height).
				WithMarginTop(cmToInches(cfg.Margin.Top)).
				WithMarginRight(cmToInches(cfg.Margin.Right)).
				WithMarginBottom(cmToInches(cfg.Margin.Bottom)).
				WithMarginLeft(cmToInches(cfg.Margin.Left)).
				WithScale(cfg.Scale).
				WithPrintBackground(cfg.PrintBackground).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		// Close cancels the browser under running tabs
		if closedErr := c.checkClosed(); closedErr != nil {
			return nil, closedErr
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("pdf: conversion aborted: %w", ctxErr)
		}
		return nil, fmt.Errorf("pdf: conversion failed: %w", err)
	}
	return buf, nil
}

func (c *Converter) checkClosed() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	return nil
}
