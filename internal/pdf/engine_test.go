package pdf_test

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/report-export-service/internal/model"
	"github.com/maxviazov/report-export-service/internal/pdf"
	"github.com/maxviazov/report-export-service/internal/render"
)

type fakeConverter struct {
	html string
	page *pdf.PageConfig
	err  error
}

func (f *fakeConverter) ConvertHTML(_ context.Context, html string, pg *pdf.PageConfig) ([]byte, error) {
	f.html = html
	f.page = pg
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-fake"), nil
}

func document(t *testing.T, n, pageSize int) render.Document {
	t.Helper()
	ds, err := model.SampleDataset(n, 1)
	require.NoError(t, err)
	pages, err := ds.Paginate(pageSize)
	require.NoError(t, err)
	return render.Document{
		Columns: model.SampleColumns,
		Fields:  ds.Fields(),
		Pages:   pages,
		Header: model.ReportHeader{
			Business: model.Business{Name: "Novosystem SpA", Address: "Libertadores 1285", Town: "Maipu", City: "Santiago"},
			User:     model.User{Name: "Charles Aránguiz", Module: "Desarrollo web"},
			Report:   model.ReportInfo{Title: "Planilla", Subtitle: "Un subtitulo"},
		},
		Date: "5-3-2024",
	}
}

func isPDF(b []byte) bool { return bytes.HasPrefix(b, []byte("%PDF-")) }

func TestHTMLEngine_RendersThenPrints(t *testing.T) {
	r, err := render.New()
	require.NoError(t, err)
	conv := &fakeConverter{}
	page := pdf.DefaultPageConfig()
	e := pdf.NewHTMLEngine(r, conv, page)

	out, err := e.Render(context.Background(), document(t, 30, 25))
	require.NoError(t, err)
	assert.True(t, isPDF(out))
	assert.Equal(t, 2, strings.Count(conv.html, `<section class="page">`))
	require.NotNil(t, conv.page)
	assert.Equal(t, pdf.A4, conv.page.Size)
	assert.True(t, conv.page.PrintBackground)
}

func TestHTMLEngine_RenderTemplate(t *testing.T) {
	r, err := render.New()
	require.NoError(t, err)
	conv := &fakeConverter{}
	e := pdf.NewHTMLEngine(r, conv, pdf.DefaultPageConfig())

	_, err = e.RenderTemplate(context.Background(), "mini", `<p>{{ .PageCount }}</p>`, document(t, 3, 2))
	require.NoError(t, err)
	assert.Equal(t, "<p>2</p>", conv.html)

	_, err = e.RenderTemplate(context.Background(), "bad", `{{ .PageCount `, document(t, 3, 2))
	assert.ErrorIs(t, err, render.ErrInvalidTemplate)
}

func TestHTMLEngine_ConverterErrorPropagates(t *testing.T) {
	r, err := render.New()
	require.NoError(t, err)
	boom := errors.New("chrome crashed")
	e := pdf.NewHTMLEngine(r, &fakeConverter{err: boom}, pdf.DefaultPageConfig())
	_, err = e.Render(context.Background(), document(t, 1, 25))
	assert.ErrorIs(t, err, boom)
}

func TestNativeEngine_Render(t *testing.T) {
	e := pdf.NewNativeEngine(pdf.PageConfig{Size: pdf.A4, Landscape: true})
	doc := document(t, 12, 5)

	out, err := e.Render(context.Background(), doc)
	require.NoError(t, err)
	assert.True(t, isPDF(out))

	pages := strings.Count(string(out), "/Type /Page") - strings.Count(string(out), "/Type /Pages")
	assert.Equal(t, 3, pages)
}

func TestNativeEngine_EmptyDocumentHasOnePage(t *testing.T) {
	e := pdf.NewNativeEngine(pdf.DefaultPageConfig())
	out, err := e.Render(context.Background(), document(t, 0, 25))
	require.NoError(t, err)
	pages := strings.Count(string(out), "/Type /Page") - strings.Count(string(out), "/Type /Pages")
	assert.Equal(t, 1, pages)
}

func TestNativeEngine_Unsupported(t *testing.T) {
	e := pdf.NewNativeEngine(pdf.DefaultPageConfig())
	_, err := e.RenderTemplate(context.Background(), "x", "<p></p>", document(t, 1, 25))
	assert.ErrorIs(t, err, pdf.ErrUnsupported)
}

func TestNativeEngine_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := pdf.NewNativeEngine(pdf.DefaultPageConfig()).Render(ctx, document(t, 1, 25))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNativeEngine_LongCells(t *testing.T) {
	long := strings.Repeat("x", 20_000)
	records := make([]model.Record, 5)
	for i := range records {
		records[i] = model.Record{"name": long, "n": i}
	}
	ds, err := model.NewDataset([]string{"name", "n"}, records)
	require.NoError(t, err)
	pages, err := ds.Paginate(25)
	require.NoError(t, err)

	start := time.Now()
	out, err := pdf.NewNativeEngine(pdf.DefaultPageConfig()).Render(context.Background(), render.Document{
		Fields: ds.Fields(),
		Pages:  pages,
	})
	require.NoError(t, err)
	assert.True(t, isPDF(out))
	assert.Less(t, time.Since(start), 3*time.Second)
}

func chromeAvailable() bool {
	for _, name := range []string{"chromium-browser", "chromium", "google-chrome", "google-chrome-stable", "chrome"} {
		if _, err := exec.LookPath(name); err == nil {
			return true
		}
	}
	return false
}

func TestConverter_ConvertHTML(t *testing.T) {
	if !chromeAvailable() {
		t.Skip("skipping: Chrome/Chromium not found in PATH")
	}
	c, err := pdf.NewConverter(pdf.WithNoSandbox())
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	out, err := c.ConvertHTML(context.Background(), "<h1>Planilla</h1>", nil)
	require.NoError(t, err)
	assert.True(t, isPDF(out))

	slow := `<body><script>const end = Date.now() + 5000; while (Date.now() < end) {}</script></body>`
	errCh := make(chan error, 1)
	go func() {
		_, err := c.ConvertHTML(context.Background(), slow, nil)
		errCh <- err
	}()
	time.Sleep(500 * time.Millisecond)

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
	// a conversion cut short by Close reports ErrClosed, not the canceled browser context
	if err := <-errCh; err != nil {
		assert.ErrorIs(t, err, pdf.ErrClosed)
	}
	_, err = c.ConvertHTML(context.Background(), "<p></p>", nil)
	assert.ErrorIs(t, err, pdf.ErrClosed)
}
