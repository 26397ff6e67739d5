// Package render turns paginated datasets into HTML documents ready for rasterization.
package render

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"strconv"
	"time"

	"github.com/maxviazov/report-export-service/internal/model"
)

//go:embed templates/report.html templates/style.css
var assets embed.FS

// ErrInvalidTemplate is returned when a template source cannot be parsed.
var ErrInvalidTemplate = errors.New("invalid template")

// DateLayout prints day-month-year without zero padding, e.g. 5-3-2024.
const DateLayout = "2-1-2006"

// Document is everything a report template needs.
// Columns are display headers matched by position to Fields, the record keys.
type Document struct {
	Columns    []string
	Fields     []string
	Pages      model.PageSet
	Header     model.ReportHeader
	Date       string
	PageCount  int
	TruncateAt int
}

// HeaderRow returns the column headers, falling back to the field names.
func (d Document) HeaderRow() []string {
	if len(d.Columns) == 0 {
		return d.Fields
	}
	return d.Columns
}

// view is the value templates execute against.
type view struct {
	Document
	Style template.CSS
}

// Renderer executes report templates. It is safe for concurrent use.
type Renderer struct {
	tpl   *template.Template
	style template.CSS
}

// Option configures a Renderer.
type Option func(*Renderer) error

// WithStylesheet replaces the embedded stylesheet.
func WithStylesheet(css string) Option {
	return func(r *Renderer) error {
		r.style = template.CSS(css)
		return nil
	}
}

// WithTemplate replaces the embedded report template.
func WithTemplate(src string) Option {
	return func(r *Renderer) error {
		tpl, err := parse("report", src)
		if err != nil {
			return err
		}
		r.tpl = tpl
		return nil
	}
}

// New parses the embedded report template and stylesheet.
func New(opts ...Option) (*Renderer, error) {
	src, err := assets.ReadFile("templates/report.html")
	if err != nil {
		return nil, fmt.Errorf("render: reading embedded template: %w", err)
	}
	css, err := assets.ReadFile("templates/style.css")
	if err != nil {
		return nil, fmt.Errorf("render: reading embedded stylesheet: %w", err)
	}
	tpl, err := parse("report", string(src))
	if err != nil {
		return nil, err
	}
	r := &Renderer{tpl: tpl, style: template.CSS(css)}
	for _, o := range opts {
		if err := o(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Render executes the configured template.
func (r *Renderer) Render(doc Document) (string, error) {
	return r.execute(r.tpl, doc)
}

// RenderSource parses src and executes it against doc. Used for templates stored in the database.
func (r *Renderer) RenderSource(name, src string, doc Document) (string, error) {
	tpl, err := parse(name, src)
	if err != nil {
		return "", err
	}
	return r.execute(tpl, doc)
}

// Validate reports whether src parses as a report template.
func Validate(name, src string) error {
	_, err := parse(name, src)
	return err
}

func (r *Renderer) execute(tpl *template.Template, doc Document) (string, error) {
	if len(doc.Columns) > 0 && len(doc.Columns) != len(doc.Fields) {
		return "", fmt.Errorf("render: %d columns for %d fields", len(doc.Columns), len(doc.Fields))
	}
	doc.Columns = doc.HeaderRow()
	if doc.PageCount == 0 {
		doc.PageCount = len(doc.Pages)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, view{Document: doc, Style: r.style}); err != nil {
		return "", fmt.Errorf("render: executing %q: %w", tpl.Name(), err)
	}
	return buf.String(), nil
}

func parse(name, src string) (*template.Template, error) {
	tpl, err := template.New(name).Funcs(funcMap).Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}
	return tpl, nil
}

var funcMap = template.FuncMap{
	"cell":     FormatCell,
	"truncate": Truncate,
	"add":      func(a, b int) int { return a + b },
}

// FormatCell prints a record value the way it appears in a table cell.
func FormatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case time.Time:
		return x.Format(time.DateOnly)
	default:
		return fmt.Sprint(x)
	}
}

// Truncate cuts s to at most n runes. n <= 0 disables truncation.
func Truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// FormatDate renders the report date in DateLayout.
func FormatDate(t time.Time) string { return t.Format(DateLayout) }
