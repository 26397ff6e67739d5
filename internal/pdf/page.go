package pdf

import (
	"fmt"
	"strings"
)

// PageSize is a paper format in centimeters.
type PageSize struct {
	Width  float64
	Height float64
}

// Standard paper sizes.
var (
	A3      = PageSize{Width: 29.7, Height: 42.0}
	A4      = PageSize{Width: 21.0, Height: 29.7}
	A5      = PageSize{Width: 14.8, Height: 21.0}
	Letter  = PageSize{Width: 21.59, Height: 27.94}
	Legal   = PageSize{Width: 21.59, Height: 35.56}
	Tabloid = PageSize{Width: 27.94, Height: 43.18}
)

var sizesByName = map[string]PageSize{
	"a3":      A3,
	"a4":      A4,
	"a5":      A5,
	"letter":  Letter,
	"legal":   Legal,
	"tabloid": Tabloid,
}

// PageSizeByName resolves a format name such as "A4" or "letter".
func PageSizeByName(name string) (PageSize, error) {
	s, ok := sizesByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return PageSize{}, fmt.Errorf("pdf: unknown paper format %q", name)
	}
	return s, nil
}

// Margin is a set of page margins in centimeters.
type Margin struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// UniformMargin returns the same margin on all sides.
func UniformMargin(cm float64) Margin {
	return Margin{Top: cm, Right: cm, Bottom: cm, Left: cm}
}

// PageConfig controls the physical layout of generated documents.
// Zero fields fall back to DefaultPageConfig, except PrintBackground which is taken as given.
type PageConfig struct {
	Size            PageSize
	Landscape       bool
	Margin          Margin
	Scale           float64
	PrintBackground bool
}

// DefaultPageConfig is A4 portrait, 1 cm margins, scale 1 and background printing on.
func DefaultPageConfig() PageConfig {
	return PageConfig{
		Size:            A4,
		Margin:          UniformMargin(1.0),
		Scale:           1.0,
		PrintBackground: true,
	}
}

func (p *PageConfig) resolved() PageConfig {
	d := DefaultPageConfig()
	if p == nil {
		return d
	}
	r := *p
	if r.Size == (PageSize{}) {
		r.Size = d.Size
	}
	if r.Margin == (Margin{}) {
		r.Margin = d.Margin
	}
	if r.Scale <= 0 {
		r.Scale = d.Scale
	}
	return r
}

func cmToInches(cm float64) float64 { return cm / 2.54 }

// paperInches returns width and height in inches after applying orientation.
func (p PageConfig) paperInches() (float64, float64) {
	w, h := cmToInches(p.Size.Width), cmToInches(p.Size.Height)
	if p.Landscape {
		return h, w
	}
	return w, h
}
