package spreadsheet

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// Color is an ARGB colour as used in workbook styling, e.g. {"argb": "FFDAA520"}.
type Color struct {
	ARGB string `json:"argb"`
}

// Font describes a cell font.
type Font struct {
	Name      string  `json:"name,omitempty"`
	Size      float64 `json:"size,omitempty"`
	Bold      bool    `json:"bold,omitempty"`
	Italic    bool    `json:"italic,omitempty"`
	Underline bool    `json:"underline,omitempty"`
	// Outline is accepted but not written: excelize fonts have no outline attribute.
	Outline bool   `json:"outline,omitempty"`
	Color   *Color `json:"color,omitempty"`
}

// Fill describes a pattern fill. Only "pattern" fills are supported.
type Fill struct {
	Type    string `json:"type,omitempty"`
	Pattern string `json:"pattern,omitempty"`
	FgColor *Color `json:"fgColor,omitempty"`
	BgColor *Color `json:"bgColor,omitempty"`
}

// Alignment describes horizontal and vertical cell alignment.
type Alignment struct {
	Horizontal string `json:"horizontal,omitempty"`
	Vertical   string `json:"vertical,omitempty"`
	WrapText   bool   `json:"wrapText,omitempty"`
}

// BorderEdge is one side of a cell border.
type BorderEdge struct {
	Style string `json:"style,omitempty"`
	Color *Color `json:"color,omitempty"`
}

// Border describes the four sides of a cell border.
type Border struct {
	Top    *BorderEdge `json:"top,omitempty"`
	Left   *BorderEdge `json:"left,omitempty"`
	Bottom *BorderEdge `json:"bottom,omitempty"`
	Right  *BorderEdge `json:"right,omitempty"`
}

// Styles is the workbook look: data cell styling, header overrides and the default column width.
type Styles struct {
	Alignment  *Alignment `json:"alignment,omitempty"`
	ColWidth   float64    `json:"colWidth,omitempty"`
	Font       *Font      `json:"font,omitempty"`
	Fill       *Fill      `json:"fill,omitempty"`
	HeaderFont *Font      `json:"headerFont,omitempty"`
	HeaderFill *Fill      `json:"headerFill,omitempty"`
	Border     *Border    `json:"border,omitempty"`
}

// DefaultStyles is the recommended look: centered wrapped text, moccasin rows and a goldenrod header.
func DefaultStyles() *Styles {
	thin := func() *BorderEdge { return &BorderEdge{Style: "thin"} }
	return &Styles{
		Alignment: &Alignment{Vertical: "middle", Horizontal: "center", WrapText: true},
		ColWidth:  20,
		Font:      &Font{Name: "Calibri", Size: 11, Outline: true},
		Fill:      &Fill{Type: "pattern", Pattern: "solid", FgColor: &Color{ARGB: "FFFFE4B5"}},
		HeaderFont: &Font{
			Name:  "Arial",
			Bold:  true,
			Size:  12,
			Color: &Color{ARGB: "FF000000"},
		},
		HeaderFill: &Fill{
			Type:    "pattern",
			Pattern: "solid",
			FgColor: &Color{ARGB: "FFDAA520"},
			BgColor: &Color{ARGB: "FF0000FF"},
		},
		Border: &Border{Top: thin(), Left: thin(), Bottom: thin(), Right: thin()},
	}
}

var borderStyles = map[string]int{
	"thin":             1,
	"medium":           2,
	"dashed":           3,
	"dotted":           4,
	"thick":            5,
	"double":           6,
	"hair":             7,
	"mediumDashed":     8,
	"dashDot":          9,
	"mediumDashDot":    10,
	"dashDotDot":       11,
	"mediumDashDotDot": 12,
	"slantDashDot":     13,
}

var fillPatterns = map[string]int{
	"none":            0,
	"solid":           1,
	"mediumGray":      2,
	"darkGray":        3,
	"lightGray":       4,
	"darkHorizontal":  5,
	"darkVertical":    6,
	"darkDown":        7,
	"darkUp":          8,
	"darkGrid":        9,
	"darkTrellis":     10,
	"lightHorizontal": 11,
	"lightVertical":   12,
	"lightDown":       13,
	"lightUp":         14,
	"lightGrid":       15,
	"lightTrellis":    16,
	"gray125":         17,
	"gray0625":        18,
}

// rgb reduces an ARGB colour to the RRGGBB form excelize expects.
func rgb(c *Color) string {
	if c == nil {
		return ""
	}
	s := strings.TrimPrefix(strings.TrimSpace(c.ARGB), "#")
	if len(s) == 8 {
		s = s[2:]
	}
	return strings.ToUpper(s)
}

func (f *Font) toExcel() *excelize.Font {
	if f == nil {
		return nil
	}
	out := &excelize.Font{
		Family: f.Name,
		Size:   f.Size,
		Bold:   f.Bold,
		Italic: f.Italic,
		Color:  rgb(f.Color),
	}
	if f.Underline {
		out.Underline = "single"
	}
	return out
}

func (f *Fill) toExcel() excelize.Fill {
	if f == nil || (f.Type != "" && f.Type != "pattern") {
		return excelize.Fill{}
	}
	color := rgb(f.FgColor)
	if color == "" {
		return excelize.Fill{}
	}
	pattern, ok := fillPatterns[f.Pattern]
	if !ok {
		pattern = 1
	}
	return excelize.Fill{Type: "pattern", Pattern: pattern, Color: []string{color}}
}

func (a *Alignment) toExcel() *excelize.Alignment {
	if a == nil {
		return nil
	}
	return &excelize.Alignment{Horizontal: a.Horizontal, Vertical: a.Vertical, WrapText: a.WrapText}
}

func (b *Border) toExcel() []excelize.Border {
	if b == nil {
		return nil
	}
	var out []excelize.Border
	add := func(side string, e *BorderEdge) {
		if e == nil {
			return
		}
		style, ok := borderStyles[e.Style]
		if !ok {
			return
		}
		color := rgb(e.Color)
		if color == "" {
			color = "000000"
		}
		out = append(out, excelize.Border{Type: side, Color: color, Style: style})
	}
	add("top", b.Top)
	add("left", b.Left)
	add("bottom", b.Bottom)
	add("right", b.Right)
	return out
}

// dataStyle is applied to every body cell; numFmt is an optional custom number format.
func (s *Styles) dataStyle(numFmt string) *excelize.Style {
	st := &excelize.Style{}
	if s != nil {
		st.Font = s.Font.toExcel()
		st.Alignment = s.Alignment.toExcel()
		st.Fill = s.Fill.toExcel()
		st.Border = s.Border.toExcel()
	}
	if numFmt != "" {
		st.CustomNumFmt = &numFmt
	}
	return st
}

// headerStyle keeps the data border and alignment and overrides font and fill.
func (s *Styles) headerStyle() *excelize.Style {
	font, fill := s.HeaderFont, s.HeaderFill
	if font == nil {
		font = s.Font
	}
	if fill == nil {
		fill = s.Fill
	}
	return &excelize.Style{
		Font:      font.toExcel(),
		Alignment: s.Alignment.toExcel(),
		Fill:      fill.toExcel(),
		Border:    s.Border.toExcel(),
	}
}
