package pdf

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 0.001 }

func TestDefaultPageConfig(t *testing.T) {
	d := DefaultPageConfig()
	if d.Size != A4 {
		t.Errorf("default size = %v, want A4", d.Size)
	}
	if d.Landscape {
		t.Error("default orientation is landscape, want portrait")
	}
	if !d.PrintBackground {
		t.Error("default PrintBackground = false, want true")
	}
	if d.Margin != UniformMargin(1.0) {
		t.Errorf("default margin = %v, want uniform 1.0", d.Margin)
	}
}

func TestPageConfigResolved(t *testing.T) {
	var nilCfg *PageConfig
	if got := nilCfg.resolved(); got != DefaultPageConfig() {
		t.Errorf("nil resolved = %+v, want defaults", got)
	}

	custom := &PageConfig{Size: Letter, Landscape: true, Scale: -1}
	r := custom.resolved()
	if r.Size != Letter || !r.Landscape {
		t.Errorf("explicit values lost: %+v", r)
	}
	if r.Scale != 1.0 {
		t.Errorf("scale = %v, want 1.0", r.Scale)
	}
	if r.Margin != UniformMargin(1.0) {
		t.Errorf("margin = %v, want default", r.Margin)
	}
	if r.PrintBackground {
		t.Error("explicit PrintBackground=false must be kept")
	}
}

func TestPaperInches(t *testing.T) {
	w, h := PageConfig{Size: A4}.paperInches()
	if !almostEqual(w, 8.2677) || !almostEqual(h, 11.6929) {
		t.Errorf("A4 portrait = %v x %v", w, h)
	}
	w, h = PageConfig{Size: A4, Landscape: true}.paperInches()
	if !almostEqual(w, 11.6929) || !almostEqual(h, 8.2677) {
		t.Errorf("A4 landscape = %v x %v", w, h)
	}
}

func TestPageSizeByName(t *testing.T) {
	cases := map[string]PageSize{"A4": A4, "letter": Letter, " Legal ": Legal, "a3": A3}
	for name, want := range cases {
		got, err := PageSizeByName(name)
		if err != nil || got != want {
			t.Errorf("PageSizeByName(%q) = %v, %v; want %v", name, got, err, want)
		}
	}
	if _, err := PageSizeByName("B5"); err == nil {
		t.Error("expected error for unknown format")
	}
}
