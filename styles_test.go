package artgrid

import (
	"bytes"
	"math/rand"
	"slices"
	"strings"
	"testing"
)

func renderStyle(s Style, seed int64) string {
	var buf bytes.Buffer
	c := NewCanvas(&buf)
	s.Render(c, 0, 0, 12, "#112233", "#445566", rand.New(rand.NewSource(seed)))
	return buf.String()
}

func TestEveryStyleDrawsBackgroundFirst(t *testing.T) {
	for _, s := range DefaultRegistry() {
		out := renderStyle(s, 1)
		bg := strings.Index(out, "#445566")
		fg := strings.Index(out, "#112233")
		if bg < 0 {
			t.Errorf("style %s: background color missing", s.Name())
			continue
		}
		if fg < 0 {
			t.Errorf("style %s: foreground color missing", s.Name())
			continue
		}
		if bg > fg {
			t.Errorf("style %s draws foreground before its background", s.Name())
		}
	}
}

func TestStyleNamesAreUnique(t *testing.T) {
	names := DefaultRegistry().Names()
	for i, n := range names {
		if slices.Index(names, n) != i {
			t.Errorf("duplicate style name %s", n)
		}
	}
	if len(names) != 8 {
		t.Errorf("registry holds %d styles, want 8", len(names))
	}
}

func TestFilterKeepsSelection(t *testing.T) {
	r := DefaultRegistry().Filter([]string{"circle", "dots"})
	got := r.Names()
	if len(got) != 2 || got[0] != "circle" || got[1] != "dots" {
		t.Errorf("filtered names = %v", got)
	}
}

func TestFilterFallsBackToFullRegistry(t *testing.T) {
	full := DefaultRegistry()
	if got := full.Filter([]string{"no-such-style"}); len(got) != len(full) {
		t.Errorf("fallback registry holds %d styles, want %d", len(got), len(full))
	}
	if got := full.Filter(nil); len(got) != len(full) {
		t.Errorf("empty selection holds %d styles, want %d", len(got), len(full))
	}
}

func TestFocalExcludesDots(t *testing.T) {
	for _, n := range DefaultRegistry().Focal().Names() {
		if n == StyleDots {
			t.Fatal("focal registry still contains dots")
		}
	}
	// A dots-only selection must not leave the focal set empty.
	r := DefaultRegistry().Filter([]string{StyleDots}).Focal()
	if len(r) == 0 {
		t.Fatal("focal fallback produced an empty registry")
	}
	if slices.Contains(r.Names(), StyleDots) {
		t.Fatal("focal fallback reintroduced dots")
	}
}

func TestDotsCountsFollowSubGrid(t *testing.T) {
	// Across seeds the dot count is always n*n for n in {2,3,4}.
	for seed := int64(0); seed < 20; seed++ {
		out := renderStyle(dotsStyle{}, seed)
		dots := strings.Count(out, "<circle")
		if dots != 4 && dots != 9 && dots != 16 {
			t.Fatalf("seed %d: %d dots", seed, dots)
		}
	}
}

func TestOppositeCirclesAreMasked(t *testing.T) {
	out := renderStyle(oppositeCirclesStyle{}, 3)
	if !strings.Contains(out, "<mask") {
		t.Error("expected a mask element")
	}
	if !strings.Contains(out, `mask="url(#`) {
		t.Error("expected the circle group to reference its mask")
	}
	if strings.Count(out, "<circle") != 2 {
		t.Errorf("expected two circles, got %d", strings.Count(out, "<circle"))
	}
}

func TestLetterBlockTypography(t *testing.T) {
	out := renderStyle(letterStyle{}, 5)
	if !strings.Contains(out, "font-family:monospace") || !strings.Contains(out, "font-weight:bold") {
		t.Error("letter block must use the bold monospace face")
	}
	// 0.8 of the 12px test block.
	if !strings.Contains(out, "font-size:9.6") {
		t.Error("letter block font size should be 0.8 of the block size")
	}
	if !strings.Contains(out, "text-anchor:middle") {
		t.Error("glyph must be centered")
	}
}
