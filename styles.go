package artgrid

import (
	"math/rand"
	"strings"
)

// Style renders one block variant. Implementations are stateless pure
// rules over (origin, size, colors); every sub-variant choice comes
// from the supplied random source, so a seeded run reproduces all of
// them.
type Style interface {
	Name() string
	Render(c *Canvas, x, y, size float64, fg, bg string, rng *rand.Rand)
}

// StyleDots is excluded from focal blocks: a dot grid scaled past one
// cell reads as noise rather than a focal point.
const StyleDots = "dots"

// Registry is an ordered set of block styles.
type Registry []Style

// DefaultRegistry returns the full style catalogue in canonical order.
func DefaultRegistry() Registry {
	return Registry{
		circleStyle{},
		oppositeCirclesStyle{},
		crossStyle{},
		halfSquareStyle{},
		diagonalSquareStyle{},
		quarterCircleStyle{},
		dotsStyle{},
		letterStyle{},
	}
}

// Names lists the registry's style names.
func (r Registry) Names() []string {
	out := make([]string, len(r))
	for i, s := range r {
		out[i] = s.Name()
	}
	return out
}

// NamesList is the comma joined form used in CLI help text.
func (r Registry) NamesList() string {
	return strings.Join(r.Names(), ",")
}

// Filter keeps only the named styles. An empty or fully unmatched
// selection falls back to the whole registry.
func (r Registry) Filter(names []string) Registry {
	if len(names) == 0 {
		return r
	}
	allowed := make(map[string]bool, len(names))
	for _, n := range names {
		allowed[n] = true
	}
	out := make(Registry, 0, len(r))
	for _, s := range r {
		if allowed[s.Name()] {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return r
	}
	return out
}

// Focal removes the dots style. If nothing remains the full registry
// minus dots is used instead.
func (r Registry) Focal() Registry {
	out := make(Registry, 0, len(r))
	for _, s := range r {
		if s.Name() != StyleDots {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return DefaultRegistry().Focal()
	}
	return out
}

func (r Registry) pick(rng *rand.Rand) Style {
	return r[rng.Intn(len(r))]
}

type circleStyle struct{}

func (circleStyle) Name() string { return "circle" }

func (circleStyle) Render(c *Canvas, x, y, size float64, fg, bg string, rng *rand.Rand) {
	c.Group("draw-circle")
	c.Rect(x, y, size, size, bg)
	c.Circle(x+size/2, y+size/2, size/2, fg)
	if rng.Float64() < 0.3 {
		// Punch a ring with a concentric background-colored circle.
		c.Circle(x+size/2, y+size/2, size/4, bg)
	}
	c.GroupEnd()
}

type oppositeCirclesStyle struct{}

func (oppositeCirclesStyle) Name() string { return "opposite_circles" }

func (oppositeCirclesStyle) Render(c *Canvas, x, y, size float64, fg, bg string, rng *rand.Rand) {
	c.Group("draw-opposite-circles")
	c.Rect(x, y, size, size, bg)
	// Circle centers sit on one of the two diagonals.
	diagonals := [2][4]float64{
		{0, 0, size, size},
		{size, 0, 0, size},
	}
	d := diagonals[rng.Intn(2)]
	c.ClipToCell(x, y, size)
	c.Circle(x+d[0], y+d[1], size/2, fg)
	c.Circle(x+d[2], y+d[3], size/2, fg)
	c.GroupEnd()
	c.GroupEnd()
}

type crossStyle struct{}

func (crossStyle) Name() string { return "cross" }

func (crossStyle) Render(c *Canvas, x, y, size float64, fg, bg string, rng *rand.Rand) {
	c.Group("draw-cross")
	c.Rect(x, y, size, size, bg)
	if rng.Float64() < 0.5 {
		// Plus: two perpendicular bars, each a third of the block thick.
		c.Rect(x, y+size/3, size, size/3, fg)
		c.Rect(x+size/3, y, size/3, size, fg)
	} else {
		// X: each diagonal is a thick line rendered as a quad.
		w := size / 6
		q1 := thickLineQuad(Point{x, y}, Point{x + size, y + size}, w)
		q2 := thickLineQuad(Point{x + size, y}, Point{x, y + size}, w)
		c.Polygon(q1[:], fg)
		c.Polygon(q2[:], fg)
	}
	c.GroupEnd()
}

type halfSquareStyle struct{}

func (halfSquareStyle) Name() string { return "half_square" }

func (halfSquareStyle) Render(c *Canvas, x, y, size float64, fg, bg string, rng *rand.Rand) {
	c.Group("draw-half-square")
	c.Rect(x, y, size, size, bg)
	switch rng.Intn(4) {
	case 0: // top
		c.Rect(x, y, size, size/2, fg)
	case 1: // right
		c.Rect(x+size/2, y, size/2, size, fg)
	case 2: // bottom
		c.Rect(x, y+size/2, size, size/2, fg)
	default: // left
		c.Rect(x, y, size/2, size, fg)
	}
	c.GroupEnd()
}

type diagonalSquareStyle struct{}

func (diagonalSquareStyle) Name() string { return "diagonal_square" }

func (diagonalSquareStyle) Render(c *Canvas, x, y, size float64, fg, bg string, rng *rand.Rand) {
	c.Group("draw-diagonal-square")
	c.Rect(x, y, size, size, bg)
	if rng.Float64() < 0.5 {
		c.Polygon([]Point{{x, y}, {x + size, y + size}, {x, y + size}}, fg)
	} else {
		c.Polygon([]Point{{x + size, y}, {x + size, y + size}, {x, y}}, fg)
	}
	c.GroupEnd()
}

type quarterCircleStyle struct{}

func (quarterCircleStyle) Name() string { return "quarter_circle" }

func (quarterCircleStyle) Render(c *Canvas, x, y, size float64, fg, bg string, rng *rand.Rand) {
	c.Group("draw-quarter-circle")
	c.Rect(x, y, size, size, bg)
	corners := [4]corner{topLeft, topRight, bottomRight, bottomLeft}
	c.Path(quarterArcPath(x, y, size, corners[rng.Intn(4)]), fg)
	c.GroupEnd()
}

type dotsStyle struct{}

func (dotsStyle) Name() string { return StyleDots }

func (dotsStyle) Render(c *Canvas, x, y, size float64, fg, bg string, rng *rand.Rand) {
	c.Group("draw-dots")
	c.Rect(x, y, size, size, bg)
	n := 2 + rng.Intn(3) // 2, 3 or 4 per axis: 4, 9 or 16 dots
	sub := size / float64(n)
	radius := sub * 0.3
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			c.Circle(x+(float64(i)+0.5)*sub, y+(float64(j)+0.5)*sub, radius, fg)
		}
	}
	c.GroupEnd()
}

// letterGlyphs are single characters that read well in a bold
// monospace face.
const letterGlyphs = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789+-*/=#@&%$"

type letterStyle struct{}

func (letterStyle) Name() string { return "letter_block" }

func (letterStyle) Render(c *Canvas, x, y, size float64, fg, bg string, rng *rand.Rand) {
	c.Group("draw-letter-block")
	c.Rect(x, y, size, size, bg)
	glyph := string(letterGlyphs[rng.Intn(len(letterGlyphs))])
	c.Text(x+size/2, y+size/2+size*0.3, size*0.8, glyph, fg)
	c.GroupEnd()
}
