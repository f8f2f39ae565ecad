package artgrid

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"
)

// Canvas is a thin layer over the SVG document writer. Styles append
// primitives through it and the z-order is simply emission order, so
// later draws sit on top of earlier ones.
type Canvas struct {
	doc   *svg.SVG
	masks int
}

// NewCanvas wraps w in a drawing sink. Nothing is written until Start.
func NewCanvas(w io.Writer) *Canvas {
	return &Canvas{doc: svg.New(w)}
}

// Start opens the document and declares crisp shape edges once for the
// whole output.
func (c *Canvas) Start(width, height float64) {
	c.doc.Start(width, height)
	c.doc.Style("text/css", "svg * { shape-rendering: crispEdges; }")
}

// End closes the document.
func (c *Canvas) End() {
	c.doc.End()
}

// Background paints the full-canvas radial gradient base layer.
func (c *Canvas) Background(width, height float64, inner, outer string) {
	c.doc.Def()
	c.doc.RadialGradient("background-gradient", 50, 50, 50, 50, 50, []svg.Offcolor{
		{Offset: 0, Color: inner, Opacity: 1},
		{Offset: 100, Color: outer, Opacity: 1},
	})
	c.doc.DefEnd()
	c.doc.Rect(0, 0, width, height, "fill:url(#background-gradient)")
}

// Group opens a <g> with the given class.
func (c *Canvas) Group(class string) {
	c.doc.Group(fmt.Sprintf(`class=%q`, class))
}

// GroupEnd closes the innermost open group.
func (c *Canvas) GroupEnd() {
	c.doc.Gend()
}

func (c *Canvas) Rect(x, y, w, h float64, fill string) {
	c.doc.Rect(x, y, w, h, "fill:"+fill)
}

func (c *Canvas) Circle(cx, cy, r float64, fill string) {
	c.doc.Circle(cx, cy, r, "fill:"+fill)
}

func (c *Canvas) Polygon(pts []Point, fill string) {
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = p.X
		ys[i] = p.Y
	}
	c.doc.Polygon(xs, ys, "fill:"+fill)
}

func (c *Canvas) Path(d, fill string) {
	c.doc.Path(d, "fill:"+fill)
}

// Text draws a single centered glyph in the bold monospace face every
// letter block uses.
func (c *Canvas) Text(x, y, fontSize float64, s, fill string) {
	c.doc.Text(x, y, s,
		"font-family:monospace",
		"font-weight:bold",
		fmt.Sprintf("font-size:%gpx", fontSize),
		"text-anchor:middle",
		"fill:"+fill)
}

// ClipToCell opens a group masked to the given square so shapes that
// extend past the block edge do not bleed into neighbours. Close it
// with GroupEnd.
func (c *Canvas) ClipToCell(x, y, size float64) {
	id := fmt.Sprintf("block-mask-%d", c.masks)
	c.masks++
	c.doc.Mask(id, x, y, size, size)
	c.doc.Rect(x, y, size, size, "fill:white")
	c.doc.MaskEnd()
	c.doc.Group(fmt.Sprintf(`mask="url(#%s)"`, id))
}
