package artgrid

import (
	"fmt"
	"math"
)

// Point is a coordinate in output document space.
type Point struct {
	X, Y float64
}

// thickLineQuad renders the segment a-b as a filled quadrilateral of
// the given width: both endpoints are offset by ±(unit normal ·
// width/2). Bar width is preserved for any segment length.
func thickLineQuad(a, b Point, width float64) [4]Point {
	dx := b.X - a.X
	dy := b.Y - a.Y
	length := math.Hypot(dx, dy)
	nx := -dy / length
	ny := dx / length
	hw := width / 2
	return [4]Point{
		{a.X + nx*hw, a.Y + ny*hw},
		{b.X + nx*hw, b.Y + ny*hw},
		{b.X - nx*hw, b.Y - ny*hw},
		{a.X - nx*hw, a.Y - ny*hw},
	}
}

type corner int

const (
	topLeft corner = iota
	topRight
	bottomRight
	bottomLeft
)

// quarterArcPath builds a quarter-disk path anchored at the given
// corner of the size×size block: a 90° sweep with radius equal to the
// full block size, closed back through the corner.
func quarterArcPath(x, y, size float64, c corner) string {
	switch c {
	case topRight:
		return fmt.Sprintf("M %g %g A %g %g 0 0 1 %g %g L %g %g",
			x+size, y, size, size, x+size, y+size, x+size, y)
	case bottomRight:
		return fmt.Sprintf("M %g %g A %g %g 0 0 1 %g %g L %g %g",
			x+size, y+size, size, size, x, y+size, x+size, y+size)
	case bottomLeft:
		return fmt.Sprintf("M %g %g A %g %g 0 0 1 %g %g L %g %g",
			x, y+size, size, size, x, y, x, y+size)
	default: // topLeft
		return fmt.Sprintf("M %g %g A %g %g 0 0 1 %g %g L %g %g",
			x, y, size, size, x+size, y, x, y)
	}
}
