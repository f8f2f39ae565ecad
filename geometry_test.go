package artgrid

import (
	"math"
	"testing"
)

func TestThickLineQuadHorizontal(t *testing.T) {
	q := thickLineQuad(Point{0, 0}, Point{10, 0}, 2)
	want := [4]Point{{0, 1}, {10, 1}, {10, -1}, {0, -1}}
	for i := range q {
		if math.Abs(q[i].X-want[i].X) > 1e-9 || math.Abs(q[i].Y-want[i].Y) > 1e-9 {
			t.Fatalf("point %d = %+v, want %+v", i, q[i], want[i])
		}
	}
}

func TestThickLineQuadPreservesWidth(t *testing.T) {
	sizes := []float64{6, 10, 100, 300}
	for _, size := range sizes {
		width := size / 6
		q := thickLineQuad(Point{0, 0}, Point{size, size}, width)
		got := math.Hypot(q[0].X-q[3].X, q[0].Y-q[3].Y)
		if math.Abs(got-width) > 1e-9 {
			t.Errorf("size %v: bar width %v, want %v", size, got, width)
		}
		// The far edge must stay parallel at the same separation.
		got = math.Hypot(q[1].X-q[2].X, q[1].Y-q[2].Y)
		if math.Abs(got-width) > 1e-9 {
			t.Errorf("size %v: far edge width %v, want %v", size, got, width)
		}
	}
}

func TestThickLineQuadOffsetsArePerpendicular(t *testing.T) {
	a, b := Point{3, 7}, Point{12, 1}
	q := thickLineQuad(a, b, 4)
	dx, dy := b.X-a.X, b.Y-a.Y
	ox, oy := q[0].X-a.X, q[0].Y-a.Y
	if dot := dx*ox + dy*oy; math.Abs(dot) > 1e-9 {
		t.Errorf("offset not perpendicular to the segment, dot = %v", dot)
	}
}

func TestQuarterArcPathCorners(t *testing.T) {
	cases := []struct {
		c    corner
		want string
	}{
		{topLeft, "M 0 0 A 10 10 0 0 1 10 0 L 0 0"},
		{topRight, "M 10 0 A 10 10 0 0 1 10 10 L 10 0"},
		{bottomRight, "M 10 10 A 10 10 0 0 1 0 10 L 10 10"},
		{bottomLeft, "M 0 10 A 10 10 0 0 1 0 0 L 0 10"},
	}
	for _, tc := range cases {
		if got := quarterArcPath(0, 0, 10, tc.c); got != tc.want {
			t.Errorf("corner %d: %q, want %q", tc.c, got, tc.want)
		}
	}
}
