package palette

import "github.com/lucasb-eyer/go-colorful"

// Mix averages two colors channel by channel using integer math, the
// 50% blend used when deriving the background gradient.
func Mix(a, b colorful.Color) colorful.Color {
	ar, ag, ab := a.RGB255()
	br, bg, bb := b.RGB255()
	return rgbInt((int(ar)+int(br))/2, (int(ag)+int(bg))/2, (int(ab)+int(bb))/2)
}

// Desaturate lowers HSL saturation by amount, clamped at zero.
func Desaturate(c colorful.Color, amount float64) colorful.Color {
	h, s, l := c.Hsl()
	s = max(0, s-amount)
	return colorful.Hsl(h, s, l).Clamped()
}

// AdjustLightness shifts HSL lightness by delta, clamped to [0,1].
func AdjustLightness(c colorful.Color, delta float64) colorful.Color {
	h, s, l := c.Hsl()
	l = min(1, max(0, l+delta))
	return colorful.Hsl(h, s, l).Clamped()
}

// Brightness scores a color with the Rec. 601 luma weights over 8-bit
// channels. Ranking only, never display.
func Brightness(c colorful.Color) float64 {
	r, g, b := c.RGB255()
	return 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
}

func rgbInt(r, g, b int) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}
