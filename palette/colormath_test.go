package palette

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func hex(t *testing.T, s string) colorful.Color {
	t.Helper()
	c, err := colorful.Hex(s)
	if err != nil {
		t.Fatalf("parse %s: %v", s, err)
	}
	return c
}

func TestMixCommutative(t *testing.T) {
	pairs := [][2]string{
		{"#ff0000", "#0000ff"},
		{"#123456", "#fedcba"},
		{"#000000", "#ffffff"},
	}
	for _, p := range pairs {
		a, b := hex(t, p[0]), hex(t, p[1])
		if Mix(a, b).Hex() != Mix(b, a).Hex() {
			t.Errorf("mix(%s,%s) != mix(%s,%s)", p[0], p[1], p[1], p[0])
		}
	}
}

func TestMixFloorsChannels(t *testing.T) {
	got := Mix(hex(t, "#ff0000"), hex(t, "#000001")).Hex()
	// (255+0)/2 = 127, (0+0)/2 = 0, (0+1)/2 = 0
	if got != "#7f0000" {
		t.Errorf("mix = %s, want #7f0000", got)
	}
}

func TestDesaturateClampsAtZero(t *testing.T) {
	gray := hex(t, "#808080")
	got := Desaturate(gray, 0.5)
	_, s, _ := got.Hsl()
	if s != 0 {
		t.Errorf("saturation = %v, want 0", s)
	}
}

func TestDesaturateReducesSaturation(t *testing.T) {
	c := hex(t, "#ff4040")
	_, before, _ := c.Hsl()
	_, after, _ := Desaturate(c, 0.1).Hsl()
	if after >= before {
		t.Errorf("saturation %v not reduced from %v", after, before)
	}
}

func TestAdjustLightnessClamps(t *testing.T) {
	if got := AdjustLightness(hex(t, "#ffffff"), 0.1).Hex(); got != "#ffffff" {
		t.Errorf("lighten white = %s", got)
	}
	if got := AdjustLightness(hex(t, "#000000"), -0.1).Hex(); got != "#000000" {
		t.Errorf("darken black = %s", got)
	}
}

func TestAdjustLightnessDirection(t *testing.T) {
	c := hex(t, "#5080a0")
	if Brightness(AdjustLightness(c, 0.1)) <= Brightness(c) {
		t.Error("lightened color is not brighter")
	}
	if Brightness(AdjustLightness(c, -0.1)) >= Brightness(c) {
		t.Error("darkened color is not darker")
	}
}

func TestBrightnessLuma(t *testing.T) {
	if got := Brightness(hex(t, "#ffffff")); math.Abs(got-255) > 1e-9 {
		t.Errorf("brightness(white) = %v, want 255", got)
	}
	if got := Brightness(hex(t, "#000000")); got != 0 {
		t.Errorf("brightness(black) = %v, want 0", got)
	}
	// Green carries the largest luma weight.
	if Brightness(hex(t, "#00ff00")) <= Brightness(hex(t, "#ff0000")) {
		t.Error("green should score brighter than red")
	}
	if Brightness(hex(t, "#ff0000")) <= Brightness(hex(t, "#0000ff")) {
		t.Error("red should score brighter than blue")
	}
}
