// Package palette supplies the colors a grid run draws from: catalogue
// loading and selection, image extraction, two-color draws and the
// background gradient pair.
package palette

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultCatalogueURL is the well-known static set of 100 five-color
// palettes used when no palette file is given.
const DefaultCatalogueURL = "https://unpkg.com/nice-color-palettes@3.0.0/100.json"

var (
	ErrEmptyCatalogue  = errors.New("palette: catalogue holds no palettes")
	ErrIndexOutOfRange = errors.New("palette: palette index out of range")
	ErrTooFewColors    = errors.New("palette: need at least two colors")
)

// Palette is an ordered list of colors. Two-color draws require at
// least two entries.
type Palette []colorful.Color

// Hex returns the palette as "#rrggbb" strings.
func (p Palette) Hex() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.Hex()
	}
	return out
}

// PickTwo draws the background uniformly, removes it from a working
// copy, then draws the foreground from the remainder. The two differ
// whenever the palette entries are distinct.
func (p Palette) PickTwo(rng *rand.Rand) (fg, bg colorful.Color, err error) {
	if len(p) < 2 {
		return colorful.Color{}, colorful.Color{}, ErrTooFewColors
	}
	i := rng.Intn(len(p))
	bg = p[i]
	rest := make(Palette, 0, len(p)-1)
	rest = append(rest, p[:i]...)
	rest = append(rest, p[i+1:]...)
	fg = rest[rng.Intn(len(rest))]
	return fg, bg, nil
}

// Background derives the radial gradient pair: mix the first two
// entries, desaturate by 0.1, then lighten (inner) and darken (outer)
// by 0.1.
func (p Palette) Background() (inner, outer colorful.Color, err error) {
	if len(p) < 2 {
		return colorful.Color{}, colorful.Color{}, ErrTooFewColors
	}
	base := Desaturate(Mix(p[0], p[1]), 0.1)
	return AdjustLightness(base, 0.1), AdjustLightness(base, -0.1), nil
}

// Catalogue is an ordered collection of palettes, as loaded from a
// palette file or the remote default set.
type Catalogue []Palette

// Select returns the palette at index, or a uniformly random entry
// when index is negative.
func (c Catalogue) Select(index int, rng *rand.Rand) (Palette, error) {
	if len(c) == 0 {
		return nil, ErrEmptyCatalogue
	}
	if index < 0 {
		index = rng.Intn(len(c))
	}
	if index >= len(c) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(c))
	}
	return c[index], nil
}

// LoadCatalogueFile reads a JSON catalogue (an array of hex-string
// arrays) from disk.
func LoadCatalogueFile(path string) (Catalogue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open palette file: %w", err)
	}
	defer f.Close()
	return decodeCatalogue(f)
}

// FetchCatalogue downloads a JSON catalogue from url.
func FetchCatalogue(url string) (Catalogue, error) {
	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch palette catalogue: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch palette catalogue: unexpected status %s", resp.Status)
	}
	return decodeCatalogue(resp.Body)
}

func decodeCatalogue(r io.Reader) (Catalogue, error) {
	var raw [][]string
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode palette catalogue: %w", err)
	}
	cat := make(Catalogue, 0, len(raw))
	for i, entry := range raw {
		p := make(Palette, 0, len(entry))
		for _, hex := range entry {
			col, err := colorful.Hex(hex)
			if err != nil {
				return nil, fmt.Errorf("palette %d: %w", i, err)
			}
			p = append(p, col)
		}
		cat = append(cat, p)
	}
	if len(cat) == 0 {
		return nil, ErrEmptyCatalogue
	}
	return cat, nil
}
