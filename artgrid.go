// Package artgrid generates grid-based vector art: a rows×cols field
// of square blocks, each drawn in one of a fixed set of geometric
// styles with two palette colors, over a radial gradient background,
// optionally with one enlarged focal block on top.
package artgrid

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"artgrid/palette"
	"artgrid/utils"
)

// Mode selects how per-block colors are resolved.
type Mode int

const (
	// ModePalette draws both block colors from the run palette.
	ModePalette Mode = iota
	// ModeComposition samples both colors from the matching region of
	// a source image.
	ModeComposition
)

var (
	ErrFocalFit = errors.New("artgrid: focal block multiplier exceeds grid dimensions")
	ErrNoImage  = errors.New("artgrid: composition mode needs a source image")
)

// Options describe one generation run.
type Options struct {
	Rows     int
	Cols     int
	CellSize int
	// Styles restricts block styles by name. Empty means all.
	Styles []string
	// FocalBlock places one enlarged block over the grid. Ignored in
	// composition mode.
	FocalBlock bool
	// FocalScale is the focal block multiplier, 2 or 3. Zero picks one
	// at random.
	FocalScale int
	Mode       Mode
	// Image drives composition mode. Unused otherwise.
	Image image.Image
	// BlendFactor is reserved for blend-weighted composition sampling.
	// It is accepted and carried but not consumed yet.
	BlendFactor float64
}

// DefaultOptions returns a palette-mode 8×8 grid of 100px cells with a
// focal block.
func DefaultOptions() Options {
	return Options{
		Rows:        8,
		Cols:        8,
		CellSize:    100,
		FocalBlock:  true,
		BlendFactor: 0.7,
	}
}

// Builder composes one document per Render call. The palette and the
// random source are fixed at construction; seeding the source makes a
// whole run reproducible.
type Builder struct {
	Palette palette.Palette
	Rng     *rand.Rand
}

// New returns a Builder drawing colors from p and randomness from rng.
func New(p palette.Palette, rng *rand.Rand) *Builder {
	return &Builder{Palette: p, Rng: rng}
}

// Render writes a complete SVG document for opt to w: gradient
// background first, then every cell in row-major order, then the
// optional focal block on top.
func (b *Builder) Render(w io.Writer, opt Options) error {
	if opt.Rows <= 0 || opt.Cols <= 0 || opt.CellSize <= 0 {
		return fmt.Errorf("artgrid: grid dimensions must be positive, got %dx%d cells of %d",
			opt.Rows, opt.Cols, opt.CellSize)
	}
	width := float64(opt.Cols * opt.CellSize)
	height := float64(opt.Rows * opt.CellSize)

	inner, outer, err := b.Palette.Background()
	if err != nil {
		return err
	}

	styles := DefaultRegistry().Filter(opt.Styles)

	var sampler *RegionSampler
	if opt.Mode == ModeComposition {
		if opt.Image == nil {
			return ErrNoImage
		}
		// Resize so each block maps to exactly cellSize×cellSize
		// source pixels.
		resized := utils.Downsample(opt.Image, opt.Cols*opt.CellSize, opt.Rows*opt.CellSize)
		sampler = &RegionSampler{Image: resized}
	}

	c := NewCanvas(w)
	c.Start(width, height)
	c.Background(width, height, inner.Hex(), outer.Hex())

	cell := opt.CellSize
	for row := 0; row < opt.Rows; row++ {
		for col := 0; col < opt.Cols; col++ {
			x := col * cell
			y := row * cell
			fg, bg, err := b.blockColors(sampler, x, y, cell)
			if err != nil {
				return err
			}
			style := styles.pick(b.Rng)
			style.Render(c, float64(x), float64(y), float64(cell), fg.Hex(), bg.Hex(), b.Rng)
		}
	}

	if opt.FocalBlock && opt.Mode != ModeComposition {
		if err := b.renderFocal(c, opt, styles); err != nil {
			return err
		}
	}

	c.End()
	return nil
}

func (b *Builder) blockColors(s *RegionSampler, x, y, cell int) (fg, bg colorful.Color, err error) {
	if s != nil {
		return s.Sample(x, y, cell, cell)
	}
	return b.Palette.PickTwo(b.Rng)
}

func (b *Builder) renderFocal(c *Canvas, opt Options, styles Registry) error {
	scale := opt.FocalScale
	if scale == 0 {
		scale = 2 + b.Rng.Intn(2)
	}
	if scale != 2 && scale != 3 {
		return fmt.Errorf("artgrid: focal scale must be 2 or 3, got %d", scale)
	}
	x, y, err := focalOrigin(b.Rng, opt.Rows, opt.Cols, opt.CellSize, scale)
	if err != nil {
		return err
	}
	fg, bg, err := b.Palette.PickTwo(b.Rng)
	if err != nil {
		return err
	}
	style := styles.Focal().pick(b.Rng)
	style.Render(c, float64(x), float64(y), float64(scale*opt.CellSize), fg.Hex(), bg.Hex(), b.Rng)
	return nil
}

// focalOrigin picks a cell-aligned top-left corner so the scale×scale
// footprint stays inside the grid.
func focalOrigin(rng *rand.Rand, rows, cols, cell, scale int) (x, y int, err error) {
	if rows < scale || cols < scale {
		return 0, 0, fmt.Errorf("%w: %dx%d grid, multiplier %d", ErrFocalFit, rows, cols, scale)
	}
	x = rng.Intn(cols-scale+1) * cell
	y = rng.Intn(rows-scale+1) * cell
	return x, y, nil
}
