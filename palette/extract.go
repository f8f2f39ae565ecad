package palette

import (
	"errors"
	"fmt"
	"image"
	"log"
	"slices"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"

	"artgrid/utils"
)

// extractSampleSize is the resolution an image is reduced to before
// whole-image palette extraction. Purely a cost bound; ordinary
// resampling does not shift the extracted hues.
const extractSampleSize = 150

// ExtractMethod selects the quantization algorithm for image-driven
// palettes.
type ExtractMethod int

const (
	MethodKMeans ExtractMethod = iota
	MethodDominant
)

func (m ExtractMethod) String() string {
	switch m {
	case MethodDominant:
		return "dominant"
	default:
		return "kmeans"
	}
}

// ParseMethod maps a CLI token to an ExtractMethod.
func ParseMethod(s string) (ExtractMethod, error) {
	switch s {
	case "kmeans", "":
		return MethodKMeans, nil
	case "dominant":
		return MethodDominant, nil
	default:
		return MethodKMeans, fmt.Errorf("palette: unknown extract method %q", s)
	}
}

// FromImage quantizes img into k representative colors, downsampling
// first to keep extraction cheap.
func FromImage(img image.Image, k int, method ExtractMethod) (Palette, error) {
	small := utils.Downsample(img, extractSampleSize, extractSampleSize)
	switch method {
	case MethodDominant:
		return ExtractDominantPalette(small, k)
	default:
		p, err := ExtractKMeansPalette(small, k)
		if err == nil && len(p) > 0 {
			return p, nil
		}
		log.Println("palette warning: kmeans extraction failed, falling back to dominant colors")
		return ExtractDominantPalette(small, k)
	}
}

// ExtractKMeansPalette partitions the opaque pixels of img into k
// clusters by squared RGB distance and returns the centroids, most
// populous first, snapped to integer 8-bit channels. When the image
// holds fewer distinct colors than k the centroids collapse into
// near-duplicates; that is valid output, not an error.
func ExtractKMeansPalette(img image.Image, k int) (Palette, error) {
	if k <= 0 {
		return nil, errors.New("palette: color count must be positive")
	}
	b := img.Bounds()
	dataset := make(clusters.Observations, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r16, g16, b16, a16 := img.At(x, y).RGBA()
			if a16 == 0 {
				continue
			}
			dataset = append(dataset, clusters.Coordinates{
				float64(r16) / 65535.0,
				float64(g16) / 65535.0,
				float64(b16) / 65535.0,
			})
		}
	}
	if len(dataset) == 0 {
		return nil, errors.New("palette: image has no opaque pixels")
	}
	if k > len(dataset) {
		k = len(dataset)
	}

	km := kmeans.New()
	cc, err := km.Partition(dataset, k)
	if err != nil {
		return nil, fmt.Errorf("palette: kmeans: %w", err)
	}
	slices.SortFunc(cc, func(a, b clusters.Cluster) int {
		return len(b.Observations) - len(a.Observations)
	})

	out := make(Palette, 0, len(cc))
	for _, c := range cc {
		if len(c.Center) < 3 {
			continue
		}
		col := colorful.Color{R: c.Center[0], G: c.Center[1], B: c.Center[2]}.Clamped()
		r, g, bl := col.RGB255()
		out = append(out, rgbInt(int(r), int(g), int(bl)))
	}
	return out, nil
}

// ExtractDominantPalette returns up to k dominant colors, heaviest
// first.
func ExtractDominantPalette(img image.Image, k int) (Palette, error) {
	if k <= 0 {
		return nil, errors.New("palette: color count must be positive")
	}
	cands := dominantcolor.FindWeight(img, max(24, k*4))
	if len(cands) == 0 {
		return nil, errors.New("palette: no dominant colors found")
	}
	slices.SortFunc(cands, func(a, b dominantcolor.Color) int {
		if a.Weight > b.Weight {
			return -1
		}
		if a.Weight < b.Weight {
			return 1
		}
		return 0
	})

	out := make(Palette, 0, k)
	for _, c := range cands {
		col, ok := colorful.MakeColor(c.RGBA)
		if !ok {
			continue
		}
		r, g, b := col.Clamped().RGB255()
		out = append(out, rgbInt(int(r), int(g), int(b)))
		if len(out) == k {
			break
		}
	}
	return out, nil
}
