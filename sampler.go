package artgrid

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"

	"artgrid/palette"
	"artgrid/utils"
)

// regionSampleSize is the resolution each block region is reduced to
// before clustering.
const regionSampleSize = 50

// RegionSampler maps rectangular regions of a source raster to a
// foreground/background color pair.
type RegionSampler struct {
	Image image.Image
}

// Sample extracts the two dominant colors of the region and ranks them
// by luma: the darker centroid becomes the foreground, which keeps
// block contrast consistent across the grid. A uniform region
// collapses to fg == bg and renders as a flat block.
func (s RegionSampler) Sample(x, y, w, h int) (fg, bg colorful.Color, err error) {
	region := utils.CropRGB(s.Image, image.Rect(x, y, x+w, y+h))
	small := utils.Downsample(region, regionSampleSize, regionSampleSize)
	colors, err := palette.ExtractKMeansPalette(small, 2)
	if err != nil {
		return colorful.Color{}, colorful.Color{}, err
	}
	if len(colors) < 2 {
		return colors[0], colors[0], nil
	}
	if palette.Brightness(colors[0]) <= palette.Brightness(colors[1]) {
		return colors[0], colors[1], nil
	}
	return colors[1], colors[0], nil
}
