package bgstrip

import (
	"image"

	"github.com/disintegration/imaging"
)

// DefaultThreshold is the channel value at or above which a pixel counts as background.
const DefaultThreshold = 240

// Strip clears the alpha of every pixel in img whose r, g and b are all >= threshold.
// Color channels are never modified. It returns the number of pixels that
// match the threshold, including ones that were already transparent.
func Strip(img *image.NRGBA, threshold uint8) int {
	if img == nil {
		return 0
	}
	b := img.Bounds()
	matched := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Max.X, y)]
		for i := 0; i+3 < len(row); i += 4 {
			if row[i] >= threshold && row[i+1] >= threshold && row[i+2] >= threshold {
				row[i+3] = 0
				matched++
			}
		}
	}
	return matched
}

// StripImage copies src into a non-premultiplied NRGBA grid, materializing an
// opaque alpha channel when src has none, and strips the copy.
func StripImage(src image.Image, threshold uint8) (*image.NRGBA, int) {
	dst := imaging.Clone(src)
	return dst, Strip(dst, threshold)
}
