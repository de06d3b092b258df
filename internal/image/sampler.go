package image

import (
	"image"
	"math"

	"github.com/jmylchreest/tonal/internal/colour"
)

// DefaultMaxSamples bounds how many pixels the whole-image sampler feeds
// into the engine. Larger images are grid-subsampled down to roughly this
// many pixels.
const DefaultMaxSamples = 5000

// SamplePixels samples pixels across the whole image into plain RGB
// triples. Small images are read exhaustively; larger ones are sampled on
// an even grid of at most maxSamples points (<=0 selects
// DefaultMaxSamples).
//
// The whole-image path deliberately performs no alpha filtering and treats
// every pixel as opaque; only the text-area sampler (SampleRegion) skips
// transparent pixels. This asymmetry is part of the engine's contract.
func SamplePixels(img image.Image, maxSamples int) []colour.RGB {
	if img == nil {
		return nil
	}
	if maxSamples <= 0 {
		maxSamples = DefaultMaxSamples
	}

	bounds := img.Bounds()
	totalPixels := bounds.Dx() * bounds.Dy()
	if totalPixels == 0 {
		return nil
	}

	if totalPixels <= maxSamples {
		pixels := make([]colour.RGB, 0, totalPixels)
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				pixels = append(pixels, colour.ToRGB(img.At(x, y)))
			}
		}
		return pixels
	}

	// Grid sampling: step chosen so we land near maxSamples points.
	step := max(int(math.Sqrt(float64(totalPixels)/float64(maxSamples))), 1)

	pixels := make([]colour.RGB, 0, maxSamples)
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			pixels = append(pixels, colour.ToRGB(img.At(x, y)))
			if len(pixels) >= maxSamples {
				return pixels
			}
		}
	}
	return pixels
}

// SampleRegion samples every pixel of a sub-region, skipping pixels whose
// alpha is below 128. Intended for designated text areas, where transparent
// padding would otherwise skew the luminance statistics. The rect is
// clipped to the image bounds; an empty intersection yields nil.
func SampleRegion(img image.Image, rect image.Rectangle) []colour.RGB {
	if img == nil {
		return nil
	}

	rect = rect.Intersect(img.Bounds())
	if rect.Empty() {
		return nil
	}

	pixels := make([]colour.RGB, 0, rect.Dx()*rect.Dy())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			c := img.At(x, y)
			_, _, _, a := c.RGBA()
			if uint8(a>>8) < 128 {
				continue
			}
			pixels = append(pixels, colour.ToRGB(c))
		}
	}
	return pixels
}
