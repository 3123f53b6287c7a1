package skin

import (
	"fmt"
	"image"
	"math"

	"github.com/anthonynsimon/bild/clone"
)

// ToneResult reports the dominant skin tone of an image together with the
// averaged skin color in multiple representations.
type ToneResult struct {
	// Tone is the classified band.
	Tone Tone `json:"skin_tone"`

	// RGB is the arithmetic mean of the skin pixels' RGB channels,
	// truncated to integers.
	RGB [3]int `json:"rgb"`

	// HSV is the averaged color converted to the package's 8-bit HSV
	// encoding (H in [0,179]).
	HSV [3]int `json:"hsv"`

	// Hex is the averaged color as "#RRGGBB".
	Hex string `json:"hex"`

	// SkinPixels is the number of pixels inside the skin mask.
	SkinPixels int `json:"skin_pixels"`

	// CoveragePercent is the share of the frame covered by the mask (0-100).
	CoveragePercent float64 `json:"coverage_percent"`
}

// AnalyzeTone segments img, averages the RGB channels over the skin mask,
// and classifies the averaged color's brightness into a Tone.
//
// The mean is order-independent, so the result is deterministic for a given
// image. An image with an empty skin mask fails with ErrNoSkinDetected; an
// empty image fails with ErrInvalidImage.
func AnalyzeTone(img image.Image) (*ToneResult, error) {
	mask, err := Segment(img)
	if err != nil {
		return nil, err
	}
	count := mask.Count()
	if count == 0 {
		return nil, ErrNoSkinDetected
	}

	src := clone.AsRGBA(img)
	var sumR, sumG, sumB uint64
	for y := 0; y < mask.Height; y++ {
		for x := 0; x < mask.Width; x++ {
			if !mask.At(x, y) {
				continue
			}
			i := y*src.Stride + x*4
			sumR += uint64(src.Pix[i])
			sumG += uint64(src.Pix[i+1])
			sumB += uint64(src.Pix[i+2])
		}
	}

	// Integer division truncates, matching the documented mean semantics.
	avgR := uint8(sumR / uint64(count))
	avgG := uint8(sumG / uint64(count))
	avgB := uint8(sumB / uint64(count))

	h, s, v := rgbToHSV(avgR, avgG, avgB)

	return &ToneResult{
		Tone:            classifyValue(v),
		RGB:             [3]int{int(avgR), int(avgG), int(avgB)},
		HSV:             [3]int{int(h), int(s), int(v)},
		Hex:             fmt.Sprintf("#%02X%02X%02X", avgR, avgG, avgB),
		SkinPixels:      count,
		CoveragePercent: math.Round(mask.Coverage()*10000) / 100,
	}, nil
}
