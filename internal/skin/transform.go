package skin

import (
	"image"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/parallel"
)

// ApplyTone returns a copy of img with skin-region pixels shifted toward
// target. The input image is never mutated.
//
// Each masked pixel's saturation and value channels are multiplied by the
// band's fixed factors, clamped into [0,255], and truncated to integers
// before the pixel is converted back to RGB. Pixels outside the mask, and
// masked pixels whose adjusted channels are unchanged (as with the Medium
// identity factors), keep their original bytes.
//
// An unrecognized target fails with ErrInvalidTargetTone; an empty image
// fails with ErrInvalidImage.
func ApplyTone(img image.Image, target Tone) (*image.RGBA, error) {
	adj, ok := toneAdjustments[target]
	if !ok {
		_, err := ParseTone(string(target))
		return nil, err
	}

	mask, err := Segment(img)
	if err != nil {
		return nil, err
	}

	// clone.AsRGBA copies, so out is a fresh buffer we can write into.
	out := clone.AsRGBA(img)
	w := mask.Width

	parallel.Line(mask.Height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < w; x++ {
				if !mask.At(x, y) {
					continue
				}
				i := y*out.Stride + x*4
				h, s, v := rgbToHSV(out.Pix[i], out.Pix[i+1], out.Pix[i+2])
				s2 := scaleChannel(s, adj.saturation)
				v2 := scaleChannel(v, adj.value)
				if s2 == s && v2 == v {
					continue
				}
				r, g, b := hsvToRGB(h, s2, v2)
				out.Pix[i] = r
				out.Pix[i+1] = g
				out.Pix[i+2] = b
			}
		}
	})

	return out, nil
}

// scaleChannel multiplies an 8-bit channel by a factor, clamps the result
// into [0,255], and truncates. Order matters: overflow must clamp, not wrap.
func scaleChannel(c uint8, factor float64) uint8 {
	scaled := float64(c) * factor
	if scaled > 255 {
		return 255
	}
	if scaled < 0 {
		return 0
	}
	return uint8(scaled)
}
