package skin

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/parallel"
)

// Skin color range in 8-bit HSV (H on the [0,179] scale), inclusive on both
// ends per channel. Design constants, not user-configurable.
var (
	skinLower = [3]uint8{0, 20, 70}
	skinUpper = [3]uint8{20, 255, 255}
)

// Mask is a per-pixel boolean classification of "looks like skin", with the
// same dimensions as the image it was derived from. Masks are recomputed per
// call and never persisted.
type Mask struct {
	Width  int
	Height int
	bits   []bool
}

func newMask(w, h int) *Mask {
	return &Mask{Width: w, Height: h, bits: make([]bool, w*h)}
}

// At reports whether the pixel at (x, y) was classified as skin.
// Coordinates are 0-based with origin at the top-left.
func (m *Mask) At(x, y int) bool {
	return m.bits[y*m.Width+x]
}

// Count returns the number of skin pixels in the mask.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Empty reports whether no pixel was classified as skin. An empty mask is
// valid segmenter output, not an error; it signals "no skin detected".
func (m *Mask) Empty() bool {
	return m.Count() == 0
}

// Coverage returns the fraction of pixels classified as skin, in [0,1].
func (m *Mask) Coverage() float64 {
	if len(m.bits) == 0 {
		return 0
	}
	return float64(m.Count()) / float64(len(m.bits))
}

// Image renders the mask as a grayscale image with skin pixels white (255)
// and everything else black (0), for visual inspection by callers.
func (m *Mask) Image() *image.Gray {
	out := image.NewGray(image.Rect(0, 0, m.Width, m.Height))
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.At(x, y) {
				out.Pix[y*out.Stride+x] = 255
			}
		}
	}
	return out
}

// Segment classifies every pixel of img against the fixed skin color range
// and returns the resulting mask.
//
// A pixel is skin iff all three of its HSV channels fall inside the
// inclusive bounds H in [0,20], S in [20,255], V in [70,255]. The input is
// not modified. An empty (zero-area) image fails with ErrInvalidImage.
func Segment(img image.Image) (*Mask, error) {
	if img == nil {
		return nil, fmt.Errorf("nil image: %w", ErrInvalidImage)
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("empty %dx%d image: %w", w, h, ErrInvalidImage)
	}

	src := clone.AsRGBA(img)
	mask := newMask(w, h)

	parallel.Line(h, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < w; x++ {
				i := y*src.Stride + x*4
				hh, ss, vv := rgbToHSV(src.Pix[i], src.Pix[i+1], src.Pix[i+2])
				mask.bits[y*w+x] = inSkinRange(hh, ss, vv)
			}
		}
	})

	return mask, nil
}

func inSkinRange(h, s, v uint8) bool {
	return h >= skinLower[0] && h <= skinUpper[0] &&
		s >= skinLower[1] && s <= skinUpper[1] &&
		v >= skinLower[2] && v <= skinUpper[2]
}
