package skin

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

// uniformImage creates an in-memory test image filled with a single color.
func uniformImage(width, height int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// skinColor is inside the skin HSV bounds: (200,150,130) -> HSV (9,89,200).
var skinColor = color.RGBA{200, 150, 130, 255}

func TestSegment_MaskDimensions(t *testing.T) {
	img := uniformImage(37, 21, skinColor)

	mask, err := Segment(img)
	if err != nil {
		t.Fatalf("Segment failed: %v", err)
	}
	if mask.Width != 37 || mask.Height != 21 {
		t.Errorf("mask dimensions: got %dx%d, want 37x21", mask.Width, mask.Height)
	}
}

func TestSegment_UniformSkinColor(t *testing.T) {
	img := uniformImage(10, 10, skinColor)

	mask, err := Segment(img)
	if err != nil {
		t.Fatalf("Segment failed: %v", err)
	}
	if got := mask.Count(); got != 100 {
		t.Errorf("skin pixel count: got %d, want 100 (all pixels)", got)
	}
	if mask.Coverage() != 1.0 {
		t.Errorf("coverage: got %f, want 1.0", mask.Coverage())
	}
}

func TestSegment_AllBlackYieldsEmptyMask(t *testing.T) {
	img := uniformImage(10, 10, color.RGBA{0, 0, 0, 255})

	mask, err := Segment(img)
	if err != nil {
		t.Fatalf("Segment should not fail on an all-black image: %v", err)
	}
	if !mask.Empty() {
		t.Errorf("expected empty mask, got %d skin pixels", mask.Count())
	}
}

func TestSegment_NonSkinColors(t *testing.T) {
	tests := []struct {
		name string
		c    color.RGBA
	}{
		{"pure blue", color.RGBA{0, 0, 255, 255}},   // hue out of range
		{"pure green", color.RGBA{0, 255, 0, 255}},  // hue out of range
		{"near black", color.RGBA{30, 20, 15, 255}}, // value below 70
		{"white", color.RGBA{255, 255, 255, 255}},   // saturation below 20
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mask, err := Segment(uniformImage(5, 5, tt.c))
			if err != nil {
				t.Fatalf("Segment failed: %v", err)
			}
			if !mask.Empty() {
				t.Errorf("expected no skin pixels for %v, got %d", tt.c, mask.Count())
			}
		})
	}
}

func TestSegment_EmptyImage(t *testing.T) {
	_, err := Segment(image.NewRGBA(image.Rect(0, 0, 0, 0)))
	if !errors.Is(err, ErrInvalidImage) {
		t.Errorf("expected ErrInvalidImage for empty image, got %v", err)
	}

	_, err = Segment(nil)
	if !errors.Is(err, ErrInvalidImage) {
		t.Errorf("expected ErrInvalidImage for nil image, got %v", err)
	}
}

func TestMask_Image(t *testing.T) {
	// Left half skin, right half black.
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			if x < 2 {
				img.SetRGBA(x, y, skinColor)
			} else {
				img.SetRGBA(x, y, color.RGBA{0, 0, 0, 255})
			}
		}
	}

	mask, err := Segment(img)
	if err != nil {
		t.Fatalf("Segment failed: %v", err)
	}

	rendered := mask.Image()
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			want := uint8(0)
			if x < 2 {
				want = 255
			}
			if got := rendered.GrayAt(x, y).Y; got != want {
				t.Errorf("rendered mask at (%d,%d): got %d, want %d", x, y, got, want)
			}
		}
	}
}
