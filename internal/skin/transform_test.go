package skin

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestApplyTone_InvalidTarget(t *testing.T) {
	img := uniformImage(5, 5, skinColor)

	for _, bad := range []Tone{"", "Olive", "fair"} {
		_, err := ApplyTone(img, bad)
		if !errors.Is(err, ErrInvalidTargetTone) {
			t.Errorf("ApplyTone(%q): expected ErrInvalidTargetTone, got %v", bad, err)
		}
	}
}

func TestApplyTone_EmptyImage(t *testing.T) {
	_, err := ApplyTone(image.NewRGBA(image.Rect(0, 0, 0, 0)), ToneMedium)
	if !errors.Is(err, ErrInvalidImage) {
		t.Errorf("expected ErrInvalidImage, got %v", err)
	}
}

// Medium carries identity factors, so the output must equal the input
// byte-for-byte, masked pixels included.
func TestApplyTone_MediumIsIdentity(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if x%2 == 0 {
				img.SetRGBA(x, y, skinColor)
			} else {
				img.SetRGBA(x, y, color.RGBA{uint8(x * 20), uint8(y * 20), 200, 255})
			}
		}
	}

	out, err := ApplyTone(img, ToneMedium)
	if err != nil {
		t.Fatalf("ApplyTone failed: %v", err)
	}
	if !bytes.Equal(out.Pix, img.Pix) {
		t.Error("Medium target must leave every pixel unchanged")
	}
}

func TestApplyTone_DeepShiftsMaskedPixels(t *testing.T) {
	img := uniformImage(4, 4, skinColor)

	out, err := ApplyTone(img, ToneDeep)
	if err != nil {
		t.Fatalf("ApplyTone failed: %v", err)
	}

	// (200,150,130) -> HSV (9,89,200); Deep scales S by 1.3 and V by 0.6:
	// S 89*1.3=115.7 -> 115, V 200*0.6=120 -> back to RGB (120,82,66).
	want := color.RGBA{120, 82, 66, 255}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := out.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestApplyTone_FairClampsValue(t *testing.T) {
	img := uniformImage(2, 2, skinColor)

	out, err := ApplyTone(img, ToneFair)
	if err != nil {
		t.Fatalf("ApplyTone failed: %v", err)
	}

	// V 200*1.3=260 clamps to 255; S 89*0.7=62.3 -> 62; RGB (255,212,193).
	want := color.RGBA{255, 212, 193, 255}
	if got := out.RGBAAt(0, 0); got != want {
		t.Errorf("got %v, want %v (value channel must clamp, not wrap)", got, want)
	}
}

func TestApplyTone_UnmaskedPixelsUntouched(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 6, 6))
	nonSkin := color.RGBA{10, 200, 30, 255}
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			if y < 3 {
				img.SetRGBA(x, y, skinColor)
			} else {
				img.SetRGBA(x, y, nonSkin)
			}
		}
	}

	out, err := ApplyTone(img, ToneDeep)
	if err != nil {
		t.Fatalf("ApplyTone failed: %v", err)
	}
	for y := 3; y < 6; y++ {
		for x := 0; x < 6; x++ {
			if got := out.RGBAAt(x, y); got != nonSkin {
				t.Fatalf("unmasked pixel (%d,%d) changed: got %v", x, y, got)
			}
		}
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 6; x++ {
			if got := out.RGBAAt(x, y); got == skinColor {
				t.Fatalf("masked pixel (%d,%d) was not shifted", x, y)
			}
		}
	}
}

func TestApplyTone_DoesNotMutateInput(t *testing.T) {
	img := uniformImage(5, 5, skinColor)
	before := make([]uint8, len(img.Pix))
	copy(before, img.Pix)

	if _, err := ApplyTone(img, ToneDeep); err != nil {
		t.Fatalf("ApplyTone failed: %v", err)
	}
	if !bytes.Equal(img.Pix, before) {
		t.Error("input image was mutated")
	}
}

func TestApplyTone_SameDimensions(t *testing.T) {
	img := uniformImage(13, 7, skinColor)

	out, err := ApplyTone(img, ToneDark)
	if err != nil {
		t.Fatalf("ApplyTone failed: %v", err)
	}
	if out.Bounds().Dx() != 13 || out.Bounds().Dy() != 7 {
		t.Errorf("output dimensions: got %dx%d, want 13x7",
			out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestScaleChannel(t *testing.T) {
	tests := []struct {
		name   string
		c      uint8
		factor float64
		want   uint8
	}{
		{"identity", 89, 1.0, 89},
		{"truncates", 89, 1.3, 115},
		{"clamps high", 200, 1.3, 255},
		{"scales down", 200, 0.6, 120},
		{"zero stays zero", 0, 1.3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scaleChannel(tt.c, tt.factor); got != tt.want {
				t.Errorf("scaleChannel(%d, %v) = %d, want %d", tt.c, tt.factor, got, tt.want)
			}
		})
	}
}
