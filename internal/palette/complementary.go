package palette

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Complementary generates n hex colors whose hues are spaced evenly around
// the color wheel starting from the base color, keeping its saturation and
// value. n defaults to 4 when not positive. The first color is the base
// color itself.
func Complementary(r, g, b uint8, n int) []string {
	if n <= 0 {
		n = 4
	}

	base := colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}
	h, s, v := base.Hsv()

	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		hue := math.Mod(h+float64(i)*360/float64(n), 360)
		out = append(out, colorful.Hsv(hue, s, v).Hex())
	}
	return out
}
