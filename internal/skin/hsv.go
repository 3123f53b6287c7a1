package skin

import "math"

// rgbToHSV converts 8-bit RGB components to the package's 8-bit HSV
// encoding: H in [0,179] (degrees halved), S and V in [0,255].
//
// V is the maximum component. S is 255*(max-min)/max, zero for black.
// Hue is computed on the 360-degree wheel, halved, and rounded to the
// nearest integer so that pure red maps to 0 and pure blue to 120.
func rgbToHSV(r, g, b uint8) (uint8, uint8, uint8) {
	rf := float64(r)
	gf := float64(g)
	bf := float64(b)

	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))
	delta := max - min

	v := uint8(max)

	if max == 0 {
		return 0, 0, 0
	}
	s := uint8(math.Round(255 * delta / max))

	if delta == 0 {
		return 0, s, v
	}

	var deg float64
	switch max {
	case rf:
		deg = 60 * (gf - bf) / delta
	case gf:
		deg = 120 + 60*(bf-rf)/delta
	default:
		deg = 240 + 60*(rf-gf)/delta
	}
	if deg < 0 {
		deg += 360
	}

	h := uint8(int(math.Round(deg/2)) % 180)
	return h, s, v
}

// hsvToRGB is the inverse of rgbToHSV, taking H in [0,179] and S, V in
// [0,255]. Components are rounded to the nearest integer.
func hsvToRGB(h, s, v uint8) (uint8, uint8, uint8) {
	if s == 0 {
		return v, v, v
	}

	deg := float64(h) * 2
	sector := deg / 60
	i := math.Floor(sector)
	f := sector - i

	vf := float64(v)
	sf := float64(s) / 255

	p := vf * (1 - sf)
	q := vf * (1 - f*sf)
	t := vf * (1 - (1-f)*sf)

	var rf, gf, bf float64
	switch int(i) % 6 {
	case 0:
		rf, gf, bf = vf, t, p
	case 1:
		rf, gf, bf = q, vf, p
	case 2:
		rf, gf, bf = p, vf, t
	case 3:
		rf, gf, bf = p, q, vf
	case 4:
		rf, gf, bf = t, p, vf
	default:
		rf, gf, bf = vf, p, q
	}

	return uint8(math.Round(rf)), uint8(math.Round(gf)), uint8(math.Round(bf))
}
