package skin

import "fmt"

// Tone is one of five discrete skin-lightness bands, ordered
// Fair > Light > Medium > Dark > Deep by typical brightness.
type Tone string

const (
	ToneFair   Tone = "Fair"
	ToneLight  Tone = "Light"
	ToneMedium Tone = "Medium"
	ToneDark   Tone = "Dark"
	ToneDeep   Tone = "Deep"
)

// Tones lists all valid bands in decreasing-lightness order.
var Tones = []Tone{ToneFair, ToneLight, ToneMedium, ToneDark, ToneDeep}

// ParseTone validates a tone name against the five bands. Unrecognized
// input fails with ErrInvalidTargetTone; there is no fallback here (that
// policy belongs to recommendation lookup, deliberately not to the
// transformer).
func ParseTone(s string) (Tone, error) {
	for _, t := range Tones {
		if s == string(t) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%q: %w", s, ErrInvalidTargetTone)
}

// classifyValue maps the value (brightness) channel of an averaged skin
// color to a band. The thresholds partition [0,255] without gap or overlap;
// the first match wins.
func classifyValue(v uint8) Tone {
	switch {
	case v < 100:
		return ToneDeep
	case v < 140:
		return ToneDark
	case v < 170:
		return ToneMedium
	case v < 200:
		return ToneLight
	default:
		return ToneFair
	}
}

// adjustment holds the multiplicative factors ApplyTone applies to the
// value and saturation channels of masked pixels.
type adjustment struct {
	value      float64
	saturation float64
}

// Fixed per-band factors. Medium is the identity pair.
var toneAdjustments = map[Tone]adjustment{
	ToneFair:   {value: 1.3, saturation: 0.7},
	ToneLight:  {value: 1.2, saturation: 0.8},
	ToneMedium: {value: 1.0, saturation: 1.0},
	ToneDark:   {value: 0.8, saturation: 1.2},
	ToneDeep:   {value: 0.6, saturation: 1.3},
}
