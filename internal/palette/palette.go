package palette

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/jszwec/csvutil"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/sirupsen/logrus"
)

//go:embed palettes.csv
var palettesCSV []byte

// fallbackTone receives lookups for unrecognized bands.
const fallbackTone = "Medium"

// bandOrder fixes the presentation order of the five bands.
var bandOrder = []string{"Fair", "Light", "Medium", "Dark", "Deep"}

// Palette is a named, ordered list of color codes.
type Palette struct {
	Name   string   `json:"name"`
	Colors []string `json:"colors"`
}

// Recommendation maps one tone band to its curated palettes and the colors
// to avoid. Returned values are shared, read-only data; callers must not
// mutate them.
type Recommendation struct {
	Tone     string    `json:"skin_tone"`
	Palettes []Palette `json:"palettes"`
	Avoid    []string  `json:"avoid"`
}

type paletteRow struct {
	Tone   string `csv:"tone"`
	Kind   string `csv:"kind"`
	Name   string `csv:"name"`
	Colors string `csv:"colors"`
}

var sets = mustLoad(palettesCSV)

func mustLoad(data []byte) map[string]*Recommendation {
	s, err := load(data)
	if err != nil {
		panic(fmt.Sprintf("palette: embedded data is broken: %v", err))
	}
	return s
}

// load parses the CSV table into per-band recommendation sets, validating
// that every color code is a well-formed hex color and that all five bands
// are present.
func load(data []byte) (map[string]*Recommendation, error) {
	var rows []paletteRow
	if err := csvutil.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse palette table: %w", err)
	}

	out := make(map[string]*Recommendation)
	for _, row := range rows {
		colors := strings.Split(row.Colors, ";")
		for _, c := range colors {
			if _, err := colorful.Hex(c); err != nil {
				return nil, fmt.Errorf("band %s palette %q: bad color %q: %w",
					row.Tone, row.Name, c, err)
			}
		}

		set, ok := out[row.Tone]
		if !ok {
			set = &Recommendation{Tone: row.Tone}
			out[row.Tone] = set
		}

		switch row.Kind {
		case "recommended":
			set.Palettes = append(set.Palettes, Palette{Name: row.Name, Colors: colors})
		case "avoid":
			set.Avoid = append(set.Avoid, colors...)
		default:
			return nil, fmt.Errorf("band %s: unknown palette kind %q", row.Tone, row.Kind)
		}
	}

	for _, band := range bandOrder {
		if _, ok := out[band]; !ok {
			return nil, fmt.Errorf("palette table is missing band %s", band)
		}
	}
	if len(out) != len(bandOrder) {
		return nil, fmt.Errorf("palette table has %d bands, want %d", len(out), len(bandOrder))
	}

	return out, nil
}

// Recommend returns the recommendation set for a tone band. Unrecognized
// input is remapped to Medium with a warning; the call never fails.
func Recommend(tone string) *Recommendation {
	set, ok := sets[tone]
	if !ok {
		logrus.Warnf("unknown skin tone %q, defaulting to %s", tone, fallbackTone)
		set = sets[fallbackTone]
	}
	return set
}

// Bands returns the five valid tone band names in decreasing-lightness
// order.
func Bands() []string {
	out := make([]string, len(bandOrder))
	copy(out, bandOrder)
	return out
}
