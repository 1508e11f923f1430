package font

import (
	"fmt"
	"strings"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// family is a resolved font family.
type family string

const (
	familyHelvetica family = "helvetica"
	familyTimes     family = "times"
	familyCourier   family = "courier"
	familyGo        family = "go"
	familyGoMono    family = "go mono"
)

// familyAliases maps lower-cased CSS family names onto the families that
// can be measured.
var familyAliases = map[string]family{
	"helvetica":       familyHelvetica,
	"helvetica neue":  familyHelvetica,
	"arial":           familyHelvetica,
	"sans-serif":      familyHelvetica,
	"times":           familyTimes,
	"times new roman": familyTimes,
	"times-roman":     familyTimes,
	"georgia":         familyTimes,
	"serif":           familyTimes,
	"courier":         familyCourier,
	"courier new":     familyCourier,
	"monospace":       familyCourier,
	"go":              familyGo,
	"go regular":      familyGo,
	"system-ui":       familyGo,
	"go mono":         familyGoMono,
	"go-mono":         familyGoMono,
}

// resolveFamily picks the first family in the list that can be measured.
// Lists naming nothing known fall back to the Go font.
func resolveFamily(families []string) family {
	for _, f := range families {
		if fam, ok := familyAliases[strings.ToLower(f)]; ok {
			return fam
		}
	}
	return familyGo
}

// face measures text for one resolved family, style and size.
type face interface {
	advance(text string) float64 // pixels
}

// metricsFace measures with a standard width table.
type metricsFace struct {
	m    *metrics
	size float64
}

func (f metricsFace) advance(text string) float64 {
	total := 0.0
	for _, r := range text {
		total += f.m.width(r)
	}
	return total * f.size / 1000
}

// openTypeFace measures with a parsed OpenType font.
type openTypeFace struct {
	face xfont.Face
}

func (f openTypeFace) advance(text string) float64 {
	adv := xfont.MeasureString(f.face, text)
	return float64(adv) / 64
}

// faceKey identifies a cached face.
type faceKey struct {
	family family
	bold   bool
	italic bool
	size   float64
}

func standardMetrics(fam family, bold bool) *metrics {
	switch fam {
	case familyTimes:
		if bold {
			return timesBold
		}
		return times
	case familyCourier:
		return courier
	default:
		if bold {
			return helveticaBold
		}
		return helvetica
	}
}

// goFontData returns the TrueType data of the Go font variant.
func goFontData(fam family, bold, italic bool) []byte {
	if fam == familyGoMono {
		switch {
		case bold && italic:
			return gomonobolditalic.TTF
		case bold:
			return gomonobold.TTF
		case italic:
			return gomonoitalic.TTF
		default:
			return gomono.TTF
		}
	}
	switch {
	case bold && italic:
		return gobolditalic.TTF
	case bold:
		return gobold.TTF
	case italic:
		return goitalic.TTF
	default:
		return goregular.TTF
	}
}

// newOpenTypeFace builds a face at size pixels. With 72 DPI one point is one
// pixel.
func newOpenTypeFace(f *opentype.Font, size float64) (face, error) {
	ff, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: xfont.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face: %w", err)
	}
	return openTypeFace{face: ff}, nil
}
