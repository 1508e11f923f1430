package font

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidFont is returned for a font description that cannot be parsed.
var ErrInvalidFont = errors.New("invalid font")

// Base size em, rem and percentages resolve against.
const baseFontSize = 16.0

// Style is the slant of a font.
type Style int

const (
	StyleNormal Style = iota
	StyleItalic
	StyleOblique
)

// Weight values for the CSS weight keywords.
const (
	WeightNormal = 400
	WeightBold   = 700
)

// Spec is a parsed CSS font shorthand.
type Spec struct {
	Style    Style
	Weight   int      // 1-1000
	Size     float64  // pixels
	Families []string // in preference order, quotes removed
}

// Bold reports whether the weight selects a bold face.
func (s Spec) Bold() bool {
	return s.Weight >= 600
}

// Slanted reports whether the style selects an italic face.
func (s Spec) Slanted() bool {
	return s.Style != StyleNormal
}

// absoluteSizes are the CSS absolute-size keywords with their usual pixel values.
var absoluteSizes = map[string]float64{
	"xx-small": 9,
	"x-small":  10,
	"small":    13,
	"medium":   16,
	"large":    18,
	"x-large":  24,
	"xx-large": 32,
}

// ignoredKeywords are valid shorthand keywords that do not change measurement.
var ignoredKeywords = map[string]bool{
	"normal":          true,
	"small-caps":      true,
	"ultra-condensed": true,
	"extra-condensed": true,
	"condensed":       true,
	"semi-condensed":  true,
	"semi-expanded":   true,
	"expanded":        true,
	"extra-expanded":  true,
	"ultra-expanded":  true,
}

// ParseFont parses a CSS font shorthand such as "16px sans-serif" or
// "italic bold 12pt/1.5 'Times New Roman', serif". Size and at least one
// family are required.
func ParseFont(s string) (Spec, error) {
	spec := Spec{Style: StyleNormal, Weight: WeightNormal}

	fields := strings.Fields(s)
	sizeAt := -1
	for i, f := range fields {
		if size, ok := parseSize(f); ok {
			spec.Size = size
			sizeAt = i
			break
		}
		if err := spec.applyKeyword(f); err != nil {
			return Spec{}, fmt.Errorf("%w: %q: %v", ErrInvalidFont, s, err)
		}
	}
	if sizeAt < 0 {
		return Spec{}, fmt.Errorf("%w: %q: missing size", ErrInvalidFont, s)
	}

	spec.Families = parseFamilies(strings.Join(fields[sizeAt+1:], " "))
	if len(spec.Families) == 0 {
		return Spec{}, fmt.Errorf("%w: %q: missing family", ErrInvalidFont, s)
	}
	return spec, nil
}

func (s *Spec) applyKeyword(kw string) error {
	lower := strings.ToLower(kw)
	switch {
	case ignoredKeywords[lower]:
		return nil
	case lower == "italic":
		s.Style = StyleItalic
	case lower == "oblique":
		s.Style = StyleOblique
	case lower == "bold", lower == "bolder":
		s.Weight = WeightBold
	case lower == "lighter":
		s.Weight = 300
	default:
		w, err := strconv.Atoi(lower)
		if err != nil || w < 1 || w > 1000 {
			return fmt.Errorf("unknown keyword %q", kw)
		}
		s.Weight = w
	}
	return nil
}

// parseSize parses a size token, ignoring any "/line-height" suffix.
func parseSize(tok string) (float64, bool) {
	if i := strings.IndexByte(tok, '/'); i >= 0 {
		tok = tok[:i]
	}
	tok = strings.ToLower(tok)

	if px, ok := absoluteSizes[tok]; ok {
		return px, true
	}

	// "rem" precedes "em" so the longer suffix matches first.
	units := []struct {
		suffix   string
		num, den float64
	}{
		{"rem", baseFontSize, 1},
		{"px", 1, 1},
		{"pt", 4, 3},
		{"em", baseFontSize, 1},
		{"%", baseFontSize, 100},
	}
	for _, u := range units {
		if !strings.HasSuffix(tok, u.suffix) {
			continue
		}
		n, err := strconv.ParseFloat(strings.TrimSuffix(tok, u.suffix), 64)
		if err != nil || !(n >= 0) || math.IsInf(n, 1) {
			return 0, false
		}
		return n * u.num / u.den, true
	}
	return 0, false
}

func parseFamilies(list string) []string {
	var families []string
	for _, f := range strings.Split(list, ",") {
		f = strings.TrimSpace(f)
		f = strings.Trim(f, `"'`)
		f = strings.TrimSpace(f)
		if f != "" {
			families = append(families, f)
		}
	}
	return families
}

// String formats the spec back into shorthand form.
func (s Spec) String() string {
	var b strings.Builder
	switch s.Style {
	case StyleItalic:
		b.WriteString("italic ")
	case StyleOblique:
		b.WriteString("oblique ")
	}
	if s.Weight != WeightNormal {
		b.WriteString(strconv.Itoa(s.Weight))
		b.WriteByte(' ')
	}
	b.WriteString(strconv.FormatFloat(s.Size, 'f', -1, 64))
	b.WriteString("px ")
	for i, f := range s.Families {
		if i > 0 {
			b.WriteString(", ")
		}
		if strings.ContainsAny(f, " ") {
			b.WriteString(`"` + f + `"`)
		} else {
			b.WriteString(f)
		}
	}
	return b.String()
}
