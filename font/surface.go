package font

import (
	"fmt"
	"sync"

	"golang.org/x/image/font/opentype"
)

// DefaultFont is the font a new Surface starts with.
const DefaultFont = "10px sans-serif"

// maxFaces bounds the per-surface face cache. Faces are keyed by size, so a
// caller sweeping many sizes would otherwise grow it without limit.
const maxFaces = 64

// Surface is a reusable text measuring context. It holds a current font, set
// with SetFont, that MeasureText measures with. Parsed font files are
// cached for the life of the surface; resolved faces are cached up to
// maxFaces entries, after which the face cache starts over.
//
// All methods are safe for concurrent use. SetFont followed by MeasureText
// from different goroutines can interleave, though; use Measure to set a
// font and measure atomically.
type Surface struct {
	mu      sync.Mutex
	spec    Spec
	current face
	faces   map[faceKey]face
	parsed  map[string]*opentype.Font // keyed by variant
}

// NewSurface creates a surface set to DefaultFont.
func NewSurface() *Surface {
	s := &Surface{
		faces:  make(map[faceKey]face),
		parsed: make(map[string]*opentype.Font),
	}
	if err := s.setFontLocked(DefaultFont); err != nil {
		panic(fmt.Sprintf("font: default font: %v", err))
	}
	return s
}

var (
	defaultSurface *Surface
	surfaceOnce    sync.Once
)

// DefaultSurface returns the process-wide surface, creating it on first use.
func DefaultSurface() *Surface {
	surfaceOnce.Do(func() {
		defaultSurface = NewSurface()
	})
	return defaultSurface
}

// TextWidth returns the rendered width in pixels of text set in font, a CSS
// font shorthand such as "16px Arial". It measures on DefaultSurface.
func TextWidth(text, font string) (float64, error) {
	return DefaultSurface().Measure(text, font)
}

// SetFont parses font and makes it current. On error the current font is
// left unchanged.
func (s *Surface) SetFont(font string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setFontLocked(font)
}

// Font returns the current font in shorthand form.
func (s *Surface) Font() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spec.String()
}

// MeasureText returns the width of text in the current font.
func (s *Surface) MeasureText(text string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.advance(NormalizeUnicode(text))
}

// Measure sets font and measures text as one step.
func (s *Surface) Measure(text, font string) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.setFontLocked(font); err != nil {
		return 0, err
	}
	return s.current.advance(NormalizeUnicode(text)), nil
}

func (s *Surface) setFontLocked(font string) error {
	spec, err := ParseFont(font)
	if err != nil {
		return err
	}

	f, err := s.faceFor(spec)
	if err != nil {
		return fmt.Errorf("font %q: %w", font, err)
	}

	s.spec = spec
	s.current = f
	return nil
}

// faceFor returns the cached face for spec, creating it if needed.
func (s *Surface) faceFor(spec Spec) (face, error) {
	fam := resolveFamily(spec.Families)
	key := faceKey{family: fam, bold: spec.Bold(), italic: spec.Slanted(), size: spec.Size}
	if f, ok := s.faces[key]; ok {
		return f, nil
	}

	var f face
	switch fam {
	case familyGo, familyGoMono:
		parsed, err := s.parsedFont(fam, key.bold, key.italic)
		if err != nil {
			return nil, err
		}
		f, err = newOpenTypeFace(parsed, spec.Size)
		if err != nil {
			return nil, err
		}
	default:
		f = metricsFace{m: standardMetrics(fam, key.bold), size: spec.Size}
	}

	if len(s.faces) >= maxFaces {
		clear(s.faces)
	}
	s.faces[key] = f
	return f, nil
}

func (s *Surface) parsedFont(fam family, bold, italic bool) (*opentype.Font, error) {
	variant := fmt.Sprintf("%s/%t/%t", fam, bold, italic)
	if f, ok := s.parsed[variant]; ok {
		return f, nil
	}

	f, err := opentype.Parse(goFontData(fam, bold, italic))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", variant, err)
	}
	s.parsed[variant] = f
	return f, nil
}
