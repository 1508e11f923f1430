package font

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// TestTextWidth tests measurement with the Helvetica table
func TestTextWidth(t *testing.T) {
	width, err := TextWidth("Hi", "16px Arial")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// H=722, i=222
	expected := (722.0 + 222.0) * 16 / 1000
	if !approx(width, expected) {
		t.Errorf("expected width %f for 'Hi', got %f", expected, width)
	}

	again, err := TextWidth("Hi", "16px Arial")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again != width {
		t.Errorf("expected repeated measurement %f, got %f", width, again)
	}
}

func TestTextWidthFamilies(t *testing.T) {
	tests := []struct {
		name string
		font string
		text string
		want float64
	}{
		{"sans-serif", "10px sans-serif", "A", 6.67},
		{"bold helvetica", "bold 10px Helvetica", "a", 5.56},
		{"times", "10px 'Times New Roman', serif", "A", 7.22},
		{"times bold", "700 10px Times", "a", 5},
		{"courier", "10px monospace", "iW", 12},
		{"first known family wins", "10px Wingdings, Courier, Arial", "W", 6},
		{"points", "12pt Courier", "x", 9.6},
		{"em", "1em Courier", "x", 9.6},
		{"percent", "50% Courier", "x", 4.8},
		{"keyword size", "medium Courier", "x", 9.6},
		{"bold falls back to regular digits", "bold 10px Arial", "1", 5.56},
		{"empty text", "16px Arial", "", 0},
	}

	s := NewSurface()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Measure(tt.text, tt.font)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !approx(got, tt.want) {
				t.Errorf("Measure(%q, %q) = %f, want %f", tt.text, tt.font, got, tt.want)
			}
		})
	}
}

// TestGoFontFallback tests that unknown families measure with the Go font
func TestGoFontFallback(t *testing.T) {
	s := NewSurface()

	unknown, err := s.Measure("Hello", "16px UnknownFamily")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if unknown <= 0 || math.IsInf(unknown, 0) || math.IsNaN(unknown) {
		t.Fatalf("expected positive finite width, got %f", unknown)
	}

	goFont, err := s.Measure("Hello", "16px Go")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if goFont != unknown {
		t.Errorf("expected unknown family to match Go font, got %f and %f", unknown, goFont)
	}

	larger, err := s.Measure("Hello", "32px Go")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if larger <= goFont {
		t.Errorf("expected 32px to be wider than 16px, got %f and %f", larger, goFont)
	}

	mono, err := s.Measure("iiii", "16px 'Go Mono'")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wide, err := s.Measure("WWWW", "16px 'Go Mono'")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mono != wide {
		t.Errorf("expected monospaced widths to agree, got %f and %f", mono, wide)
	}
}

func TestSurfaceSetFont(t *testing.T) {
	s := NewSurface()

	if got := s.Font(); got != "10px sans-serif" {
		t.Errorf("expected default font 10px sans-serif, got %q", got)
	}

	if err := s.SetFont("20px Courier"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.MeasureText("ab"); !approx(got, 24) {
		t.Errorf("expected width 24, got %f", got)
	}

	err := s.SetFont("Courier")
	if !errors.Is(err, ErrInvalidFont) {
		t.Fatalf("expected ErrInvalidFont, got %v", err)
	}
	if got := s.Font(); got != "20px Courier" {
		t.Errorf("expected font unchanged after error, got %q", got)
	}
}

func TestMeasureNormalizesText(t *testing.T) {
	s := NewSurface()

	composed, err := s.Measure("caf\u00e9", "16px Go")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	decomposed, err := s.Measure("cafe\u0301", "16px Go")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if composed != decomposed {
		t.Errorf("expected equal widths, got %f and %f", composed, decomposed)
	}
}

// TestMeasureConcurrent tests that interleaved callers get the same widths as sequential ones
func TestMeasureConcurrent(t *testing.T) {
	fonts := []string{"16px Arial", "bold 12px Times", "14px monospace", "18px Go"}
	s := NewSurface()

	want := make(map[string]float64)
	for _, f := range fonts {
		w, err := s.Measure("The quick brown fox", f)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want[f] = w
	}

	var wg sync.WaitGroup
	errs := make(chan string, len(fonts)*50)
	for i := 0; i < 50; i++ {
		for _, f := range fonts {
			wg.Add(1)
			go func(f string) {
				defer wg.Done()
				got, err := s.Measure("The quick brown fox", f)
				if err != nil || got != want[f] {
					errs <- f
				}
			}(f)
		}
	}
	wg.Wait()
	close(errs)

	for f := range errs {
		t.Errorf("concurrent measurement of %q disagreed with sequential result", f)
	}
}

// TestFaceCacheBounded tests that sweeping sizes does not grow the face cache past its cap
func TestFaceCacheBounded(t *testing.T) {
	s := NewSurface()

	for i := 1; i <= 4*maxFaces; i++ {
		for _, fam := range []string{"Arial", "Go"} {
			if _, err := s.Measure("Hi", fmt.Sprintf("%dpx %s", i, fam)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
	}

	s.mu.Lock()
	n := len(s.faces)
	s.mu.Unlock()
	if n > maxFaces {
		t.Errorf("expected at most %d cached faces, got %d", maxFaces, n)
	}

	w, err := s.Measure("Hi", "16px Arial")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approx(w, 15.104) {
		t.Errorf("expected 15.104 after cache reset, got %f", w)
	}
}

func TestDefaultSurfaceIsShared(t *testing.T) {
	if DefaultSurface() != DefaultSurface() {
		t.Error("expected DefaultSurface to return the same surface")
	}
}

func TestNormalizeUnicode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"already normalized", "caf\u00e9", "caf\u00e9"},
		{"decomposed to composed", "cafe\u0301", "caf\u00e9"},
		{"ASCII unchanged", "Hello World", "Hello World"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeUnicode(tt.input)
			if got != tt.expected {
				t.Errorf("NormalizeUnicode(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
