// Package font measures the rendered width of text for layout code.
//
// Fonts are described with CSS font shorthand, the same strings a browser
// canvas accepts:
//
//	width, err := font.TextWidth("Hi", "16px Arial")
//	width, err := font.TextWidth("Chapter 1", "italic bold 12pt/1.5 'Times New Roman', serif")
//
// # Families
//
// The first family in the list that can be measured wins:
//
//   - Helvetica, Arial, sans-serif - Helvetica width table
//   - Times, Times New Roman, Georgia, serif - Times width table
//   - Courier, Courier New, monospace - Courier (600 units per glyph)
//   - Go, Go Mono, system-ui - the Go fonts, measured with golang.org/x/image
//
// A list naming no known family is measured with the Go font.
//
// # Surfaces
//
// Measuring happens on a [Surface], which caches faces between calls.
// [TextWidth] uses a process-wide surface created on first use by
// [DefaultSurface]. Callers needing several measurements in one font can
// hold a surface of their own:
//
//	s := font.NewSurface()
//	if err := s.SetFont("14px monospace"); err != nil {
//	    // handle error
//	}
//	w := s.MeasureText("fmt.Println")
//
// Text is NFC-normalised before measuring.
package font
