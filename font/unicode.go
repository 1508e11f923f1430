package font

import "golang.org/x/text/unicode/norm"

// NormalizeUnicode returns s in NFC form so that composed and decomposed
// spellings of the same text measure the same.
func NormalizeUnicode(s string) string {
	return norm.NFC.String(s)
}
