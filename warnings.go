package pagerect

import (
	"strings"

	"github.com/tsawler/pagerect/sources"
)

// Warning describes a source info record that was skipped during conversion.
type Warning = sources.Warning

// FormatWarnings joins warnings into a single line for logging.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
