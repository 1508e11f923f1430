// Package pagerect converts the source info returned by a document
// annotation API into the sources list a page viewer renders.
//
// Basic usage:
//
//	srcs, warnings, err := pagerect.FromJSON(body).Sources()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", pagerect.FormatWarnings(warnings))
//	}
//
// With options:
//
//	srcs, _, err := pagerect.Open("sources.json").
//	    Pages(0, 1).
//	    LegacyMatch().
//	    Sources()
//
// Text layout helpers are available too:
//
//	width, err := pagerect.TextWidth("Hi", "16px Arial")
//
// For lower-level control use the sourceinfo, sources and font packages.
package pagerect

import (
	"github.com/tsawler/pagerect/font"
	"github.com/tsawler/pagerect/model"
	"github.com/tsawler/pagerect/sourceinfo"
)

// Open returns a Converter reading a JSON array of source info records from
// filename. The file is read by the first terminal operation.
//
// Example:
//
//	srcs, warnings, err := pagerect.Open("sources.json").Sources()
func Open(filename string) *Converter {
	return &Converter{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromJSON returns a Converter over a JSON array of source info records.
func FromJSON(data []byte) *Converter {
	if data == nil {
		data = []byte{}
	}
	return &Converter{
		data:    data,
		options: defaultOptions(),
	}
}

// FromItems returns a Converter over records built in Go.
//
// Example:
//
//	srcs, _, err := pagerect.FromItems(
//	    sourceinfo.Wrapped{ID: "doc1", Rects: sourceinfo.PageMap{}.With("0", model.Rect{1, 2})},
//	).Sources()
func FromItems(items ...sourceinfo.Item) *Converter {
	return &Converter{
		items:   items,
		loaded:  true,
		options: defaultOptions(),
	}
}

// TextWidth returns the rendered width in pixels of text set in fontSpec, a
// CSS font shorthand such as "16px Arial".
func TextWidth(text, fontSpec string) (float64, error) {
	return font.TextWidth(text, fontSpec)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	w := pagerect.Must(pagerect.TextWidth("Hi", "16px Arial"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustSources is a helper that wraps a call to Sources() and panics if the
// error is non-nil. It discards warnings and returns just the sources list.
//
// Example:
//
//	srcs := pagerect.MustSources(pagerect.FromJSON(body).Sources())
func MustSources(srcs []model.Source, _ []Warning, err error) []model.Source {
	if err != nil {
		panic(err)
	}
	return srcs
}
