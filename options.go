package pagerect

import (
	"log/slog"

	"github.com/tsawler/pagerect/sources"
)

// ConvertOptions holds configuration for source conversion.
type ConvertOptions struct {
	// Main page selection; with neither set every page is kept
	pages  []int
	ranges []pageRange

	// Matching of records that share a page
	match sources.MatchMode

	// Receives warnings for skipped records; nil means slog.Default()
	logger *slog.Logger
}

// pageRange is an inclusive span of main pages.
type pageRange struct {
	min, max int
}

func (r pageRange) contains(page int) bool {
	return page >= r.min && page <= r.max
}

// defaultOptions returns the default conversion options.
func defaultOptions() ConvertOptions {
	return ConvertOptions{
		pages:  nil,
		match:  sources.MatchStrict,
		logger: nil,
	}
}

// clone creates a deep copy of ConvertOptions.
func (o ConvertOptions) clone() ConvertOptions {
	newOpts := ConvertOptions{
		match:  o.match,
		logger: o.logger,
	}

	// Deep copy pages slice
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}
	if o.ranges != nil {
		newOpts.ranges = make([]pageRange, len(o.ranges))
		copy(newOpts.ranges, o.ranges)
	}

	return newOpts
}

// selects reports whether page passes the page selection.
func (o ConvertOptions) selects(page int) bool {
	if o.pages == nil && o.ranges == nil {
		return true
	}
	for _, p := range o.pages {
		if p == page {
			return true
		}
	}
	for _, r := range o.ranges {
		if r.contains(page) {
			return true
		}
	}
	return false
}

// aggregatorOptions translates the options for the sources package.
func (o ConvertOptions) aggregatorOptions() []sources.Option {
	return []sources.Option{
		sources.WithMatchMode(o.match),
		sources.WithLogger(o.logger),
	}
}
