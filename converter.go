package pagerect

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/tsawler/pagerect/model"
	"github.com/tsawler/pagerect/sourceinfo"
	"github.com/tsawler/pagerect/sources"
)

// ErrInvalidPageRange is returned when a page range starts after it ends.
var ErrInvalidPageRange = errors.New("invalid page range")

// Converter provides a fluent interface for turning source info records into
// a sources list. Each configuration method returns a new Converter
// instance, making it safe for concurrent use and allowing method chaining.
type Converter struct {
	// Input: a file to read, raw JSON, or records built in Go
	filename string
	data     []byte
	items    []sourceinfo.Item
	loaded   bool

	// Configuration
	options ConvertOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Converter with a deep copy of options.
func (c *Converter) clone() *Converter {
	return &Converter{
		filename: c.filename,
		data:     c.data,
		items:    c.items,
		loaded:   c.loaded,
		options:  c.options.clone(),
		err:      c.err,
	}
}

// ensureItems reads and parses the input if that has not happened yet.
func (c *Converter) ensureItems() ([]sourceinfo.Item, error) {
	if c.err != nil {
		return nil, c.err
	}
	if c.loaded {
		return c.items, nil
	}

	data := c.data
	if data == nil {
		if c.filename == "" {
			return nil, fmt.Errorf("no input specified")
		}
		var err error
		data, err = os.ReadFile(c.filename)
		if err != nil {
			return nil, fmt.Errorf("failed to read source info: %w", err)
		}
	}

	items, err := sourceinfo.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source info: %w", err)
	}
	return items, nil
}

// ============================================================================
// Configuration Methods (return new Converter instance)
// ============================================================================

// Pages keeps only sources whose main page is one of pages.
// Multiple calls are cumulative.
//
// Example:
//
//	srcs, _, err := pagerect.Open("sources.json").Pages(0, 2).Sources()
func (c *Converter) Pages(pages ...int) *Converter {
	newConv := c.clone()
	newConv.options.pages = append(newConv.options.pages, pages...)
	return newConv
}

// PageRange keeps only sources whose main page lies in [start, end].
// It combines with Pages and earlier ranges. A start after end is an error,
// reported by the terminal method.
func (c *Converter) PageRange(start, end int) *Converter {
	newConv := c.clone()
	if start > end {
		if newConv.err == nil {
			newConv.err = fmt.Errorf("%w: %d-%d", ErrInvalidPageRange, start, end)
		}
		return newConv
	}
	newConv.options.ranges = append(newConv.options.ranges, pageRange{min: start, max: end})
	return newConv
}

// LegacyMatch lets a record without an upload id merge into any source on
// the same page, whatever that source's document.
func (c *Converter) LegacyMatch() *Converter {
	return c.MatchMode(sources.MatchLegacy)
}

// MatchMode sets how records sharing a page are matched.
func (c *Converter) MatchMode(m sources.MatchMode) *Converter {
	newConv := c.clone()
	newConv.options.match = m
	return newConv
}

// Logger sets the logger that receives warnings for skipped records.
func (c *Converter) Logger(l *slog.Logger) *Converter {
	newConv := c.clone()
	newConv.options.logger = l
	return newConv
}

// ============================================================================
// Terminal Methods
// ============================================================================

// Sources converts the input into a sources list. Warnings report records
// that were skipped; they do not stop conversion.
//
// Example:
//
//	srcs, warnings, err := pagerect.FromJSON(body).Sources()
func (c *Converter) Sources() ([]model.Source, []Warning, error) {
	items, err := c.ensureItems()
	if err != nil {
		return nil, nil, err
	}

	srcs, warnings, err := sources.Aggregate(items, c.options.aggregatorOptions()...)
	if err != nil {
		return nil, warnings, err
	}

	return c.filterPages(srcs), warnings, nil
}

// JSON converts the input and encodes the sources list as JSON.
func (c *Converter) JSON() ([]byte, []Warning, error) {
	srcs, warnings, err := c.Sources()
	if err != nil {
		return nil, warnings, err
	}

	data, err := json.Marshal(srcs)
	if err != nil {
		return nil, warnings, fmt.Errorf("failed to encode sources: %w", err)
	}
	return data, warnings, nil
}

// Items returns the parsed input records.
func (c *Converter) Items() ([]sourceinfo.Item, error) {
	return c.ensureItems()
}

func (c *Converter) filterPages(srcs []model.Source) []model.Source {
	if c.options.pages == nil && c.options.ranges == nil {
		return srcs
	}

	out := make([]model.Source, 0, len(srcs))
	for _, s := range srcs {
		if c.options.selects(s.Page) {
			out = append(out, s)
		}
	}
	return out
}
