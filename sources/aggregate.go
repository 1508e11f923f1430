package sources

import (
	"fmt"

	"github.com/tsawler/pagerect/model"
	"github.com/tsawler/pagerect/sourceinfo"
)

// Warning messages emitted for records that produce no source.
const (
	MsgEmpty   = "the source info is empty"
	MsgNoPages = "the source info has no pages"
)

// Warning describes a record that was skipped. Index is the record's
// position in the input.
type Warning struct {
	Index   int
	Message string
}

// String formats the warning for display.
func (w Warning) String() string {
	return fmt.Sprintf("item %d: %s", w.Index, w.Message)
}

// Aggregator converts source info records into a sources list.
type Aggregator struct {
	opts options
}

// New creates an Aggregator with the given options.
func New(opts ...Option) *Aggregator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Aggregator{opts: o}
}

// Aggregate is a shorthand for New(opts...).Aggregate(items).
func Aggregate(items []sourceinfo.Item, opts ...Option) ([]model.Source, []Warning, error) {
	return New(opts...).Aggregate(items)
}

// Aggregate converts records into a sources list.
//
// Each record's first page becomes a source's main page and its later pages
// become that source's spreads. A source matching one already collected
// (see MatchMode) is merged into it: rects and spreads are appended. The
// list keeps the order in which sources were first seen.
//
// Empty records are skipped with a warning. The error is non-nil only when a
// record holds a page key that is not a page number.
func (a *Aggregator) Aggregate(items []sourceinfo.Item) ([]model.Source, []Warning, error) {
	var (
		out      = make([]model.Source, 0, len(items))
		index    = make(map[matchKey]int)
		warnings []Warning
	)

	warn := func(i int, msg string) {
		warnings = append(warnings, Warning{Index: i, Message: msg})
		a.opts.log().Warn(msg, "item", i)
	}

	for i, item := range items {
		if item == nil || item.Empty() {
			warn(i, MsgEmpty)
			continue
		}

		entries, err := sourceinfo.Normalize(item)
		if err != nil {
			return nil, warnings, fmt.Errorf("item %d: %w", i, err)
		}
		if len(entries) == 0 {
			warn(i, MsgNoPages)
			continue
		}

		src := model.NewSource(entries[0])
		for _, e := range entries[1:] {
			src.AddSpread(e)
		}

		if pos, ok := a.find(index, src); ok {
			out[pos].Merge(src)
			a.opts.log().Debug("merged source",
				"item", i, "page", src.Page, "doc_id", src.DocID, "into", pos)
			continue
		}

		index[keyOf(src.Page, src.DocID)] = len(out)
		if _, seen := index[pageKey(src.Page)]; !seen {
			index[pageKey(src.Page)] = len(out)
		}
		out = append(out, src)
	}

	return out, warnings, nil
}

// matchKey identifies a collected source. byPage keys index the first
// source seen on a page regardless of doc id; they serve legacy matching.
type matchKey struct {
	page   int
	docID  string
	byPage bool
}

func keyOf(page int, docID string) matchKey {
	return matchKey{page: page, docID: docID}
}

func pageKey(page int) matchKey {
	return matchKey{page: page, byPage: true}
}

// find returns the position of the collected source src should merge into.
func (a *Aggregator) find(index map[matchKey]int, src model.Source) (int, bool) {
	if a.opts.match == MatchLegacy && src.DocID == "" {
		pos, ok := index[pageKey(src.Page)]
		return pos, ok
	}
	pos, ok := index[keyOf(src.Page, src.DocID)]
	return pos, ok
}
