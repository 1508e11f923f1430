package sources

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/tsawler/pagerect/model"
	"github.com/tsawler/pagerect/sourceinfo"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func wrapped(id string, pages ...sourceinfo.PageEntry) sourceinfo.Wrapped {
	return sourceinfo.Wrapped{ID: id, Rects: sourceinfo.PageMap(pages)}
}

func bare(pages ...sourceinfo.PageEntry) sourceinfo.Bare {
	return sourceinfo.Bare{Rects: sourceinfo.PageMap(pages)}
}

func page(key string, rects ...model.Rect) sourceinfo.PageEntry {
	return sourceinfo.PageEntry{Key: key, Rects: rects}
}

// TestAggregateMergesSameDocAndPage covers the canonical merge example
func TestAggregateMergesSameDocAndPage(t *testing.T) {
	items := []sourceinfo.Item{
		wrapped("doc1", page("0", model.Rect{1, 2}), page("1", model.Rect{3, 4})),
		wrapped("doc1", page("0", model.Rect{5, 6})),
	}

	got, warnings, err := Aggregate(items, WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}

	want := []model.Source{{
		Page:  0,
		DocID: "doc1",
		Rects: []model.Rect{{1, 2}, {5, 6}},
		Spreads: []model.PageRects{
			{Page: 1, DocID: "doc1", Rects: []model.Rect{{3, 4}}},
		},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

// TestAggregateConcatenatesSpreads tests that spreads of merged records are appended in order
func TestAggregateConcatenatesSpreads(t *testing.T) {
	items := []sourceinfo.Item{
		wrapped("doc1", page("2", model.Rect{1}), page("3", model.Rect{2})),
		wrapped("doc1", page("2", model.Rect{3}), page("4", model.Rect{4}), page("5", model.Rect{5})),
	}

	got, _, err := Aggregate(items, WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 source, got %d", len(got))
	}

	var spreadPages []int
	for _, sp := range got[0].Spreads {
		spreadPages = append(spreadPages, sp.Page)
	}
	if !reflect.DeepEqual(spreadPages, []int{3, 4, 5}) {
		t.Errorf("expected spread pages [3 4 5], got %v", spreadPages)
	}
	if !reflect.DeepEqual(got[0].Rects, []model.Rect{{1}, {3}}) {
		t.Errorf("expected rects [[1] [3]], got %v", got[0].Rects)
	}
}

func TestAggregateKeepsFirstSeenOrder(t *testing.T) {
	items := []sourceinfo.Item{
		wrapped("doc2", page("7", model.Rect{1})),
		wrapped("doc1", page("0", model.Rect{2})),
		wrapped("doc2", page("7", model.Rect{3})),
		wrapped("doc1", page("7", model.Rect{4})),
	}

	got, _, err := Aggregate(items, WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	type id struct {
		page  int
		docID string
	}
	var ids []id
	for _, s := range got {
		ids = append(ids, id{s.Page, s.DocID})
	}
	want := []id{{7, "doc2"}, {0, "doc1"}, {7, "doc1"}}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("expected %v, got %v", want, ids)
	}
}

// TestAggregateEmptyItem tests that empty records are skipped with a diagnostic
func TestAggregateEmptyItem(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	items := []sourceinfo.Item{
		bare(),
		wrapped("doc1", page("0", model.Rect{1})),
	}

	got, warnings, err := Aggregate(items, WithLogger(logger))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 source, got %d", len(got))
	}

	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", warnings)
	}
	if warnings[0].Index != 0 || warnings[0].Message != MsgEmpty {
		t.Errorf("unexpected warning: %+v", warnings[0])
	}
	if !strings.Contains(buf.String(), MsgEmpty) {
		t.Errorf("expected log to contain %q, got %q", MsgEmpty, buf.String())
	}
	if !strings.Contains(buf.String(), "level=WARN") {
		t.Errorf("expected a WARN record, got %q", buf.String())
	}
}

func TestAggregateNilItem(t *testing.T) {
	got, warnings, err := Aggregate([]sourceinfo.Item{nil}, WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 || len(warnings) != 1 {
		t.Errorf("expected no sources and one warning, got %v %v", got, warnings)
	}
}

func TestAggregateWrappedWithoutPages(t *testing.T) {
	got, warnings, err := Aggregate([]sourceinfo.Item{wrapped("doc1")}, WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no sources, got %+v", got)
	}
	if len(warnings) != 1 || warnings[0].Message != MsgNoPages {
		t.Errorf("expected %q warning, got %v", MsgNoPages, warnings)
	}
}

func TestAggregateInvalidPageKey(t *testing.T) {
	items := []sourceinfo.Item{
		wrapped("doc1", page("0", model.Rect{1})),
		bare(page("cover", model.Rect{1})),
	}

	got, _, err := Aggregate(items, WithLogger(quietLogger()))
	if !errors.Is(err, sourceinfo.ErrInvalidPageKey) {
		t.Fatalf("expected ErrInvalidPageKey, got %v", err)
	}
	if !strings.Contains(err.Error(), "item 1") {
		t.Errorf("expected error to name item 1, got %v", err)
	}
	if got != nil {
		t.Errorf("expected nil sources on error, got %+v", got)
	}
}

// TestAggregateMatchModes tests how records without a doc id are matched
func TestAggregateMatchModes(t *testing.T) {
	items := []sourceinfo.Item{
		wrapped("doc1", page("0", model.Rect{1})),
		bare(page("0", model.Rect{2})),
		bare(page("0", model.Rect{3})),
	}

	tests := []struct {
		name  string
		mode  MatchMode
		count int
		first []model.Rect
	}{
		{"strict keeps doc-less sources apart from documents", MatchStrict, 2, []model.Rect{{1}}},
		{"legacy folds doc-less sources into the first source on the page", MatchLegacy, 1, []model.Rect{{1}, {2}, {3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := Aggregate(items, WithMatchMode(tt.mode), WithLogger(quietLogger()))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tt.count {
				t.Fatalf("expected %d sources, got %d: %+v", tt.count, len(got), got)
			}
			if !reflect.DeepEqual(got[0].Rects, tt.first) {
				t.Errorf("expected first rects %v, got %v", tt.first, got[0].Rects)
			}
		})
	}
}

func TestAggregateStrictMergesDocless(t *testing.T) {
	items := []sourceinfo.Item{
		bare(page("0", model.Rect{1})),
		bare(page("0", model.Rect{2})),
	}

	got, _, err := Aggregate(items, WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || len(got[0].Rects) != 2 {
		t.Errorf("expected one source with 2 rects, got %+v", got)
	}
}

func TestAggregateLegacyWithDocIDStillMatchesBoth(t *testing.T) {
	items := []sourceinfo.Item{
		bare(page("0", model.Rect{1})),
		wrapped("doc1", page("0", model.Rect{2})),
	}

	got, _, err := Aggregate(items, WithMatchMode(MatchLegacy), WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 sources, got %+v", got)
	}
}

// TestAggregateDoesNotAliasInput tests that output rects are copies
func TestAggregateDoesNotAliasInput(t *testing.T) {
	rect := model.Rect{1, 2}
	spread := model.Rect{3, 4}
	items := []sourceinfo.Item{wrapped("doc1", page("0", rect), page("1", spread))}

	got, _, err := Aggregate(items, WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got[0].Rects[0][0] = 99
	got[0].Spreads[0].Rects[0][0] = 99

	if rect[0] != 1 || spread[0] != 3 {
		t.Errorf("expected input untouched, got %v %v", rect, spread)
	}
}

// TestAggregateRepeatedInput tests that feeding the same records again only extends matched sources
func TestAggregateRepeatedInput(t *testing.T) {
	items := []sourceinfo.Item{
		wrapped("doc1", page("0", model.Rect{1, 2}), page("1", model.Rect{3, 4})),
		wrapped("doc2", page("5", model.Rect{5, 6})),
	}

	once, _, err := Aggregate(items, WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	again, _, err := Aggregate(items, WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(once, again) {
		t.Errorf("expected repeated runs to agree, got %+v and %+v", once, again)
	}

	doubled, _, err := Aggregate(append(append([]sourceinfo.Item{}, items...), items...), WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doubled) != len(once) {
		t.Errorf("expected %d sources, got %d", len(once), len(doubled))
	}
	if len(doubled[0].Rects) != 2 || len(doubled[0].Spreads) != 2 {
		t.Errorf("expected rects and spreads doubled, got %+v", doubled[0])
	}
}

func TestParseMatchMode(t *testing.T) {
	tests := []struct {
		in      string
		want    MatchMode
		wantErr bool
	}{
		{"", MatchStrict, false},
		{"strict", MatchStrict, false},
		{"legacy", MatchLegacy, false},
		{"loose", MatchStrict, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMatchMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMatchMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseMatchMode(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if !tt.wantErr && tt.in != "" && got.String() != tt.in {
				t.Errorf("expected String() %q, got %q", tt.in, got.String())
			}
		})
	}
}

func TestWarningString(t *testing.T) {
	w := Warning{Index: 2, Message: MsgEmpty}
	if w.String() != "item 2: the source info is empty" {
		t.Errorf("unexpected warning text %q", w.String())
	}
}
