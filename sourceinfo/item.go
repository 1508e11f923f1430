package sourceinfo

import (
	"sort"
	"strconv"

	"github.com/tsawler/pagerect/model"
)

// PageEntry is one page key of a rects mapping together with its rects.
type PageEntry struct {
	Key   string
	Rects []model.Rect
}

// PageMap is a page-keyed rects mapping that remembers key order.
type PageMap []PageEntry

// With returns the map with key set to rects. An existing key keeps its
// position and has its rects replaced; a new key is appended.
func (m PageMap) With(key string, rects ...model.Rect) PageMap {
	for i := range m {
		if m[i].Key == key {
			out := append(PageMap(nil), m...)
			out[i].Rects = rects
			return out
		}
	}
	return append(m, PageEntry{Key: key, Rects: rects})
}

// Len returns the number of page keys.
func (m PageMap) Len() int {
	return len(m)
}

// PagesOf builds a PageMap from a Go map. Go maps carry no order, so keys are
// laid out in ascending page order.
func PagesOf(pages map[int][]model.Rect) PageMap {
	keys := make([]int, 0, len(pages))
	for k := range pages {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	m := make(PageMap, 0, len(keys))
	for _, k := range keys {
		m = append(m, PageEntry{Key: strconv.Itoa(k), Rects: pages[k]})
	}
	return m
}

// Item is one raw source info record. It is either [Wrapped] (rects nested
// under an upload id) or [Bare] (the record is the rects mapping itself).
type Item interface {
	// UploadID returns the document id, or "" when the record has none.
	UploadID() string
	// Pages returns the page-keyed rects mapping.
	Pages() PageMap
	// Empty reports whether the record has no keys at all.
	Empty() bool

	isItem()
}

// Wrapped is the {upload_id, rects} record shape.
type Wrapped struct {
	ID    string
	Rects PageMap
}

// UploadID implements Item.
func (w Wrapped) UploadID() string { return w.ID }

// Pages implements Item.
func (w Wrapped) Pages() PageMap { return w.Rects }

// Empty implements Item. A wrapped record always has its own keys.
func (w Wrapped) Empty() bool { return false }

func (Wrapped) isItem() {}

// Bare is a record that is itself the page-keyed rects mapping.
type Bare struct {
	Rects PageMap
}

// UploadID implements Item. Bare records are never tied to a document.
func (b Bare) UploadID() string { return "" }

// Pages implements Item.
func (b Bare) Pages() PageMap { return b.Rects }

// Empty implements Item.
func (b Bare) Empty() bool { return len(b.Rects) == 0 }

func (Bare) isItem() {}
