package model

// PageRects is the set of rects one source info record holds for a single page.
type PageRects struct {
	Page  int    `json:"page" yaml:"page"`
	DocID string `json:"docId,omitempty" yaml:"docId,omitempty"` // empty when the record carries no upload id
	Rects []Rect `json:"rects" yaml:"rects"`
}

// Clone returns a copy that shares no rect storage with p.
func (p PageRects) Clone() PageRects {
	return PageRects{
		Page:  p.Page,
		DocID: p.DocID,
		Rects: CloneRects(p.Rects),
	}
}

// HasDoc reports whether the entry is tied to an uploaded document.
func (p PageRects) HasDoc() bool {
	return p.DocID != ""
}

// Bounds returns the union of the entry's corner-pair rects. Rects with no
// area are ignored. The second return value is false when none remain.
func (p PageRects) Bounds() (BBox, bool) {
	var (
		out   BBox
		found bool
	)
	for _, r := range p.Rects {
		b, ok := r.BBox()
		if !ok || b.IsEmpty() {
			continue
		}
		if !found {
			out = b
			found = true
			continue
		}
		out = out.Union(b)
	}
	return out, found
}

// Contains reports whether pt falls inside one of the entry's corner-pair rects.
func (p PageRects) Contains(pt Point) bool {
	for _, r := range p.Rects {
		if b, ok := r.BBox(); ok && b.Contains(pt) {
			return true
		}
	}
	return false
}

// Source is one entry of the viewer's sources list: a main page with its
// rects, plus the further pages ("spreads") the same source runs onto.
type Source struct {
	Page    int         `json:"page" yaml:"page"`
	DocID   string      `json:"docId,omitempty" yaml:"docId,omitempty"`
	Rects   []Rect      `json:"rects" yaml:"rects"`
	Spreads []PageRects `json:"spreads" yaml:"spreads"`
}

// NewSource starts a source from its main page entry. Rects are copied.
func NewSource(main PageRects) Source {
	return Source{
		Page:    main.Page,
		DocID:   main.DocID,
		Rects:   CloneRects(main.Rects),
		Spreads: make([]PageRects, 0),
	}
}

// AddSpread attaches a further page to the source.
func (s *Source) AddSpread(p PageRects) {
	s.Spreads = append(s.Spreads, p.Clone())
}

// Merge folds other into s: its rects are appended after the existing rects
// and its spreads after the existing spreads.
func (s *Source) Merge(other Source) {
	s.Rects = append(s.Rects, CloneRects(other.Rects)...)
	for _, sp := range other.Spreads {
		s.Spreads = append(s.Spreads, sp.Clone())
	}
}

// Main returns the main page as a PageRects entry.
func (s Source) Main() PageRects {
	return PageRects{Page: s.Page, DocID: s.DocID, Rects: s.Rects}
}

// PageCount returns the number of pages the source touches, main page included.
func (s Source) PageCount() int {
	return 1 + len(s.Spreads)
}

// Bounds returns the union of the main page's corner-pair rects.
// The second return value is false when the main page has no such rect.
func (s Source) Bounds() (BBox, bool) {
	return s.Main().Bounds()
}

// Contains reports whether p falls inside a rect of the source on page,
// which may be the main page or any spread.
func (s Source) Contains(page int, p Point) bool {
	if s.Page == page && s.Main().Contains(p) {
		return true
	}
	for _, sp := range s.Spreads {
		if sp.Page == page && sp.Contains(p) {
			return true
		}
	}
	return false
}
