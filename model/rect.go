package model

// Rect is one highlighted region as delivered by the annotation API: an
// ordered list of coordinates. Four-number rects are corner pairs
// [x1, y1, x2, y2]; other lengths are carried through untouched.
type Rect []float64

// Clone returns an independent copy of the rect.
func (r Rect) Clone() Rect {
	if r == nil {
		return nil
	}
	out := make(Rect, len(r))
	copy(out, r)
	return out
}

// BBox interprets a corner-pair rect as a bounding box. The second return
// value is false when the rect does not hold exactly four coordinates.
func (r Rect) BBox() (BBox, bool) {
	if len(r) != 4 {
		return BBox{}, false
	}
	return NewBBoxFromPoints(Point{X: r[0], Y: r[1]}, Point{X: r[2], Y: r[3]}), true
}

// CloneRects copies a rect list, cloning every rect. The result is never nil.
func CloneRects(rects []Rect) []Rect {
	out := make([]Rect, len(rects))
	for i, r := range rects {
		out[i] = r.Clone()
	}
	return out
}
