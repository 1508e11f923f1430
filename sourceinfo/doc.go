// Package sourceinfo reads the raw source info records returned by the
// annotation API and expands them into per-page entries.
//
// A record comes in one of two shapes:
//
//	{"upload_id": "doc1", "rects": {"0": [[1, 2]], "1": [[3, 4]]}}
//	{"0": [[1, 2]], "1": [[3, 4]]}
//
// [Parse] turns them into [Wrapped] and [Bare] values respectively. Callers
// building records in Go construct those types directly:
//
//	item := sourceinfo.Wrapped{
//	    ID:    "doc1",
//	    Rects: sourceinfo.PageMap{}.With("0", model.Rect{1, 2}),
//	}
//	entries, err := sourceinfo.Normalize(item)
//
// Page keys keep the order they were given in; they are never sorted.
package sourceinfo
