package sourceinfo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tsawler/pagerect/model"
)

// Normalize expands one record into a PageRects entry per page key, in the
// record's key order. Every entry carries the record's upload id and a copy
// of the rects found under its key.
func Normalize(item Item) ([]model.PageRects, error) {
	pages := item.Pages()
	docID := item.UploadID()

	out := make([]model.PageRects, 0, len(pages))
	for _, entry := range pages {
		page, err := PageNumber(entry.Key)
		if err != nil {
			return nil, err
		}
		out = append(out, model.PageRects{
			Page:  page,
			DocID: docID,
			Rects: model.CloneRects(entry.Rects),
		})
	}
	return out, nil
}

// PageNumber converts a page key to its page number.
func PageNumber(key string) (int, error) {
	page, err := strconv.Atoi(strings.TrimSpace(key))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPageKey, key)
	}
	return page, nil
}
