package sourceinfo

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/tsawler/pagerect/model"
)

// Keys of the wrapped record shape.
const (
	uploadIDKey = "upload_id"
	rectsKey    = "rects"
)

var (
	// ErrInvalidJSON is returned when the input is not well-formed JSON of the
	// expected top-level kind.
	ErrInvalidJSON = errors.New("invalid source info JSON")

	// ErrInvalidPageKey is returned when a rects mapping key is not a page number.
	ErrInvalidPageKey = errors.New("invalid page key")

	// ErrInvalidRects is returned when a page key does not hold a list of
	// numeric rects.
	ErrInvalidRects = errors.New("invalid rects")
)

// Parse decodes a JSON array of source info records. Object key order is
// kept, so pages come out of Normalize in the order the API sent them.
func Parse(data []byte) ([]Item, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}

	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("%w: expected array, got %s", ErrInvalidJSON, root.Type)
	}

	var (
		items []Item
		err   error
	)
	root.ForEach(func(_, value gjson.Result) bool {
		var item Item
		item, err = parseItem(value)
		if err != nil {
			err = fmt.Errorf("item %d: %w", len(items), err)
			return false
		}
		items = append(items, item)
		return true
	})
	if err != nil {
		return nil, err
	}

	if items == nil {
		items = make([]Item, 0)
	}
	return items, nil
}

// ParseItem decodes a single source info record.
func ParseItem(data []byte) (Item, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	return parseItem(gjson.ParseBytes(data))
}

func parseItem(value gjson.Result) (Item, error) {
	if !value.IsObject() {
		return nil, fmt.Errorf("%w: expected object, got %s", ErrInvalidJSON, value.Type)
	}

	var (
		uploadID gjson.Result
		rects    gjson.Result
	)
	value.ForEach(func(key, v gjson.Result) bool {
		switch key.String() {
		case uploadIDKey:
			uploadID = v
		case rectsKey:
			rects = v
		}
		return true
	})

	// A record naming either wrapped key is the wrapped shape.
	if uploadID.Exists() || rects.Exists() {
		if uploadID.Exists() && uploadID.Type != gjson.String && uploadID.Type != gjson.Null {
			return nil, fmt.Errorf("%w: %s must be a string, got %s", ErrInvalidJSON, uploadIDKey, uploadID.Type)
		}
		pages, err := parsePageMap(rects)
		if err != nil {
			return nil, err
		}
		return Wrapped{ID: uploadID.String(), Rects: pages}, nil
	}

	pages, err := parsePageMap(value)
	if err != nil {
		return nil, err
	}
	return Bare{Rects: pages}, nil
}

func parsePageMap(value gjson.Result) (PageMap, error) {
	pages := make(PageMap, 0)
	if !value.Exists() || value.Type == gjson.Null {
		return pages, nil
	}
	if !value.IsObject() {
		return nil, fmt.Errorf("%w: %s must be an object, got %s", ErrInvalidRects, rectsKey, value.Type)
	}

	var err error
	value.ForEach(func(key, v gjson.Result) bool {
		var rects []model.Rect
		rects, err = parseRects(v)
		if err != nil {
			err = fmt.Errorf("page %q: %w", key.String(), err)
			return false
		}
		pages = pages.With(key.String(), rects...)
		return true
	})
	if err != nil {
		return nil, err
	}
	return pages, nil
}

func parseRects(value gjson.Result) ([]model.Rect, error) {
	if !value.IsArray() {
		return nil, fmt.Errorf("%w: expected array, got %s", ErrInvalidRects, value.Type)
	}

	rects := make([]model.Rect, 0)
	var err error
	value.ForEach(func(_, r gjson.Result) bool {
		if !r.IsArray() {
			err = fmt.Errorf("%w: rect must be an array, got %s", ErrInvalidRects, r.Type)
			return false
		}
		rect := make(model.Rect, 0, 4)
		r.ForEach(func(_, n gjson.Result) bool {
			if n.Type != gjson.Number {
				err = fmt.Errorf("%w: coordinate must be a number, got %s", ErrInvalidRects, n.Type)
				return false
			}
			rect = append(rect, n.Float())
			return true
		})
		if err != nil {
			return false
		}
		rects = append(rects, rect)
		return true
	})
	if err != nil {
		return nil, err
	}
	return rects, nil
}
