// Package model provides the data structures shared by every stage of
// source info conversion.
//
// # Sources
//
// The annotation API reports, for each piece of generated content, which
// rectangular regions of which document pages back it. After conversion the
// viewer consumes a flat list of [Source] values:
//
//	src := model.NewSource(model.PageRects{Page: 0, DocID: "doc1", Rects: rects})
//	src.AddSpread(model.PageRects{Page: 1, DocID: "doc1", Rects: more})
//
// A [Source] holds its main page at the top level and every further page the
// same content spans in Spreads. [PageRects] is the per-page unit both
// levels are built from.
//
// # Copy semantics
//
// [Rect] values are plain float slices. Every constructor and mutator in this
// package copies the rects it is handed, so a Source never aliases the input
// it was built from.
//
// # Geometry
//
//   - [BBox] - bounding box with union and intersection checks
//   - [Point] - 2D point with distance calculation
//
// [Rect.BBox] and [Source.Bounds] lift corner-pair rects into boxes so a
// viewer can scroll a source into view.
package model
