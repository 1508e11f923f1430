package model

import "math"

// Point represents a 2D point
type Point struct {
	X, Y float64
}

// BBox represents a bounding box (rectangle) in page coordinates
type BBox struct {
	X      float64 // Left
	Y      float64 // Top edge origin as supplied by the annotation API
	Width  float64
	Height float64
}

// NewBBoxFromPoints creates a bounding box from two opposite corners
func NewBBoxFromPoints(p1, p2 Point) BBox {
	x := math.Min(p1.X, p2.X)
	y := math.Min(p1.Y, p2.Y)
	width := math.Abs(p2.X - p1.X)
	height := math.Abs(p2.Y - p1.Y)
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge X coordinate
func (b BBox) Left() float64 {
	return b.X
}

// Right returns the right edge X coordinate
func (b BBox) Right() float64 {
	return b.X + b.Width
}

// MinY returns the smaller Y edge
func (b BBox) MinY() float64 {
	return b.Y
}

// MaxY returns the larger Y edge
func (b BBox) MaxY() float64 {
	return b.Y + b.Height
}

// Contains reports whether p lies inside the box, edges included
func (b BBox) Contains(p Point) bool {
	return p.X >= b.Left() && p.X <= b.Right() &&
		p.Y >= b.MinY() && p.Y <= b.MaxY()
}

// Union returns the smallest box covering both boxes
func (b BBox) Union(other BBox) BBox {
	x := math.Min(b.Left(), other.Left())
	y := math.Min(b.MinY(), other.MinY())
	right := math.Max(b.Right(), other.Right())
	bottom := math.Max(b.MaxY(), other.MaxY())

	return BBox{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: bottom - y,
	}
}

// IsEmpty reports whether the box has no area
func (b BBox) IsEmpty() bool {
	return b.Width <= 0 || b.Height <= 0
}
