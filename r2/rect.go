// Copyright 2024 The sphercell Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package r2 provides two-dimensional points and axis-aligned
// rectangles in the plane.
package r2

import (
	"github.com/gogama/sphercell/r1"
)

// A Point is a point in the plane.
type Point struct {
	X, Y float64
}

// Add returns the sum of p and op.
func (p Point) Add(op Point) Point {
	return Point{X: p.X + op.X, Y: p.Y + op.Y}
}

// Sub returns the difference of p and op.
func (p Point) Sub(op Point) Point {
	return Point{X: p.X - op.X, Y: p.Y - op.Y}
}

// Mul returns the point scaled by m.
func (p Point) Mul(m float64) Point {
	return Point{X: m * p.X, Y: m * p.Y}
}

// Dot returns the dot product of p and op.
func (p Point) Dot(op Point) float64 {
	return p.X*op.X + p.Y*op.Y
}

// A Rect is an axis-aligned rectangle in the plane, the product of an
// interval along each axis. A Rect is empty when either interval is.
type Rect struct {
	X, Y r1.Interval
}

// EmptyRect returns the canonical empty rectangle.
func EmptyRect() Rect {
	return Rect{X: r1.EmptyInterval(), Y: r1.EmptyInterval()}
}

// RectFromPoints returns the minimal rectangle containing the given
// points.
func RectFromPoints(pts ...Point) Rect {
	r := EmptyRect()
	for _, p := range pts {
		r.X = r.X.AddPoint(p.X)
		r.Y = r.Y.AddPoint(p.Y)
	}
	return r
}

// IsEmpty reports whether the rectangle contains no points.
func (r Rect) IsEmpty() bool {
	return r.X.IsEmpty() || r.Y.IsEmpty()
}

// Center returns the center of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X.Center(), Y: r.Y.Center()}
}

// VertexIJ returns the vertex selected by i along the X axis and j
// along the Y axis, where 0 selects the low endpoint and any other
// value the high endpoint.
func (r Rect) VertexIJ(i, j int) Point {
	x := r.X.Lo
	if i != 0 {
		x = r.X.Hi
	}
	y := r.Y.Lo
	if j != 0 {
		y = r.Y.Hi
	}
	return Point{X: x, Y: y}
}

// ContainsPoint reports whether the rectangle contains p.
func (r Rect) ContainsPoint(p Point) bool {
	return r.X.Contains(p.X) && r.Y.Contains(p.Y)
}

// Intersects reports whether the rectangle shares at least one point
// with or.
func (r Rect) Intersects(or Rect) bool {
	return r.X.Intersects(or.X) && r.Y.Intersects(or.Y)
}
