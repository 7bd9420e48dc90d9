// Copyright 2024 The sphercell Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package r1 provides closed intervals on the real line.
package r1

import (
	"math"
)

// An Interval is a closed interval [Lo, Hi] on the real line. The
// interval is empty when Lo > Hi. The canonical empty interval is
// (1, 0), as produced by EmptyInterval, but any interval with Lo > Hi
// behaves as empty.
type Interval struct {
	Lo, Hi float64
}

// EmptyInterval returns the canonical empty interval.
func EmptyInterval() Interval {
	return Interval{Lo: 1, Hi: 0}
}

// IntervalFromPoint returns the degenerate interval containing the
// single point p.
func IntervalFromPoint(p float64) Interval {
	return Interval{Lo: p, Hi: p}
}

// IntervalFromPointPair returns the minimal interval containing the two
// points a and b, in either order.
func IntervalFromPointPair(a, b float64) Interval {
	if a <= b {
		return Interval{Lo: a, Hi: b}
	}
	return Interval{Lo: b, Hi: a}
}

// IsEmpty reports whether the interval contains no points.
func (i Interval) IsEmpty() bool {
	return i.Lo > i.Hi
}

// Center returns the midpoint of the interval. The result is undefined
// for empty intervals.
func (i Interval) Center() float64 {
	return 0.5 * (i.Lo + i.Hi)
}

// Length returns the length of the interval. Empty intervals have
// negative length.
func (i Interval) Length() float64 {
	return i.Hi - i.Lo
}

// Contains reports whether the interval contains p.
func (i Interval) Contains(p float64) bool {
	return i.Lo <= p && p <= i.Hi
}

// InteriorContains reports whether the interior of the interval
// contains p.
func (i Interval) InteriorContains(p float64) bool {
	return i.Lo < p && p < i.Hi
}

// ContainsInterval reports whether the interval contains oi.
func (i Interval) ContainsInterval(oi Interval) bool {
	if oi.IsEmpty() {
		return true
	}
	return i.Lo <= oi.Lo && oi.Hi <= i.Hi
}

// InteriorContainsInterval reports whether the interior of the interval
// contains every point of oi, including its boundary.
func (i Interval) InteriorContainsInterval(oi Interval) bool {
	if oi.IsEmpty() {
		return true
	}
	return i.Lo < oi.Lo && oi.Hi < i.Hi
}

// Intersects reports whether the interval shares at least one point
// with oi.
func (i Interval) Intersects(oi Interval) bool {
	if i.Lo <= oi.Lo {
		return oi.Lo <= i.Hi && oi.Lo <= oi.Hi
	}
	return i.Lo <= oi.Hi && i.Lo <= i.Hi
}

// InteriorIntersects reports whether the interior of the interval
// shares at least one point with oi, including the latter's boundary.
func (i Interval) InteriorIntersects(oi Interval) bool {
	return oi.Lo < i.Hi && i.Lo < oi.Hi && i.Lo < i.Hi && oi.Lo <= oi.Hi
}

// Union returns the smallest interval containing both i and oi.
func (i Interval) Union(oi Interval) Interval {
	if i.IsEmpty() {
		return oi
	}
	if oi.IsEmpty() {
		return i
	}
	return Interval{Lo: math.Min(i.Lo, oi.Lo), Hi: math.Max(i.Hi, oi.Hi)}
}

// Intersection returns the intersection of i with oi. Empty intervals
// do not need to be special-cased: the result of intersecting with one
// has Lo > Hi and is itself empty.
func (i Interval) Intersection(oi Interval) Interval {
	return Interval{Lo: math.Max(i.Lo, oi.Lo), Hi: math.Min(i.Hi, oi.Hi)}
}

// AddPoint returns the interval expanded so that it contains p.
func (i Interval) AddPoint(p float64) Interval {
	if i.IsEmpty() {
		return Interval{Lo: p, Hi: p}
	}
	if p < i.Lo {
		return Interval{Lo: p, Hi: i.Hi}
	}
	if p > i.Hi {
		return Interval{Lo: i.Lo, Hi: p}
	}
	return i
}

// Expanded returns an interval that has been expanded on each side by
// margin. A negative margin shrinks the interval. Empty intervals are
// unchanged, and any interval shrunk past its own length becomes empty.
func (i Interval) Expanded(margin float64) Interval {
	if i.IsEmpty() {
		return i
	}
	return Interval{Lo: i.Lo - margin, Hi: i.Hi + margin}
}

// ClampPoint returns the closest point in the interval to p. The
// interval must be non-empty.
func (i Interval) ClampPoint(p float64) float64 {
	return math.Max(i.Lo, math.Min(i.Hi, p))
}

// ApproxEqual reports whether the interval can be transformed into oi
// by moving each endpoint by at most epsilon.
func (i Interval) ApproxEqual(oi Interval) bool {
	const epsilon = 1e-15
	if i.IsEmpty() {
		return oi.Length() <= 2*epsilon
	}
	if oi.IsEmpty() {
		return i.Length() <= 2*epsilon
	}
	return math.Abs(oi.Lo-i.Lo) <= epsilon && math.Abs(oi.Hi-i.Hi) <= epsilon
}
