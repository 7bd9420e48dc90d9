// Copyright 2024 The sphercell Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package sphercell

import (
	"math"

	"github.com/gogama/sphercell/r1"
	"github.com/gogama/sphercell/r3"
	"github.com/gogama/sphercell/s1"
)

// validRectLatRange is the latitude interval of the full sphere.
var validRectLatRange = r1.Interval{Lo: -math.Pi / 2, Hi: math.Pi / 2}

// A Rect is a latitude/longitude rectangle: the product of a closed
// latitude interval and a longitude arc which may be inverted, i.e.
// cross the ±π antimeridian. A Rect is a region of the sphere, not of
// the plane: its north and south edges follow parallels, its east and
// west edges follow meridians.
//
// A Rect is valid when the latitude endpoints lie in [-π/2, π/2], the
// longitude interval is valid, and the two intervals agree on
// emptiness.
type Rect struct {
	Lat r1.Interval
	Lng s1.Interval
}

// EmptyRect returns the canonical empty rectangle.
func EmptyRect() Rect {
	return Rect{Lat: r1.EmptyInterval(), Lng: s1.EmptyInterval()}
}

// FullRect returns the rectangle covering the whole sphere.
func FullRect() Rect {
	return Rect{Lat: validRectLatRange, Lng: s1.FullInterval()}
}

// RectFromLatLng returns the degenerate rectangle containing the
// single coordinate ll, which must be valid.
func RectFromLatLng(ll LatLng) Rect {
	return Rect{
		Lat: r1.IntervalFromPoint(ll.Lat.Radians()),
		Lng: s1.IntervalFromPointPair(ll.Lng.Radians(), ll.Lng.Radians()),
	}
}

// RectFromPointPair returns the minimal rectangle containing the two
// coordinates, which must be valid. The longitude interval takes the
// shorter way around the circle.
func RectFromPointPair(a, b LatLng) Rect {
	return Rect{
		Lat: r1.IntervalFromPointPair(a.Lat.Radians(), b.Lat.Radians()),
		Lng: s1.IntervalFromPointPair(a.Lng.Radians(), b.Lng.Radians()),
	}
}

// RectFromEdge returns a rectangle containing the geodesic segment
// ab. Unlike RectFromPointPair it accounts for the segment's interior:
// an arc between two points at the same latitude bulges toward the
// nearer pole, so the latitude extreme may be attained between the
// endpoints. Both inputs must be unit length.
func RectFromEdge(a, b Point) Rect {
	r := RectFromPointPair(LatLngFromPoint(a), LatLngFromPoint(b))

	// dir is a vector in the plane of ab that points along the
	// equator; its dot products with a and b change sign exactly when
	// the latitude extremum lies between them.
	ab := RobustCrossProd(a, b)
	dir := ab.Cross(r3.Vector{Z: 1})
	da := dir.Dot(a.Vector)
	db := dir.Dot(b.Vector)
	if da*db >= 0 {
		// Both latitude extremes are attained at the endpoints.
		return r
	}

	absLat := math.Acos(math.Abs(ab.Z / ab.Norm()))
	if da < 0 {
		return Rect{Lat: r1.Interval{Lo: r.Lat.Lo, Hi: absLat}, Lng: r.Lng}
	}
	return Rect{Lat: r1.Interval{Lo: -absLat, Hi: r.Lat.Hi}, Lng: r.Lng}
}

// IsValid reports whether the rectangle is valid as defined on Rect.
func (r Rect) IsValid() bool {
	return math.Abs(r.Lat.Lo) <= math.Pi/2 && math.Abs(r.Lat.Hi) <= math.Pi/2 &&
		r.Lng.IsValid() && r.Lat.IsEmpty() == r.Lng.IsEmpty()
}

// IsEmpty reports whether the rectangle contains no points.
func (r Rect) IsEmpty() bool {
	return r.Lat.IsEmpty()
}

// IsFull reports whether the rectangle covers the whole sphere.
func (r Rect) IsFull() bool {
	return r.Lat == validRectLatRange && r.Lng.IsFull()
}

// Lo returns the southwest corner of the rectangle.
func (r Rect) Lo() LatLng {
	return LatLng{Lat: s1.Angle(r.Lat.Lo), Lng: s1.Angle(r.Lng.Lo)}
}

// Hi returns the northeast corner of the rectangle.
func (r Rect) Hi() LatLng {
	return LatLng{Lat: s1.Angle(r.Lat.Hi), Lng: s1.Angle(r.Lng.Hi)}
}

// Center returns the center of the rectangle.
func (r Rect) Center() LatLng {
	return LatLng{Lat: s1.Angle(r.Lat.Center()), Lng: s1.Angle(r.Lng.Center())}
}

// Size returns the latitude and longitude extents of the rectangle.
func (r Rect) Size() LatLng {
	return LatLng{Lat: s1.Angle(r.Lat.Length()), Lng: s1.Angle(r.Lng.Length())}
}

// Vertex returns the k-th corner of the rectangle counterclockwise
// from the southwest corner, for k in 0..3.
func (r Rect) Vertex(k int) LatLng {
	switch k {
	case 0:
		return LatLng{Lat: s1.Angle(r.Lat.Lo), Lng: s1.Angle(r.Lng.Lo)}
	case 1:
		return LatLng{Lat: s1.Angle(r.Lat.Lo), Lng: s1.Angle(r.Lng.Hi)}
	case 2:
		return LatLng{Lat: s1.Angle(r.Lat.Hi), Lng: s1.Angle(r.Lng.Hi)}
	default:
		return LatLng{Lat: s1.Angle(r.Lat.Hi), Lng: s1.Angle(r.Lng.Lo)}
	}
}

// Area returns the surface area of the rectangle on the unit sphere.
func (r Rect) Area() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.Lng.Length() * (math.Sin(r.Lat.Hi) - math.Sin(r.Lat.Lo))
}

// ContainsLatLng reports whether the rectangle contains the
// coordinate ll, which must be valid.
func (r Rect) ContainsLatLng(ll LatLng) bool {
	return r.Lat.Contains(ll.Lat.Radians()) && r.Lng.Contains(ll.Lng.Radians())
}

// InteriorContainsLatLng reports whether the interior of the
// rectangle contains ll, which must be valid.
func (r Rect) InteriorContainsLatLng(ll LatLng) bool {
	return r.Lat.InteriorContains(ll.Lat.Radians()) && r.Lng.InteriorContains(ll.Lng.Radians())
}

// ContainsPoint reports whether the rectangle contains the direction
// p.
func (r Rect) ContainsPoint(p Point) bool {
	return r.ContainsLatLng(LatLngFromPoint(p))
}

// Contains reports whether the rectangle contains other.
func (r Rect) Contains(other Rect) bool {
	return r.Lat.ContainsInterval(other.Lat) && r.Lng.ContainsInterval(other.Lng)
}

// InteriorContains reports whether the interior of the rectangle
// contains all of other, boundary included.
func (r Rect) InteriorContains(other Rect) bool {
	return r.Lat.InteriorContainsInterval(other.Lat) &&
		r.Lng.InteriorContainsInterval(other.Lng)
}

// Intersects reports whether the rectangle shares at least one point
// with other.
func (r Rect) Intersects(other Rect) bool {
	return r.Lat.Intersects(other.Lat) && r.Lng.Intersects(other.Lng)
}

// InteriorIntersects reports whether the interior of the rectangle
// shares at least one point with other.
func (r Rect) InteriorIntersects(other Rect) bool {
	return r.Lat.InteriorIntersects(other.Lat) && r.Lng.InteriorIntersects(other.Lng)
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{Lat: r.Lat.Union(other.Lat), Lng: r.Lng.Union(other.Lng)}
}

// Intersection returns the smallest rectangle containing the
// intersection of r and other. The intersection of two rectangles is
// generally not a rectangle, so the result may contain points outside
// either input.
func (r Rect) Intersection(other Rect) Rect {
	lat := r.Lat.Intersection(other.Lat)
	lng := r.Lng.Intersection(other.Lng)
	if lat.IsEmpty() || lng.IsEmpty() {
		return EmptyRect()
	}
	return Rect{Lat: lat, Lng: lng}
}

// AddPoint returns the rectangle expanded by the minimum amount
// necessary to contain ll, which must be valid.
func (r Rect) AddPoint(ll LatLng) Rect {
	return Rect{
		Lat: r.Lat.AddPoint(ll.Lat.Radians()),
		Lng: r.Lng.AddPoint(ll.Lng.Radians()),
	}
}

// Expanded returns the rectangle widened on each side by margin: the
// latitude interval on the north and south by margin.Lat, clamped to
// the valid range, and the longitude interval on the east and west by
// margin.Lng, wrapping at the antimeridian. Negative margins shrink;
// a rectangle shrunk past its own size becomes empty.
func (r Rect) Expanded(margin LatLng) Rect {
	lat := r.Lat.Expanded(margin.Lat.Radians())
	lng := r.Lng.Expanded(margin.Lng.Radians())
	if lat.IsEmpty() || lng.IsEmpty() {
		return EmptyRect()
	}
	return Rect{Lat: lat.Intersection(validRectLatRange), Lng: lng}
}

// ApproxEqual reports whether the rectangle's intervals are within a
// small tolerance of other's.
func (r Rect) ApproxEqual(other Rect) bool {
	return r.Lat.ApproxEqual(other.Lat) && r.Lng.ApproxEqual(other.Lng)
}

// DistanceToLatLng returns the minimum spherical distance from the
// coordinate ll, which must be valid and normalized, to the
// rectangle, which must be non-empty.
func (r Rect) DistanceToLatLng(ll LatLng) s1.Angle {
	if r.IsEmpty() {
		textPanic("distance from empty rectangle")
	}
	if !ll.IsValid() {
		textPanic("invalid coordinate")
	}

	// When the point's longitude falls inside the rectangle's
	// longitude span, the nearest point lies due north or south and
	// the distance is a pure latitude offset.
	if r.Lng.Contains(ll.Lng.Radians()) {
		return s1.Angle(math.Max(0, math.Max(
			ll.Lat.Radians()-r.Lat.Hi,
			r.Lat.Lo-ll.Lat.Radians(),
		)))
	}

	// Otherwise the nearest point is on the meridian edge closer in
	// longitude. The interval from Lng.Hi to the midpoint of the
	// complement splits the outside region into the half nearer each
	// edge.
	interval := s1.IntervalFromEndpoints(r.Lng.Hi, r.Lng.ComplementCenter())
	rLng := r.Lng.Lo
	if interval.Contains(ll.Lng.Radians()) {
		rLng = r.Lng.Hi
	}

	lo := PointFromLatLng(LatLng{Lat: s1.Angle(r.Lat.Lo), Lng: s1.Angle(rLng)})
	hi := PointFromLatLng(LatLng{Lat: s1.Angle(r.Lat.Hi), Lng: s1.Angle(rLng)})
	loCrossHi := PointFromLatLng(LatLng{Lng: s1.Angle(rLng - math.Pi/2)})
	return distanceToEdgeWithNormal(PointFromLatLng(ll), lo, hi, loCrossHi)
}

// Distance returns the minimum spherical distance between the two
// rectangles. Both must be non-empty.
func (r Rect) Distance(other Rect) s1.Angle {
	if r.IsEmpty() || other.IsEmpty() {
		textPanic("distance between empty rectangles")
	}

	a, b := r, other

	// With overlapping longitude spans the distance reduces to the
	// latitude gap, possibly zero.
	if a.Lng.Intersects(b.Lng) {
		if a.Lat.Intersects(b.Lat) {
			return 0
		}
		var lo, hi float64
		if a.Lat.Lo > b.Lat.Hi {
			lo, hi = b.Lat.Hi, a.Lat.Lo
		} else {
			lo, hi = a.Lat.Hi, b.Lat.Lo
		}
		return s1.Angle(hi - lo)
	}

	// The longitude spans are disjoint, so the closest points lie on
	// the pair of meridian edges nearest in longitude. Spanning
	// counterclockwise from a.Lng.Lo across a, the gap, and b reaches
	// b.Lng.Hi, so comparing the two full spans compares the two gaps.
	var aLng, bLng float64
	loHi := positiveLngDistance(a.Lng.Lo, b.Lng.Hi)
	hiLo := positiveLngDistance(b.Lng.Lo, a.Lng.Hi)
	if loHi < hiLo {
		// The gap east of a is smaller.
		aLng, bLng = a.Lng.Hi, b.Lng.Lo
	} else {
		aLng, bLng = a.Lng.Lo, b.Lng.Hi
	}

	// The shortest distance between the two meridian segments always
	// involves at least one segment endpoint, so it suffices to check
	// each endpoint against the opposite segment.
	aLo := PointFromLatLng(LatLng{Lat: s1.Angle(a.Lat.Lo), Lng: s1.Angle(aLng)})
	aHi := PointFromLatLng(LatLng{Lat: s1.Angle(a.Lat.Hi), Lng: s1.Angle(aLng)})
	aLoCrossHi := PointFromLatLng(LatLng{Lng: s1.Angle(aLng - math.Pi/2)})
	bLo := PointFromLatLng(LatLng{Lat: s1.Angle(b.Lat.Lo), Lng: s1.Angle(bLng)})
	bHi := PointFromLatLng(LatLng{Lat: s1.Angle(b.Lat.Hi), Lng: s1.Angle(bLng)})
	bLoCrossHi := PointFromLatLng(LatLng{Lng: s1.Angle(bLng - math.Pi/2)})

	d := distanceToEdgeWithNormal(aLo, bLo, bHi, bLoCrossHi)
	if e := distanceToEdgeWithNormal(aHi, bLo, bHi, bLoCrossHi); e < d {
		d = e
	}
	if e := distanceToEdgeWithNormal(bLo, aLo, aHi, aLoCrossHi); e < d {
		d = e
	}
	if e := distanceToEdgeWithNormal(bHi, aLo, aHi, aLoCrossHi); e < d {
		d = e
	}
	return d
}

// positiveLngDistance is the longitude traveled counterclockwise from
// a to b, in [0, 2π).
func positiveLngDistance(a, b float64) float64 {
	d := b - a
	if d >= 0 {
		return d
	}
	return (b + math.Pi) - (a - math.Pi)
}
