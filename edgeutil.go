// Copyright 2024 The sphercell Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package sphercell

import (
	"math"

	"github.com/gogama/sphercell/s1"
)

// RobustCrossProd returns a vector orthogonal to both a and b. For
// nearly (anti)parallel unit vectors the plain cross product underflows
// toward zero and its direction becomes noise; (b+a)×(b−a), which
// equals 2(a×b), stays orthogonal to both inputs to full precision
// because the summands are computed exactly. When a == ±b exactly, an
// arbitrary deterministic orthogonal vector is returned rather than an
// error.
func RobustCrossProd(a, b Point) Point {
	x := b.Add(a.Vector).Cross(b.Sub(a.Vector))
	if x.X != 0 || x.Y != 0 || x.Z != 0 {
		return Point{x}
	}
	return Point{a.Ortho()}
}

// SimpleCCW reports whether the points a, b, c are counterclockwise as
// seen from the origin. The test is (c×a)·b > 0; this rotation of the
// arguments makes SimpleCCW(a,b,c) and SimpleCCW(c,b,a) numerically
// exclusive, though for nearly collinear inputs both may be false.
func SimpleCCW(a, b, c Point) bool {
	return c.Cross(a.Vector).Dot(b.Vector) > 0
}

// SimpleCrossing reports whether the geodesic arc ab crosses the
// geodesic arc cd at a point interior to both. Arcs that merely share
// an endpoint or touch do not cross.
func SimpleCrossing(a, b, c, d Point) bool {
	// Equivalent to requiring the four triangle orientations acb, cbd,
	// bda and dac to agree in sign.
	ab := a.Cross(b.Vector)
	acb := -ab.Dot(c.Vector)
	bda := ab.Dot(d.Vector)
	cd := c.Cross(d.Vector)
	cbd := -cd.Dot(b.Vector)
	dac := cd.Dot(a.Vector)
	return acb*cbd > 0 && cbd*bda > 0 && bda*dac > 0
}

// DistanceToEdge returns the minimum spherical arc distance from the
// unit vector x to the geodesic segment ab. All three points must be
// unit length.
func DistanceToEdge(x, a, b Point) s1.Angle {
	return distanceToEdgeWithNormal(x, a, b, RobustCrossProd(a, b))
}

// distanceToEdgeWithNormal is DistanceToEdge with the segment's plane
// normal precomputed, for callers that measure many points against the
// same segment.
func distanceToEdgeWithNormal(x, a, b, aCrossB Point) s1.Angle {
	// If x lies in the spherical wedge swept from a to b, the closest
	// point is interior to the segment and the distance is the
	// distance from x to the segment's great circle.
	if SimpleCCW(aCrossB, a, x) && SimpleCCW(x, b, aCrossB) {
		sinDist := math.Abs(x.Dot(aCrossB.Vector)) / aCrossB.Norm()
		return s1.Angle(math.Asin(math.Min(1, sinDist)))
	}

	// Otherwise the closest point is one of the endpoints. The chord
	// length converted through 2·asin(d/2) remains accurate for small
	// distances, where acos of the dot product loses half the digits.
	xa2 := x.Sub(a.Vector).Norm2()
	xb2 := x.Sub(b.Vector).Norm2()
	dist2 := math.Min(xa2, xb2)
	return s1.Angle(2 * math.Asin(math.Min(1, 0.5*math.Sqrt(dist2))))
}
