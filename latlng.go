// Copyright 2024 The sphercell Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package sphercell

import (
	"math"

	"github.com/gogama/sphercell/r3"
	"github.com/gogama/sphercell/s1"
)

// A LatLng is a geographic coordinate: a latitude/longitude angle
// pair. A LatLng is valid when the latitude magnitude is at most π/2
// and the longitude magnitude is at most π; use Normalized to bring an
// arbitrary pair into range.
type LatLng struct {
	Lat, Lng s1.Angle
}

// LatLngFromDegrees constructs a LatLng from degree values.
func LatLngFromDegrees(lat, lng float64) LatLng {
	return LatLng{Lat: s1.Angle(lat) * s1.Degree, Lng: s1.Angle(lng) * s1.Degree}
}

// IsValid reports whether the latitude and longitude are in range.
func (ll LatLng) IsValid() bool {
	return math.Abs(ll.Lat.Radians()) <= math.Pi/2 && math.Abs(ll.Lng.Radians()) <= math.Pi
}

// Normalized returns the coordinate with latitude clamped to
// [-π/2, π/2] and longitude reduced to [-π, π].
func (ll LatLng) Normalized() LatLng {
	lat := ll.Lat
	if lat > math.Pi/2 {
		lat = math.Pi / 2
	} else if lat < -math.Pi/2 {
		lat = -math.Pi / 2
	}
	lng := s1.Angle(math.Remainder(ll.Lng.Radians(), 2*math.Pi))
	return LatLng{Lat: lat, Lng: lng}
}

// PointFromLatLng converts a geographic coordinate to a unit vector.
// The coordinate does not need to be normalized.
func PointFromLatLng(ll LatLng) Point {
	phi := ll.Lat.Radians()
	theta := ll.Lng.Radians()
	cosphi := math.Cos(phi)
	return Point{r3.Vector{
		X: math.Cos(theta) * cosphi,
		Y: math.Sin(theta) * cosphi,
		Z: math.Sin(phi),
	}}
}

// LatLngFromPoint converts a direction vector to the geographic
// coordinate of the point where its ray crosses the sphere. The input
// need not be unit length.
func LatLngFromPoint(p Point) LatLng {
	return LatLng{Lat: latitude(p), Lng: longitude(p)}
}

func latitude(p Point) s1.Angle {
	return s1.Angle(math.Atan2(p.Z, math.Sqrt(p.X*p.X+p.Y*p.Y)))
}

func longitude(p Point) s1.Angle {
	return s1.Angle(math.Atan2(p.Y, p.X))
}
