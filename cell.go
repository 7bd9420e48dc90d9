// Copyright 2024 The sphercell Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package sphercell

import (
	"math"

	"github.com/gogama/sphercell/r1"
	"github.com/gogama/sphercell/r2"
	"github.com/gogama/sphercell/s1"
)

const (
	// maxError absorbs the roundoff of the asin/atan2 evaluations that
	// produce latitude and longitude bounds.
	maxError = 1.0 / (1 << 51)

	// MaxEdgeAspect is the maximum ratio of the longest to the
	// shortest edge of any cell.
	MaxEdgeAspect = 1.44261527445268292

	// MaxDiagAspect is the maximum ratio of the longest to the
	// shortest diagonal of any cell, √3.
	MaxDiagAspect = 1.7320508075688772
)

// poleMinLat is the latitude of the vertices of the two polar face
// cells: the boundary between the polar caps and the equatorial belt.
var poleMinLat = math.Asin(math.Sqrt(1./3)) - maxError

// A Cell is a materialized cell: the face, level, Hilbert curve
// orientation and cube-space bounds decoded from a CellID. Unlike the
// bare identifier it supports direct geometric queries.
type Cell struct {
	face, level, orientation int8
	id                       CellID
	uv                       r2.Rect
}

// CellFromCellID materializes the cell named by id.
func CellFromCellID(id CellID) Cell {
	f, i, j, o := id.faceIJOrientation()
	return Cell{
		face:        int8(f),
		level:       int8(id.Level()),
		orientation: int8(o),
		id:          id,
		uv:          ijLevelToBoundUV(i, j, id.Level()),
	}
}

// CellFromPoint materializes the leaf cell containing the direction p.
func CellFromPoint(p Point) Cell {
	return CellFromCellID(CellIDFromPoint(p))
}

// CellFromLatLng materializes the leaf cell containing the geographic
// coordinate ll.
func CellFromLatLng(ll LatLng) Cell {
	return CellFromCellID(CellIDFromLatLng(ll))
}

// ijLevelToBoundUV computes the cube-space bounds of the cell at the
// given level whose interior contains leaf coordinate (i, j).
func ijLevelToBoundUV(i, j, level int) r2.Rect {
	cellSize := sizeIJ(level)
	iLo := i & -cellSize
	jLo := j & -cellSize
	return r2.Rect{
		X: r1.Interval{
			Lo: STToUV(float64(iLo) / maxSize),
			Hi: STToUV(float64(iLo+cellSize) / maxSize),
		},
		Y: r1.Interval{
			Lo: STToUV(float64(jLo) / maxSize),
			Hi: STToUV(float64(jLo+cellSize) / maxSize),
		},
	}
}

// ID returns the cell's identifier.
func (c Cell) ID() CellID {
	return c.id
}

// Face returns the face the cell lies on.
func (c Cell) Face() int {
	return int(c.face)
}

// Level returns the cell's subdivision level.
func (c Cell) Level() int {
	return int(c.level)
}

// Orientation returns the 2-bit Hilbert curve orientation (swap and
// invert bits) at the cell.
func (c Cell) Orientation() int {
	return int(c.orientation)
}

// IsLeaf reports whether the cell is at MaxLevel.
func (c Cell) IsLeaf() bool {
	return c.level == maxLevel
}

// SizeIJ returns the cell's edge length in leaf cells.
func (c Cell) SizeIJ() int {
	return sizeIJ(int(c.level))
}

// BoundUV returns the cell's bounds in cube space.
func (c Cell) BoundUV() r2.Rect {
	return c.uv
}

// VertexRaw returns the k-th corner of the cell, for k in 0..3 in SW,
// SE, NE, NW order. The result is a point on the cube, not unit
// length; use Vertex for the spherical position.
func (c Cell) VertexRaw(k int) Point {
	u := c.uv.X.Lo
	if (k>>1)^(k&1) != 0 {
		u = c.uv.X.Hi
	}
	v := c.uv.Y.Lo
	if k>>1 != 0 {
		v = c.uv.Y.Hi
	}
	return Point{faceUVToXYZ(int(c.face), u, v)}
}

// Vertex returns the unit-length k-th corner of the cell.
func (c Cell) Vertex(k int) Point {
	return Point{c.VertexRaw(k).Normalize()}
}

// EdgeRaw returns the normal of the great circle through the k-th
// edge of the cell, for k in 0..3 in S, E, N, W order, oriented toward
// the cell interior. The result is not unit length.
func (c Cell) EdgeRaw(k int) Point {
	switch k {
	case 0:
		return Point{vNorm(int(c.face), c.uv.Y.Lo)}
	case 1:
		return Point{uNorm(int(c.face), c.uv.X.Hi)}
	case 2:
		return Point{vNorm(int(c.face), c.uv.Y.Hi).Mul(-1)}
	default:
		return Point{uNorm(int(c.face), c.uv.X.Lo).Mul(-1)}
	}
}

// Edge returns the unit-length edge normal EdgeRaw(k).
func (c Cell) Edge(k int) Point {
	return Point{c.EdgeRaw(k).Normalize()}
}

// CenterRaw returns the direction of the cell center, without
// normalization.
func (c Cell) CenterRaw() Point {
	return c.id.rawPoint()
}

// Center returns the unit-length center of the cell.
func (c Cell) Center() Point {
	return Point{c.CenterRaw().Normalize()}
}

// ContainsPoint reports whether the cell contains the direction p.
// Containment is tested in cube space, so points on shared cell
// boundaries are contained by both cells.
func (c Cell) ContainsPoint(p Point) bool {
	u, v, ok := faceXYZToUV(int(c.face), p.Vector)
	if !ok {
		return false
	}
	return c.uv.ContainsPoint(r2.Point{X: u, Y: v})
}

// AverageArea returns the average area on the unit sphere of cells at
// the given level. All six faces carry the same total area, so the
// average is exact across the whole level.
func AverageArea(level int) float64 {
	return (4 * math.Pi / 6) / float64(uint64(1)<<uint(2*level))
}

// AverageArea returns the average area of cells at this cell's level.
func (c Cell) AverageArea() float64 {
	return AverageArea(int(c.level))
}

// ApproxArea returns an approximation of the cell's area on the unit
// sphere, accurate to within 3% for all cells and 0.1% for cells at
// level 5 or deeper.
func (c Cell) ApproxArea() float64 {
	// All cells at the first two levels have the same area.
	if c.level < 2 {
		return c.AverageArea()
	}

	// The cross product of the diagonals is normal to the cell's
	// plane, and its length is twice the projected area.
	v0 := c.Vertex(0)
	v1 := c.Vertex(1)
	v2 := c.Vertex(2)
	v3 := c.Vertex(3)
	flatArea := 0.5 * v2.Sub(v0.Vector).Cross(v3.Sub(v1.Vector)).Norm()

	// Compensate for the curvature by treating the cell as a
	// spherical cap over a disc of equal projected area.
	return flatArea * 2 / (1 + math.Sqrt(1-math.Min(flatArea/math.Pi, 1)))
}

// latitude returns the latitude of the cell corner selected by i and
// j, where 0 picks the low endpoint of the corresponding uv axis.
func (c Cell) latitude(i, j int) float64 {
	p := c.uv.VertexIJ(i, j)
	return latitude(Point{faceUVToXYZ(int(c.face), p.X, p.Y)}).Radians()
}

// longitude is the latitude analogue for the cell corner's longitude.
func (c Cell) longitude(i, j int) float64 {
	p := c.uv.VertexIJ(i, j)
	return longitude(Point{faceUVToXYZ(int(c.face), p.X, p.Y)}).Radians()
}

// RectBound returns the smallest latitude/longitude rectangle
// containing the cell, padded by maxError to absorb the trigonometric
// roundoff of the corner evaluations.
func (c Cell) RectBound() Rect {
	if c.level > 0 {
		// The maximum and minimum latitude are attained at one pair
		// of diagonally opposite corners, and the longitude extremes
		// at the other pair. Which diagonal carries the latitude
		// extremes depends on how the face's axes meet the z axis and
		// on which side of the axis origin the cell sits.
		u := c.uv.X.Lo + c.uv.X.Hi
		v := c.uv.Y.Lo + c.uv.Y.Hi
		var i, j int
		if uAxis(int(c.face)).Z == 0 {
			if u < 0 {
				i = 1
			}
		} else if u > 0 {
			i = 1
		}
		if vAxis(int(c.face)).Z == 0 {
			if v < 0 {
				j = 1
			}
		} else if v > 0 {
			j = 1
		}

		lat := r1.IntervalFromPointPair(c.latitude(i, j), c.latitude(1-i, 1-j))
		lat = lat.Expanded(maxError).Intersection(validRectLatRange)
		if lat.Lo == -math.Pi/2 || lat.Hi == math.Pi/2 {
			// A corner on a pole: every longitude touches the cell.
			return Rect{Lat: lat, Lng: s1.FullInterval()}
		}
		lng := s1.IntervalFromPointPair(c.longitude(i, 1-j), c.longitude(1-i, j))
		return Rect{Lat: lat, Lng: lng.Expanded(maxError)}
	}

	// The face cells' bounds do not follow from the corner rule above
	// (the polar faces contain a pole, and the equatorial faces attain
	// their latitude extremes at edge midpoints, not corners), so they
	// are fixed here.
	switch c.face {
	case 0:
		return Rect{
			Lat: r1.Interval{Lo: -math.Pi / 4, Hi: math.Pi / 4},
			Lng: s1.Interval{Lo: -math.Pi / 4, Hi: math.Pi / 4},
		}
	case 1:
		return Rect{
			Lat: r1.Interval{Lo: -math.Pi / 4, Hi: math.Pi / 4},
			Lng: s1.Interval{Lo: math.Pi / 4, Hi: 3 * math.Pi / 4},
		}
	case 2:
		return Rect{
			Lat: r1.Interval{Lo: poleMinLat, Hi: math.Pi / 2},
			Lng: s1.FullInterval(),
		}
	case 3:
		return Rect{
			Lat: r1.Interval{Lo: -math.Pi / 4, Hi: math.Pi / 4},
			Lng: s1.Interval{Lo: 3 * math.Pi / 4, Hi: -3 * math.Pi / 4},
		}
	case 4:
		return Rect{
			Lat: r1.Interval{Lo: -math.Pi / 4, Hi: math.Pi / 4},
			Lng: s1.Interval{Lo: -3 * math.Pi / 4, Hi: -math.Pi / 4},
		}
	default:
		return Rect{
			Lat: r1.Interval{Lo: -math.Pi / 2, Hi: -poleMinLat},
			Lng: s1.FullInterval(),
		}
	}
}
