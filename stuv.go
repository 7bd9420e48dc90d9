// Copyright 2024 The sphercell Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package sphercell

import (
	"math"

	"github.com/gogama/sphercell/r3"
)

// This file implements the projection between the three coordinate
// systems used to address positions on a cube face:
//
//   - cell space (s, t): the unit square [0,1]² subdividing a face
//     into a 2^30 × 2^30 grid of leaf cells;
//   - cube space (u, v): the square [-1,1]² on the face of the unit
//     cube centered at the origin;
//   - sphere space (x, y, z): direction vectors.
//
// The st↔uv transform is the quadratic projection. Of the three
// classical choices it is the calibration every cell identifier in
// this package is built against: the linear transform is faster but
// produces cells whose area varies by a factor of about 5.2, and the
// exact tangent transform is about 3x slower for a nonuniformity
// improvement this library does not need (quadratic bounds the ratio
// at about 2.08). Mixing transforms silently produces wrong neighbors,
// so exactly one pair of functions exists.

// STToUV converts an s- or t-coordinate in [0,1] to the corresponding
// u- or v-coordinate in [-1,1] using the quadratic projection.
func STToUV(s float64) float64 {
	if s >= 0.5 {
		return (1 / 3.) * (4*s*s - 1)
	}
	return (1 / 3.) * (1 - 4*(1-s)*(1-s))
}

// UVToST is the inverse of STToUV.
func UVToST(u float64) float64 {
	if u >= 0 {
		return 0.5 * math.Sqrt(1+3*u)
	}
	return 1 - 0.5*math.Sqrt(1-3*u)
}

// face returns the face containing the direction r, i.e. the axis of
// the largest-magnitude component, offset by 3 when that component is
// negative.
func face(r r3.Vector) int {
	f := int(r.LargestComponent())
	switch {
	case f == 0 && r.X < 0,
		f == 1 && r.Y < 0,
		f == 2 && r.Z < 0:
		f += 3
	}
	return f
}

// faceUVToXYZ turns face-local (u, v) coordinates into a direction
// vector. The result is a point on the unit cube, not the unit sphere;
// normalize it to obtain the spherical position.
func faceUVToXYZ(face int, u, v float64) r3.Vector {
	switch face {
	case 0:
		return r3.Vector{X: 1, Y: u, Z: v}
	case 1:
		return r3.Vector{X: -u, Y: 1, Z: v}
	case 2:
		return r3.Vector{X: -u, Y: -v, Z: 1}
	case 3:
		return r3.Vector{X: -1, Y: -v, Z: -u}
	case 4:
		return r3.Vector{X: v, Y: -1, Z: -u}
	default:
		return r3.Vector{X: v, Y: u, Z: -1}
	}
}

// validFaceXYZToUV projects the direction r onto the (u, v) coordinate
// system of the given face. It requires that r already have a positive
// dot product with the face normal.
func validFaceXYZToUV(face int, r r3.Vector) (u, v float64) {
	switch face {
	case 0:
		return r.Y / r.X, r.Z / r.X
	case 1:
		return -r.X / r.Y, r.Z / r.Y
	case 2:
		return -r.X / r.Z, -r.Y / r.Z
	case 3:
		return r.Z / r.X, r.Y / r.X
	case 4:
		return r.Z / r.Y, -r.X / r.Y
	default:
		return -r.Y / r.Z, -r.X / r.Z
	}
}

// faceXYZToUV projects the direction r onto the (u, v) coordinate
// system of the given face. ok is false when r points away from the
// face, in which case u and v are meaningless.
func faceXYZToUV(face int, r r3.Vector) (u, v float64, ok bool) {
	switch face {
	case 0:
		ok = r.X > 0
	case 1:
		ok = r.Y > 0
	case 2:
		ok = r.Z > 0
	case 3:
		ok = r.X < 0
	case 4:
		ok = r.Y < 0
	default:
		ok = r.Z < 0
	}
	if !ok {
		return 0, 0, false
	}
	u, v = validFaceXYZToUV(face, r)
	return u, v, true
}

// xyzToFaceUV selects the face containing the direction r and projects
// r onto that face.
func xyzToFaceUV(r r3.Vector) (f int, u, v float64) {
	f = face(r)
	u, v = validFaceXYZToUV(f, r)
	return f, u, v
}

// faceUVWAxes lists, per face, the u-axis, v-axis and outward normal.
// The sign and axis choices are the ones that make consecutive cell
// identifiers trace a continuous Hilbert curve over the whole cube.
var faceUVWAxes = [6][3]r3.Vector{
	{{X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 0}},
	{{X: -1, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 1}, {X: 0, Y: 1, Z: 0}},
	{{X: -1, Y: 0, Z: 0}, {X: 0, Y: -1, Z: 0}, {X: 0, Y: 0, Z: 1}},
	{{X: 0, Y: 0, Z: -1}, {X: 0, Y: -1, Z: 0}, {X: -1, Y: 0, Z: 0}},
	{{X: 0, Y: 0, Z: -1}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: -1, Z: 0}},
	{{X: 0, Y: 1, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 0, Z: -1}},
}

func uAxis(face int) r3.Vector {
	return faceUVWAxes[face][0]
}

func vAxis(face int) r3.Vector {
	return faceUVWAxes[face][1]
}

func unitNorm(face int) r3.Vector {
	return faceUVWAxes[face][2]
}

// uNorm returns the outward normal of the plane through the origin
// whose intersection with the face is the line of constant u.
func uNorm(face int, u float64) r3.Vector {
	switch face {
	case 0:
		return r3.Vector{X: u, Y: -1, Z: 0}
	case 1:
		return r3.Vector{X: 1, Y: u, Z: 0}
	case 2:
		return r3.Vector{X: 1, Y: 0, Z: u}
	case 3:
		return r3.Vector{X: -u, Y: 0, Z: 1}
	case 4:
		return r3.Vector{X: 0, Y: -u, Z: 1}
	default:
		return r3.Vector{X: 0, Y: -1, Z: -u}
	}
}

// vNorm is the v-coordinate analogue of uNorm.
func vNorm(face int, v float64) r3.Vector {
	switch face {
	case 0:
		return r3.Vector{X: -v, Y: 0, Z: 1}
	case 1:
		return r3.Vector{X: 0, Y: -v, Z: 1}
	case 2:
		return r3.Vector{X: 0, Y: -1, Z: -v}
	case 3:
		return r3.Vector{X: v, Y: -1, Z: 0}
	case 4:
		return r3.Vector{X: 1, Y: v, Z: 0}
	default:
		return r3.Vector{X: 1, Y: 0, Z: v}
	}
}
