// Copyright 2024 The sphercell Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package r3 provides three-dimensional Cartesian vectors.
package r3

import (
	"math"

	"github.com/gogama/sphercell/s1"
)

// A Vector is a direction or position in three-dimensional Cartesian
// space. Vectors are not required to be unit length unless an
// operation's contract says so.
type Vector struct {
	X, Y, Z float64
}

// An Axis selects one of the three Cartesian components of a Vector.
type Axis int

// The three Cartesian axes, in component order.
const (
	XAxis Axis = iota
	YAxis
	ZAxis
)

// Norm returns the Euclidean length of the vector.
func (v Vector) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Norm2 returns the squared Euclidean length of the vector.
func (v Vector) Norm2() float64 {
	return v.Dot(v)
}

// Normalize returns a unit vector in the same direction as v, or the
// zero vector if v is zero.
func (v Vector) Normalize() Vector {
	n2 := v.Norm2()
	if n2 == 0 {
		return Vector{}
	}
	return v.Mul(1 / math.Sqrt(n2))
}

// IsUnit reports whether the vector's length is within a small
// tolerance of 1.
func (v Vector) IsUnit() bool {
	const epsilon = 5e-14
	return math.Abs(v.Norm2()-1) <= epsilon
}

// Abs returns the vector with nonnegative components.
func (v Vector) Abs() Vector {
	return Vector{X: math.Abs(v.X), Y: math.Abs(v.Y), Z: math.Abs(v.Z)}
}

// Add returns the sum of v and ov.
func (v Vector) Add(ov Vector) Vector {
	return Vector{X: v.X + ov.X, Y: v.Y + ov.Y, Z: v.Z + ov.Z}
}

// Sub returns the difference of v and ov.
func (v Vector) Sub(ov Vector) Vector {
	return Vector{X: v.X - ov.X, Y: v.Y - ov.Y, Z: v.Z - ov.Z}
}

// Mul returns the vector scaled by m.
func (v Vector) Mul(m float64) Vector {
	return Vector{X: m * v.X, Y: m * v.Y, Z: m * v.Z}
}

// Dot returns the dot product of v and ov.
func (v Vector) Dot(ov Vector) float64 {
	return v.X*ov.X + v.Y*ov.Y + v.Z*ov.Z
}

// Cross returns the cross product of v and ov.
func (v Vector) Cross(ov Vector) Vector {
	return Vector{
		X: v.Y*ov.Z - v.Z*ov.Y,
		Y: v.Z*ov.X - v.X*ov.Z,
		Z: v.X*ov.Y - v.Y*ov.X,
	}
}

// Distance returns the Euclidean distance between v and ov.
func (v Vector) Distance(ov Vector) float64 {
	return v.Sub(ov).Norm()
}

// Angle returns the angle between v and ov. Accurate for both nearly
// parallel and nearly antipodal vectors, unlike the acos of the dot
// product.
func (v Vector) Angle(ov Vector) s1.Angle {
	return s1.Angle(math.Atan2(v.Cross(ov).Norm(), v.Dot(ov)))
}

// LargestComponent returns the axis whose component has the largest
// absolute value, preferring later axes on ties.
func (v Vector) LargestComponent() Axis {
	t := v.Abs()
	if t.X > t.Y {
		if t.X > t.Z {
			return XAxis
		}
		return ZAxis
	}
	if t.Y > t.Z {
		return YAxis
	}
	return ZAxis
}

// Ortho returns a unit vector orthogonal to v. The result is
// deterministic but otherwise arbitrary. v must be nonzero.
func (v Vector) Ortho() Vector {
	var ov Vector
	switch v.LargestComponent() {
	case XAxis:
		ov.Z = 1
	case YAxis:
		ov.X = 1
	default:
		ov.Y = 1
	}
	return v.Cross(ov).Normalize()
}
