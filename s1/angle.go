// Copyright 2024 The sphercell Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package s1 provides types and operations for angular measurements
// and for intervals on the unit circle.
package s1

import (
	"math"
)

// An Angle is a one-dimensional angular measurement, stored as a
// float64 number of radians. No normalization to any particular range
// is enforced.
type Angle float64

// Angle units. Multiply a number by a unit to obtain an Angle, and
// divide an Angle by a unit to read it back in that unit.
const (
	Radian Angle = 1
	Degree       = (math.Pi / 180) * Radian
)

// Radians returns the angle in radians.
func (a Angle) Radians() float64 {
	return float64(a)
}

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 {
	return float64(a / Degree)
}

// Abs returns the absolute value of the angle.
func (a Angle) Abs() Angle {
	return Angle(math.Abs(float64(a)))
}
