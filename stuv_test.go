// Copyright 2024 The sphercell Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package sphercell

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gogama/sphercell/r3"
)

func TestSTToUV_Calibration(t *testing.T) {
	// Exact values of the quadratic transform at the face edge,
	// center, and edge.
	assert.Equal(t, -1.0, STToUV(0))
	assert.Equal(t, 0.0, STToUV(0.5))
	assert.Equal(t, 1.0, STToUV(1))
	assert.Equal(t, 0.0, UVToST(0)-0.5)
	assert.Equal(t, 0.0, UVToST(-1))
	assert.Equal(t, 1.0, UVToST(1))

	// One third of the way out in u is the round-trip fixed point
	// 0.5*sqrt(2) in s.
	assert.InDelta(t, math.Sqrt2/2, UVToST(1.0/3), 1e-15)
	assert.InDelta(t, 1.0/3, STToUV(UVToST(1.0/3)), 1e-15)
}

func TestSTUV_RoundTrip(t *testing.T) {
	for i := 0; i <= 128; i++ {
		s := float64(i) / 128
		assert.InDelta(t, s, UVToST(STToUV(s)), 1e-15, "s=%v", s)
	}
	for i := -128; i <= 128; i++ {
		u := float64(i) / 128
		assert.InDelta(t, u, STToUV(UVToST(u)), 1e-15, "u=%v", u)
	}
}

func TestSTToUV_Monotonic(t *testing.T) {
	prev := math.Inf(-1)
	for i := 0; i <= 64; i++ {
		u := STToUV(float64(i) / 64)
		assert.Greater(t, u, prev)
		prev = u
	}
}

func TestFace(t *testing.T) {
	testCases := []struct {
		name     string
		input    r3.Vector
		expected int
	}{
		{"PosX", r3.Vector{X: 1}, 0},
		{"PosY", r3.Vector{Y: 1}, 1},
		{"PosZ", r3.Vector{Z: 1}, 2},
		{"NegX", r3.Vector{X: -1}, 3},
		{"NegY", r3.Vector{Y: -1}, 4},
		{"NegZ", r3.Vector{Z: -1}, 5},
		{"Skewed", r3.Vector{X: 0.2, Y: -0.9, Z: 0.3}, 4},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, face(testCase.input))
		})
	}
}

func TestFaceUVToXYZ_Axes(t *testing.T) {
	for f := 0; f < 6; f++ {
		// The face center projects to the face normal, and the axis
		// table is consistent with the projection.
		assert.Equal(t, unitNorm(f), faceUVToXYZ(f, 0, 0), "face %d", f)
		assert.Equal(t, unitNorm(f).Add(uAxis(f)), faceUVToXYZ(f, 1, 0), "face %d", f)
		assert.Equal(t, unitNorm(f).Add(vAxis(f)), faceUVToXYZ(f, 0, 1), "face %d", f)
		// The axes form a right-handed frame.
		assert.Equal(t, unitNorm(f), uAxis(f).Cross(vAxis(f)), "face %d", f)
	}
}

func TestFaceXYZToUV_RoundTrip(t *testing.T) {
	// Cube corners (|u| = |v| = 1) are shared by three faces, so stay
	// strictly inside the face.
	uvs := []struct{ u, v float64 }{
		{0, 0}, {0.5, 0.25}, {-0.75, 0.125}, {0.999, -0.999},
	}
	for f := 0; f < 6; f++ {
		for _, c := range uvs {
			p := faceUVToXYZ(f, c.u, c.v)

			assert.Equal(t, f, face(p), "face %d uv %v", f, c)

			u, v, ok := faceXYZToUV(f, p)
			assert.True(t, ok)
			assert.InDelta(t, c.u, u, 1e-15)
			assert.InDelta(t, c.v, v, 1e-15)

			// The same point is not on the opposite face.
			_, _, ok = faceXYZToUV((f+3)%6, p)
			assert.False(t, ok)
		}
	}
}

func TestUVNorms(t *testing.T) {
	// uNorm(f, u) is normal to the plane of all face points with that
	// u-coordinate, and likewise for vNorm.
	for f := 0; f < 6; f++ {
		for _, u := range []float64{-1, -0.5, 0, 0.5, 1} {
			for _, v := range []float64{-1, 0, 1} {
				p := faceUVToXYZ(f, u, v)
				assert.InDelta(t, 0, uNorm(f, u).Dot(p), 1e-15, "face %d u %v v %v", f, u, v)
				assert.InDelta(t, 0, vNorm(f, v).Dot(p), 1e-15, "face %d u %v v %v", f, u, v)
			}
		}
	}
}
