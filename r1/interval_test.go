// Copyright 2024 The sphercell Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package r1

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	empty = EmptyInterval()
	unit  = Interval{Lo: 0, Hi: 1}
	neg   = Interval{Lo: -1, Hi: 0}
	half  = Interval{Lo: 0.5, Hi: 0.5}
)

func TestEmptyInterval(t *testing.T) {
	assert.True(t, empty.IsEmpty())
	assert.False(t, unit.IsEmpty())
	assert.False(t, half.IsEmpty())
	assert.Negative(t, empty.Length())
}

func TestInterval_CenterLength(t *testing.T) {
	testCases := []struct {
		name           string
		input          Interval
		center, length float64
	}{
		{"Unit", unit, 0.5, 1},
		{"Neg", neg, -0.5, 1},
		{"Point", half, 0.5, 0},
		{"Wide", Interval{Lo: -3, Hi: 5}, 1, 8},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.center, testCase.input.Center())
			assert.Equal(t, testCase.length, testCase.input.Length())
		})
	}
}

func TestInterval_Contains(t *testing.T) {
	assert.True(t, unit.Contains(0))
	assert.True(t, unit.Contains(1))
	assert.True(t, unit.Contains(0.5))
	assert.False(t, unit.Contains(-0.01))
	assert.False(t, unit.InteriorContains(0))
	assert.False(t, unit.InteriorContains(1))
	assert.True(t, unit.InteriorContains(0.5))
	assert.False(t, empty.Contains(0))
}

func TestInterval_ContainsInterval(t *testing.T) {
	testCases := []struct {
		name               string
		a, b               Interval
		contains, interior bool
	}{
		{"Self", unit, unit, true, false},
		{"Empty", unit, empty, true, true},
		{"EmptyContainsNothing", empty, unit, false, false},
		{"Proper", unit, Interval{Lo: 0.2, Hi: 0.8}, true, true},
		{"SharedEndpoint", unit, Interval{Lo: 0, Hi: 0.5}, true, false},
		{"Overlap", unit, Interval{Lo: 0.5, Hi: 1.5}, false, false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.contains, testCase.a.ContainsInterval(testCase.b))
			assert.Equal(t, testCase.interior, testCase.a.InteriorContainsInterval(testCase.b))
		})
	}
}

func TestInterval_Intersects(t *testing.T) {
	testCases := []struct {
		name                 string
		a, b                 Interval
		intersects, interior bool
	}{
		{"Self", unit, unit, true, true},
		{"Empty", unit, empty, false, false},
		{"Touching", unit, Interval{Lo: 1, Hi: 2}, true, false},
		{"Disjoint", unit, Interval{Lo: 2, Hi: 3}, false, false},
		{"Overlap", unit, Interval{Lo: 0.5, Hi: 1.5}, true, true},
		{"PointInside", unit, half, true, true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.intersects, testCase.a.Intersects(testCase.b))
			assert.Equal(t, testCase.interior, testCase.a.InteriorIntersects(testCase.b))
		})
	}
}

func TestInterval_UnionIntersection(t *testing.T) {
	assert.Equal(t, Interval{Lo: -1, Hi: 1}, unit.Union(neg))
	assert.Equal(t, unit, unit.Union(empty))
	assert.Equal(t, unit, empty.Union(unit))
	assert.Equal(t, Interval{Lo: 0, Hi: 0}, unit.Intersection(neg))
	assert.True(t, unit.Intersection(Interval{Lo: 2, Hi: 3}).IsEmpty())
	assert.True(t, unit.Intersection(empty).IsEmpty())
}

func TestInterval_AddPoint(t *testing.T) {
	assert.Equal(t, Interval{Lo: 5, Hi: 5}, empty.AddPoint(5))
	assert.Equal(t, Interval{Lo: 0, Hi: 2}, unit.AddPoint(2))
	assert.Equal(t, Interval{Lo: -2, Hi: 1}, unit.AddPoint(-2))
	assert.Equal(t, unit, unit.AddPoint(0.5))
}

func TestInterval_Expanded(t *testing.T) {
	assert.Equal(t, Interval{Lo: -0.5, Hi: 1.5}, unit.Expanded(0.5))
	assert.Equal(t, Interval{Lo: 0.25, Hi: 0.75}, unit.Expanded(-0.25))
	assert.True(t, unit.Expanded(-0.51).IsEmpty())
	assert.True(t, empty.Expanded(1).IsEmpty())
}

func TestInterval_ClampPoint(t *testing.T) {
	assert.Equal(t, 0.0, unit.ClampPoint(-7))
	assert.Equal(t, 1.0, unit.ClampPoint(7))
	assert.Equal(t, 0.25, unit.ClampPoint(0.25))
}

func TestInterval_ApproxEqual(t *testing.T) {
	assert.True(t, unit.ApproxEqual(Interval{Lo: 1e-16, Hi: 1}))
	assert.False(t, unit.ApproxEqual(Interval{Lo: 1e-14, Hi: 1}))
	assert.True(t, empty.ApproxEqual(Interval{Lo: 0.3, Hi: 0.3}))
	assert.True(t, empty.ApproxEqual(EmptyInterval()))
}
