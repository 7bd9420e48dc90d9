// Copyright 2024 The sphercell Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package sphercell

import (
	"github.com/gogama/sphercell/r3"
)

// A Point is a direction vector on or near the unit sphere. Operations
// whose contract requires a unit-length point say so; everything else
// accepts any nonzero direction.
type Point struct {
	r3.Vector
}

// PointFromCoords creates a unit-length Point from the direction
// (x, y, z). The input may have any nonzero length.
func PointFromCoords(x, y, z float64) Point {
	return Point{r3.Vector{X: x, Y: y, Z: z}.Normalize()}
}
