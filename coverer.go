// Copyright 2024 The sphercell Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package sphercell

// SimpleCovering returns the cells at the given level whose bounding
// rectangles intersect r, found by flood fill outward from the cell
// containing the center of r. Panics if level is outside [0,
// MaxLevel].
//
// The result is the connected component, under edge adjacency, of the
// level-L grid that contains the seed and stays inside r. A rectangle
// the cell grid disconnects (possible only through pathological
// rounding at the ±π seam) is covered only in the seed's component;
// callers that need more can supply extra seeds via CoveringWithSeeds.
// If the seed's own bound fails to intersect r, the output is just the
// seed.
//
// The flood fill runs in time proportional to the number of cells
// intersecting r. Callers needing bounded work should compare
// r.Area() against 4*AverageArea(level) before covering.
func SimpleCovering(r Rect, level int) CellUnion {
	return CoveringWithSeeds(r, level, []LatLng{r.Center()})
}

// CoveringWithSeeds is SimpleCovering flood filled from every seed
// coordinate instead of only the rectangle's center. Each seed's cell
// enters the output unconditionally; everything else enters only if
// its bound intersects r. A seed whose own bound misses r is not
// expanded.
func CoveringWithSeeds(r Rect, level int, seeds []LatLng) CellUnion {
	if level < 0 || level > MaxLevel {
		fmtPanic("level %d out of range", level)
	}

	var output CellUnion
	var frontier []CellID
	examined := make(map[CellID]struct{})

	for _, seed := range seeds {
		ci := CellIDFromLatLng(seed).Parent(level)
		if _, ok := examined[ci]; ok {
			continue
		}
		examined[ci] = struct{}{}
		output = append(output, ci)
		if CellFromCellID(ci).RectBound().Intersects(r) {
			frontier = append(frontier, ci)
		}
	}

	for len(frontier) > 0 {
		ci := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		for _, n := range ci.EdgeNeighbors() {
			if _, ok := examined[n]; ok {
				continue
			}
			examined[n] = struct{}{}
			if CellFromCellID(n).RectBound().Intersects(r) {
				output = append(output, n)
				frontier = append(frontier, n)
			}
		}
	}
	return output
}
