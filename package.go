// Copyright 2024 The sphercell Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package sphercell tiles the unit sphere with a discrete hierarchy of
// quadrilateral cells and assigns every cell a 64-bit identifier whose
// numeric order traces a space-filling Hilbert curve.
//
// The hierarchy is built by projecting the six faces of a cube onto
// the sphere and recursively subdividing each face into four children,
// down to 30 levels. Positions convert freely between geographic
// coordinates (LatLng), direction vectors (Point), cube-face
// coordinates, and cell identifiers (CellID). On top of the
// identifiers the package offers materialized cell geometry (Cell),
// latitude/longitude rectangles (Rect), approximate rectangle covering
// at a fixed level (SimpleCovering), normalized identifier collections
// (CellUnion), and a compact FlatBuffers interchange encoding for
// coverings.
//
// Apart from CellUnion, whose Normalize and Swap methods modify the
// slice in place, all types are immutable values and every operation
// is a pure function, so the package is safe for concurrent use
// without synchronization.
package sphercell
