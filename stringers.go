// Copyright 2024 The sphercell Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package sphercell

import (
	"fmt"
	"strconv"
	"strings"
)

// String returns the cell's face and its Hilbert curve position as a
// base-4 digit per level, e.g. "2/03130210". Invalid identifiers
// render with their raw bits.
func (ci CellID) String() string {
	if !ci.IsValid() {
		return "Invalid: " + strconv.FormatUint(uint64(ci), 16)
	}
	var b strings.Builder
	b.WriteString(strconv.Itoa(ci.Face()))
	b.WriteByte('/')
	for level := 1; level <= ci.Level(); level++ {
		b.WriteByte("0123"[ci.childPosition(level)])
	}
	return b.String()
}

// String returns the coordinate in degrees.
func (ll LatLng) String() string {
	return fmt.Sprintf("[%.7f, %.7f]", ll.Lat.Degrees(), ll.Lng.Degrees())
}

// String returns a summary description of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("Cell{Face:%d,Level:%d,Orientation:%d,ID:%s}",
		c.face, c.level, c.orientation, c.id)
}

// String returns the rectangle's corners in degrees.
func (r Rect) String() string {
	return fmt.Sprintf("Rect{Lo:%v,Hi:%v}", r.Lo(), r.Hi())
}
