// Copyright 2024 The sphercell Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package sphercell

// The Hilbert curve position of a cell within its face is encoded and
// decoded four levels at a time with a pair of precomputed lookup
// tables. Each table entry packs a 4x4 block of (i, j) bits together
// with the 2-bit curve orientation (a swap bit and an invert bit) that
// is threaded from one block to the next. The tables are filled once,
// at package initialization, by walking the recursive Hilbert
// construction, and are read-only afterward.

const (
	lookupBits = 4

	swapMask   = 0x01
	invertMask = 0x02
)

// posToIJ maps, per orientation, a position along the level-1 Hilbert
// curve to the ij quadrant (i in the high bit, j in the low bit).
var posToIJ = [4][4]int{
	{0, 1, 3, 2}, // canonical order: (0,0), (0,1), (1,1), (1,0)
	{0, 2, 3, 1}, // axes swapped: (0,0), (1,0), (1,1), (0,1)
	{3, 2, 0, 1}, // bits inverted: (1,1), (1,0), (0,0), (0,1)
	{3, 1, 0, 2}, // swapped and inverted: (1,1), (0,1), (0,0), (1,0)
}

// posToOrientation gives the orientation adjustment a child cell
// applies to its parent's orientation, indexed by the child's position
// along the curve.
var posToOrientation = [4]int{swapMask, 0, 0, invertMask | swapMask}

var (
	lookupIJ  [1 << (2*lookupBits + 2)]int
	lookupPos [1 << (2*lookupBits + 2)]int
)

func init() {
	initLookupCell(0, 0, 0, 0, 0, 0)
	initLookupCell(0, 0, 0, swapMask, swapMask, 0)
	initLookupCell(0, 0, 0, invertMask, invertMask, 0)
	initLookupCell(0, 0, 0, swapMask|invertMask, swapMask|invertMask, 0)
}

// initLookupCell recursively fills in the lookupIJ and lookupPos
// entries rooted at the cell with the given level, (i, j) coordinates
// and Hilbert curve position, all relative to origOrientation.
func initLookupCell(level, i, j, origOrientation, orientation, pos int) {
	if level == lookupBits {
		ij := (i << lookupBits) + j
		lookupPos[(ij<<2)+origOrientation] = (pos << 2) + orientation
		lookupIJ[(pos<<2)+origOrientation] = (ij << 2) + orientation
		return
	}

	level++
	i <<= 1
	j <<= 1
	pos <<= 2
	r := posToIJ[orientation]
	for index := 0; index < 4; index++ {
		ij := r[index]
		initLookupCell(level, i+(ij>>1), j+(ij&1), origOrientation,
			orientation^posToOrientation[index], pos+index)
	}
}
