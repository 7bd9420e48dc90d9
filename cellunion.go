// Copyright 2024 The sphercell Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package sphercell

import (
	"sort"
)

// A CellUnion is a collection of cell identifiers understood as a
// region: the union of the member cells. A normalized CellUnion is
// sorted in ascending (Hilbert traversal) order, contains no cell that
// is a descendant of another member, and never holds all four children
// of a cell in place of the cell itself.
type CellUnion []CellID

// Len, Less and Swap implement sort.Interface in ascending unsigned
// identifier order, which is the Hilbert traversal order of the
// sphere.
func (cu CellUnion) Len() int           { return len(cu) }
func (cu CellUnion) Less(i, j int) bool { return cu[i] < cu[j] }
func (cu CellUnion) Swap(i, j int)      { cu[i], cu[j] = cu[j], cu[i] }

// Normalize sorts the union and replaces it with the minimal
// equivalent form: descendants of other members are dropped and
// complete groups of four siblings collapse into their parent,
// repeatedly.
func (cu *CellUnion) Normalize() {
	sort.Sort(*cu)

	output := make(CellUnion, 0, len(*cu))
	for _, ci := range *cu {
		// Skip cells contained by the (sorted) predecessor.
		if len(output) > 0 && output[len(output)-1].Contains(ci) {
			continue
		}
		// Drop predecessors this cell contains.
		for len(output) > 0 && ci.Contains(output[len(output)-1]) {
			output = output[:len(output)-1]
		}
		// Collapse complete sibling groups, cascading upward.
		for len(output) >= 3 {
			fin := output[len(output)-3:]
			// Quick rejection: four siblings differ only in the two
			// bits above the sentinel, so they XOR to zero.
			if fin[0]^fin[1]^fin[2] != ci {
				break
			}
			// Confirm: all four share every bit above the sibling
			// position bits.
			mask := ci.lsb() << 1
			mask = ^(mask + (mask << 1))
			m := uint64(ci) & mask
			if uint64(fin[0])&mask != m || uint64(fin[1])&mask != m ||
				uint64(fin[2])&mask != m || ci.IsFace() {
				break
			}
			output = output[:len(output)-3]
			ci = ci.ImmediateParent()
		}
		output = append(output, ci)
	}
	*cu = output
}

// Contains reports whether the union, which must be normalized,
// contains the cell ci: some member is ci or an ancestor of ci.
func (cu CellUnion) Contains(ci CellID) bool {
	// An ancestor of ci is within one position, in sorted order, of
	// ci itself, so only the neighbors of the insertion point need
	// checking.
	i := sort.Search(len(cu), func(k int) bool { return cu[k] >= ci })
	if i < len(cu) && cu[i].RangeMin() <= ci {
		return true
	}
	return i > 0 && cu[i-1].RangeMax() >= ci
}

// Intersects reports whether the union, which must be normalized,
// shares any leaf descendant with the cell ci.
func (cu CellUnion) Intersects(ci CellID) bool {
	i := sort.Search(len(cu), func(k int) bool { return cu[k] >= ci })
	if i < len(cu) && cu[i].RangeMin() <= ci.RangeMax() {
		return true
	}
	return i > 0 && cu[i-1].RangeMax() >= ci.RangeMin()
}

// ContainsCellUnion reports whether every cell of other, which must be
// normalized, is contained in cu, which must also be normalized.
func (cu CellUnion) ContainsCellUnion(other CellUnion) bool {
	for _, ci := range other {
		if !cu.Contains(ci) {
			return false
		}
	}
	return true
}

// LeafCount returns the number of leaf cells covered by the union,
// which must be normalized so that members do not overlap.
func (cu CellUnion) LeafCount() uint64 {
	var n uint64
	for _, ci := range cu {
		// Leaf identifiers are two apart along the curve.
		n += (uint64(ci.RangeMax())-uint64(ci.RangeMin()))>>1 + 1
	}
	return n
}
