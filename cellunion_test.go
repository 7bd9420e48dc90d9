// Copyright 2024 The sphercell Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package sphercell

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellUnion_NormalizeSorts(t *testing.T) {
	a := CellIDFromFace(4)
	b := CellIDFromFace(1)
	c := CellIDFromFaceIJ(2, 100, 200).Parent(8)

	cu := CellUnion{a, b, c}
	cu.Normalize()

	assert.True(t, sort.IsSorted(cu))
	assert.Len(t, cu, 3)
}

func TestCellUnion_NormalizeDropsContained(t *testing.T) {
	parent := CellIDFromFaceIJ(0, 12345, 54321).Parent(6)
	child := parent.Children()[2]
	leaf := child.RangeMin()

	cu := CellUnion{leaf, parent, child, parent}
	cu.Normalize()

	assert.Equal(t, CellUnion{parent}, cu)
}

func TestCellUnion_NormalizeMergesSiblings(t *testing.T) {
	parent := CellIDFromFaceIJ(3, 1<<10, 1<<20).Parent(11)
	children := parent.Children()

	t.Run("AllFour", func(t *testing.T) {
		cu := CellUnion{children[3], children[0], children[2], children[1]}
		cu.Normalize()
		assert.Equal(t, CellUnion{parent}, cu)
	})

	t.Run("OnlyThree", func(t *testing.T) {
		cu := CellUnion{children[0], children[1], children[2]}
		cu.Normalize()
		assert.Len(t, cu, 3)
	})

	t.Run("Cascade", func(t *testing.T) {
		// Replacing one child with its own four children still
		// collapses all the way to the parent.
		grandchildren := children[1].Children()
		cu := CellUnion{
			children[0], children[2], children[3],
			grandchildren[0], grandchildren[1], grandchildren[2], grandchildren[3],
		}
		cu.Normalize()
		assert.Equal(t, CellUnion{parent}, cu)
	})

	t.Run("FacesDoNotMerge", func(t *testing.T) {
		cu := CellUnion{
			CellIDFromFace(0), CellIDFromFace(1), CellIDFromFace(2),
			CellIDFromFace(3), CellIDFromFace(4), CellIDFromFace(5),
		}
		cu.Normalize()
		assert.Len(t, cu, 6)
	})
}

func TestCellUnion_Contains(t *testing.T) {
	parent := CellIDFromFaceIJ(1, 7777, 8888).Parent(9)
	other := CellIDFromFaceIJ(5, 7777, 8888).Parent(9)

	cu := CellUnion{parent, other}
	cu.Normalize()
	require.Len(t, cu, 2)

	assert.True(t, cu.Contains(parent))
	assert.True(t, cu.Contains(parent.Children()[0]))
	assert.True(t, cu.Contains(parent.RangeMin()))
	assert.True(t, cu.Contains(parent.RangeMax()))
	assert.True(t, cu.Contains(other.ChildBeginAtLevel(20)))

	for _, n := range parent.EdgeNeighbors() {
		assert.False(t, cu.Contains(n), "%v", n)
	}
	// An ancestor is not contained, but it intersects.
	assert.False(t, cu.Contains(parent.Parent(3)))
	assert.True(t, cu.Intersects(parent.Parent(3)))
	assert.True(t, cu.Intersects(parent.RangeMax()))
	assert.False(t, cu.Intersects(CellIDFromFace(2)))
}

func TestCellUnion_ContainsCellUnion(t *testing.T) {
	parent := CellIDFromFaceIJ(2, 123, 456).Parent(5)
	children := parent.Children()

	whole := CellUnion{parent}
	parts := CellUnion{children[0], children[3]}
	parts.Normalize()

	assert.True(t, whole.ContainsCellUnion(parts))
	assert.False(t, parts.ContainsCellUnion(whole))
}

func TestCellUnion_LeafCount(t *testing.T) {
	leaf := CellIDFromFaceIJ(0, 5, 9)
	assert.Equal(t, uint64(1), CellUnion{leaf}.LeafCount())
	assert.Equal(t, uint64(4), CellUnion{leaf.Parent(29)}.LeafCount())
	assert.Equal(t, uint64(1)<<60, CellUnion{CellIDFromFace(3)}.LeafCount())

	cu := CellUnion{leaf.Parent(29), CellIDFromFaceIJ(4, 1000, 1000).Parent(28)}
	cu.Normalize()
	assert.Equal(t, uint64(4+16), cu.LeafCount())
}
