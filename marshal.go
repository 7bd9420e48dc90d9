// Copyright 2024 The sphercell Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package sphercell

import (
	"fmt"
	"io"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/gogama/sphercell/flat"
)

// maxCoveringSize caps the size of a serialized covering accepted by
// UnmarshalCovering, so a corrupt size prefix cannot trigger an
// arbitrarily large allocation. A covering of a million cells is
// around 8 MiB; this limit leaves generous headroom.
const maxCoveringSize = 64 << 20

// MarshalCovering writes a covering to w as a size-prefixed
// FlatBuffers Covering table: the subdivision level of the cells and
// their identifiers, in the order given. It returns the number of
// bytes written.
//
// Panics if w is nil or level is outside [0, MaxLevel]. Returns
// ErrInvalidCellID (wrapped) if any member of cu is invalid, and an
// error that does not wrap ErrInvalidCellID if a valid member is not at
// the stated level.
func MarshalCovering(w io.Writer, level int, cu CellUnion) (n int, err error) {
	if w == nil {
		textPanic("nil writer")
	}
	if level < 0 || level > MaxLevel {
		fmtPanic("level %d out of range", level)
	}
	for k, ci := range cu {
		if !ci.IsValid() {
			return 0, wrapErr(fmt.Sprintf("covering cell %d", k), ErrInvalidCellID)
		}
		if ci.Level() != level {
			return 0, fmtErr("covering cell %d has level %d, want %d", k, ci.Level(), level)
		}
	}

	builder := flatbuffers.NewBuilder(flatbuffers.SizeUint32 + 16 + 8*len(cu))
	flat.CoveringStartIdsVector(builder, len(cu))
	for k := len(cu) - 1; k >= 0; k-- {
		builder.PrependUint64(uint64(cu[k]))
	}
	ids := builder.EndVector(len(cu))
	flat.CoveringStart(builder)
	flat.CoveringAddLevel(builder, int8(level))
	flat.CoveringAddIds(builder, ids)
	builder.FinishSizePrefixed(flat.CoveringEnd(builder))

	return w.Write(builder.FinishedBytes())
}

// UnmarshalCovering reads a covering previously written by
// MarshalCovering from r, leaving r positioned after the covering's
// final byte.
//
// Panics if r is nil. Returns an error if the stream is truncated, if
// the encoded table is malformed, or if any decoded identifier fails
// validity or does not match the stated level.
func UnmarshalCovering(r io.Reader) (level int, cu CellUnion, err error) {
	if r == nil {
		textPanic("nil reader")
	}

	var prefix [flatbuffers.SizeUint32]byte
	if _, err = io.ReadFull(r, prefix[:]); err != nil {
		return 0, nil, wrapErr("failed to read covering size prefix", err)
	}
	size := flatbuffers.GetSizePrefix(prefix[:], 0)
	if size > maxCoveringSize {
		return 0, nil, fmtErr("covering size %d exceeds limit %d", size, maxCoveringSize)
	}

	buf := make([]byte, size)
	if _, err = io.ReadFull(r, buf); err != nil {
		return 0, nil, wrapErr("failed to read covering table", err)
	}

	err = safeFlatBuffersInteraction(func() error {
		c := flat.GetRootAsCovering(buf, 0)
		level = int(c.Level())
		if level < 0 || level > MaxLevel {
			return fmtErr("covering level %d out of range", level)
		}
		numIDs := c.IdsLength()
		cu = make(CellUnion, numIDs)
		for k := 0; k < numIDs; k++ {
			ci := CellID(c.Ids(k))
			if !ci.IsValid() {
				return wrapErr(fmt.Sprintf("covering cell %d", k), ErrInvalidCellID)
			}
			if ci.Level() != level {
				return fmtErr("covering cell %d has level %d, want %d", k, ci.Level(), level)
			}
			cu[k] = ci
		}
		return nil
	})
	if err != nil {
		return 0, nil, err
	}
	return level, cu, nil
}

// safeFlatBuffersInteraction runs a function that interacts with
// FlatBuffers, trapping any panic that occurs and converting it to a
// normal Go error.
//
// This function exists because FlatBuffer's Go code doesn't use
// standard Go error handling, allegedly for performance reasons, and
// consequently any invalid attempt to interact with FlatBuffer data
// may trigger a panic.
func safeFlatBuffersInteraction(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmtErr("panic: flatbuffers: %v", r)
		}
	}()
	err = f()
	return
}
