// Copyright 2024 The sphercell Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package sphercell

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCellID is returned when an operation receives or
	// decodes a cell identifier that is not valid: the zero
	// identifier, an identifier with no sentinel bit, or one whose
	// face bits exceed 5.
	ErrInvalidCellID = textErr("invalid cell id")
	// ErrInvalidToken is returned when a token cannot be decoded into
	// a cell identifier.
	ErrInvalidToken = textErr("invalid cell id token")
)

// Contract violations that cannot be produced by external data, such
// as an out-of-range level, an invalid coordinate passed to an
// operation requiring a valid one, or a nil writer, panic via
// textPanic/fmtPanic rather than returning an error.

const packageName = "sphercell: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

func fmtErr(format string, a ...interface{}) error {
	return fmt.Errorf(packageName+format, a...)
}

func wrapErr(text string, err error, a ...interface{}) error {
	return fmt.Errorf(packageName+text+": %w", append(a, err)...)
}

func textPanic(text string) {
	panic(packageName + text)
}

func fmtPanic(format string, a ...interface{}) {
	panic(fmt.Sprintf(packageName+format, a...))
}
