// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arrow

import (
	"fmt"
)

// BinaryType holds opaque byte sequences behind 32-bit offsets.
type BinaryType struct{}

func (*BinaryType) ID() Type            { return BINARY }
func (*BinaryType) Name() string        { return "binary" }
func (*BinaryType) Stride() int         { return 0 }
func (*BinaryType) CDataFormat() string { return "z" }
func (*BinaryType) String() string      { return "binary" }

// StringType holds UTF-8 text behind 32-bit offsets.
type StringType struct{}

func (*StringType) ID() Type            { return STRING }
func (*StringType) Name() string        { return "utf8" }
func (*StringType) Stride() int         { return 0 }
func (*StringType) CDataFormat() string { return "u" }
func (*StringType) String() string      { return "utf8" }

// LargeBinaryType holds opaque byte sequences behind 64-bit offsets.
type LargeBinaryType struct{}

func (*LargeBinaryType) ID() Type            { return LARGE_BINARY }
func (*LargeBinaryType) Name() string        { return "large_binary" }
func (*LargeBinaryType) Stride() int         { return 0 }
func (*LargeBinaryType) CDataFormat() string { return "Z" }
func (*LargeBinaryType) String() string      { return "large_binary" }

// LargeStringType holds UTF-8 text behind 64-bit offsets.
type LargeStringType struct{}

func (*LargeStringType) ID() Type            { return LARGE_STRING }
func (*LargeStringType) Name() string        { return "large_utf8" }
func (*LargeStringType) Stride() int         { return 0 }
func (*LargeStringType) CDataFormat() string { return "U" }
func (*LargeStringType) String() string      { return "large_utf8" }

// FixedSizeBinaryType holds byte sequences of a single fixed width, with no
// offsets buffer.
type FixedSizeBinaryType struct {
	ByteWidth int
}

func (*FixedSizeBinaryType) ID() Type     { return FIXED_SIZE_BINARY }
func (*FixedSizeBinaryType) Name() string { return "fixed_size_binary" }
func (t *FixedSizeBinaryType) Stride() int {
	return t.ByteWidth
}
func (t *FixedSizeBinaryType) CDataFormat() string {
	return fmt.Sprintf("w:%d", t.ByteWidth)
}
func (t *FixedSizeBinaryType) String() string {
	return fmt.Sprintf("fixed_size_binary[%d]", t.ByteWidth)
}

// BinaryTypes holds the singletons for the variable length types.
var BinaryTypes = struct {
	Binary      DataType
	String      DataType
	LargeBinary DataType
	LargeString DataType
}{
	Binary:      &BinaryType{},
	String:      &StringType{},
	LargeBinary: &LargeBinaryType{},
	LargeString: &LargeStringType{},
}
