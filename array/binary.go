// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package array

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/solidcoredata/arrow/arrow"
)

// The variable length arrays share one shape: a validity bitmap, an offsets
// buffer of length+1 entries, and a byte blob. Offsets are int32 for Binary
// and String, int64 for the large variants.

func offsetsBytes(data *Data) []byte {
	if len(data.buffers) < 2 || data.buffers[1] == nil {
		return nil
	}
	return data.buffers[1].Bytes()
}

func blobBytes(data *Data) []byte {
	if len(data.buffers) < 3 || data.buffers[2] == nil {
		return nil
	}
	return data.buffers[2].Bytes()
}

// Binary is a read-only facade over opaque byte values behind 32-bit
// offsets.
type Binary struct {
	array
	offsets []byte
	blob    []byte
}

func NewBinaryData(data *Data) *Binary {
	a := &Binary{array: array{refCount: 1}}
	a.setData(data)
	a.offsets = offsetsBytes(data)
	a.blob = blobBytes(data)
	return a
}

// ValueOffset returns entry i of the offsets buffer; entries run to
// Len()+1.
func (a *Binary) ValueOffset(i int) int32 {
	return int32(binary.LittleEndian.Uint32(a.offsets[i*4:]))
}

func (a *Binary) Value(i int) []byte {
	beg, end := a.ValueOffset(i), a.ValueOffset(i+1)
	return a.blob[beg:end]
}

func (a *Binary) getOneForIndex(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	return a.Value(i)
}

func (a *Binary) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < a.Len(); i++ {
		if i > 0 {
			b.WriteString(" ")
		}
		if a.IsNull(i) {
			b.WriteString(NullValueStr)
			continue
		}
		fmt.Fprintf(&b, "%q", a.Value(i))
	}
	b.WriteString("]")
	return b.String()
}

// String is a read-only facade over UTF-8 values behind 32-bit offsets.
type String struct {
	array
	offsets []byte
	blob    []byte
}

func NewStringData(data *Data) *String {
	a := &String{array: array{refCount: 1}}
	a.setData(data)
	a.offsets = offsetsBytes(data)
	a.blob = blobBytes(data)
	return a
}

func (a *String) ValueOffset(i int) int32 {
	return int32(binary.LittleEndian.Uint32(a.offsets[i*4:]))
}

func (a *String) Value(i int) string {
	beg, end := a.ValueOffset(i), a.ValueOffset(i+1)
	return string(a.blob[beg:end])
}

func (a *String) getOneForIndex(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	return a.Value(i)
}

func (a *String) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < a.Len(); i++ {
		if i > 0 {
			b.WriteString(" ")
		}
		if a.IsNull(i) {
			b.WriteString(NullValueStr)
			continue
		}
		fmt.Fprintf(&b, "%q", a.Value(i))
	}
	b.WriteString("]")
	return b.String()
}

// LargeBinary is Binary with 64-bit offsets.
type LargeBinary struct {
	array
	offsets []byte
	blob    []byte
}

func NewLargeBinaryData(data *Data) *LargeBinary {
	a := &LargeBinary{array: array{refCount: 1}}
	a.setData(data)
	a.offsets = offsetsBytes(data)
	a.blob = blobBytes(data)
	return a
}

func (a *LargeBinary) ValueOffset(i int) int64 {
	return int64(binary.LittleEndian.Uint64(a.offsets[i*8:]))
}

func (a *LargeBinary) Value(i int) []byte {
	beg, end := a.ValueOffset(i), a.ValueOffset(i+1)
	return a.blob[beg:end]
}

func (a *LargeBinary) getOneForIndex(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	return a.Value(i)
}

func (a *LargeBinary) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < a.Len(); i++ {
		if i > 0 {
			b.WriteString(" ")
		}
		if a.IsNull(i) {
			b.WriteString(NullValueStr)
			continue
		}
		fmt.Fprintf(&b, "%q", a.Value(i))
	}
	b.WriteString("]")
	return b.String()
}

// LargeString is String with 64-bit offsets.
type LargeString struct {
	array
	offsets []byte
	blob    []byte
}

func NewLargeStringData(data *Data) *LargeString {
	a := &LargeString{array: array{refCount: 1}}
	a.setData(data)
	a.offsets = offsetsBytes(data)
	a.blob = blobBytes(data)
	return a
}

func (a *LargeString) ValueOffset(i int) int64 {
	return int64(binary.LittleEndian.Uint64(a.offsets[i*8:]))
}

func (a *LargeString) Value(i int) string {
	beg, end := a.ValueOffset(i), a.ValueOffset(i+1)
	return string(a.blob[beg:end])
}

func (a *LargeString) getOneForIndex(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	return a.Value(i)
}

func (a *LargeString) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < a.Len(); i++ {
		if i > 0 {
			b.WriteString(" ")
		}
		if a.IsNull(i) {
			b.WriteString(NullValueStr)
			continue
		}
		fmt.Fprintf(&b, "%q", a.Value(i))
	}
	b.WriteString("]")
	return b.String()
}

// FixedSizeBinary is a read-only facade over byte values of one fixed
// width; there is no offsets buffer.
type FixedSizeBinary struct {
	array
	width  int
	values []byte
}

func NewFixedSizeBinaryData(data *Data) *FixedSizeBinary {
	a := &FixedSizeBinary{array: array{refCount: 1}}
	a.setData(data)
	a.width = data.dtype.(*arrow.FixedSizeBinaryType).ByteWidth
	a.values = valuesBytes(data)
	return a
}

func (a *FixedSizeBinary) Value(i int) []byte {
	return a.values[i*a.width : (i+1)*a.width]
}

func (a *FixedSizeBinary) getOneForIndex(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	return a.Value(i)
}

func (a *FixedSizeBinary) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < a.Len(); i++ {
		if i > 0 {
			b.WriteString(" ")
		}
		if a.IsNull(i) {
			b.WriteString(NullValueStr)
			continue
		}
		fmt.Fprintf(&b, "%q", a.Value(i))
	}
	b.WriteString("]")
	return b.String()
}
