// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package array

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solidcoredata/arrow/arrow"
	"github.com/solidcoredata/arrow/memory"
)

func TestStringBuilder(t *testing.T) {
	b := NewStringBuilder(memory.NewGoAllocator())
	defer b.Release()
	b.Append("x")
	b.Append("")
	b.Append("yz")

	arr := b.NewArray().(*String)
	defer arr.Release()

	assert.Equal(t, 3, arr.Len())
	assert.Equal(t, 0, arr.NullN())
	assert.Equal(t, "x", arr.Value(0))
	assert.Equal(t, "", arr.Value(1))
	assert.Equal(t, "yz", arr.Value(2))

	// offsets buffer holds length+1 monotonic entries; the values blob
	// holds offsets[length] bytes
	offsets := arr.Data().Buffers()[1]
	assert.Equal(t, (arr.Len()+1)*4, offsets.Len())
	for i := 0; i <= arr.Len(); i++ {
		want := []int32{0, 1, 1, 3}[i]
		assert.Equal(t, want, arr.ValueOffset(i), "offset %d", i)
	}
	assert.Equal(t, 3, arr.Data().Buffers()[2].Len())
	assert.Equal(t, "xyz", string(arr.Data().Buffers()[2].Bytes()))

	assert.Equal(t, `["x" "" "yz"]`, arr.String())
}

func TestStringBuilderNulls(t *testing.T) {
	b := NewStringBuilder(memory.NewGoAllocator())
	defer b.Release()
	b.Append("a")
	b.AppendNull()
	b.Append("bc")

	arr := b.NewArray().(*String)
	defer arr.Release()

	assert.Equal(t, 1, arr.NullN())
	assert.True(t, arr.IsNull(1))
	// a null append repeats the previous offset
	assert.Equal(t, arr.ValueOffset(1), arr.ValueOffset(2))
	assert.Equal(t, `["a" (null) "bc"]`, arr.String())
}

func TestBinaryBuilder(t *testing.T) {
	b := NewBinaryBuilder(memory.NewGoAllocator())
	defer b.Release()
	b.Append([]byte{0x01, 0x02})
	b.AppendNull()

	arr := b.NewArray().(*Binary)
	defer arr.Release()
	assert.Equal(t, []byte{0x01, 0x02}, arr.Value(0))
	assert.True(t, arr.IsNull(1))
}

func TestLargeStringBuilder(t *testing.T) {
	b := NewLargeStringBuilder(memory.NewGoAllocator())
	defer b.Release()
	b.Append("big")
	b.Append("ger")

	arr := b.NewArray().(*LargeString)
	defer arr.Release()
	assert.Equal(t, "big", arr.Value(0))
	assert.Equal(t, "ger", arr.Value(1))
	// 64-bit offsets: length+1 entries of 8 bytes
	assert.Equal(t, (arr.Len()+1)*8, arr.Data().Buffers()[1].Len())
	assert.Equal(t, int64(6), arr.ValueOffset(2))
}

func TestFixedSizeBinaryBuilder(t *testing.T) {
	b := NewFixedSizeBinaryBuilder(memory.NewGoAllocator(), &arrow.FixedSizeBinaryType{ByteWidth: 3})
	defer b.Release()
	b.Append([]byte("abc"))
	b.Append([]byte("wrong width"))
	b.AppendNull()

	arr := b.NewArray().(*FixedSizeBinary)
	defer arr.Release()
	assert.Equal(t, 2, arr.Len())
	assert.Equal(t, []byte("abc"), arr.Value(0))
	assert.True(t, arr.IsNull(1))
}
