// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solidcoredata/arrow/arrow"
	"github.com/solidcoredata/arrow/internal/bitutil"
	"github.com/solidcoredata/arrow/memory"
)

func TestInt32Builder(t *testing.T) {
	b := NewInt32Builder(memory.NewGoAllocator())
	defer b.Release()
	b.Append(1)
	b.AppendNull()
	b.Append(3)

	arr := b.NewArray().(*Int32)
	defer arr.Release()

	assert.Equal(t, 3, arr.Len())
	assert.Equal(t, 1, arr.NullN())
	assert.Equal(t, int32(1), arr.Value(0))
	assert.True(t, arr.IsNull(1))
	assert.Equal(t, int32(3), arr.Value(2))

	// the null slot stays a defined zero in the values buffer
	assert.Equal(t, int32(0), arr.Value(1))

	// null count equals length minus the validity popcount
	validity := arr.Data().Buffers()[0].Bytes()
	assert.Equal(t, arr.Len()-bitutil.CountSetBits(validity, 0, arr.Len()), arr.NullN())

	assert.Equal(t, "[1 (null) 3]", arr.String())
}

func TestNumericKinds(t *testing.T) {
	mem := memory.NewGoAllocator()

	u8 := NewUint8Builder(mem)
	u8.Append(250)
	a8 := u8.NewArray().(*Uint8)
	assert.Equal(t, uint8(250), a8.Value(0))
	a8.Release()
	u8.Release()

	f64 := NewFloat64Builder(mem)
	f64.Append(1.5)
	f64.AppendNull()
	af := f64.NewArray().(*Float64)
	assert.Equal(t, 1.5, af.Value(0))
	assert.True(t, af.IsNull(1))
	assert.Equal(t, "[1.5 (null)]", af.String())
	af.Release()
	f64.Release()

	i64 := NewInt64Builder(mem)
	i64.Append(-9)
	ai := i64.NewArray().(*Int64)
	assert.Equal(t, int64(-9), ai.Value(0))
	ai.Release()
	i64.Release()

	ts := NewTimestampBuilder(mem, &arrow.TimestampType{Unit: arrow.Second, TimeZone: "UTC"})
	ts.Append(42)
	at := ts.NewArray().(*Timestamp)
	assert.Equal(t, arrow.Timestamp(42), at.Value(0))
	when, err := at.ValueTime(0)
	require.NoError(t, err)
	assert.Equal(t, int64(42), when.Unix())
	at.Release()
	ts.Release()
}

func TestBooleanBuilder(t *testing.T) {
	b := NewBooleanBuilder(memory.NewGoAllocator())
	defer b.Release()
	b.Append(true)
	b.AppendNull()
	b.AppendNull()
	b.Append(false)
	b.Append(true)

	arr := b.NewArray().(*Boolean)
	defer arr.Release()

	assert.Equal(t, 5, arr.Len())
	assert.Equal(t, 2, arr.NullN())
	assert.True(t, arr.Value(0))
	assert.False(t, arr.Value(3))
	assert.True(t, arr.Value(4))
	assert.Equal(t, "[true (null) (null) false true]", arr.String())
}

func TestValueAt(t *testing.T) {
	b := NewInt32Builder(memory.NewGoAllocator())
	defer b.Release()
	b.Append(5)
	b.AppendNull()
	arr := b.NewArray()
	defer arr.Release()

	v, err := ValueAt(arr, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(5), v)

	// null slots read as the absent value, never a default
	v, err = ValueAt(arr, 1)
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = ValueAt(arr, 2)
	require.Error(t, err)
	assert.True(t, arrow.IsOutOfBounds(err))
	_, err = ValueAt(arr, -1)
	assert.Error(t, err)
}
