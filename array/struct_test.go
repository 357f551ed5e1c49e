// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solidcoredata/arrow/arrow"
	"github.com/solidcoredata/arrow/memory"
)

func structTestType() *arrow.StructType {
	return arrow.StructOf(
		arrow.Field{Name: "x", Type: arrow.PrimitiveTypes.Int32},
		arrow.Field{Name: "y", Type: arrow.BinaryTypes.String, Nullable: true},
	)
}

func TestStructBuilder(t *testing.T) {
	sb, err := NewStructBuilder(memory.NewGoAllocator(), structTestType())
	require.NoError(t, err)
	defer sb.Release()

	xb := sb.FieldBuilder(0).(*Int32Builder)
	yb := sb.FieldBuilder(1).(*StringBuilder)

	sb.Append(true)
	xb.Append(1)
	yb.Append("a")
	sb.Append(true)
	xb.Append(2)
	yb.AppendNull()

	arr := sb.NewArray().(*Struct)
	defer arr.Release()

	assert.Equal(t, 2, arr.Len())
	assert.Equal(t, 0, arr.NullN())
	assert.Equal(t, 2, arr.NumField())
	x := arr.Field(0).(*Int32)
	y := arr.Field(1).(*String)
	assert.Equal(t, int32(1), x.Value(0))
	assert.Equal(t, int32(2), x.Value(1))
	assert.Equal(t, "a", y.Value(0))
	assert.True(t, y.IsNull(1))

	// a row reads as the ordered per-field values
	assert.Equal(t, []interface{}{int32(1), "a"}, arr.Value(0))
	assert.Equal(t, []interface{}{int32(2), nil}, arr.Value(1))
}

func TestStructBuilderWithChildren(t *testing.T) {
	mem := memory.NewGoAllocator()
	xb := NewInt32Builder(mem)
	yb := NewStringBuilder(mem)
	sb := NewStructBuilderWithChildren(mem, structTestType(), []Builder{xb, yb})
	defer sb.Release()

	// decomposed rows build field by field through the wired children
	sb.Append(true)
	xb.Append(10)
	yb.Append("ten")

	arr := sb.NewArray().(*Struct)
	defer arr.Release()
	assert.Equal(t, 1, arr.Len())
	assert.Equal(t, []interface{}{int32(10), "ten"}, arr.Value(0))
}

func TestStructBuilderAppendNull(t *testing.T) {
	sb, err := NewStructBuilder(memory.NewGoAllocator(), structTestType())
	require.NoError(t, err)
	defer sb.Release()

	sb.AppendNull()
	arr := sb.NewArray().(*Struct)
	defer arr.Release()

	assert.Equal(t, 1, arr.Len())
	assert.Equal(t, 1, arr.NullN())
	assert.True(t, arr.IsNull(0))
	// children stay as long as the struct
	assert.Equal(t, 1, arr.Field(0).Len())
	assert.Equal(t, 1, arr.Field(1).Len())
}
