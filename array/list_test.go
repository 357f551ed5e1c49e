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

func TestListBuilder(t *testing.T) {
	lb, err := NewListBuilder(memory.NewGoAllocator(), arrow.PrimitiveTypes.Int32)
	require.NoError(t, err)
	defer lb.Release()
	vb := lb.ValueBuilder().(*Int32Builder)

	lb.Append(true)
	vb.Append(1)
	vb.Append(2)
	lb.AppendNull()
	lb.Append(true)

	arr := lb.NewArray().(*List)
	defer arr.Release()

	assert.Equal(t, 3, arr.Len())
	assert.Equal(t, 1, arr.NullN())
	for i, want := range []int32{0, 2, 2, 2} {
		assert.Equal(t, want, arr.ValueOffset(i), "offset %d", i)
	}
	assert.Equal(t, 2, arr.ListValues().Len())

	assert.Equal(t, []interface{}{int32(1), int32(2)}, arr.Value(0))
	assert.True(t, arr.IsNull(1))
	assert.Equal(t, []interface{}{}, arr.Value(2))
	assert.Equal(t, "[[1 2] (null) []]", arr.String())
}

func TestListBuilderAppendAny(t *testing.T) {
	lb, err := NewListBuilder(memory.NewGoAllocator(), arrow.PrimitiveTypes.Int32)
	require.NoError(t, err)
	defer lb.Release()

	lb.AppendAny([]interface{}{int32(7), nil})
	lb.AppendAny(nil)

	arr := lb.NewArray().(*List)
	defer arr.Release()
	assert.Equal(t, 2, arr.Len())
	assert.Equal(t, []interface{}{int32(7), nil}, arr.Value(0))
	assert.True(t, arr.IsNull(1))
}

func TestFixedSizeListBuilder(t *testing.T) {
	lb, err := NewFixedSizeListBuilder(memory.NewGoAllocator(), 2, arrow.PrimitiveTypes.Int32)
	require.NoError(t, err)
	defer lb.Release()
	vb := lb.ValueBuilder().(*Int32Builder)

	lb.Append(true)
	vb.Append(1)
	vb.Append(2)
	lb.AppendNull()

	arr := lb.NewArray().(*FixedSizeList)
	defer arr.Release()

	assert.Equal(t, 2, arr.Len())
	assert.Equal(t, 1, arr.NullN())
	// a null slot still holds list-size child slots
	assert.Equal(t, 4, arr.ListValues().Len())
	assert.Equal(t, []interface{}{int32(1), int32(2)}, arr.Value(0))
}
