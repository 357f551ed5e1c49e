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

func buildInt32(t *testing.T, vals ...interface{}) Interface {
	t.Helper()
	b := NewInt32Builder(memory.NewGoAllocator())
	defer b.Release()
	for _, v := range vals {
		b.AppendAny(v)
	}
	return b.NewArray()
}

func TestChunkedValueAt(t *testing.T) {
	c1 := buildInt32(t, int32(1), int32(2))
	defer c1.Release()
	c2 := buildInt32(t, nil, int32(4))
	defer c2.Release()

	chunked := NewChunked(arrow.PrimitiveTypes.Int32, []Interface{c1, c2})
	defer chunked.Release()

	assert.Equal(t, 4, chunked.Len())
	assert.Equal(t, 1, chunked.NullN())

	// random access walks the chunks linearly
	for i, want := range []interface{}{int32(1), int32(2), nil, int32(4)} {
		got, err := chunked.ValueAt(i)
		require.NoError(t, err)
		assert.Equal(t, want, got, "index %d", i)
	}
	_, err := chunked.ValueAt(4)
	require.Error(t, err)
	assert.True(t, arrow.IsOutOfBounds(err))
}

func TestTableFromRecords(t *testing.T) {
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "a", Type: arrow.PrimitiveTypes.Int32, Nullable: true},
	}, nil)

	build := func(vals ...interface{}) *Record {
		b, err := NewRecordBuilder(memory.NewGoAllocator(), schema)
		require.NoError(t, err)
		defer b.Release()
		for _, v := range vals {
			b.Field(0).AppendAny(v)
		}
		rec, err := b.NewRecord()
		require.NoError(t, err)
		return rec
	}

	r1 := build(int32(1), int32(2))
	defer r1.Release()
	r2 := build(int32(3))
	defer r2.Release()

	table, err := NewTableFromRecords(schema, []*Record{r1, r2})
	require.NoError(t, err)
	defer table.Release()

	assert.Equal(t, int64(3), table.NumRows())
	assert.Equal(t, int64(1), table.NumCols())

	col := table.Column(0)
	assert.Equal(t, "a", col.Name())
	assert.Equal(t, 2, len(col.Data().Chunks()))
	v, err := col.Data().ValueAt(2)
	require.NoError(t, err)
	assert.Equal(t, int32(3), v)
}
