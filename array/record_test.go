// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package array

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solidcoredata/arrow/arrow"
	"github.com/solidcoredata/arrow/memory"
)

func TestRecordBuilder(t *testing.T) {
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "a", Type: arrow.PrimitiveTypes.Int32, Nullable: true},
		{Name: "s", Type: arrow.BinaryTypes.String, Nullable: true},
	}, nil)

	b, err := NewRecordBuilder(memory.NewGoAllocator(), schema)
	require.NoError(t, err)
	defer b.Release()

	b.Field(0).(*Int32Builder).Append(1)
	b.Field(1).(*StringBuilder).Append("one")
	b.AppendRow(nil, nil)

	rec, err := b.NewRecord()
	require.NoError(t, err)
	defer rec.Release()

	assert.Equal(t, int64(2), rec.NumRows())
	assert.Equal(t, int64(2), rec.NumCols())
	assert.Equal(t, "a", rec.ColumnName(0))
	assert.True(t, rec.Schema().Equal(schema))
	assert.True(t, rec.Column(0).(*Int32).IsNull(1))
}

// a non-nullable field rejects a column holding nulls when the batch is
// finished, citing the field and the observed count
func TestRecordNonNullableWithNulls(t *testing.T) {
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "a", Type: arrow.PrimitiveTypes.Int32, Nullable: false},
	}, nil)

	b, err := NewRecordBuilder(memory.NewGoAllocator(), schema)
	require.NoError(t, err)
	defer b.Release()

	b.Field(0).(*Int32Builder).Append(1)
	b.Field(0).(*Int32Builder).AppendNull()

	_, err = b.NewRecord()
	require.Error(t, err)
	assert.True(t, arrow.IsInvalid(err))
	assert.True(t, strings.Contains(err.Error(), `"a"`), "error should name the field: %v", err)
	assert.True(t, strings.Contains(err.Error(), "1"), "error should carry the null count: %v", err)
}

func TestRecordLengthMismatch(t *testing.T) {
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "a", Type: arrow.PrimitiveTypes.Int32, Nullable: true},
		{Name: "b", Type: arrow.PrimitiveTypes.Int32, Nullable: true},
	}, nil)

	mem := memory.NewGoAllocator()
	ab := NewInt32Builder(mem)
	ab.Append(1)
	ab.Append(2)
	bb := NewInt32Builder(mem)
	bb.Append(1)

	colA, colB := ab.NewArray(), bb.NewArray()
	defer colA.Release()
	defer colB.Release()

	_, err := NewRecordBatch(schema, []Interface{colA, colB})
	require.Error(t, err)
	assert.True(t, arrow.IsInvalid(err))
}

func TestRecordTypeMismatch(t *testing.T) {
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "a", Type: arrow.BinaryTypes.String, Nullable: true},
	}, nil)

	b := NewInt32Builder(memory.NewGoAllocator())
	b.Append(1)
	col := b.NewArray()
	defer col.Release()

	_, err := NewRecordBatch(schema, []Interface{col})
	require.Error(t, err)
	assert.True(t, arrow.IsInvalid(err))
}

func TestRecordEqual(t *testing.T) {
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

	r1 := build(int32(1), nil, int32(3))
	defer r1.Release()
	r2 := build(int32(1), nil, int32(3))
	defer r2.Release()
	r3 := build(int32(1), int32(2), int32(3))
	defer r3.Release()

	assert.True(t, RecordEqual(r1, r2))
	assert.False(t, RecordEqual(r1, r3))
}
