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

func TestNewBuilderSupported(t *testing.T) {
	mem := memory.NewGoAllocator()
	types := []arrow.DataType{
		arrow.Null,
		arrow.FixedWidthTypes.Boolean,
		arrow.PrimitiveTypes.Int8,
		arrow.PrimitiveTypes.Int16,
		arrow.PrimitiveTypes.Int32,
		arrow.PrimitiveTypes.Int64,
		arrow.PrimitiveTypes.Uint8,
		arrow.PrimitiveTypes.Uint16,
		arrow.PrimitiveTypes.Uint32,
		arrow.PrimitiveTypes.Uint64,
		arrow.PrimitiveTypes.Float16,
		arrow.PrimitiveTypes.Float32,
		arrow.PrimitiveTypes.Float64,
		arrow.BinaryTypes.String,
		arrow.BinaryTypes.Binary,
		arrow.BinaryTypes.LargeString,
		arrow.BinaryTypes.LargeBinary,
		&arrow.FixedSizeBinaryType{ByteWidth: 4},
		arrow.PrimitiveTypes.Date32,
		arrow.PrimitiveTypes.Date64,
		&arrow.Time32Type{Unit: arrow.Second},
		&arrow.Time64Type{Unit: arrow.Nanosecond},
		&arrow.TimestampType{Unit: arrow.Microsecond, TimeZone: "UTC"},
		&arrow.DurationType{Unit: arrow.Nanosecond},
		arrow.ListOf(arrow.PrimitiveTypes.Int32),
		arrow.FixedSizeListOf(2, arrow.PrimitiveTypes.Int32),
		arrow.StructOf(
			arrow.Field{Name: "x", Type: arrow.PrimitiveTypes.Int32},
			arrow.Field{Name: "y", Type: arrow.BinaryTypes.String, Nullable: true},
		),
	}
	for _, dt := range types {
		b, err := NewBuilder(mem, dt)
		require.NoError(t, err, "type %v", dt)
		assert.True(t, arrow.TypeEqual(dt, b.Type()), "type %v", dt)
		b.Release()
	}
}

func TestNewBuilderUnsupported(t *testing.T) {
	mem := memory.NewGoAllocator()
	for _, dt := range []arrow.DataType{
		&arrow.DictionaryType{IndexType: arrow.PrimitiveTypes.Int32, ValueType: arrow.BinaryTypes.String},
		arrow.MapOf(arrow.BinaryTypes.String, arrow.PrimitiveTypes.Int32),
		arrow.LargeListOf(arrow.PrimitiveTypes.Int32),
	} {
		_, err := NewBuilder(mem, dt)
		require.Error(t, err, "type %v", dt)
		assert.True(t, arrow.IsInvalid(err), "type %v", dt)
	}
}

// a mistyped AppendAny appends nothing; the mismatch surfaces from the
// consumer of the finished arrays
func TestAppendAnyMismatch(t *testing.T) {
	b := NewInt32Builder(memory.NewGoAllocator())
	defer b.Release()
	b.AppendAny(int32(7))
	b.AppendAny("not an int")
	b.AppendAny(nil)

	arr := b.NewArray().(*Int32)
	defer arr.Release()
	assert.Equal(t, 2, arr.Len())
	assert.Equal(t, int32(7), arr.Value(0))
	assert.True(t, arr.IsNull(1))
}

func TestBuilderReuseAfterNewArray(t *testing.T) {
	b := NewStringBuilder(memory.NewGoAllocator())
	defer b.Release()
	b.Append("one")
	first := b.NewArray()
	defer first.Release()

	b.Append("two")
	second := b.NewArray().(*String)
	defer second.Release()

	assert.Equal(t, 1, second.Len())
	assert.Equal(t, "two", second.Value(0))
}
