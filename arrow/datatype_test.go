// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arrow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrides(t *testing.T) {
	tests := []struct {
		dt   DataType
		want int
	}{
		{PrimitiveTypes.Int8, 1},
		{PrimitiveTypes.Int16, 2},
		{PrimitiveTypes.Int32, 4},
		{PrimitiveTypes.Int64, 8},
		{PrimitiveTypes.Uint8, 1},
		{PrimitiveTypes.Float16, 2},
		{PrimitiveTypes.Float32, 4},
		{PrimitiveTypes.Float64, 8},
		{PrimitiveTypes.Date32, 4},
		{PrimitiveTypes.Date64, 8},
		{&TimestampType{Unit: Microsecond}, 8},
		{&FixedSizeBinaryType{ByteWidth: 12}, 12},
		// variable and nested types have no stride; callers must not
		// multiply by it
		{BinaryTypes.String, 0},
		{BinaryTypes.Binary, 0},
		{BinaryTypes.LargeString, 0},
		{ListOf(PrimitiveTypes.Int32), 0},
		{StructOf(Field{Name: "a", Type: PrimitiveTypes.Int32}), 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.dt.Stride(), "stride of %v", tc.dt)
	}
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsNumeric(INT32))
	assert.True(t, IsNumeric(FLOAT16))
	assert.False(t, IsNumeric(STRING))
	assert.True(t, IsTemporal(TIMESTAMP))
	assert.True(t, IsTemporal(DURATION))
	assert.False(t, IsTemporal(INT64))
	assert.True(t, IsVariable(STRING))
	assert.True(t, IsVariable(LARGE_BINARY))
	assert.False(t, IsVariable(FIXED_SIZE_BINARY))
	assert.True(t, IsNested(LIST))
	assert.True(t, IsNested(STRUCT))
	assert.False(t, IsNested(BINARY))
	assert.True(t, IsFloating(FLOAT64))
	assert.False(t, IsFloating(INT64))
	assert.True(t, IsDictionaryKey(INT32))
	assert.False(t, IsDictionaryKey(FLOAT32))
}

func TestTypeEqual(t *testing.T) {
	assert.True(t, TypeEqual(PrimitiveTypes.Int32, &Int32Type{}))
	assert.False(t, TypeEqual(PrimitiveTypes.Int32, PrimitiveTypes.Uint32))
	assert.True(t, TypeEqual(
		&TimestampType{Unit: Millisecond, TimeZone: "UTC"},
		&TimestampType{Unit: Millisecond, TimeZone: "UTC"},
	))
	assert.False(t, TypeEqual(
		&TimestampType{Unit: Millisecond},
		&TimestampType{Unit: Nanosecond},
	))
	assert.True(t, TypeEqual(ListOf(PrimitiveTypes.Int32), ListOf(PrimitiveTypes.Int32)))
	assert.False(t, TypeEqual(ListOf(PrimitiveTypes.Int32), ListOf(PrimitiveTypes.Int64)))
	assert.True(t, TypeEqual(
		StructOf(Field{Name: "x", Type: PrimitiveTypes.Int32}),
		StructOf(Field{Name: "x", Type: PrimitiveTypes.Int32}),
	))
	assert.False(t, TypeEqual(
		StructOf(Field{Name: "x", Type: PrimitiveTypes.Int32}),
		StructOf(Field{Name: "y", Type: PrimitiveTypes.Int32}),
	))

	// dictionary ordering is ignored
	a := &DictionaryType{IndexType: PrimitiveTypes.Int32, ValueType: BinaryTypes.String, Ordered: true}
	b := &DictionaryType{IndexType: PrimitiveTypes.Int32, ValueType: BinaryTypes.String, Ordered: false}
	assert.True(t, TypeEqual(a, b))
}

func TestTimestampToTime(t *testing.T) {
	ts := &TimestampType{Unit: Second}
	v, err := ts.ToTime(1)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), v.Unix())

	bad := &TimestampType{Unit: Second, TimeZone: "Not/AZone"}
	_, err = bad.ToTime(1)
	assert.Error(t, err)
	assert.True(t, IsInvalid(err))
}
