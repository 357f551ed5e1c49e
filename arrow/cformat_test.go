// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arrow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCDataFormatTable(t *testing.T) {
	tests := []struct {
		dt   DataType
		want string
	}{
		{PrimitiveTypes.Int8, "c"},
		{PrimitiveTypes.Uint8, "C"},
		{PrimitiveTypes.Int16, "s"},
		{PrimitiveTypes.Uint16, "S"},
		{PrimitiveTypes.Int32, "i"},
		{PrimitiveTypes.Uint32, "I"},
		{PrimitiveTypes.Int64, "l"},
		{PrimitiveTypes.Uint64, "L"},
		{PrimitiveTypes.Float32, "f"},
		{PrimitiveTypes.Float64, "g"},
		{FixedWidthTypes.Boolean, "b"},
		{BinaryTypes.Binary, "z"},
		{BinaryTypes.String, "u"},
		{PrimitiveTypes.Date32, "tdD"},
		{PrimitiveTypes.Date64, "tdm"},
		{&Time32Type{Unit: Second}, "tts"},
		{&Time32Type{Unit: Millisecond}, "ttm"},
		{&Time64Type{Unit: Microsecond}, "ttu"},
		{&Time64Type{Unit: Nanosecond}, "ttn"},
		{&TimestampType{Unit: Second}, "tss"},
		{&TimestampType{Unit: Millisecond, TimeZone: "America/New_York"}, "tsm:America/New_York"},
		{StructOf(), "+s"},
		{ListOf(PrimitiveTypes.Int32), "+l"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.dt.CDataFormat(), "format of %v", tc.dt)
	}
}

// the format mapping round-trips for every supported type
func TestFromCDataFormat(t *testing.T) {
	types := []DataType{
		Null,
		FixedWidthTypes.Boolean,
		PrimitiveTypes.Int8, PrimitiveTypes.Uint8,
		PrimitiveTypes.Int16, PrimitiveTypes.Uint16,
		PrimitiveTypes.Int32, PrimitiveTypes.Uint32,
		PrimitiveTypes.Int64, PrimitiveTypes.Uint64,
		PrimitiveTypes.Float16, PrimitiveTypes.Float32, PrimitiveTypes.Float64,
		BinaryTypes.Binary, BinaryTypes.String,
		BinaryTypes.LargeBinary, BinaryTypes.LargeString,
		PrimitiveTypes.Date32, PrimitiveTypes.Date64,
		&Time32Type{Unit: Second},
		&Time32Type{Unit: Millisecond},
		&Time64Type{Unit: Microsecond},
		&Time64Type{Unit: Nanosecond},
		&TimestampType{Unit: Second},
		&TimestampType{Unit: Nanosecond, TimeZone: "UTC"},
		&DurationType{Unit: Millisecond},
		&IntervalType{Unit: YearMonthInterval},
		&FixedSizeBinaryType{ByteWidth: 16},
		&Decimal32Type{Precision: 7, Scale: 2},
		&Decimal64Type{Precision: 16, Scale: 4},
		&Decimal128Type{Precision: 38, Scale: 10},
		&Decimal256Type{Precision: 76, Scale: 20},
	}
	for _, dt := range types {
		got, err := FromCDataFormat(dt.CDataFormat())
		require.NoError(t, err, "format %q", dt.CDataFormat())
		assert.True(t, TypeEqual(dt, got), "round trip of %v via %q gave %v", dt, dt.CDataFormat(), got)
	}

	// nested head formats resolve to the head type only
	head, err := FromCDataFormat("+s")
	require.NoError(t, err)
	assert.Equal(t, STRUCT, head.ID())
	head, err = FromCDataFormat("+l")
	require.NoError(t, err)
	assert.Equal(t, LIST, head.ID())

	_, err = FromCDataFormat("nope")
	assert.Error(t, err)
}
