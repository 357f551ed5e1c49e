// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package arrow describes the logical types of the Arrow columnar format,
// along with the fields and schemas built from them.
package arrow

// Type is the tag of a logical type. The set is closed; code dispatching on
// it may assume no other values exist.
type Type int

const (
	NULL Type = iota
	BOOL
	UINT8
	INT8
	UINT16
	INT16
	UINT32
	INT32
	UINT64
	INT64
	FLOAT16
	FLOAT32
	FLOAT64
	STRING
	BINARY
	FIXED_SIZE_BINARY
	DATE32
	DATE64
	TIMESTAMP
	TIME32
	TIME64
	INTERVAL
	DECIMAL32
	DECIMAL64
	DECIMAL128
	DECIMAL256
	LIST
	STRUCT
	DICTIONARY
	MAP
	DURATION
	LARGE_STRING
	LARGE_BINARY
	LARGE_LIST
	FIXED_SIZE_LIST
	RUN_END_ENCODED
)

// DataType is a logical type together with its physical parameters.
type DataType interface {
	ID() Type
	Name() string

	// Stride is the byte size of a single fixed-width element. It is zero
	// for variable-length and nested types; callers must not multiply by
	// the stride for those.
	Stride() int

	// CDataFormat is the C-Data-Interface format string for the type
	// itself. Nested types report only their own head format; child
	// formats follow from the child fields.
	CDataFormat() string

	String() string
}

// IsVariable reports whether arrays of the type store values behind an
// offsets buffer.
func IsVariable(t Type) bool {
	switch t {
	case STRING, BINARY, LARGE_STRING, LARGE_BINARY:
		return true
	}
	return false
}

// IsNested reports whether arrays of the type hold child arrays.
func IsNested(t Type) bool {
	switch t {
	case LIST, LARGE_LIST, FIXED_SIZE_LIST, STRUCT, MAP, RUN_END_ENCODED:
		return true
	}
	return false
}

// IsNumeric reports whether the type is an integer or floating point type.
func IsNumeric(t Type) bool {
	switch t {
	case UINT8, INT8, UINT16, INT16, UINT32, INT32, UINT64, INT64,
		FLOAT16, FLOAT32, FLOAT64:
		return true
	}
	return false
}

// IsTemporal reports whether the type stores an instant, date, time of day,
// or elapsed time.
func IsTemporal(t Type) bool {
	switch t {
	case DATE32, DATE64, TIME32, TIME64, TIMESTAMP, DURATION, INTERVAL:
		return true
	}
	return false
}

// IsFloating reports whether the type is a floating point type.
func IsFloating(t Type) bool {
	switch t {
	case FLOAT16, FLOAT32, FLOAT64:
		return true
	}
	return false
}

// IsDictionaryKey reports whether the type may index a dictionary.
func IsDictionaryKey(t Type) bool {
	switch t {
	case UINT8, INT8, UINT16, INT16, UINT32, INT32, UINT64, INT64:
		return true
	}
	return false
}

// TypeEqual reports whether a and b describe the same logical type. The
// comparison recurses through nested types and ignores dictionary ordering.
func TypeEqual(a, b DataType) bool {
	switch {
	case a == nil || b == nil:
		return a == nil && b == nil
	case a.ID() != b.ID():
		return false
	}
	switch at := a.(type) {
	case *FixedSizeBinaryType:
		return at.ByteWidth == b.(*FixedSizeBinaryType).ByteWidth
	case *Time32Type:
		return at.Unit == b.(*Time32Type).Unit
	case *Time64Type:
		return at.Unit == b.(*Time64Type).Unit
	case *TimestampType:
		bt := b.(*TimestampType)
		return at.Unit == bt.Unit && at.TimeZone == bt.TimeZone
	case *DurationType:
		return at.Unit == b.(*DurationType).Unit
	case *IntervalType:
		return at.Unit == b.(*IntervalType).Unit
	case *Decimal32Type:
		bt := b.(*Decimal32Type)
		return at.Precision == bt.Precision && at.Scale == bt.Scale
	case *Decimal64Type:
		bt := b.(*Decimal64Type)
		return at.Precision == bt.Precision && at.Scale == bt.Scale
	case *Decimal128Type:
		bt := b.(*Decimal128Type)
		return at.Precision == bt.Precision && at.Scale == bt.Scale
	case *Decimal256Type:
		bt := b.(*Decimal256Type)
		return at.Precision == bt.Precision && at.Scale == bt.Scale
	case *ListType:
		return at.elem.typeAndNullEqual(b.(*ListType).elem)
	case *LargeListType:
		return at.elem.typeAndNullEqual(b.(*LargeListType).elem)
	case *FixedSizeListType:
		bt := b.(*FixedSizeListType)
		return at.n == bt.n && at.elem.typeAndNullEqual(bt.elem)
	case *StructType:
		bt := b.(*StructType)
		if len(at.fields) != len(bt.fields) {
			return false
		}
		for i := range at.fields {
			if at.fields[i].Name != bt.fields[i].Name ||
				!at.fields[i].typeAndNullEqual(bt.fields[i]) {
				return false
			}
		}
		return true
	case *MapType:
		bt := b.(*MapType)
		return at.KeysSorted == bt.KeysSorted && at.elem.typeAndNullEqual(bt.elem)
	case *DictionaryType:
		bt := b.(*DictionaryType)
		return TypeEqual(at.IndexType, bt.IndexType) && TypeEqual(at.ValueType, bt.ValueType)
	case *RunEndEncodedType:
		bt := b.(*RunEndEncodedType)
		return at.RunEnds.typeAndNullEqual(bt.RunEnds) && at.Values.typeAndNullEqual(bt.Values)
	default:
		return true
	}
}
