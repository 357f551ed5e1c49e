// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package array

import (
	"sync/atomic"

	"github.com/solidcoredata/arrow/arrow"
	"github.com/solidcoredata/arrow/internal/bitutil"
)

// Interface is the read-side surface shared by every concrete array. The
// set of implementations is closed; dispatch runs on the stored data type,
// never on reflection.
type Interface interface {
	DataType() arrow.DataType
	Len() int
	NullN() int
	IsNull(i int) bool
	IsValid(i int) bool
	Data() *Data
	Retain()
	Release()
	String() string

	// getOneForIndex returns the dynamically typed value at slot i, nil for
	// a null slot. Bounds are the caller's responsibility; ValueAt is the
	// checked entry point.
	getOneForIndex(i int) interface{}
}

// ValueAt is the checked dynamic read: it fails with OutOfBounds past the
// array length, and yields nil (never a default) for a null slot.
func ValueAt(arr Interface, i int) (interface{}, error) {
	if i < 0 || i >= arr.Len() {
		return nil, arrow.ErrOutOfBounds(i)
	}
	return arr.getOneForIndex(i), nil
}

// array is embedded by every concrete array kind.
type array struct {
	refCount        int64
	data            *Data
	nullBitmapBytes []byte
}

func (a *array) setData(data *Data) {
	data.Retain()
	if a.data != nil {
		a.data.Release()
	}
	a.data = data
	a.nullBitmapBytes = nil
	if len(data.buffers) > 0 && data.buffers[0] != nil {
		a.nullBitmapBytes = data.buffers[0].Bytes()
	}
}

func (a *array) DataType() arrow.DataType { return a.data.dtype }
func (a *array) Len() int                 { return a.data.length }
func (a *array) NullN() int               { return a.data.nulls }
func (a *array) Data() *Data              { return a.data }

// IsNull reports whether slot i is null. A missing or zero-length validity
// buffer means every slot is valid.
func (a *array) IsNull(i int) bool {
	return a.data.nulls > 0 && len(a.nullBitmapBytes) > 0 &&
		!bitutil.BitIsSet(a.nullBitmapBytes, i)
}

func (a *array) IsValid(i int) bool { return !a.IsNull(i) }

func (a *array) Retain() {
	atomic.AddInt64(&a.refCount, 1)
}

func (a *array) Release() {
	if atomic.AddInt64(&a.refCount, -1) == 0 && a.data != nil {
		a.data.Release()
		a.data = nil
		a.nullBitmapBytes = nil
	}
}

// MakeFromData constructs the concrete array kind for data's type. The
// variant set is fixed; an unhandled tag is a programming error and panics.
func MakeFromData(data *Data) Interface {
	switch data.dtype.ID() {
	case arrow.NULL:
		return NewNullData(data)
	case arrow.BOOL:
		return NewBooleanData(data)
	case arrow.INT8:
		return NewInt8Data(data)
	case arrow.INT16:
		return NewInt16Data(data)
	case arrow.INT32:
		return NewInt32Data(data)
	case arrow.INT64:
		return NewInt64Data(data)
	case arrow.UINT8:
		return NewUint8Data(data)
	case arrow.UINT16:
		return NewUint16Data(data)
	case arrow.UINT32:
		return NewUint32Data(data)
	case arrow.UINT64:
		return NewUint64Data(data)
	case arrow.FLOAT16:
		return NewFloat16Data(data)
	case arrow.FLOAT32:
		return NewFloat32Data(data)
	case arrow.FLOAT64:
		return NewFloat64Data(data)
	case arrow.STRING:
		return NewStringData(data)
	case arrow.BINARY:
		return NewBinaryData(data)
	case arrow.LARGE_STRING:
		return NewLargeStringData(data)
	case arrow.LARGE_BINARY:
		return NewLargeBinaryData(data)
	case arrow.FIXED_SIZE_BINARY:
		return NewFixedSizeBinaryData(data)
	case arrow.DATE32:
		return NewDate32Data(data)
	case arrow.DATE64:
		return NewDate64Data(data)
	case arrow.TIME32:
		return NewTime32Data(data)
	case arrow.TIME64:
		return NewTime64Data(data)
	case arrow.TIMESTAMP:
		return NewTimestampData(data)
	case arrow.DURATION:
		return NewDurationData(data)
	case arrow.LIST:
		return NewListData(data)
	case arrow.FIXED_SIZE_LIST:
		return NewFixedSizeListData(data)
	case arrow.STRUCT:
		return NewStructData(data)
	}
	panic("array: no array kind for type " + data.dtype.String())
}
