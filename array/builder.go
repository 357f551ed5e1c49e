// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package array

import (
	"sync/atomic"

	"github.com/solidcoredata/arrow/arrow"
	"github.com/solidcoredata/arrow/internal/bitutil"
	"github.com/solidcoredata/arrow/memory"
)

const minBuilderCapacity = 1 << 5

// NullValueStr is how a null slot prints.
const NullValueStr = "(null)"

// Builder accumulates scalar values into an array. Appends never fail;
// misuse of AppendAny appends nothing and the inconsistency surfaces when
// the finished array is validated by its consumer.
type Builder interface {
	Type() arrow.DataType
	Retain()
	Release()

	Len() int
	Cap() int
	NullN() int

	AppendNull()

	// AppendAny appends a dynamically typed value, down-casting by the
	// builder's type tag. A nil value appends null; a value of the wrong
	// type appends nothing.
	AppendAny(v interface{})

	// NewArray finishes the accumulated buffers into an array and resets
	// the builder for reuse.
	NewArray() Interface
}

// builder owns the growing validity bitmap and the slot accounting shared
// by every concrete builder.
type builder struct {
	refCount   int64
	mem        memory.Allocator
	nullBitmap *memory.Buffer
	nulls      int
	length     int
	capacity   int

	// offset is reserved for builders carved out of a shared parent; it
	// stays zero today.
	offset int
}

func (b *builder) Retain() {
	atomic.AddInt64(&b.refCount, 1)
}

func (b *builder) Release() {
	if atomic.AddInt64(&b.refCount, -1) == 0 {
		if b.nullBitmap != nil {
			b.nullBitmap.Release()
			b.nullBitmap = nil
		}
	}
}

func (b *builder) Len() int   { return b.length }
func (b *builder) Cap() int   { return b.capacity }
func (b *builder) NullN() int { return b.nulls }

func (b *builder) init(capacity int) {
	toAlloc := int(bitutil.BytesForBits(int64(capacity)))
	b.nullBitmap = memory.NewResizableBuffer(b.mem)
	b.nullBitmap.Resize(toAlloc)
	b.capacity = capacity
}

func (b *builder) reset() {
	if b.nullBitmap != nil {
		b.nullBitmap.Release()
		b.nullBitmap = nil
	}
	b.nulls = 0
	b.length = 0
	b.capacity = 0
}

func (b *builder) resize(newBits int, init func(int)) {
	if b.nullBitmap == nil {
		init(newBits)
		return
	}
	b.nullBitmap.Resize(int(bitutil.BytesForBits(int64(newBits))))
	b.capacity = newBits
}

// reserve grows the validity bitmap so elements more slots fit. Growth is
// geometric with factor 2, never below the minimum builder capacity.
func (b *builder) reserve(elements int, resize func(int)) {
	if b.nullBitmap == nil {
		b.init(b.capacity)
	}
	if b.length+elements > b.capacity {
		newCap := 2 * b.capacity
		if newCap < minBuilderCapacity {
			newCap = minBuilderCapacity
		}
		if newCap < b.length+elements {
			newCap = b.length + elements
		}
		resize(newCap)
	}
}

func (b *builder) unsafeAppendBoolToBitmap(isValid bool) {
	if isValid {
		bitutil.SetBit(b.nullBitmap.Bytes(), b.length)
	} else {
		b.nulls++
	}
	b.length++
}

// finishBitmap detaches the validity bitmap, sized to the built length, and
// resets the accounting.
func (b *builder) finishBitmap() (validity *memory.Buffer, length, nulls int) {
	length, nulls = b.length, b.nulls
	if b.nullBitmap != nil {
		b.nullBitmap.Resize(int(bitutil.BytesForBits(int64(length))))
	}
	validity = b.nullBitmap
	b.nullBitmap = nil
	b.nulls = 0
	b.length = 0
	b.capacity = 0
	return validity, length, nulls
}

// fixedWidthBuilder grows a values buffer of stride-sized elements next to
// the shared validity bitmap. A null append writes a zero element so the
// values buffer stays fully defined.
type fixedWidthBuilder struct {
	builder
	stride  int
	data    *memory.Buffer
	rawData []byte
}

func (b *fixedWidthBuilder) initData(capacity int) {
	b.builder.init(capacity)
	b.data = memory.NewResizableBuffer(b.mem)
	b.data.Resize(capacity * b.stride)
	b.rawData = b.data.Bytes()
}

func (b *fixedWidthBuilder) resizeData(n int) {
	if n < minBuilderCapacity {
		n = minBuilderCapacity
	}
	if b.data == nil {
		b.initData(n)
		return
	}
	b.builder.resize(n, b.initData)
	b.data.Resize(n * b.stride)
	b.rawData = b.data.Bytes()
}

func (b *fixedWidthBuilder) reserveData(n int) {
	b.builder.reserve(n, b.resizeData)
	if b.data == nil || b.data.Len() < (b.length+n)*b.stride {
		b.resizeData(b.length + n)
	}
}

// appendRaw copies one stride-sized element and marks it valid.
func (b *fixedWidthBuilder) appendRaw(v []byte) {
	b.reserveData(1)
	copy(b.rawData[b.length*b.stride:], v)
	b.unsafeAppendBoolToBitmap(true)
}

// AppendNull writes a zero element with the validity bit clear.
func (b *fixedWidthBuilder) AppendNull() {
	b.reserveData(1)
	memory.Set(b.rawData[b.length*b.stride:(b.length+1)*b.stride], 0)
	b.unsafeAppendBoolToBitmap(false)
}

// finish detaches [validity, values] sized to the built length.
func (b *fixedWidthBuilder) finish() (validity, values *memory.Buffer, length, nulls int) {
	if b.data != nil {
		b.data.Resize(b.length * b.stride)
	}
	values = b.data
	b.data = nil
	b.rawData = nil
	validity, length, nulls = b.finishBitmap()
	return validity, values, length, nulls
}

func (b *fixedWidthBuilder) releaseBuffers() {
	if b.nullBitmap != nil {
		b.nullBitmap.Release()
		b.nullBitmap = nil
	}
	if b.data != nil {
		b.data.Release()
		b.data = nil
		b.rawData = nil
	}
}

func (b *fixedWidthBuilder) Release() {
	if atomic.AddInt64(&b.refCount, -1) == 0 {
		b.releaseBuffers()
	}
}

// newDataFromBuffers wraps finished buffers as Data, releasing them after
// the Data has taken its references.
func newDataFromBuffers(dtype arrow.DataType, length, nulls int, buffers []*memory.Buffer, children []*Data) *Data {
	for i, buf := range buffers {
		if buf == nil {
			buffers[i] = memory.NewBufferBytes(nil)
		}
	}
	data, err := NewData(dtype, length, buffers, children, nulls)
	if err != nil {
		panic(err)
	}
	for _, buf := range buffers {
		buf.Release()
	}
	for _, child := range children {
		if child != nil {
			child.Release()
		}
	}
	return data
}

// NewBuilder returns the builder for dtype, or Invalid when the type has no
// builder in the supported set. Row-oriented ingestion resolves builders
// through this factory because it does not know value types at compile
// time.
func NewBuilder(mem memory.Allocator, dtype arrow.DataType) (Builder, error) {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	switch dt := dtype.(type) {
	case *arrow.NullType:
		return NewNullBuilder(mem), nil
	case *arrow.BooleanType:
		return NewBooleanBuilder(mem), nil
	case *arrow.Int8Type:
		return NewInt8Builder(mem), nil
	case *arrow.Int16Type:
		return NewInt16Builder(mem), nil
	case *arrow.Int32Type:
		return NewInt32Builder(mem), nil
	case *arrow.Int64Type:
		return NewInt64Builder(mem), nil
	case *arrow.Uint8Type:
		return NewUint8Builder(mem), nil
	case *arrow.Uint16Type:
		return NewUint16Builder(mem), nil
	case *arrow.Uint32Type:
		return NewUint32Builder(mem), nil
	case *arrow.Uint64Type:
		return NewUint64Builder(mem), nil
	case *arrow.Float16Type:
		return NewFloat16Builder(mem), nil
	case *arrow.Float32Type:
		return NewFloat32Builder(mem), nil
	case *arrow.Float64Type:
		return NewFloat64Builder(mem), nil
	case *arrow.StringType:
		return NewStringBuilder(mem), nil
	case *arrow.BinaryType:
		return NewBinaryBuilder(mem), nil
	case *arrow.LargeStringType:
		return NewLargeStringBuilder(mem), nil
	case *arrow.LargeBinaryType:
		return NewLargeBinaryBuilder(mem), nil
	case *arrow.FixedSizeBinaryType:
		return NewFixedSizeBinaryBuilder(mem, dt), nil
	case *arrow.Date32Type:
		return NewDate32Builder(mem), nil
	case *arrow.Date64Type:
		return NewDate64Builder(mem), nil
	case *arrow.Time32Type:
		return NewTime32Builder(mem, dt), nil
	case *arrow.Time64Type:
		return NewTime64Builder(mem, dt), nil
	case *arrow.TimestampType:
		return NewTimestampBuilder(mem, dt), nil
	case *arrow.DurationType:
		return NewDurationBuilder(mem, dt), nil
	case *arrow.ListType:
		valueBldr, err := NewBuilder(mem, dt.Elem())
		if err != nil {
			return nil, err
		}
		return newListBuilder(mem, dt, valueBldr), nil
	case *arrow.FixedSizeListType:
		return NewFixedSizeListBuilder(mem, dt.Len(), dt.Elem())
	case *arrow.StructType:
		children := make([]Builder, dt.NumFields())
		for i, f := range dt.Fields() {
			child, err := NewBuilder(mem, f.Type)
			if err != nil {
				return nil, err
			}
			children[i] = child
		}
		return NewStructBuilderWithChildren(mem, dt, children), nil
	}
	return nil, arrow.Invalidf("no builder for type %v", dtype)
}
