// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package array

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/solidcoredata/arrow/arrow"
	"github.com/solidcoredata/arrow/memory"
)

// binaryBuilder grows a validity bitmap, an offsets buffer of length+1
// entries with offsets[0] = 0, and a byte blob. A null append repeats the
// current offset. The offset width is 4 for Binary and String, 8 for the
// large variants.
type binaryBuilder struct {
	builder
	dtype       arrow.DataType
	offsetWidth int
	offsets     *memory.Buffer
	blob        *memory.Buffer
	rawOffsets  []byte
}

func (b *binaryBuilder) Type() arrow.DataType { return b.dtype }

func (b *binaryBuilder) Release() {
	if atomic.AddInt64(&b.refCount, -1) == 0 {
		if b.nullBitmap != nil {
			b.nullBitmap.Release()
			b.nullBitmap = nil
		}
		if b.offsets != nil {
			b.offsets.Release()
			b.offsets = nil
			b.rawOffsets = nil
		}
		if b.blob != nil {
			b.blob.Release()
			b.blob = nil
		}
	}
}

func (b *binaryBuilder) initData(capacity int) {
	b.builder.init(capacity)
	b.offsets = memory.NewResizableBuffer(b.mem)
	b.offsets.Resize((capacity + 1) * b.offsetWidth)
	b.rawOffsets = b.offsets.Bytes()
	if b.blob == nil {
		b.blob = memory.NewResizableBuffer(b.mem)
	}
}

func (b *binaryBuilder) resizeData(n int) {
	if n < minBuilderCapacity {
		n = minBuilderCapacity
	}
	if b.offsets == nil {
		b.initData(n)
		return
	}
	b.builder.resize(n, b.initData)
	b.offsets.Resize((n + 1) * b.offsetWidth)
	b.rawOffsets = b.offsets.Bytes()
}

func (b *binaryBuilder) reserveData(n int) {
	b.builder.reserve(n, b.resizeData)
	if b.offsets == nil || b.offsets.Len() < (b.length+n+1)*b.offsetWidth {
		b.resizeData(b.length + n)
	}
}

func (b *binaryBuilder) writeOffset(entry, offset int) {
	if b.offsetWidth == 8 {
		binary.LittleEndian.PutUint64(b.rawOffsets[entry*8:], uint64(offset))
		return
	}
	binary.LittleEndian.PutUint32(b.rawOffsets[entry*4:], uint32(offset))
}

func (b *binaryBuilder) appendBytes(v []byte) {
	b.reserveData(1)
	cur := b.blob.Len()
	b.blob.Resize(cur + len(v))
	copy(b.blob.Bytes()[cur:], v)
	b.writeOffset(b.length+1, b.blob.Len())
	b.unsafeAppendBoolToBitmap(true)
}

func (b *binaryBuilder) AppendNull() {
	b.reserveData(1)
	b.writeOffset(b.length+1, b.blob.Len())
	b.unsafeAppendBoolToBitmap(false)
}

func (b *binaryBuilder) finish() (validity, offsets, blob *memory.Buffer, length, nulls int) {
	if b.offsets == nil {
		b.initData(0)
	}
	b.offsets.Resize((b.length + 1) * b.offsetWidth)
	offsets, blob = b.offsets, b.blob
	b.offsets, b.blob, b.rawOffsets = nil, nil, nil
	validity, length, nulls = b.finishBitmap()
	return validity, offsets, blob, length, nulls
}

func (b *binaryBuilder) newData() *Data {
	validity, offsets, blob, length, nulls := b.finish()
	return newDataFromBuffers(b.dtype, length, nulls, []*memory.Buffer{validity, offsets, blob}, nil)
}

// BinaryBuilder accumulates opaque byte values.
type BinaryBuilder struct {
	binaryBuilder
}

func NewBinaryBuilder(mem memory.Allocator) *BinaryBuilder {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	return &BinaryBuilder{binaryBuilder{
		builder:     builder{refCount: 1, mem: mem},
		dtype:       arrow.BinaryTypes.Binary,
		offsetWidth: 4,
	}}
}

func (b *BinaryBuilder) Append(v []byte) { b.appendBytes(v) }

func (b *BinaryBuilder) AppendAny(v interface{}) {
	switch v := v.(type) {
	case nil:
		b.AppendNull()
	case []byte:
		b.Append(v)
	}
}

func (b *BinaryBuilder) NewArray() Interface {
	data := b.newData()
	defer data.Release()
	return NewBinaryData(data)
}

// StringBuilder accumulates UTF-8 values.
type StringBuilder struct {
	binaryBuilder
}

func NewStringBuilder(mem memory.Allocator) *StringBuilder {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	return &StringBuilder{binaryBuilder{
		builder:     builder{refCount: 1, mem: mem},
		dtype:       arrow.BinaryTypes.String,
		offsetWidth: 4,
	}}
}

func (b *StringBuilder) Append(v string) { b.appendBytes([]byte(v)) }

func (b *StringBuilder) AppendAny(v interface{}) {
	switch v := v.(type) {
	case nil:
		b.AppendNull()
	case string:
		b.Append(v)
	}
}

func (b *StringBuilder) NewArray() Interface {
	data := b.newData()
	defer data.Release()
	return NewStringData(data)
}

// LargeBinaryBuilder is BinaryBuilder with 64-bit offsets.
type LargeBinaryBuilder struct {
	binaryBuilder
}

func NewLargeBinaryBuilder(mem memory.Allocator) *LargeBinaryBuilder {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	return &LargeBinaryBuilder{binaryBuilder{
		builder:     builder{refCount: 1, mem: mem},
		dtype:       arrow.BinaryTypes.LargeBinary,
		offsetWidth: 8,
	}}
}

func (b *LargeBinaryBuilder) Append(v []byte) { b.appendBytes(v) }

func (b *LargeBinaryBuilder) AppendAny(v interface{}) {
	switch v := v.(type) {
	case nil:
		b.AppendNull()
	case []byte:
		b.Append(v)
	}
}

func (b *LargeBinaryBuilder) NewArray() Interface {
	data := b.newData()
	defer data.Release()
	return NewLargeBinaryData(data)
}

// LargeStringBuilder is StringBuilder with 64-bit offsets.
type LargeStringBuilder struct {
	binaryBuilder
}

func NewLargeStringBuilder(mem memory.Allocator) *LargeStringBuilder {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	return &LargeStringBuilder{binaryBuilder{
		builder:     builder{refCount: 1, mem: mem},
		dtype:       arrow.BinaryTypes.LargeString,
		offsetWidth: 8,
	}}
}

func (b *LargeStringBuilder) Append(v string) { b.appendBytes([]byte(v)) }

func (b *LargeStringBuilder) AppendAny(v interface{}) {
	switch v := v.(type) {
	case nil:
		b.AppendNull()
	case string:
		b.Append(v)
	}
}

func (b *LargeStringBuilder) NewArray() Interface {
	data := b.newData()
	defer data.Release()
	return NewLargeStringData(data)
}

// FixedSizeBinaryBuilder accumulates byte values of one fixed width. Values
// of the wrong width append nothing.
type FixedSizeBinaryBuilder struct {
	fixedWidthBuilder
	dtype *arrow.FixedSizeBinaryType
}

func NewFixedSizeBinaryBuilder(mem memory.Allocator, dtype *arrow.FixedSizeBinaryType) *FixedSizeBinaryBuilder {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	return &FixedSizeBinaryBuilder{
		fixedWidthBuilder: fixedWidthBuilder{builder: builder{refCount: 1, mem: mem}, stride: dtype.ByteWidth},
		dtype:             dtype,
	}
}

func (b *FixedSizeBinaryBuilder) Type() arrow.DataType { return b.dtype }

func (b *FixedSizeBinaryBuilder) Append(v []byte) {
	if len(v) != b.dtype.ByteWidth {
		return
	}
	b.appendRaw(v)
}

func (b *FixedSizeBinaryBuilder) AppendAny(v interface{}) {
	switch v := v.(type) {
	case nil:
		b.AppendNull()
	case []byte:
		b.Append(v)
	}
}

func (b *FixedSizeBinaryBuilder) NewArray() Interface {
	validity, values, length, nulls := b.finish()
	data := newDataFromBuffers(b.dtype, length, nulls, []*memory.Buffer{validity, values}, nil)
	defer data.Release()
	return NewFixedSizeBinaryData(data)
}
