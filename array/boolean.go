// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package array

import (
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/solidcoredata/arrow/arrow"
	"github.com/solidcoredata/arrow/internal/bitutil"
	"github.com/solidcoredata/arrow/memory"
)

// Boolean is a read-only facade over bit packed boolean data.
type Boolean struct {
	array
	values []byte
}

func NewBooleanData(data *Data) *Boolean {
	a := &Boolean{array: array{refCount: 1}}
	a.setData(data)
	a.values = valuesBytes(data)
	return a
}

func (a *Boolean) Value(i int) bool { return bitutil.BitIsSet(a.values, i) }

func (a *Boolean) getOneForIndex(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	return a.Value(i)
}

func (a *Boolean) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < a.Len(); i++ {
		if i > 0 {
			b.WriteString(" ")
		}
		switch {
		case a.IsNull(i):
			b.WriteString(NullValueStr)
		default:
			b.WriteString(strconv.FormatBool(a.Value(i)))
		}
	}
	b.WriteString("]")
	return b.String()
}

// BooleanBuilder packs values into a bitmap alongside the validity bitmap.
type BooleanBuilder struct {
	builder
	data    *memory.Buffer
	rawData []byte
}

func NewBooleanBuilder(mem memory.Allocator) *BooleanBuilder {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	return &BooleanBuilder{builder: builder{refCount: 1, mem: mem}}
}

func (b *BooleanBuilder) Type() arrow.DataType { return arrow.FixedWidthTypes.Boolean }

func (b *BooleanBuilder) Release() {
	if atomic.AddInt64(&b.refCount, -1) == 0 {
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
}

func (b *BooleanBuilder) initData(capacity int) {
	b.builder.init(capacity)
	b.data = memory.NewResizableBuffer(b.mem)
	b.data.Resize(int(bitutil.BytesForBits(int64(capacity))))
	b.rawData = b.data.Bytes()
}

func (b *BooleanBuilder) resizeData(n int) {
	if n < minBuilderCapacity {
		n = minBuilderCapacity
	}
	if b.data == nil {
		b.initData(n)
		return
	}
	b.builder.resize(n, b.initData)
	b.data.Resize(int(bitutil.BytesForBits(int64(n))))
	b.rawData = b.data.Bytes()
}

func (b *BooleanBuilder) reserveData(n int) {
	b.builder.reserve(n, b.resizeData)
	if b.data == nil || b.data.Len() < int(bitutil.BytesForBits(int64(b.length+n))) {
		b.resizeData(b.length + n)
	}
}

func (b *BooleanBuilder) Append(v bool) {
	b.reserveData(1)
	bitutil.SetBitTo(b.rawData, b.length, v)
	b.unsafeAppendBoolToBitmap(true)
}

func (b *BooleanBuilder) AppendNull() {
	b.reserveData(1)
	bitutil.ClearBit(b.rawData, b.length)
	b.unsafeAppendBoolToBitmap(false)
}

func (b *BooleanBuilder) AppendAny(v interface{}) {
	switch v := v.(type) {
	case nil:
		b.AppendNull()
	case bool:
		b.Append(v)
	}
}

func (b *BooleanBuilder) NewArray() Interface {
	if b.data != nil {
		b.data.Resize(int(bitutil.BytesForBits(int64(b.length))))
	}
	values := b.data
	b.data = nil
	b.rawData = nil
	validity, length, nulls := b.finishBitmap()
	data := newDataFromBuffers(arrow.FixedWidthTypes.Boolean, length, nulls, []*memory.Buffer{validity, values}, nil)
	defer data.Release()
	return NewBooleanData(data)
}
