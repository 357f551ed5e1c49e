// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package array

import (
	"encoding/binary"
	"strings"
	"sync/atomic"

	"github.com/solidcoredata/arrow/arrow"
	"github.com/solidcoredata/arrow/memory"
)

// List is a read-only facade over variable length sequences: a validity
// bitmap, 32-bit offsets, and one child array holding every item.
type List struct {
	array
	offsets []byte
	values  Interface
}

func NewListData(data *Data) *List {
	a := &List{array: array{refCount: 1}}
	a.setData(data)
	a.offsets = offsetsBytes(data)
	a.values = MakeFromData(data.children[0])
	return a
}

// ListValues returns the child array shared by every slot.
func (a *List) ListValues() Interface { return a.values }

func (a *List) ValueOffset(i int) int32 {
	return int32(binary.LittleEndian.Uint32(a.offsets[i*4:]))
}

// Value returns the items of slot i, nulls included, as dynamic values.
func (a *List) Value(i int) []interface{} {
	beg, end := int(a.ValueOffset(i)), int(a.ValueOffset(i+1))
	out := make([]interface{}, 0, end-beg)
	for j := beg; j < end; j++ {
		out = append(out, a.values.getOneForIndex(j))
	}
	return out
}

func (a *List) getOneForIndex(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	return a.Value(i)
}

func (a *List) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < a.Len(); i++ {
		if i > 0 {
			b.WriteString(" ")
		}
		if a.IsNull(i) {
			b.WriteString(NullValueStr)
			continue
		}
		writeDynamicSeq(&b, a.Value(i))
	}
	b.WriteString("]")
	return b.String()
}

func (a *List) Release() {
	if atomic.AddInt64(&a.refCount, -1) == 0 {
		a.values.Release()
		a.data.Release()
		a.data = nil
		a.nullBitmapBytes = nil
		a.offsets = nil
	}
}

// FixedSizeList is a read-only facade over sequences of exactly n items per
// slot; there is no offsets buffer.
type FixedSizeList struct {
	array
	n      int
	values Interface
}

func NewFixedSizeListData(data *Data) *FixedSizeList {
	a := &FixedSizeList{array: array{refCount: 1}}
	a.setData(data)
	a.n = int(data.dtype.(*arrow.FixedSizeListType).Len())
	a.values = MakeFromData(data.children[0])
	return a
}

func (a *FixedSizeList) ListValues() Interface { return a.values }

func (a *FixedSizeList) Value(i int) []interface{} {
	out := make([]interface{}, 0, a.n)
	for j := i * a.n; j < (i+1)*a.n; j++ {
		out = append(out, a.values.getOneForIndex(j))
	}
	return out
}

func (a *FixedSizeList) getOneForIndex(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	return a.Value(i)
}

func (a *FixedSizeList) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < a.Len(); i++ {
		if i > 0 {
			b.WriteString(" ")
		}
		if a.IsNull(i) {
			b.WriteString(NullValueStr)
			continue
		}
		writeDynamicSeq(&b, a.Value(i))
	}
	b.WriteString("]")
	return b.String()
}

func (a *FixedSizeList) Release() {
	if atomic.AddInt64(&a.refCount, -1) == 0 {
		a.values.Release()
		a.data.Release()
		a.data = nil
		a.nullBitmapBytes = nil
	}
}

// ListBuilder mirrors the variable length builder but has no blob of its
// own: appending a list of count n advances the end offset by n and pushes
// the items through the single child builder.
type ListBuilder struct {
	builder
	dtype      *arrow.ListType
	values     Builder
	offsets    *memory.Buffer
	rawOffsets []byte
}

// NewListBuilder builds lists of etype items.
func NewListBuilder(mem memory.Allocator, etype arrow.DataType) (*ListBuilder, error) {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	valueBldr, err := NewBuilder(mem, etype)
	if err != nil {
		return nil, err
	}
	return newListBuilder(mem, arrow.ListOf(etype), valueBldr), nil
}

func newListBuilder(mem memory.Allocator, dtype *arrow.ListType, values Builder) *ListBuilder {
	return &ListBuilder{
		builder: builder{refCount: 1, mem: mem},
		dtype:   dtype,
		values:  values,
	}
}

func (b *ListBuilder) Type() arrow.DataType { return b.dtype }

// ValueBuilder returns the child builder; items of the current list are
// appended through it after Append(true).
func (b *ListBuilder) ValueBuilder() Builder { return b.values }

func (b *ListBuilder) Release() {
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
		b.values.Release()
	}
}

func (b *ListBuilder) initData(capacity int) {
	b.builder.init(capacity)
	b.offsets = memory.NewResizableBuffer(b.mem)
	b.offsets.Resize((capacity + 1) * 4)
	b.rawOffsets = b.offsets.Bytes()
}

func (b *ListBuilder) resizeData(n int) {
	if n < minBuilderCapacity {
		n = minBuilderCapacity
	}
	if b.offsets == nil {
		b.initData(n)
		return
	}
	b.builder.resize(n, b.initData)
	b.offsets.Resize((n + 1) * 4)
	b.rawOffsets = b.offsets.Bytes()
}

func (b *ListBuilder) reserveData(n int) {
	b.builder.reserve(n, b.resizeData)
	if b.offsets == nil || b.offsets.Len() < (b.length+n+1)*4 {
		b.resizeData(b.length + n)
	}
}

func (b *ListBuilder) writeOffset(entry, offset int) {
	binary.LittleEndian.PutUint32(b.rawOffsets[entry*4:], uint32(offset))
}

// Append starts a new list slot; the slot's items follow through the value
// builder. A false valid marks the slot null.
func (b *ListBuilder) Append(valid bool) {
	b.reserveData(1)
	b.writeOffset(b.length, b.values.Len())
	b.unsafeAppendBoolToBitmap(valid)
}

func (b *ListBuilder) AppendNull() { b.Append(false) }

func (b *ListBuilder) AppendAny(v interface{}) {
	switch v := v.(type) {
	case nil:
		b.AppendNull()
	case []interface{}:
		b.Append(true)
		for _, item := range v {
			b.values.AppendAny(item)
		}
	}
}

func (b *ListBuilder) NewArray() Interface {
	if b.offsets == nil {
		b.initData(0)
	}
	b.offsets.Resize((b.length + 1) * 4)
	b.rawOffsets = b.offsets.Bytes()
	b.writeOffset(b.length, b.values.Len())

	child := b.values.NewArray()
	defer child.Release()

	offsets := b.offsets
	b.offsets, b.rawOffsets = nil, nil
	validity, length, nulls := b.finishBitmap()

	childData := child.Data()
	childData.Retain()
	data := newDataFromBuffers(b.dtype, length, nulls, []*memory.Buffer{validity, offsets}, []*Data{childData})
	defer data.Release()
	return NewListData(data)
}

// FixedSizeListBuilder appends exactly n child values per slot. A null slot
// still appends n child nulls so the child length stays n times the parent
// length.
type FixedSizeListBuilder struct {
	builder
	dtype  *arrow.FixedSizeListType
	n      int
	values Builder
}

func NewFixedSizeListBuilder(mem memory.Allocator, n int32, etype arrow.DataType) (*FixedSizeListBuilder, error) {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	valueBldr, err := NewBuilder(mem, etype)
	if err != nil {
		return nil, err
	}
	return &FixedSizeListBuilder{
		builder: builder{refCount: 1, mem: mem},
		dtype:   arrow.FixedSizeListOf(n, etype),
		n:       int(n),
		values:  valueBldr,
	}, nil
}

func (b *FixedSizeListBuilder) Type() arrow.DataType  { return b.dtype }
func (b *FixedSizeListBuilder) ValueBuilder() Builder { return b.values }

func (b *FixedSizeListBuilder) Release() {
	if atomic.AddInt64(&b.refCount, -1) == 0 {
		if b.nullBitmap != nil {
			b.nullBitmap.Release()
			b.nullBitmap = nil
		}
		b.values.Release()
	}
}

func (b *FixedSizeListBuilder) Append(valid bool) {
	b.reserve(1, func(n int) { b.resize(n, b.init) })
	b.unsafeAppendBoolToBitmap(valid)
}

func (b *FixedSizeListBuilder) AppendNull() {
	b.Append(false)
	for i := 0; i < b.n; i++ {
		b.values.AppendNull()
	}
}

func (b *FixedSizeListBuilder) AppendAny(v interface{}) {
	switch v := v.(type) {
	case nil:
		b.AppendNull()
	case []interface{}:
		if len(v) != b.n {
			return
		}
		b.Append(true)
		for _, item := range v {
			b.values.AppendAny(item)
		}
	}
}

func (b *FixedSizeListBuilder) NewArray() Interface {
	child := b.values.NewArray()
	defer child.Release()

	validity, length, nulls := b.finishBitmap()
	childData := child.Data()
	childData.Retain()
	data := newDataFromBuffers(b.dtype, length, nulls, []*memory.Buffer{validity}, []*Data{childData})
	defer data.Release()
	return NewFixedSizeListData(data)
}

// writeDynamicSeq prints a dynamic value sequence in the same space
// separated form the typed arrays use.
func writeDynamicSeq(b *strings.Builder, values []interface{}) {
	b.WriteString("[")
	for i, v := range values {
		if i > 0 {
			b.WriteString(" ")
		}
		writeDynamicValue(b, v)
	}
	b.WriteString("]")
}
