// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package array

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/solidcoredata/arrow/arrow"
	"github.com/solidcoredata/arrow/memory"
)

// Struct is a read-only facade over one child array per field plus a
// struct-level validity bitmap.
type Struct struct {
	array
	fields []Interface
}

func NewStructData(data *Data) *Struct {
	a := &Struct{array: array{refCount: 1}}
	a.setData(data)
	a.fields = make([]Interface, len(data.children))
	for i, child := range data.children {
		a.fields[i] = MakeFromData(child)
	}
	return a
}

func (a *Struct) NumField() int         { return len(a.fields) }
func (a *Struct) Field(i int) Interface { return a.fields[i] }

// Value returns the per-field values of row i in field order.
func (a *Struct) Value(i int) []interface{} {
	out := make([]interface{}, len(a.fields))
	for j, f := range a.fields {
		out[j] = f.getOneForIndex(i)
	}
	return out
}

func (a *Struct) getOneForIndex(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	return a.Value(i)
}

func (a *Struct) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, f := range a.fields {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(f.String())
	}
	b.WriteString("}")
	return b.String()
}

func (a *Struct) Release() {
	if atomic.AddInt64(&a.refCount, -1) == 0 {
		for _, f := range a.fields {
			f.Release()
		}
		a.data.Release()
		a.data = nil
		a.nullBitmapBytes = nil
	}
}

// StructBuilder owns one child builder per field. A row appends its values
// into the children, then records validity at the struct level.
type StructBuilder struct {
	builder
	dtype    *arrow.StructType
	children []Builder
}

func NewStructBuilder(mem memory.Allocator, dtype *arrow.StructType) (*StructBuilder, error) {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	children := make([]Builder, dtype.NumFields())
	for i, f := range dtype.Fields() {
		child, err := NewBuilder(mem, f.Type)
		if err != nil {
			return nil, err
		}
		children[i] = child
	}
	return NewStructBuilderWithChildren(mem, dtype, children), nil
}

// NewStructBuilderWithChildren wires already-built child builders in field
// order, so decomposable rows can be assembled field by field.
func NewStructBuilderWithChildren(mem memory.Allocator, dtype *arrow.StructType, children []Builder) *StructBuilder {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	return &StructBuilder{
		builder:  builder{refCount: 1, mem: mem},
		dtype:    dtype,
		children: children,
	}
}

func (b *StructBuilder) Type() arrow.DataType { return b.dtype }

func (b *StructBuilder) NumField() int              { return len(b.children) }
func (b *StructBuilder) FieldBuilder(i int) Builder { return b.children[i] }

func (b *StructBuilder) Release() {
	if atomic.AddInt64(&b.refCount, -1) == 0 {
		if b.nullBitmap != nil {
			b.nullBitmap.Release()
			b.nullBitmap = nil
		}
		for _, child := range b.children {
			child.Release()
		}
	}
}

// Append records validity for the next row; the row's field values go
// through the child builders.
func (b *StructBuilder) Append(valid bool) {
	b.reserve(1, func(n int) { b.resize(n, b.init) })
	b.unsafeAppendBoolToBitmap(valid)
}

// AppendNull appends a null row, including a null in every child so the
// children stay as long as the struct.
func (b *StructBuilder) AppendNull() {
	b.Append(false)
	for _, child := range b.children {
		child.AppendNull()
	}
}

func (b *StructBuilder) AppendAny(v interface{}) {
	switch v := v.(type) {
	case nil:
		b.AppendNull()
	case []interface{}:
		if len(v) != len(b.children) {
			return
		}
		b.Append(true)
		for i, item := range v {
			b.children[i].AppendAny(item)
		}
	case map[string]interface{}:
		b.Append(true)
		for i, f := range b.dtype.Fields() {
			b.children[i].AppendAny(v[f.Name])
		}
	}
}

func (b *StructBuilder) NewArray() Interface {
	childData := make([]*Data, len(b.children))
	for i, child := range b.children {
		arr := child.NewArray()
		childData[i] = arr.Data()
		childData[i].Retain()
		arr.Release()
	}
	validity, length, nulls := b.finishBitmap()
	data := newDataFromBuffers(b.dtype, length, nulls, []*memory.Buffer{validity}, childData)
	defer data.Release()
	return NewStructData(data)
}

// writeDynamicValue prints one dynamic value: nil as (null), text and bytes
// quoted, nested sequences recursively, numerics in their natural form.
func writeDynamicValue(b *strings.Builder, v interface{}) {
	switch v := v.(type) {
	case nil:
		b.WriteString(NullValueStr)
	case string:
		fmt.Fprintf(b, "%q", v)
	case []byte:
		fmt.Fprintf(b, "%q", v)
	case []interface{}:
		writeDynamicSeq(b, v)
	default:
		fmt.Fprintf(b, "%v", v)
	}
}
