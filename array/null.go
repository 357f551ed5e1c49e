// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package array

import (
	"strings"

	"github.com/solidcoredata/arrow/arrow"
	"github.com/solidcoredata/arrow/memory"
)

// Null is an array of no physical storage; every slot is null.
type Null struct {
	array
}

func NewNullData(data *Data) *Null {
	a := &Null{array: array{refCount: 1}}
	a.setData(data)
	return a
}

func (a *Null) NullN() int         { return a.Len() }
func (a *Null) IsNull(i int) bool  { return true }
func (a *Null) IsValid(i int) bool { return false }

func (a *Null) getOneForIndex(i int) interface{} { return nil }

func (a *Null) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < a.Len(); i++ {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(NullValueStr)
	}
	b.WriteString("]")
	return b.String()
}

// NullBuilder counts appended slots; every append is a null.
type NullBuilder struct {
	builder
}

func NewNullBuilder(mem memory.Allocator) *NullBuilder {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	return &NullBuilder{builder: builder{refCount: 1, mem: mem}}
}

func (b *NullBuilder) Type() arrow.DataType { return arrow.Null }

func (b *NullBuilder) AppendNull() {
	b.length++
	b.nulls++
}

func (b *NullBuilder) AppendAny(v interface{}) {
	b.AppendNull()
}

func (b *NullBuilder) NewArray() Interface {
	data, err := NewData(arrow.Null, b.length, nil, nil, b.nulls)
	if err != nil {
		panic(err)
	}
	defer data.Release()
	b.reset()
	return NewNullData(data)
}
