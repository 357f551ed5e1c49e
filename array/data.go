// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package array implements the typed column arrays of the Arrow columnar
// format, the builders that accumulate values into them, and the record
// batch and table groupings above them.
package array

import (
	"sync/atomic"

	"github.com/solidcoredata/arrow/arrow"
	"github.com/solidcoredata/arrow/internal/bitutil"
	"github.com/solidcoredata/arrow/memory"
)

// Data is the immutable carrier behind every array: a type, the physical
// buffers laid out as the type dictates, and child data for nested types.
// Data is value-semantic through reference counting; cloning an array
// duplicates references, never bytes.
type Data struct {
	refCount int64
	dtype    arrow.DataType
	nulls    int
	length   int
	buffers  []*memory.Buffer
	children []*Data
}

// NewData validates buffer and child arity against the physical layout of
// dtype and assembles the carrier. It retains a reference on every non-nil
// buffer and child.
func NewData(dtype arrow.DataType, length int, buffers []*memory.Buffer, children []*Data, nulls int) (*Data, error) {
	if dtype == nil {
		return nil, arrow.Invalidf("nil data type")
	}
	if err := validateLayout(dtype, len(buffers), len(children)); err != nil {
		return nil, err
	}
	for _, b := range buffers {
		if b != nil {
			b.Retain()
		}
	}
	for _, child := range children {
		if child != nil {
			child.Retain()
		}
	}
	return &Data{
		refCount: 1,
		dtype:    dtype,
		nulls:    nulls,
		length:   length,
		buffers:  buffers,
		children: children,
	}, nil
}

func validateLayout(dtype arrow.DataType, nbufs, nchildren int) error {
	wantBufs, wantChildren := 0, 0
	switch dt := dtype.(type) {
	case *arrow.NullType:
	case *arrow.ListType, *arrow.LargeListType:
		wantBufs, wantChildren = 2, 1
	case *arrow.FixedSizeListType:
		wantBufs, wantChildren = 1, 1
	case *arrow.StructType:
		wantBufs, wantChildren = 1, dt.NumFields()
	default:
		if arrow.IsVariable(dtype.ID()) {
			wantBufs = 3
		} else {
			wantBufs = 2
		}
	}
	if nbufs != wantBufs {
		return arrow.Invalidf("%v: have %d buffers, layout requires %d", dtype, nbufs, wantBufs)
	}
	if nchildren != wantChildren {
		return arrow.Invalidf("%v: have %d children, layout requires %d", dtype, nchildren, wantChildren)
	}
	return nil
}

// Retain increases the reference count by 1.
func (d *Data) Retain() {
	atomic.AddInt64(&d.refCount, 1)
}

// Release decreases the reference count by 1. The buffers and children are
// released when the count reaches zero.
func (d *Data) Release() {
	if atomic.AddInt64(&d.refCount, -1) != 0 {
		return
	}
	for _, b := range d.buffers {
		if b != nil {
			b.Release()
		}
	}
	for _, child := range d.children {
		if child != nil {
			child.Release()
		}
	}
	d.buffers, d.children = nil, nil
}

func (d *Data) DataType() arrow.DataType  { return d.dtype }
func (d *Data) Len() int                  { return d.length }
func (d *Data) NullN() int                { return d.nulls }
func (d *Data) Buffers() []*memory.Buffer { return d.buffers }
func (d *Data) Children() []*Data         { return d.children }

// IsNull reports whether slot i is null: the null count is nonzero, the
// validity buffer is present and non-empty, and it has bit i clear. A null
// count of zero, or a missing or zero-length validity buffer, means every
// slot is valid.
func (d *Data) IsNull(i int) bool {
	if d.nulls == 0 || len(d.buffers) == 0 {
		return false
	}
	validity := d.buffers[0]
	if validity == nil || validity.Len() == 0 {
		return false
	}
	return !bitutil.BitIsSet(validity.Bytes(), i)
}
