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

// Record is a group of equal length columns conforming to a schema.
type Record struct {
	refCount int64
	schema   *arrow.Schema
	rows     int64
	arrs     []Interface
}

// NewRecordBatch validates the batch invariants and assembles the record:
// one column per schema field, every column of the field's type and of
// equal length, and no nulls in a column whose field is non-nullable.
func NewRecordBatch(schema *arrow.Schema, cols []Interface) (*Record, error) {
	if schema == nil {
		return nil, arrow.Invalidf("nil schema")
	}
	if len(cols) != schema.NumFields() {
		return nil, arrow.Invalidf("schema has %d fields, got %d columns", schema.NumFields(), len(cols))
	}
	rows := int64(0)
	if len(cols) > 0 {
		rows = int64(cols[0].Len())
	}
	for i, col := range cols {
		f := schema.Field(i)
		if int64(col.Len()) != rows {
			return nil, arrow.Invalidf("column %q has length %d, batch length is %d", f.Name, col.Len(), rows)
		}
		if !arrow.TypeEqual(col.DataType(), f.Type) {
			return nil, arrow.Invalidf("column %q has type %v, field declares %v", f.Name, col.DataType(), f.Type)
		}
		if !f.Nullable && col.NullN() > 0 {
			return nil, arrow.Invalidf("field %q is not nullable but column has %d nulls", f.Name, col.NullN())
		}
	}
	rec := &Record{refCount: 1, schema: schema, rows: rows, arrs: make([]Interface, len(cols))}
	copy(rec.arrs, cols)
	for _, col := range rec.arrs {
		col.Retain()
	}
	return rec, nil
}

func (r *Record) Schema() *arrow.Schema   { return r.schema }
func (r *Record) NumRows() int64          { return r.rows }
func (r *Record) NumCols() int64          { return int64(len(r.arrs)) }
func (r *Record) Columns() []Interface    { return r.arrs }
func (r *Record) Column(i int) Interface  { return r.arrs[i] }
func (r *Record) ColumnName(i int) string { return r.schema.Field(i).Name }

func (r *Record) Retain() {
	atomic.AddInt64(&r.refCount, 1)
}

func (r *Record) Release() {
	if atomic.AddInt64(&r.refCount, -1) == 0 {
		for _, col := range r.arrs {
			col.Release()
		}
		r.arrs = nil
	}
}

func (r *Record) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "record:\n  %v\n  rows: %d\n", r.schema, r.rows)
	for i, col := range r.arrs {
		fmt.Fprintf(&b, "  col[%d][%s]: %s\n", i, r.ColumnName(i), col)
	}
	return b.String()
}

// RecordBuilder holds one builder per schema field; NewRecord finishes them
// into a validated batch.
type RecordBuilder struct {
	refCount int64
	mem      memory.Allocator
	schema   *arrow.Schema
	fields   []Builder
}

func NewRecordBuilder(mem memory.Allocator, schema *arrow.Schema) (*RecordBuilder, error) {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	b := &RecordBuilder{refCount: 1, mem: mem, schema: schema, fields: make([]Builder, schema.NumFields())}
	for i, f := range schema.Fields() {
		fieldBldr, err := NewBuilder(mem, f.Type)
		if err != nil {
			return nil, err
		}
		b.fields[i] = fieldBldr
	}
	return b, nil
}

func (b *RecordBuilder) Schema() *arrow.Schema { return b.schema }
func (b *RecordBuilder) Fields() []Builder     { return b.fields }
func (b *RecordBuilder) Field(i int) Builder   { return b.fields[i] }

func (b *RecordBuilder) Retain() {
	atomic.AddInt64(&b.refCount, 1)
}

func (b *RecordBuilder) Release() {
	if atomic.AddInt64(&b.refCount, -1) == 0 {
		for _, f := range b.fields {
			f.Release()
		}
		b.fields = nil
	}
}

// AppendRow appends one dynamically typed value per field.
func (b *RecordBuilder) AppendRow(values ...interface{}) {
	for i, f := range b.fields {
		if i < len(values) {
			f.AppendAny(values[i])
		} else {
			f.AppendNull()
		}
	}
}

// NewRecord finishes every field builder and validates the batch. The
// builders reset for reuse. Length mismatches between the builders and
// nulls under a non-nullable field surface here, not at append time.
func (b *RecordBuilder) NewRecord() (*Record, error) {
	cols := make([]Interface, len(b.fields))
	defer func() {
		for _, col := range cols {
			if col != nil {
				col.Release()
			}
		}
	}()
	for i, f := range b.fields {
		cols[i] = f.NewArray()
	}
	return NewRecordBatch(b.schema, cols)
}
