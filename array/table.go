// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package array

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/solidcoredata/arrow/arrow"
)

// Chunked is an ordered sequence of arrays of one type, treated as a single
// logical column.
type Chunked struct {
	refCount int64
	chunks   []Interface
	length   int
	nulls    int
	dtype    arrow.DataType
}

func NewChunked(dtype arrow.DataType, chunks []Interface) *Chunked {
	c := &Chunked{refCount: 1, dtype: dtype}
	for _, chunk := range chunks {
		if chunk.Len() == 0 {
			continue
		}
		chunk.Retain()
		c.chunks = append(c.chunks, chunk)
		c.length += chunk.Len()
		c.nulls += chunk.NullN()
	}
	return c
}

func (c *Chunked) DataType() arrow.DataType { return c.dtype }
func (c *Chunked) Chunks() []Interface      { return c.chunks }
func (c *Chunked) Len() int                 { return c.length }
func (c *Chunked) NullN() int               { return c.nulls }

func (c *Chunked) Retain() {
	atomic.AddInt64(&c.refCount, 1)
}

func (c *Chunked) Release() {
	if atomic.AddInt64(&c.refCount, -1) == 0 {
		for _, chunk := range c.chunks {
			chunk.Release()
		}
		c.chunks = nil
		c.length, c.nulls = 0, 0
	}
}

// ValueAt is the checked dynamic read across chunks. The walk is linear;
// columns are expected to hold few chunks relative to rows.
func (c *Chunked) ValueAt(i int) (interface{}, error) {
	if i < 0 || i >= c.length {
		return nil, arrow.ErrOutOfBounds(i)
	}
	for _, chunk := range c.chunks {
		if i < chunk.Len() {
			return ValueAt(chunk, i)
		}
		i -= chunk.Len()
	}
	return nil, arrow.ErrArrayHasNoElements
}

// Column is a named chunked array.
type Column struct {
	field arrow.Field
	data  *Chunked
}

func NewColumn(field arrow.Field, data *Chunked) (*Column, error) {
	if !arrow.TypeEqual(field.Type, data.DataType()) {
		return nil, arrow.Invalidf("column %q: field type %v does not match data type %v", field.Name, field.Type, data.DataType())
	}
	data.Retain()
	return &Column{field: field, data: data}, nil
}

func (c *Column) Name() string             { return c.field.Name }
func (c *Column) Field() arrow.Field       { return c.field }
func (c *Column) DataType() arrow.DataType { return c.field.Type }
func (c *Column) Data() *Chunked           { return c.data }
func (c *Column) Len() int                 { return c.data.Len() }
func (c *Column) NullN() int               { return c.data.NullN() }

func (c *Column) Release() { c.data.Release() }

// Table is a schema plus one column per field, each column chunked across
// the record batches it was built from.
type Table struct {
	refCount int64
	schema   *arrow.Schema
	cols     []*Column
	rows     int64
}

// NewTableFromRecords groups the arrays of recs by field position and wraps
// each group as a chunked column.
func NewTableFromRecords(schema *arrow.Schema, recs []*Record) (*Table, error) {
	if schema == nil {
		return nil, arrow.Invalidf("nil schema")
	}
	cols := make([]*Column, schema.NumFields())
	for i, f := range schema.Fields() {
		chunks := make([]Interface, 0, len(recs))
		for _, rec := range recs {
			if !rec.Schema().Equal(schema) {
				return nil, arrow.Invalidf("record schema does not match table schema")
			}
			chunks = append(chunks, rec.Column(i))
		}
		chunked := NewChunked(f.Type, chunks)
		col, err := NewColumn(f, chunked)
		chunked.Release()
		if err != nil {
			for _, c := range cols[:i] {
				c.Release()
			}
			return nil, err
		}
		cols[i] = col
	}
	rows := int64(0)
	if len(cols) > 0 {
		rows = int64(cols[0].Len())
	}
	return &Table{refCount: 1, schema: schema, cols: cols, rows: rows}, nil
}

func (t *Table) Schema() *arrow.Schema { return t.schema }
func (t *Table) NumRows() int64        { return t.rows }
func (t *Table) NumCols() int64        { return int64(len(t.cols)) }
func (t *Table) Column(i int) *Column  { return t.cols[i] }

func (t *Table) Retain() {
	atomic.AddInt64(&t.refCount, 1)
}

func (t *Table) Release() {
	if atomic.AddInt64(&t.refCount, -1) == 0 {
		for _, col := range t.cols {
			col.Release()
		}
		t.cols = nil
	}
}

func (t *Table) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "table:\n  rows: %d\n", t.rows)
	for i, col := range t.cols {
		fmt.Fprintf(&b, "  col[%d][%s]: %d chunks\n", i, col.Name(), len(col.Data().Chunks()))
	}
	return b.String()
}
