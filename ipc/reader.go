// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipc

import (
	"encoding/binary"
	"io"

	flatbuffers "github.com/google/flatbuffers/go"
	"golang.org/x/xerrors"

	"github.com/solidcoredata/arrow/array"
	"github.com/solidcoredata/arrow/arrow"
	"github.com/solidcoredata/arrow/internal/flatbuf"
	"github.com/solidcoredata/arrow/memory"
)

// Reader reads the Streaming format: the schema message first, then record
// batches in wire order. End of input without a terminator counts as a
// truncated stream; everything parsed so far stays available.
type Reader struct {
	r *MessageReader

	schema *arrow.Schema
	rec    *array.Record
	err    error
	done   bool
}

// NewReader reads the leading schema message from r. When WithSchema
// provides an expected schema, a mismatch fails with Invalid.
func NewReader(r io.Reader, opts ...Option) (*Reader, error) {
	cfg := newConfig(opts...)
	rr := &Reader{r: NewMessageReader(r, opts...)}

	msg, err := rr.r.Message()
	if err != nil {
		return nil, xerrors.Errorf("arrow/ipc: could not read schema message: %w", arrow.Invalidf("missing schema"))
	}
	if msg.Type() != MessageSchema {
		return nil, arrow.Invalidf("first message is %v, not schema", msg.Type())
	}
	schemaFB := schemaFromMessage(msg)
	if schemaFB == nil {
		return nil, arrow.Invalidf("schema message carries no schema")
	}
	rr.schema, err = schemaFromFB(schemaFB)
	if err != nil {
		return nil, xerrors.Errorf("arrow/ipc: could not decode schema: %w", err)
	}
	if cfg.schema != nil && !cfg.schema.Equal(rr.schema) {
		return nil, arrow.Invalidf("inconsistent schema for reading (got: %v, want: %v)", rr.schema, cfg.schema)
	}
	return rr, nil
}

func schemaFromMessage(msg *Message) *flatbuf.Schema {
	var tbl flatbuffers.Table
	if !msg.msg.Header(&tbl) {
		return nil
	}
	s := &flatbuf.Schema{}
	s.Init(tbl.Bytes, tbl.Pos)
	return s
}

func (r *Reader) Schema() *arrow.Schema { return r.schema }

// Err returns the first error hit while reading, nil at a clean or
// truncated end.
func (r *Reader) Err() error { return r.err }

// Record returns the batch read by the last successful Next. It is valid
// until the next call to Next.
func (r *Reader) Record() *array.Record { return r.rec }

// Next advances to the next record batch. It returns false at the stream
// terminator, at a truncated end of input, and on the first error.
func (r *Reader) Next() bool {
	if r.done || r.err != nil {
		return false
	}
	msg, err := r.r.Message()
	if err == io.EOF {
		r.done = true
		return false
	}
	if err != nil {
		r.err = err
		return false
	}
	switch msg.Type() {
	case MessageRecordBatch:
		rec, err := newRecordFromMessage(r.schema, msg)
		if err != nil {
			r.err = err
			return false
		}
		if r.rec != nil {
			r.rec.Release()
		}
		r.rec = rec
		return true
	case MessageDictionaryBatch:
		r.err = arrow.NotImplementedf("dictionary batches are not supported")
		return false
	default:
		r.err = arrow.UnknownErrorf("unexpected message type %v", msg.Type())
		return false
	}
}

// Read returns the next record, or io.EOF at the end of the stream.
func (r *Reader) Read() (*array.Record, error) {
	if r.Next() {
		return r.rec, nil
	}
	if r.err != nil {
		return nil, r.err
	}
	return nil, io.EOF
}

func (r *Reader) Release() {
	if r.rec != nil {
		r.rec.Release()
		r.rec = nil
	}
	r.r.Release()
}

// newRecordFromMessage parses a record batch header and walks the schema
// depth-first, consuming one FieldNode per logical array and the exact
// buffer count of each physical layout. The batch is discarded whole on
// the first structural error.
func newRecordFromMessage(schema *arrow.Schema, msg *Message) (*array.Record, error) {
	var tbl flatbuffers.Table
	if !msg.msg.Header(&tbl) {
		return nil, arrow.Invalidf("record batch message carries no header")
	}
	md := &flatbuf.RecordBatch{}
	md.Init(tbl.Bytes, tbl.Pos)

	ctx := &arrayLoaderContext{
		meta: md,
		body: msg.body,
		max:  kMaxNestingDepth,
	}

	rows := md.Length()
	cols := make([]array.Interface, schema.NumFields())
	defer func() {
		for _, col := range cols {
			if col != nil {
				col.Release()
			}
		}
	}()
	for i, field := range schema.Fields() {
		col, err := ctx.loadArray(field.Type)
		if err != nil {
			return nil, xerrors.Errorf("arrow/ipc: could not load column %q: %w", field.Name, err)
		}
		cols[i] = col
		if int64(col.Len()) != rows {
			return nil, arrow.Invalidf("column %q has length %d, batch declares %d", field.Name, col.Len(), rows)
		}
	}
	return array.NewRecordBatch(schema, cols)
}

// arrayLoaderContext walks FieldNodes and Buffers in tandem with the
// schema.
type arrayLoaderContext struct {
	meta    *flatbuf.RecordBatch
	body    *memory.Buffer
	ifield  int
	ibuffer int
	max     int
}

func (ctx *arrayLoaderContext) fieldNode() (*flatbuf.FieldNode, error) {
	var node flatbuf.FieldNode
	if ctx.ifield >= ctx.meta.NodesLength() || !ctx.meta.Nodes(&node, ctx.ifield) {
		return nil, arrow.Invalidf("missing field node %d", ctx.ifield)
	}
	ctx.ifield++
	return &node, nil
}

// buffer consumes the next Buffer record and wraps the referenced body
// region as a borrowed buffer. The region must lie inside the body.
func (ctx *arrayLoaderContext) buffer() (*memory.Buffer, error) {
	var buf flatbuf.Buffer
	if ctx.ibuffer >= ctx.meta.BuffersLength() || !ctx.meta.Buffers(&buf, ctx.ibuffer) {
		return nil, arrow.Invalidf("missing buffer %d", ctx.ibuffer)
	}
	ctx.ibuffer++
	if buf.Length() == 0 {
		return memory.NewBufferBytes(nil), nil
	}
	beg, end := buf.Offset(), buf.Offset()+buf.Length()
	if beg < 0 || end > int64(ctx.body.Len()) {
		return nil, arrow.Invalidf("buffer %d [%d, %d) lies outside the body of %d bytes", ctx.ibuffer-1, beg, end, ctx.body.Len())
	}
	return memory.NewBufferBytes(ctx.body.Bytes()[beg:end]), nil
}

// skipBuffer consumes a Buffer record whose contents are dropped (a
// validity bitmap with no nulls).
func (ctx *arrayLoaderContext) skipBuffer() error {
	if ctx.ibuffer >= ctx.meta.BuffersLength() {
		return arrow.Invalidf("missing buffer %d", ctx.ibuffer)
	}
	ctx.ibuffer++
	return nil
}

func (ctx *arrayLoaderContext) loadCommon() (*flatbuf.FieldNode, *memory.Buffer, error) {
	node, err := ctx.fieldNode()
	if err != nil {
		return nil, nil, err
	}
	if node.NullCount() > node.Length() {
		return nil, nil, arrow.Invalidf("null count %d exceeds length %d", node.NullCount(), node.Length())
	}
	var validity *memory.Buffer
	if node.NullCount() == 0 {
		if err := ctx.skipBuffer(); err != nil {
			return nil, nil, err
		}
		validity = memory.NewBufferBytes(nil)
	} else {
		validity, err = ctx.buffer()
		if err != nil {
			return nil, nil, err
		}
	}
	return node, validity, nil
}

func (ctx *arrayLoaderContext) loadChild(dt arrow.DataType) (array.Interface, error) {
	if ctx.max == 0 {
		return nil, errMaxRecursion
	}
	ctx.max--
	sub, err := ctx.loadArray(dt)
	ctx.max++
	return sub, err
}

func (ctx *arrayLoaderContext) loadArray(dt arrow.DataType) (array.Interface, error) {
	switch dt := dt.(type) {
	case *arrow.NullType:
		node, err := ctx.fieldNode()
		if err != nil {
			return nil, err
		}
		data, err := array.NewData(dt, int(node.Length()), nil, nil, int(node.Length()))
		if err != nil {
			return nil, err
		}
		defer data.Release()
		return array.MakeFromData(data), nil

	case *arrow.ListType:
		return ctx.loadList(dt)
	case *arrow.FixedSizeListType:
		return ctx.loadFixedSizeList(dt)
	case *arrow.StructType:
		return ctx.loadStruct(dt)
	case *arrow.DictionaryType:
		return nil, arrow.NotImplementedf("dictionary arrays are not supported")
	case *arrow.LargeListType, *arrow.MapType, *arrow.RunEndEncodedType:
		return nil, arrow.Invalidf("arrays of type %v cannot be read", dt)
	}
	if arrow.IsVariable(dt.ID()) {
		return ctx.loadBinary(dt)
	}
	return ctx.loadPrimitive(dt)
}

func (ctx *arrayLoaderContext) loadPrimitive(dt arrow.DataType) (array.Interface, error) {
	node, validity, err := ctx.loadCommon()
	if err != nil {
		return nil, err
	}
	values, err := ctx.buffer()
	if err != nil {
		return nil, err
	}
	n := int(node.Length())
	want := int64(n * dt.Stride())
	if dt.ID() == arrow.BOOL {
		want = int64((n + 7) / 8)
	}
	if int64(values.Len()) < want {
		return nil, arrow.Invalidf("%v values buffer holds %d bytes, need %d", dt, values.Len(), want)
	}
	data, err := array.NewData(dt, n, []*memory.Buffer{validity, values}, nil, int(node.NullCount()))
	if err != nil {
		return nil, err
	}
	defer data.Release()
	return array.MakeFromData(data), nil
}

// checkOffsets asserts the authoritative variable length convention: the
// offsets buffer holds length+1 entries, monotonically non-decreasing, and
// the values buffer holds at least offsets[length] bytes.
func checkOffsets(offsets *memory.Buffer, width, n int, valuesLen int64) error {
	if offsets.Len() < (n+1)*width {
		return arrow.Invalidf("offsets buffer holds %d bytes, need %d", offsets.Len(), (n+1)*width)
	}
	raw := offsets.Bytes()
	prev := int64(0)
	for i := 0; i <= n; i++ {
		var cur int64
		if width == 8 {
			cur = int64(binary.LittleEndian.Uint64(raw[i*8:]))
		} else {
			cur = int64(int32(binary.LittleEndian.Uint32(raw[i*4:])))
		}
		if i == 0 {
			prev = cur
			continue
		}
		if cur < prev {
			return arrow.Invalidf("offsets decrease at entry %d (%d < %d)", i, cur, prev)
		}
		prev = cur
	}
	if prev > valuesLen {
		return arrow.Invalidf("last offset %d exceeds values buffer of %d bytes", prev, valuesLen)
	}
	return nil
}

func (ctx *arrayLoaderContext) loadBinary(dt arrow.DataType) (array.Interface, error) {
	node, validity, err := ctx.loadCommon()
	if err != nil {
		return nil, err
	}
	offsets, err := ctx.buffer()
	if err != nil {
		return nil, err
	}
	values, err := ctx.buffer()
	if err != nil {
		return nil, err
	}
	width := 4
	switch dt.ID() {
	case arrow.LARGE_STRING, arrow.LARGE_BINARY:
		width = 8
	}
	if err := checkOffsets(offsets, width, int(node.Length()), int64(values.Len())); err != nil {
		return nil, err
	}
	data, err := array.NewData(dt, int(node.Length()), []*memory.Buffer{validity, offsets, values}, nil, int(node.NullCount()))
	if err != nil {
		return nil, err
	}
	defer data.Release()
	return array.MakeFromData(data), nil
}

func (ctx *arrayLoaderContext) loadList(dt *arrow.ListType) (array.Interface, error) {
	node, validity, err := ctx.loadCommon()
	if err != nil {
		return nil, err
	}
	offsets, err := ctx.buffer()
	if err != nil {
		return nil, err
	}
	sub, err := ctx.loadChild(dt.Elem())
	if err != nil {
		return nil, err
	}
	defer sub.Release()
	if err := checkOffsets(offsets, 4, int(node.Length()), int64(sub.Len())); err != nil {
		return nil, err
	}
	subData := sub.Data()
	subData.Retain()
	data, err := array.NewData(dt, int(node.Length()), []*memory.Buffer{validity, offsets}, []*array.Data{subData}, int(node.NullCount()))
	if err != nil {
		subData.Release()
		return nil, err
	}
	defer data.Release()
	defer subData.Release()
	return array.MakeFromData(data), nil
}

func (ctx *arrayLoaderContext) loadFixedSizeList(dt *arrow.FixedSizeListType) (array.Interface, error) {
	node, validity, err := ctx.loadCommon()
	if err != nil {
		return nil, err
	}
	sub, err := ctx.loadChild(dt.Elem())
	if err != nil {
		return nil, err
	}
	defer sub.Release()
	if int64(sub.Len()) < node.Length()*int64(dt.Len()) {
		return nil, arrow.Invalidf("fixed size list child holds %d values, need %d", sub.Len(), node.Length()*int64(dt.Len()))
	}
	subData := sub.Data()
	subData.Retain()
	data, err := array.NewData(dt, int(node.Length()), []*memory.Buffer{validity}, []*array.Data{subData}, int(node.NullCount()))
	if err != nil {
		subData.Release()
		return nil, err
	}
	defer data.Release()
	defer subData.Release()
	return array.MakeFromData(data), nil
}

func (ctx *arrayLoaderContext) loadStruct(dt *arrow.StructType) (array.Interface, error) {
	node, validity, err := ctx.loadCommon()
	if err != nil {
		return nil, err
	}
	children := make([]*array.Data, dt.NumFields())
	release := func() {
		for _, child := range children {
			if child != nil {
				child.Release()
			}
		}
	}
	for i, f := range dt.Fields() {
		sub, err := ctx.loadChild(f.Type)
		if err != nil {
			release()
			return nil, err
		}
		if int64(sub.Len()) != node.Length() {
			sub.Release()
			release()
			return nil, arrow.Invalidf("struct child %q has length %d, struct declares %d", f.Name, sub.Len(), node.Length())
		}
		children[i] = sub.Data()
		children[i].Retain()
		sub.Release()
	}
	data, err := array.NewData(dt, int(node.Length()), []*memory.Buffer{validity}, children, int(node.NullCount()))
	if err != nil {
		release()
		return nil, err
	}
	defer data.Release()
	defer release()
	return array.MakeFromData(data), nil
}
