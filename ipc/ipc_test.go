// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipc

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solidcoredata/arrow/array"
	"github.com/solidcoredata/arrow/arrow"
	"github.com/solidcoredata/arrow/internal/flatbuf"
	"github.com/solidcoredata/arrow/memory"
)

func buildRecord(t *testing.T, schema *arrow.Schema, fill func(b *array.RecordBuilder)) *array.Record {
	t.Helper()
	b, err := array.NewRecordBuilder(memory.NewGoAllocator(), schema)
	require.NoError(t, err)
	defer b.Release()
	fill(b)
	rec, err := b.NewRecord()
	require.NoError(t, err)
	return rec
}

func writeFile(t *testing.T, schema *arrow.Schema, recs ...*array.Record) []byte {
	t.Helper()
	var buf bytes.Buffer
	fw, err := NewFileWriter(&buf, WithSchema(schema))
	require.NoError(t, err)
	for _, rec := range recs {
		require.NoError(t, fw.Write(rec))
	}
	require.NoError(t, fw.Close())
	return buf.Bytes()
}

func writeStream(t *testing.T, schema *arrow.Schema, recs ...*array.Record) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := NewWriter(&buf, WithSchema(schema))
	for _, rec := range recs {
		require.NoError(t, w.Write(rec))
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

// Schema [("a": Int32, nullable)], batch [1, null, 3], through the File
// format.
func TestFileRoundTripPrimitive(t *testing.T) {
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "a", Type: arrow.PrimitiveTypes.Int32, Nullable: true},
	}, nil)
	rec := buildRecord(t, schema, func(b *array.RecordBuilder) {
		fb := b.Field(0).(*array.Int32Builder)
		fb.Append(1)
		fb.AppendNull()
		fb.Append(3)
	})
	defer rec.Release()

	raw := writeFile(t, schema, rec)

	// the file is framed by the magic on both ends
	assert.True(t, bytes.HasPrefix(raw, Magic))
	assert.True(t, bytes.HasSuffix(raw, Magic))

	r, err := NewFileReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer r.Close()

	assert.True(t, r.Schema().Equal(schema))
	require.Equal(t, 1, r.NumRecords())

	got, err := r.Record(0)
	require.NoError(t, err)
	col := got.Column(0).(*array.Int32)
	assert.Equal(t, 3, col.Len())
	assert.Equal(t, 1, col.NullN())
	assert.Equal(t, int32(1), col.Value(0))
	assert.True(t, col.IsNull(1))
	assert.Equal(t, int32(3), col.Value(2))
	assert.True(t, array.RecordEqual(rec, got))
}

// Schema [("s": Utf8, non-nullable)], batch ["x", "", "yz"].
func TestFileRoundTripUtf8(t *testing.T) {
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "s", Type: arrow.BinaryTypes.String},
	}, nil)
	rec := buildRecord(t, schema, func(b *array.RecordBuilder) {
		sb := b.Field(0).(*array.StringBuilder)
		sb.Append("x")
		sb.Append("")
		sb.Append("yz")
	})
	defer rec.Release()

	r, err := NewFileReader(bytes.NewReader(writeFile(t, schema, rec)))
	require.NoError(t, err)
	defer r.Close()

	got, err := r.Record(0)
	require.NoError(t, err)
	col := got.Column(0).(*array.String)
	assert.Equal(t, 0, col.NullN())
	assert.Equal(t, "x", col.Value(0))
	assert.Equal(t, "", col.Value(1))
	assert.Equal(t, "yz", col.Value(2))
}

// Schema [("l": List<Int32>, nullable)], batch [[1,2], null, []].
func TestFileRoundTripList(t *testing.T) {
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "l", Type: arrow.ListOf(arrow.PrimitiveTypes.Int32), Nullable: true},
	}, nil)
	rec := buildRecord(t, schema, func(b *array.RecordBuilder) {
		lb := b.Field(0).(*array.ListBuilder)
		vb := lb.ValueBuilder().(*array.Int32Builder)
		lb.Append(true)
		vb.Append(1)
		vb.Append(2)
		lb.AppendNull()
		lb.Append(true)
	})
	defer rec.Release()

	r, err := NewFileReader(bytes.NewReader(writeFile(t, schema, rec)))
	require.NoError(t, err)
	defer r.Close()

	got, err := r.Record(0)
	require.NoError(t, err)
	col := got.Column(0).(*array.List)
	assert.Equal(t, 3, col.Len())
	assert.Equal(t, 1, col.NullN())
	assert.Equal(t, []interface{}{int32(1), int32(2)}, col.Value(0))
	assert.True(t, col.IsNull(1))
	assert.Equal(t, []interface{}{}, col.Value(2))
	assert.True(t, array.RecordEqual(rec, got))
}

// Schema [("p": Struct{x: Int32, y: Utf8 nullable})], two rows.
func TestFileRoundTripStruct(t *testing.T) {
	st := arrow.StructOf(
		arrow.Field{Name: "x", Type: arrow.PrimitiveTypes.Int32},
		arrow.Field{Name: "y", Type: arrow.BinaryTypes.String, Nullable: true},
	)
	schema := arrow.NewSchema([]arrow.Field{{Name: "p", Type: st}}, nil)
	rec := buildRecord(t, schema, func(b *array.RecordBuilder) {
		sb := b.Field(0).(*array.StructBuilder)
		xb := sb.FieldBuilder(0).(*array.Int32Builder)
		yb := sb.FieldBuilder(1).(*array.StringBuilder)
		sb.Append(true)
		xb.Append(1)
		yb.Append("a")
		sb.Append(true)
		xb.Append(2)
		yb.AppendNull()
	})
	defer rec.Release()

	r, err := NewFileReader(bytes.NewReader(writeFile(t, schema, rec)))
	require.NoError(t, err)
	defer r.Close()

	got, err := r.Record(0)
	require.NoError(t, err)
	col := got.Column(0).(*array.Struct)
	assert.Equal(t, 2, col.Len())
	x := col.Field(0).(*array.Int32)
	y := col.Field(1).(*array.String)
	assert.Equal(t, int32(1), x.Value(0))
	assert.Equal(t, int32(2), x.Value(1))
	assert.Equal(t, "a", y.Value(0))
	assert.True(t, y.IsNull(1))
	assert.True(t, array.RecordEqual(rec, got))
}

// The FieldNode walk is depth-first pre-order: struct before children, in
// field order.
func TestRecordMessageNodeOrder(t *testing.T) {
	st := arrow.StructOf(
		arrow.Field{Name: "x", Type: arrow.PrimitiveTypes.Int32},
		arrow.Field{Name: "y", Type: arrow.BinaryTypes.String, Nullable: true},
	)
	schema := arrow.NewSchema([]arrow.Field{{Name: "p", Type: st}}, nil)
	rec := buildRecord(t, schema, func(b *array.RecordBuilder) {
		sb := b.Field(0).(*array.StructBuilder)
		xb := sb.FieldBuilder(0).(*array.Int32Builder)
		yb := sb.FieldBuilder(1).(*array.StringBuilder)
		sb.Append(true)
		xb.Append(1)
		yb.Append("a")
		sb.Append(true)
		xb.Append(2)
		yb.AppendNull()
	})
	defer rec.Release()

	p, err := encodeRecord(rec)
	require.NoError(t, err)

	msg := flatbuf.GetRootAsMessage(p.meta, 0)
	assert.Equal(t, flatbuf.MessageHeaderRecordBatch, msg.HeaderType())

	var tbl flatbuffers.Table
	require.True(t, msg.Header(&tbl))
	var md flatbuf.RecordBatch
	md.Init(tbl.Bytes, tbl.Pos)

	require.Equal(t, 3, md.NodesLength())
	want := []struct{ length, nulls int64 }{
		{2, 0}, // struct
		{2, 0}, // x
		{2, 1}, // y
	}
	for i, w := range want {
		var node flatbuf.FieldNode
		require.True(t, md.Nodes(&node, i))
		assert.Equal(t, w.length, node.Length(), "node %d length", i)
		assert.Equal(t, w.nulls, node.NullCount(), "node %d null count", i)
	}
	// struct validity, x validity, x values, y validity, y offsets, y values
	assert.Equal(t, 6, md.BuffersLength())
}

// The record batch body pads every buffer to 8 bytes.
func TestRecordBodyPadding(t *testing.T) {
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "a", Type: arrow.PrimitiveTypes.Int32, Nullable: true},
	}, nil)
	rec := buildRecord(t, schema, func(b *array.RecordBuilder) {
		fb := b.Field(0).(*array.Int32Builder)
		fb.Append(1)
		fb.AppendNull()
		fb.Append(3)
	})
	defer rec.Release()

	p, err := encodeRecord(rec)
	require.NoError(t, err)

	// validity 1 byte padded to 8, values 12 bytes padded to 16
	assert.Equal(t, int64(24), p.size)

	msg := flatbuf.GetRootAsMessage(p.meta, 0)
	var tbl flatbuffers.Table
	require.True(t, msg.Header(&tbl))
	var md flatbuf.RecordBatch
	md.Init(tbl.Bytes, tbl.Pos)

	require.Equal(t, 2, md.BuffersLength())
	var buf flatbuf.Buffer
	require.True(t, md.Buffers(&buf, 0))
	assert.Equal(t, int64(0), buf.Offset())
	assert.Equal(t, int64(8), buf.Length())
	require.True(t, md.Buffers(&buf, 1))
	assert.Equal(t, int64(8), buf.Offset())
	assert.Equal(t, int64(16), buf.Length())
}

func TestStreamRoundTrip(t *testing.T) {
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "a", Type: arrow.PrimitiveTypes.Int32, Nullable: true},
		{Name: "s", Type: arrow.BinaryTypes.String, Nullable: true},
	}, nil)
	recs := make([]*array.Record, 3)
	for i := range recs {
		i := i
		recs[i] = buildRecord(t, schema, func(b *array.RecordBuilder) {
			ib := b.Field(0).(*array.Int32Builder)
			sb := b.Field(1).(*array.StringBuilder)
			ib.Append(int32(10 * i))
			ib.AppendNull()
			sb.Append("row")
			sb.AppendNull()
		})
	}
	defer func() {
		for _, rec := range recs {
			rec.Release()
		}
	}()

	raw := writeStream(t, schema, recs...)

	// the terminator is always the final eight bytes emitted
	assert.Equal(t, kEOS[:], raw[len(raw)-8:])

	r, err := NewReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer r.Release()
	assert.True(t, r.Schema().Equal(schema))

	// batches come back in wire order
	n := 0
	for r.Next() {
		assert.True(t, array.RecordEqual(recs[n], r.Record()), "record %d", n)
		n++
	}
	require.NoError(t, r.Err())
	assert.Equal(t, 3, n)
}

// Writing a schema and zero batches emits only the framed schema message
// and the terminator.
func TestStreamSchemaOnly(t *testing.T) {
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "a", Type: arrow.PrimitiveTypes.Int32, Nullable: true},
	}, nil)
	raw := writeStream(t, schema)

	// magic-less output starting with the continuation marker
	assert.False(t, bytes.HasPrefix(raw, Magic))
	assert.Equal(t, kIPCContToken, binary.LittleEndian.Uint32(raw[:4]))
	assert.Equal(t, kEOS[:], raw[len(raw)-8:])

	r, err := NewReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer r.Release()
	assert.True(t, r.Schema().Equal(schema))
	assert.False(t, r.Next())
	require.NoError(t, r.Err())
}

// End of input without a terminator is a truncated stream: the reader
// keeps what it parsed and reports no error.
func TestStreamTruncated(t *testing.T) {
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "a", Type: arrow.PrimitiveTypes.Int32, Nullable: true},
	}, nil)
	rec := buildRecord(t, schema, func(b *array.RecordBuilder) {
		b.Field(0).(*array.Int32Builder).Append(7)
	})
	defer rec.Release()

	raw := writeStream(t, schema, rec)
	truncated := raw[:len(raw)-8]

	r, err := NewReader(bytes.NewReader(truncated))
	require.NoError(t, err)
	defer r.Release()

	assert.True(t, r.Next())
	assert.True(t, array.RecordEqual(rec, r.Record()))
	assert.False(t, r.Next())
	require.NoError(t, r.Err())
}

// A dictionary batch is recognized and refused as unimplemented, not
// treated as an unknown message.
func TestStreamDictionaryBatchNotImplemented(t *testing.T) {
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "a", Type: arrow.PrimitiveTypes.Int32, Nullable: true},
	}, nil)

	var buf bytes.Buffer
	meta, err := writeSchemaMessage(schema)
	require.NoError(t, err)
	_, err = writeMessageFrame(&buf, meta)
	require.NoError(t, err)

	b := flatbuffers.NewBuilder(0)
	flatbuf.DictionaryBatchStart(b)
	flatbuf.DictionaryBatchAddId(b, 1)
	hdr := flatbuf.DictionaryBatchEnd(b)
	_, err = writeMessageFrame(&buf, writeMessageFB(b, flatbuf.MessageHeaderDictionaryBatch, hdr, 0))
	require.NoError(t, err)
	buf.Write(kEOS[:])

	r, err := NewReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer r.Release()

	assert.False(t, r.Next())
	require.Error(t, r.Err())
	assert.True(t, arrow.IsNotImplemented(r.Err()))
}

func TestFileReaderRejectsGarbage(t *testing.T) {
	_, err := NewFileReader(bytes.NewReader([]byte("this is not an arrow file at all")))
	require.Error(t, err)
	assert.True(t, arrow.IsInvalid(err))

	_, err = NewFileReader(bytes.NewReader([]byte("tiny")))
	require.Error(t, err)
}

func TestFileReaderRecordOutOfBounds(t *testing.T) {
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "a", Type: arrow.PrimitiveTypes.Int32, Nullable: true},
	}, nil)
	rec := buildRecord(t, schema, func(b *array.RecordBuilder) {
		b.Field(0).(*array.Int32Builder).Append(1)
	})
	defer rec.Release()

	r, err := NewFileReader(bytes.NewReader(writeFile(t, schema, rec)))
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Record(5)
	require.Error(t, err)
	assert.True(t, arrow.IsOutOfBounds(err))
}

func TestFileReaderReadIterates(t *testing.T) {
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "a", Type: arrow.PrimitiveTypes.Int32, Nullable: true},
	}, nil)
	r1 := buildRecord(t, schema, func(b *array.RecordBuilder) {
		b.Field(0).(*array.Int32Builder).Append(1)
	})
	defer r1.Release()
	r2 := buildRecord(t, schema, func(b *array.RecordBuilder) {
		b.Field(0).(*array.Int32Builder).Append(2)
	})
	defer r2.Release()

	r, err := NewFileReader(bytes.NewReader(writeFile(t, schema, r1, r2)))
	require.NoError(t, err)
	defer r.Close()

	n := 0
	for {
		_, err := r.Read()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		n++
	}
	assert.Equal(t, 2, n)
}

func TestWriterRejectsWrongSchema(t *testing.T) {
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "a", Type: arrow.PrimitiveTypes.Int32, Nullable: true},
	}, nil)
	other := arrow.NewSchema([]arrow.Field{
		{Name: "b", Type: arrow.BinaryTypes.String, Nullable: true},
	}, nil)
	rec := buildRecord(t, other, func(b *array.RecordBuilder) {
		b.Field(0).(*array.StringBuilder).Append("nope")
	})
	defer rec.Release()

	var buf bytes.Buffer
	w := NewWriter(&buf, WithSchema(schema))
	err := w.Write(rec)
	require.Error(t, err)
}
