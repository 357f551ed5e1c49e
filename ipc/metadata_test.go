// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipc

import (
	"testing"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solidcoredata/arrow/arrow"
	"github.com/solidcoredata/arrow/internal/flatbuf"
)

func schemaThroughFB(t *testing.T, schema *arrow.Schema) *arrow.Schema {
	t.Helper()
	b := flatbuffers.NewBuilder(0)
	offset, err := schemaToFB(b, schema)
	require.NoError(t, err)
	b.Finish(offset)

	got, err := schemaFromFB(flatbuf.GetRootAsSchema(b.FinishedBytes(), 0))
	require.NoError(t, err)
	return got
}

// every supported type round-trips through the FlatBuffers schema,
// including the tags that travel as types only
func TestSchemaFBRoundTrip(t *testing.T) {
	fieldMeta := arrow.NewMetadata(
		[]string{arrow.ExtensionNameKey, "plain"},
		[]string{"uuid", "value"},
	)
	schemaMeta := arrow.NewMetadata([]string{"origin"}, []string{"test"})

	schema := arrow.NewSchema([]arrow.Field{
		{Name: "null", Type: arrow.Null, Nullable: true},
		{Name: "flag", Type: arrow.FixedWidthTypes.Boolean},
		{Name: "i8", Type: arrow.PrimitiveTypes.Int8, Nullable: true},
		{Name: "u16", Type: arrow.PrimitiveTypes.Uint16},
		{Name: "i32", Type: arrow.PrimitiveTypes.Int32, Nullable: true},
		{Name: "u64", Type: arrow.PrimitiveTypes.Uint64},
		{Name: "f16", Type: arrow.PrimitiveTypes.Float16},
		{Name: "f64", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
		{Name: "s", Type: arrow.BinaryTypes.String, Metadata: fieldMeta},
		{Name: "bin", Type: arrow.BinaryTypes.Binary},
		{Name: "ls", Type: arrow.BinaryTypes.LargeString},
		{Name: "lbin", Type: arrow.BinaryTypes.LargeBinary},
		{Name: "fsb", Type: &arrow.FixedSizeBinaryType{ByteWidth: 16}},
		{Name: "d32", Type: arrow.PrimitiveTypes.Date32},
		{Name: "d64", Type: arrow.PrimitiveTypes.Date64},
		{Name: "t32", Type: &arrow.Time32Type{Unit: arrow.Millisecond}},
		{Name: "t64", Type: &arrow.Time64Type{Unit: arrow.Nanosecond}},
		{Name: "ts", Type: &arrow.TimestampType{Unit: arrow.Microsecond, TimeZone: "America/New_York"}},
		{Name: "dur", Type: &arrow.DurationType{Unit: arrow.Second}},
		{Name: "ival", Type: &arrow.IntervalType{Unit: arrow.DayTimeInterval}},
		{Name: "dec", Type: &arrow.Decimal128Type{Precision: 38, Scale: 9}},
		{Name: "dec256", Type: &arrow.Decimal256Type{Precision: 76, Scale: 2}},
		{Name: "list", Type: arrow.ListOf(arrow.PrimitiveTypes.Int32), Nullable: true},
		{Name: "llist", Type: arrow.LargeListOf(arrow.BinaryTypes.String)},
		{Name: "fslist", Type: arrow.FixedSizeListOf(4, arrow.PrimitiveTypes.Float32)},
		{Name: "st", Type: arrow.StructOf(
			arrow.Field{Name: "x", Type: arrow.PrimitiveTypes.Int32},
			arrow.Field{Name: "y", Type: arrow.ListOf(arrow.BinaryTypes.String), Nullable: true},
		)},
		{Name: "m", Type: arrow.MapOf(arrow.BinaryTypes.String, arrow.PrimitiveTypes.Int64)},
		{Name: "dict", Type: &arrow.DictionaryType{
			IndexType: arrow.PrimitiveTypes.Int16,
			ValueType: arrow.BinaryTypes.String,
		}, Nullable: true},
		{Name: "ree", Type: arrow.RunEndEncodedOf(arrow.PrimitiveTypes.Int32, arrow.BinaryTypes.String)},
	}, &schemaMeta)

	got := schemaThroughFB(t, schema)
	assert.True(t, got.Equal(schema), "schemas differ:\n got: %v\nwant: %v", got, schema)
}

func TestSchemaFBKeysSorted(t *testing.T) {
	mt := arrow.MapOf(arrow.BinaryTypes.String, arrow.PrimitiveTypes.Int32)
	mt.KeysSorted = true
	schema := arrow.NewSchema([]arrow.Field{{Name: "m", Type: mt}}, nil)

	got := schemaThroughFB(t, schema)
	gotType := got.Field(0).Type.(*arrow.MapType)
	assert.True(t, gotType.KeysSorted)
}

// an unsupported union tag fails with Invalid, naming the tag
func TestTypeFromFBUnsupported(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	name := b.CreateString("u")
	flatbuf.BoolStart(b)
	payload := flatbuf.BoolEnd(b)
	flatbuf.FieldStart(b)
	flatbuf.FieldAddName(b, name)
	flatbuf.FieldAddTypeType(b, flatbuf.TypeUnion)
	flatbuf.FieldAddType(b, payload)
	b.Finish(flatbuf.FieldEnd(b))

	fb := flatbuf.GetRootAsField(b.FinishedBytes(), 0)
	_, err := fieldFromFB(fb)
	require.Error(t, err)
	assert.True(t, arrow.IsInvalid(err))
}

// list arity is enforced: exactly one child
func TestListRequiresOneChild(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	name := b.CreateString("l")
	flatbuf.ListStart(b)
	payload := flatbuf.ListEnd(b)
	flatbuf.FieldStart(b)
	flatbuf.FieldAddName(b, name)
	flatbuf.FieldAddTypeType(b, flatbuf.TypeList)
	flatbuf.FieldAddType(b, payload)
	b.Finish(flatbuf.FieldEnd(b))

	fb := flatbuf.GetRootAsField(b.FinishedBytes(), 0)
	_, err := fieldFromFB(fb)
	require.Error(t, err)
	assert.True(t, arrow.IsInvalid(err))
}

func TestFooterRoundTrip(t *testing.T) {
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "a", Type: arrow.PrimitiveTypes.Int32, Nullable: true},
	}, nil)
	blocks := []fileBlock{
		{Offset: 8, Meta: 184, Body: 24},
		{Offset: 216, Meta: 184, Body: 64},
	}
	raw, err := writeFileFooter(schema, blocks)
	require.NoError(t, err)

	footer := flatbuf.GetRootAsFooter(raw, 0)
	require.Equal(t, len(blocks), footer.RecordBatchesLength())
	for i, want := range blocks {
		var blk flatbuf.Block
		require.True(t, footer.RecordBatches(&blk, i))
		assert.Equal(t, want.Offset, blk.Offset(), "block %d offset", i)
		assert.Equal(t, want.Meta, blk.MetaDataLength(), "block %d meta", i)
		assert.Equal(t, want.Body, blk.BodyLength(), "block %d body", i)
	}

	got, err := schemaFromFB(footer.Schema(nil))
	require.NoError(t, err)
	assert.True(t, got.Equal(schema))
}
