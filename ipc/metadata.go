// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipc

import (
	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/solidcoredata/arrow/arrow"
	"github.com/solidcoredata/arrow/internal/flatbuf"
)

// fieldMetadata is one FieldNode to be written: the slot count and null
// count of one logical array, in schema-depth-first pre-order.
type fieldMetadata struct {
	Len   int64
	Nulls int64
}

// bufferMetadata is one Buffer record to be written: the offset of a
// physical buffer relative to the body start, and its length padded to 8
// bytes.
type bufferMetadata struct {
	Offset int64
	Len    int64
}

// fileBlock locates one record batch inside the File format.
type fileBlock struct {
	Offset int64
	Meta   int32
	Body   int64
}

// typeToFB lowers a data type to its FlatBuffers union member. Nested types
// return the child fields the caller must lower next; the head offset only
// covers the type's own parameters.
func typeToFB(b *flatbuffers.Builder, dt arrow.DataType) (tag flatbuf.Type, offset flatbuffers.UOffsetT, children []arrow.Field, err error) {
	intType := func(bitWidth int32, signed bool) flatbuffers.UOffsetT {
		flatbuf.IntStart(b)
		flatbuf.IntAddBitWidth(b, bitWidth)
		flatbuf.IntAddIsSigned(b, signed)
		return flatbuf.IntEnd(b)
	}
	floatType := func(precision flatbuf.Precision) flatbuffers.UOffsetT {
		flatbuf.FloatingPointStart(b)
		flatbuf.FloatingPointAddPrecision(b, precision)
		return flatbuf.FloatingPointEnd(b)
	}
	dateType := func(unit flatbuf.DateUnit) flatbuffers.UOffsetT {
		flatbuf.DateStart(b)
		flatbuf.DateAddUnit(b, unit)
		return flatbuf.DateEnd(b)
	}

	switch dt := dt.(type) {
	case *arrow.NullType:
		flatbuf.NullStart(b)
		return flatbuf.TypeNull, flatbuf.NullEnd(b), nil, nil
	case *arrow.BooleanType:
		flatbuf.BoolStart(b)
		return flatbuf.TypeBool, flatbuf.BoolEnd(b), nil, nil
	case *arrow.Int8Type:
		return flatbuf.TypeInt, intType(8, true), nil, nil
	case *arrow.Int16Type:
		return flatbuf.TypeInt, intType(16, true), nil, nil
	case *arrow.Int32Type:
		return flatbuf.TypeInt, intType(32, true), nil, nil
	case *arrow.Int64Type:
		return flatbuf.TypeInt, intType(64, true), nil, nil
	case *arrow.Uint8Type:
		return flatbuf.TypeInt, intType(8, false), nil, nil
	case *arrow.Uint16Type:
		return flatbuf.TypeInt, intType(16, false), nil, nil
	case *arrow.Uint32Type:
		return flatbuf.TypeInt, intType(32, false), nil, nil
	case *arrow.Uint64Type:
		return flatbuf.TypeInt, intType(64, false), nil, nil
	case *arrow.Float16Type:
		return flatbuf.TypeFloatingPoint, floatType(flatbuf.PrecisionHALF), nil, nil
	case *arrow.Float32Type:
		return flatbuf.TypeFloatingPoint, floatType(flatbuf.PrecisionSINGLE), nil, nil
	case *arrow.Float64Type:
		return flatbuf.TypeFloatingPoint, floatType(flatbuf.PrecisionDOUBLE), nil, nil
	case *arrow.StringType:
		flatbuf.Utf8Start(b)
		return flatbuf.TypeUtf8, flatbuf.Utf8End(b), nil, nil
	case *arrow.BinaryType:
		flatbuf.BinaryStart(b)
		return flatbuf.TypeBinary, flatbuf.BinaryEnd(b), nil, nil
	case *arrow.LargeStringType:
		flatbuf.LargeUtf8Start(b)
		return flatbuf.TypeLargeUtf8, flatbuf.LargeUtf8End(b), nil, nil
	case *arrow.LargeBinaryType:
		flatbuf.LargeBinaryStart(b)
		return flatbuf.TypeLargeBinary, flatbuf.LargeBinaryEnd(b), nil, nil
	case *arrow.FixedSizeBinaryType:
		flatbuf.FixedSizeBinaryStart(b)
		flatbuf.FixedSizeBinaryAddByteWidth(b, int32(dt.ByteWidth))
		return flatbuf.TypeFixedSizeBinary, flatbuf.FixedSizeBinaryEnd(b), nil, nil
	case *arrow.Date32Type:
		return flatbuf.TypeDate, dateType(flatbuf.DateUnitDAY), nil, nil
	case *arrow.Date64Type:
		return flatbuf.TypeDate, dateType(flatbuf.DateUnitMILLISECOND), nil, nil
	case *arrow.Time32Type:
		flatbuf.TimeStart(b)
		flatbuf.TimeAddUnit(b, timeUnitToFB(dt.Unit))
		flatbuf.TimeAddBitWidth(b, 32)
		return flatbuf.TypeTime, flatbuf.TimeEnd(b), nil, nil
	case *arrow.Time64Type:
		flatbuf.TimeStart(b)
		flatbuf.TimeAddUnit(b, timeUnitToFB(dt.Unit))
		flatbuf.TimeAddBitWidth(b, 64)
		return flatbuf.TypeTime, flatbuf.TimeEnd(b), nil, nil
	case *arrow.TimestampType:
		var tz flatbuffers.UOffsetT
		if dt.TimeZone != "" {
			tz = b.CreateString(dt.TimeZone)
		}
		flatbuf.TimestampStart(b)
		flatbuf.TimestampAddUnit(b, timeUnitToFB(dt.Unit))
		if tz != 0 {
			flatbuf.TimestampAddTimezone(b, tz)
		}
		return flatbuf.TypeTimestamp, flatbuf.TimestampEnd(b), nil, nil
	case *arrow.DurationType:
		flatbuf.DurationStart(b)
		flatbuf.DurationAddUnit(b, timeUnitToFB(dt.Unit))
		return flatbuf.TypeDuration, flatbuf.DurationEnd(b), nil, nil
	case *arrow.IntervalType:
		flatbuf.IntervalStart(b)
		flatbuf.IntervalAddUnit(b, flatbuf.IntervalUnit(dt.Unit))
		return flatbuf.TypeInterval, flatbuf.IntervalEnd(b), nil, nil
	case *arrow.Decimal32Type:
		return flatbuf.TypeDecimal, decimalToFB(b, dt.Precision, dt.Scale, 32), nil, nil
	case *arrow.Decimal64Type:
		return flatbuf.TypeDecimal, decimalToFB(b, dt.Precision, dt.Scale, 64), nil, nil
	case *arrow.Decimal128Type:
		return flatbuf.TypeDecimal, decimalToFB(b, dt.Precision, dt.Scale, 128), nil, nil
	case *arrow.Decimal256Type:
		return flatbuf.TypeDecimal, decimalToFB(b, dt.Precision, dt.Scale, 256), nil, nil
	case *arrow.ListType:
		flatbuf.ListStart(b)
		return flatbuf.TypeList, flatbuf.ListEnd(b), []arrow.Field{dt.ElemField()}, nil
	case *arrow.LargeListType:
		flatbuf.LargeListStart(b)
		return flatbuf.TypeLargeList, flatbuf.LargeListEnd(b), []arrow.Field{dt.ElemField()}, nil
	case *arrow.FixedSizeListType:
		flatbuf.FixedSizeListStart(b)
		flatbuf.FixedSizeListAddListSize(b, dt.Len())
		return flatbuf.TypeFixedSizeList, flatbuf.FixedSizeListEnd(b), []arrow.Field{dt.ElemField()}, nil
	case *arrow.StructType:
		flatbuf.Struct_Start(b)
		return flatbuf.TypeStruct_, flatbuf.Struct_End(b), dt.Fields(), nil
	case *arrow.MapType:
		flatbuf.MapStart(b)
		flatbuf.MapAddKeysSorted(b, dt.KeysSorted)
		return flatbuf.TypeMap, flatbuf.MapEnd(b), []arrow.Field{dt.ElemField()}, nil
	case *arrow.RunEndEncodedType:
		flatbuf.RunEndEncodedStart(b)
		return flatbuf.TypeRunEndEncoded, flatbuf.RunEndEncodedEnd(b), []arrow.Field{dt.RunEnds, dt.Values}, nil
	}
	return flatbuf.TypeNONE, 0, nil, arrow.Invalidf("type %v has no wire form", dt)
}

func decimalToFB(b *flatbuffers.Builder, precision, scale int32, bits int32) flatbuffers.UOffsetT {
	flatbuf.DecimalStart(b)
	flatbuf.DecimalAddPrecision(b, precision)
	flatbuf.DecimalAddScale(b, scale)
	flatbuf.DecimalAddBitWidth(b, bits)
	return flatbuf.DecimalEnd(b)
}

func timeUnitToFB(unit arrow.TimeUnit) flatbuf.TimeUnit {
	return flatbuf.TimeUnit(unit)
}

func timeUnitFromFB(unit flatbuf.TimeUnit) arrow.TimeUnit {
	return arrow.TimeUnit(unit)
}

// fieldToFB lowers a field, its type, its children, and its metadata.
func fieldToFB(b *flatbuffers.Builder, field arrow.Field) (flatbuffers.UOffsetT, error) {
	var (
		name = b.CreateString(field.Name)
		dt   = field.Type
		dict *arrow.DictionaryType
	)
	if dd, ok := dt.(*arrow.DictionaryType); ok {
		// the field carries the value type; the index type rides in the
		// dictionary encoding
		dict = dd
		dt = dd.ValueType
	}

	tag, typOffset, childFields, err := typeToFB(b, dt)
	if err != nil {
		return 0, err
	}

	children := make([]flatbuffers.UOffsetT, len(childFields))
	for i, cf := range childFields {
		children[i], err = fieldToFB(b, cf)
		if err != nil {
			return 0, err
		}
	}
	var childVec flatbuffers.UOffsetT
	if len(children) > 0 {
		flatbuf.FieldStartChildrenVector(b, len(children))
		for i := len(children) - 1; i >= 0; i-- {
			b.PrependUOffsetT(children[i])
		}
		childVec = b.EndVector(len(children))
	}

	var dictOffset flatbuffers.UOffsetT
	if dict != nil {
		idxTag, idxOffset, _, err := typeToFB(b, dict.IndexType)
		if err != nil {
			return 0, err
		}
		if idxTag != flatbuf.TypeInt {
			return 0, arrow.Invalidf("dictionary index type %v is not an integer", dict.IndexType)
		}
		flatbuf.DictionaryEncodingStart(b)
		flatbuf.DictionaryEncodingAddIndexType(b, idxOffset)
		flatbuf.DictionaryEncodingAddIsOrdered(b, dict.Ordered)
		dictOffset = flatbuf.DictionaryEncodingEnd(b)
	}

	meta := metadataToFB(b, field.Metadata, flatbuf.FieldStartCustomMetadataVector)

	flatbuf.FieldStart(b)
	flatbuf.FieldAddName(b, name)
	flatbuf.FieldAddNullable(b, field.Nullable)
	flatbuf.FieldAddTypeType(b, tag)
	flatbuf.FieldAddType(b, typOffset)
	if dictOffset != 0 {
		flatbuf.FieldAddDictionary(b, dictOffset)
	}
	if childVec != 0 {
		flatbuf.FieldAddChildren(b, childVec)
	}
	if meta != 0 {
		flatbuf.FieldAddCustomMetadata(b, meta)
	}
	return flatbuf.FieldEnd(b), nil
}

func metadataToFB(b *flatbuffers.Builder, meta arrow.Metadata, start func(*flatbuffers.Builder, int) flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	if meta.Len() == 0 {
		return 0
	}
	n := meta.Len()
	kvs := make([]flatbuffers.UOffsetT, n)
	for i := 0; i < n; i++ {
		k := b.CreateString(meta.Keys()[i])
		v := b.CreateString(meta.Values()[i])
		flatbuf.KeyValueStart(b)
		flatbuf.KeyValueAddKey(b, k)
		flatbuf.KeyValueAddValue(b, v)
		kvs[i] = flatbuf.KeyValueEnd(b)
	}
	start(b, n)
	for i := n - 1; i >= 0; i-- {
		b.PrependUOffsetT(kvs[i])
	}
	return b.EndVector(n)
}

func metadataFromFB(kv func(*flatbuf.KeyValue, int) bool, n int) arrow.Metadata {
	keys := make([]string, 0, n)
	values := make([]string, 0, n)
	for i := 0; i < n; i++ {
		var pair flatbuf.KeyValue
		if !kv(&pair, i) {
			continue
		}
		keys = append(keys, string(pair.Key()))
		values = append(values, string(pair.Value()))
	}
	return arrow.NewMetadata(keys, values)
}

// schemaToFB lowers a schema with its fields and metadata.
func schemaToFB(b *flatbuffers.Builder, schema *arrow.Schema) (flatbuffers.UOffsetT, error) {
	fields := make([]flatbuffers.UOffsetT, schema.NumFields())
	for i, f := range schema.Fields() {
		offset, err := fieldToFB(b, f)
		if err != nil {
			return 0, err
		}
		fields[i] = offset
	}
	flatbuf.SchemaStartFieldsVector(b, len(fields))
	for i := len(fields) - 1; i >= 0; i-- {
		b.PrependUOffsetT(fields[i])
	}
	fieldVec := b.EndVector(len(fields))

	meta := metadataToFB(b, schema.Metadata(), flatbuf.SchemaStartCustomMetadataVector)

	flatbuf.SchemaStart(b)
	flatbuf.SchemaAddEndianness(b, flatbuf.EndiannessLittle)
	flatbuf.SchemaAddFields(b, fieldVec)
	if meta != 0 {
		flatbuf.SchemaAddCustomMetadata(b, meta)
	}
	return flatbuf.SchemaEnd(b), nil
}

// typeFromFB raises the FlatBuffers union member of fb back into a data
// type, recursing through the already-raised child fields.
func typeFromFB(fb *flatbuf.Field, children []arrow.Field) (arrow.DataType, error) {
	var tbl flatbuffers.Table
	if !fb.Type(&tbl) {
		return nil, arrow.Invalidf("field %q carries no type", fb.Name())
	}
	requireChildren := func(n int) error {
		if len(children) != n {
			return arrow.Invalidf("type %v requires %d children, got %d", fb.TypeType(), n, len(children))
		}
		return nil
	}
	switch fb.TypeType() {
	case flatbuf.TypeNull:
		return arrow.Null, nil
	case flatbuf.TypeBool:
		return arrow.FixedWidthTypes.Boolean, nil
	case flatbuf.TypeInt:
		var dt flatbuf.Int
		dt.Init(tbl.Bytes, tbl.Pos)
		return intFromFB(&dt)
	case flatbuf.TypeFloatingPoint:
		var dt flatbuf.FloatingPoint
		dt.Init(tbl.Bytes, tbl.Pos)
		return floatFromFB(&dt)
	case flatbuf.TypeUtf8:
		return arrow.BinaryTypes.String, nil
	case flatbuf.TypeBinary:
		return arrow.BinaryTypes.Binary, nil
	case flatbuf.TypeLargeUtf8:
		return arrow.BinaryTypes.LargeString, nil
	case flatbuf.TypeLargeBinary:
		return arrow.BinaryTypes.LargeBinary, nil
	case flatbuf.TypeFixedSizeBinary:
		var dt flatbuf.FixedSizeBinary
		dt.Init(tbl.Bytes, tbl.Pos)
		return &arrow.FixedSizeBinaryType{ByteWidth: int(dt.ByteWidth())}, nil
	case flatbuf.TypeDate:
		var dt flatbuf.Date
		dt.Init(tbl.Bytes, tbl.Pos)
		if dt.Unit() == flatbuf.DateUnitDAY {
			return arrow.FixedWidthTypes.Date32, nil
		}
		return arrow.FixedWidthTypes.Date64, nil
	case flatbuf.TypeTime:
		var dt flatbuf.Time
		dt.Init(tbl.Bytes, tbl.Pos)
		if dt.BitWidth() == 32 {
			return &arrow.Time32Type{Unit: timeUnitFromFB(dt.Unit())}, nil
		}
		return &arrow.Time64Type{Unit: timeUnitFromFB(dt.Unit())}, nil
	case flatbuf.TypeTimestamp:
		var dt flatbuf.Timestamp
		dt.Init(tbl.Bytes, tbl.Pos)
		return &arrow.TimestampType{Unit: timeUnitFromFB(dt.Unit()), TimeZone: string(dt.Timezone())}, nil
	case flatbuf.TypeDuration:
		var dt flatbuf.Duration
		dt.Init(tbl.Bytes, tbl.Pos)
		return &arrow.DurationType{Unit: timeUnitFromFB(dt.Unit())}, nil
	case flatbuf.TypeInterval:
		var dt flatbuf.Interval
		dt.Init(tbl.Bytes, tbl.Pos)
		return &arrow.IntervalType{Unit: arrow.IntervalUnit(dt.Unit())}, nil
	case flatbuf.TypeDecimal:
		var dt flatbuf.Decimal
		dt.Init(tbl.Bytes, tbl.Pos)
		return decimalFromFB(&dt)
	case flatbuf.TypeList:
		if err := requireChildren(1); err != nil {
			return nil, err
		}
		return arrow.ListOfField(children[0]), nil
	case flatbuf.TypeLargeList:
		if err := requireChildren(1); err != nil {
			return nil, err
		}
		lt := arrow.LargeListOf(children[0].Type)
		return lt, nil
	case flatbuf.TypeFixedSizeList:
		if err := requireChildren(1); err != nil {
			return nil, err
		}
		var dt flatbuf.FixedSizeList
		dt.Init(tbl.Bytes, tbl.Pos)
		return arrow.FixedSizeListOf(dt.ListSize(), children[0].Type), nil
	case flatbuf.TypeStruct_:
		return arrow.StructOf(children...), nil
	case flatbuf.TypeMap:
		if err := requireChildren(1); err != nil {
			return nil, err
		}
		var dt flatbuf.Map
		dt.Init(tbl.Bytes, tbl.Pos)
		st, ok := children[0].Type.(*arrow.StructType)
		if !ok || st.NumFields() != 2 {
			return nil, arrow.Invalidf("map entries must be a two field struct")
		}
		mt := arrow.MapOf(st.Field(0).Type, st.Field(1).Type)
		mt.KeysSorted = dt.KeysSorted()
		return mt, nil
	case flatbuf.TypeRunEndEncoded:
		if err := requireChildren(2); err != nil {
			return nil, err
		}
		return &arrow.RunEndEncodedType{RunEnds: children[0], Values: children[1]}, nil
	}
	return nil, arrow.Invalidf("type tag %v is not supported", fb.TypeType())
}

func intFromFB(dt *flatbuf.Int) (arrow.DataType, error) {
	switch width, signed := dt.BitWidth(), dt.IsSigned(); {
	case width == 8 && signed:
		return arrow.PrimitiveTypes.Int8, nil
	case width == 8:
		return arrow.PrimitiveTypes.Uint8, nil
	case width == 16 && signed:
		return arrow.PrimitiveTypes.Int16, nil
	case width == 16:
		return arrow.PrimitiveTypes.Uint16, nil
	case width == 32 && signed:
		return arrow.PrimitiveTypes.Int32, nil
	case width == 32:
		return arrow.PrimitiveTypes.Uint32, nil
	case width == 64 && signed:
		return arrow.PrimitiveTypes.Int64, nil
	case width == 64:
		return arrow.PrimitiveTypes.Uint64, nil
	}
	return nil, arrow.Invalidf("integer bit width %d is not supported", dt.BitWidth())
}

func floatFromFB(dt *flatbuf.FloatingPoint) (arrow.DataType, error) {
	switch dt.Precision() {
	case flatbuf.PrecisionHALF:
		return arrow.PrimitiveTypes.Float16, nil
	case flatbuf.PrecisionSINGLE:
		return arrow.PrimitiveTypes.Float32, nil
	case flatbuf.PrecisionDOUBLE:
		return arrow.PrimitiveTypes.Float64, nil
	}
	return nil, arrow.Invalidf("floating point precision %v is not supported", dt.Precision())
}

func decimalFromFB(dt *flatbuf.Decimal) (arrow.DataType, error) {
	p, s := dt.Precision(), dt.Scale()
	switch dt.BitWidth() {
	case 32:
		return &arrow.Decimal32Type{Precision: p, Scale: s}, nil
	case 64:
		return &arrow.Decimal64Type{Precision: p, Scale: s}, nil
	case 128:
		return &arrow.Decimal128Type{Precision: p, Scale: s}, nil
	case 256:
		return &arrow.Decimal256Type{Precision: p, Scale: s}, nil
	}
	return nil, arrow.Invalidf("decimal bit width %d is not supported", dt.BitWidth())
}

// fieldFromFB raises one field, recursing through its children first.
func fieldFromFB(fb *flatbuf.Field) (arrow.Field, error) {
	children := make([]arrow.Field, fb.ChildrenLength())
	for i := range children {
		var childFB flatbuf.Field
		if !fb.Children(&childFB, i) {
			return arrow.Field{}, arrow.Invalidf("field %q: missing child %d", fb.Name(), i)
		}
		child, err := fieldFromFB(&childFB)
		if err != nil {
			return arrow.Field{}, err
		}
		children[i] = child
	}

	dt, err := typeFromFB(fb, children)
	if err != nil {
		return arrow.Field{}, err
	}

	if enc := fb.Dictionary(nil); enc != nil {
		idx := enc.IndexType(nil)
		indexType := arrow.DataType(arrow.PrimitiveTypes.Int32)
		if idx != nil {
			indexType, err = intFromFB(idx)
			if err != nil {
				return arrow.Field{}, err
			}
		}
		dt = &arrow.DictionaryType{IndexType: indexType, ValueType: dt, Ordered: enc.IsOrdered()}
	}

	meta := metadataFromFB(fb.CustomMetadata, fb.CustomMetadataLength())
	return arrow.Field{
		Name:     string(fb.Name()),
		Type:     dt,
		Nullable: fb.Nullable(),
		Metadata: meta,
	}, nil
}

// schemaFromFB raises a wire schema back into the internal form.
func schemaFromFB(fb *flatbuf.Schema) (*arrow.Schema, error) {
	if fb == nil {
		return nil, arrow.Invalidf("no schema in message")
	}
	sb := arrow.SchemaBuilder{}
	for i := 0; i < fb.FieldsLength(); i++ {
		var fieldFB flatbuf.Field
		if !fb.Fields(&fieldFB, i) {
			return nil, arrow.Invalidf("could not read field %d", i)
		}
		field, err := fieldFromFB(&fieldFB)
		if err != nil {
			return nil, err
		}
		sb.Append(field)
	}
	sb.Metadata = metadataFromFB(fb.CustomMetadata, fb.CustomMetadataLength())
	return sb.Finish(), nil
}

// writeMessageFB finishes a framed Message flatbuffer around hdr.
func writeMessageFB(b *flatbuffers.Builder, hdrType flatbuf.MessageHeader, hdr flatbuffers.UOffsetT, bodyLength int64) []byte {
	flatbuf.MessageStart(b)
	flatbuf.MessageAddVersion(b, flatbuf.MetadataVersionV5)
	flatbuf.MessageAddHeaderType(b, hdrType)
	flatbuf.MessageAddHeader(b, hdr)
	flatbuf.MessageAddBodyLength(b, bodyLength)
	b.Finish(flatbuf.MessageEnd(b))
	return b.FinishedBytes()
}

// writeSchemaMessage encodes a schema message; schema messages have no
// body.
func writeSchemaMessage(schema *arrow.Schema) ([]byte, error) {
	b := flatbuffers.NewBuilder(1024)
	schemaFB, err := schemaToFB(b, schema)
	if err != nil {
		return nil, err
	}
	return writeMessageFB(b, flatbuf.MessageHeaderSchema, schemaFB, 0), nil
}

// writeRecordMessage encodes a record batch header. The FieldNode and
// Buffer vectors are prepended in reverse so the wire order is the logical
// pre-order of the depth-first schema walk.
func writeRecordMessage(nrows, bodyLength int64, fields []fieldMetadata, bufs []bufferMetadata) []byte {
	b := flatbuffers.NewBuilder(1024)

	flatbuf.RecordBatchStartNodesVector(b, len(fields))
	for i := len(fields) - 1; i >= 0; i-- {
		flatbuf.CreateFieldNode(b, fields[i].Len, fields[i].Nulls)
	}
	nodes := b.EndVector(len(fields))

	flatbuf.RecordBatchStartBuffersVector(b, len(bufs))
	for i := len(bufs) - 1; i >= 0; i-- {
		flatbuf.CreateBuffer(b, bufs[i].Offset, bufs[i].Len)
	}
	buffers := b.EndVector(len(bufs))

	flatbuf.RecordBatchStart(b)
	flatbuf.RecordBatchAddLength(b, nrows)
	flatbuf.RecordBatchAddNodes(b, nodes)
	flatbuf.RecordBatchAddBuffers(b, buffers)
	rec := flatbuf.RecordBatchEnd(b)

	return writeMessageFB(b, flatbuf.MessageHeaderRecordBatch, rec, bodyLength)
}

// writeFileFooter encodes the File footer: the schema plus one Block per
// record batch.
func writeFileFooter(schema *arrow.Schema, blocks []fileBlock) ([]byte, error) {
	b := flatbuffers.NewBuilder(1024)
	schemaFB, err := schemaToFB(b, schema)
	if err != nil {
		return nil, err
	}

	flatbuf.FooterStartRecordBatchesVector(b, len(blocks))
	for i := len(blocks) - 1; i >= 0; i-- {
		flatbuf.CreateBlock(b, blocks[i].Offset, blocks[i].Meta, blocks[i].Body)
	}
	recordBatches := b.EndVector(len(blocks))

	flatbuf.FooterStart(b)
	flatbuf.FooterAddVersion(b, flatbuf.MetadataVersionV5)
	flatbuf.FooterAddSchema(b, schemaFB)
	flatbuf.FooterAddRecordBatches(b, recordBatches)
	b.Finish(flatbuf.FooterEnd(b))
	return b.FinishedBytes(), nil
}
