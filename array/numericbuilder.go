// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package array

import (
	"encoding/binary"
	"math"

	"github.com/solidcoredata/arrow/arrow"
	"github.com/solidcoredata/arrow/float16"
	"github.com/solidcoredata/arrow/memory"
)

// The numeric builders are typed facades over the shared fixed width buffer
// builder: Append encodes one stride-sized element, AppendAny down-casts by
// tag, NewArray detaches [validity, values] into the typed array.

type Int8Builder struct {
	fixedWidthBuilder
}

func NewInt8Builder(mem memory.Allocator) *Int8Builder {
	return &Int8Builder{fixedWidthBuilder{builder: builder{refCount: 1, mem: mem}, stride: 1}}
}

func (b *Int8Builder) Type() arrow.DataType { return arrow.PrimitiveTypes.Int8 }

func (b *Int8Builder) Append(v int8) {
	b.appendRaw([]byte{byte(v)})
}

func (b *Int8Builder) AppendAny(v interface{}) {
	switch v := v.(type) {
	case nil:
		b.AppendNull()
	case int8:
		b.Append(v)
	}
}

func (b *Int8Builder) NewArray() Interface {
	validity, values, length, nulls := b.finish()
	data := newDataFromBuffers(arrow.PrimitiveTypes.Int8, length, nulls, []*memory.Buffer{validity, values}, nil)
	defer data.Release()
	return NewInt8Data(data)
}

type Int16Builder struct {
	fixedWidthBuilder
}

func NewInt16Builder(mem memory.Allocator) *Int16Builder {
	return &Int16Builder{fixedWidthBuilder{builder: builder{refCount: 1, mem: mem}, stride: 2}}
}

func (b *Int16Builder) Type() arrow.DataType { return arrow.PrimitiveTypes.Int16 }

func (b *Int16Builder) Append(v int16) {
	var raw [2]byte
	binary.LittleEndian.PutUint16(raw[:], uint16(v))
	b.appendRaw(raw[:])
}

func (b *Int16Builder) AppendAny(v interface{}) {
	switch v := v.(type) {
	case nil:
		b.AppendNull()
	case int16:
		b.Append(v)
	}
}

func (b *Int16Builder) NewArray() Interface {
	validity, values, length, nulls := b.finish()
	data := newDataFromBuffers(arrow.PrimitiveTypes.Int16, length, nulls, []*memory.Buffer{validity, values}, nil)
	defer data.Release()
	return NewInt16Data(data)
}

type Int32Builder struct {
	fixedWidthBuilder
}

func NewInt32Builder(mem memory.Allocator) *Int32Builder {
	return &Int32Builder{fixedWidthBuilder{builder: builder{refCount: 1, mem: mem}, stride: 4}}
}

func (b *Int32Builder) Type() arrow.DataType { return arrow.PrimitiveTypes.Int32 }

func (b *Int32Builder) Append(v int32) {
	var raw [4]byte
	binary.LittleEndian.PutUint32(raw[:], uint32(v))
	b.appendRaw(raw[:])
}

func (b *Int32Builder) AppendAny(v interface{}) {
	switch v := v.(type) {
	case nil:
		b.AppendNull()
	case int32:
		b.Append(v)
	case int:
		b.Append(int32(v))
	}
}

func (b *Int32Builder) NewArray() Interface {
	validity, values, length, nulls := b.finish()
	data := newDataFromBuffers(arrow.PrimitiveTypes.Int32, length, nulls, []*memory.Buffer{validity, values}, nil)
	defer data.Release()
	return NewInt32Data(data)
}

type Int64Builder struct {
	fixedWidthBuilder
}

func NewInt64Builder(mem memory.Allocator) *Int64Builder {
	return &Int64Builder{fixedWidthBuilder{builder: builder{refCount: 1, mem: mem}, stride: 8}}
}

func (b *Int64Builder) Type() arrow.DataType { return arrow.PrimitiveTypes.Int64 }

func (b *Int64Builder) Append(v int64) {
	var raw [8]byte
	binary.LittleEndian.PutUint64(raw[:], uint64(v))
	b.appendRaw(raw[:])
}

func (b *Int64Builder) AppendAny(v interface{}) {
	switch v := v.(type) {
	case nil:
		b.AppendNull()
	case int64:
		b.Append(v)
	case int:
		b.Append(int64(v))
	}
}

func (b *Int64Builder) NewArray() Interface {
	validity, values, length, nulls := b.finish()
	data := newDataFromBuffers(arrow.PrimitiveTypes.Int64, length, nulls, []*memory.Buffer{validity, values}, nil)
	defer data.Release()
	return NewInt64Data(data)
}

type Uint8Builder struct {
	fixedWidthBuilder
}

func NewUint8Builder(mem memory.Allocator) *Uint8Builder {
	return &Uint8Builder{fixedWidthBuilder{builder: builder{refCount: 1, mem: mem}, stride: 1}}
}

func (b *Uint8Builder) Type() arrow.DataType { return arrow.PrimitiveTypes.Uint8 }

func (b *Uint8Builder) Append(v uint8) {
	b.appendRaw([]byte{v})
}

func (b *Uint8Builder) AppendAny(v interface{}) {
	switch v := v.(type) {
	case nil:
		b.AppendNull()
	case uint8:
		b.Append(v)
	}
}

func (b *Uint8Builder) NewArray() Interface {
	validity, values, length, nulls := b.finish()
	data := newDataFromBuffers(arrow.PrimitiveTypes.Uint8, length, nulls, []*memory.Buffer{validity, values}, nil)
	defer data.Release()
	return NewUint8Data(data)
}

type Uint16Builder struct {
	fixedWidthBuilder
}

func NewUint16Builder(mem memory.Allocator) *Uint16Builder {
	return &Uint16Builder{fixedWidthBuilder{builder: builder{refCount: 1, mem: mem}, stride: 2}}
}

func (b *Uint16Builder) Type() arrow.DataType { return arrow.PrimitiveTypes.Uint16 }

func (b *Uint16Builder) Append(v uint16) {
	var raw [2]byte
	binary.LittleEndian.PutUint16(raw[:], v)
	b.appendRaw(raw[:])
}

func (b *Uint16Builder) AppendAny(v interface{}) {
	switch v := v.(type) {
	case nil:
		b.AppendNull()
	case uint16:
		b.Append(v)
	}
}

func (b *Uint16Builder) NewArray() Interface {
	validity, values, length, nulls := b.finish()
	data := newDataFromBuffers(arrow.PrimitiveTypes.Uint16, length, nulls, []*memory.Buffer{validity, values}, nil)
	defer data.Release()
	return NewUint16Data(data)
}

type Uint32Builder struct {
	fixedWidthBuilder
}

func NewUint32Builder(mem memory.Allocator) *Uint32Builder {
	return &Uint32Builder{fixedWidthBuilder{builder: builder{refCount: 1, mem: mem}, stride: 4}}
}

func (b *Uint32Builder) Type() arrow.DataType { return arrow.PrimitiveTypes.Uint32 }

func (b *Uint32Builder) Append(v uint32) {
	var raw [4]byte
	binary.LittleEndian.PutUint32(raw[:], v)
	b.appendRaw(raw[:])
}

func (b *Uint32Builder) AppendAny(v interface{}) {
	switch v := v.(type) {
	case nil:
		b.AppendNull()
	case uint32:
		b.Append(v)
	}
}

func (b *Uint32Builder) NewArray() Interface {
	validity, values, length, nulls := b.finish()
	data := newDataFromBuffers(arrow.PrimitiveTypes.Uint32, length, nulls, []*memory.Buffer{validity, values}, nil)
	defer data.Release()
	return NewUint32Data(data)
}

type Uint64Builder struct {
	fixedWidthBuilder
}

func NewUint64Builder(mem memory.Allocator) *Uint64Builder {
	return &Uint64Builder{fixedWidthBuilder{builder: builder{refCount: 1, mem: mem}, stride: 8}}
}

func (b *Uint64Builder) Type() arrow.DataType { return arrow.PrimitiveTypes.Uint64 }

func (b *Uint64Builder) Append(v uint64) {
	var raw [8]byte
	binary.LittleEndian.PutUint64(raw[:], v)
	b.appendRaw(raw[:])
}

func (b *Uint64Builder) AppendAny(v interface{}) {
	switch v := v.(type) {
	case nil:
		b.AppendNull()
	case uint64:
		b.Append(v)
	}
}

func (b *Uint64Builder) NewArray() Interface {
	validity, values, length, nulls := b.finish()
	data := newDataFromBuffers(arrow.PrimitiveTypes.Uint64, length, nulls, []*memory.Buffer{validity, values}, nil)
	defer data.Release()
	return NewUint64Data(data)
}

type Float16Builder struct {
	fixedWidthBuilder
}

func NewFloat16Builder(mem memory.Allocator) *Float16Builder {
	return &Float16Builder{fixedWidthBuilder{builder: builder{refCount: 1, mem: mem}, stride: 2}}
}

func (b *Float16Builder) Type() arrow.DataType { return arrow.PrimitiveTypes.Float16 }

func (b *Float16Builder) Append(v float16.Num) {
	var raw [2]byte
	binary.LittleEndian.PutUint16(raw[:], v.Uint16())
	b.appendRaw(raw[:])
}

func (b *Float16Builder) AppendAny(v interface{}) {
	switch v := v.(type) {
	case nil:
		b.AppendNull()
	case float16.Num:
		b.Append(v)
	case float32:
		b.Append(float16.New(v))
	}
}

func (b *Float16Builder) NewArray() Interface {
	validity, values, length, nulls := b.finish()
	data := newDataFromBuffers(arrow.PrimitiveTypes.Float16, length, nulls, []*memory.Buffer{validity, values}, nil)
	defer data.Release()
	return NewFloat16Data(data)
}

type Float32Builder struct {
	fixedWidthBuilder
}

func NewFloat32Builder(mem memory.Allocator) *Float32Builder {
	return &Float32Builder{fixedWidthBuilder{builder: builder{refCount: 1, mem: mem}, stride: 4}}
}

func (b *Float32Builder) Type() arrow.DataType { return arrow.PrimitiveTypes.Float32 }

func (b *Float32Builder) Append(v float32) {
	var raw [4]byte
	binary.LittleEndian.PutUint32(raw[:], math.Float32bits(v))
	b.appendRaw(raw[:])
}

func (b *Float32Builder) AppendAny(v interface{}) {
	switch v := v.(type) {
	case nil:
		b.AppendNull()
	case float32:
		b.Append(v)
	}
}

func (b *Float32Builder) NewArray() Interface {
	validity, values, length, nulls := b.finish()
	data := newDataFromBuffers(arrow.PrimitiveTypes.Float32, length, nulls, []*memory.Buffer{validity, values}, nil)
	defer data.Release()
	return NewFloat32Data(data)
}

type Float64Builder struct {
	fixedWidthBuilder
}

func NewFloat64Builder(mem memory.Allocator) *Float64Builder {
	return &Float64Builder{fixedWidthBuilder{builder: builder{refCount: 1, mem: mem}, stride: 8}}
}

func (b *Float64Builder) Type() arrow.DataType { return arrow.PrimitiveTypes.Float64 }

func (b *Float64Builder) Append(v float64) {
	var raw [8]byte
	binary.LittleEndian.PutUint64(raw[:], math.Float64bits(v))
	b.appendRaw(raw[:])
}

func (b *Float64Builder) AppendAny(v interface{}) {
	switch v := v.(type) {
	case nil:
		b.AppendNull()
	case float64:
		b.Append(v)
	}
}

func (b *Float64Builder) NewArray() Interface {
	validity, values, length, nulls := b.finish()
	data := newDataFromBuffers(arrow.PrimitiveTypes.Float64, length, nulls, []*memory.Buffer{validity, values}, nil)
	defer data.Release()
	return NewFloat64Data(data)
}

type Date32Builder struct {
	fixedWidthBuilder
}

func NewDate32Builder(mem memory.Allocator) *Date32Builder {
	return &Date32Builder{fixedWidthBuilder{builder: builder{refCount: 1, mem: mem}, stride: 4}}
}

func (b *Date32Builder) Type() arrow.DataType { return arrow.PrimitiveTypes.Date32 }

func (b *Date32Builder) Append(v arrow.Date32) {
	var raw [4]byte
	binary.LittleEndian.PutUint32(raw[:], uint32(v))
	b.appendRaw(raw[:])
}

func (b *Date32Builder) AppendAny(v interface{}) {
	switch v := v.(type) {
	case nil:
		b.AppendNull()
	case arrow.Date32:
		b.Append(v)
	}
}

func (b *Date32Builder) NewArray() Interface {
	validity, values, length, nulls := b.finish()
	data := newDataFromBuffers(arrow.PrimitiveTypes.Date32, length, nulls, []*memory.Buffer{validity, values}, nil)
	defer data.Release()
	return NewDate32Data(data)
}

type Date64Builder struct {
	fixedWidthBuilder
}

func NewDate64Builder(mem memory.Allocator) *Date64Builder {
	return &Date64Builder{fixedWidthBuilder{builder: builder{refCount: 1, mem: mem}, stride: 8}}
}

func (b *Date64Builder) Type() arrow.DataType { return arrow.PrimitiveTypes.Date64 }

func (b *Date64Builder) Append(v arrow.Date64) {
	var raw [8]byte
	binary.LittleEndian.PutUint64(raw[:], uint64(v))
	b.appendRaw(raw[:])
}

func (b *Date64Builder) AppendAny(v interface{}) {
	switch v := v.(type) {
	case nil:
		b.AppendNull()
	case arrow.Date64:
		b.Append(v)
	}
}

func (b *Date64Builder) NewArray() Interface {
	validity, values, length, nulls := b.finish()
	data := newDataFromBuffers(arrow.PrimitiveTypes.Date64, length, nulls, []*memory.Buffer{validity, values}, nil)
	defer data.Release()
	return NewDate64Data(data)
}

type Time32Builder struct {
	fixedWidthBuilder
	dtype *arrow.Time32Type
}

func NewTime32Builder(mem memory.Allocator, dtype *arrow.Time32Type) *Time32Builder {
	return &Time32Builder{
		fixedWidthBuilder: fixedWidthBuilder{builder: builder{refCount: 1, mem: mem}, stride: 4},
		dtype:             dtype,
	}
}

func (b *Time32Builder) Type() arrow.DataType { return b.dtype }

func (b *Time32Builder) Append(v arrow.Time32) {
	var raw [4]byte
	binary.LittleEndian.PutUint32(raw[:], uint32(v))
	b.appendRaw(raw[:])
}

func (b *Time32Builder) AppendAny(v interface{}) {
	switch v := v.(type) {
	case nil:
		b.AppendNull()
	case arrow.Time32:
		b.Append(v)
	}
}

func (b *Time32Builder) NewArray() Interface {
	validity, values, length, nulls := b.finish()
	data := newDataFromBuffers(b.dtype, length, nulls, []*memory.Buffer{validity, values}, nil)
	defer data.Release()
	return NewTime32Data(data)
}

type Time64Builder struct {
	fixedWidthBuilder
	dtype *arrow.Time64Type
}

func NewTime64Builder(mem memory.Allocator, dtype *arrow.Time64Type) *Time64Builder {
	return &Time64Builder{
		fixedWidthBuilder: fixedWidthBuilder{builder: builder{refCount: 1, mem: mem}, stride: 8},
		dtype:             dtype,
	}
}

func (b *Time64Builder) Type() arrow.DataType { return b.dtype }

func (b *Time64Builder) Append(v arrow.Time64) {
	var raw [8]byte
	binary.LittleEndian.PutUint64(raw[:], uint64(v))
	b.appendRaw(raw[:])
}

func (b *Time64Builder) AppendAny(v interface{}) {
	switch v := v.(type) {
	case nil:
		b.AppendNull()
	case arrow.Time64:
		b.Append(v)
	}
}

func (b *Time64Builder) NewArray() Interface {
	validity, values, length, nulls := b.finish()
	data := newDataFromBuffers(b.dtype, length, nulls, []*memory.Buffer{validity, values}, nil)
	defer data.Release()
	return NewTime64Data(data)
}

type TimestampBuilder struct {
	fixedWidthBuilder
	dtype *arrow.TimestampType
}

func NewTimestampBuilder(mem memory.Allocator, dtype *arrow.TimestampType) *TimestampBuilder {
	return &TimestampBuilder{
		fixedWidthBuilder: fixedWidthBuilder{builder: builder{refCount: 1, mem: mem}, stride: 8},
		dtype:             dtype,
	}
}

func (b *TimestampBuilder) Type() arrow.DataType { return b.dtype }

func (b *TimestampBuilder) Append(v arrow.Timestamp) {
	var raw [8]byte
	binary.LittleEndian.PutUint64(raw[:], uint64(v))
	b.appendRaw(raw[:])
}

func (b *TimestampBuilder) AppendAny(v interface{}) {
	switch v := v.(type) {
	case nil:
		b.AppendNull()
	case arrow.Timestamp:
		b.Append(v)
	}
}

func (b *TimestampBuilder) NewArray() Interface {
	validity, values, length, nulls := b.finish()
	data := newDataFromBuffers(b.dtype, length, nulls, []*memory.Buffer{validity, values}, nil)
	defer data.Release()
	return NewTimestampData(data)
}

type DurationBuilder struct {
	fixedWidthBuilder
	dtype *arrow.DurationType
}

func NewDurationBuilder(mem memory.Allocator, dtype *arrow.DurationType) *DurationBuilder {
	return &DurationBuilder{
		fixedWidthBuilder: fixedWidthBuilder{builder: builder{refCount: 1, mem: mem}, stride: 8},
		dtype:             dtype,
	}
}

func (b *DurationBuilder) Type() arrow.DataType { return b.dtype }

func (b *DurationBuilder) Append(v arrow.Duration) {
	var raw [8]byte
	binary.LittleEndian.PutUint64(raw[:], uint64(v))
	b.appendRaw(raw[:])
}

func (b *DurationBuilder) AppendAny(v interface{}) {
	switch v := v.(type) {
	case nil:
		b.AppendNull()
	case arrow.Duration:
		b.Append(v)
	}
}

func (b *DurationBuilder) NewArray() Interface {
	validity, values, length, nulls := b.finish()
	data := newDataFromBuffers(b.dtype, length, nulls, []*memory.Buffer{validity, values}, nil)
	defer data.Release()
	return NewDurationData(data)
}
