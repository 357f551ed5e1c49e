// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package array

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/solidcoredata/arrow/arrow"
	"github.com/solidcoredata/arrow/float16"
)

// numericString renders any fixed width array the way arrow-cat prints it:
// values separated by single spaces, null slots as (null).
func numericString(a Interface) string {
	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < a.Len(); i++ {
		if i > 0 {
			b.WriteString(" ")
		}
		if a.IsNull(i) {
			b.WriteString(NullValueStr)
			continue
		}
		fmt.Fprintf(&b, "%v", a.getOneForIndex(i))
	}
	b.WriteString("]")
	return b.String()
}

func valuesBytes(data *Data) []byte {
	if len(data.buffers) < 2 || data.buffers[1] == nil {
		return nil
	}
	return data.buffers[1].Bytes()
}

// Int8 is a read-only facade over int8 data.
type Int8 struct {
	array
	values []byte
}

func NewInt8Data(data *Data) *Int8 {
	a := &Int8{array: array{refCount: 1}}
	a.setData(data)
	a.values = valuesBytes(data)
	return a
}

func (a *Int8) Value(i int) int8 { return int8(a.values[i]) }
func (a *Int8) getOneForIndex(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	return a.Value(i)
}
func (a *Int8) String() string { return numericString(a) }

type Int16 struct {
	array
	values []byte
}

func NewInt16Data(data *Data) *Int16 {
	a := &Int16{array: array{refCount: 1}}
	a.setData(data)
	a.values = valuesBytes(data)
	return a
}

func (a *Int16) Value(i int) int16 {
	return int16(binary.LittleEndian.Uint16(a.values[i*2:]))
}
func (a *Int16) getOneForIndex(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	return a.Value(i)
}
func (a *Int16) String() string { return numericString(a) }

type Int32 struct {
	array
	values []byte
}

func NewInt32Data(data *Data) *Int32 {
	a := &Int32{array: array{refCount: 1}}
	a.setData(data)
	a.values = valuesBytes(data)
	return a
}

func (a *Int32) Value(i int) int32 {
	return int32(binary.LittleEndian.Uint32(a.values[i*4:]))
}
func (a *Int32) getOneForIndex(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	return a.Value(i)
}
func (a *Int32) String() string { return numericString(a) }

type Int64 struct {
	array
	values []byte
}

func NewInt64Data(data *Data) *Int64 {
	a := &Int64{array: array{refCount: 1}}
	a.setData(data)
	a.values = valuesBytes(data)
	return a
}

func (a *Int64) Value(i int) int64 {
	return int64(binary.LittleEndian.Uint64(a.values[i*8:]))
}
func (a *Int64) getOneForIndex(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	return a.Value(i)
}
func (a *Int64) String() string { return numericString(a) }

type Uint8 struct {
	array
	values []byte
}

func NewUint8Data(data *Data) *Uint8 {
	a := &Uint8{array: array{refCount: 1}}
	a.setData(data)
	a.values = valuesBytes(data)
	return a
}

func (a *Uint8) Value(i int) uint8 { return a.values[i] }
func (a *Uint8) getOneForIndex(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	return a.Value(i)
}
func (a *Uint8) String() string { return numericString(a) }

type Uint16 struct {
	array
	values []byte
}

func NewUint16Data(data *Data) *Uint16 {
	a := &Uint16{array: array{refCount: 1}}
	a.setData(data)
	a.values = valuesBytes(data)
	return a
}

func (a *Uint16) Value(i int) uint16 {
	return binary.LittleEndian.Uint16(a.values[i*2:])
}
func (a *Uint16) getOneForIndex(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	return a.Value(i)
}
func (a *Uint16) String() string { return numericString(a) }

type Uint32 struct {
	array
	values []byte
}

func NewUint32Data(data *Data) *Uint32 {
	a := &Uint32{array: array{refCount: 1}}
	a.setData(data)
	a.values = valuesBytes(data)
	return a
}

func (a *Uint32) Value(i int) uint32 {
	return binary.LittleEndian.Uint32(a.values[i*4:])
}
func (a *Uint32) getOneForIndex(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	return a.Value(i)
}
func (a *Uint32) String() string { return numericString(a) }

type Uint64 struct {
	array
	values []byte
}

func NewUint64Data(data *Data) *Uint64 {
	a := &Uint64{array: array{refCount: 1}}
	a.setData(data)
	a.values = valuesBytes(data)
	return a
}

func (a *Uint64) Value(i int) uint64 {
	return binary.LittleEndian.Uint64(a.values[i*8:])
}
func (a *Uint64) getOneForIndex(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	return a.Value(i)
}
func (a *Uint64) String() string { return numericString(a) }

type Float16 struct {
	array
	values []byte
}

func NewFloat16Data(data *Data) *Float16 {
	a := &Float16{array: array{refCount: 1}}
	a.setData(data)
	a.values = valuesBytes(data)
	return a
}

func (a *Float16) Value(i int) float16.Num {
	return float16.FromBits(binary.LittleEndian.Uint16(a.values[i*2:]))
}
func (a *Float16) getOneForIndex(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	return a.Value(i)
}
func (a *Float16) String() string { return numericString(a) }

type Float32 struct {
	array
	values []byte
}

func NewFloat32Data(data *Data) *Float32 {
	a := &Float32{array: array{refCount: 1}}
	a.setData(data)
	a.values = valuesBytes(data)
	return a
}

func (a *Float32) Value(i int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(a.values[i*4:]))
}
func (a *Float32) getOneForIndex(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	return a.Value(i)
}
func (a *Float32) String() string { return numericString(a) }

type Float64 struct {
	array
	values []byte
}

func NewFloat64Data(data *Data) *Float64 {
	a := &Float64{array: array{refCount: 1}}
	a.setData(data)
	a.values = valuesBytes(data)
	return a
}

func (a *Float64) Value(i int) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(a.values[i*8:]))
}
func (a *Float64) getOneForIndex(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	return a.Value(i)
}
func (a *Float64) String() string { return numericString(a) }

type Date32 struct {
	array
	values []byte
}

func NewDate32Data(data *Data) *Date32 {
	a := &Date32{array: array{refCount: 1}}
	a.setData(data)
	a.values = valuesBytes(data)
	return a
}

func (a *Date32) Value(i int) arrow.Date32 {
	return arrow.Date32(binary.LittleEndian.Uint32(a.values[i*4:]))
}
func (a *Date32) getOneForIndex(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	return a.Value(i)
}
func (a *Date32) String() string { return numericString(a) }

type Date64 struct {
	array
	values []byte
}

func NewDate64Data(data *Data) *Date64 {
	a := &Date64{array: array{refCount: 1}}
	a.setData(data)
	a.values = valuesBytes(data)
	return a
}

func (a *Date64) Value(i int) arrow.Date64 {
	return arrow.Date64(binary.LittleEndian.Uint64(a.values[i*8:]))
}
func (a *Date64) getOneForIndex(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	return a.Value(i)
}
func (a *Date64) String() string { return numericString(a) }

type Time32 struct {
	array
	values []byte
}

func NewTime32Data(data *Data) *Time32 {
	a := &Time32{array: array{refCount: 1}}
	a.setData(data)
	a.values = valuesBytes(data)
	return a
}

func (a *Time32) Value(i int) arrow.Time32 {
	return arrow.Time32(binary.LittleEndian.Uint32(a.values[i*4:]))
}
func (a *Time32) getOneForIndex(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	return a.Value(i)
}
func (a *Time32) String() string { return numericString(a) }

type Time64 struct {
	array
	values []byte
}

func NewTime64Data(data *Data) *Time64 {
	a := &Time64{array: array{refCount: 1}}
	a.setData(data)
	a.values = valuesBytes(data)
	return a
}

func (a *Time64) Value(i int) arrow.Time64 {
	return arrow.Time64(binary.LittleEndian.Uint64(a.values[i*8:]))
}
func (a *Time64) getOneForIndex(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	return a.Value(i)
}
func (a *Time64) String() string { return numericString(a) }

// Timestamp stores elapsed time since the UNIX epoch; the unit and the
// optional timezone live on the data type.
type Timestamp struct {
	array
	values []byte
}

func NewTimestampData(data *Data) *Timestamp {
	a := &Timestamp{array: array{refCount: 1}}
	a.setData(data)
	a.values = valuesBytes(data)
	return a
}

func (a *Timestamp) Value(i int) arrow.Timestamp {
	return arrow.Timestamp(binary.LittleEndian.Uint64(a.values[i*8:]))
}

// ValueTime resolves slot i to an instant in the type's timezone.
func (a *Timestamp) ValueTime(i int) (time.Time, error) {
	return a.DataType().(*arrow.TimestampType).ToTime(a.Value(i))
}

func (a *Timestamp) getOneForIndex(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	return a.Value(i)
}
func (a *Timestamp) String() string { return numericString(a) }

type Duration struct {
	array
	values []byte
}

func NewDurationData(data *Data) *Duration {
	a := &Duration{array: array{refCount: 1}}
	a.setData(data)
	a.values = valuesBytes(data)
	return a
}

func (a *Duration) Value(i int) arrow.Duration {
	return arrow.Duration(binary.LittleEndian.Uint64(a.values[i*8:]))
}
func (a *Duration) getOneForIndex(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	return a.Value(i)
}
func (a *Duration) String() string { return numericString(a) }
