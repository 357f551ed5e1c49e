// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arrow

import (
	"fmt"
	"time"
)

// Typed scalar values for the temporal types. Each is the raw stored count;
// the unit lives on the data type.
type (
	Date32    int32 // days since the UNIX epoch
	Date64    int64 // milliseconds since the UNIX epoch
	Time32    int32
	Time64    int64
	Timestamp int64
	Duration  int64
)

// ToTime converts the day offset to the UTC midnight of that day.
func (d Date32) ToTime() time.Time {
	return time.Unix(int64(d)*86400, 0).UTC()
}

// ToTime converts the millisecond offset to a UTC instant.
func (d Date64) ToTime() time.Time {
	return time.Unix(0, int64(d)*int64(time.Millisecond)).UTC()
}

// TimeUnit is the granularity of a time, timestamp, or duration value.
type TimeUnit int

const (
	Second TimeUnit = iota
	Millisecond
	Microsecond
	Nanosecond
)

func (u TimeUnit) String() string { return [...]string{"s", "ms", "us", "ns"}[u] }

// IntervalUnit selects the memory layout of an interval value.
type IntervalUnit int

const (
	YearMonthInterval IntervalUnit = iota
	DayTimeInterval
	MonthDayNanoInterval
)

func (u IntervalUnit) String() string {
	return [...]string{"year_month", "day_time", "month_day_nano"}[u]
}

type NullType struct{}

func (*NullType) ID() Type            { return NULL }
func (*NullType) Name() string        { return "null" }
func (*NullType) Stride() int         { return 0 }
func (*NullType) CDataFormat() string { return "n" }
func (*NullType) String() string      { return "null" }

type BooleanType struct{}

func (*BooleanType) ID() Type     { return BOOL }
func (*BooleanType) Name() string { return "bool" }

// Stride reports 1 even though boolean values are bit packed; the values
// buffer is sized by BytesForBits, not by stride.
func (*BooleanType) Stride() int         { return 1 }
func (*BooleanType) CDataFormat() string { return "b" }
func (*BooleanType) String() string      { return "bool" }

type Int8Type struct{}

func (*Int8Type) ID() Type            { return INT8 }
func (*Int8Type) Name() string        { return "int8" }
func (*Int8Type) Stride() int         { return 1 }
func (*Int8Type) CDataFormat() string { return "c" }
func (*Int8Type) String() string      { return "int8" }

type Int16Type struct{}

func (*Int16Type) ID() Type            { return INT16 }
func (*Int16Type) Name() string        { return "int16" }
func (*Int16Type) Stride() int         { return 2 }
func (*Int16Type) CDataFormat() string { return "s" }
func (*Int16Type) String() string      { return "int16" }

type Int32Type struct{}

func (*Int32Type) ID() Type            { return INT32 }
func (*Int32Type) Name() string        { return "int32" }
func (*Int32Type) Stride() int         { return 4 }
func (*Int32Type) CDataFormat() string { return "i" }
func (*Int32Type) String() string      { return "int32" }

type Int64Type struct{}

func (*Int64Type) ID() Type            { return INT64 }
func (*Int64Type) Name() string        { return "int64" }
func (*Int64Type) Stride() int         { return 8 }
func (*Int64Type) CDataFormat() string { return "l" }
func (*Int64Type) String() string      { return "int64" }

type Uint8Type struct{}

func (*Uint8Type) ID() Type            { return UINT8 }
func (*Uint8Type) Name() string        { return "uint8" }
func (*Uint8Type) Stride() int         { return 1 }
func (*Uint8Type) CDataFormat() string { return "C" }
func (*Uint8Type) String() string      { return "uint8" }

type Uint16Type struct{}

func (*Uint16Type) ID() Type            { return UINT16 }
func (*Uint16Type) Name() string        { return "uint16" }
func (*Uint16Type) Stride() int         { return 2 }
func (*Uint16Type) CDataFormat() string { return "S" }
func (*Uint16Type) String() string      { return "uint16" }

type Uint32Type struct{}

func (*Uint32Type) ID() Type            { return UINT32 }
func (*Uint32Type) Name() string        { return "uint32" }
func (*Uint32Type) Stride() int         { return 4 }
func (*Uint32Type) CDataFormat() string { return "I" }
func (*Uint32Type) String() string      { return "uint32" }

type Uint64Type struct{}

func (*Uint64Type) ID() Type            { return UINT64 }
func (*Uint64Type) Name() string        { return "uint64" }
func (*Uint64Type) Stride() int         { return 8 }
func (*Uint64Type) CDataFormat() string { return "L" }
func (*Uint64Type) String() string      { return "uint64" }

type Float16Type struct{}

func (*Float16Type) ID() Type            { return FLOAT16 }
func (*Float16Type) Name() string        { return "float16" }
func (*Float16Type) Stride() int         { return 2 }
func (*Float16Type) CDataFormat() string { return "e" }
func (*Float16Type) String() string      { return "float16" }

type Float32Type struct{}

func (*Float32Type) ID() Type            { return FLOAT32 }
func (*Float32Type) Name() string        { return "float32" }
func (*Float32Type) Stride() int         { return 4 }
func (*Float32Type) CDataFormat() string { return "f" }
func (*Float32Type) String() string      { return "float32" }

type Float64Type struct{}

func (*Float64Type) ID() Type            { return FLOAT64 }
func (*Float64Type) Name() string        { return "float64" }
func (*Float64Type) Stride() int         { return 8 }
func (*Float64Type) CDataFormat() string { return "g" }
func (*Float64Type) String() string      { return "float64" }

// Date32Type stores days since the UNIX epoch as a 32-bit value.
type Date32Type struct{}

func (*Date32Type) ID() Type            { return DATE32 }
func (*Date32Type) Name() string        { return "date32" }
func (*Date32Type) Stride() int         { return 4 }
func (*Date32Type) CDataFormat() string { return "tdD" }
func (*Date32Type) String() string      { return "date32" }

// Date64Type stores milliseconds since the UNIX epoch as a 64-bit value.
type Date64Type struct{}

func (*Date64Type) ID() Type            { return DATE64 }
func (*Date64Type) Name() string        { return "date64" }
func (*Date64Type) Stride() int         { return 8 }
func (*Date64Type) CDataFormat() string { return "tdm" }
func (*Date64Type) String() string      { return "date64" }

// Time32Type stores a time of day in seconds or milliseconds.
type Time32Type struct {
	Unit TimeUnit
}

func (*Time32Type) ID() Type     { return TIME32 }
func (*Time32Type) Name() string { return "time32" }
func (*Time32Type) Stride() int  { return 4 }
func (t *Time32Type) CDataFormat() string {
	if t.Unit == Second {
		return "tts"
	}
	return "ttm"
}
func (t *Time32Type) String() string { return "time32[" + t.Unit.String() + "]" }

// Time64Type stores a time of day in microseconds or nanoseconds.
type Time64Type struct {
	Unit TimeUnit
}

func (*Time64Type) ID() Type     { return TIME64 }
func (*Time64Type) Name() string { return "time64" }
func (*Time64Type) Stride() int  { return 8 }
func (t *Time64Type) CDataFormat() string {
	if t.Unit == Microsecond {
		return "ttu"
	}
	return "ttn"
}
func (t *Time64Type) String() string { return "time64[" + t.Unit.String() + "]" }

// TimestampType stores an instant as elapsed time since the UNIX epoch,
// optionally anchored to a timezone.
type TimestampType struct {
	Unit     TimeUnit
	TimeZone string
}

func (*TimestampType) ID() Type     { return TIMESTAMP }
func (*TimestampType) Name() string { return "timestamp" }
func (*TimestampType) Stride() int  { return 8 }
func (t *TimestampType) CDataFormat() string {
	f := "ts" + [...]string{"s", "m", "u", "n"}[t.Unit]
	if t.TimeZone != "" {
		f += ":" + t.TimeZone
	}
	return f
}
func (t *TimestampType) String() string {
	if t.TimeZone == "" {
		return "timestamp[" + t.Unit.String() + "]"
	}
	return fmt.Sprintf("timestamp[%s, tz=%s]", t.Unit, t.TimeZone)
}

// locations caches loaded timezones keyed by name. Access is not
// synchronized; the module is single-threaded by contract.
var locations = map[string]*time.Location{}

func loadLocation(tz string) (*time.Location, error) {
	if tz == "" {
		return time.UTC, nil
	}
	if loc, ok := locations[tz]; ok {
		return loc, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, Invalidf("unknown timezone %q", tz)
	}
	locations[tz] = loc
	return loc, nil
}

// ToTime converts the stored count to an instant in the type's timezone.
// The resolved timezone is cached across calls with the same option set.
func (t *TimestampType) ToTime(v Timestamp) (time.Time, error) {
	loc, err := loadLocation(t.TimeZone)
	if err != nil {
		return time.Time{}, err
	}
	var ts time.Time
	switch t.Unit {
	case Second:
		ts = time.Unix(int64(v), 0)
	case Millisecond:
		ts = time.Unix(0, int64(v)*int64(time.Millisecond))
	case Microsecond:
		ts = time.Unix(0, int64(v)*int64(time.Microsecond))
	default:
		ts = time.Unix(0, int64(v))
	}
	return ts.In(loc), nil
}

// DurationType stores elapsed time as a 64-bit count of the unit.
type DurationType struct {
	Unit TimeUnit
}

func (*DurationType) ID() Type     { return DURATION }
func (*DurationType) Name() string { return "duration" }
func (*DurationType) Stride() int  { return 8 }
func (t *DurationType) CDataFormat() string {
	return "tD" + [...]string{"s", "m", "u", "n"}[t.Unit]
}
func (t *DurationType) String() string { return "duration[" + t.Unit.String() + "]" }

// IntervalType stores a calendar interval in one of the three Arrow layouts.
type IntervalType struct {
	Unit IntervalUnit
}

func (*IntervalType) ID() Type     { return INTERVAL }
func (*IntervalType) Name() string { return "interval" }
func (t *IntervalType) Stride() int {
	return [...]int{4, 8, 16}[t.Unit]
}
func (t *IntervalType) CDataFormat() string {
	return [...]string{"tiM", "tiD", "tin"}[t.Unit]
}
func (t *IntervalType) String() string { return "interval[" + t.Unit.String() + "]" }

// The decimal types carry precision and scale; arithmetic over decimal
// values is out of scope, only the constants travel.

type Decimal32Type struct {
	Precision int32
	Scale     int32
}

func (*Decimal32Type) ID() Type     { return DECIMAL32 }
func (*Decimal32Type) Name() string { return "decimal32" }
func (*Decimal32Type) Stride() int  { return 4 }
func (t *Decimal32Type) CDataFormat() string {
	return fmt.Sprintf("d:%d,%d,32", t.Precision, t.Scale)
}
func (t *Decimal32Type) String() string {
	return fmt.Sprintf("decimal32(%d, %d)", t.Precision, t.Scale)
}

type Decimal64Type struct {
	Precision int32
	Scale     int32
}

func (*Decimal64Type) ID() Type     { return DECIMAL64 }
func (*Decimal64Type) Name() string { return "decimal64" }
func (*Decimal64Type) Stride() int  { return 8 }
func (t *Decimal64Type) CDataFormat() string {
	return fmt.Sprintf("d:%d,%d,64", t.Precision, t.Scale)
}
func (t *Decimal64Type) String() string {
	return fmt.Sprintf("decimal64(%d, %d)", t.Precision, t.Scale)
}

type Decimal128Type struct {
	Precision int32
	Scale     int32
}

func (*Decimal128Type) ID() Type     { return DECIMAL128 }
func (*Decimal128Type) Name() string { return "decimal128" }
func (*Decimal128Type) Stride() int  { return 16 }
func (t *Decimal128Type) CDataFormat() string {
	return fmt.Sprintf("d:%d,%d", t.Precision, t.Scale)
}
func (t *Decimal128Type) String() string {
	return fmt.Sprintf("decimal128(%d, %d)", t.Precision, t.Scale)
}

type Decimal256Type struct {
	Precision int32
	Scale     int32
}

func (*Decimal256Type) ID() Type     { return DECIMAL256 }
func (*Decimal256Type) Name() string { return "decimal256" }
func (*Decimal256Type) Stride() int  { return 32 }
func (t *Decimal256Type) CDataFormat() string {
	return fmt.Sprintf("d:%d,%d,256", t.Precision, t.Scale)
}
func (t *Decimal256Type) String() string {
	return fmt.Sprintf("decimal256(%d, %d)", t.Precision, t.Scale)
}

// Null is the singleton for the parameter-free null type.
var Null = &NullType{}

// PrimitiveTypes holds the singletons for the numeric types.
var PrimitiveTypes = struct {
	Int8    DataType
	Int16   DataType
	Int32   DataType
	Int64   DataType
	Uint8   DataType
	Uint16  DataType
	Uint32  DataType
	Uint64  DataType
	Float16 DataType
	Float32 DataType
	Float64 DataType
	Date32  DataType
	Date64  DataType
}{
	Int8:    &Int8Type{},
	Int16:   &Int16Type{},
	Int32:   &Int32Type{},
	Int64:   &Int64Type{},
	Uint8:   &Uint8Type{},
	Uint16:  &Uint16Type{},
	Uint32:  &Uint32Type{},
	Uint64:  &Uint64Type{},
	Float16: &Float16Type{},
	Float32: &Float32Type{},
	Float64: &Float64Type{},
	Date32:  &Date32Type{},
	Date64:  &Date64Type{},
}

// FixedWidthTypes holds singletons for the remaining parameter-free fixed
// width types.
var FixedWidthTypes = struct {
	Boolean    DataType
	Date32     DataType
	Date64     DataType
	Float16    DataType
	Time32s    DataType
	Time32ms   DataType
	Time64us   DataType
	Time64ns   DataType
	DurationNs DataType
}{
	Boolean:    &BooleanType{},
	Date32:     &Date32Type{},
	Date64:     &Date64Type{},
	Float16:    &Float16Type{},
	Time32s:    &Time32Type{Unit: Second},
	Time32ms:   &Time32Type{Unit: Millisecond},
	Time64us:   &Time64Type{Unit: Microsecond},
	Time64ns:   &Time64Type{Unit: Nanosecond},
	DurationNs: &DurationType{Unit: Nanosecond},
}
