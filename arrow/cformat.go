// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arrow

import (
	"strconv"
	"strings"
)

// FromCDataFormat maps a C-Data-Interface format string back to its logical
// type. For the non-nested, non-dictionary types the mapping is the inverse
// of DataType.CDataFormat.
//
// For the nested head formats the child types are not part of the format
// string, and the returned type has placeholder children: "+l", "+L" and
// "+w:N" give a list of Null, "+m" a map from Null to Null, "+r" Int32 run
// ends over Null values, and "+s" a struct with no fields. The placeholders
// are not replaced by anything in this module.
func FromCDataFormat(format string) (DataType, error) {
	switch format {
	case "n":
		return Null, nil
	case "b":
		return FixedWidthTypes.Boolean, nil
	case "c":
		return PrimitiveTypes.Int8, nil
	case "C":
		return PrimitiveTypes.Uint8, nil
	case "s":
		return PrimitiveTypes.Int16, nil
	case "S":
		return PrimitiveTypes.Uint16, nil
	case "i":
		return PrimitiveTypes.Int32, nil
	case "I":
		return PrimitiveTypes.Uint32, nil
	case "l":
		return PrimitiveTypes.Int64, nil
	case "L":
		return PrimitiveTypes.Uint64, nil
	case "e":
		return PrimitiveTypes.Float16, nil
	case "f":
		return PrimitiveTypes.Float32, nil
	case "g":
		return PrimitiveTypes.Float64, nil
	case "z":
		return BinaryTypes.Binary, nil
	case "Z":
		return BinaryTypes.LargeBinary, nil
	case "u":
		return BinaryTypes.String, nil
	case "U":
		return BinaryTypes.LargeString, nil
	case "tdD":
		return FixedWidthTypes.Date32, nil
	case "tdm":
		return FixedWidthTypes.Date64, nil
	case "tts":
		return &Time32Type{Unit: Second}, nil
	case "ttm":
		return &Time32Type{Unit: Millisecond}, nil
	case "ttu":
		return &Time64Type{Unit: Microsecond}, nil
	case "ttn":
		return &Time64Type{Unit: Nanosecond}, nil
	case "tiM":
		return &IntervalType{Unit: YearMonthInterval}, nil
	case "tiD":
		return &IntervalType{Unit: DayTimeInterval}, nil
	case "tin":
		return &IntervalType{Unit: MonthDayNanoInterval}, nil
	case "+l":
		return ListOf(Null), nil
	case "+L":
		return LargeListOf(Null), nil
	case "+s":
		return StructOf(), nil
	case "+m":
		return MapOf(Null, Null), nil
	case "+r":
		return RunEndEncodedOf(PrimitiveTypes.Int32, Null), nil
	}

	switch {
	case strings.HasPrefix(format, "ts"):
		return timestampFromCDataFormat(format)
	case strings.HasPrefix(format, "tD") && len(format) == 3:
		if unit, ok := timeUnitFromByte(format[2]); ok {
			return &DurationType{Unit: unit}, nil
		}
	case strings.HasPrefix(format, "w:"):
		width, err := strconv.Atoi(format[2:])
		if err != nil || width <= 0 {
			return nil, Invalidf("bad fixed size binary format %q", format)
		}
		return &FixedSizeBinaryType{ByteWidth: width}, nil
	case strings.HasPrefix(format, "+w:"):
		n, err := strconv.Atoi(format[3:])
		if err != nil || n <= 0 {
			return nil, Invalidf("bad fixed size list format %q", format)
		}
		return FixedSizeListOf(int32(n), Null), nil
	case strings.HasPrefix(format, "d:"):
		return decimalFromCDataFormat(format)
	}
	return nil, UnknownTypef("no type for format %q", format)
}

func timeUnitFromByte(b byte) (TimeUnit, bool) {
	switch b {
	case 's':
		return Second, true
	case 'm':
		return Millisecond, true
	case 'u':
		return Microsecond, true
	case 'n':
		return Nanosecond, true
	}
	return Second, false
}

func timestampFromCDataFormat(format string) (DataType, error) {
	if len(format) < 3 {
		return nil, Invalidf("bad timestamp format %q", format)
	}
	unit, ok := timeUnitFromByte(format[2])
	if !ok {
		return nil, Invalidf("bad timestamp unit in format %q", format)
	}
	tz := ""
	if len(format) > 3 {
		if format[3] != ':' {
			return nil, Invalidf("bad timestamp format %q", format)
		}
		tz = format[4:]
	}
	return &TimestampType{Unit: unit, TimeZone: tz}, nil
}

func decimalFromCDataFormat(format string) (DataType, error) {
	parts := strings.Split(format[2:], ",")
	if len(parts) != 2 && len(parts) != 3 {
		return nil, Invalidf("bad decimal format %q", format)
	}
	precision, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, Invalidf("bad decimal precision in %q", format)
	}
	scale, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, Invalidf("bad decimal scale in %q", format)
	}
	bits := 128
	if len(parts) == 3 {
		bits, err = strconv.Atoi(parts[2])
		if err != nil {
			return nil, Invalidf("bad decimal bit width in %q", format)
		}
	}
	p, s := int32(precision), int32(scale)
	switch bits {
	case 32:
		return &Decimal32Type{Precision: p, Scale: s}, nil
	case 64:
		return &Decimal64Type{Precision: p, Scale: s}, nil
	case 128:
		return &Decimal128Type{Precision: p, Scale: s}, nil
	case 256:
		return &Decimal256Type{Precision: p, Scale: s}, nil
	}
	return nil, Invalidf("bad decimal bit width %d in %q", bits, format)
}

// Metadata keys reserved for extension type round-tripping.
const (
	ExtensionNameKey     = "ARROW:extension:name"
	ExtensionMetadataKey = "ARROW:extension:metadata"
)
