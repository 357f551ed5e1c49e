// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package float16 holds the IEEE 754 binary16 value carried by Float16
// arrays. Only conversion to and from float32 is provided.
package float16

import (
	"math"
	"strconv"
)

// Num represents a half-precision floating point value.
type Num struct {
	bits uint16
}

// New creates a new half-precision floating point value from a float32. Values
// outside the representable range saturate to infinity.
func New(f float32) Num {
	b := math.Float32bits(f)
	sn := uint16((b >> 31) & 0x1)
	exp := (b >> 23) & 0xff
	res := int16(exp) - 127 + 15
	fc := uint16(b>>13) & 0x3ff
	switch {
	case exp == 0:
		res = 0
	case exp == 0xff:
		res = 0x1f
	case res > 0x1e:
		res = 0x1f
		fc = 0
	case res < 0x01:
		res = 0
		fc = 0
	}
	return Num{bits: (sn << 15) | uint16(res)<<10 | fc}
}

func (n Num) Float32() float32 {
	sn := uint32((n.bits >> 15) & 0x1)
	exp := (n.bits >> 10) & 0x1f
	res := uint32(exp) + 127 - 15
	fc := uint32(n.bits & 0x3ff)
	switch {
	case exp == 0:
		res = 0
	case exp == 0x1f:
		res = 0xff
	}
	return math.Float32frombits((sn << 31) | (res << 23) | (fc << 13))
}

func (n Num) Uint16() uint16 { return n.bits }

// FromBits reconstructs a value from its raw bit pattern.
func FromBits(bits uint16) Num { return Num{bits: bits} }

func (n Num) String() string {
	return strconv.FormatFloat(float64(n.Float32()), 'g', -1, 32)
}
