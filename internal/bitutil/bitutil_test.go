// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitutil

import (
	"testing"
)

func TestBitIsSet(t *testing.T) {
	buf := []byte{0b10100101}
	want := []bool{true, false, true, false, false, true, false, true}
	for i, w := range want {
		if got := BitIsSet(buf, i); got != w {
			t.Errorf("bit %d: got %v, want %v", i, got, w)
		}
	}
}

func TestSetClearBit(t *testing.T) {
	buf := make([]byte, 2)
	SetBit(buf, 0)
	SetBit(buf, 9)
	if buf[0] != 1 || buf[1] != 2 {
		t.Fatalf("got %v", buf)
	}
	ClearBit(buf, 9)
	if buf[1] != 0 {
		t.Fatalf("got %v", buf)
	}
	SetBitTo(buf, 3, true)
	if !BitIsSet(buf, 3) {
		t.Fatal("bit 3 not set")
	}
	SetBitTo(buf, 3, false)
	if BitIsSet(buf, 3) {
		t.Fatal("bit 3 still set")
	}
}

func TestCountSetBits(t *testing.T) {
	buf := []byte{0xFF, 0x00, 0b00001111}
	tests := []struct {
		offset, n, want int
	}{
		{0, 24, 12},
		{0, 8, 8},
		{8, 8, 0},
		{16, 8, 4},
		{4, 8, 4},
		{2, 3, 3},
		{0, 0, 0},
	}
	for _, tc := range tests {
		if got := CountSetBits(buf, tc.offset, tc.n); got != tc.want {
			t.Errorf("CountSetBits(offset=%d, n=%d): got %d, want %d", tc.offset, tc.n, got, tc.want)
		}
	}
}

func TestCeilByte(t *testing.T) {
	for _, tc := range [][2]int{{0, 0}, {1, 8}, {7, 8}, {8, 8}, {9, 16}, {63, 64}} {
		if got := CeilByte(tc[0]); got != tc[1] {
			t.Errorf("CeilByte(%d): got %d, want %d", tc[0], got, tc[1])
		}
	}
}

func TestBytesForBits(t *testing.T) {
	for _, tc := range [][2]int64{{0, 0}, {1, 1}, {8, 1}, {9, 2}, {64, 8}} {
		if got := BytesForBits(tc[0]); got != tc[1] {
			t.Errorf("BytesForBits(%d): got %d, want %d", tc[0], got, tc[1])
		}
	}
}

func TestIsMultipleOf8(t *testing.T) {
	if !IsMultipleOf8(0) || !IsMultipleOf8(64) || IsMultipleOf8(4) {
		t.Fatal("IsMultipleOf8 misbehaves")
	}
}
