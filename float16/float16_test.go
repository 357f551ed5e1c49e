// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package float16

import (
	"testing"
)

func TestRoundTrip(t *testing.T) {
	for _, v := range []float32{0, 1, -1, 2, 0.5, -0.25, 65504} {
		got := New(v).Float32()
		if got != v {
			t.Errorf("round trip %v: got %v", v, got)
		}
	}
}

func TestBits(t *testing.T) {
	one := New(1)
	if one.Uint16() != 0x3c00 {
		t.Fatalf("bits of 1: %#04x, want 0x3c00", one.Uint16())
	}
	if FromBits(0x3c00).Float32() != 1 {
		t.Fatal("FromBits(0x3c00) != 1")
	}
}

func TestString(t *testing.T) {
	if s := New(1.5).String(); s != "1.5" {
		t.Fatalf("String: got %q", s)
	}
}
