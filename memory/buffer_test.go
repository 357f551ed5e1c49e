// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memory

import (
	"testing"
	"unsafe"
)

func TestAllocateAlignment(t *testing.T) {
	mem := NewGoAllocator()
	for _, size := range []int{1, 31, 32, 63, 64, 65, 4096} {
		buf := mem.Allocate(size)
		if len(buf) != size {
			t.Fatalf("Allocate(%d): len=%d", size, len(buf))
		}
		addr := uintptr(unsafe.Pointer(&buf[0]))
		if addr%BufferAlignment != 0 {
			t.Fatalf("Allocate(%d): address %x not 64-byte aligned", size, addr)
		}
		for i, b := range buf {
			if b != 0 {
				t.Fatalf("Allocate(%d): byte %d not zero", size, i)
			}
		}
	}
}

func TestBufferGrowthPolicy(t *testing.T) {
	b := NewResizableBuffer(NewGoAllocator())
	b.Reserve(1)
	if got := b.Cap(); got != 64 {
		// 32 byte minimum, re-rounded to 64 byte alignment
		t.Fatalf("Reserve(1): cap=%d, want 64", got)
	}
	b.Reserve(65)
	if got := b.Cap(); got != 128 {
		// geometric factor 2 from 64
		t.Fatalf("Reserve(65): cap=%d, want 128", got)
	}
	b.Reserve(1000)
	if got := b.Cap(); got != 1024 {
		// clamped to the request, re-rounded up
		t.Fatalf("Reserve(1000): cap=%d, want 1024", got)
	}
}

func TestBufferResizeZeroes(t *testing.T) {
	b := NewResizableBuffer(nil)
	b.Resize(8)
	copy(b.Bytes(), "xxxxxxxx")
	b.Resize(4)
	b.Resize(12)
	got := b.Bytes()
	for i := 4; i < 12; i++ {
		if got[i] != 0 {
			t.Fatalf("byte %d not zeroed after shrink+grow: %q", i, got)
		}
	}
	if b.Len() != 12 {
		t.Fatalf("len=%d, want 12", b.Len())
	}
}

func TestBorrowedBufferReleaseOnce(t *testing.T) {
	released := 0
	b := NewBorrowedBuffer([]byte("abc"), func() { released++ })
	b.Retain()
	b.Release()
	if released != 0 {
		t.Fatal("released too early")
	}
	b.Release()
	if released != 1 {
		t.Fatalf("release ran %d times, want 1", released)
	}
}

func TestCheckedAllocator(t *testing.T) {
	mem := NewCheckedAllocator(NewGoAllocator())
	b := NewResizableBuffer(mem)
	b.Resize(100)
	if mem.CurrentAlloc() == 0 {
		t.Fatal("no bytes tracked")
	}
	b.Release()
	mem.AssertSize(t, 0)
}
