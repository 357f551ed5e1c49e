// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package memory provides the aligned, reference-counted byte buffers that
// back every array in this module.
package memory

const (
	// BufferAlignment is the guaranteed alignment of the first byte of every
	// owned allocation.
	BufferAlignment = 64

	// cookieSize is one machine word reserved past the aligned capacity of
	// every owned allocation, room for an identity cookie. Nothing in this
	// module writes or reads the word; the cdata package keys its registry
	// by increasing integer ids.
	cookieSize = 8

	// minAllocation is the smallest capacity handed out for a non-empty
	// request.
	minAllocation = 32
)

// Allocator allocates, grows, and frees byte regions. Allocation failure is
// fatal: implementations abort rather than return an error.
type Allocator interface {
	Allocate(size int) []byte
	Reallocate(size int, b []byte) []byte
	Free(b []byte)
}

// GoAllocator allocates from the Go heap. Every returned region starts at a
// 64-byte aligned address and is zero initialized.
type GoAllocator struct{}

func NewGoAllocator() *GoAllocator { return &GoAllocator{} }

func (a *GoAllocator) Allocate(size int) []byte {
	buf := make([]byte, size+BufferAlignment+cookieSize)
	shift := alignShift(buf)
	return buf[shift : shift+size : shift+size]
}

func (a *GoAllocator) Reallocate(size int, b []byte) []byte {
	if size == len(b) {
		return b
	}
	newBuf := a.Allocate(size)
	copy(newBuf, b)
	return newBuf
}

func (a *GoAllocator) Free(b []byte) {}

// CheckedAllocator wraps another allocator and tracks the number of live
// bytes, so tests can assert every buffer was released.
type CheckedAllocator struct {
	mem Allocator
	sz  int
}

func NewCheckedAllocator(mem Allocator) *CheckedAllocator {
	return &CheckedAllocator{mem: mem}
}

func (a *CheckedAllocator) CurrentAlloc() int { return a.sz }

func (a *CheckedAllocator) Allocate(size int) []byte {
	a.sz += size
	return a.mem.Allocate(size)
}

func (a *CheckedAllocator) Reallocate(size int, b []byte) []byte {
	a.sz += size - len(b)
	return a.mem.Reallocate(size, b)
}

func (a *CheckedAllocator) Free(b []byte) {
	a.sz -= len(b)
	a.mem.Free(b)
}

// TestingT matches the subset of *testing.T the checked allocator reports to.
type TestingT interface {
	Errorf(format string, args ...interface{})
	Helper()
}

// AssertSize fails t when live allocations do not total sz bytes.
func (a *CheckedAllocator) AssertSize(t TestingT, sz int) {
	t.Helper()
	if a.sz != sz {
		t.Errorf("memory: expected %d bytes allocated, got %d", sz, a.sz)
	}
}

// DefaultAllocator is used when a nil Allocator is passed to a constructor.
var DefaultAllocator Allocator = NewGoAllocator()
