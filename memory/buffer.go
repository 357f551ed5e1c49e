// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memory

import (
	"sync/atomic"
)

// Buffer is a reference-counted byte region. Owned buffers are allocated at
// 64-byte alignment and may grow; borrowed buffers reference memory held by
// someone else and must not be mutated or outlive their backing store.
type Buffer struct {
	refCount int64
	buf      []byte
	length   int
	mutable  bool
	mem      Allocator

	// release runs exactly once when the final reference to a borrowed
	// buffer drops. Used for regions imported across the C Data Interface.
	release func()
}

// NewResizableBuffer creates a mutable, resizable buffer with an initial
// length of 0. A nil mem uses the default allocator.
func NewResizableBuffer(mem Allocator) *Buffer {
	if mem == nil {
		mem = DefaultAllocator
	}
	return &Buffer{refCount: 1, mutable: true, mem: mem}
}

// NewBufferBytes wraps data as an immutable borrowed buffer.
func NewBufferBytes(data []byte) *Buffer {
	return &Buffer{refCount: 1, buf: data, length: len(data)}
}

// NewBorrowedBuffer wraps data owned by an external producer. The release
// callback, when not nil, runs exactly once when the final reference drops.
func NewBorrowedBuffer(data []byte, release func()) *Buffer {
	return &Buffer{refCount: 1, buf: data, length: len(data), release: release}
}

// Retain increases the reference count by 1.
func (b *Buffer) Retain() {
	if b.mem != nil || b.release != nil {
		atomic.AddInt64(&b.refCount, 1)
	}
}

// Release decreases the reference count by 1. When the count reaches zero the
// memory is freed, or the release callback runs for a borrowed import.
func (b *Buffer) Release() {
	if b.mem == nil && b.release == nil {
		return
	}
	if atomic.AddInt64(&b.refCount, -1) == 0 {
		if b.release != nil {
			b.release()
			b.release = nil
		}
		if b.mem != nil {
			b.mem.Free(b.buf)
		}
		b.buf, b.length = nil, 0
	}
}

// Bytes returns the byte region within the buffer's logical length.
func (b *Buffer) Bytes() []byte { return b.buf[:b.length] }

// Buf returns the whole capacity of the buffer.
func (b *Buffer) Buf() []byte { return b.buf }

func (b *Buffer) Len() int      { return b.length }
func (b *Buffer) Cap() int      { return len(b.buf) }
func (b *Buffer) Mutable() bool { return b.mutable }

// Reserve grows the capacity to hold at least capacity bytes. Growth is
// geometric with factor 2, clamped to the request, never below 32 bytes, and
// re-rounded to 64-byte alignment.
func (b *Buffer) Reserve(capacity int) {
	if !b.mutable {
		panic("memory: reserve on immutable buffer")
	}
	if capacity <= len(b.buf) {
		return
	}
	newCap := 2 * len(b.buf)
	if newCap < capacity {
		newCap = capacity
	}
	if newCap < minAllocation {
		newCap = minAllocation
	}
	newCap = roundUpTo64(newCap)
	if b.buf == nil {
		b.buf = b.mem.Allocate(newCap)
		return
	}
	b.buf = b.mem.Reallocate(newCap, b.buf)
}

// Resize sets the logical length to newSize, growing the capacity when
// needed. New bytes are zero.
func (b *Buffer) Resize(newSize int) {
	if !b.mutable {
		panic("memory: resize on immutable buffer")
	}
	if newSize > b.length {
		b.Reserve(newSize)
		Set(b.buf[b.length:newSize], 0)
	}
	b.length = newSize
}
