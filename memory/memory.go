// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memory

import (
	"unsafe"
)

// Set assigns x to every byte of b.
func Set(b []byte, x byte) {
	for i := range b {
		b[i] = x
	}
}

// alignShift returns how many bytes into buf the first 64-byte aligned
// address sits.
func alignShift(buf []byte) int {
	addr := int(uintptr(unsafe.Pointer(&buf[0])))
	return (BufferAlignment - addr%BufferAlignment) % BufferAlignment
}

// roundUpTo64 rounds size up to the next multiple of the buffer alignment.
func roundUpTo64(size int) int {
	return (size + BufferAlignment - 1) &^ (BufferAlignment - 1)
}
