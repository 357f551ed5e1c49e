// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solidcoredata/arrow/array"
	"github.com/solidcoredata/arrow/memory"
)

func testData(t *testing.T) *array.Data {
	t.Helper()
	b := array.NewInt32Builder(memory.NewGoAllocator())
	defer b.Release()
	b.Append(1)
	arr := b.NewArray()
	defer arr.Release()
	data := arr.Data()
	data.Retain()
	return data
}

func TestRegistryMonotonicIds(t *testing.T) {
	r := NewRegistry()
	data := testData(t)
	defer data.Release()

	id1 := r.Export(data, nil)
	id2 := r.Export(data, nil)
	assert.True(t, id2 > id1)
	assert.Equal(t, 2, r.Len())

	require.NoError(t, r.Release(id1))
	// identifiers are never reused
	id3 := r.Export(data, nil)
	assert.True(t, id3 > id2)
}

func TestRegistryReleaseOnce(t *testing.T) {
	r := NewRegistry()
	data := testData(t)
	defer data.Release()

	released := 0
	id := r.Export(data, func() { released++ })

	got, ok := r.Lookup(id)
	assert.True(t, ok)
	assert.Equal(t, data, got)

	require.NoError(t, r.Release(id))
	assert.Equal(t, 1, released)

	// a second release is an error and must not re-run the callback
	require.Error(t, r.Release(id))
	assert.Equal(t, 1, released)
	_, ok = r.Lookup(id)
	assert.False(t, ok)
}

func TestImportBufferReleaseOnce(t *testing.T) {
	released := 0
	buf := ImportBuffer([]byte{1, 2, 3}, func() { released++ })
	assert.Equal(t, 3, buf.Len())
	buf.Retain()
	buf.Release()
	assert.Equal(t, 0, released)
	buf.Release()
	assert.Equal(t, 1, released)
}
