// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cdata carries the process-wide half of the C Data Interface
// contract: an append-only export registry with monotonically increasing
// identifiers, and borrowed-buffer imports whose release callbacks run
// exactly once. Format strings travel through arrow.DataType.CDataFormat
// and arrow.FromCDataFormat.
//
// The registry is single-threaded like the rest of the module; callers
// wanting cross-thread export must wrap it with their own lock and swap
// the counter for an atomic.
package cdata

import (
	"github.com/pkg/errors"

	"github.com/solidcoredata/arrow/array"
	"github.com/solidcoredata/arrow/memory"
)

// ReleaseFunc runs when an export is released or an imported region is
// dropped.
type ReleaseFunc func()

type exportEntry struct {
	data    *array.Data
	release ReleaseFunc
}

// Registry tracks exported arrays by identity. Identifiers are never
// reused.
type Registry struct {
	next    int64
	entries map[int64]exportEntry
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[int64]exportEntry)}
}

// Export registers data and returns its identity. The registry holds a
// reference until Release.
func (r *Registry) Export(data *array.Data, release ReleaseFunc) int64 {
	r.next++
	data.Retain()
	r.entries[r.next] = exportEntry{data: data, release: release}
	return r.next
}

// Lookup resolves an exported identity.
func (r *Registry) Lookup(id int64) (*array.Data, bool) {
	e, ok := r.entries[id]
	if !ok {
		return nil, false
	}
	return e.data, true
}

// Len returns the number of live exports.
func (r *Registry) Len() int { return len(r.entries) }

// Release drops the export: the registry's reference is returned and the
// release callback, when present, runs exactly once.
func (r *Registry) Release(id int64) error {
	e, ok := r.entries[id]
	if !ok {
		return errors.Errorf("cdata: unknown export id %d", id)
	}
	delete(r.entries, id)
	e.data.Release()
	if e.release != nil {
		e.release()
	}
	return nil
}

// defaultRegistry is the process-wide registry.
var defaultRegistry = NewRegistry()

func Export(data *array.Data, release ReleaseFunc) int64 {
	return defaultRegistry.Export(data, release)
}

func Release(id int64) error {
	return defaultRegistry.Release(id)
}

// ImportBuffer wraps a region handed over by an external producer. The
// buffer is borrowed: it must not be mutated and must not outlive the
// producer's allocation; release runs exactly once when the final
// reference drops.
func ImportBuffer(data []byte, release ReleaseFunc) *memory.Buffer {
	var fn func()
	if release != nil {
		fn = release
	}
	return memory.NewBorrowedBuffer(data, fn)
}
