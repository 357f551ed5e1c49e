// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ipc reads and writes the Arrow File and Streaming wire formats:
// FlatBuffers-encoded metadata messages framed with a continuation marker
// and a little-endian length, each pointing into a packed, 8-byte padded
// data body.
package ipc

import (
	"io"

	"github.com/solidcoredata/arrow/arrow"
	"github.com/solidcoredata/arrow/memory"
)

// Magic is the six byte signature framing the File format.
var Magic = []byte("ARROW1")

const (
	// kIPCContToken precedes every framed message.
	kIPCContToken uint32 = 0xFFFFFFFF

	// kArrowAlignment is the alignment of buffer starts inside allocations.
	// The on-wire body pads buffers to 8 bytes, not 64.
	kArrowAlignment = 64

	kMaxNestingDepth = 64
)

// kEOS terminates a stream: continuation marker plus a zero length.
var kEOS = [8]byte{0xFF, 0xFF, 0xFF, 0xFF, 0, 0, 0, 0}

// paddedLength rounds size up to the next multiple of alignment.
func paddedLength(size int64, alignment int64) int64 {
	return (size + alignment - 1) / alignment * alignment
}

func pad8(size int64) int64 { return paddedLength(size, 8) }

// ReadAtSeeker is the random access source the File reader needs.
type ReadAtSeeker interface {
	io.Reader
	io.Seeker
	io.ReaderAt
}

type config struct {
	alloc  memory.Allocator
	schema *arrow.Schema

	footer struct {
		offset int64
	}
}

func newConfig(opts ...Option) *config {
	cfg := &config{alloc: memory.DefaultAllocator}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Option configures a reader or writer.
type Option func(*config)

// WithAllocator sets the allocator backing decoded buffers.
func WithAllocator(mem memory.Allocator) Option {
	return func(cfg *config) { cfg.alloc = mem }
}

// WithSchema declares the schema a writer emits, or the schema a reader
// must find.
func WithSchema(schema *arrow.Schema) Option {
	return func(cfg *config) { cfg.schema = schema }
}

// WithFooterOffset overrides where the File reader expects the end of the
// footer; the default is the end of the input.
func WithFooterOffset(offset int64) Option {
	return func(cfg *config) { cfg.footer.offset = offset }
}

var (
	errNotArrowFile             = arrow.Invalidf("not an Arrow file")
	errInconsistentFileMetadata = arrow.Invalidf("file is smaller than indicated metadata size")
	errInconsistentSchema       = arrow.Invalidf("record does not match the writer schema")
	errMaxRecursion             = arrow.Invalidf("nested type limit reached")
)
