// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipc

import (
	"encoding/binary"
	"io"

	"github.com/solidcoredata/arrow/array"
	"github.com/solidcoredata/arrow/arrow"
	"github.com/solidcoredata/arrow/memory"
)

// FileWriter emits the File format: magic and padding, the schema message,
// record batch blocks, and a footer locating every block, closed by the
// footer length and the trailing magic.
type FileWriter struct {
	w   io.Writer
	pos int64

	// err is sticky, matching the stream writer.
	err error

	mem     memory.Allocator
	schema  *arrow.Schema
	started bool
	closed  bool
	blocks  []fileBlock
}

func NewFileWriter(w io.Writer, opts ...Option) (*FileWriter, error) {
	cfg := newConfig(opts...)
	if cfg.schema == nil {
		return nil, arrow.Invalidf("file writer has no schema")
	}
	return &FileWriter{
		w:      w,
		mem:    cfg.alloc,
		schema: cfg.schema,
	}, nil
}

// write tracks the output position so footer blocks carry file offsets.
func (fw *FileWriter) write(b []byte) error {
	n, err := fw.w.Write(b)
	fw.pos += int64(n)
	if err != nil {
		return arrow.IOError(err)
	}
	return nil
}

type fileTrackWriter struct {
	fw *FileWriter
}

func (t fileTrackWriter) Write(b []byte) (int, error) {
	n, err := t.fw.w.Write(b)
	t.fw.pos += int64(n)
	return n, err
}

func (fw *FileWriter) start() error {
	fw.started = true
	if err := fw.write(Magic); err != nil {
		return err
	}
	// pad the magic out to 8 bytes before the schema message
	if err := fw.write(paddingBytes[:pad8(int64(len(Magic)))-int64(len(Magic))]); err != nil {
		return err
	}
	meta, err := writeSchemaMessage(fw.schema)
	if err != nil {
		return err
	}
	_, err = writeMessageFrame(fileTrackWriter{fw}, meta)
	return err
}

// Write encodes rec as one block of the file.
func (fw *FileWriter) Write(rec *array.Record) error {
	if fw.err != nil {
		return fw.err
	}
	if !fw.started {
		if err := fw.start(); err != nil {
			fw.err = err
			return err
		}
	}
	if rec.Schema() == nil || !rec.Schema().Equal(fw.schema) {
		return errInconsistentSchema
	}

	p, err := encodeRecord(rec)
	if err != nil {
		fw.err = err
		return err
	}

	blockOffset := fw.pos
	if err := writeIPCPayload(fileTrackWriter{fw}, p); err != nil {
		fw.err = err
		return err
	}
	metaLen := fw.pos - blockOffset - p.size
	fw.blocks = append(fw.blocks, fileBlock{
		Offset: blockOffset,
		Meta:   int32(metaLen),
		Body:   p.size,
	})
	return nil
}

// Close writes the footer, the reserved word, the footer length, and the
// trailing magic. Close leaves the underlying writer open.
func (fw *FileWriter) Close() error {
	if fw.err != nil {
		return fw.err
	}
	if !fw.started {
		if err := fw.start(); err != nil {
			fw.err = err
			return err
		}
	}
	if fw.closed {
		return nil
	}
	fw.closed = true

	footer, err := writeFileFooter(fw.schema, fw.blocks)
	if err != nil {
		fw.err = err
		return err
	}
	if err := fw.write(footer); err != nil {
		fw.err = err
		return err
	}

	var tail [8]byte
	binary.LittleEndian.PutUint32(tail[:4], 0) // reserved
	binary.LittleEndian.PutUint32(tail[4:], uint32(len(footer)))
	if err := fw.write(tail[:]); err != nil {
		fw.err = err
		return err
	}
	if err := fw.write(Magic); err != nil {
		fw.err = err
		return err
	}
	return nil
}
