// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipc

import (
	"io"

	"golang.org/x/xerrors"

	"github.com/solidcoredata/arrow/array"
	"github.com/solidcoredata/arrow/arrow"
	"github.com/solidcoredata/arrow/memory"
)

// payload is one encoded message: the finished metadata flatbuffer and the
// body buffers in depth-first order. A nil body entry is a dropped buffer
// that still occupies a zero-length Buffer record on the wire.
type payload struct {
	meta []byte
	body []*memory.Buffer
	size int64
}

// Writer emits the Streaming format: the schema message first, record
// batches in call order, and the eight byte terminator on Close.
type Writer struct {
	w io.Writer

	// err is sticky; once a write fails every later call returns the same
	// error and nothing further is written.
	err error

	mem     memory.Allocator
	schema  *arrow.Schema
	started bool
	closed  bool
}

// NewWriter returns a writer emitting records to w. The schema must be
// provided up front with WithSchema.
func NewWriter(w io.Writer, opts ...Option) *Writer {
	cfg := newConfig(opts...)
	return &Writer{
		w:      w,
		mem:    cfg.alloc,
		schema: cfg.schema,
	}
}

func (w *Writer) start() error {
	w.started = true
	if w.schema == nil {
		return arrow.Invalidf("writer has no schema")
	}
	meta, err := writeSchemaMessage(w.schema)
	if err != nil {
		return err
	}
	_, err = writeMessageFrame(w.w, meta)
	return err
}

// Write encodes rec and appends it to the stream. The record's schema must
// equal the writer schema.
func (w *Writer) Write(rec *array.Record) error {
	if w.err != nil {
		return w.err
	}
	if !w.started {
		if err := w.start(); err != nil {
			w.err = err
			return err
		}
	}
	if rec.Schema() == nil || !rec.Schema().Equal(w.schema) {
		return errInconsistentSchema
	}

	p, err := encodeRecord(rec)
	if err != nil {
		w.err = err
		return xerrors.Errorf("arrow/ipc: could not encode record to payload: %w", err)
	}
	if err := writeIPCPayload(w.w, p); err != nil {
		w.err = err
		return err
	}
	return nil
}

// Close terminates the stream. The terminator is always the final eight
// bytes emitted.
func (w *Writer) Close() error {
	if w.err != nil {
		return w.err
	}
	if !w.started {
		if err := w.start(); err != nil {
			w.err = err
			return err
		}
	}
	if w.closed {
		return nil
	}
	w.closed = true
	if _, err := w.w.Write(kEOS[:]); err != nil {
		w.err = arrow.IOError(err)
		return w.err
	}
	return nil
}

// writeIPCPayload emits the framed metadata followed by the padded body.
func writeIPCPayload(w io.Writer, p *payload) error {
	if _, err := writeMessageFrame(w, p.meta); err != nil {
		return err
	}
	for _, buf := range p.body {
		if buf == nil || buf.Len() == 0 {
			continue
		}
		size := int64(buf.Len())
		if _, err := w.Write(buf.Bytes()); err != nil {
			return arrow.IOError(err)
		}
		if pad := pad8(size) - size; pad > 0 {
			if _, err := w.Write(paddingBytes[:pad]); err != nil {
				return arrow.IOError(err)
			}
		}
	}
	return nil
}

// recordEncoder performs the depth-first walk over a record: one FieldNode
// per logical array, buffers in the same order, parents before children.
type recordEncoder struct {
	fields []fieldMetadata
	meta   []bufferMetadata
	depth  int64
}

// encodeRecord lowers rec into a payload: header message plus body buffers
// with 8-byte padded body offsets.
func encodeRecord(rec *array.Record) (*payload, error) {
	var (
		p   = &payload{}
		enc = &recordEncoder{depth: kMaxNestingDepth}
	)
	for i, col := range rec.Columns() {
		if err := enc.visit(p, col); err != nil {
			return nil, xerrors.Errorf("arrow/ipc: could not encode column %d (%q): %w", i, rec.ColumnName(i), err)
		}
	}

	// assign body offsets; every buffer is padded to 8 bytes on the wire
	offset := int64(0)
	enc.meta = make([]bufferMetadata, len(p.body))
	for i, buf := range p.body {
		size := int64(0)
		if buf != nil {
			size = int64(buf.Len())
		}
		padded := pad8(size)
		enc.meta[i] = bufferMetadata{Offset: offset, Len: padded}
		offset += padded
	}
	p.size = offset

	p.meta = writeRecordMessage(rec.NumRows(), p.size, enc.fields, enc.meta)
	return p, nil
}

func (enc *recordEncoder) visit(p *payload, arr array.Interface) error {
	if enc.depth <= 0 {
		return errMaxRecursion
	}
	enc.fields = append(enc.fields, fieldMetadata{
		Len:   int64(arr.Len()),
		Nulls: int64(arr.NullN()),
	})

	if arr.DataType().ID() == arrow.NULL {
		return nil
	}

	data := arr.Data()

	// null_count of zero drops the validity bitmap from the wire; the
	// Buffer record stays, zero length.
	if arr.NullN() == 0 {
		p.body = append(p.body, nil)
	} else {
		p.body = append(p.body, data.Buffers()[0])
	}

	switch arr := arr.(type) {
	case *array.Boolean:
		p.body = append(p.body, data.Buffers()[1])
	case *array.Binary, *array.String, *array.LargeBinary, *array.LargeString:
		p.body = append(p.body, data.Buffers()[1])
		p.body = append(p.body, data.Buffers()[2])
	case *array.List:
		p.body = append(p.body, data.Buffers()[1])
		enc.depth--
		if err := enc.visit(p, arr.ListValues()); err != nil {
			return xerrors.Errorf("could not visit list values: %w", err)
		}
		enc.depth++
	case *array.FixedSizeList:
		enc.depth--
		if err := enc.visit(p, arr.ListValues()); err != nil {
			return xerrors.Errorf("could not visit list values: %w", err)
		}
		enc.depth++
	case *array.Struct:
		enc.depth--
		for i := 0; i < arr.NumField(); i++ {
			if err := enc.visit(p, arr.Field(i)); err != nil {
				return xerrors.Errorf("could not visit struct field %d: %w", i, err)
			}
		}
		enc.depth++
	default:
		// every remaining kind is a fixed width primitive
		p.body = append(p.body, data.Buffers()[1])
	}
	return nil
}
