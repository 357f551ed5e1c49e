// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipc

import (
	"bytes"
	"encoding/binary"
	"io"

	"golang.org/x/xerrors"

	"github.com/solidcoredata/arrow/array"
	"github.com/solidcoredata/arrow/arrow"
	"github.com/solidcoredata/arrow/internal/bitutil"
	"github.com/solidcoredata/arrow/internal/flatbuf"
	"github.com/solidcoredata/arrow/memory"
)

// FileReader reads the File format: it parses the footer at the end of the
// input, then serves record batches by their footer blocks.
type FileReader struct {
	r ReadAtSeeker

	footerOffset int64
	footer       *flatbuf.Footer
	schema       *arrow.Schema

	rec  *array.Record
	irec int

	mem memory.Allocator
}

// NewFileReader opens an Arrow file. The footer offset defaults to the end
// of the input.
func NewFileReader(r ReadAtSeeker, opts ...Option) (*FileReader, error) {
	cfg := newConfig(opts...)
	f := &FileReader{r: r, mem: cfg.alloc, footerOffset: cfg.footer.offset}

	if f.footerOffset <= 0 {
		offset, err := r.Seek(0, io.SeekEnd)
		if err != nil {
			return nil, xerrors.Errorf("arrow/ipc: could not find footer offset: %w", arrow.IOError(err))
		}
		f.footerOffset = offset
	}

	if err := f.readFooter(); err != nil {
		return nil, xerrors.Errorf("arrow/ipc: could not decode footer: %w", err)
	}

	schema, err := schemaFromFB(f.footer.Schema(nil))
	if err != nil {
		return nil, xerrors.Errorf("arrow/ipc: could not decode schema: %w", err)
	}
	f.schema = schema

	if cfg.schema != nil && !cfg.schema.Equal(f.schema) {
		return nil, arrow.Invalidf("inconsistent schema for reading (got: %v, want: %v)", f.schema, cfg.schema)
	}
	return f, nil
}

// fileTailLen is the fixed tail after the footer flatbuffer: the reserved
// word, the footer length, and the trailing magic.
const fileTailLen = int64(4 + 4 + len("ARROW1"))

func (f *FileReader) readFooter() error {
	if f.footerOffset <= int64(len(Magic))+fileTailLen {
		return arrow.Invalidf("file too small (size=%d)", f.footerOffset)
	}

	tail := make([]byte, 4+len(Magic))
	if _, err := f.r.ReadAt(tail, f.footerOffset-int64(len(tail))); err != nil {
		return arrow.IOError(err)
	}
	if !bytes.Equal(tail[4:], Magic) {
		return errNotArrowFile
	}

	footerLen := int64(binary.LittleEndian.Uint32(tail[:4]))
	if footerLen <= 0 || footerLen+fileTailLen+int64(len(Magic)) > f.footerOffset {
		return errInconsistentFileMetadata
	}

	buf := make([]byte, footerLen)
	if _, err := f.r.ReadAt(buf, f.footerOffset-fileTailLen-footerLen); err != nil {
		return arrow.IOError(err)
	}
	f.footer = flatbuf.GetRootAsFooter(buf, 0)
	return nil
}

func (f *FileReader) Schema() *arrow.Schema { return f.schema }

func (f *FileReader) NumRecords() int {
	return f.footer.RecordBatchesLength()
}

func (f *FileReader) block(i int) (fileBlock, error) {
	var blk flatbuf.Block
	if !f.footer.RecordBatches(&blk, i) {
		return fileBlock{}, arrow.Invalidf("could not extract file block %d", i)
	}
	return fileBlock{
		Offset: blk.Offset(),
		Meta:   blk.MetaDataLength(),
		Body:   blk.BodyLength(),
	}, nil
}

// Record returns the i-th record of the file. The result stays valid until
// the next call to Record or Read.
func (f *FileReader) Record(i int) (*array.Record, error) {
	if i < 0 || i >= f.NumRecords() {
		return nil, arrow.ErrOutOfBounds(i)
	}
	blk, err := f.block(i)
	if err != nil {
		return nil, err
	}
	switch {
	case !bitutil.IsMultipleOf8(blk.Offset):
		return nil, arrow.Invalidf("block %d has unaligned offset %d", i, blk.Offset)
	case !bitutil.IsMultipleOf8(int64(blk.Meta)):
		return nil, arrow.Invalidf("block %d has unaligned metadata length %d", i, blk.Meta)
	case !bitutil.IsMultipleOf8(blk.Body):
		return nil, arrow.Invalidf("block %d has unaligned body length %d", i, blk.Body)
	}

	// the block frames one message exactly as the stream does: the framed
	// metadata of Meta bytes, then the body
	sec := io.NewSectionReader(f.r, blk.Offset, int64(blk.Meta)+blk.Body)
	mr := NewMessageReader(sec, WithAllocator(f.mem))
	defer mr.Release()
	msg, err := mr.Message()
	if err != nil {
		if err == io.EOF {
			return nil, arrow.Invalidf("block %d is truncated", i)
		}
		return nil, err
	}
	if msg.Type() != MessageRecordBatch {
		return nil, arrow.Invalidf("block %d holds a %v message, not a record batch", i, msg.Type())
	}

	rec, err := newRecordFromMessage(f.schema, msg)
	if err != nil {
		return nil, err
	}
	if f.rec != nil {
		f.rec.Release()
	}
	f.rec = rec
	return rec, nil
}

// Read returns the records of the file in order, then io.EOF.
func (f *FileReader) Read() (*array.Record, error) {
	if f.irec == f.NumRecords() {
		return nil, io.EOF
	}
	rec, err := f.Record(f.irec)
	if err != nil {
		return nil, err
	}
	f.irec++
	return rec, nil
}

// Close releases the current record. It does not close the underlying
// reader.
func (f *FileReader) Close() error {
	if f.rec != nil {
		f.rec.Release()
		f.rec = nil
	}
	f.footer = nil
	return nil
}
