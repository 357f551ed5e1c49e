// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipc

import (
	"encoding/binary"
	"io"
	"sync/atomic"

	"golang.org/x/xerrors"

	"github.com/solidcoredata/arrow/arrow"
	"github.com/solidcoredata/arrow/internal/flatbuf"
	"github.com/solidcoredata/arrow/memory"
)

// MessageType is the header kind carried by a framed message.
type MessageType int

const (
	MessageNone MessageType = iota
	MessageSchema
	MessageDictionaryBatch
	MessageRecordBatch
)

func (m MessageType) String() string {
	switch m {
	case MessageSchema:
		return "schema"
	case MessageDictionaryBatch:
		return "dictionary batch"
	case MessageRecordBatch:
		return "record batch"
	}
	return "none"
}

func messageTypeFromFB(h flatbuf.MessageHeader) MessageType {
	switch h {
	case flatbuf.MessageHeaderSchema:
		return MessageSchema
	case flatbuf.MessageHeaderDictionaryBatch:
		return MessageDictionaryBatch
	case flatbuf.MessageHeaderRecordBatch:
		return MessageRecordBatch
	}
	return MessageNone
}

// Message is one framed unit: the FlatBuffers metadata and, for record
// batches, the packed body that follows it on the wire.
type Message struct {
	refCount int64
	msg      *flatbuf.Message
	meta     *memory.Buffer
	body     *memory.Buffer
}

// NewMessage wraps the framed metadata and body. It retains references on
// both buffers.
func NewMessage(meta, body *memory.Buffer) *Message {
	if meta == nil || body == nil {
		panic("arrow/ipc: nil buffers")
	}
	meta.Retain()
	body.Retain()
	return &Message{
		refCount: 1,
		msg:      flatbuf.GetRootAsMessage(meta.Bytes(), 0),
		meta:     meta,
		body:     body,
	}
}

func (m *Message) Type() MessageType { return messageTypeFromFB(m.msg.HeaderType()) }
func (m *Message) BodyLen() int64    { return m.msg.BodyLength() }

func (m *Message) Retain() {
	atomic.AddInt64(&m.refCount, 1)
}

func (m *Message) Release() {
	if atomic.AddInt64(&m.refCount, -1) == 0 {
		m.meta.Release()
		m.body.Release()
		m.msg, m.meta, m.body = nil, nil, nil
	}
}

// MessageReader is the streaming framing state machine. At the start of
// every message it reads a little-endian length, skipping a continuation
// marker when present; a zero length terminates the stream.
type MessageReader struct {
	r io.Reader

	refCount int64
	msg      *Message

	mem memory.Allocator
}

func NewMessageReader(r io.Reader, opts ...Option) *MessageReader {
	cfg := newConfig(opts...)
	return &MessageReader{r: r, refCount: 1, mem: cfg.alloc}
}

func (r *MessageReader) Retain() {
	atomic.AddInt64(&r.refCount, 1)
}

func (r *MessageReader) Release() {
	if atomic.AddInt64(&r.refCount, -1) == 0 {
		if r.msg != nil {
			r.msg.Release()
			r.msg = nil
		}
	}
}

// Message reads the next framed message. It returns io.EOF at a stream
// terminator, and also at a bare end-of-input, which callers treat as a
// truncated stream holding whatever was parsed so far.
func (r *MessageReader) Message() (*Message, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r.r, buf[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, io.EOF
		}
		return nil, arrow.IOError(err)
	}
	msgLen := binary.LittleEndian.Uint32(buf[:])
	if msgLen == kIPCContToken {
		if _, err := io.ReadFull(r.r, buf[:]); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, io.EOF
			}
			return nil, arrow.IOError(err)
		}
		msgLen = binary.LittleEndian.Uint32(buf[:])
	}
	if msgLen == 0 {
		// stream terminator
		return nil, io.EOF
	}

	meta := memory.NewResizableBuffer(r.mem)
	meta.Resize(int(msgLen))
	if _, err := io.ReadFull(r.r, meta.Bytes()); err != nil {
		meta.Release()
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, io.EOF
		}
		return nil, arrow.IOError(err)
	}

	msg := flatbuf.GetRootAsMessage(meta.Bytes(), 0)
	bodyLen := msg.BodyLength()

	body := memory.NewResizableBuffer(r.mem)
	body.Resize(int(bodyLen))
	if bodyLen > 0 {
		if _, err := io.ReadFull(r.r, body.Bytes()); err != nil {
			meta.Release()
			body.Release()
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, io.EOF
			}
			return nil, arrow.IOError(err)
		}
	}

	if r.msg != nil {
		r.msg.Release()
		r.msg = nil
	}
	r.msg = NewMessage(meta, body)
	meta.Release()
	body.Release()

	return r.msg, nil
}

// writeMessageFrame emits the continuation marker, the little-endian
// padded metadata length, the metadata, and zero padding to 8 bytes.
func writeMessageFrame(w io.Writer, meta []byte) (int64, error) {
	var (
		frame  [8]byte
		padded = pad8(int64(len(meta)))
	)
	binary.LittleEndian.PutUint32(frame[:4], kIPCContToken)
	binary.LittleEndian.PutUint32(frame[4:], uint32(padded))
	if _, err := w.Write(frame[:]); err != nil {
		return 0, xerrors.Errorf("arrow/ipc: could not write message frame: %w", arrow.IOError(err))
	}
	if _, err := w.Write(meta); err != nil {
		return 0, xerrors.Errorf("arrow/ipc: could not write message metadata: %w", arrow.IOError(err))
	}
	if pad := padded - int64(len(meta)); pad > 0 {
		if _, err := w.Write(paddingBytes[:pad]); err != nil {
			return 0, xerrors.Errorf("arrow/ipc: could not pad message: %w", arrow.IOError(err))
		}
	}
	return 8 + padded, nil
}

var paddingBytes [8]byte
