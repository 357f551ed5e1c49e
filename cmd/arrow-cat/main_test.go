// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/solidcoredata/arrow/array"
	"github.com/solidcoredata/arrow/arrow"
	"github.com/solidcoredata/arrow/ipc"
	"github.com/solidcoredata/arrow/memory"
)

func sampleStream(t *testing.T) []byte {
	t.Helper()
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "int32s", Type: arrow.PrimitiveTypes.Int32, Nullable: true},
	}, nil)
	b, err := array.NewRecordBuilder(memory.NewGoAllocator(), schema)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Release()
	fb := b.Field(0).(*array.Int32Builder)
	fb.Append(-1)
	fb.AppendNull()
	fb.Append(-3)
	rec, err := b.NewRecord()
	if err != nil {
		t.Fatal(err)
	}
	defer rec.Release()

	var buf bytes.Buffer
	w := ipc.NewWriter(&buf, ipc.WithSchema(schema))
	if err := w.Write(rec); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestCatStream(t *testing.T) {
	var out bytes.Buffer
	err := catStream(context.Background(), &out, bytes.NewReader(sampleStream(t)))
	if err != nil {
		t.Fatal(err)
	}
	want := "record 1...\n  col[0] \"int32s\": [-1 (null) -3]\n"
	if out.String() != want {
		t.Fatalf("output mismatch:\n got: %q\nwant: %q", out.String(), want)
	}
}

func TestSniffFormat(t *testing.T) {
	format, err := sniffFormat(bytes.NewReader(append([]byte("ARROW1"), 0, 0)))
	if err != nil {
		t.Fatal(err)
	}
	if format != "file" {
		t.Fatalf("got %q, want file", format)
	}
	format, err = sniffFormat(bytes.NewReader(sampleStream(t)))
	if err != nil {
		t.Fatal(err)
	}
	if format != "stream" {
		t.Fatalf("got %q, want stream", format)
	}
}
