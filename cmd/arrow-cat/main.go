// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command arrow-cat prints the records of Arrow File or Streaming inputs.
//
//	arrow-cat data.arrow
//	cat stream.arrows | arrow-cat
//
// For named files the format is sniffed from the leading magic unless
// --format forces one. Standard input is always read as a stream, whatever
// --format says. Multiple inputs are read concurrently, one reader per file, and printed
// in argument order.
package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/solidcoredata/arrow/array"
	"github.com/solidcoredata/arrow/internal/start"
	"github.com/solidcoredata/arrow/ipc"
)

func main() {
	pflag.String("format", "auto", "input format: auto, file, or stream")
	pflag.Bool("verbose", false, "log per-file progress")
	pflag.Parse()

	v := viper.New()
	v.SetEnvPrefix("arrow_cat")
	v.AutomaticEnv()
	if err := v.BindPFlags(pflag.CommandLine); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	err = start.Start(context.Background(), func(ctx context.Context) error {
		return run(ctx, logger, v, pflag.Args())
	})
	if err != nil {
		logger.Error("arrow-cat failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *zap.Logger, v *viper.Viper, files []string) error {
	format := v.GetString("format")
	verbose := v.GetBool("verbose")

	if len(files) == 0 {
		return catStream(ctx, os.Stdout, os.Stdin)
	}

	// one reader instance per file; instances never share buffers, so the
	// files decode concurrently and print in argument order
	outs := make([]bytes.Buffer, len(files))
	runs := make([]func(ctx context.Context) error, len(files))
	for i, name := range files {
		i, name := i, name
		runs[i] = func(ctx context.Context) error {
			if verbose {
				logger.Info("reading", zap.String("file", name))
			}
			return catFile(ctx, &outs[i], name, format)
		}
	}
	if err := start.RunAll(ctx, runs...); err != nil {
		return err
	}
	for i := range outs {
		if _, err := outs[i].WriteTo(os.Stdout); err != nil {
			return err
		}
	}
	return nil
}

func catFile(ctx context.Context, w io.Writer, name, format string) error {
	f, err := os.Open(name)
	if err != nil {
		return errors.Wrap(err, "could not open input")
	}
	defer f.Close()

	if format == "auto" {
		format, err = sniffFormat(f)
		if err != nil {
			return errors.Wrapf(err, "could not sniff format of %q", name)
		}
	}
	switch format {
	case "file":
		return catFileFormat(ctx, w, f)
	case "stream":
		return catStream(ctx, w, f)
	}
	return errors.Errorf("unknown format %q", format)
}

// sniffFormat distinguishes the two wire formats by the leading magic and
// rewinds the input.
func sniffFormat(f io.ReadSeeker) (string, error) {
	head := make([]byte, len(ipc.Magic))
	_, err := io.ReadFull(f, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	if bytes.Equal(head, ipc.Magic) {
		return "file", nil
	}
	return "stream", nil
}

func catFileFormat(ctx context.Context, w io.Writer, f *os.File) error {
	r, err := ipc.NewFileReader(f)
	if err != nil {
		return err
	}
	defer r.Close()
	for i := 0; i < r.NumRecords(); i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		rec, err := r.Record(i)
		if err != nil {
			return err
		}
		printRecord(w, i+1, rec)
	}
	return nil
}

func catStream(ctx context.Context, w io.Writer, in io.Reader) error {
	r, err := ipc.NewReader(in)
	if err != nil {
		return err
	}
	defer r.Release()
	n := 0
	for r.Next() {
		if err := ctx.Err(); err != nil {
			return err
		}
		n++
		printRecord(w, n, r.Record())
	}
	return r.Err()
}

func printRecord(w io.Writer, n int, rec *array.Record) {
	fmt.Fprintf(w, "record %d...\n", n)
	for i, col := range rec.Columns() {
		fmt.Fprintf(w, "  col[%d] %q: %s\n", i, rec.ColumnName(i), col)
	}
}
