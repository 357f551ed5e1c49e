// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package start runs a command until it finishes or the process is
// interrupted.
package start

import (
	"context"
	"os"
	"os/signal"

	"golang.org/x/sync/errgroup"
)

// Start runs run with a context that cancels on interrupt.
func Start(ctx context.Context, run func(ctx context.Context) error) error {
	notify := make(chan os.Signal, 3)
	signal.Notify(notify, os.Interrupt)
	defer signal.Stop(notify)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-notify:
			cancel()
		case <-ctx.Done():
		}
	}()
	return run(ctx)
}

// RunAll runs every function concurrently and returns the first error. The
// shared context cancels when any function fails.
func RunAll(ctx context.Context, runs ...func(ctx context.Context) error) error {
	group, ctx := errgroup.WithContext(ctx)
	for _, run := range runs {
		run := run
		group.Go(func() error { return run(ctx) })
	}
	return group.Wait()
}
