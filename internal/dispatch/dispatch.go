// seehuhn.de/go/genera - a procedural art generator
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package dispatch runs jobs in the background and delivers only the
// result of the most recent request.
//
// Submitting a new job cancels the context of the previous one.  A job
// which finishes after a newer job has been submitted is discarded, even
// if it ignores the cancellation.
package dispatch

import (
	"context"
	"sync"

	"seehuhn.de/go/genera"
)

// Result is the outcome of a job.
type Result[T any] struct {
	ID    uint64
	Value T
}

// Dispatcher runs jobs of result type T.
type Dispatcher[T any] struct {
	mu      sync.Mutex
	latest  uint64
	cancel  context.CancelFunc
	closed  bool
	results chan Result[T]
	wg      sync.WaitGroup
}

// New returns a Dispatcher with no jobs.
func New[T any]() *Dispatcher[T] {
	return &Dispatcher[T]{
		results: make(chan Result[T], 1),
	}
}

// Submit starts job in a new goroutine and returns its request id.
// Ids increase with every call.  After Close, Submit returns 0 and does
// not run the job.
func (d *Dispatcher[T]) Submit(ctx context.Context, job func(context.Context) T) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return 0
	}
	if d.cancel != nil {
		d.cancel()
	}
	d.latest++
	id := d.latest
	jobCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		v := job(jobCtx)
		d.deliver(id, v)
	}()
	return id
}

func (d *Dispatcher[T]) deliver(id uint64, v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed || id != d.latest {
		genera.Logger().Debug("discarding stale result", "id", id, "latest", d.latest)
		return
	}
	// drop an undelivered older result
	select {
	case <-d.results:
	default:
	}
	d.results <- Result[T]{ID: id, Value: v}
}

// Results returns the channel on which results are delivered.  The
// channel holds at most one pending result and is closed by Close.
func (d *Dispatcher[T]) Results() <-chan Result[T] {
	return d.results
}

// Latest returns the id of the most recent request.
func (d *Dispatcher[T]) Latest() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.latest
}

// Close cancels the running job, waits for all jobs to return and closes
// the results channel.
func (d *Dispatcher[T]) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	if d.cancel != nil {
		d.cancel()
	}
	d.mu.Unlock()

	d.wg.Wait()
	close(d.results)
}
