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

package dispatch

import (
	"context"
	"testing"
	"time"
)

func TestLatestWins(t *testing.T) {
	d := New[string]()

	release := make(chan struct{})
	cancelled := make(chan bool, 1)
	first := d.Submit(context.Background(), func(ctx context.Context) string {
		<-release
		cancelled <- ctx.Err() != nil
		return "stale"
	})
	second := d.Submit(context.Background(), func(context.Context) string {
		return "fresh"
	})
	if second <= first {
		t.Fatalf("ids not increasing: %d, %d", first, second)
	}

	select {
	case r := <-d.Results():
		if r.ID != second || r.Value != "fresh" {
			t.Errorf("got %+v", r)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no result")
	}

	close(release)
	if !<-cancelled {
		t.Error("superseded job was not cancelled")
	}
	d.Close()

	for r := range d.Results() {
		t.Errorf("unexpected result %+v", r)
	}
}

func TestSubmitAfterClose(t *testing.T) {
	d := New[int]()
	d.Close()
	d.Close()

	ran := false
	if id := d.Submit(context.Background(), func(context.Context) int { ran = true; return 1 }); id != 0 {
		t.Errorf("got id %d", id)
	}
	if ran {
		t.Error("job ran after Close")
	}
	if d.Latest() != 0 {
		t.Errorf("latest is %d", d.Latest())
	}
}

func TestOnlyOnePending(t *testing.T) {
	d := New[int]()
	defer d.Close()

	d.latest = 2
	d.deliver(1, 1) // stale
	d.deliver(2, 2)
	d.latest = 3
	d.deliver(3, 3)

	if n := len(d.results); n != 1 {
		t.Fatalf("%d pending results", n)
	}
	if r := <-d.Results(); r.ID != 3 || r.Value != 3 {
		t.Errorf("got %+v, want the third result", r)
	}
}
