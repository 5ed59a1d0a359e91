// This file is part of FramePerfect.
//
// FramePerfect is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// FramePerfect is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with FramePerfect.  If not, see <https://www.gnu.org/licenses/>.

package padproto_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/jetsetilly/frameperfect/padkeys"
	"github.com/jetsetilly/frameperfect/padproto"
	"github.com/jetsetilly/frameperfect/test"
)

// driver records every report submitted by the server.
type driver struct {
	crit    sync.Mutex
	reports []padproto.PadState
	err     error
}

func (d *driver) Submit(state padproto.PadState) error {
	d.crit.Lock()
	defer d.crit.Unlock()
	d.reports = append(d.reports, state)
	return d.err
}

func (d *driver) count() int {
	d.crit.Lock()
	defer d.crit.Unlock()
	return len(d.reports)
}

func (d *driver) last() padproto.PadState {
	d.crit.Lock()
	defer d.crit.Unlock()
	if len(d.reports) == 0 {
		return padproto.PadState{}
	}
	return d.reports[len(d.reports)-1]
}

func apply(t *testing.T, srv *padproto.Server, line string) {
	t.Helper()
	cmd, err := padproto.Parse(line)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, srv.Apply(context.Background(), cmd))
}

func TestSubmitOnChange(t *testing.T) {
	d := &driver{}
	srv := padproto.NewServer(d)

	// no report is sent until something changes
	test.ExpectEquality(t, d.count(), 0)

	apply(t, srv, "down W")
	apply(t, srv, "down W")
	test.ExpectEquality(t, d.count(), 1)
	test.ExpectEquality(t, srv.Reports(), 1)

	apply(t, srv, "up S")
	test.ExpectEquality(t, d.count(), 1)

	apply(t, srv, "up W")
	test.ExpectEquality(t, d.count(), 2)
	test.ExpectSuccess(t, d.last().Neutral())

	// stop on a neutral pad sends nothing
	apply(t, srv, "stop")
	test.ExpectEquality(t, d.count(), 2)
}

func TestChord(t *testing.T) {
	d := &driver{}
	srv := padproto.NewServer(d)

	// chord presses and releases the recognised keys with one report each
	apply(t, srv, "chord S,Q,J 0")
	test.DemandEquality(t, d.count(), 2)
	test.ExpectSuccess(t, d.reports[0].Pressed(padkeys.Down))
	test.ExpectSuccess(t, d.reports[0].Pressed(padkeys.B1))
	test.ExpectSuccess(t, d.reports[1].Neutral())
}

func TestTap(t *testing.T) {
	d := &driver{}
	srv := padproto.NewServer(d)

	apply(t, srv, "tap , 1")
	test.DemandEquality(t, d.count(), 2)
	test.ExpectEquality(t, d.reports[0].String(), "COMMA")
	test.ExpectSuccess(t, d.reports[1].Neutral())
}

func TestStop(t *testing.T) {
	d := &driver{}
	srv := padproto.NewServer(d)

	apply(t, srv, "down W")
	apply(t, srv, "down J")
	apply(t, srv, "down B")
	test.ExpectEquality(t, d.count(), 3)

	// a single report releases everything
	apply(t, srv, "stop")
	test.ExpectEquality(t, d.count(), 4)
	test.ExpectSuccess(t, srv.State().Neutral())
}

func TestServe(t *testing.T) {
	d := &driver{}
	srv := padproto.NewServer(d)

	input := strings.Join([]string{
		"down W",
		"",
		"jump W",
		"down Q",
		strings.Repeat("x", 100000),
		"down J",
		"up W",
	}, "\n")

	// final line without a line ending is still applied
	input += "\nup J"

	err := srv.Serve(context.Background(), strings.NewReader(input))
	test.ExpectSuccess(t, err)

	// down W, down J, up W, up J. the stop at the end of the session finds
	// nothing pressed
	test.ExpectEquality(t, d.count(), 4)
	test.ExpectSuccess(t, srv.State().Neutral())
}

func TestServeReleasesOnEnd(t *testing.T) {
	d := &driver{}
	srv := padproto.NewServer(d)

	err := srv.Serve(context.Background(), strings.NewReader("down W\ndown A\n"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d.count(), 3)
	test.ExpectSuccess(t, d.last().Neutral())
}

func TestServeDriverErrors(t *testing.T) {
	d := &driver{err: errors.New("device gone")}
	srv := padproto.NewServer(d)

	// driver errors do not end the session
	err := srv.Serve(context.Background(), strings.NewReader("down W\ndown A\nup A\n"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d.count(), 4)
}

func TestServeCancel(t *testing.T) {
	d := &driver{}
	srv := padproto.NewServer(d)

	r, w := io.Pipe()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error)
	go func() {
		done <- srv.Serve(ctx, r)
	}()

	_, err := w.Write([]byte("down W\n"))
	test.DemandSuccess(t, err)

	// tap holds for a long time. cancelling the context ends the hold
	_, err = w.Write([]byte("tap J 100000\n"))
	test.DemandSuccess(t, err)

	cancel()
	test.ExpectSuccess(t, <-done)
	test.ExpectSuccess(t, d.last().Neutral())
	_ = w.Close()
}
