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

package playback_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jetsetilly/frameperfect/padkeys"
	"github.com/jetsetilly/frameperfect/padproto"
	"github.com/jetsetilly/frameperfect/playback"
	"github.com/jetsetilly/frameperfect/recorder"
	"github.com/jetsetilly/frameperfect/test"
)

// output implements both the Display and Pad interfaces and writes
// everything it receives to a test.Writer
type output struct {
	w test.Writer
}

func (o *output) Press(key padkeys.Key, offset time.Duration) {
	fmt.Fprintf(&o.w, "[%s@%d]", key.Label(), offset.Milliseconds())
}

func (o *output) Send(cmd padproto.Command) error {
	fmt.Fprintf(&o.w, "(%s)", cmd)
	return nil
}

// pad sends commands to a padproto.Server
type pad struct {
	srv *padproto.Server
}

type driver struct{}

func (driver) Submit(_ padproto.PadState) error {
	return nil
}

func (p pad) Send(cmd padproto.Command) error {
	return p.srv.Apply(context.Background(), cmd)
}

func ev(ms int, t recorder.EventType, k padkeys.Key) recorder.Event {
	return recorder.Event{OffsetMs: ms, Type: t, Key: k}
}

var start = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func TestPlaybackOrder(t *testing.T) {
	clk := playback.NewManualClock(start)
	o := &output{}
	sch := playback.Scheduler{Clock: clk, Display: o, Pad: o}

	// out of order on purpose. the two events at 10ms keep their relative
	// order
	events := []recorder.Event{
		ev(60, recorder.Up, padkeys.B1),
		ev(10, recorder.Down, padkeys.B1),
		ev(10, recorder.Down, padkeys.Right),
		ev(65, recorder.Up, padkeys.Right),
	}

	var ended bool
	h := sch.Schedule(events, 65, func(_ *playback.Handle) {
		ended = true
	})

	// the caller's slice is not sorted
	test.ExpectEquality(t, events[0].OffsetMs, 60)

	clk.Advance(9 * time.Millisecond)
	test.ExpectSuccess(t, o.w.Compare(""))

	clk.Advance(time.Millisecond)
	test.ExpectEquality(t, o.w.String(), "[1@10](down J)[→@10](down D)")

	o.w.Clear()
	clk.Advance(55 * time.Millisecond)
	test.ExpectEquality(t, o.w.String(), "(up J)(up D)")
	test.ExpectFailure(t, ended)

	// the end of playback is 30ms after the duration
	o.w.Clear()
	clk.Advance(29 * time.Millisecond)
	test.ExpectSuccess(t, o.w.Compare(""))
	test.ExpectFailure(t, ended)

	clk.Advance(time.Millisecond)
	test.ExpectEquality(t, o.w.String(), "(stop)")
	test.ExpectSuccess(t, ended)
	test.ExpectFailure(t, h.Cancelled())
	test.ExpectEquality(t, clk.Pending(), 0)

	select {
	case <-h.Done():
	default:
		t.Errorf("done channel not closed")
	}

	// cancelling a finished playback does nothing
	test.ExpectFailure(t, h.Cancel())
}

func TestPlaybackCancel(t *testing.T) {
	clk := playback.NewManualClock(start)
	srv := padproto.NewServer(driver{})
	o := &output{}
	sch := playback.Scheduler{Clock: clk, Display: o, Pad: pad{srv: srv}}

	events := []recorder.Event{
		ev(0, recorder.Down, padkeys.Up),
		ev(10, recorder.Down, padkeys.B2),
		ev(100, recorder.Up, padkeys.B2),
		ev(120, recorder.Up, padkeys.Up),
	}

	var ended bool
	h := sch.Schedule(events, 120, func(_ *playback.Handle) {
		ended = true
	})

	clk.Advance(50 * time.Millisecond)
	test.ExpectSuccess(t, srv.State().Pressed(padkeys.Up))
	test.ExpectSuccess(t, srv.State().Pressed(padkeys.B2))

	test.ExpectSuccess(t, h.Cancel())
	test.ExpectSuccess(t, h.Cancelled())
	test.ExpectSuccess(t, srv.State().Neutral())
	test.ExpectEquality(t, clk.Pending(), 0)

	// nothing happens after cancellation
	reports := srv.Reports()
	clk.Advance(time.Second)
	test.ExpectEquality(t, srv.Reports(), reports)
	test.ExpectFailure(t, ended)
	test.ExpectFailure(t, h.Cancel())

	test.ExpectEquality(t, o.w.String(), "[↑@0][2@10]")
}

func TestPlaybackCancelAnyTime(t *testing.T) {
	events := []recorder.Event{
		ev(0, recorder.Down, padkeys.Up),
		ev(10, recorder.Down, padkeys.B2),
		ev(10, recorder.Down, padkeys.Start),
		ev(100, recorder.Up, padkeys.B2),
		ev(120, recorder.Up, padkeys.Up),
	}

	// playback ends naturally at 150ms
	tests := []struct {
		at        time.Duration
		cancelled bool
	}{
		{at: 0, cancelled: true},
		{at: 5 * time.Millisecond, cancelled: true},
		{at: 10 * time.Millisecond, cancelled: true},
		{at: 50 * time.Millisecond, cancelled: true},
		{at: 100 * time.Millisecond, cancelled: true},
		{at: 120 * time.Millisecond, cancelled: true},
		{at: 149 * time.Millisecond, cancelled: true},
		{at: 150 * time.Millisecond, cancelled: false},
		{at: time.Second, cancelled: false},
	}

	for _, tt := range tests {
		clk := playback.NewManualClock(start)
		srv := padproto.NewServer(driver{})
		sch := playback.Scheduler{Clock: clk, Pad: pad{srv: srv}}

		var ended bool
		h := sch.Schedule(events, 120, func(_ *playback.Handle) {
			ended = true
		})

		clk.Advance(tt.at)
		test.ExpectEquality(t, h.Cancel(), tt.cancelled, tt.at)
		test.ExpectSuccess(t, srv.State().Neutral(), tt.at)
		test.ExpectEquality(t, clk.Pending(), 0, tt.at)
		test.ExpectEquality(t, ended, !tt.cancelled, tt.at)

		// nothing happens after cancellation
		reports := srv.Reports()
		clk.Advance(time.Second)
		test.ExpectEquality(t, srv.Reports(), reports, tt.at)
		test.ExpectSuccess(t, srv.State().Neutral(), tt.at)
	}
}

func TestPlaybackEmpty(t *testing.T) {
	clk := playback.NewManualClock(start)
	o := &output{}
	sch := playback.Scheduler{Clock: clk, Display: o, Pad: o}

	var ended bool
	sch.Schedule(nil, -100, func(_ *playback.Handle) {
		ended = true
	})

	// negative duration is treated as zero
	clk.Advance(29 * time.Millisecond)
	test.ExpectFailure(t, ended)
	clk.Advance(time.Millisecond)
	test.ExpectSuccess(t, ended)
	test.ExpectEquality(t, o.w.String(), "(stop)")
}

func TestPlaybackShortDuration(t *testing.T) {
	clk := playback.NewManualClock(start)
	o := &output{}
	sch := playback.Scheduler{Clock: clk, Display: o, Pad: o}

	// the duration is shorter than the events. playback ends before the last
	// events are sent
	events := []recorder.Event{
		ev(0, recorder.Down, padkeys.Start),
		ev(500, recorder.Up, padkeys.Start),
	}
	sch.Schedule(events, 10, nil)

	clk.Advance(time.Second)
	test.ExpectEquality(t, o.w.String(), "[Options@0](down B)(stop)")
}

func TestPlaybackRealClock(t *testing.T) {
	o := &output{}
	sch := playback.Scheduler{Clock: playback.RealClock{}, Display: o, Pad: o}

	events := []recorder.Event{
		ev(0, recorder.Down, padkeys.Select),
		ev(5, recorder.Up, padkeys.Select),
	}

	var wg sync.WaitGroup
	wg.Add(1)
	h := sch.Schedule(events, 5, func(_ *playback.Handle) {
		wg.Done()
	})

	select {
	case <-h.Done():
	case <-time.After(5 * time.Second):
		t.Fatalf("playback did not end")
	}
	wg.Wait()

	test.ExpectEquality(t, o.w.String(), "[Select@0](down V)(up V)(stop)")
}
