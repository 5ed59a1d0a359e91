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

package playback

import (
	"sync"
	"time"

	"github.com/jetsetilly/frameperfect/logger"
	"github.com/jetsetilly/frameperfect/padkeys"
	"github.com/jetsetilly/frameperfect/padproto"
	"github.com/jetsetilly/frameperfect/recorder"
)

// Display receives the key presses of a playback. The offset is the time
// since the start of playback.
type Display interface {
	Press(key padkeys.Key, offset time.Duration)
}

// Pad receives the protocol commands of a playback.
type Pad interface {
	Send(cmd padproto.Command) error
}

// Scheduler starts playbacks.
type Scheduler struct {
	Clock   Clock
	Display Display
	Pad     Pad
}

// group of events that share an offset
type group struct {
	offset time.Duration
	events []recorder.Event
}

// Handle is a playback in progress.
type Handle struct {
	sched *Scheduler

	crit sync.Mutex

	start    time.Time
	groups   []group
	next     int
	timer    Timer
	terminal Timer

	// playback has ended or been cancelled
	finished  bool
	cancelled bool
	done      chan struct{}

	onEnd func(*Handle)
}

// Schedule a playback of the events. The events are sorted by offset before
// scheduling, the slice itself is not changed. Playback ends TailMs after
// durationMs, at which point the stop command is sent and onEnd is called.
// The onEnd function is not called if the playback is cancelled.
//
// The onEnd function can be nil.
func (sch *Scheduler) Schedule(events []recorder.Event, durationMs int, onEnd func(*Handle)) *Handle {
	sorted := make([]recorder.Event, len(events))
	copy(sorted, events)
	recorder.SortEvents(sorted)

	h := &Handle{
		sched: sch,
		done:  make(chan struct{}),
		onEnd: onEnd,
	}

	for _, e := range sorted {
		d := time.Duration(max(e.OffsetMs, 0)) * time.Millisecond
		if len(h.groups) == 0 || h.groups[len(h.groups)-1].offset != d {
			h.groups = append(h.groups, group{offset: d})
		}
		g := &h.groups[len(h.groups)-1]
		g.events = append(g.events, e)
	}

	end := time.Duration(max(durationMs, 0)+recorder.TailMs) * time.Millisecond

	h.crit.Lock()
	defer h.crit.Unlock()

	h.start = sch.Clock.Now()
	h.terminal = sch.Clock.AfterFunc(end, h.end)
	h.arm()

	logger.Logf(logger.Allow, "playback", "scheduled %d events over %dms", len(sorted), durationMs)

	return h
}

// arm the timer for the next group. should be called with the critical
// section held
func (h *Handle) arm() {
	if h.next >= len(h.groups) {
		h.timer = nil
		return
	}
	d := h.groups[h.next].offset - h.sched.Clock.Now().Sub(h.start)
	h.timer = h.sched.Clock.AfterFunc(max(d, 0), h.fire)
}

// fire the next group of events.
func (h *Handle) fire() {
	h.crit.Lock()
	defer h.crit.Unlock()

	if h.finished || h.next >= len(h.groups) {
		return
	}

	g := h.groups[h.next]
	h.next++

	for _, e := range g.events {
		var cmd padproto.Command
		switch e.Type {
		case recorder.Down:
			if h.sched.Display != nil {
				h.sched.Display.Press(e.Key, g.offset)
			}
			cmd = padproto.Down(e.Key)
		case recorder.Up:
			cmd = padproto.Up(e.Key)
		default:
			continue // for loop
		}
		h.send(cmd)
	}

	h.arm()
}

// send command to the pad. errors are logged and do not stop playback.
// should be called with the critical section held
func (h *Handle) send(cmd padproto.Command) {
	if h.sched.Pad == nil {
		return
	}
	if err := h.sched.Pad.Send(cmd); err != nil {
		logger.Log(logger.Allow, "playback", err)
	}
}

// stop all timers and release all keys. should be called with the critical
// section held. returns false if playback had already finished
func (h *Handle) finish() bool {
	if h.finished {
		return false
	}
	h.finished = true

	if h.timer != nil {
		h.timer.Stop()
	}
	h.terminal.Stop()
	h.send(padproto.Stop())
	close(h.done)

	return true
}

// the natural end of playback.
func (h *Handle) end() {
	h.crit.Lock()
	ok := h.finish()
	h.crit.Unlock()

	if !ok {
		return
	}

	logger.Log(logger.Allow, "playback", "playback ended")

	// called outside the critical section so that the callback can use the
	// handle
	if h.onEnd != nil {
		h.onEnd(h)
	}
}

// Cancel the playback. When Cancel() returns no further event from the
// playback will be applied and the stop command has been sent. Returns false
// if the playback had already ended or been cancelled.
func (h *Handle) Cancel() bool {
	h.crit.Lock()
	defer h.crit.Unlock()

	if !h.finish() {
		return false
	}
	h.cancelled = true

	logger.Log(logger.Allow, "playback", "playback cancelled")

	return true
}

// Done returns a channel that is closed when playback ends or is cancelled.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Cancelled returns true if the playback was cancelled.
func (h *Handle) Cancelled() bool {
	h.crit.Lock()
	defer h.crit.Unlock()
	return h.cancelled
}
