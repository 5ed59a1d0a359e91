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
	"sort"
	"sync"
	"time"
)

// Timer is a pending call to a function.
type Timer interface {
	// Stop the timer. Returns false if the timer has already fired or has
	// already been stopped
	Stop() bool
}

// Clock is the source of time for playback.
type Clock interface {
	Now() time.Time

	// AfterFunc waits for the duration to elapse and then calls f in its own
	// goroutine
	AfterFunc(d time.Duration, f func()) Timer
}

// RealClock implements Clock with the time package.
type RealClock struct{}

// Now implements the Clock interface.
func (RealClock) Now() time.Time {
	return time.Now()
}

// AfterFunc implements the Clock interface.
func (RealClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// ManualClock implements Clock. Time only moves when Advance() is called.
// Timer functions are called synchronously by Advance() in deadline order.
// Timers with the same deadline are called in the order they were created.
type ManualClock struct {
	crit   sync.Mutex
	now    time.Time
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	clk     *ManualClock
	at      time.Time
	seq     int
	f       func()
	stopped bool
	fired   bool
}

// NewManualClock is the preferred method of initialisation for the
// ManualClock type.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now implements the Clock interface.
func (clk *ManualClock) Now() time.Time {
	clk.crit.Lock()
	defer clk.crit.Unlock()
	return clk.now
}

// AfterFunc implements the Clock interface.
func (clk *ManualClock) AfterFunc(d time.Duration, f func()) Timer {
	clk.crit.Lock()
	defer clk.crit.Unlock()

	if d < 0 {
		d = 0
	}

	clk.seq++
	t := &manualTimer{
		clk: clk,
		at:  clk.now.Add(d),
		seq: clk.seq,
		f:   f,
	}
	clk.timers = append(clk.timers, t)

	return t
}

// Stop implements the Timer interface.
func (t *manualTimer) Stop() bool {
	t.clk.crit.Lock()
	defer t.clk.crit.Unlock()

	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Advance time by the duration. Timers that become due are called in order,
// including timers created by those timers if they also become due.
func (clk *ManualClock) Advance(d time.Duration) {
	clk.crit.Lock()
	target := clk.now.Add(d)
	clk.crit.Unlock()

	for {
		clk.crit.Lock()

		// forget timers that will never be called
		live := clk.timers[:0]
		for _, t := range clk.timers {
			if !t.stopped && !t.fired {
				live = append(live, t)
			}
		}
		clk.timers = live

		sort.SliceStable(clk.timers, func(i, j int) bool {
			if clk.timers[i].at.Equal(clk.timers[j].at) {
				return clk.timers[i].seq < clk.timers[j].seq
			}
			return clk.timers[i].at.Before(clk.timers[j].at)
		})

		if len(clk.timers) == 0 || clk.timers[0].at.After(target) {
			clk.now = target
			clk.crit.Unlock()
			return
		}

		t := clk.timers[0]
		t.fired = true
		clk.now = t.at
		clk.crit.Unlock()

		t.f()
	}
}

// Pending returns the number of timers that have not fired and have not been
// stopped.
func (clk *ManualClock) Pending() int {
	clk.crit.Lock()
	defer clk.crit.Unlock()

	var n int
	for _, t := range clk.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}
