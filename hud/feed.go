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

package hud

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/jetsetilly/frameperfect/chords"
	"github.com/jetsetilly/frameperfect/padkeys"
)

// Feed writes key presses to an io.Writer. Live presses are written
// immediately. Playback presses are collected into chords and each chord is
// written as a single line of notation.
//
// Feed implements the Display interface.
type Feed struct {
	crit sync.Mutex

	out      io.Writer
	windowMs int
	pending  []chords.Timed
}

// NewFeed is the preferred method of initialisation for the Feed type. A
// windowMs value of zero or less uses the default chord window.
func NewFeed(out io.Writer, windowMs int) *Feed {
	if windowMs <= 0 {
		windowMs = chords.DefaultWindow
	}
	return &Feed{
		out:      out,
		windowMs: windowMs,
	}
}

// Live implements the Display interface.
func (f *Feed) Live(key padkeys.Key) {
	f.crit.Lock()
	defer f.crit.Unlock()
	fmt.Fprintf(f.out, "%s\n", key.Label())
}

// Press implements the Display interface.
func (f *Feed) Press(key padkeys.Key, offset time.Duration) {
	f.crit.Lock()
	defer f.crit.Unlock()

	ms := int(offset.Milliseconds())
	if len(f.pending) > 0 && ms-f.pending[0].OffsetMs > f.windowMs {
		f.flush()
	}
	f.pending = append(f.pending, chords.Timed{OffsetMs: ms, Label: key.Label()})
}

// Flush implements the Display interface.
func (f *Feed) Flush() {
	f.crit.Lock()
	defer f.crit.Unlock()
	f.flush()
}

// should be called with the critical section held
func (f *Feed) flush() {
	for _, c := range chords.Group(f.pending, f.windowMs) {
		fmt.Fprintf(f.out, "%6dms  %s\n", c.OffsetMs, strings.Join(c.Labels, "+"))
	}
	f.pending = f.pending[:0]
}
