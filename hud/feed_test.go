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

package hud_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/frameperfect/hud"
	"github.com/jetsetilly/frameperfect/notifications"
	"github.com/jetsetilly/frameperfect/padkeys"
	"github.com/jetsetilly/frameperfect/test"
)

func TestFeed(t *testing.T) {
	w := &test.Writer{}
	f := hud.NewFeed(w, 35)

	f.Live(padkeys.Start)
	test.ExpectEquality(t, w.String(), "Options\n")
	w.Clear()

	f.Press(padkeys.Down, 0)
	f.Press(padkeys.Right, 20*time.Millisecond)
	f.Press(padkeys.B3, 35*time.Millisecond)
	test.ExpectEquality(t, w.String(), "")

	// outside of the window of the first press
	f.Press(padkeys.B1, 36*time.Millisecond)
	test.ExpectEquality(t, w.String(), "     0ms  ↓+→+3\n")

	f.Flush()
	test.ExpectEquality(t, w.String(), "     0ms  ↓+→+3\n    36ms  1\n")

	// nothing pending
	f.Flush()
	test.ExpectEquality(t, w.String(), "     0ms  ↓+→+3\n    36ms  1\n")
}

func TestStatus(t *testing.T) {
	w := &test.Writer{}
	s := hud.NewStatus(w)

	test.ExpectSuccess(t, s.Notify(notifications.NotifyRecordingSaved, "recording.fpkeys"))
	test.ExpectSuccess(t, s.Notify(notifications.NotifyPlaybackEnded, ""))
	test.ExpectEquality(t, w.String(), "* recording saved: recording.fpkeys\n* playback finished\n")
}
