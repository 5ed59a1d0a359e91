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

package main

import (
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/frameperfect/padkeys"
	"github.com/jetsetilly/frameperfect/recorder"
	"github.com/jetsetilly/frameperfect/test"
)

func TestSummarise(t *testing.T) {
	rec := recorder.Recording{
		Version:    recorder.Version2,
		CreatedAt:  time.Date(2024, 5, 2, 18, 0, 0, 0, time.UTC),
		Platform:   "linux",
		Provider:   "evdev+sdl",
		DurationMs: 230,
		Events: []recorder.Event{
			{OffsetMs: 0, Type: recorder.Down, Key: padkeys.Down},
			{OffsetMs: 20, Type: recorder.Down, Key: padkeys.Right},
			{OffsetMs: 80, Type: recorder.Up, Key: padkeys.Down},
			{OffsetMs: 90, Type: recorder.Up, Key: padkeys.Right},
			{OffsetMs: 150, Type: recorder.Down, Key: padkeys.B3},
			{OffsetMs: 200, Type: recorder.Up, Key: padkeys.B3},
		},
	}

	w := &test.Writer{}
	summarise(w, "combo.fpkeys", rec, true)

	expected := strings.Join([]string{
		"combo.fpkeys",
		"  version:  2",
		"  created:  2024-05-02T18:00:00Z",
		"  platform: linux",
		"  provider: evdev+sdl",
		"  duration: 230ms",
		"  events:   6",
		"  chords:   2",
		"       0ms  ↓+→",
		"     150ms  3",
		"",
	}, "\n")
	test.ExpectEquality(t, w.String(), expected)
}

func TestSummariseLegacy(t *testing.T) {
	rec := recorder.Recording{
		Version: recorder.Version1,
		Legacy: []recorder.LabeledEvent{
			{OffsetMs: 0, Label: "U"},
			{OffsetMs: 10, Label: "I"},
			{OffsetMs: 100, Label: "Enter"},
		},
	}

	w := &test.Writer{}
	summarise(w, "old.fpkeys", rec, false)

	test.ExpectSuccess(t, strings.Contains(w.String(), "  events:   3 (legacy)\n"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "  chords:   2\n"))
	test.ExpectFailure(t, strings.Contains(w.String(), "created"))
}
