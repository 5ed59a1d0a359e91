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

package recorder

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/jetsetilly/frameperfect/chords"
	"github.com/jetsetilly/frameperfect/curated"
	"github.com/jetsetilly/frameperfect/userinput"
)

// Default values for Upgrade().
const (
	DefaultHoldMs   = 55
	DefaultWindowMs = chords.DefaultWindow
)

// Upgrade a version 1 recording to version 2. A recording that is already
// version 2 is returned unchanged.
//
// Legacy labels are grouped into chords. Each key in a chord is pressed at the
// offset of the chord and released holdMs later. Labels that do not map to a
// key are dropped and a chord with no keys produces no events.
//
// A hold of less than zero is treated as zero. A window of zero or less uses
// the default window.
func Upgrade(rec Recording, holdMs int, windowMs int) Recording {
	if !rec.IsLegacy() {
		return rec
	}

	if holdMs < 0 {
		holdMs = 0
	}

	timed := make([]chords.Timed, 0, len(rec.Legacy))
	for _, e := range rec.Legacy {
		timed = append(timed, chords.Timed{OffsetMs: e.OffsetMs, Label: e.Label})
	}

	var events []Event
	for _, c := range chords.Group(timed, windowMs) {
		var n int
		for _, l := range c.Labels {
			if k, ok := userinput.Map(l, userinput.Keyboard); ok {
				events = append(events, Event{OffsetMs: c.OffsetMs, Type: Down, Key: k})
				n++
			}
		}

		// releases follow the presses in the same order
		for _, e := range events[len(events)-n:] {
			events = append(events, Event{OffsetMs: c.OffsetMs + holdMs, Type: Up, Key: e.Key})
		}
	}
	SortEvents(events)

	upg := rec
	upg.Version = Version2
	upg.Legacy = nil
	upg.Events = events

	// a duration in the original file takes precedence
	if upg.DurationMs <= 0 {
		upg.DurationMs = durationOf(events)
	}

	return upg
}

// UpgradeFile converts the data of a version 1 recording file to version 2.
// Fields in the file that are not part of the recording format are preserved.
// The data of a version 2 file is returned unchanged.
func UpgradeFile(data []byte, holdMs int, windowMs int) ([]byte, error) {
	rec, err := Load(data)
	if err != nil {
		return nil, err
	}

	if !rec.IsLegacy() {
		return data, nil
	}

	d := gjson.GetBytes(data, "durationMs")
	hadDuration := d.Type == gjson.Number && d.Int() > 0
	rec = Upgrade(rec, holdMs, windowMs)

	events := make([]fileEvent, 0, len(rec.Events))
	for _, e := range rec.Events {
		events = append(events, fileEvent{T: e.OffsetMs, Type: e.Type.String(), Key: e.Key.String()})
	}

	out, err := sjson.SetBytes(data, "version", Version2)
	if err != nil {
		return nil, curated.Errorf(RecorderError, err)
	}
	out, err = sjson.SetBytes(out, "events", events)
	if err != nil {
		return nil, curated.Errorf(RecorderError, err)
	}
	if !hadDuration {
		out, err = sjson.SetBytes(out, "durationMs", rec.DurationMs)
		if err != nil {
			return nil, curated.Errorf(RecorderError, err)
		}
	}

	return pretty.PrettyOptions(out, &pretty.Options{Width: 80, Indent: "  "}), nil
}
