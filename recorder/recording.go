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
	"sort"
	"time"

	"github.com/jetsetilly/frameperfect/padkeys"
)

// FileType is the value of the type field in every recording file.
const FileType = "frameperfect.keys"

// FileExtension is the conventional extension for recording files.
const FileExtension = "fpkeys"

// List of recording versions.
const (
	Version1 = 1
	Version2 = 2
)

// TailMs is added to the offset of the last event to give the duration of a
// recording when the duration is not otherwise known. It is also the delay
// between the end of a recording and the end of its playback.
const TailMs = 30

// Sentinal error patterns.
const (
	InvalidFile      = "recorder: invalid file: %v"
	InvalidRecording = "recorder: invalid recording: %v"
	NotRecording     = "recorder: not recording"
	RecorderError    = "recorder: %v"
)

// EventType is either Down or Up.
type EventType int

// List of valid event types.
const (
	Down EventType = iota
	Up
)

func (t EventType) String() string {
	switch t {
	case Down:
		return "down"
	case Up:
		return "up"
	}
	return ""
}

// parseEventType is the inverse of EventType.String().
func parseEventType(s string) (EventType, bool) {
	switch s {
	case "down":
		return Down, true
	case "up":
		return Up, true
	}
	return Down, false
}

// Event is a single key transition at an offset from the start of the
// recording.
type Event struct {
	OffsetMs int
	Type     EventType
	Key      padkeys.Key
}

// LabeledEvent is an event from a version 1 recording. The label is the name
// of the key as given by the keyboard hook at the time of recording.
type LabeledEvent struct {
	OffsetMs int
	Label    string
}

// Recording is a complete recording. Only one of Events and Legacy is used,
// depending on the version.
type Recording struct {
	Version    int
	CreatedAt  time.Time
	Platform   string
	Provider   string
	DurationMs int

	// version 2 events
	Events []Event

	// version 1 events
	Legacy []LabeledEvent
}

// IsLegacy returns true if the recording must be upgraded before it can be
// played. The decision is made on the events that are present. The version
// number is only consulted for a recording with no events at all.
func (rec Recording) IsLegacy() bool {
	if len(rec.Events) > 0 {
		return false
	}
	return len(rec.Legacy) > 0 || rec.Version < Version2
}

// SortEvents stable sorts the events by offset.
func SortEvents(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].OffsetMs < events[j].OffsetMs
	})
}

// durationOf returns the last offset plus TailMs. An empty list of events
// has a duration of zero.
func durationOf(events []Event) int {
	if len(events) == 0 {
		return 0
	}
	last := 0
	for _, e := range events {
		if e.OffsetMs > last {
			last = e.OffsetMs
		}
	}
	return last + TailMs
}
