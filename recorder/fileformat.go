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
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/tidwall/gjson"

	"github.com/jetsetilly/frameperfect/curated"
	"github.com/jetsetilly/frameperfect/padkeys"
)

// the file representation of a recording
type fileRecording struct {
	Type       string `json:"type"`
	Version    int    `json:"version"`
	CreatedAt  string `json:"createdAt"`
	Platform   string `json:"platform"`
	Provider   string `json:"provider"`
	DurationMs int    `json:"durationMs"`
	Events     any    `json:"events"`
}

type fileEvent struct {
	T    int    `json:"t"`
	Type string `json:"type"`
	Key  string `json:"key"`
}

type fileLabeledEvent struct {
	T     int    `json:"t"`
	Label string `json:"label"`
}

// Save recording to io.Writer in the JSON file format.
func Save(w io.Writer, rec Recording) error {
	f := fileRecording{
		Type:       FileType,
		Version:    rec.Version,
		CreatedAt:  rec.CreatedAt.UTC().Format(time.RFC3339Nano),
		Platform:   rec.Platform,
		Provider:   rec.Provider,
		DurationMs: rec.DurationMs,
	}

	if rec.IsLegacy() {
		ev := make([]fileLabeledEvent, 0, len(rec.Legacy))
		for _, e := range rec.Legacy {
			ev = append(ev, fileLabeledEvent{T: e.OffsetMs, Label: e.Label})
		}
		f.Events = ev
	} else {
		ev := make([]fileEvent, 0, len(rec.Events))
		for _, e := range rec.Events {
			ev = append(ev, fileEvent{T: e.OffsetMs, Type: e.Type.String(), Key: e.Key.String()})
		}
		f.Events = ev
	}

	b, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return curated.Errorf(RecorderError, err)
	}
	b = append(b, '\n')

	if _, err := w.Write(b); err != nil {
		return curated.Errorf(RecorderError, err)
	}

	return nil
}

// SaveFile saves the recording to the named file. The file is created or
// truncated.
func SaveFile(path string, rec Recording) (rerr error) {
	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf(RecorderError, err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(RecorderError, err)
		}
	}()

	return Save(f, rec)
}

// LoadFile loads the recording in the named file.
func LoadFile(path string) (Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Recording{}, curated.Errorf(RecorderError, err)
	}
	return Load(data)
}

// Load a recording from the JSON file format. A version 1 file is returned
// as a version 1 recording. use Upgrade() to convert it.
//
// An error with the InvalidFile pattern is returned if the type field is
// missing or wrong. An error with the InvalidRecording pattern is returned if
// the data is not JSON or if there are no events.
func Load(data []byte) (Recording, error) {
	if !gjson.ValidBytes(data) {
		return Recording{}, curated.Errorf(InvalidRecording, "not a JSON document")
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return Recording{}, curated.Errorf(InvalidRecording, "not a JSON object")
	}

	if t := doc.Get("type"); t.String() != FileType {
		return Recording{}, curated.Errorf(InvalidFile, fmt.Sprintf("unexpected type (%s)", t.String()))
	}

	events := doc.Get("events")
	if !events.IsArray() || len(events.Array()) == 0 {
		return Recording{}, curated.Errorf(InvalidRecording, "no events")
	}

	rec := Recording{
		Version:  int(doc.Get("version").Int()),
		Platform: doc.Get("platform").String(),
		Provider: doc.Get("provider").String(),
	}

	if c := doc.Get("createdAt"); c.Exists() {
		// an unparseable time leaves the zero time
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, c.String())
	}

	// a duration that is null or not a number is treated as missing
	duration := doc.Get("durationMs")

	if isVersion2(rec.Version, events) {
		events.ForEach(func(_, v gjson.Result) bool {
			typ, ok := parseEventType(v.Get("type").String())
			if !ok {
				return true
			}
			key, ok := padkeys.Parse(v.Get("key").String())
			if !ok {
				return true
			}
			rec.Events = append(rec.Events, Event{
				OffsetMs: truncate(v.Get("t")),
				Type:     typ,
				Key:      key,
			})
			return true
		})
		SortEvents(rec.Events)

		if duration.Type == gjson.Number {
			rec.DurationMs = truncate(duration)
		} else {
			rec.DurationMs = durationOf(rec.Events)
		}

		return rec, nil
	}

	rec.Version = Version1
	events.ForEach(func(_, v gjson.Result) bool {
		rec.Legacy = append(rec.Legacy, LabeledEvent{
			OffsetMs: truncate(v.Get("t")),
			Label:    v.Get("label").String(),
		})
		return true
	})

	// for legacy recordings a duration of zero means that the duration should
	// be computed during the upgrade
	if duration.Type == gjson.Number {
		rec.DurationMs = truncate(duration)
	}

	return rec, nil
}

// version 2 recordings are identified by the version number and by the shape
// of the first event
func isVersion2(version int, events gjson.Result) bool {
	if version < Version2 {
		return false
	}
	t := events.Get("0.type").String()
	return t == "down" || t == "up"
}

// truncate a JSON number to whole milliseconds. a missing value is zero
func truncate(r gjson.Result) int {
	return int(r.Float())
}
