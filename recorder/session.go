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
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/jetsetilly/frameperfect/curated"
	"github.com/jetsetilly/frameperfect/logger"
	"github.com/jetsetilly/frameperfect/padkeys"
	"github.com/jetsetilly/frameperfect/userinput"
)

// Providers names the input providers in use. The names end up in the
// provider field of the recording.
type Providers struct {
	Keyboard string
	Gamepad  string
}

// label returns the provider string for a recording. the gamepad provider is
// only included when gamepad input was seen during the recording
func (p Providers) label(gamepadSeen bool) string {
	if gamepadSeen && p.Gamepad != "" {
		if p.Keyboard == "" {
			return p.Gamepad
		}
		return fmt.Sprintf("%s+%s", p.Keyboard, p.Gamepad)
	}
	if p.Keyboard == "" {
		return "none"
	}
	return p.Keyboard
}

// Session is a recording in progress. The zero value is not usable; use
// NewSession().
//
// Session implements the userinput.HandleInput interface.
type Session struct {
	crit sync.Mutex

	now       func() time.Time
	providers Providers

	active      bool
	start       time.Time
	events      []Event
	gamepadSeen bool
}

// NewSession is the preferred method of initialisation for the Session type.
// The now function is used to timestamp events. If it is nil then time.Now()
// is used.
func NewSession(now func() time.Time, providers Providers) *Session {
	if now == nil {
		now = time.Now
	}
	return &Session{
		now:       now,
		providers: providers,
	}
}

// Start a new recording. Any events from a previous recording are forgotten.
func (s *Session) Start() {
	s.crit.Lock()
	defer s.crit.Unlock()

	s.active = true
	s.start = s.now()
	s.events = s.events[:0]
	s.gamepadSeen = false
}

// IsActive returns true if the session is recording.
func (s *Session) IsActive() bool {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.active
}

// Add a key transition to the recording. Transitions are ignored if the
// session is not recording.
func (s *Session) Add(key padkeys.Key, down bool, prov userinput.Provenance) {
	if !key.Valid() {
		return
	}

	s.crit.Lock()
	defer s.crit.Unlock()

	if !s.active {
		return
	}

	ev := Event{
		OffsetMs: int(s.now().Sub(s.start).Milliseconds()),
		Key:      key,
		Type:     Up,
	}
	if down {
		ev.Type = Down
	}
	s.events = append(s.events, ev)

	if prov != userinput.Keyboard {
		s.gamepadSeen = true
	}
}

// HandleKey implements the userinput.HandleInput interface.
func (s *Session) HandleKey(key padkeys.Key, down bool, prov userinput.Provenance) error {
	s.Add(key, down, prov)
	return nil
}

// Finish the recording. The session is no longer active after this call.
func (s *Session) Finish() (Recording, error) {
	s.crit.Lock()
	defer s.crit.Unlock()

	if !s.active {
		return Recording{}, curated.Errorf(NotRecording)
	}
	s.active = false

	n := s.now()

	events := make([]Event, len(s.events))
	copy(events, s.events)
	SortEvents(events)

	rec := Recording{
		Version:    Version2,
		CreatedAt:  n.UTC(),
		Platform:   runtime.GOOS,
		Provider:   s.providers.label(s.gamepadSeen),
		DurationMs: int(n.Sub(s.start).Milliseconds()),
		Events:     events,
	}

	logger.Logf(logger.Allow, "recorder", "finished recording: %d events over %dms", len(events), rec.DurationMs)

	return rec, nil
}
