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
	"sync"

	"github.com/jetsetilly/frameperfect/logger"
	"github.com/jetsetilly/frameperfect/notifications"
)

var messages = map[notifications.Notice]string{
	notifications.NotifyRecordingStarted:     "recording",
	notifications.NotifyRecordingSaved:       "recording saved",
	notifications.NotifyRecordingSaveFailed:  "recording could not be saved",
	notifications.NotifyPlaybackStarted:      "playing",
	notifications.NotifyPlaybackEnded:        "playback finished",
	notifications.NotifyPlaybackCancelled:    "playback stopped",
	notifications.NotifyInvalidFile:          "cannot play file",
	notifications.NotifyPadServerStarted:     "virtual pad connected",
	notifications.NotifyPadServerExited:      "virtual pad disconnected",
	notifications.NotifyPadServerUnavailable: "virtual pad unavailable",
	notifications.NotifyProviderUnavailable:  "input unavailable",
	notifications.NotifyInjectOn:             "controller injection on",
	notifications.NotifyInjectOff:            "controller injection off",
}

// Status writes notifications to an io.Writer, one per line.
//
// Status implements the notifications.Notify interface.
type Status struct {
	crit sync.Mutex
	out  io.Writer
}

// NewStatus is the preferred method of initialisation for the Status type.
func NewStatus(out io.Writer) *Status {
	return &Status{out: out}
}

// Notify implements the notifications.Notify interface.
func (s *Status) Notify(notice notifications.Notice, detail string) error {
	msg, ok := messages[notice]
	if !ok {
		msg = string(notice)
	}
	if detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, detail)
	}

	logger.Log(logger.Allow, "hud", msg)

	s.crit.Lock()
	defer s.crit.Unlock()

	_, err := fmt.Fprintf(s.out, "* %s\n", msg)
	return err
}
