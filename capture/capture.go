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

package capture

import (
	"github.com/jetsetilly/frameperfect/logger"
	"github.com/jetsetilly/frameperfect/userinput"
)

// ProviderUnavailable is the pattern for errors returned when a capture
// provider cannot be started.
const ProviderUnavailable = "capture: provider unavailable: %v"

// ChannelSize is the capacity of the channel created by NewChannel().
const ChannelSize = 64

// NewChannel creates a channel suitable for the capture providers.
func NewChannel() chan userinput.Event {
	return make(chan userinput.Event, ChannelSize)
}

// send event without blocking. the kind string is used in the log entry if
// the event is dropped
func send(ch chan<- userinput.Event, ev userinput.Event, kind string) bool {
	select {
	case ch <- ev:
		return true
	default:
		logger.Logf(logger.Allow, "capture", "dropped %s event", kind)
		return false
	}
}
