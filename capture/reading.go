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
	"github.com/jetsetilly/frameperfect/userinput"
)

// reading of a single gamepad
type reading struct {
	buttons [userinput.NumGamepadButtons]bool
	x, y    float32
}

// normaliseAxis reduces an SDL axis value to the range -1.0 to 1.0.
func normaliseAxis(v int16) float32 {
	f := float32(v) / 32767
	if f < -1.0 {
		return -1.0
	}
	return f
}

// compare two readings and return the events that describe the change.
// button events are in index order and the axis event, if there is one, is
// last
func compare(id userinput.PadID, prev, next reading) []userinput.Event {
	var evs []userinput.Event
	for i := range next.buttons {
		if prev.buttons[i] != next.buttons[i] {
			evs = append(evs, userinput.EventGamepadButton{
				ID:    id,
				Index: i,
				Down:  next.buttons[i],
			})
		}
	}
	if prev.x != next.x || prev.y != next.y {
		evs = append(evs, userinput.EventGamepadAxis{
			ID: id,
			X:  next.x,
			Y:  next.y,
		})
	}
	return evs
}
