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

package userinput

import "github.com/jetsetilly/frameperfect/padkeys"

// DefaultDeadzone is the default magnitude a stick axis must exceed before it
// is considered a press.
const DefaultDeadzone = 0.45

// Directions is the press state of the four directional keys.
type Directions struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
}

// AxisDirections converts a stick position into directional presses. Negative
// Y is up. A magnitude beyond the deadzone on an axis is a press.
func AxisDirections(x, y float32, deadzone float32) Directions {
	return Directions{
		Up:    y < -deadzone,
		Down:  y > deadzone,
		Left:  x < -deadzone,
		Right: x > deadzone,
	}
}

// get returns the state for a directional key.
func (d Directions) get(k padkeys.Key) bool {
	switch k {
	case padkeys.Up:
		return d.Up
	case padkeys.Down:
		return d.Down
	case padkeys.Left:
		return d.Left
	case padkeys.Right:
		return d.Right
	}
	return false
}

// Transition is a change of state for a key.
type Transition struct {
	Key  padkeys.Key
	Down bool
}

// AxisFallback turns successive stick readings into key transitions. It is
// used in place of the d-pad for gamepads that report their d-pad as a stick.
//
// The zero value is ready to use with all directions released.
type AxisFallback struct {
	last Directions
}

// directions are reported in this order
var directions = [...]padkeys.Key{padkeys.Up, padkeys.Down, padkeys.Left, padkeys.Right}

// Update with a new stick reading. Returns the transitions since the last
// reading.
func (af *AxisFallback) Update(x, y float32, deadzone float32) []Transition {
	dirs := AxisDirections(x, y, deadzone)

	var t []Transition
	for _, k := range directions {
		if dirs.get(k) != af.last.get(k) {
			t = append(t, Transition{Key: k, Down: dirs.get(k)})
		}
	}

	af.last = dirs
	return t
}
