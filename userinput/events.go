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

// Event represents all the different type of events that can occur in the
// capture providers. Events are always sent over a channel.
type Event interface{}

// EventQuit is sent when the provider wants the program to end.
type EventQuit struct{}

// KeyMod identifies the modifier keys held during a keyboard event.
type KeyMod int

// List of valid KeyMod values.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// EventKeyboard is a key press or release from the keyboard hook. The Key
// field is the provider's label for the key (eg. "W", "Up", "Enter").
type EventKeyboard struct {
	Key    string
	Down   bool
	Repeat bool
	Mod    KeyMod
}

// PadID identifies a physical gamepad.
type PadID int

// EventGamepadButton is a button transition on a gamepad. The Index field is
// the button's position in the standard gamepad layout.
type EventGamepadButton struct {
	ID    PadID
	Index int
	Down  bool
}

// Standard gamepad layout button indices.
const (
	GamepadButtonA     = 0
	GamepadButtonB     = 1
	GamepadButtonX     = 2
	GamepadButtonY     = 3
	GamepadButtonBack  = 8
	GamepadButtonStart = 9
	GamepadButtonUp    = 12
	GamepadButtonDown  = 13
	GamepadButtonLeft  = 14
	GamepadButtonRight = 15
	NumGamepadButtons  = 16
)

// EventGamepadAxis is a reading of the left analogue stick of a gamepad. Both
// values are normalised to the range -1.0 to 1.0.
type EventGamepadAxis struct {
	ID PadID
	X  float32
	Y  float32
}

// Provenance identifies the kind of input a raw key name came from.
type Provenance int

// List of valid Provenance values.
const (
	Keyboard Provenance = iota
	GamepadButton
	GamepadAxis
)

func (p Provenance) String() string {
	switch p {
	case Keyboard:
		return "keyboard"
	case GamepadButton:
		return "gamepad button"
	case GamepadAxis:
		return "gamepad axis"
	}
	return ""
}
