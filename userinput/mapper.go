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

import (
	"strconv"
	"strings"

	"github.com/jetsetilly/frameperfect/padkeys"
)

// keyboard aliases. applied after upper-casing and before the alphabet check.
// the raw M and comma keys are blocked before this table is consulted so that
// the J and K keys can be used for the third and fourth buttons
var keyboardAliases = map[string]string{
	"U":          "J",
	"I":          "K",
	"J":          "M",
	"K":          "COMMA",
	"ARROWUP":    "W",
	"UP":         "W",
	"ARROWDOWN":  "S",
	"DOWN":       "S",
	"ARROWLEFT":  "A",
	"LEFT":       "A",
	"ARROWRIGHT": "D",
	"RIGHT":      "D",
	"ESCAPE":     "B",
	"ESC":        "B",
	"ENTER":      "V",
	"RETURN":     "V",
}

// buttons in the standard gamepad layout that have a key
var buttonKeys = map[int]padkeys.Key{
	GamepadButtonA:     padkeys.B3,
	GamepadButtonB:     padkeys.B4,
	GamepadButtonX:     padkeys.B1,
	GamepadButtonY:     padkeys.B2,
	GamepadButtonBack:  padkeys.Select,
	GamepadButtonStart: padkeys.Start,
	GamepadButtonUp:    padkeys.Up,
	GamepadButtonDown:  padkeys.Down,
	GamepadButtonLeft:  padkeys.Left,
	GamepadButtonRight: padkeys.Right,
}

// Map a raw key name to a key in the alphabet. Returns false if the raw name
// has no key.
//
// For the GamepadButton provenance the raw name is the decimal button index.
// For the GamepadAxis provenance the raw name must already be a directional
// wire name (W, S, A or D).
func Map(raw string, prov Provenance) (padkeys.Key, bool) {
	switch prov {
	case Keyboard:
		return MapKeyboard(raw)
	case GamepadButton:
		idx, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return padkeys.NumKeys, false
		}
		return MapButton(idx)
	case GamepadAxis:
		k, ok := padkeys.Parse(raw)
		if !ok || !k.IsDirection() {
			return padkeys.NumKeys, false
		}
		return k, true
	}
	return padkeys.NumKeys, false
}

// MapKeyboard maps the label of a keyboard key to a key in the alphabet.
func MapKeyboard(label string) (padkeys.Key, bool) {
	u := strings.ToUpper(strings.TrimSpace(label))

	// raw M and comma are never accepted from the keyboard
	if u == "M" || u == "," {
		return padkeys.NumKeys, false
	}

	if a, ok := keyboardAliases[u]; ok {
		u = a
	}

	return padkeys.Parse(u)
}

// MapButton maps a button index in the standard gamepad layout to a key in
// the alphabet.
func MapButton(index int) (padkeys.Key, bool) {
	k, ok := buttonKeys[index]
	if !ok {
		return padkeys.NumKeys, false
	}
	return k, true
}
