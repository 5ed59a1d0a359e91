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

package padproto

import (
	"strings"

	"github.com/jetsetilly/frameperfect/padkeys"
)

// PadState is the pressed state of every key on the virtual controller. The
// zero value has every key released.
type PadState [padkeys.NumKeys]bool

// Set the state of key. Returns true if the state changed.
func (s *PadState) Set(key padkeys.Key, pressed bool) bool {
	if !key.Valid() || s[key] == pressed {
		return false
	}
	s[key] = pressed
	return true
}

// Pressed returns true if key is pressed.
func (s PadState) Pressed(key padkeys.Key) bool {
	if !key.Valid() {
		return false
	}
	return s[key]
}

// Neutral returns true if no key is pressed.
func (s PadState) Neutral() bool {
	return s == PadState{}
}

// String lists the pressed keys by wire name. A neutral state is shown as
// "neutral".
func (s PadState) String() string {
	var k []string
	for i, p := range s {
		if p {
			k = append(k, padkeys.Key(i).String())
		}
	}
	if len(k) == 0 {
		return "neutral"
	}
	return strings.Join(k, "+")
}
