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

package padkeys

import "strings"

// Key is one of the ten controller keys.
type Key int

// List of valid keys.
const (
	Up Key = iota
	Down
	Left
	Right
	B1
	B2
	B3
	B4
	Start
	Select

	// NumKeys is the number of keys in the alphabet. it is not a valid key
	NumKeys
)

var wireNames = [NumKeys]string{"W", "S", "A", "D", "J", "K", "M", "COMMA", "B", "V"}

var labels = [NumKeys]string{"↑", "↓", "←", "→", "1", "2", "3", "4", "Options", "Select"}

// Valid returns true if the key is in the alphabet.
func (k Key) Valid() bool {
	return k >= Up && k < NumKeys
}

// String returns the wire name of the key. An invalid key returns the empty
// string.
func (k Key) String() string {
	if !k.Valid() {
		return ""
	}
	return wireNames[k]
}

// Label returns the display label for the key.
func (k Key) Label() string {
	if !k.Valid() {
		return ""
	}
	return labels[k]
}

// IsDirection returns true for the four directional keys.
func (k Key) IsDirection() bool {
	return k >= Up && k <= Right
}

// Parse a wire name into a Key. Parsing is case insensitive and ignores
// surrounding white space.
func Parse(s string) (Key, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for k, n := range wireNames {
		if n == s {
			return Key(k), true
		}
	}
	return NumKeys, false
}

// All returns every key in alphabet order.
func All() []Key {
	keys := make([]Key, NumKeys)
	for i := range keys {
		keys[i] = Key(i)
	}
	return keys
}
