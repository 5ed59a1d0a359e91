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

package govern

// Mode indicates the broad condition of the HUD.
type Mode int

func (m Mode) String() string {
	switch m {
	case Idle:
		return "Idle"
	case Recording:
		return "Recording"
	case Playback:
		return "Playback"
	}

	return ""
}

// List of defined modes. Idle is the default mode.
const (
	Idle Mode = iota
	Recording
	Playback
)

// ValidTransition checks whether a change from one mode to another is
// allowed.
//
// Rules:
//
//  1. Idle can change to Recording or Playback
//
//  2. Recording and Playback can only change to Idle
//
// Changing to the same mode is not a transition and is not valid.
func ValidTransition(from Mode, to Mode) bool {
	switch from {
	case Idle:
		return to == Recording || to == Playback
	case Recording, Playback:
		return to == Idle
	}
	return false
}
