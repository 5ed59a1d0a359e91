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

// Package chords groups timestamped key labels into chords. A chord is a set
// of labels whose offsets fall within a window anchored on the first label of
// the chord.
//
// The window is anchored, not sliding. With a window of 35ms the offsets 0,
// 30 and 60 produce two chords, {0, 30} and {60}, because 60 is more than
// 35ms after the anchor at 0 even though it is only 30ms after the previous
// label.
package chords
