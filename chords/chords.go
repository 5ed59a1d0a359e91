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

package chords

import "sort"

// DefaultWindow is the default chord window in milliseconds.
const DefaultWindow = 35

// Timed is a label at an offset (in milliseconds) from the start of a
// recording.
type Timed struct {
	OffsetMs int
	Label    string
}

// Chord is a group of labels. The offset of the chord is the offset of the
// first label in the group.
type Chord struct {
	OffsetMs int
	Labels   []string
}

// Group labels into chords. The input slice is not modified. A window of zero
// or less is replaced by DefaultWindow.
//
// Events are sorted by offset before grouping. Events with the same offset
// keep their original order.
func Group(events []Timed, windowMs int) []Chord {
	if windowMs <= 0 {
		windowMs = DefaultWindow
	}

	sorted := make([]Timed, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OffsetMs < sorted[j].OffsetMs
	})

	var chords []Chord

	i := 0
	for i < len(sorted) {
		anchor := sorted[i].OffsetMs
		c := Chord{
			OffsetMs: anchor,
			Labels:   []string{sorted[i].Label},
		}

		j := i + 1
		for j < len(sorted) && sorted[j].OffsetMs-anchor <= windowMs {
			c.Labels = append(c.Labels, sorted[j].Label)
			j++
		}

		chords = append(chords, c)
		i = j
	}

	return chords
}
