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

// Package hud ties the capture providers, the recorder, the playback
// scheduler and the pad protocol client together.
//
// The Controller owns the current mode and moves between Idle, Recording and
// Playback. Recording and playback are never active at the same time.
// Starting one while the other is active stops the active one first, passing
// through Idle.
//
// The Loop() function is the single consumer of input events, console
// commands and playback end notices. All calls to the Controller should be
// made from the goroutine running Loop().
//
// The Feed type shows presses as they happen and the notation of a playback
// as it is played. The Status type presents notifications on the terminal.
// The Console type reads single key commands from the terminal.
package hud
