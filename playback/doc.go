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

// Package playback replays a version 2 recording. Each key press is sent to
// the notation feed and each key transition is sent to the virtual pad as a
// protocol command.
//
// Events are applied at their offset from the start of playback. Events with
// the same offset are applied in the order they appear in the recording. A
// stop command is sent when playback ends, either naturally at the end of the
// recording or when the playback is cancelled.
//
// Timers are created by a Clock. RealClock uses the time package. ManualClock
// is advanced explicitly and is used to test time dependent code without
// waiting.
package playback
