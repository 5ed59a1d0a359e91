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

// Package capture contains the providers of raw input events. Each provider
// runs in its own goroutine and sends userinput.Event values on a channel.
//
// The Keyboard provider reads key events from a Linux input device with
// evdev. The key is read whether or not the terminal has focus, which is
// what allows FramePerfect to record input while a game is running.
//
// The Gamepads provider polls every attached game controller through SDL.
// Button and left stick readings are compared with the previous poll and
// only changes are sent.
//
// The channel used by the providers should be created with NewChannel(). If
// the channel is full the event is dropped and the loss is logged.
package capture
