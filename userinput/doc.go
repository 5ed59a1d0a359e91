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

// Package userinput translates raw input events from the capture providers
// into keys from the padkeys alphabet.
//
// It can be thought of as a translation layer between the input providers
// (the keyboard hook and gamepad polling) and the rest of the system. As
// such, this package hides the details of the provider while protecting the
// recorder from the many ways a key can be named.
//
// The Map() function is the pure mapping from a raw key name or button index
// to a Key. The Controllers type adds the state required for the analogue
// stick fallback and forwards the resulting key transitions to an
// implementation of HandleInput.
package userinput
