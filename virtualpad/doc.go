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

// Package virtualpad contains implementations of the padproto.Driver
// interface.
//
// The Uinput driver creates a virtual gamepad with the Linux uinput
// subsystem. Each report is compared with the previous report and only the
// buttons that have changed are pressed or released.
//
// The Log driver writes every report to the central logger. It is used when
// the uinput device cannot be created and is useful for checking the output
// of a recording without a game running.
package virtualpad
