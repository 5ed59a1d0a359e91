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

// Package prefs facilitates the storage of preference values on disk.
//
// Preference values are registered with a Disk instance and the Load() and
// Save() functions move the values to and from the file. The file is plain
// text, one "key :: value" pair per line. Keys are conventionally grouped
// with a dot, eg. "capture.deadzone".
//
// Values can also be given on the command line with PushCommandLineStack().
// Command line values take priority over values on disk and are consumed by
// the next call to Disk.Load().
package prefs
