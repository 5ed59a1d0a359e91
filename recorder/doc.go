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

// Package recorder handles the capture of key transitions into a Recording
// and the persistence of recordings to disk.
//
// A recording in progress is represented by the Session type. Key transitions
// are added to the session as they happen and the Finish() function produces
// the Recording. The Save() and Load() functions convert between a Recording
// and the JSON file format. The file format is:
//
//	{
//	  "type": "frameperfect.keys",
//	  "version": 2,
//	  "createdAt": "2024-03-09T14:05:07Z",
//	  "platform": "linux",
//	  "provider": "evdev+sdl",
//	  "durationMs": 1200,
//	  "events": [
//	    { "t": 0, "type": "down", "key": "W" },
//	    { "t": 55, "type": "up", "key": "W" }
//	  ]
//	}
//
// Version 1 files have events of the form { "t": 0, "label": "W" } and no
// explicit releases. They are converted to version 2 with the Upgrade()
// function.
//
// Loading is tolerant. Missing and unknown fields are ignored, event offsets
// are truncated to whole milliseconds and events naming a key outside the
// alphabet are dropped.
package recorder
