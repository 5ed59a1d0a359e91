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

// Package padproto implements the virtual pad protocol. The protocol is a
// stream of text lines, one command per line:
//
//	down <key>              press key
//	up <key>                release key
//	tap <key> <ms>          press key, wait ms (default 40), release key
//	chord <k1,k2,...> <ms>  press keys, wait ms (default 50), release keys
//	stop                    release every key
//
// Command words and key names are case insensitive. The comma character is
// accepted as the COMMA key in the down, up and tap commands.
//
// The Server type applies commands to a PadState and submits the state to a
// Driver whenever at least one key changes. Malformed lines are logged and
// ignored. The server runs until the input ends or its context is cancelled.
//
// The Client type writes commands to a server running in a separate process.
// The process is started on first use and restarted on the next command if it
// exits.
package padproto
