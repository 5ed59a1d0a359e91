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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Unlike the flag package, the argument list is given with NewArgs() and then
// Parse() is called with no arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("HUD", "PLAY", "PAD", "UPGRADE", "INFO")
//	_, _ = md.Parse()
//
// The first sub-mode named is the default. After Parse(), Mode() returns the
// selected mode and the arguments after the mode selector are available with
// RemainingArgs() and GetArg().
//
// Each mode then starts a new set of flags with NewMode() and calls Parse()
// again:
//
//	switch md.Mode() {
//	case "PLAY":
//		md.NewMode()
//		inject := md.AddBool("inject", true, "send playback to the virtual pad")
//		p, err := md.Parse()
//		if err != nil || p != modalflag.ParseContinue {
//			return err
//		}
//		...
//	}
//
// Modes can be nested as deep as required. The Path() function returns the
// chain of modes that have been selected, separated by a forward slash.
//
// For simplicity, all sub-mode comparisons are case insensitive.
package modalflag
