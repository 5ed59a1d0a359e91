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

// Package performance runs a function with the Go profiling tools enabled.
// The HUD and PLAY modes use it for the -profile flag, which is useful when
// checking that timers fire promptly during long playbacks.
//
// Profiles are written to files in the current directory, named after the
// mode and the type of profile. For example:
//
//	hud_cpu.profile
//	hud_mem.profile
//	hud_trace.profile
//
// The files can be read with "go tool pprof" and "go tool trace".
package performance
