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

// Package padkeys defines the fixed alphabet of controller keys. Every layer
// of the system (recording files, the pad protocol, the notation feed and the
// virtual controller) names keys from this alphabet.
//
// Each key has a wire name, used in recording files and in the pad protocol,
// and a display label, used in the notation feed:
//
//	Up     W      ↑
//	Down   S      ↓
//	Left   A      ←
//	Right  D      →
//	B1     J      1
//	B2     K      2
//	B3     M      3
//	B4     COMMA  4
//	Start  B      Options
//	Select V      Select
package padkeys
