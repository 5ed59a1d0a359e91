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

package userinput

import "github.com/jetsetilly/frameperfect/padkeys"

// HandleInput conceptualises the destination of key transitions.
type HandleInput interface {
	// HandleKey is called for every key transition that survives the
	// mapping. The provenance says where the transition came from
	HandleKey(key padkeys.Key, down bool, prov Provenance) error
}
