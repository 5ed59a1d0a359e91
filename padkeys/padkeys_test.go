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

package padkeys_test

import (
	"testing"

	"github.com/jetsetilly/frameperfect/padkeys"
	"github.com/jetsetilly/frameperfect/test"
)

func TestParse(t *testing.T) {
	for _, k := range padkeys.All() {
		p, ok := padkeys.Parse(k.String())
		test.ExpectSuccess(t, ok, k)
		test.ExpectEquality(t, p, k)
	}

	k, ok := padkeys.Parse(" comma ")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, padkeys.B4)

	_, ok = padkeys.Parse("Q")
	test.ExpectFailure(t, ok)
	_, ok = padkeys.Parse(",")
	test.ExpectFailure(t, ok)
	_, ok = padkeys.Parse("")
	test.ExpectFailure(t, ok)
}

func TestLabels(t *testing.T) {
	test.ExpectEquality(t, padkeys.Up.Label(), "↑")
	test.ExpectEquality(t, padkeys.B3.Label(), "3")
	test.ExpectEquality(t, padkeys.Start.Label(), "Options")
	test.ExpectEquality(t, padkeys.Select.Label(), "Select")
	test.ExpectEquality(t, padkeys.NumKeys.Label(), "")
	test.ExpectEquality(t, padkeys.NumKeys.String(), "")
}

func TestAlphabet(t *testing.T) {
	test.ExpectEquality(t, len(padkeys.All()), 10)
	test.ExpectSuccess(t, padkeys.Right.IsDirection())
	test.ExpectFailure(t, padkeys.B1.IsDirection())
	test.ExpectFailure(t, padkeys.Key(-1).Valid())
}
