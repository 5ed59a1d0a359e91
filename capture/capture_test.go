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

package capture

import (
	"testing"

	"github.com/jetsetilly/frameperfect/test"
	"github.com/jetsetilly/frameperfect/userinput"
)

func TestNormaliseAxis(t *testing.T) {
	test.ExpectEquality(t, normaliseAxis(0), 0.0)
	test.ExpectEquality(t, normaliseAxis(32767), 1.0)
	test.ExpectEquality(t, normaliseAxis(-32768), -1.0)
	test.ExpectApproximate(t, normaliseAxis(16384), 0.5, 0.01)
}

func TestCompare(t *testing.T) {
	var prev, next reading

	test.ExpectEquality(t, len(compare(0, prev, next)), 0)

	next.buttons[userinput.GamepadButtonA] = true
	next.buttons[userinput.GamepadButtonUp] = true
	next.x = 0.5

	evs := compare(1, prev, next)
	test.DemandEquality(t, len(evs), 3)
	test.ExpectEquality(t, evs[0].(userinput.EventGamepadButton), userinput.EventGamepadButton{
		ID: 1, Index: userinput.GamepadButtonA, Down: true,
	})
	test.ExpectEquality(t, evs[1].(userinput.EventGamepadButton), userinput.EventGamepadButton{
		ID: 1, Index: userinput.GamepadButtonUp, Down: true,
	})
	test.ExpectEquality(t, evs[2].(userinput.EventGamepadAxis), userinput.EventGamepadAxis{
		ID: 1, X: 0.5, Y: 0,
	})

	// releasing a button with the stick unchanged
	prev = next
	next.buttons[userinput.GamepadButtonA] = false
	evs = compare(1, prev, next)
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, evs[0].(userinput.EventGamepadButton).Down, false)
}

func TestSendDropsWhenFull(t *testing.T) {
	ch := make(chan userinput.Event, 1)
	test.ExpectSuccess(t, send(ch, userinput.EventQuit{}, "test"))
	test.ExpectFailure(t, send(ch, userinput.EventQuit{}, "test"))
	test.ExpectEquality(t, len(ch), 1)
	test.ExpectEquality(t, cap(NewChannel()), ChannelSize)
}
