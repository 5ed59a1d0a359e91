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

// Controllers keeps track of the state required to translate gamepad input.
type Controllers struct {
	// magnitude of stick movement that counts as a press
	Deadzone float32

	// whether the left stick should be used as a d-pad while no d-pad
	// button is held
	AxisFallback bool

	// number of d-pad buttons currently held on each pad
	dpadHeld map[PadID]int

	// stick state for each pad
	fallback map[PadID]*AxisFallback

	// whether or not the last HandleUserInput() was for an event that was
	// forwarded as a key transition
	LastKeyHandled bool
}

// NewControllers is the preferred method of initialisation for the
// Controllers type.
func NewControllers() *Controllers {
	return &Controllers{
		Deadzone:     DefaultDeadzone,
		AxisFallback: true,
		dpadHeld:     make(map[PadID]int),
		fallback:     make(map[PadID]*AxisFallback),
	}
}

func (c *Controllers) keyboard(ev EventKeyboard, handle HandleInput) error {
	if ev.Repeat {
		return nil
	}

	k, ok := MapKeyboard(ev.Key)
	if !ok {
		return nil
	}

	c.LastKeyHandled = true
	return handle.HandleKey(k, ev.Down, Keyboard)
}

func (c *Controllers) gamepadButton(ev EventGamepadButton, handle HandleInput) error {
	k, ok := MapButton(ev.Index)
	if !ok {
		return nil
	}

	if k.IsDirection() {
		if ev.Down {
			c.dpadHeld[ev.ID]++
		} else if c.dpadHeld[ev.ID] > 0 {
			c.dpadHeld[ev.ID]--
		}
	}

	c.LastKeyHandled = true
	return handle.HandleKey(k, ev.Down, GamepadButton)
}

func (c *Controllers) gamepadAxis(ev EventGamepadAxis, handle HandleInput) error {
	if !c.AxisFallback {
		return nil
	}

	// the stick is ignored while the d-pad is in use
	if c.dpadHeld[ev.ID] > 0 {
		return nil
	}

	af, ok := c.fallback[ev.ID]
	if !ok {
		af = &AxisFallback{}
		c.fallback[ev.ID] = af
	}

	for _, t := range af.Update(ev.X, ev.Y, c.Deadzone) {
		c.LastKeyHandled = true
		if err := handle.HandleKey(t.Key, t.Down, GamepadAxis); err != nil {
			return err
		}
	}

	return nil
}

// HandleUserInput deciphers the Event and forwards any key transition to
// the HandleInput implementation. Returns true if the event is a Quit event
// and false otherwise.
func (c *Controllers) HandleUserInput(ev Event, handle HandleInput) (bool, error) {
	c.LastKeyHandled = false

	var err error
	switch ev := ev.(type) {
	case EventQuit:
		return true, nil
	case EventKeyboard:
		err = c.keyboard(ev, handle)
	case EventGamepadButton:
		err = c.gamepadButton(ev, handle)
	case EventGamepadAxis:
		err = c.gamepadAxis(ev, handle)
	default:
	}

	return false, err
}
