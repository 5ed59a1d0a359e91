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
	"context"
	"runtime"
	"time"

	"github.com/jetsetilly/frameperfect/curated"
	"github.com/jetsetilly/frameperfect/logger"
	"github.com/jetsetilly/frameperfect/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// GamepadProvider is the name of the gamepad provider. It is used in the
// provider field of saved recordings.
const GamepadProvider = "sdl"

// DefaultPollHz is the default number of times per second the gamepads are
// polled.
const DefaultPollHz = 120

// the SDL buttons and the index they have in the standard gamepad layout
var sdlButtons = map[sdl.GameControllerButton]int{
	sdl.CONTROLLER_BUTTON_A:          userinput.GamepadButtonA,
	sdl.CONTROLLER_BUTTON_B:          userinput.GamepadButtonB,
	sdl.CONTROLLER_BUTTON_X:          userinput.GamepadButtonX,
	sdl.CONTROLLER_BUTTON_Y:          userinput.GamepadButtonY,
	sdl.CONTROLLER_BUTTON_BACK:       userinput.GamepadButtonBack,
	sdl.CONTROLLER_BUTTON_START:      userinput.GamepadButtonStart,
	sdl.CONTROLLER_BUTTON_DPAD_UP:    userinput.GamepadButtonUp,
	sdl.CONTROLLER_BUTTON_DPAD_DOWN:  userinput.GamepadButtonDown,
	sdl.CONTROLLER_BUTTON_DPAD_LEFT:  userinput.GamepadButtonLeft,
	sdl.CONTROLLER_BUTTON_DPAD_RIGHT: userinput.GamepadButtonRight,
}

type gamepad struct {
	ctrl *sdl.GameController
	last reading
}

// Gamepads polls the attached game controllers.
type Gamepads struct {
	pollHz int
	pads   map[sdl.JoystickID]*gamepad
}

// NewGamepads is the preferred method of initialisation for the Gamepads
// type. A pollHz value of zero or less uses DefaultPollHz.
func NewGamepads(pollHz int) *Gamepads {
	if pollHz <= 0 {
		pollHz = DefaultPollHz
	}

	return &Gamepads{
		pollHz: pollHz,
		pads:   make(map[sdl.JoystickID]*gamepad),
	}
}

// open any controller that has been attached since the last call. closes any
// controller that has been detached
func (gp *Gamepads) attach() {
	for id, pad := range gp.pads {
		if !pad.ctrl.Attached() {
			logger.Logf(logger.Allow, "capture", "gamepad detached: %d", id)
			pad.ctrl.Close()
			delete(gp.pads, id)
		}
	}

	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			continue // for loop
		}
		if _, ok := gp.pads[sdl.JoystickGetDeviceInstanceID(i)]; ok {
			continue // for loop
		}

		ctrl := sdl.GameControllerOpen(i)
		if ctrl == nil || !ctrl.Attached() {
			continue // for loop
		}

		id := ctrl.Joystick().InstanceID()
		gp.pads[id] = &gamepad{ctrl: ctrl}
		logger.Logf(logger.Allow, "capture", "gamepad: %s", ctrl.Name())
	}
}

// read the current state of a controller
func (pad *gamepad) read() reading {
	var r reading
	for b, i := range sdlButtons {
		r.buttons[i] = pad.ctrl.Button(b) != 0
	}
	r.x = normaliseAxis(pad.ctrl.Axis(sdl.CONTROLLER_AXIS_LEFTX))
	r.y = normaliseAxis(pad.ctrl.Axis(sdl.CONTROLLER_AXIS_LEFTY))
	return r
}

// poll every attached controller and send the changes on the channel
func (gp *Gamepads) poll(ch chan<- userinput.Event) {
	sdl.GameControllerUpdate()
	gp.attach()

	for id, pad := range gp.pads {
		r := pad.read()
		for _, ev := range compare(userinput.PadID(id), pad.last, r) {
			switch ev.(type) {
			case userinput.EventGamepadButton:
				send(ch, ev, "gamepad button")
			case userinput.EventGamepadAxis:
				send(ch, ev, "gamepad axis")
			}
		}
		pad.last = r
	}
}

// Run initialises the SDL game controller subsystem and polls the gamepads
// until the context is cancelled. All controllers are closed and the SDL
// subsystem is shut down when Run() returns.
func (gp *Gamepads) Run(ctx context.Context, ch chan<- userinput.Event) error {
	// SDL calls should all be made from the same thread
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := sdl.InitSubSystem(sdl.INIT_GAMECONTROLLER); err != nil {
		return curated.Errorf(ProviderUnavailable, err)
	}

	defer func() {
		for id, pad := range gp.pads {
			pad.ctrl.Close()
			delete(gp.pads, id)
		}
		sdl.QuitSubSystem(sdl.INIT_GAMECONTROLLER)
	}()

	ticker := time.NewTicker(time.Second / time.Duration(gp.pollHz))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			gp.poll(ch)
		}
	}
}
