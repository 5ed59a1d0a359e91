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

//go:build linux

package virtualpad

import (
	"github.com/bendahl/uinput"
	"github.com/jetsetilly/frameperfect/curated"
	"github.com/jetsetilly/frameperfect/logger"
	"github.com/jetsetilly/frameperfect/padkeys"
	"github.com/jetsetilly/frameperfect/padproto"
)

// USB identifiers of the virtual controller. these are the identifiers of an
// Xbox 360 controller, which most games recognise without configuration
const (
	vendorID  = 0x045e
	productID = 0x028e
)

// buttons maps each key to a uinput gamepad button
var buttons = [padkeys.NumKeys]int{
	padkeys.Up:     uinput.ButtonDpadUp,
	padkeys.Down:   uinput.ButtonDpadDown,
	padkeys.Left:   uinput.ButtonDpadLeft,
	padkeys.Right:  uinput.ButtonDpadRight,
	padkeys.B1:     uinput.ButtonWest,
	padkeys.B2:     uinput.ButtonNorth,
	padkeys.B3:     uinput.ButtonSouth,
	padkeys.B4:     uinput.ButtonEast,
	padkeys.Start:  uinput.ButtonStart,
	padkeys.Select: uinput.ButtonSelect,
}

// Button returns the uinput button code for the key. Returns false if the key
// is not valid.
func Button(key padkeys.Key) (int, bool) {
	if !key.Valid() {
		return 0, false
	}
	return buttons[key], true
}

// the subset of uinput.Gamepad used by the driver
type gamepad interface {
	ButtonDown(key int) error
	ButtonUp(key int) error
	Close() error
}

// Uinput is a padproto.Driver for a virtual gamepad created by the uinput
// subsystem.
type Uinput struct {
	pad  gamepad
	last padproto.PadState
}

// NewUinput creates a virtual gamepad with the uinput device at the path. An
// empty path uses DefaultDevice.
func NewUinput(device string) (*Uinput, error) {
	if device == "" {
		device = DefaultDevice
	}

	pad, err := uinput.CreateGamepad(device, []byte(DeviceName), vendorID, productID)
	if err != nil {
		return nil, curated.Errorf(DriverUnavailable, err)
	}

	logger.Logf(logger.Allow, "virtualpad", "created virtual gamepad on %s", device)

	return &Uinput{pad: pad}, nil
}

// Submit implements the padproto.Driver interface.
func (drv *Uinput) Submit(state padproto.PadState) error {
	for k := padkeys.Key(0); k < padkeys.NumKeys; k++ {
		p := state.Pressed(k)
		if p == drv.last.Pressed(k) {
			continue // for loop
		}

		var err error
		if p {
			err = drv.pad.ButtonDown(buttons[k])
		} else {
			err = drv.pad.ButtonUp(buttons[k])
		}
		if err != nil {
			return curated.Errorf("virtualpad: %v", err)
		}

		drv.last.Set(k, p)
	}

	return nil
}

// Close implements the io.Closer interface. All buttons are released before
// the device is removed.
func (drv *Uinput) Close() error {
	var neutral padproto.PadState
	if err := drv.Submit(neutral); err != nil {
		logger.Log(logger.Allow, "virtualpad", err)
	}
	return drv.pad.Close()
}
