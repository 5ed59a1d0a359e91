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

package capture

import (
	"context"
	"strings"

	evdev "github.com/gvalkov/golang-evdev"
	"github.com/jetsetilly/frameperfect/curated"
	"github.com/jetsetilly/frameperfect/logger"
	"github.com/jetsetilly/frameperfect/userinput"
)

// KeyboardProvider is the name of the keyboard provider. It is used in the
// provider field of saved recordings.
const KeyboardProvider = "evdev"

// the value field of an EV_KEY event
const (
	keyReleased = 0
	keyPressed  = 1
	keyRepeated = 2
)

// Keyboard reads key events from an input device.
type Keyboard struct {
	dev *evdev.InputDevice
}

// the first device with "keyboard" in its name. a USB device is preferred
func findKeyboard() (*evdev.InputDevice, error) {
	devices, err := evdev.ListInputDevices()
	if err != nil {
		return nil, err
	}

	var keyboard *evdev.InputDevice
	for _, dev := range devices {
		if strings.Contains(strings.ToLower(dev.Name), "keyboard") {
			if strings.Contains(strings.ToLower(dev.Phys), "usb") {
				return dev, nil
			}
			if keyboard == nil {
				keyboard = dev
			}
		}
	}

	if keyboard == nil {
		return nil, curated.Errorf("no keyboard device found")
	}

	return keyboard, nil
}

// OpenKeyboard opens the input device at the path. If the path is empty then
// the first keyboard device found is used.
func OpenKeyboard(path string) (*Keyboard, error) {
	var dev *evdev.InputDevice
	var err error

	if path == "" {
		dev, err = findKeyboard()
	} else {
		dev, err = evdev.Open(path)
	}
	if err != nil {
		return nil, curated.Errorf(ProviderUnavailable, err)
	}

	logger.Logf(logger.Allow, "capture", "keyboard: %s (%s)", dev.Name, dev.Fn)

	return &Keyboard{dev: dev}, nil
}

// keyName returns the name of the key with the KEY_ prefix removed. The
// comma key is named with the comma character.
func keyName(code uint16) string {
	n, ok := evdev.KEY[int(code)]
	if !ok {
		return ""
	}
	n = strings.TrimPrefix(n, "KEY_")
	if n == "COMMA" {
		return ","
	}
	return n
}

// translate an input event. returns false if the event should not be sent
func translate(ev evdev.InputEvent) (userinput.EventKeyboard, bool) {
	if ev.Type != evdev.EV_KEY {
		return userinput.EventKeyboard{}, false
	}

	var down bool
	switch ev.Value {
	case keyPressed:
		down = true
	case keyReleased:
		down = false
	case keyRepeated:
		return userinput.EventKeyboard{}, false
	default:
		return userinput.EventKeyboard{}, false
	}

	n := keyName(ev.Code)
	if n == "" {
		return userinput.EventKeyboard{}, false
	}

	return userinput.EventKeyboard{Key: n, Down: down}, true
}

// Run sends keyboard events on the channel until the context is cancelled or
// the device can no longer be read. The device is closed when Run() returns.
func (kb *Keyboard) Run(ctx context.Context, ch chan<- userinput.Event) error {
	// closing the file unblocks the Read() below
	stop := context.AfterFunc(ctx, func() {
		_ = kb.dev.File.Close()
	})
	defer func() {
		if stop() {
			_ = kb.dev.File.Close()
		}
	}()

	for {
		events, err := kb.dev.Read()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return curated.Errorf(ProviderUnavailable, err)
		}

		for _, ev := range events {
			if k, ok := translate(ev); ok {
				send(ch, k, "keyboard")
			}
		}
	}
}
