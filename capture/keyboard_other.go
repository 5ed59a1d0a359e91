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

//go:build !linux

package capture

import (
	"context"

	"github.com/jetsetilly/frameperfect/curated"
	"github.com/jetsetilly/frameperfect/userinput"
)

// KeyboardProvider is the name of the keyboard provider.
const KeyboardProvider = "none"

// Keyboard is not available on this platform.
type Keyboard struct{}

// OpenKeyboard always returns an error on platforms without evdev.
func OpenKeyboard(_ string) (*Keyboard, error) {
	return nil, curated.Errorf(ProviderUnavailable, "keyboard capture is only available on linux")
}

// Run returns immediately.
func (kb *Keyboard) Run(_ context.Context, _ chan<- userinput.Event) error {
	return nil
}
