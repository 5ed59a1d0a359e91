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

package virtualpad

import (
	"github.com/jetsetilly/frameperfect/curated"
	"github.com/jetsetilly/frameperfect/padkeys"
	"github.com/jetsetilly/frameperfect/padproto"
)

// Button returns the uinput button code for the key. Always returns false on
// platforms without uinput.
func Button(_ padkeys.Key) (int, bool) {
	return 0, false
}

// Uinput is not available on this platform.
type Uinput struct{}

// NewUinput always returns an error on platforms without uinput.
func NewUinput(_ string) (*Uinput, error) {
	return nil, curated.Errorf(DriverUnavailable, "uinput is only available on linux")
}

// Submit implements the padproto.Driver interface.
func (drv *Uinput) Submit(_ padproto.PadState) error {
	return nil
}

// Close implements the io.Closer interface.
func (drv *Uinput) Close() error {
	return nil
}
