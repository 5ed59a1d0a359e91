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

package virtualpad

import (
	"fmt"

	"github.com/jetsetilly/frameperfect/logger"
	"github.com/jetsetilly/frameperfect/padproto"
	"github.com/jetsetilly/frameperfect/version"
)

// DriverUnavailable is the pattern for errors returned when the virtual
// controller cannot be created.
const DriverUnavailable = "virtualpad: driver unavailable: %v"

// DefaultDevice is the path of the uinput device.
const DefaultDevice = "/dev/uinput"

// DeviceName is the name given to the virtual controller.
var DeviceName = fmt.Sprintf("%s Virtual Pad", version.ApplicationName)

// Log is a padproto.Driver that writes reports to the central logger.
type Log struct {
	// the number of reports submitted
	Reports int
}

// Submit implements the padproto.Driver interface.
func (drv *Log) Submit(state padproto.PadState) error {
	drv.Reports++
	logger.Logf(logger.Allow, "virtualpad", "report %d: %s", drv.Reports, state.String())
	return nil
}

// Close implements the io.Closer interface.
func (drv *Log) Close() error {
	return nil
}
