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

package notifications

// Notice describes events that should be presented to the user.
type Notice string

// List of defined notifications.
const (
	// recording has started and stopped. the stop notice is accompanied by
	// the filename of the saved recording
	NotifyRecordingStarted Notice = "NotifyRecordingStarted"
	NotifyRecordingSaved   Notice = "NotifyRecordingSaved"

	// recording could not be saved
	NotifyRecordingSaveFailed Notice = "NotifyRecordingSaveFailed"

	// playback has started, ended naturally or been cancelled
	NotifyPlaybackStarted   Notice = "NotifyPlaybackStarted"
	NotifyPlaybackEnded     Notice = "NotifyPlaybackEnded"
	NotifyPlaybackCancelled Notice = "NotifyPlaybackCancelled"

	// the recording file could not be used
	NotifyInvalidFile Notice = "NotifyInvalidFile"

	// notifications sent by the pad protocol client
	NotifyPadServerStarted     Notice = "NotifyPadServerStarted"
	NotifyPadServerExited      Notice = "NotifyPadServerExited"
	NotifyPadServerUnavailable Notice = "NotifyPadServerUnavailable"

	// a capture provider could not be started
	NotifyProviderUnavailable Notice = "NotifyProviderUnavailable"

	// controller injection has been turned on or off
	NotifyInjectOn  Notice = "NotifyInjectOn"
	NotifyInjectOff Notice = "NotifyInjectOff"
)

// Notify is implemented by types that present notices to the user. The detail
// string is additional information and may be empty.
type Notify interface {
	Notify(notice Notice, detail string) error
}

// Discard is an implementation of Notify that ignores every notice.
type Discard struct{}

// Notify implements the Notify interface.
func (Discard) Notify(_ Notice, _ string) error {
	return nil
}
