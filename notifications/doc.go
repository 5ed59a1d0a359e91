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

// Package notifications defines the status notices that are raised by the
// recorder, playback and pad protocol packages and presented to the user by
// the HUD.
//
// Notices never stop the program. They exist so that the user can see that
// something has happened (eg. the pad server has exited, a recording has been
// saved) without having to watch the log.
package notifications
