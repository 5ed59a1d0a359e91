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

package hud

import (
	"strings"
	"testing"

	"github.com/jetsetilly/frameperfect/test"
)

func TestConsoleCommand(t *testing.T) {
	cmd, ok := consoleCommand('r')
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, cmd, CmdToggleRecord)

	cmd, ok = consoleCommand('P')
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, cmd, CmdTogglePlayback)

	cmd, ok = consoleCommand('q')
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, cmd, CmdQuit)

	_, ok = consoleCommand('z')
	test.ExpectFailure(t, ok)

	_, ok = consoleCommand('\n')
	test.ExpectFailure(t, ok)
}

func TestConsoleHelp(t *testing.T) {
	w := &test.Writer{}
	ConsoleHelp(w)
	test.ExpectEquality(t, strings.Count(w.String(), "\n"), len(consoleKeys))
	test.ExpectSuccess(t, strings.Contains(w.String(), "  i  controller injection on/off\n"))
}
