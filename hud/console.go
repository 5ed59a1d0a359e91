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
	"context"
	"fmt"
	"io"

	"github.com/jetsetilly/frameperfect/curated"
	"github.com/jetsetilly/frameperfect/logger"
	"github.com/pkg/term"
)

// ConsoleUnavailable is the pattern for errors returned when the terminal
// cannot be opened.
const ConsoleUnavailable = "hud: console unavailable: %v"

// DefaultConsole is the terminal device read by the console.
const DefaultConsole = "/dev/tty"

// the key for each console command
var consoleKeys = []struct {
	key  byte
	cmd  Command
	help string
}{
	{'r', CmdToggleRecord, "start/stop recording"},
	{'s', CmdStopRecord, "stop and save recording"},
	{'p', CmdTogglePlayback, "play/stop the last recording"},
	{'x', CmdStopPlayback, "stop playback"},
	{'i', CmdToggleInject, "controller injection on/off"},
	{'q', CmdQuit, "quit"},
}

// consoleCommand returns the command for the key. Upper case keys are
// accepted.
func consoleCommand(b byte) (Command, bool) {
	if b >= 'A' && b <= 'Z' {
		b += 'a' - 'A'
	}
	for _, k := range consoleKeys {
		if k.key == b {
			return k.cmd, true
		}
	}
	return 0, false
}

// ConsoleHelp writes the list of console keys.
func ConsoleHelp(w io.Writer) {
	for _, k := range consoleKeys {
		fmt.Fprintf(w, "  %c  %s\n", k.key, k.help)
	}
}

// Console reads single key commands from a terminal. The terminal is put into
// cbreak mode so that keys are received without waiting for the return key.
type Console struct {
	t *term.Term
}

// OpenConsole opens the terminal device. An empty device uses
// DefaultConsole.
func OpenConsole(device string) (*Console, error) {
	if device == "" {
		device = DefaultConsole
	}
	t, err := term.Open(device, term.CBreakMode)
	if err != nil {
		return nil, curated.Errorf(ConsoleUnavailable, err)
	}
	return &Console{t: t}, nil
}

// Close restores the terminal to the state it was in before OpenConsole().
func (con *Console) Close() error {
	if err := con.t.Restore(); err != nil {
		logger.Log(logger.Allow, "hud", err)
	}
	return con.t.Close()
}

// Run sends commands on the channel until the context is cancelled or the
// terminal can no longer be read. Unrecognised keys are ignored. The console
// is closed when Run() returns.
func (con *Console) Run(ctx context.Context, commands chan<- Command) error {
	// closing the terminal unblocks the Read() below
	stop := context.AfterFunc(ctx, func() {
		_ = con.Close()
	})
	defer func() {
		if stop() {
			_ = con.Close()
		}
	}()

	b := make([]byte, 1)
	for {
		n, err := con.t.Read(b)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return curated.Errorf(ConsoleUnavailable, err)
		}
		if n == 0 {
			continue // for loop
		}

		cmd, ok := consoleCommand(b[0])
		if !ok {
			continue // for loop
		}

		select {
		case commands <- cmd:
		case <-ctx.Done():
			return nil
		}

		if cmd == CmdQuit {
			return nil
		}
	}
}
