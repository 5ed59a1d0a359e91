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

package padproto

import (
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/jetsetilly/frameperfect/curated"
)

// Process is a running pad server. Writes go to the standard input of the
// server.
type Process interface {
	io.Writer

	// Close the standard input of the server. The server ends when it reaches
	// the end of its input
	Close() error

	// Wait for the process to end. Returns the exit code
	Wait() (int, error)

	// Kill the process
	Kill() error
}

// Launcher starts a new pad server process.
type Launcher interface {
	Launch() (Process, error)
}

// ExecLauncher launches the pad server as an executable.
type ExecLauncher struct {
	Path string
	Args []string
}

// SelfLauncher returns an ExecLauncher that runs the current executable with
// the supplied arguments.
func SelfLauncher(args ...string) (ExecLauncher, error) {
	exe, err := os.Executable()
	if err != nil {
		return ExecLauncher{}, curated.Errorf(ServerUnavailable, err)
	}
	return ExecLauncher{Path: exe, Args: args}, nil
}

// Launch implements the Launcher interface.
func (l ExecLauncher) Launch() (Process, error) {
	cmd := exec.Command(l.Path, l.Args...)

	// the server writes nothing of interest to stdout or stderr
	cmd.Stdout = nil
	cmd.Stderr = nil

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, curated.Errorf(ServerUnavailable, err)
	}

	if err := cmd.Start(); err != nil {
		return nil, curated.Errorf(ServerUnavailable, err)
	}

	return &execProcess{cmd: cmd, stdin: stdin}, nil
}

type execProcess struct {
	cmd   *exec.Cmd
	stdin io.WriteCloser
}

func (p *execProcess) Write(b []byte) (int, error) {
	return p.stdin.Write(b)
}

func (p *execProcess) Close() error {
	return p.stdin.Close()
}

func (p *execProcess) Wait() (int, error) {
	err := p.cmd.Wait()
	if err != nil {
		var exit *exec.ExitError
		if errors.As(err, &exit) {
			return exit.ExitCode(), nil
		}
		return -1, err
	}
	return 0, nil
}

func (p *execProcess) Kill() error {
	if p.cmd.Process == nil {
		return nil
	}
	return p.cmd.Process.Kill()
}
