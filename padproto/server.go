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
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/jetsetilly/frameperfect/logger"
	"github.com/jetsetilly/frameperfect/padkeys"
)

// Driver is the virtual controller. Submit is called with the complete state
// of the controller whenever at least one key changes.
type Driver interface {
	Submit(state PadState) error
}

// Server applies protocol commands to the state of a virtual controller. The
// PadState is owned by the Server and is never shared.
type Server struct {
	driver Driver
	state  PadState

	// the number of reports submitted to the driver
	reports int

	// wait for the hold duration of tap and chord commands. replaced in tests
	sleep func(ctx context.Context, d time.Duration) error
}

// NewServer is the preferred method of initialisation for the Server type.
func NewServer(driver Driver) *Server {
	return &Server{
		driver: driver,
		sleep:  sleep,
	}
}

// sleep for the duration or until the context is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// State returns a copy of the current state.
func (srv *Server) State() PadState {
	return srv.state
}

// Reports returns the number of reports that have been submitted.
func (srv *Server) Reports() int {
	return srv.reports
}

// set every key in the list. submits a single report if anything changed
func (srv *Server) set(keys []padkeys.Key, pressed bool) error {
	var changed bool
	for _, k := range keys {
		changed = srv.state.Set(k, pressed) || changed
	}
	if !changed {
		return nil
	}
	srv.reports++
	return srv.driver.Submit(srv.state)
}

// Apply a single command. Tap and chord commands return after the hold
// duration. If the context is cancelled during the hold then the keys are
// released immediately.
func (srv *Server) Apply(ctx context.Context, cmd Command) error {
	switch cmd.Op {
	case OpDown:
		return srv.set(cmd.Keys, true)

	case OpUp:
		return srv.set(cmd.Keys, false)

	case OpTap, OpChord:
		if err := srv.set(cmd.Keys, true); err != nil {
			return err
		}
		holdErr := srv.sleep(ctx, time.Duration(cmd.HoldMs)*time.Millisecond)
		if err := srv.set(cmd.Keys, false); err != nil {
			return err
		}
		return holdErr

	case OpStop:
		return srv.set(padkeys.All(), false)
	}

	return nil
}

// Serve reads commands from r until the end of input or until the context is
// cancelled. Commands are applied strictly in the order they are read.
// Malformed lines and driver errors are logged and do not end the session.
//
// All keys are released before Serve returns.
func (srv *Server) Serve(ctx context.Context, r io.Reader) error {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		rd := bufio.NewReader(r)
		for {
			line, err := rd.ReadString('\n')
			if len(line) > 0 {
				select {
				case lines <- line:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					readErr <- err
				}
				return
			}
		}
	}()

	defer func() {
		// a background context so that the release happens even if the
		// session context has been cancelled
		if err := srv.Apply(context.Background(), Stop()); err != nil {
			logger.Log(logger.Allow, "padproto", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					return err
				default:
					return nil
				}
			}

			if strings.TrimSpace(line) == "" {
				continue // for loop
			}

			cmd, err := Parse(line)
			if err != nil {
				logger.Log(logger.Allow, "padproto", err)
				continue // for loop
			}

			err = srv.Apply(ctx, cmd)
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.Log(logger.Allow, "padproto", err)
			}
		}
	}
}
