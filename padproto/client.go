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
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/jetsetilly/frameperfect/curated"
	"github.com/jetsetilly/frameperfect/logger"
	"github.com/jetsetilly/frameperfect/notifications"
)

// ServerUnavailable is the pattern for errors returned when the pad server
// cannot be started or written to.
const ServerUnavailable = "padproto: server unavailable: %v"

// Client sends commands to a pad server process. The process is started when
// the first command is sent. If the process ends then it is started again
// when the next command is sent.
//
// Sending is silently skipped while injection is disabled.
type Client struct {
	launcher Launcher
	notify   notifications.Notify

	inject atomic.Bool

	crit sync.Mutex
	proc Process

	// closed when the process watcher for the current process has finished
	exited chan struct{}
}

// NewClient is the preferred method of initialisation for the Client type.
// Injection is enabled by default.
func NewClient(launcher Launcher, notify notifications.Notify) *Client {
	if notify == nil {
		notify = notifications.Discard{}
	}
	c := &Client{
		launcher: launcher,
		notify:   notify,
	}
	c.inject.Store(true)
	return c
}

// SetInject enables or disables the sending of commands. Use DisableInject()
// to turn injection off and release held keys in one step.
func (c *Client) SetInject(on bool) {
	c.crit.Lock()
	defer c.crit.Unlock()
	c.inject.Store(on)
}

// DisableInject sends the stop command to a running server and turns off
// injection. No other command can be sent between the two.
func (c *Client) DisableInject() error {
	c.crit.Lock()
	defer c.crit.Unlock()

	if !c.inject.Load() {
		return nil
	}
	c.inject.Store(false)

	// with no server running there are no held keys
	if c.proc == nil {
		return nil
	}

	return c.write(Stop())
}

// Inject returns true if commands are being sent.
func (c *Client) Inject() bool {
	return c.inject.Load()
}

// start the server process. should be called with the critical section held
func (c *Client) start() error {
	p, err := c.launcher.Launch()
	if err != nil {
		if !curated.Is(err, ServerUnavailable) {
			err = curated.Errorf(ServerUnavailable, err)
		}
		c.notifyf(notifications.NotifyPadServerUnavailable, "%v", err)
		return err
	}

	c.proc = p
	c.exited = make(chan struct{})
	go c.watch(p, c.exited)

	logger.Log(logger.Allow, "padproto", "pad server started")
	c.notifyf(notifications.NotifyPadServerStarted, "")

	return nil
}

// watch the process until it ends. the process is forgotten so that the next
// command starts a new one
func (c *Client) watch(p Process, exited chan struct{}) {
	defer close(exited)

	code, err := p.Wait()

	c.crit.Lock()
	if c.proc == p {
		c.proc = nil
	}
	c.crit.Unlock()

	if err != nil {
		logger.Logf(logger.Allow, "padproto", "pad server ended: %v", err)
		c.notifyf(notifications.NotifyPadServerExited, "%v", err)
		return
	}

	logger.Logf(logger.Allow, "padproto", "pad server exited (%d)", code)
	c.notifyf(notifications.NotifyPadServerExited, "exit code %d", code)
}

func (c *Client) notifyf(notice notifications.Notice, pattern string, args ...any) {
	if err := c.notify.Notify(notice, fmt.Sprintf(pattern, args...)); err != nil {
		logger.Log(logger.Allow, "padproto", err)
	}
}

// Send a command to the pad server. The server is started if necessary.
//
// Returns an error with the ServerUnavailable pattern if the server could not
// be started or the command could not be written. Errors are never fatal and
// the next call to Send() will try again.
func (c *Client) Send(cmd Command) error {
	c.crit.Lock()
	defer c.crit.Unlock()

	if !c.inject.Load() {
		return nil
	}

	if c.proc == nil {
		if err := c.start(); err != nil {
			return err
		}
	}

	return c.write(cmd)
}

// write command to the current process. should be called with the critical
// section held
func (c *Client) write(cmd Command) error {
	_, err := fmt.Fprintf(c.proc, "%s\n", cmd)
	if err != nil {
		// the watcher will notice the process ending. killing it makes sure
		// that it does end
		_ = c.proc.Kill()
		c.proc = nil
		return curated.Errorf(ServerUnavailable, err)
	}

	return nil
}

// Close the connection to the pad server and wait for it to end. A Client can
// be used again after Close().
func (c *Client) Close() error {
	c.crit.Lock()
	p := c.proc
	exited := c.exited
	c.proc = nil
	c.crit.Unlock()

	if p == nil {
		return nil
	}

	err := p.Close()
	<-exited

	if err != nil {
		return curated.Errorf(ServerUnavailable, err)
	}
	return nil
}
