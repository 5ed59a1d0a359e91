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
	"path/filepath"

	"github.com/jetsetilly/frameperfect/curated"
	"github.com/jetsetilly/frameperfect/govern"
	"github.com/jetsetilly/frameperfect/logger"
	"github.com/jetsetilly/frameperfect/notifications"
	"github.com/jetsetilly/frameperfect/padkeys"
	"github.com/jetsetilly/frameperfect/paths"
	"github.com/jetsetilly/frameperfect/playback"
	"github.com/jetsetilly/frameperfect/recorder"
	"github.com/jetsetilly/frameperfect/userinput"
)

// NoRecording is the error returned when playback is requested without a
// file and no recording has been saved or played yet.
const NoRecording = "hud: no recording to play"

// Pad is the connection to the virtual controller. Implemented by
// padproto.Client.
type Pad interface {
	playback.Pad
	SetInject(on bool)
	Inject() bool

	// DisableInject releases held keys and turns off injection with no
	// command sent in between
	DisableInject() error
}

// Display shows key presses.
type Display interface {
	playback.Display

	// a live press from one of the capture providers
	Live(key padkeys.Key)

	// the end of a sequence of presses
	Flush()
}

// Store persists finished recordings.
type Store interface {
	Save(rec recorder.Recording) (string, error)
}

// DirStore saves recordings to a directory with a unique filename.
type DirStore struct {
	Dir string
}

// Save implements the Store interface.
func (s DirStore) Save(rec recorder.Recording) (string, error) {
	fn := paths.UniqueFilename("recording", "", recorder.FileExtension, rec.CreatedAt)
	pth := filepath.Join(s.Dir, fn)
	if err := recorder.SaveFile(pth, rec); err != nil {
		return "", err
	}
	return pth, nil
}

// Controller is the mode controller.
//
// Controller implements the userinput.HandleInput interface.
type Controller struct {
	pad     Pad
	display Display
	notify  notifications.Notify
	store   Store

	session   *recorder.Session
	scheduler playback.Scheduler

	// hold and chord window used when upgrading version 1 recordings for
	// playback
	HoldMs   int
	WindowMs int

	// called on every change of mode
	Observer func(from govern.Mode, to govern.Mode)

	mode   govern.Mode
	handle *playback.Handle

	// the most recently saved or played file
	lastPath string

	// handles of playbacks that have reached their natural end
	ended chan *playback.Handle
}

// NewController is the preferred method of initialisation for the Controller
// type. A nil notify argument discards all notifications.
func NewController(clock playback.Clock, pad Pad, display Display, notify notifications.Notify,
	store Store, providers recorder.Providers) *Controller {

	if notify == nil {
		notify = notifications.Discard{}
	}

	c := &Controller{
		pad:      pad,
		display:  display,
		notify:   notify,
		store:    store,
		session:  recorder.NewSession(clock.Now, providers),
		HoldMs:   recorder.DefaultHoldMs,
		WindowMs: recorder.DefaultWindowMs,
		ended:    make(chan *playback.Handle, 1),
	}

	c.scheduler = playback.Scheduler{
		Clock:   clock,
		Display: display,
		Pad:     pad,
	}

	return c
}

// Mode returns the current mode.
func (c *Controller) Mode() govern.Mode {
	return c.mode
}

// LastPath returns the filename of the most recently saved or played file.
func (c *Controller) LastPath() string {
	return c.lastPath
}

// SetFile sets the file played by Play() when it is called with an empty
// path.
func (c *Controller) SetFile(path string) {
	c.lastPath = path
}

// Ended returns the channel on which playback end notices are sent. The
// handle received should be passed to PlaybackEnded().
func (c *Controller) Ended() <-chan *playback.Handle {
	return c.ended
}

func (c *Controller) setMode(to govern.Mode) {
	from := c.mode
	if from == to {
		return
	}
	if !govern.ValidTransition(from, to) {
		logger.Logf(logger.Allow, "hud", "illegal mode change: %s -> %s", from, to)
		return
	}
	c.mode = to
	logger.Logf(logger.Allow, "hud", "mode: %s -> %s", from, to)
	if c.Observer != nil {
		c.Observer(from, to)
	}
}

func (c *Controller) notifyf(notice notifications.Notice, detail string) {
	if err := c.notify.Notify(notice, detail); err != nil {
		logger.Log(logger.Allow, "hud", err)
	}
}

// StartRecord starts a new recording. If playback is active it is stopped
// first. Does nothing if a recording is already in progress.
func (c *Controller) StartRecord() {
	switch c.mode {
	case govern.Recording:
		return
	case govern.Playback:
		c.StopPlayback()
	}

	c.session.Start()
	c.setMode(govern.Recording)
	c.notifyf(notifications.NotifyRecordingStarted, "")
}

// StopRecord finishes the recording in progress and saves it. Returns the
// filename of the saved recording. Does nothing if no recording is in
// progress.
//
// The mode is Idle on return even if the recording could not be saved.
func (c *Controller) StopRecord() (string, error) {
	if c.mode != govern.Recording {
		return "", nil
	}

	rec, err := c.session.Finish()
	c.setMode(govern.Idle)
	if err != nil {
		return "", err
	}

	pth, err := c.store.Save(rec)
	if err != nil {
		c.notifyf(notifications.NotifyRecordingSaveFailed, err.Error())
		return "", err
	}

	c.lastPath = pth
	c.notifyf(notifications.NotifyRecordingSaved, pth)

	return pth, nil
}

// ToggleRecord starts a recording if one is not in progress and stops it
// otherwise.
func (c *Controller) ToggleRecord() error {
	if c.mode == govern.Recording {
		_, err := c.StopRecord()
		return err
	}
	c.StartRecord()
	return nil
}

// Play the recording in the file. An empty path plays the most recently
// saved or played file. If a recording is in progress it is stopped and
// saved first. Does nothing if playback is already active.
//
// The file is loaded and validated before anything else happens. An invalid
// file leaves the mode unchanged.
func (c *Controller) Play(path string) error {
	if c.mode == govern.Playback {
		return nil
	}

	if path == "" {
		path = c.lastPath
	}
	if path == "" {
		return curated.Errorf(NoRecording)
	}

	rec, err := recorder.LoadFile(path)
	if err != nil {
		c.notifyf(notifications.NotifyInvalidFile, err.Error())
		return err
	}

	if rec.IsLegacy() {
		rec = recorder.Upgrade(rec, c.HoldMs, c.WindowMs)
		logger.Log(logger.Allow, "hud", "upgraded legacy recording for playback")
	}

	if c.mode == govern.Recording {
		if _, err := c.StopRecord(); err != nil {
			logger.Log(logger.Allow, "hud", err)
		}
	}

	c.handle = c.scheduler.Schedule(rec.Events, rec.DurationMs, c.endNotice)
	c.lastPath = path
	c.setMode(govern.Playback)
	c.notifyf(notifications.NotifyPlaybackStarted, path)

	return nil
}

// called by the scheduler when playback ends naturally. the handle is
// forwarded to the goroutine running Loop()
func (c *Controller) endNotice(h *playback.Handle) {
	select {
	case c.ended <- h:
	default:
		logger.Log(logger.Allow, "hud", "dropped playback end notice")
	}
}

// PlaybackEnded moves the controller to Idle if the handle is of the current
// playback. Notices for playbacks that have already been stopped are
// ignored.
func (c *Controller) PlaybackEnded(h *playback.Handle) {
	if c.mode != govern.Playback || h != c.handle {
		return
	}
	c.handle = nil
	c.display.Flush()
	c.setMode(govern.Idle)
	c.notifyf(notifications.NotifyPlaybackEnded, "")
}

// StopPlayback cancels the playback in progress. All keys on the virtual
// controller are released. Does nothing if playback is not active.
func (c *Controller) StopPlayback() {
	if c.mode != govern.Playback {
		return
	}
	c.handle.Cancel()
	c.handle = nil
	c.display.Flush()
	c.setMode(govern.Idle)
	c.notifyf(notifications.NotifyPlaybackCancelled, "")
}

// TogglePlayback stops the playback if it is active and plays the file
// otherwise.
func (c *Controller) TogglePlayback(path string) error {
	if c.mode == govern.Playback {
		c.StopPlayback()
		return nil
	}
	return c.Play(path)
}

// SetInject turns the sending of commands to the virtual controller on or
// off. The display is not affected. Keys held on the virtual controller are
// released when injection is turned off.
func (c *Controller) SetInject(on bool) {
	if on == c.pad.Inject() {
		return
	}

	if !on {
		if err := c.pad.DisableInject(); err != nil {
			logger.Log(logger.Allow, "hud", err)
		}
		c.notifyf(notifications.NotifyInjectOff, "")
		return
	}

	c.pad.SetInject(true)
	c.notifyf(notifications.NotifyInjectOn, "")
}

// HandleKey implements the userinput.HandleInput interface.
func (c *Controller) HandleKey(key padkeys.Key, down bool, prov userinput.Provenance) error {
	if down {
		c.display.Live(key)
	}
	if c.mode == govern.Recording {
		c.session.Add(key, down, prov)
	}
	return nil
}

// Close stops any playback or recording. A recording in progress is saved.
func (c *Controller) Close() error {
	c.StopPlayback()
	_, err := c.StopRecord()
	return err
}

// Command is an instruction from the console.
type Command int

// List of valid commands.
const (
	CmdToggleRecord Command = iota
	CmdStopRecord
	CmdTogglePlayback
	CmdStopPlayback
	CmdToggleInject
	CmdQuit
)

// Command performs the instruction. Returns true if the command was
// CmdQuit. Errors have already been turned into notifications and are
// returned for information only.
func (c *Controller) Command(cmd Command) (bool, error) {
	var err error
	switch cmd {
	case CmdToggleRecord:
		err = c.ToggleRecord()
	case CmdStopRecord:
		_, err = c.StopRecord()
	case CmdTogglePlayback:
		err = c.TogglePlayback("")
	case CmdStopPlayback:
		c.StopPlayback()
	case CmdToggleInject:
		c.SetInject(!c.pad.Inject())
	case CmdQuit:
		return true, nil
	}
	return false, err
}

// Loop is the main loop of an interactive session. It returns when the
// context is cancelled, a quit event arrives from a capture provider or the
// quit command arrives from the console. Either channel can be nil.
//
// The controller is closed before Loop() returns.
func (c *Controller) Loop(ctx context.Context, events <-chan userinput.Event, commands <-chan Command,
	input *userinput.Controllers) error {

	defer func() {
		if err := c.Close(); err != nil {
			logger.Log(logger.Allow, "hud", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				events = nil
				continue // for loop
			}
			quit, err := input.HandleUserInput(ev, c)
			if err != nil {
				logger.Log(logger.Allow, "hud", err)
			}
			if quit {
				return nil
			}

		case cmd, ok := <-commands:
			if !ok {
				commands = nil
				continue // for loop
			}
			quit, err := c.Command(cmd)
			if err != nil {
				logger.Log(logger.Allow, "hud", err)
			}
			if quit {
				return nil
			}

		case h := <-c.ended:
			c.PlaybackEnded(h)
		}
	}
}
