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

package hud_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jetsetilly/frameperfect/curated"
	"github.com/jetsetilly/frameperfect/govern"
	"github.com/jetsetilly/frameperfect/hud"
	"github.com/jetsetilly/frameperfect/notifications"
	"github.com/jetsetilly/frameperfect/padkeys"
	"github.com/jetsetilly/frameperfect/padproto"
	"github.com/jetsetilly/frameperfect/playback"
	"github.com/jetsetilly/frameperfect/recorder"
	"github.com/jetsetilly/frameperfect/test"
	"github.com/jetsetilly/frameperfect/userinput"
)

type fakePad struct {
	crit   sync.Mutex
	w      test.Writer
	inject bool
}

func (p *fakePad) Send(cmd padproto.Command) error {
	p.crit.Lock()
	defer p.crit.Unlock()
	if p.inject {
		fmt.Fprintf(&p.w, "(%s)", cmd)
	}
	return nil
}

func (p *fakePad) SetInject(on bool) {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.inject = on
}

func (p *fakePad) Inject() bool {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.inject
}

func (p *fakePad) DisableInject() error {
	p.crit.Lock()
	defer p.crit.Unlock()
	if p.inject {
		fmt.Fprintf(&p.w, "(%s)", padproto.Stop())
		p.inject = false
	}
	return nil
}

type notices struct {
	w test.Writer
}

func (n *notices) Notify(notice notifications.Notice, _ string) error {
	fmt.Fprintf(&n.w, "%s;", notice)
	return nil
}

type fixture struct {
	clk     *playback.ManualClock
	pad     *fakePad
	display test.Writer
	notices *notices
	modes   []string
	ctrl    *hud.Controller
	dir     string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		clk:     playback.NewManualClock(time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)),
		pad:     &fakePad{inject: true},
		notices: &notices{},
		dir:     t.TempDir(),
	}

	f.ctrl = hud.NewController(f.clk, f.pad, hud.NewFeed(&f.display, 0), f.notices,
		hud.DirStore{Dir: f.dir},
		recorder.Providers{Keyboard: "evdev", Gamepad: "sdl"})

	f.ctrl.Observer = func(from govern.Mode, to govern.Mode) {
		f.modes = append(f.modes, fmt.Sprintf("%s>%s", from, to))
	}

	return f
}

// write a file to the fixture's directory and return the path
func (f *fixture) file(t *testing.T, name string, data string) string {
	t.Helper()
	pth := filepath.Join(f.dir, name)
	test.DemandSuccess(t, os.WriteFile(pth, []byte(data), 0o600))
	return pth
}

// drain the playback end notice if there is one
func (f *fixture) ended() bool {
	select {
	case h := <-f.ctrl.Ended():
		f.ctrl.PlaybackEnded(h)
		return true
	default:
		return false
	}
}

func TestRecordAndPlay(t *testing.T) {
	f := newFixture(t)

	f.ctrl.StartRecord()
	test.ExpectEquality(t, f.ctrl.Mode(), govern.Recording)

	f.clk.Advance(10 * time.Millisecond)
	test.ExpectSuccess(t, f.ctrl.HandleKey(padkeys.Up, true, userinput.Keyboard))
	f.clk.Advance(50 * time.Millisecond)
	test.ExpectSuccess(t, f.ctrl.HandleKey(padkeys.Up, false, userinput.Keyboard))
	f.clk.Advance(40 * time.Millisecond)

	pth, err := f.ctrl.StopRecord()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, f.ctrl.Mode(), govern.Idle)
	test.ExpectEquality(t, f.ctrl.LastPath(), pth)
	test.ExpectEquality(t, filepath.Base(pth), "recording_20240301_093000.fpkeys")

	rec, err := recorder.LoadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, rec.DurationMs, 100)
	test.ExpectEquality(t, rec.Provider, "evdev")
	test.DemandEquality(t, len(rec.Events), 2)
	test.ExpectEquality(t, rec.Events[0], recorder.Event{OffsetMs: 10, Type: recorder.Down, Key: padkeys.Up})
	test.ExpectEquality(t, rec.Events[1], recorder.Event{OffsetMs: 60, Type: recorder.Up, Key: padkeys.Up})

	// the live press was shown during recording
	test.ExpectEquality(t, f.display.String(), "↑\n")
	f.display.Clear()

	// an empty path plays the last recording
	test.DemandSuccess(t, f.ctrl.Play(""))
	test.ExpectEquality(t, f.ctrl.Mode(), govern.Playback)

	f.clk.Advance(60 * time.Millisecond)
	test.ExpectEquality(t, f.pad.w.String(), "(down W)(up W)")
	test.ExpectFailure(t, f.ended())

	// the end of playback is 30ms after the duration
	f.clk.Advance(70 * time.Millisecond)
	test.ExpectEquality(t, f.pad.w.String(), "(down W)(up W)(stop)")
	test.ExpectSuccess(t, f.ended())
	test.ExpectEquality(t, f.ctrl.Mode(), govern.Idle)
	test.ExpectEquality(t, f.display.String(), "    10ms  ↑\n")

	test.ExpectEquality(t, strings.Join(f.modes, " "),
		"Idle>Recording Recording>Idle Idle>Playback Playback>Idle")
	test.ExpectEquality(t, f.notices.w.String(), "NotifyRecordingStarted;NotifyRecordingSaved;"+
		"NotifyPlaybackStarted;NotifyPlaybackEnded;")
}

const simpleRecording = `{
  "type": "frameperfect.keys",
  "version": 2,
  "durationMs": 500,
  "events": [
    {"t": 0, "type": "down", "key": "D"},
    {"t": 0, "type": "down", "key": "J"},
    {"t": 100, "type": "up", "key": "J"},
    {"t": 400, "type": "up", "key": "D"}
  ]
}`

func TestPlaybackToRecording(t *testing.T) {
	f := newFixture(t)
	pth := f.file(t, "simple.fpkeys", simpleRecording)

	test.DemandSuccess(t, f.ctrl.Play(pth))
	f.clk.Advance(50 * time.Millisecond)
	test.ExpectEquality(t, f.pad.w.String(), "(down D)(down J)")

	// recording while playing stops the playback and releases everything
	f.ctrl.StartRecord()
	test.ExpectEquality(t, f.ctrl.Mode(), govern.Recording)
	test.ExpectEquality(t, f.pad.w.String(), "(down D)(down J)(stop)")
	test.ExpectEquality(t, strings.Join(f.modes, " "),
		"Idle>Playback Playback>Idle Idle>Recording")

	// nothing else from the cancelled playback
	f.clk.Advance(time.Second)
	test.ExpectEquality(t, f.pad.w.String(), "(down D)(down J)(stop)")
	test.ExpectFailure(t, f.ended())
	test.ExpectEquality(t, f.ctrl.Mode(), govern.Recording)
}

func TestRecordingToPlayback(t *testing.T) {
	f := newFixture(t)
	pth := f.file(t, "simple.fpkeys", simpleRecording)

	f.ctrl.StartRecord()
	test.DemandSuccess(t, f.ctrl.Play(pth))
	test.ExpectEquality(t, f.ctrl.Mode(), govern.Playback)
	test.ExpectEquality(t, strings.Join(f.modes, " "),
		"Idle>Recording Recording>Idle Idle>Playback")

	// the interrupted recording was saved
	test.ExpectEquality(t, f.notices.w.String(), "NotifyRecordingStarted;NotifyRecordingSaved;"+
		"NotifyPlaybackStarted;")
}

func TestSameMode(t *testing.T) {
	f := newFixture(t)
	pth := f.file(t, "simple.fpkeys", simpleRecording)

	f.ctrl.StartRecord()
	f.ctrl.StartRecord()
	test.ExpectEquality(t, len(f.modes), 1)

	_, err := f.ctrl.StopRecord()
	test.ExpectSuccess(t, err)
	_, err = f.ctrl.StopRecord()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(f.modes), 2)

	test.DemandSuccess(t, f.ctrl.Play(pth))
	test.DemandSuccess(t, f.ctrl.Play(pth))
	test.ExpectEquality(t, len(f.modes), 3)

	f.ctrl.StopPlayback()
	f.ctrl.StopPlayback()
	test.ExpectEquality(t, len(f.modes), 4)
	test.ExpectEquality(t, f.ctrl.Mode(), govern.Idle)
}

func TestToggles(t *testing.T) {
	f := newFixture(t)
	pth := f.file(t, "simple.fpkeys", simpleRecording)

	test.ExpectSuccess(t, f.ctrl.ToggleRecord())
	test.ExpectEquality(t, f.ctrl.Mode(), govern.Recording)
	test.ExpectSuccess(t, f.ctrl.ToggleRecord())
	test.ExpectEquality(t, f.ctrl.Mode(), govern.Idle)

	test.ExpectSuccess(t, f.ctrl.TogglePlayback(pth))
	test.ExpectEquality(t, f.ctrl.Mode(), govern.Playback)
	test.ExpectSuccess(t, f.ctrl.TogglePlayback(pth))
	test.ExpectEquality(t, f.ctrl.Mode(), govern.Idle)
	test.ExpectEquality(t, f.pad.w.String(), "(stop)")
}

func TestInvalidFile(t *testing.T) {
	f := newFixture(t)

	pth := f.file(t, "wrong.fpkeys", `{"type": "something.else", "version": 2, "events": [{"t": 0, "type": "down", "key": "W"}]}`)
	err := f.ctrl.Play(pth)
	test.ExpectSuccess(t, curated.Has(err, recorder.InvalidFile))

	// nothing was scheduled and the mode is unchanged
	test.ExpectEquality(t, f.clk.Pending(), 0)
	test.ExpectEquality(t, f.ctrl.Mode(), govern.Idle)
	test.ExpectEquality(t, f.notices.w.String(), "NotifyInvalidFile;")

	pth = f.file(t, "empty.fpkeys", `{"type": "frameperfect.keys", "version": 2, "events": []}`)
	err = f.ctrl.Play(pth)
	test.ExpectSuccess(t, curated.Has(err, recorder.InvalidRecording))
	test.ExpectEquality(t, f.clk.Pending(), 0)

	// an invalid file does not stop a recording
	f.ctrl.StartRecord()
	test.ExpectFailure(t, f.ctrl.Play(pth))
	test.ExpectEquality(t, f.ctrl.Mode(), govern.Recording)
}

func TestNoRecording(t *testing.T) {
	f := newFixture(t)
	err := f.ctrl.Play("")
	test.ExpectSuccess(t, curated.Is(err, hud.NoRecording))
	test.ExpectEquality(t, f.ctrl.Mode(), govern.Idle)
}

func TestLegacyPlayback(t *testing.T) {
	f := newFixture(t)
	pth := f.file(t, "legacy.fpkeys", `{
		"type": "frameperfect.keys",
		"version": 1,
		"events": [{"t": 0, "label": "A"}, {"t": 5, "label": "S"}]
	}`)

	test.DemandSuccess(t, f.ctrl.Play(pth))

	// the chord is released after the default hold and the playback ends
	// 30ms after the computed duration of 85ms
	f.clk.Advance(114 * time.Millisecond)
	test.ExpectEquality(t, f.pad.w.String(), "(down A)(down S)(up A)(up S)")
	f.clk.Advance(time.Millisecond)
	test.ExpectEquality(t, f.pad.w.String(), "(down A)(down S)(up A)(up S)(stop)")
	test.ExpectSuccess(t, f.ended())

	test.ExpectEquality(t, f.display.String(), "     0ms  ←+↓\n")
}

func TestSetInject(t *testing.T) {
	f := newFixture(t)
	pth := f.file(t, "simple.fpkeys", simpleRecording)

	test.DemandSuccess(t, f.ctrl.Play(pth))
	f.clk.Advance(10 * time.Millisecond)

	// turning injection off releases the held keys
	f.ctrl.SetInject(false)
	test.ExpectFailure(t, f.pad.Inject())
	test.ExpectEquality(t, f.pad.w.String(), "(down D)(down J)(stop)")

	// turning off again does nothing
	f.ctrl.SetInject(false)

	// playback continues without injection and the display is unaffected
	f.clk.Advance(time.Second)
	test.ExpectEquality(t, f.pad.w.String(), "(down D)(down J)(stop)")
	test.ExpectSuccess(t, f.ended())
	test.ExpectEquality(t, f.display.String(), "     0ms  →+1\n")

	f.ctrl.SetInject(true)
	test.ExpectSuccess(t, f.pad.Inject())
	test.ExpectEquality(t, f.notices.w.String(), "NotifyPlaybackStarted;NotifyInjectOff;"+
		"NotifyPlaybackEnded;NotifyInjectOn;")
}

func TestCommands(t *testing.T) {
	f := newFixture(t)

	quit, err := f.ctrl.Command(hud.CmdToggleRecord)
	test.ExpectFailure(t, quit)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f.ctrl.Mode(), govern.Recording)

	f.clk.Advance(20 * time.Millisecond)
	test.ExpectSuccess(t, f.ctrl.HandleKey(padkeys.Start, true, userinput.GamepadButton))
	f.clk.Advance(20 * time.Millisecond)
	test.ExpectSuccess(t, f.ctrl.HandleKey(padkeys.Start, false, userinput.GamepadButton))

	_, err = f.ctrl.Command(hud.CmdStopRecord)
	test.ExpectSuccess(t, err)

	rec, err := recorder.LoadFile(f.ctrl.LastPath())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, rec.Provider, "evdev+sdl")

	// plays the recording just saved
	_, err = f.ctrl.Command(hud.CmdTogglePlayback)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f.ctrl.Mode(), govern.Playback)

	_, err = f.ctrl.Command(hud.CmdStopPlayback)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f.ctrl.Mode(), govern.Idle)

	_, err = f.ctrl.Command(hud.CmdToggleInject)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, f.pad.Inject())

	quit, _ = f.ctrl.Command(hud.CmdQuit)
	test.ExpectSuccess(t, quit)
}
