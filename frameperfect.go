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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/jetsetilly/frameperfect/capture"
	"github.com/jetsetilly/frameperfect/chords"
	"github.com/jetsetilly/frameperfect/govern"
	"github.com/jetsetilly/frameperfect/hud"
	"github.com/jetsetilly/frameperfect/logger"
	"github.com/jetsetilly/frameperfect/modalflag"
	"github.com/jetsetilly/frameperfect/notifications"
	"github.com/jetsetilly/frameperfect/padproto"
	"github.com/jetsetilly/frameperfect/paths"
	"github.com/jetsetilly/frameperfect/performance"
	"github.com/jetsetilly/frameperfect/playback"
	"github.com/jetsetilly/frameperfect/prefs"
	"github.com/jetsetilly/frameperfect/recorder"
	"github.com/jetsetilly/frameperfect/statsview"
	"github.com/jetsetilly/frameperfect/userinput"
	"github.com/jetsetilly/frameperfect/version"
	"github.com/jetsetilly/frameperfect/virtualpad"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("HUD", "PLAY", "PAD", "UPGRADE", "INFO", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	// interrupt ends every mode
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	switch md.Mode() {
	case "HUD":
		err = runHUD(ctx, md)
	case "PLAY":
		err = runPlay(ctx, md)
	case "PAD":
		err = runPad(ctx, md)
	case "UPGRADE":
		err = runUpgrade(md)
	case "INFO":
		err = runInfo(md)
	case "VERSION":
		fmt.Println(version.String())
	}

	stop()

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// flags shared by the HUD and PLAY modes
type common struct {
	log     *bool
	prefs   *string
	profile *string
}

func addCommon(md *modalflag.Modes) common {
	return common{
		log:     md.AddBool("log", false, "echo debugging log to stdout"),
		prefs:   md.AddString("prefs", "", "override preferences (eg. \"upgrade.holdms::60; inject.enabled::false\")"),
		profile: md.AddString("profile", "none", "run with profiling: CPU, MEM, TRACE or ALL"),
	}
}

// apply the common flags. the log is echoed to the writer
func (c common) apply(echo io.Writer) (performance.Profile, error) {
	if *c.log {
		logger.SetEcho(echo, true)
	} else {
		logger.SetEcho(nil, false)
	}
	if *c.prefs != "" {
		prefs.PushCommandLineStack(*c.prefs)
	}
	return performance.ParseProfile(*c.profile)
}

// the launcher for the pad server. an empty server preference runs this
// executable in PAD mode
func padLauncher(p *hud.Preferences) (padproto.Launcher, error) {
	device := p.Device.Get().(string)
	if server := p.Server.Get().(string); server != "" {
		return padproto.ExecLauncher{Path: server, Args: []string{"-device", device}}, nil
	}
	return padproto.SelfLauncher("PAD", "-device", device)
}

// create a controller with a connection to the pad server. the client should
// be closed when the controller is no longer required
func newController(p *hud.Preferences, status notifications.Notify, dir string) (*hud.Controller, *padproto.Client, error) {
	launcher, err := padLauncher(p)
	if err != nil {
		return nil, nil, err
	}

	client := padproto.NewClient(launcher, status)
	client.SetInject(p.Inject.Get().(bool))

	feed := hud.NewFeed(os.Stdout, p.WindowMs.Get().(int))

	ctrl := hud.NewController(playback.RealClock{}, client, feed, status, hud.DirStore{Dir: dir},
		recorder.Providers{
			Keyboard: capture.KeyboardProvider,
			Gamepad:  capture.GamepadProvider,
		})
	ctrl.HoldMs = p.HoldMs.Get().(int)
	ctrl.WindowMs = p.WindowMs.Get().(int)

	return ctrl, client, nil
}

func newInput(p *hud.Preferences) *userinput.Controllers {
	input := userinput.NewControllers()
	input.Deadzone = float32(p.Deadzone.Get().(float64))
	input.AxisFallback = p.AxisFallback.Get().(bool)
	return input
}

func runHUD(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("An optional recording file can be given. It is played with the p key.")

	cmn := addCommon(md)
	dir := md.AddString("dir", ".", "directory for new recordings")
	stats := md.AddBool("statsview", false, "run stats server")
	statsAddr := md.AddString("statsaddr", statsview.DefaultAddress, "address of the stats server")
	noKeyboard := md.AddBool("nokeyboard", false, "do not capture the keyboard")
	noGamepad := md.AddBool("nogamepad", false, "do not capture gamepads")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	profile, err := cmn.apply(os.Stdout)
	if err != nil {
		return err
	}

	if len(md.RemainingArgs()) > 1 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	pr, err := hud.NewPreferences()
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(os.Stdout, *statsAddr)
	}

	status := hud.NewStatus(os.Stdout)

	ctrl, client, err := newController(pr, status, *dir)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Close(); err != nil {
			logger.Log(logger.Allow, "main", err)
		}
	}()

	ctrl.SetFile(md.GetArg(0))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := capture.NewChannel()

	if !*noKeyboard {
		kb, err := capture.OpenKeyboard(pr.KeyboardDevice.Get().(string))
		if err != nil {
			_ = status.Notify(notifications.NotifyProviderUnavailable, err.Error())
		} else {
			go func() {
				if err := kb.Run(ctx, events); err != nil {
					_ = status.Notify(notifications.NotifyProviderUnavailable, err.Error())
				}
			}()
		}
	}

	if !*noGamepad {
		gp := capture.NewGamepads(pr.PollHz.Get().(int))
		go func() {
			if err := gp.Run(ctx, events); err != nil {
				_ = status.Notify(notifications.NotifyProviderUnavailable, err.Error())
			}
		}()
	}

	var commands chan hud.Command
	con, err := hud.OpenConsole("")
	if err != nil {
		logger.Log(logger.Allow, "main", err)
	} else {
		commands = make(chan hud.Command)
		hud.ConsoleHelp(os.Stdout)
		go func() {
			if err := con.Run(ctx, commands); err != nil {
				logger.Log(logger.Allow, "main", err)
			}
		}()
	}

	return performance.RunProfiler(profile, "hud", func() error {
		return ctrl.Loop(ctx, events, commands, newInput(pr))
	})
}

func runPlay(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()
	cmn := addCommon(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	profile, err := cmn.apply(os.Stdout)
	if err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("recording file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	pr, err := hud.NewPreferences()
	if err != nil {
		return err
	}

	status := hud.NewStatus(os.Stdout)

	ctrl, client, err := newController(pr, status, ".")
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Close(); err != nil {
			logger.Log(logger.Allow, "main", err)
		}
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// the mode ends when playback returns to idle
	ctrl.Observer = func(from govern.Mode, to govern.Mode) {
		if from == govern.Playback && to == govern.Idle {
			cancel()
		}
	}

	if err := ctrl.Play(md.GetArg(0)); err != nil {
		return err
	}

	return performance.RunProfiler(profile, "play", func() error {
		return ctrl.Loop(ctx, nil, nil, newInput(pr))
	})
}

func runPad(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("Commands are read from stdin, one per line.")

	log := md.AddBool("log", false, "echo debugging log to stderr")
	device := md.AddString("device", virtualpad.DefaultDevice, "uinput device")
	logOnly := md.AddBool("logonly", false, "write reports to the log instead of a virtual controller")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// stdout is not used in this mode
	if *log {
		logger.SetEcho(os.Stderr, true)
	} else {
		logger.SetEcho(nil, false)
	}

	var drv interface {
		padproto.Driver
		io.Closer
	}

	if *logOnly {
		drv = &virtualpad.Log{}
	} else {
		drv, err = virtualpad.NewUinput(*device)
		if err != nil {
			logger.Log(logger.Allow, "main", err)
			drv = &virtualpad.Log{}
		}
	}
	defer func() {
		if err := drv.Close(); err != nil {
			logger.Log(logger.Allow, "main", err)
		}
	}()

	srv := padproto.NewServer(drv)
	return srv.Serve(ctx, os.Stdin)
}

func runUpgrade(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("Writes a version 2 copy of a version 1 recording.")

	hold := md.AddInt("hold", recorder.DefaultHoldMs, "hold duration of each key in milliseconds")
	window := md.AddInt("window", recorder.DefaultWindowMs, "chord window in milliseconds")
	output := md.AddString("o", "", "output file (default is a new file next to the input)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("recording file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	in := md.GetArg(0)
	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}

	upg, err := recorder.UpgradeFile(data, *hold, *window)
	if err != nil {
		return err
	}

	out := *output
	if out == "" {
		base := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
		out = filepath.Join(filepath.Dir(in), paths.UniqueFilename(base, "v2", recorder.FileExtension, time.Now()))
	}

	if err := os.WriteFile(out, upg, 0o644); err != nil {
		return err
	}

	fmt.Printf("upgraded recording written to %s\n", out)

	return nil
}

func runInfo(md *modalflag.Modes) error {
	md.NewMode()
	notation := md.AddBool("notation", false, "list the presses of the recording")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("recording file required for %s mode", md)
	}

	for _, pth := range md.RemainingArgs() {
		rec, err := recorder.LoadFile(pth)
		if err != nil {
			return err
		}
		summarise(os.Stdout, pth, rec, *notation)
	}

	return nil
}

// summarise a recording. the notation of the presses is included if
// requested
func summarise(w io.Writer, pth string, rec recorder.Recording, notation bool) {
	fmt.Fprintf(w, "%s\n", pth)
	fmt.Fprintf(w, "  version:  %d\n", rec.Version)
	if !rec.CreatedAt.IsZero() {
		fmt.Fprintf(w, "  created:  %s\n", rec.CreatedAt.Format(time.RFC3339))
	}
	if rec.Platform != "" {
		fmt.Fprintf(w, "  platform: %s\n", rec.Platform)
	}
	if rec.Provider != "" {
		fmt.Fprintf(w, "  provider: %s\n", rec.Provider)
	}
	fmt.Fprintf(w, "  duration: %dms\n", rec.DurationMs)

	var timed []chords.Timed
	if rec.IsLegacy() {
		fmt.Fprintf(w, "  events:   %d (legacy)\n", len(rec.Legacy))
		for _, e := range rec.Legacy {
			timed = append(timed, chords.Timed{OffsetMs: e.OffsetMs, Label: e.Label})
		}
	} else {
		fmt.Fprintf(w, "  events:   %d\n", len(rec.Events))
		for _, e := range rec.Events {
			if e.Type == recorder.Down {
				timed = append(timed, chords.Timed{OffsetMs: e.OffsetMs, Label: e.Key.Label()})
			}
		}
	}

	chs := chords.Group(timed, chords.DefaultWindow)
	fmt.Fprintf(w, "  chords:   %d\n", len(chs))

	if notation {
		for _, c := range chs {
			fmt.Fprintf(w, "  %6dms  %s\n", c.OffsetMs, strings.Join(c.Labels, "+"))
		}
	}
}
