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
	"fmt"

	"github.com/jetsetilly/frameperfect/capture"
	"github.com/jetsetilly/frameperfect/chords"
	"github.com/jetsetilly/frameperfect/curated"
	"github.com/jetsetilly/frameperfect/paths"
	"github.com/jetsetilly/frameperfect/prefs"
	"github.com/jetsetilly/frameperfect/recorder"
	"github.com/jetsetilly/frameperfect/userinput"
	"github.com/jetsetilly/frameperfect/virtualpad"
)

// Preferences for the capture, playback and virtual pad components.
type Preferences struct {
	dsk *prefs.Disk

	// capture
	Deadzone       prefs.Float
	PollHz         prefs.Int
	AxisFallback   prefs.Bool
	KeyboardDevice prefs.String

	// playback of version 1 recordings
	WindowMs prefs.Int
	HoldMs   prefs.Int

	// virtual pad. an empty server runs this executable in PAD mode
	Inject prefs.Bool
	Server prefs.String
	Device prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the preferences file in the
// resource path, which is created if it does not exist.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	p.Deadzone.SetHookPre(func(v prefs.Value) error {
		if f := v.(float64); f < 0.0 || f >= 1.0 {
			return fmt.Errorf("deadzone must be at least 0.0 and less than 1.0")
		}
		return nil
	})
	p.PollHz.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return fmt.Errorf("poll rate must be greater than zero")
		}
		return nil
	})

	for _, e := range []struct {
		key string
		p   interface {
			fmt.Stringer
			Set(prefs.Value) error
			Get() prefs.Value
			Reset() error
		}
	}{
		{"capture.deadzone", &p.Deadzone},
		{"capture.pollhz", &p.PollHz},
		{"capture.axisfallback", &p.AxisFallback},
		{"capture.keyboard", &p.KeyboardDevice},
		{"chords.windowms", &p.WindowMs},
		{"upgrade.holdms", &p.HoldMs},
		{"inject.enabled", &p.Inject},
		{"inject.server", &p.Server},
		{"inject.device", &p.Device},
	} {
		if err := p.dsk.Add(e.key, e.p); err != nil {
			return nil, err
		}
	}

	err = p.dsk.Load(true)
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	// errors are not possible with these values
	_ = p.Deadzone.Set(userinput.DefaultDeadzone)
	_ = p.PollHz.Set(capture.DefaultPollHz)
	_ = p.AxisFallback.Set(true)
	_ = p.KeyboardDevice.Set("")
	_ = p.WindowMs.Set(chords.DefaultWindow)
	_ = p.HoldMs.Set(recorder.DefaultHoldMs)
	_ = p.Inject.Set(true)
	_ = p.Server.Set("")
	_ = p.Device.Set(virtualpad.DefaultDevice)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	err := p.dsk.Load(false)
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return err
	}
	return nil
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
