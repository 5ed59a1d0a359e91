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
	"strconv"
	"strings"

	"github.com/jetsetilly/frameperfect/curated"
	"github.com/jetsetilly/frameperfect/padkeys"
)

// MalformedCommand is the pattern for errors returned by Parse().
const MalformedCommand = "padproto: malformed command: %v"

// Default hold durations in milliseconds.
const (
	DefaultTapMs   = 40
	DefaultChordMs = 50
)

// Op is the operation of a command.
type Op int

// List of valid operations.
const (
	OpDown Op = iota
	OpUp
	OpTap
	OpChord
	OpStop
)

func (op Op) String() string {
	switch op {
	case OpDown:
		return "down"
	case OpUp:
		return "up"
	case OpTap:
		return "tap"
	case OpChord:
		return "chord"
	case OpStop:
		return "stop"
	}
	return ""
}

// Command is a single line of the protocol.
type Command struct {
	Op Op

	// the keys affected by the command. down, up and tap have exactly one
	// key. stop has no keys
	Keys []padkeys.Key

	// hold duration for tap and chord commands
	HoldMs int
}

// Down returns the command that presses key.
func Down(key padkeys.Key) Command {
	return Command{Op: OpDown, Keys: []padkeys.Key{key}}
}

// Up returns the command that releases key.
func Up(key padkeys.Key) Command {
	return Command{Op: OpUp, Keys: []padkeys.Key{key}}
}

// Tap returns the command that presses and releases key.
func Tap(key padkeys.Key, holdMs int) Command {
	return Command{Op: OpTap, Keys: []padkeys.Key{key}, HoldMs: max(holdMs, 0)}
}

// Chord returns the command that presses and releases all keys together.
func Chord(keys []padkeys.Key, holdMs int) Command {
	return Command{Op: OpChord, Keys: keys, HoldMs: max(holdMs, 0)}
}

// Stop returns the command that releases every key.
func Stop() Command {
	return Command{Op: OpStop}
}

// String returns the command as a line of the protocol, without the line
// ending.
func (cmd Command) String() string {
	switch cmd.Op {
	case OpDown, OpUp:
		if len(cmd.Keys) == 0 {
			return cmd.Op.String()
		}
		return fmt.Sprintf("%s %s", cmd.Op, cmd.Keys[0])
	case OpTap:
		if len(cmd.Keys) == 0 {
			return cmd.Op.String()
		}
		return fmt.Sprintf("%s %s %d", cmd.Op, cmd.Keys[0], cmd.HoldMs)
	case OpChord:
		k := make([]string, 0, len(cmd.Keys))
		for _, key := range cmd.Keys {
			k = append(k, key.String())
		}
		return fmt.Sprintf("%s %s %d", cmd.Op, strings.Join(k, ","), cmd.HoldMs)
	}
	return cmd.Op.String()
}

// parseKey accepts a wire name or the comma character.
func parseKey(s string) (padkeys.Key, bool) {
	if s == "," {
		return padkeys.B4, true
	}
	return padkeys.Parse(s)
}

// parseHold returns the hold duration in the optional field. a missing or
// unreadable value gives the default. negative values are clamped to zero
func parseHold(fields []string, idx int, def int) int {
	if idx >= len(fields) {
		return def
	}
	v, err := strconv.Atoi(fields[idx])
	if err != nil {
		return def
	}
	return max(v, 0)
}

// Parse a line of the protocol. Leading and trailing white space is ignored.
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, curated.Errorf(MalformedCommand, "empty line")
	}

	word := strings.ToLower(fields[0])

	switch word {
	case "stop":
		return Stop(), nil

	case "down", "up", "tap":
		if len(fields) < 2 {
			return Command{}, curated.Errorf(MalformedCommand, fmt.Sprintf("%s: missing key", word))
		}
		key, ok := parseKey(fields[1])
		if !ok {
			return Command{}, curated.Errorf(MalformedCommand, fmt.Sprintf("%s: unrecognised key (%s)", word, fields[1]))
		}
		switch word {
		case "down":
			return Down(key), nil
		case "up":
			return Up(key), nil
		}
		return Tap(key, parseHold(fields, 2, DefaultTapMs)), nil

	case "chord":
		if len(fields) < 2 {
			return Command{}, curated.Errorf(MalformedCommand, "chord: missing keys")
		}

		// unrecognised keys are skipped
		var keys []padkeys.Key
		for _, s := range strings.Split(fields[1], ",") {
			if k, ok := padkeys.Parse(s); ok {
				keys = append(keys, k)
			}
		}
		if len(keys) == 0 {
			return Command{}, curated.Errorf(MalformedCommand, fmt.Sprintf("chord: no recognised keys (%s)", fields[1]))
		}
		return Chord(keys, parseHold(fields, 2, DefaultChordMs)), nil
	}

	return Command{}, curated.Errorf(MalformedCommand, fmt.Sprintf("unknown command (%s)", fields[0]))
}
