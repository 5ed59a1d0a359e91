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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/jetsetilly/frameperfect/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is inserted at the beginning of a preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// KeySep separates the key from the value in a preferences file.
const KeySep = " :: "

// Sentinal error patterns.
const (
	NoPrefsFile  = "prefs: no prefs file (%s)"
	NotAPrefFile = "prefs: not a prefs file (%s)"
	DiskError    = "prefs: %v"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path string

	crit    sync.Mutex
	entries map[string]pref
}

func (dsk *Disk) String() string {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, KeySep, dsk.entries[k]))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:    path,
		entries: make(map[string]pref),
	}
	return dsk, nil
}

// Add preference value to list of values to store/load from disk. The key
// must be unique and not contain the key separator.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, strings.TrimSpace(KeySep)) {
		return curated.Errorf(DiskError, fmt.Sprintf("illegal key (%s)", key))
	}

	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DiskError, fmt.Sprintf("duplicate key (%s)", key))
	}
	dsk.entries[key] = p

	return nil
}

// keys returns the entries' keys in sorted order. should be called with the
// critical section held.
func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Save current preference values to disk. Entries in the preferences file
// that are not known to this Disk instance are preserved.
func (dsk *Disk) Save() (rerr error) {
	// read the existing file. entries not registered with this instance
	// are written back untouched
	existing, err := readPrefsFile(dsk.path)
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return err
	}

	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	for k, p := range dsk.entries {
		existing[k] = p.String()
	}

	keys := make([]string, 0, len(existing))
	for k := range existing {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(DiskError, err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(DiskError, err)
		}
	}()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\n", WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, KeySep, existing[k])
	}

	if err := w.Flush(); err != nil {
		return curated.Errorf(DiskError, err)
	}

	return nil
}

// Load preference values from disk. Values given on the command line (see
// PushCommandLineStack()) take priority over the values in the file.
//
// If saveOnFirstUse is true then a missing preferences file will be created
// with the current values.
func (dsk *Disk) Load(saveOnFirstUse bool) error {
	existing, err := readPrefsFile(dsk.path)
	if err != nil {
		if !curated.Is(err, NoPrefsFile) {
			return err
		}
		if saveOnFirstUse {
			if err := dsk.Save(); err != nil {
				return err
			}
		}
	}

	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	for _, k := range dsk.keys() {
		p := dsk.entries[k]

		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(DiskError, err)
			}
			continue // for loop
		}

		if v, ok := existing[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(DiskError, err)
			}
		}
	}

	// preserve the error from readPrefsFile() so that the caller can
	// decide whether a missing file matters
	return err
}

// readPrefsFile returns the raw key/value pairs in the preferences file. an
// empty map is always returned, even on error.
func readPrefsFile(path string) (map[string]string, error) {
	entries := make(map[string]string)

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return entries, curated.Errorf(NoPrefsFile, path)
		}
		return entries, curated.Errorf(DiskError, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// check validity of file by checking the first line for the boiler plate warning
	scanner.Scan()
	if len(scanner.Text()) > 0 && scanner.Text() != WarningBoilerPlate {
		return entries, curated.Errorf(NotAPrefFile, path)
	}

	for scanner.Scan() {
		spt := strings.SplitN(scanner.Text(), KeySep, 2)

		// ignore lines that haven't been split successfully
		if len(spt) != 2 {
			continue
		}

		entries[spt[0]] = spt[1]
	}

	if err := scanner.Err(); err != nil {
		return entries, curated.Errorf(DiskError, err)
	}

	return entries, nil
}
