// This file is part of Gopher6526.
//
// Gopher6526 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6526 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6526.  If not, see <https://www.gnu.org/licenses/>.

// Package preferences holds the persisted defaults for the emulated chip. The
// values are stored in the shared preferences file and can be overridden on
// the command line with the -prefs flag.
package preferences

import (
	"sync/atomic"

	"github.com/jetsetilly/gopher6526/curated"
	"github.com/jetsetilly/gopher6526/hardware/cia/revision"
	"github.com/jetsetilly/gopher6526/hardware/clocks"
	"github.com/jetsetilly/gopher6526/paths"
	"github.com/jetsetilly/gopher6526/prefs"
)

// InvalidTODFrequency is returned when the TODFrequency value is not zero
// and outside of the range accepted by the TOD generator.
const InvalidTODFrequency = "preferences: tod frequency out of range (%d)"

// LivePreferences are updated automatically when the corresponding disk
// values change.
type LivePreferences struct {
	Model atomic.Value // revision.Model
}

// Preferences defines the chip preferences.
type Preferences struct {
	dsk *prefs.Disk

	// Prefer live values when the chip is created
	Live LivePreferences

	// model name of the chip. one of revision.ModelList
	Model prefs.String

	// frequency of the internal TOD generator. zero means the TOD pin is
	// only driven externally
	TODFrequency prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the default preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is like NewPreferences but uses the named file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}

	p.Model.SetHookPre(func(v prefs.Value) error {
		_, err := revision.ParseModel(v.(string))
		return err
	})
	p.Model.SetHookPost(func(v prefs.Value) error {
		m, _ := revision.ParseModel(v.(string))
		p.Live.Model.Store(m)
		return nil
	})

	p.TODFrequency.SetHookPre(func(v prefs.Value) error {
		f := v.(int)
		if f != 0 && (f < clocks.MinTODFrequency || f > clocks.MaxTODFrequency) {
			return curated.Errorf(InvalidTODFrequency, f)
		}
		return nil
	})

	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cia.model", &p.Model)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cia.todfrequency", &p.TODFrequency)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	// the defaults are known to be valid
	_ = p.Model.Set(revision.Default.String())
	_ = p.TODFrequency.Set(0)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// ChipModel returns the live chip model.
func (p *Preferences) ChipModel() revision.Model {
	if m, ok := p.Live.Model.Load().(revision.Model); ok {
		return m
	}
	return revision.Default
}
