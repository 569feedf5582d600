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

package preferences_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher6526/curated"
	"github.com/jetsetilly/gopher6526/hardware/cia/revision"
	"github.com/jetsetilly/gopher6526/hardware/preferences"
	"github.com/jetsetilly/gopher6526/prefs"
	"github.com/jetsetilly/gopher6526/test"
)

func TestDefaults(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), prefs.DefaultPrefsFile))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.ChipModel(), revision.MOS8521)
	test.ExpectEquality(t, p.TODFrequency.Get().(int), 0)
}

func TestValidation(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), prefs.DefaultPrefsFile))
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, p.Model.Set("6526"))
	test.ExpectEquality(t, p.ChipModel(), revision.MOS6526)

	// rejected values leave the live value untouched
	err = p.Model.Set("6522")
	test.ExpectSuccess(t, curated.Is(err, revision.UnknownModel))
	test.ExpectEquality(t, p.ChipModel(), revision.MOS6526)
	test.ExpectEquality(t, p.Model.String(), "6526")

	test.ExpectSuccess(t, p.TODFrequency.Set(60))
	err = p.TODFrequency.Set(2000000)
	test.ExpectSuccess(t, curated.Is(err, preferences.InvalidTODFrequency))
	test.ExpectEquality(t, p.TODFrequency.Get().(int), 60)
}

func TestPersistence(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	p, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.Model.Set("6526"))
	test.ExpectSuccess(t, p.TODFrequency.Set(50))
	test.DemandSuccess(t, p.Save())

	p, err = preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.ChipModel(), revision.MOS6526)
	test.ExpectEquality(t, p.TODFrequency.Get().(int), 50)

	// command line values override the file
	prefs.PushCommandLineStack("cia.model::8521")
	defer prefs.PopCommandLineStack()
	test.DemandSuccess(t, p.Load())
	test.ExpectEquality(t, p.ChipModel(), revision.MOS8521)
}
