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

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher6526/test"
)

// prepare a temporary working directory with a local resource directory so
// that the user's configuration is never touched.
func workspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	test.DemandSuccess(t, os.Mkdir(".gopher6526", 0o700))
	return dir
}

func launchWith(args ...string) int {
	sync := &mainSync{
		quit:   make(chan int),
		cancel: func() {},
	}
	go launch(context.Background(), sync, args)
	return <-sync.quit
}

func writeFile(t *testing.T, name string, content string) {
	t.Helper()
	test.DemandSuccess(t, os.WriteFile(name, []byte(content), 0o600))
}

func TestRunMode(t *testing.T) {
	dir := workspace(t)
	writeFile(t, "stimulus.txt", "0 W 2 2A\n5 R 2 00\n\n3 R DDRA 00\n")

	exitVal := launchWith("-model", "6526", "-out", "output.log", "-memviz", "chip.dot", "stimulus.txt")
	test.ExpectEquality(t, exitVal, 0)

	b, err := os.ReadFile(filepath.Join(dir, "output.log"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(b), "0 W 2 2A\n5 R 2 2A\n3 R DDRA 2A\n")

	fi, err := os.Stat(filepath.Join(dir, "chip.dot"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, fi.Size() > 0)
}

func TestRunModeErrors(t *testing.T) {
	workspace(t)
	writeFile(t, "stimulus.txt", "0 W 2 2A\n")
	writeFile(t, "invalid.txt", "0 W 2 2A\n0 X 2 00\n")

	test.ExpectEquality(t, launchWith("run", "-nosuchflag", "stimulus.txt"), exitModeError)
	test.ExpectEquality(t, launchWith("-model", "6502", "stimulus.txt"), exitModeError)
	test.ExpectEquality(t, launchWith("run", "nosuchfile.txt"), exitModeError)
	test.ExpectEquality(t, launchWith("run", "stimulus.txt", "invalid.txt"), exitModeError)
	test.ExpectEquality(t, launchWith("run", "invalid.txt"), exitModeError)
}

func TestCompareMode(t *testing.T) {
	workspace(t)
	writeFile(t, "stimulus.txt", "0 W 2 2A\n5 R 2 00\n")
	writeFile(t, "stimulus.log", "0 W 2 2A\n5 R 2 2A\n")

	test.ExpectEquality(t, launchWith("compare", "stimulus.txt"), 0)

	writeFile(t, "stimulus.log", "0 W 2 2A\n5 R 2 FF\n")
	test.ExpectEquality(t, launchWith("compare", "stimulus.txt"), exitModeError)

	// the failure is remembered and can be rerun
	writeFile(t, "stimulus.log", "0 W 2 2A\n5 R 2 2A\n")
	test.ExpectEquality(t, launchWith("compare", "FAILS"), 0)

	test.ExpectEquality(t, launchWith("compare"), exitModeError)
}

func TestScriptMode(t *testing.T) {
	workspace(t)
	writeFile(t, "script.lua", "cia.write(3, 0xff)\nassert(cia.read(3) == 0xff)\n")
	test.ExpectEquality(t, launchWith("script", "script.lua"), 0)

	writeFile(t, "error.lua", "error(\"failed\")\n")
	test.ExpectEquality(t, launchWith("script", "error.lua"), exitModeError)
}

func TestVersionMode(t *testing.T) {
	workspace(t)
	test.ExpectEquality(t, launchWith("version"), 0)
	test.ExpectEquality(t, launchWith("version", "-revision"), 0)
	test.ExpectEquality(t, launchWith("-help"), 0)
}
