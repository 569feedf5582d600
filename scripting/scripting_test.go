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

package scripting_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher6526/hardware/cia"
	"github.com/jetsetilly/gopher6526/hardware/cia/registers"
	"github.com/jetsetilly/gopher6526/hardware/cia/revision"
	"github.com/jetsetilly/gopher6526/scripting"
	"github.com/jetsetilly/gopher6526/test"
)

func newScript(t *testing.T) (*scripting.Script, *cia.CIA, *test.CompareWriter) {
	t.Helper()
	c := cia.NewCIA(revision.MOS8521)
	c.Reset()
	w := &test.CompareWriter{}
	scr := scripting.NewScript(c, w)
	t.Cleanup(scr.Close)
	return scr, c, w
}

func TestRegisters(t *testing.T) {
	scr, c, w := newScript(t)

	err := scr.RunString(context.Background(), `
		cia.write("DDRA", 0x2a)
		cia.write(3, 0xff)
		print(cia.read(2), cia.peek("ddrb"))
	`)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, w.String(), "42\t255\n")
	test.ExpectEquality(t, c.Peek(registers.DDRA), 0x2a)
}

func TestTimerScript(t *testing.T) {
	scr, c, w := newScript(t)

	err := scr.RunString(context.Background(), `
		cia.write("ICR", 0x81)
		cia.write("TALO", 0xff)
		cia.write("TAHI", 0x00)
		cia.write("CRA", 0x01)
		local n = 0
		while not cia.irq() do
			cia.step()
			n = n + 1
		end
		print(n, cia.pin("IRQ"))
		print(cia.read("ICR"), cia.irq())
	`)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, w.String(), "256\tfalse\n129\tfalse\n")
	test.ExpectFailure(t, c.IRQ())
}

func TestPinsAndPorts(t *testing.T) {
	scr, _, w := newScript(t)

	err := scr.RunString(context.Background(), `
		cia.write("ICR", 0x90)
		cia.setpin("FLAG", 0)
		cia.step(2)
		print(cia.irq())
		cia.setport("PB", 0x5a)
		cia.step()
		print(cia.read("PRB"), cia.port("PB"))
	`)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, w.String(), "true\n90\t255\n")
}

func TestErrors(t *testing.T) {
	scr, _, _ := newScript(t)

	test.ExpectFailure(t, scr.RunString(context.Background(), `cia.write("XYZ", 0)`))
	test.ExpectFailure(t, scr.RunString(context.Background(), `cia.write(16, 0)`))
	test.ExpectFailure(t, scr.RunString(context.Background(), `cia.write(0, 256)`))
	test.ExpectFailure(t, scr.RunString(context.Background(), `cia.setpin("IRQ", true)`))
	test.ExpectFailure(t, scr.RunString(context.Background(), `cia.pin("TOD")`))
	test.ExpectFailure(t, scr.RunString(context.Background(), `cia.step(-1)`))

	// the script stops when the context is cancelled
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	test.ExpectFailure(t, scr.RunString(ctx, `while true do cia.step() end`))
}

func TestRunFile(t *testing.T) {
	scr, c, _ := newScript(t)

	fn := filepath.Join(t.TempDir(), "stimulus.lua")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("cia.step(10)\nlog('done')\n"), 0o600))

	before := c.Cycles
	test.DemandSuccess(t, scr.RunFile(context.Background(), fn))
	test.ExpectEquality(t, c.Cycles-before, 10)

	test.ExpectFailure(t, scr.RunFile(context.Background(), filepath.Join(t.TempDir(), "missing.lua")))
}

func TestLongOutput(t *testing.T) {
	c := cia.NewCIA(revision.MOS8521)
	w, err := test.NewRingWriter(8)
	test.DemandSuccess(t, err)

	scr := scripting.NewScript(c, w)
	defer scr.Close()

	test.DemandSuccess(t, scr.RunString(context.Background(), `for i = 1, 100 do print(i) end`))
	test.ExpectEquality(t, w.String(), "\n99\n100\n")
}
