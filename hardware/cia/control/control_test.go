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

package control_test

import (
	"testing"

	"github.com/jetsetilly/gopher6526/hardware/cia/bus"
	"github.com/jetsetilly/gopher6526/hardware/cia/control"
	"github.com/jetsetilly/gopher6526/hardware/cia/edge"
	"github.com/jetsetilly/gopher6526/hardware/cia/registers"
	"github.com/jetsetilly/gopher6526/test"
)

func write(reg registers.Register, data uint8) bus.Phase {
	return bus.Phase{WriteEnable: true, Address: reg, WriteData: data}
}

var idle = bus.Phase{}

func TestWriteAndRead(t *testing.T) {
	b := control.NewBank()
	b.Step(write(registers.CRA, 0xff), false, false)
	test.ExpectEquality(t, b.Read(control.A), 0xef)
	test.ExpectSuccess(t, b.SerialOutput())
	test.ExpectSuccess(t, b.FiftyHz())
	test.ExpectSuccess(t, b.PBOn(control.A))
	test.ExpectFailure(t, b.PBOn(control.B))

	b.Step(write(registers.CRB, 0xc0), false, false)
	test.ExpectEquality(t, b.Read(control.B), 0xc0)
	test.ExpectSuccess(t, b.AlarmSelect())
	test.ExpectEquality(t, b.TimerBSource(), control.SourceTimerA)

	b.Step(bus.Phase{Reset: true}, false, false)
	test.ExpectEquality(t, b.Read(control.A), 0x00)
	test.ExpectEquality(t, b.Read(control.B), 0x00)
}

func TestForceLoadIsStored(t *testing.T) {
	b := control.NewBank()

	// not effective on the step of the write
	p := write(registers.CRA, control.Load)
	test.ExpectFailure(t, b.TimerA(p, edge.None).ForceLoad)
	b.Step(p, false, false)

	// effective on the following step
	test.ExpectSuccess(t, b.TimerA(idle, edge.None).ForceLoad)
	test.ExpectFailure(t, b.TimerB(idle, edge.None, false, false).ForceLoad)
	b.Step(idle, false, false)

	// and only for a single step
	test.ExpectFailure(t, b.TimerA(idle, edge.None).ForceLoad)
}

func TestOneShot(t *testing.T) {
	b := control.NewBank()
	b.Step(write(registers.CRA, control.Start|control.RunMode), false, false)
	test.ExpectSuccess(t, b.Running(control.A))
	test.ExpectSuccess(t, b.OneShot(control.A))

	b.Step(idle, false, false)
	test.ExpectSuccess(t, b.Running(control.A))

	b.Step(idle, true, false)
	test.ExpectFailure(t, b.Running(control.A))
	test.ExpectEquality(t, b.Read(control.A), control.RunMode)

	// a write on the same step as the underflow wins
	b.Step(write(registers.CRA, control.Start|control.RunMode), false, false)
	b.Step(write(registers.CRA, control.Start|control.RunMode), true, false)
	test.ExpectSuccess(t, b.Running(control.A))

	// continuous mode is not affected by underflow
	b.Step(write(registers.CRB, control.Start), false, false)
	b.Step(idle, false, true)
	test.ExpectSuccess(t, b.Running(control.B))
}

func TestTimerACounting(t *testing.T) {
	b := control.NewBank()

	// stopped timer never counts
	test.ExpectFailure(t, b.TimerA(idle, edge.Rising).Count)

	b.Step(write(registers.CRA, control.Start), false, false)
	test.ExpectSuccess(t, b.TimerA(idle, edge.None).Count)

	b.Step(write(registers.CRA, control.Start|control.InModeA), false, false)
	test.ExpectFailure(t, b.TimerA(idle, edge.None).Count)
	test.ExpectFailure(t, b.TimerA(idle, edge.Falling).Count)
	test.ExpectSuccess(t, b.TimerA(idle, edge.Rising).Count)
}

func TestTimerBSources(t *testing.T) {
	b := control.NewBank()

	b.Step(write(registers.CRB, control.Start), false, false)
	test.ExpectSuccess(t, b.TimerB(idle, edge.None, false, false).Count)

	b.Step(write(registers.CRB, control.Start|0x20), false, false)
	test.ExpectEquality(t, b.TimerBSource(), control.SourceCNT)
	test.ExpectFailure(t, b.TimerB(idle, edge.None, true, true).Count)
	test.ExpectSuccess(t, b.TimerB(idle, edge.Rising, true, false).Count)

	b.Step(write(registers.CRB, control.Start|0x40), false, false)
	test.ExpectFailure(t, b.TimerB(idle, edge.Rising, true, false).Count)
	test.ExpectSuccess(t, b.TimerB(idle, edge.None, false, true).Count)

	b.Step(write(registers.CRB, control.Start|0x60), false, false)
	test.ExpectFailure(t, b.TimerB(idle, edge.None, false, true).Count)
	test.ExpectSuccess(t, b.TimerB(idle, edge.None, true, true).Count)
}

func TestStarted(t *testing.T) {
	b := control.NewBank()
	test.ExpectSuccess(t, b.TimerA(write(registers.CRA, control.Start), edge.None).Started)
	test.ExpectFailure(t, b.TimerA(write(registers.CRB, control.Start), edge.None).Started)

	b.Step(write(registers.CRA, control.Start), false, false)

	// writing the start bit of a running timer does not start it again
	test.ExpectFailure(t, b.TimerA(write(registers.CRA, control.Start), edge.None).Started)
}
