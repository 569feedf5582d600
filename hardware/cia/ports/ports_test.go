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

package ports_test

import (
	"testing"

	"github.com/jetsetilly/gopher6526/hardware/cia/bus"
	"github.com/jetsetilly/gopher6526/hardware/cia/ports"
	"github.com/jetsetilly/gopher6526/hardware/cia/registers"
	"github.com/jetsetilly/gopher6526/test"
)

func write(reg registers.Register, v uint8) bus.Phase {
	return bus.Phase{WriteEnable: true, Address: reg, WriteData: v}
}

var idle = bus.Phase{}

func TestReset(t *testing.T) {
	pts := ports.NewPorts()
	test.ExpectEquality(t, pts.Read(registers.DDRA, ports.NoOverride), 0x00)
	test.ExpectEquality(t, pts.Read(registers.PRA, ports.NoOverride), 0xff)
	test.ExpectEquality(t, pts.OutputA(), 0xff)
	test.ExpectEquality(t, pts.OutputB(ports.NoOverride), 0xff)
	test.ExpectSuccess(t, pts.PC())
}

func TestDDR(t *testing.T) {
	pts := ports.NewPorts()
	pts.Step(write(registers.DDRA, 0x0f), 0xff, 0xff)
	pts.Step(write(registers.PRA, 0x5a), 0x33, 0xff)

	// output bits from the data register, input bits from the pins
	test.ExpectEquality(t, pts.Read(registers.PRA, ports.NoOverride), 0x3a)
	test.ExpectEquality(t, pts.Read(registers.DDRA, ports.NoOverride), 0x0f)
	test.ExpectEquality(t, pts.OutputA(), 0xfa)
}

func TestInputLatched(t *testing.T) {
	pts := ports.NewPorts()
	pts.Step(idle, 0xff, 0xff)
	test.ExpectEquality(t, pts.Read(registers.PRB, ports.NoOverride), 0xff)
	pts.Step(idle, 0xff, 0x12)
	test.ExpectEquality(t, pts.Read(registers.PRB, ports.NoOverride), 0x12)
}

func TestOverride(t *testing.T) {
	pts := ports.NewPorts()
	pts.Step(write(registers.PRB, 0x00), 0xff, 0x00)

	ov := ports.Override{Mask: ports.PB6 | ports.PB7, Level: ports.PB7}
	test.ExpectEquality(t, pts.Read(registers.PRB, ov), ports.PB7)
	test.ExpectEquality(t, pts.OutputB(ov), 0xbf)

	// the stored DDR is unaffected
	test.ExpectEquality(t, pts.Read(registers.DDRB, ov), 0x00)

	ov = ports.Override{Mask: ports.PB6, Level: ports.PB6}
	test.ExpectEquality(t, pts.Read(registers.PRB, ov), ports.PB6)
}

func TestPC(t *testing.T) {
	pts := ports.NewPorts()
	pts.Step(bus.Phase{ReadEnable: true, Address: registers.PRB}, 0xff, 0xff)
	test.ExpectFailure(t, pts.PC())
	pts.Step(idle, 0xff, 0xff)
	test.ExpectSuccess(t, pts.PC())

	// port A does not strobe
	pts.Step(write(registers.PRA, 0x00), 0xff, 0xff)
	test.ExpectSuccess(t, pts.PC())

	// consecutive accesses stretch the pulse
	var low int
	pts.Step(write(registers.PRB, 0x00), 0xff, 0xff)
	for i := 0; i < 4; i++ {
		if !pts.PC() {
			low++
		}
		if i == 0 {
			pts.Step(write(registers.PRB, 0x01), 0xff, 0xff)
		} else {
			pts.Step(idle, 0xff, 0xff)
		}
	}
	test.ExpectEquality(t, low, 2)
}
