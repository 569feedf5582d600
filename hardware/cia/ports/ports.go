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

package ports

import (
	"fmt"

	"github.com/jetsetilly/gopher6526/hardware/cia/bus"
	"github.com/jetsetilly/gopher6526/hardware/cia/delay"
	"github.com/jetsetilly/gopher6526/hardware/cia/registers"
)

// Bits of port B that can be overridden by the timers.
const (
	PB6 uint8 = 0x40
	PB7 uint8 = 0x80
)

// Override of port B bits by the timer outputs. Bits set in Mask are forced
// to outputs with the level given by the corresponding bit in Level.
type Override struct {
	Mask  uint8
	Level uint8
}

// NoOverride leaves port B unaltered.
var NoOverride = Override{}

func (ov Override) apply(data uint8, ddr uint8) (uint8, uint8) {
	data = (data &^ ov.Mask) | (ov.Level & ov.Mask)
	ddr |= ov.Mask
	return data, ddr
}

// Port is one of the parallel ports.
type Port struct {
	label string

	// Data is the value of the data register
	Data uint8

	// DDR is the value of the data direction register. 1 is output
	DDR uint8

	// the levels of the pins as latched on the previous cycle
	input uint8
}

func (pt Port) String() string {
	return fmt.Sprintf("P%s=%02x DDR%s=%02x in=%02x", pt.label, pt.Data, pt.label, pt.DDR, pt.input)
}

func (pt *Port) reset() {
	pt.Data = 0x00
	pt.DDR = 0x00
	pt.input = 0xff
}

// value returns the value seen by a read of the data register.
func (pt Port) value(data uint8, ddr uint8) uint8 {
	return (data & ddr) | (pt.input &^ ddr)
}

// output returns the level driven on to the pins. Input pins are released
// and float high.
func (pt Port) output(data uint8, ddr uint8) uint8 {
	return data | ^ddr
}

// Ports is the pair of parallel ports and the /PC strobe.
type Ports struct {
	A Port
	B Port

	// accesses of port B on their way to the /PC pin
	pc delay.Line
}

// NewPorts is the preferred method of initialisation for the Ports type.
func NewPorts() *Ports {
	pts := &Ports{
		A:  Port{label: "A"},
		B:  Port{label: "B"},
		pc: delay.NewLine(1),
	}
	pts.Reset()
	return pts
}

func (pts Ports) String() string {
	return fmt.Sprintf("%s %s", pts.A, pts.B)
}

// Reset both ports. All pins become inputs.
func (pts *Ports) Reset() {
	pts.A.reset()
	pts.B.reset()
	pts.pc.Reset()
}

// Read returns the value of one of the four port registers. Returns zero for
// any other register.
func (pts Ports) Read(reg registers.Register, ov Override) uint8 {
	switch reg {
	case registers.PRA:
		return pts.A.value(pts.A.Data, pts.A.DDR)
	case registers.PRB:
		return pts.B.value(ov.apply(pts.B.Data, pts.B.DDR))
	case registers.DDRA:
		return pts.A.DDR
	case registers.DDRB:
		return pts.B.DDR
	}
	return 0
}

// Step advances the ports by one bus cycle. The pa and pb arguments are the
// levels of the port pins as driven by the outside world.
func (pts *Ports) Step(p bus.Phase, pa uint8, pb uint8) {
	if p.Reset {
		pts.Reset()
		return
	}

	if p.WriteEnable {
		switch p.Address {
		case registers.PRA:
			pts.A.Data = p.WriteData
		case registers.PRB:
			pts.B.Data = p.WriteData
		case registers.DDRA:
			pts.A.DDR = p.WriteData
		case registers.DDRB:
			pts.B.DDR = p.WriteData
		}
	}

	pts.A.input = pa
	pts.B.input = pb

	var access uint8
	if p.Read(registers.PRB) || p.Write(registers.PRB) {
		access = 0x01
	}
	pts.pc.Tick(access)
}

// OutputA returns the levels driven on the port A pins.
func (pts Ports) OutputA() uint8 {
	return pts.A.output(pts.A.Data, pts.A.DDR)
}

// OutputB returns the levels driven on the port B pins.
func (pts Ports) OutputB(ov Override) uint8 {
	return pts.B.output(ov.apply(pts.B.Data, pts.B.DDR))
}

// PC returns the level of the /PC pin. The pin is active low.
func (pts Ports) PC() bool {
	return pts.pc.Peek() == 0
}
