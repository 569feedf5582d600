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

package control

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher6526/hardware/cia/bus"
	"github.com/jetsetilly/gopher6526/hardware/cia/delay"
	"github.com/jetsetilly/gopher6526/hardware/cia/edge"
	"github.com/jetsetilly/gopher6526/hardware/cia/registers"
	"github.com/jetsetilly/gopher6526/hardware/cia/timer"
)

// Bits common to both control registers.
const (
	Start   uint8 = 0x01
	PBOn    uint8 = 0x02
	OutMode uint8 = 0x04
	RunMode uint8 = 0x08
	Load    uint8 = 0x10
)

// Bits specific to CRA.
const (
	InModeA uint8 = 0x20
	SPMode  uint8 = 0x40
	TODIn   uint8 = 0x80
)

// Bits specific to CRB.
const (
	InModeB     uint8 = 0x60
	inModeShift       = 5
	Alarm       uint8 = 0x80
)

// Selector is used to specify one of the two timers.
type Selector int

// List of valid Selector values.
const (
	A Selector = iota
	B
)

func (sel Selector) String() string {
	if sel == B {
		return "B"
	}
	return "A"
}

// Source is what Timer B counts.
type Source int

// List of valid Source values. The values match the InModeB field of CRB.
const (
	SourcePhi2 Source = iota
	SourceCNT
	SourceTimerA
	SourceTimerACNT
)

func (src Source) String() string {
	switch src {
	case SourcePhi2:
		return "phi2"
	case SourceCNT:
		return "cnt"
	case SourceTimerA:
		return "ta"
	case SourceTimerACNT:
		return "ta&cnt"
	}
	return "unknown"
}

// bits in the force-load delay line
const (
	loadA uint8 = 0x01
	loadB uint8 = 0x02
)

// Bank is the control register bank.
type Bank struct {
	CRA uint8
	CRB uint8

	// force-load strobes stored from the previous step
	load delay.Line
}

// NewBank is the preferred method of initialisation for the Bank type.
func NewBank() *Bank {
	b := &Bank{
		load: delay.NewLine(1),
	}
	return b
}

func (b Bank) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("CRA=%02x CRB=%02x", b.CRA, b.CRB))
	if b.load.Peek() != 0 {
		s.WriteString(" load")
	}
	return s.String()
}

// Reset control registers.
func (b *Bank) Reset() {
	b.CRA = 0
	b.CRB = 0
	b.load.Reset()
}

func (b Bank) cr(sel Selector) uint8 {
	if sel == B {
		return b.CRB
	}
	return b.CRA
}

// Running returns true if the start bit of the timer is set.
func (b Bank) Running(sel Selector) bool {
	return b.cr(sel)&Start == Start
}

// OneShot returns true if the timer stops after the next underflow.
func (b Bank) OneShot(sel Selector) bool {
	return b.cr(sel)&RunMode == RunMode
}

// ToggleOutput returns true if the timer output is in toggle mode, false if
// it is in pulse mode.
func (b Bank) ToggleOutput(sel Selector) bool {
	return b.cr(sel)&OutMode == OutMode
}

// PBOn returns true if the timer output overrides its port B bit.
func (b Bank) PBOn(sel Selector) bool {
	return b.cr(sel)&PBOn == PBOn
}

// SerialOutput returns true if the serial port is in output mode.
func (b Bank) SerialOutput() bool {
	return b.CRA&SPMode == SPMode
}

// FiftyHz returns true if the TOD input is a 50Hz signal.
func (b Bank) FiftyHz() bool {
	return b.CRA&TODIn == TODIn
}

// AlarmSelect returns true if writes to the TOD registers set the alarm.
func (b Bank) AlarmSelect() bool {
	return b.CRB&Alarm == Alarm
}

// TimerBSource returns the counting source of Timer B.
func (b Bank) TimerBSource() Source {
	return Source((b.CRB & InModeB) >> inModeShift)
}

// started returns true if the register is written with the start bit set
// while the timer is stopped.
func started(p bus.Phase, reg registers.Register, cr uint8) bool {
	return p.Write(reg) && p.WriteData&Start == Start && cr&Start == 0
}

// TimerA returns the input to Timer A for the current step. The CNT edge is
// the transition detected on the CNT pin this step.
func (b Bank) TimerA(p bus.Phase, cnt edge.Edge) timer.Input {
	in := timer.Input{
		Reset:     p.Reset,
		WriteLo:   p.Write(registers.TALO),
		WriteHi:   p.Write(registers.TAHI),
		Data:      p.WriteData,
		Running:   b.Running(A),
		ForceLoad: b.load.Peek()&loadA == loadA,
		Started:   started(p, registers.CRA, b.CRA),
	}

	if in.Running {
		if b.CRA&InModeA == InModeA {
			in.Count = cnt == edge.Rising
		} else {
			in.Count = true
		}
	}

	return in
}

// TimerB returns the input to Timer B for the current step. The CNT level is
// the sampled level of the CNT pin and the underflow is the underflow pulse of
// Timer A for the same step.
func (b Bank) TimerB(p bus.Phase, cnt edge.Edge, cntLevel bool, underflowA bool) timer.Input {
	in := timer.Input{
		Reset:     p.Reset,
		WriteLo:   p.Write(registers.TBLO),
		WriteHi:   p.Write(registers.TBHI),
		Data:      p.WriteData,
		Running:   b.Running(B),
		ForceLoad: b.load.Peek()&loadB == loadB,
		Started:   started(p, registers.CRB, b.CRB),
	}

	if in.Running {
		switch b.TimerBSource() {
		case SourcePhi2:
			in.Count = true
		case SourceCNT:
			in.Count = cnt == edge.Rising
		case SourceTimerA:
			in.Count = underflowA
		case SourceTimerACNT:
			in.Count = underflowA && cntLevel
		}
	}

	return in
}

// Step commits writes to the control registers and clears the start bit of
// a one-shot timer that has underflowed.
func (b *Bank) Step(p bus.Phase, underflowA bool, underflowB bool) {
	if p.Reset {
		b.Reset()
		return
	}

	var load uint8
	b.CRA, load = next(p, registers.CRA, b.CRA, underflowA && b.OneShot(A), load, loadA)
	b.CRB, load = next(p, registers.CRB, b.CRB, underflowB && b.OneShot(B), load, loadB)
	b.load.Tick(load)
}

// next value of a control register and the updated force-load strobes. The
// stop argument clears the start bit unless the register is being written.
func next(p bus.Phase, reg registers.Register, cr uint8, stop bool, load uint8, bit uint8) (uint8, uint8) {
	if p.Write(reg) {
		if p.WriteData&Load == Load {
			load |= bit
		}
		return p.WriteData &^ Load, load
	}

	if stop {
		cr &^= Start
	}

	return cr, load
}

// Read returns the value of the control register. The force-load bit always
// reads as zero.
func (b Bank) Read(sel Selector) uint8 {
	return b.cr(sel) &^ Load
}
