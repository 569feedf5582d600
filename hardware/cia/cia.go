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

package cia

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher6526/curated"
	"github.com/jetsetilly/gopher6526/hardware/cia/bus"
	"github.com/jetsetilly/gopher6526/hardware/cia/control"
	"github.com/jetsetilly/gopher6526/hardware/cia/edge"
	"github.com/jetsetilly/gopher6526/hardware/cia/interrupt"
	"github.com/jetsetilly/gopher6526/hardware/cia/ports"
	"github.com/jetsetilly/gopher6526/hardware/cia/registers"
	"github.com/jetsetilly/gopher6526/hardware/cia/revision"
	"github.com/jetsetilly/gopher6526/hardware/cia/serial"
	"github.com/jetsetilly/gopher6526/hardware/cia/timer"
	"github.com/jetsetilly/gopher6526/hardware/cia/tod"
	"github.com/jetsetilly/gopher6526/logger"
)

// CIA contains all the sub-systems of the chip.
type CIA struct {
	model revision.Model

	seq bus.Sequencer

	Ports     *ports.Ports
	Control   *control.Bank
	TimerA    *timer.Timer
	TimerB    *timer.Timer
	Serial    *serial.Serial
	TOD       *tod.Clock
	Interrupt *interrupt.Controller

	// edge detectors for the CNT, TOD and FLAG pins
	cntEdge  edge.Detector
	todEdge  edge.Detector
	flagEdge edge.Detector

	pins inputs

	// Cycles is the number of bus cycles since the chip was created
	Cycles int
}

// NewCIA is the preferred method of initialisation for the CIA type.
func NewCIA(model revision.Model) *CIA {
	cia := &CIA{
		model:     model,
		Ports:     ports.NewPorts(),
		Control:   control.NewBank(),
		TimerA:    timer.NewTimer("A"),
		TimerB:    timer.NewTimer("B"),
		Serial:    serial.NewSerial(),
		TOD:       tod.NewClock(),
		Interrupt: interrupt.NewController(model),
		cntEdge:   edge.NewDetector(true),
		todEdge:   edge.NewDetector(true),
		flagEdge:  edge.NewDetector(true),
		pins:      releasedInputs(),
	}

	logger.Logf(logger.Allow, "cia", "created %s", model)

	return cia
}

// Model returns the chip model.
func (cia *CIA) Model() revision.Model {
	return cia.model
}

func (cia *CIA) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s cycle=%d %s\n", cia.model, cia.Cycles, cia.seq))
	s.WriteString(fmt.Sprintf("%s\n", cia.Ports))
	s.WriteString(fmt.Sprintf("%s %s %s\n", cia.TimerA, cia.TimerB, cia.Control))
	s.WriteString(fmt.Sprintf("TOD=%s\n", cia.TOD))
	s.WriteString(fmt.Sprintf("%s\n", cia.Serial))
	s.WriteString(cia.Interrupt.String())
	return s.String()
}

// Snapshot creates an independent copy of the chip.
func (cia *CIA) Snapshot() *CIA {
	n := *cia

	pts := *cia.Ports
	n.Ports = &pts
	ctrl := *cia.Control
	n.Control = &ctrl
	ta := *cia.TimerA
	n.TimerA = &ta
	tb := *cia.TimerB
	n.TimerB = &tb
	sr := *cia.Serial
	n.Serial = &sr
	clk := *cia.TOD
	n.TOD = &clk
	ic := *cia.Interrupt
	n.Interrupt = &ic

	return &n
}

// Step advances the chip by one bus cycle. If the bus transaction is a read
// the value of the register is returned, otherwise the return value is zero.
func (cia *CIA) Step(in bus.Input) uint8 {
	if !cia.pins.res {
		in.Reset = true
	}

	cia.seq.Tick(true, in)
	p := cia.seq.Tick(false, in)

	var data uint8
	if p.ReadEnable {
		data = cia.Peek(p.Address)
	}

	cia.update(p)
	cia.Cycles++

	return data
}

// update all sub-systems on the falling edge of PHI2. the order of the
// updates is the order in which pulses flow between the sub-systems. mode
// bits are taken from the control registers before they are updated.
func (cia *CIA) update(p bus.Phase) {
	// reset resynchronises the edge detectors with the pins
	if p.Reset {
		cia.cntEdge.Reset(cia.pins.cnt)
		cia.todEdge.Reset(cia.pins.tod)
		cia.flagEdge.Reset(cia.pins.flag)
	}

	cnt := cia.cntEdge.Sample(cia.pins.cnt)
	todEdge := cia.todEdge.Sample(cia.pins.tod)
	flag := cia.flagEdge.Sample(cia.pins.flag)

	underflowA := cia.TimerA.Step(cia.Control.TimerA(p, cnt))
	underflowB := cia.TimerB.Step(cia.Control.TimerB(p, cnt, cia.cntEdge.Level(), underflowA))

	serialOut := cia.Control.SerialOutput()
	fiftyHz := cia.Control.FiftyHz()
	alarmSelect := cia.Control.AlarmSelect()

	cia.Control.Step(p, underflowA, underflowB)

	complete := cia.Serial.Step(serial.Input{
		Reset:     p.Reset,
		Output:    serialOut,
		Write:     p.Write(registers.SDR),
		Data:      p.WriteData,
		Underflow: underflowA,
		CNT:       cnt,
		SP:        cia.pins.sp,
	})

	alarm := cia.TOD.Step(tod.Input{
		Phase:       p,
		Edge:        todEdge,
		FiftyHz:     fiftyHz,
		AlarmSelect: alarmSelect,
	})

	cia.Ports.Step(p, cia.pins.pa, cia.pins.pb)

	var sources uint8
	if underflowA {
		sources |= interrupt.TimerA
	}
	if underflowB {
		sources |= interrupt.TimerB
	}
	if alarm {
		sources |= interrupt.Alarm
	}
	if complete {
		sources |= interrupt.Serial
	}
	if flag == edge.Falling {
		sources |= interrupt.Flag
	}
	cia.Interrupt.Step(p, sources)
}

// override returns the timer outputs that replace bits 6 and 7 of port B.
func (cia *CIA) override() ports.Override {
	var ov ports.Override
	if cia.Control.PBOn(control.A) {
		ov.Mask |= ports.PB6
		if cia.TimerA.Output(cia.Control.ToggleOutput(control.A)) {
			ov.Level |= ports.PB6
		}
	}
	if cia.Control.PBOn(control.B) {
		ov.Mask |= ports.PB7
		if cia.TimerB.Output(cia.Control.ToggleOutput(control.B)) {
			ov.Level |= ports.PB7
		}
	}
	return ov
}

// Peek returns the value of a register without any of the side effects of a
// read.
func (cia *CIA) Peek(reg registers.Register) uint8 {
	switch reg & registers.Mask {
	case registers.PRA, registers.PRB, registers.DDRA, registers.DDRB:
		return cia.Ports.Read(reg, cia.override())
	case registers.TALO:
		return cia.TimerA.Read(false)
	case registers.TAHI:
		return cia.TimerA.Read(true)
	case registers.TBLO:
		return cia.TimerB.Read(false)
	case registers.TBHI:
		return cia.TimerB.Read(true)
	case registers.TOD10THS, registers.TODSEC, registers.TODMIN, registers.TODHR:
		return cia.TOD.Read(reg)
	case registers.SDR:
		return cia.Serial.Read()
	case registers.ICR:
		return cia.Interrupt.Read()
	case registers.CRA:
		return cia.Control.Read(control.A)
	case registers.CRB:
		return cia.Control.Read(control.B)
	}
	return 0
}

// Read is a single bus cycle reading the register.
func (cia *CIA) Read(reg registers.Register) uint8 {
	return cia.Step(bus.Input{ChipSelect: true, Address: reg})
}

// Write is a single bus cycle writing the value to the register.
func (cia *CIA) Write(reg registers.Register, data uint8) {
	cia.Step(bus.Input{ChipSelect: true, Write: true, Address: reg, Data: data})
}

// Idle advances the chip by n bus cycles with the chip not selected.
func (cia *CIA) Idle(n int) {
	for i := 0; i < n; i++ {
		cia.Step(bus.Idle)
	}
}

// Reset asserts the reset line for a single bus cycle.
func (cia *CIA) Reset() {
	logger.Log(logger.Allow, "cia", "reset")
	cia.Step(bus.Input{Reset: true})
}

// SetPin sets the level of an input pin. Setting an output only pin is an
// error.
func (cia *CIA) SetPin(pin Pin, level bool) error {
	switch pin {
	case RES:
		cia.pins.res = level
	case SP:
		cia.pins.sp = level
	case CNT:
		cia.pins.cnt = level
	case TOD:
		cia.pins.tod = level
	case FLAG:
		cia.pins.flag = level
	default:
		logger.Logf(logger.Allow, "cia", "SetPin() rejected %s", pin)
		return curated.Errorf(UnknownPin, pin)
	}
	return nil
}

// Pin returns the level of an output pin. Querying an input only pin is an
// error.
func (cia *CIA) Pin(pin Pin) (bool, error) {
	switch pin {
	case SP:
		return cia.Serial.SP(), nil
	case CNT:
		return cia.Serial.CNT(), nil
	case IRQ:
		return !cia.Interrupt.IRQ, nil
	case PC:
		return cia.Ports.PC(), nil
	}
	logger.Logf(logger.Allow, "cia", "Pin() rejected %s", pin)
	return false, curated.Errorf(UnknownPin, pin)
}

// IRQ returns true if the IRQ pin is asserted.
func (cia *CIA) IRQ() bool {
	return cia.Interrupt.IRQ
}

// SetPort sets the levels driven on to the port pins by the outside world.
func (cia *CIA) SetPort(port Port, v uint8) error {
	switch port {
	case PA:
		cia.pins.pa = v
	case PB:
		cia.pins.pb = v
	default:
		return curated.Errorf(UnknownPort, port)
	}
	return nil
}

// Port returns the levels driven on to the port pins by the CIA. Pins that
// are inputs are released and read high.
func (cia *CIA) Port(port Port) (uint8, error) {
	switch port {
	case PA:
		return cia.Ports.OutputA(), nil
	case PB:
		return cia.Ports.OutputB(cia.override()), nil
	}
	return 0, curated.Errorf(UnknownPort, port)
}
