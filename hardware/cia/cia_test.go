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

package cia_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher6526/curated"
	"github.com/jetsetilly/gopher6526/hardware/cia"
	"github.com/jetsetilly/gopher6526/hardware/cia/interrupt"
	"github.com/jetsetilly/gopher6526/hardware/cia/registers"
	"github.com/jetsetilly/gopher6526/hardware/cia/revision"
	"github.com/jetsetilly/gopher6526/test"
)

func newCIA(model revision.Model) *cia.CIA {
	c := cia.NewCIA(model)
	c.Reset()
	return c
}

// startTimerA sets the Timer A latch and starts the timer with the control
// value. Returns after the cycle of the control register write.
func startTimerA(c *cia.CIA, latch uint16, cra uint8) {
	c.Write(registers.TALO, uint8(latch))
	c.Write(registers.TAHI, uint8(latch>>8))
	c.Write(registers.CRA, cra)
}

// cyclesToFlag returns the number of cycles before the flag is set in the
// ICR. Returns -1 if the flag is not set within limit cycles.
func cyclesToFlag(c *cia.CIA, flag uint8, limit int) int {
	for i := 1; i <= limit; i++ {
		c.Idle(1)
		if c.Interrupt.Flags&flag == flag {
			return i
		}
	}
	return -1
}

func TestTimerAInterrupt(t *testing.T) {
	c := newCIA(revision.MOS8521)
	c.Write(registers.ICR, 0x80|interrupt.TimerA)
	startTimerA(c, 0x00ff, 0x01)
	test.ExpectEquality(t, cyclesToFlag(c, interrupt.TimerA, 1000), 256)

	irq, err := c.Pin(cia.IRQ)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, irq)
	test.ExpectSuccess(t, c.IRQ())

	c = newCIA(revision.MOS6526)
	c.Write(registers.ICR, 0x80|interrupt.TimerA)
	startTimerA(c, 0x00ff, 0x01)
	test.ExpectEquality(t, cyclesToFlag(c, interrupt.TimerA, 1000), 257)
}

func TestInterruptAtomicity(t *testing.T) {
	for _, model := range []revision.Model{revision.MOS6526, revision.MOS8521} {
		c := newCIA(model)
		c.Write(registers.ICR, 0x80|interrupt.TimerA|interrupt.TimerB)
		c.Write(registers.TBLO, 0x03)
		c.Write(registers.TBHI, 0x00)
		c.Write(registers.CRB, 0x09)
		startTimerA(c, 0x0002, 0x09)
		c.Idle(20)

		test.ExpectEquality(t, c.Read(registers.ICR), interrupt.IR|interrupt.TimerA|interrupt.TimerB, model)
		test.ExpectEquality(t, c.Read(registers.ICR), 0x00, model)

		irq, _ := c.Pin(cia.IRQ)
		test.ExpectSuccess(t, irq, model)
	}
}

func TestOneShot(t *testing.T) {
	c := newCIA(revision.MOS8521)
	startTimerA(c, 0x0005, 0x09)

	var underflows int
	for i := 0; i < 50; i++ {
		c.Idle(1)
		if c.TimerA.Underflow() {
			underflows++
			test.ExpectEquality(t, i, 5)
		}
	}
	test.ExpectEquality(t, underflows, 1)
	test.ExpectEquality(t, c.Peek(registers.CRA), 0x08)
	test.ExpectEquality(t, c.Peek(registers.TALO), 0x05)
}

func TestContinuous(t *testing.T) {
	c := newCIA(revision.MOS8521)
	startTimerA(c, 0x0007, 0x01)

	last := 0
	var underflows int
	for i := 1; i <= 80; i++ {
		c.Idle(1)
		if c.TimerA.Underflow() {
			underflows++
			test.ExpectEquality(t, i-last, 8)
			last = i
		}
	}
	test.ExpectEquality(t, underflows, 10)
}

func TestTimerBCountsTimerA(t *testing.T) {
	for _, latch := range []uint16{0, 3} {
		c := newCIA(revision.MOS8521)
		c.Write(registers.TBLO, 0x40)
		c.Write(registers.TBHI, 0x00)
		c.Write(registers.CRB, 0x41)
		startTimerA(c, latch, 0x01)

		var underflows uint16
		for i := 0; i < 40; i++ {
			c.Idle(1)
			if c.TimerA.Underflow() {
				underflows++
			}
		}
		test.ExpectEquality(t, underflows, 40/(latch+1), latch)
		test.ExpectEquality(t, c.TimerB.Counter, 0x40-underflows, latch)
	}
}

func TestForceLoad(t *testing.T) {
	c := newCIA(revision.MOS8521)
	startTimerA(c, 0x1000, 0x01)
	c.Idle(0x100)
	test.ExpectEquality(t, c.Peek(registers.TAHI), 0x0f)

	// the force-load bit is not read back
	c.Write(registers.CRA, 0x11)
	test.ExpectEquality(t, c.Peek(registers.CRA), 0x01)
	c.Idle(1)
	test.ExpectEquality(t, c.TimerA.Counter, 0x1000)
}

func TestRegisterEcho(t *testing.T) {
	c := newCIA(revision.MOS8521)

	for _, v := range []uint8{0x00, 0x5a, 0xa5, 0xff} {
		c.Write(registers.DDRA, v)
		test.ExpectEquality(t, c.Read(registers.DDRA), v)
		c.Write(registers.DDRB, v)
		test.ExpectEquality(t, c.Read(registers.DDRB), v)
		c.Write(registers.SDR, v)
		test.ExpectEquality(t, c.Read(registers.SDR), v)
	}

	c.Write(registers.DDRA, 0xff)
	c.Write(registers.PRA, 0x3c)
	test.ExpectEquality(t, c.Read(registers.PRA), 0x3c)

	for _, v := range []uint8{0x24, 0xe6, 0x00} {
		c.Write(registers.CRB, v)
		test.ExpectEquality(t, c.Read(registers.CRB), v)
	}

	c.Write(registers.TODHR, 0x05)
	c.Write(registers.TODMIN, 0x59)
	c.Write(registers.TODSEC, 0x30)
	c.Write(registers.TOD10THS, 0x07)
	test.ExpectEquality(t, c.Read(registers.TODHR), 0x05)
	test.ExpectEquality(t, c.Read(registers.TODMIN), 0x59)
	test.ExpectEquality(t, c.Read(registers.TODSEC), 0x30)
	test.ExpectEquality(t, c.Read(registers.TOD10THS), 0x07)
}

func TestNotSelected(t *testing.T) {
	c := newCIA(revision.MOS8521)
	c.Write(registers.DDRA, 0x12)
	c.Idle(10)
	test.ExpectEquality(t, c.Peek(registers.DDRA), 0x12)
}

func TestTimerOutputOnPortB(t *testing.T) {
	c := newCIA(revision.MOS8521)

	// toggle mode. output is set when the timer is started
	startTimerA(c, 0x0002, 0x07)
	pb, err := c.Port(cia.PB)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pb&0x40, 0x40)
	test.ExpectEquality(t, c.Peek(registers.PRB)&0x40, 0x40)

	var toggles int
	prev := pb & 0x40
	for i := 0; i < 30; i++ {
		c.Idle(1)
		pb, _ = c.Port(cia.PB)
		if pb&0x40 != prev {
			toggles++
			prev = pb & 0x40
		}
	}
	test.ExpectEquality(t, toggles, 10)

	// the stored DDR is not changed by the override
	test.ExpectEquality(t, c.Peek(registers.DDRB), 0x00)

	// pulse mode on PB7
	c.Write(registers.TBLO, 0x04)
	c.Write(registers.TBHI, 0x00)
	c.Write(registers.CRB, 0x03)
	var pulses int
	for i := 0; i < 25; i++ {
		c.Idle(1)
		pb, _ = c.Port(cia.PB)
		if pb&0x80 == 0x80 {
			pulses++
		}
	}
	test.ExpectEquality(t, pulses, 5)
}

func TestFlagPin(t *testing.T) {
	c := newCIA(revision.MOS8521)
	test.ExpectSuccess(t, c.SetPin(cia.FLAG, false))
	c.Idle(1)
	test.ExpectEquality(t, c.Interrupt.Flags, interrupt.Flag)

	// rising edge does not set the flag
	c.Read(registers.ICR)
	test.ExpectSuccess(t, c.SetPin(cia.FLAG, true))
	c.Idle(4)
	test.ExpectEquality(t, c.Interrupt.Flags, 0x00)
}

func TestResetSynchronisesPins(t *testing.T) {
	c := cia.NewCIA(revision.MOS6526)
	test.ExpectSuccess(t, c.SetPin(cia.FLAG, false))
	c.Reset()
	c.Idle(4)
	test.ExpectEquality(t, c.Interrupt.Flags, 0x00)

	// the next falling edge is seen
	test.ExpectSuccess(t, c.SetPin(cia.FLAG, true))
	c.Idle(1)
	test.ExpectSuccess(t, c.SetPin(cia.FLAG, false))
	c.Idle(3)
	test.ExpectEquality(t, c.Interrupt.Flags, interrupt.Flag)
}

func TestTODPin(t *testing.T) {
	c := newCIA(revision.MOS8521)
	c.Write(registers.TODHR, 0x00)
	c.Write(registers.TOD10THS, 0x00)

	for i := 0; i < 60; i++ {
		test.ExpectSuccess(t, c.SetPin(cia.TOD, false))
		c.Idle(1)
		test.ExpectSuccess(t, c.SetPin(cia.TOD, true))
		c.Idle(1)
	}
	test.ExpectEquality(t, c.Peek(registers.TOD10THS), 0x00)
	test.ExpectEquality(t, c.Peek(registers.TODSEC), 0x01)

	// 50Hz
	c.Write(registers.CRA, 0x80)
	for i := 0; i < 5; i++ {
		test.ExpectSuccess(t, c.SetPin(cia.TOD, false))
		c.Idle(1)
		test.ExpectSuccess(t, c.SetPin(cia.TOD, true))
		c.Idle(1)
	}
	test.ExpectEquality(t, c.Peek(registers.TOD10THS), 0x01)
}

func TestSerialOutput(t *testing.T) {
	c := newCIA(revision.MOS8521)
	startTimerA(c, 0x0001, 0x41)
	c.Write(registers.SDR, 0xa5)

	var v uint8
	var bits int
	cnt, _ := c.Pin(cia.CNT)
	for i := 0; i < 80; i++ {
		c.Idle(1)
		level, _ := c.Pin(cia.CNT)
		if level && !cnt {
			sp, _ := c.Pin(cia.SP)
			v <<= 1
			if sp {
				v |= 0x01
			}
			bits++
		}
		cnt = level
	}
	test.ExpectEquality(t, bits, 8)
	test.ExpectEquality(t, v, 0xa5)
	test.ExpectEquality(t, c.Read(registers.ICR), interrupt.Serial|interrupt.TimerA)
}

func TestSerialInput(t *testing.T) {
	c := newCIA(revision.MOS8521)
	b := uint8(0x6e)
	for i := 7; i >= 0; i-- {
		test.ExpectSuccess(t, c.SetPin(cia.SP, b&(1<<i) != 0))
		test.ExpectSuccess(t, c.SetPin(cia.CNT, false))
		c.Idle(1)
		test.ExpectSuccess(t, c.SetPin(cia.CNT, true))
		c.Idle(1)
	}
	test.ExpectEquality(t, c.Read(registers.SDR), b)
	test.ExpectEquality(t, c.Read(registers.ICR), interrupt.Serial)
}

func TestPortInput(t *testing.T) {
	c := newCIA(revision.MOS8521)
	test.ExpectSuccess(t, c.SetPort(cia.PA, 0x81))

	// pin levels are latched and visible on the following cycle
	test.ExpectEquality(t, c.Read(registers.PRA), 0xff)
	test.ExpectEquality(t, c.Read(registers.PRA), 0x81)
	test.ExpectSuccess(t, c.SetPort(cia.PB, 0x18))
	c.Idle(1)
	test.ExpectEquality(t, c.Read(registers.PRB), 0x18)

	pa, err := c.Port(cia.PA)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pa, 0xff)
}

func TestPCStrobe(t *testing.T) {
	c := newCIA(revision.MOS8521)
	pc, _ := c.Pin(cia.PC)
	test.ExpectSuccess(t, pc)

	c.Read(registers.PRB)
	pc, _ = c.Pin(cia.PC)
	test.ExpectFailure(t, pc)

	c.Idle(1)
	pc, _ = c.Pin(cia.PC)
	test.ExpectSuccess(t, pc)
}

func TestResetPin(t *testing.T) {
	c := newCIA(revision.MOS8521)
	c.Write(registers.DDRA, 0xff)
	c.Write(registers.ICR, 0x9f)

	test.ExpectSuccess(t, c.SetPin(cia.RES, false))

	// writes are ignored while reset is asserted
	c.Write(registers.DDRB, 0xff)
	test.ExpectSuccess(t, c.SetPin(cia.RES, true))
	c.Idle(1)

	test.ExpectEquality(t, c.Peek(registers.DDRA), 0x00)
	test.ExpectEquality(t, c.Peek(registers.DDRB), 0x00)
	test.ExpectEquality(t, c.Interrupt.Mask, 0x00)
	test.ExpectEquality(t, c.TimerA.Counter, 0xffff)
	test.ExpectEquality(t, c.Peek(registers.TODHR), 0x01)
}

func TestPinErrors(t *testing.T) {
	c := newCIA(revision.MOS8521)

	err := c.SetPin(cia.IRQ, true)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cia.UnknownPin))

	_, err = c.Pin(cia.TOD)
	test.ExpectSuccess(t, curated.Is(err, cia.UnknownPin))

	_, err = cia.ParsePin("XYZ")
	test.ExpectSuccess(t, curated.Is(err, cia.UnknownPin))

	pin, err := cia.ParsePin("flag")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pin, cia.FLAG)

	_, err = cia.ParsePort("PC")
	test.ExpectSuccess(t, curated.Is(err, cia.UnknownPort))

	port, err := cia.ParsePort("pb")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, port, cia.PB)

	err = c.SetPort(cia.Port(5), 0)
	test.ExpectSuccess(t, curated.Is(err, cia.UnknownPort))
}

func TestSnapshot(t *testing.T) {
	c := newCIA(revision.MOS8521)
	startTimerA(c, 0x0100, 0x01)
	snap := c.Snapshot()

	c.Idle(0x10)
	test.ExpectEquality(t, snap.TimerA.Counter, 0x0100)
	test.ExpectEquality(t, c.TimerA.Counter, 0x00f0)
	test.ExpectEquality(t, snap.Model(), revision.MOS8521)

	snap.Idle(0x20)
	test.ExpectEquality(t, snap.TimerA.Counter, 0x00e0)
	test.ExpectEquality(t, c.TimerA.Counter, 0x00f0)
}

func TestString(t *testing.T) {
	c := newCIA(revision.MOS6526)
	c.Write(registers.SDR, 0x5a)

	s := c.String()
	test.ExpectSuccess(t, strings.Contains(s, "cycle=2 __.--* write SDR=5a"))
	test.ExpectSuccess(t, strings.Contains(s, "SDR=5a shift=00 bits=0"))
	test.ExpectSuccess(t, strings.Contains(s, "pending=-"))
}
