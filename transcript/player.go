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

package transcript

import (
	"bufio"
	"fmt"
	"io"

	"github.com/jetsetilly/gopher6526/hardware/cia"
	"github.com/jetsetilly/gopher6526/hardware/cia/bus"
	"github.com/jetsetilly/gopher6526/hardware/cia/registers"
	"github.com/jetsetilly/gopher6526/hardware/clocks"
	"github.com/jetsetilly/gopher6526/logger"
)

// Observer is notified after every bus cycle stepped by the Player.
type Observer interface {
	Observe(c *cia.CIA)
}

// Player replays transcripts against a CIA instance.
type Player struct {
	cia *cia.CIA
	out io.Writer

	// internal TOD generator. nil if the TOD pin is only driven by the
	// transcript
	gen *clocks.TODGenerator

	observers []Observer

	// the cycle of the most recent register access counts towards the wait
	// of the next line
	skip bool

	// remaining wait of the most recent I line
	residual int

	// level of the IRQ pin at the previous check
	irq bool

	// number of lines processed
	Lines int
}

// NewPlayer is the preferred method of initialisation for the Player type.
// Output lines are written to out.
func NewPlayer(c *cia.CIA, out io.Writer) *Player {
	return &Player{
		cia: c,
		out: out,
		irq: true,
	}
}

// SetTODFrequency drives the TOD pin from an internal generator of the
// given frequency. A frequency of zero disables the generator.
func (plr *Player) SetTODFrequency(frequency int) error {
	if frequency == 0 {
		plr.gen = nil
		return nil
	}
	gen, err := clocks.NewTODGenerator(frequency)
	if err != nil {
		return err
	}
	plr.gen = gen
	return nil
}

// AddObserver adds an Observer to the Player.
func (plr *Player) AddObserver(o Observer) {
	plr.observers = append(plr.observers, o)
}

// CIA returns the chip being driven.
func (plr *Player) CIA() *cia.CIA {
	return plr.cia
}

// Start drives all input pins low and resets the chip for one cycle. Should
// be called once before the first line.
func (plr *Player) Start() {
	for _, p := range []cia.Pin{cia.SP, cia.CNT, cia.TOD, cia.FLAG} {
		_ = plr.cia.SetPin(p, false)
	}
	_ = plr.cia.SetPin(cia.RES, true)
	_ = plr.cia.SetPort(cia.PA, 0x00)
	_ = plr.cia.SetPort(cia.PB, 0x00)

	if plr.gen != nil {
		plr.gen.Reset()
		logger.Logf(logger.Allow, "transcript", "tod generator at %dHz", plr.gen.Frequency())
	}

	plr.step(bus.Input{Reset: true})
	plr.irq, _ = plr.cia.Pin(cia.IRQ)
	plr.skip = false
	plr.residual = 0
	plr.Lines = 0

	logger.Logf(logger.Allow, "transcript", "started with %s", plr.cia.Model())
}

// Play every line from the reader. Stops at the first error.
func (plr *Player) Play(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		if err := plr.Line(n, scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("transcript: %w", err)
	}

	logger.Logf(logger.Allow, "transcript", "played %d lines in %d cycles", plr.Lines, plr.cia.Cycles)

	return nil
}

// Line plays a single transcript line. The number is used for error
// messages only.
func (plr *Player) Line(n int, s string) error {
	e, ok, err := ParseEntry(n, s)
	if err != nil || !ok {
		return err
	}

	var acc access
	if e.Op != Interrupt {
		acc, err = e.resolve()
		if err != nil {
			return err
		}
	}

	plr.Lines++

	cycles := e.Cycles + plr.residual
	plr.residual = 0

	spent := 0
	for i := range cycles {
		if !plr.skip || i > 0 {
			plr.step(bus.Idle)
		}
		if plr.interrupted() {
			_, err := io.WriteString(plr.out, format(i-spent, Interrupt, registers.ICR.Hex(), plr.cia.Peek(registers.ICR), false))
			if err != nil {
				return fmt.Errorf("transcript: %w", err)
			}
			spent = i
		}
	}
	cycles -= spent
	plr.skip = false

	if e.Op == Interrupt {
		plr.residual = cycles
		return nil
	}

	var line string

	switch acc.kind {
	case register:
		if e.Op == Read {
			acc.value = plr.step(bus.Input{ChipSelect: true, Address: acc.reg})
		} else {
			plr.step(bus.Input{ChipSelect: true, Write: true, Address: acc.reg, Data: acc.value})
		}
		plr.skip = true
		line = format(cycles, e.Op, e.Target, acc.value, false)

	case port:
		if e.Op == Read {
			acc.value, _ = plr.cia.Port(acc.port)
		} else {
			_ = plr.cia.SetPort(acc.port, acc.value)
		}
		line = format(cycles, e.Op, e.Target, acc.value, false)

	case pin:
		if e.Op == Read {
			l, _ := plr.cia.Pin(acc.pin)
			acc.value = 0
			if l {
				acc.value = 1
			}
		} else {
			_ = plr.cia.SetPin(acc.pin, acc.value == 1)
		}
		line = format(cycles, e.Op, e.Target, acc.value, true)
	}

	if _, err := io.WriteString(plr.out, line); err != nil {
		return fmt.Errorf("transcript: %w", err)
	}

	return nil
}

// step the chip one cycle, advancing the TOD generator and notifying the
// observers.
func (plr *Player) step(in bus.Input) uint8 {
	if plr.gen != nil {
		_ = plr.cia.SetPin(cia.TOD, plr.gen.Advance())
	}
	v := plr.cia.Step(in)
	for _, o := range plr.observers {
		o.Observe(plr.cia)
	}
	return v
}

// interrupted returns true if the IRQ pin has fallen since the previous
// check.
func (plr *Player) interrupted() bool {
	l, _ := plr.cia.Pin(cia.IRQ)
	fell := plr.irq && !l
	plr.irq = l
	return fell
}
