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

package interrupt

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher6526/hardware/cia/bus"
	"github.com/jetsetilly/gopher6526/hardware/cia/delay"
	"github.com/jetsetilly/gopher6526/hardware/cia/registers"
	"github.com/jetsetilly/gopher6526/hardware/cia/revision"
)

// Interrupt source bits. These are the bit positions in the ICR and in the
// mask.
const (
	TimerA uint8 = 0x01
	TimerB uint8 = 0x02
	Alarm  uint8 = 0x04
	Serial uint8 = 0x08
	Flag   uint8 = 0x10

	// Sources is all five sources
	Sources uint8 = 0x1f

	// IR is the bit in the value returned by a read of the ICR that
	// indicates the IRQ latch is set
	IR uint8 = 0x80

	// SetClear is the bit in a value written to the ICR that decides whether
	// mask bits are set or cleared
	SetClear uint8 = 0x80
)

var sourceNames = []string{"TA", "TB", "ALRM", "SP", "FLG"}

// SourceString returns a readable list of the source bits in v.
func SourceString(v uint8) string {
	s := strings.Builder{}
	for i, n := range sourceNames {
		if v&(1<<i) != 0 {
			if s.Len() > 0 {
				s.WriteString("|")
			}
			s.WriteString(n)
		}
	}
	if s.Len() == 0 {
		return "-"
	}
	return s.String()
}

// Controller is the interrupt controller.
type Controller struct {
	model revision.Model

	// Flags is the five source flags
	Flags uint8

	// Mask is the five mask bits
	Mask uint8

	// IRQ is the IRQ latch. The IRQ pin is asserted (low) while it is true
	IRQ bool

	// source pulses on their way to the flags
	sources delay.Line
}

// NewController is the preferred method of initialisation for the Controller
// type.
func NewController(model revision.Model) *Controller {
	ic := &Controller{
		model:   model,
		sources: delay.NewLine(model.InterruptDelay()),
	}
	return ic
}

func (ic Controller) String() string {
	s := fmt.Sprintf("ICR=%02x (%s) mask=%s", ic.Read(), SourceString(ic.Flags), SourceString(ic.Mask))
	if ic.sources.Len() > 0 {
		s = fmt.Sprintf("%s pending=%s", s, SourceString(ic.sources.Pending()))
	}
	return s
}

// Model returns the chip model the controller was created with.
func (ic Controller) Model() revision.Model {
	return ic.model
}

// Reset the controller. Flags, mask and the IRQ latch are cleared and any
// delayed source pulses are discarded.
func (ic *Controller) Reset() {
	ic.Flags = 0
	ic.Mask = 0
	ic.IRQ = false
	ic.sources.Reset()
}

// Read returns the value of the ICR. A read has no side effects until it is
// committed by Step().
func (ic Controller) Read() uint8 {
	v := ic.Flags & Sources
	if ic.IRQ {
		v |= IR
	}
	return v
}

// Step advances the controller by one bus cycle. The sources argument holds
// the source pulses for this step.
func (ic *Controller) Step(p bus.Phase, sources uint8) {
	if p.Reset {
		ic.Reset()
		return
	}

	src := ic.sources.Tick(sources & Sources)
	read := p.Read(registers.ICR)

	var clr uint8
	if read {
		clr = Sources
	}

	var flags uint8
	switch ic.model {
	case revision.MOS6526:
		flags = (ic.Flags | src) &^ clr
	default:
		flags = (ic.Flags &^ clr) | src
	}

	// the mask is the value before any write on this step
	ic.IRQ = (ic.IRQ && !read) || flags&ic.Mask != 0
	ic.Flags = flags

	if p.Write(registers.ICR) {
		if p.WriteData&SetClear == SetClear {
			ic.Mask |= p.WriteData & Sources
		} else {
			ic.Mask &^= p.WriteData & Sources
		}
	}
}
