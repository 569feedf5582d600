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

package bus

import (
	"fmt"

	"github.com/jetsetilly/gopher6526/hardware/cia/registers"
)

// Input is the state of the bus lines for one bus cycle. Values are logical
// values, already resolved by the pin layer.
type Input struct {
	// the reset line. true when reset is asserted (ie. /RES is low)
	Reset bool

	// chip select. true when the chip is selected (ie. /CS is low)
	ChipSelect bool

	// direction of transfer. true for a write to the chip (ie. R/W is low)
	Write bool

	Address registers.Register
	Data    uint8
}

func (in Input) String() string {
	if in.Reset {
		return "reset"
	}
	if !in.ChipSelect {
		return "idle"
	}
	if in.Write {
		return fmt.Sprintf("write %s=%02x", in.Address, in.Data)
	}
	return fmt.Sprintf("read %s", in.Address)
}

// Idle is the bus state when the chip is not selected and reset is not
// asserted.
var Idle = Input{}

// Phase is the output of the sequencer for one internal step.
type Phase struct {
	// the current level of PHI2 and whether it has just changed
	High     bool
	RiseEdge bool
	FallEdge bool

	// reset is asserted. forces sub-systems to their reset values on the
	// falling edge
	Reset bool

	// ReadEnable and WriteEnable are mutually exclusive
	ReadEnable  bool
	WriteEnable bool

	Address   registers.Register
	WriteData uint8
}

// Read returns true if the phase is committing a read of the register.
func (p Phase) Read(reg registers.Register) bool {
	return p.ReadEnable && p.Address == reg
}

// Write returns true if the phase is committing a write to the register.
func (p Phase) Write(reg registers.Register) bool {
	return p.WriteEnable && p.Address == reg
}

// Sequencer derives the Phase for each internal step.
type Sequencer struct {
	// phase of PHI2 on the previous step
	clock PhaseClock

	// PHI2 high, delayed by one internal step
	highDelayed bool

	// bus lines as sampled on the rising edge of PHI2
	sampled Input
}

func (s Sequencer) String() string {
	return fmt.Sprintf("%s %s", s.clock, s.sampled)
}

// Tick advances the sequencer by one internal step. The phi2 argument is the
// level of PHI2 for the step.
func (s *Sequencer) Tick(phi2 bool, in Input) Phase {
	var p Phase
	p.RiseEdge, p.FallEdge = s.clock.Follow(phi2)
	p.High = s.clock.High()

	if p.RiseEdge {
		s.sampled = in
		s.sampled.Address &= registers.Mask
	}

	p.Reset = s.sampled.Reset
	p.Address = s.sampled.Address
	p.WriteData = s.sampled.Data

	if s.highDelayed && s.sampled.ChipSelect && !s.sampled.Reset {
		p.WriteEnable = s.sampled.Write
		p.ReadEnable = !s.sampled.Write
	}

	s.highDelayed = p.High

	return p
}
