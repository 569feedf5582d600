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

package serial

import (
	"fmt"

	"github.com/jetsetilly/gopher6526/hardware/cia/edge"
)

// Input to the serial port for a single step.
type Input struct {
	Reset bool

	// the SPMODE bit of CRA. true for output
	Output bool

	// a write to the data register this step
	Write bool
	Data  uint8

	// the underflow pulse from Timer A
	Underflow bool

	// transition and level of the CNT and SP input pins
	CNT edge.Edge
	SP  bool
}

// Serial is the serial port.
type Serial struct {
	// Data is the serial data register. The value returned by a read of SDR
	Data uint8

	// Shift is the shift register
	Shift uint8

	// 4-bit Johnson counter. zero when idle
	counter uint8

	// mode of the port as of the previous step
	output bool

	// a byte is being sent
	active bool

	// a byte has been written while another is being sent
	pending bool

	// levels driven on to the CNT and SP pins in output mode
	cnt bool
	sp  bool
}

// NewSerial is the preferred method of initialisation for the Serial type.
func NewSerial() *Serial {
	s := &Serial{}
	s.Reset()
	return s
}

func (s Serial) String() string {
	return fmt.Sprintf("SDR=%02x shift=%02x bits=%d", s.Data, s.Shift, s.Bits())
}

// Reset the serial port.
func (s *Serial) Reset() {
	s.Data = 0
	s.Shift = 0
	s.output = false
	s.idle()
}

func (s *Serial) idle() {
	s.counter = 0
	s.active = false
	s.pending = false
	s.cnt = true
	s.sp = true
}

// johnson returns the next state of a 4-bit Johnson counter. The counter
// visits eight states before returning to zero.
func johnson(c uint8) uint8 {
	return (c<<1 | (^c>>3)&0x01) & 0x0f
}

// shifted advances the bit counter and returns true if a byte is complete.
func (s *Serial) shifted() bool {
	s.counter = johnson(s.counter)
	return s.counter == 0
}

// Step advances the serial port by one bus cycle. Returns true if a byte was
// completed.
func (s *Serial) Step(in Input) bool {
	if in.Reset {
		s.Reset()
		return false
	}

	if in.Output != s.output {
		s.output = in.Output
		s.idle()
	}

	if s.output {
		return s.send(in)
	}
	return s.receive(in)
}

func (s *Serial) send(in Input) bool {
	var complete bool

	if s.active && in.Underflow {
		s.cnt = !s.cnt
		if s.cnt {
			s.Shift <<= 1
			complete = s.shifted()
		} else {
			s.sp = s.Shift&0x80 == 0x80
		}
	}

	if in.Write {
		s.Data = in.Data
		if s.active && !complete {
			s.pending = true
		} else {
			s.Shift = in.Data
			s.active = true
			s.pending = false
		}
	} else if complete {
		if s.pending {
			s.Shift = s.Data
			s.pending = false
		} else {
			s.active = false
		}
	}

	return complete
}

func (s *Serial) receive(in Input) bool {
	var complete bool

	if in.CNT == edge.Rising {
		s.Shift <<= 1
		if in.SP {
			s.Shift |= 0x01
		}
		complete = s.shifted()
	}

	if in.Write {
		s.Data = in.Data
	} else if complete {
		s.Data = s.Shift
	}

	return complete
}

// Read returns the value of the data register.
func (s Serial) Read() uint8 {
	return s.Data
}

// Active returns true if a byte is being sent.
func (s Serial) Active() bool {
	return s.active
}

// Bits returns the number of bits shifted in the current byte.
func (s Serial) Bits() int {
	switch s.counter {
	case 0x0:
		return 0
	case 0x1:
		return 1
	case 0x3:
		return 2
	case 0x7:
		return 3
	case 0xf:
		return 4
	case 0xe:
		return 5
	case 0xc:
		return 6
	case 0x8:
		return 7
	}
	return 0
}

// CNT returns the level driven on the CNT pin. The pin is only driven in
// output mode. In input mode the pin is released and reads high.
func (s Serial) CNT() bool {
	if !s.output {
		return true
	}
	return s.cnt
}

// SP returns the level driven on the SP pin. As with CNT, the pin is
// released in input mode.
func (s Serial) SP() bool {
	if !s.output {
		return true
	}
	return s.sp
}
