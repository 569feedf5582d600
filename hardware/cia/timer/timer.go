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

package timer

import (
	"fmt"
)

// ResetValue is the value of both the latch and the counter after reset.
const ResetValue = 0xffff

// Input to the timer for a single step. The control signals are derived by
// the control package.
type Input struct {
	Reset bool

	// writes to the latch bytes
	WriteLo bool
	WriteHi bool
	Data    uint8

	// the counter should decrement this step
	Count bool

	// the start bit of the control register as it was before this step
	Running bool

	// a force-load that was stored on the previous step
	ForceLoad bool

	// the timer has been started by a control register write on this step
	Started bool
}

// Timer implements one of the interval timers of the CIA.
type Timer struct {
	label string

	// Latch is the reload value of the timer
	Latch uint16

	// Counter is the current value of the timer
	Counter uint16

	// the toggle flip-flop
	toggle bool

	// the underflow pulse from the most recent step
	underflow bool
}

// NewTimer is the preferred method of initialisation of the Timer type. The
// label is used only in the String() output.
func NewTimer(label string) *Timer {
	tmr := &Timer{label: label}
	tmr.Reset()
	return tmr
}

func (tmr Timer) String() string {
	return fmt.Sprintf("T%s=%04x latch=%04x tgl=%v", tmr.label, tmr.Counter, tmr.Latch, tmr.toggle)
}

// Reset the timer to its power on state.
func (tmr *Timer) Reset() {
	tmr.Latch = ResetValue
	tmr.Counter = ResetValue
	tmr.toggle = false
	tmr.underflow = false
}

// Step advances the timer by one bus cycle. Returns true if the timer
// underflowed.
func (tmr *Timer) Step(in Input) bool {
	if in.Reset {
		tmr.Reset()
		return false
	}

	// latch writes take effect immediately so that a high byte write on a
	// stopped timer reloads the counter with the new value
	if in.WriteLo {
		tmr.Latch = (tmr.Latch & 0xff00) | uint16(in.Data)
	}
	if in.WriteHi {
		tmr.Latch = (tmr.Latch & 0x00ff) | uint16(in.Data)<<8
	}

	tmr.underflow = tmr.Counter == 0 && in.Count

	if tmr.underflow || in.ForceLoad || (in.WriteHi && !in.Running) {
		tmr.Counter = tmr.Latch
	} else if in.Count {
		tmr.Counter--
	}

	if in.Started {
		tmr.toggle = true
	}
	if tmr.underflow {
		tmr.toggle = !tmr.toggle
	}

	return tmr.underflow
}

// Underflow returns true if the most recent step was an underflow.
func (tmr Timer) Underflow() bool {
	return tmr.underflow
}

// Output returns the level of the timer output. In toggle mode this is the
// toggle flip-flop, otherwise it is the underflow pulse.
func (tmr Timer) Output(toggle bool) bool {
	if toggle {
		return tmr.toggle
	}
	return tmr.underflow
}

// Read returns the low or high byte of the counter.
func (tmr Timer) Read(hi bool) uint8 {
	if hi {
		return uint8(tmr.Counter >> 8)
	}
	return uint8(tmr.Counter)
}
