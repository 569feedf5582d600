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

// Package timer implements the two 16 bit interval timers of the CIA. Both
// timers are identical; the differences between Timer A and Timer B are in
// what they count, which is decided by the control package.
//
// A timer is a down counter with a 16 bit reload latch. The counter is
// reloaded from the latch in the same step that the underflow is detected, so
// a timer counting every cycle with a latch value of L underflows every L+1
// cycles.
//
// The timer has two outputs. The underflow pulse is high for the single step
// in which the underflow happens and is what the interrupt controller, the
// serial port and Timer B see. The toggle output flips on every underflow; it
// is set when the timer is started and cleared on reset. Which of the two
// drives the port B pin is decided by the output mode bit of the control
// register.
package timer
