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

// Package serial implements the serial port of the CIA.
//
// In output mode the port is clocked by the underflow of Timer A. Every
// underflow toggles the CNT pin, so that one bit takes two underflows. The
// most significant bit of the shift register is presented on the SP pin when
// CNT falls and the register is shifted when CNT rises. In input mode each
// rising edge on the CNT pin shifts the level of the SP pin into the least
// significant bit.
//
// The number of shifts is counted by a 4-bit Johnson counter, which returns
// to zero after eight shifts. Completion of a byte produces a single pulse
// for the interrupt controller.
//
// A write to the data register while a byte is being sent is held until the
// byte completes. A write on the same step as a completion takes priority
// over the reload from the held value and over the transfer of a received
// byte.
package serial
