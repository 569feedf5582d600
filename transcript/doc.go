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

// Package transcript replays stimulus transcripts against the CIA and
// produces output transcripts in the same format.
//
// A transcript is a sequence of lines of the form:
//
//	<cycles> <op> <target> <value>
//
// Cycles is the number of bus cycles to wait before the operation. Op is one
// of R, W or I. The target is either a register address (a single hex digit
// or a register name), a port name (PA or PB) or a pin name. Values are
// hexadecimal. Pin values are limited to 0 or 1.
//
// Register reads and writes take one bus cycle. That cycle counts towards the
// wait of the following line. Pin and port operations take no time.
//
// Lines with the I op carry only a wait. Whenever the IRQ pin falls during
// a wait, a line of the form
//
//	<cycles> I D <icr>
//
// is written to the output, where cycles is the number of cycles since the
// previous interrupt in the same wait and icr is the value of the interrupt
// control register at that moment. The remainder of the wait of an I line is
// carried over to the next line.
//
// The Player type performs the replay. Before the first line the chip is
// reset for one cycle with all input pins low.
package transcript
