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

// Package bus implements the bus sequencer of the CIA. The sequencer turns the
// external two-phase clock (PHI2) and the chip select, read/write, address
// and data lines into the strobes that the sub-systems of the chip use to
// update their registers.
//
// The external bus lines are sampled on the rising edge of PHI2 and are held
// for the remainder of the cycle. The read and write enables are formed as
// "selected AND direction AND delayed-phase-high", which means they are only
// asserted on internal steps after the one where PHI2 rose. In practice, with
// one internal step per phase, this means that the enables are asserted on
// the falling edge of PHI2. This is when the CPU samples read data and when
// written data is committed to registers.
//
// Read data is the OR of every sub-system's register slice, where only the
// slice owning the selected register drives a non-zero value. The CIA type
// in the parent package does that multiplexing.
package bus
