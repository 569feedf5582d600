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

// Package ports implements the two parallel ports of the CIA.
//
// Each port has a data register and a data direction register (DDR). A bit
// set in the DDR makes the corresponding pin an output. Reading a data
// register returns the data register for output bits and the level of the pin
// for input bits. Input pins are latched once per bus cycle so a change to a
// pin is visible to a read on the following cycle.
//
// Bits 6 and 7 of port B can be taken over by the outputs of Timer A and
// Timer B. The override replaces the data bit and forces the bit to be an
// output regardless of the DDR.
//
// The /PC pin is asserted for one cycle after any access of the port B data
// register. Accesses on consecutive cycles stretch the pulse.
package ports
