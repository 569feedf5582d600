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

// Package cia emulates the MOS 6526 Complex Interface Adapter and its
// successor the 8521.
//
// The CIA type owns every sub-system of the chip. Each sub-system owns a
// slice of the register file and the sub-systems only communicate through
// pulses and mode bits passed between them by the Step() function. Step()
// advances the chip by one bus cycle. The bus cycle is evaluated as a rising
// and a falling edge of PHI2: the bus is sampled on the rising edge and the
// sub-systems are updated on the falling edge. A value returned by a read is
// the value of the register as it was before the update.
//
// The Read(), Write() and Idle() functions are convenience wrappers around
// Step() for the common case of a single bus transaction. Pins are set and
// queried with SetPin(), Pin(), SetPort() and Port().
//
// Peek() returns the value of a register without the side effects of a read,
// and Snapshot() returns an independent copy of the chip. Neither is part of
// the emulated hardware.
package cia
