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

// Package interrupt implements the interrupt control register (ICR) of the
// CIA.
//
// Each of the five interrupt sources sets a flag. The flags are latched until
// the ICR is read, at which point both the flags and the IRQ latch are
// cleared. The IRQ latch is set on any step where a flag is set that is also
// enabled in the mask. The mask is write-only and is modified with the
// set/clear convention: bit 7 of the written value decides whether the other
// bits set or clear the corresponding mask bits.
//
// On the MOS6526 the source pulses pass through an additional one cycle delay
// before reaching the flags. A source pulse that arrives on the same step as
// an ICR read is lost. On the MOS8521 a source pulse on the same step as a
// read survives the read.
package interrupt
