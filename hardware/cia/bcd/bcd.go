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

// Package bcd implements the decimal digit incrementer used by the TOD clock.
//
// The chip does not validate digits. A digit that has been written with a
// value greater than the maximum keeps counting in binary until it wraps
// around the width of its field, without producing a carry. This package
// reproduces that.
package bcd

// Digit increments a single digit. The digit is compared with max, the
// largest value the digit can take before it wraps to zero and produces a
// carry. Otherwise the digit is incremented and wrapped to the field
// described by mask.
func Digit(d uint8, max uint8, mask uint8) (uint8, bool) {
	if d == max {
		return 0, true
	}
	return (d + 1) & mask, false
}

// Increment a two digit BCD value. The low digit counts to nine and the high
// digit counts to tensMax. The width of the high digit field is given by
// tensMask. Bits of v outside the two fields are discarded.
func Increment(v uint8, tensMax uint8, tensMask uint8) (uint8, bool) {
	units, carry := Digit(v&0x0f, 9, 0x0f)
	tens := (v >> 4) & tensMask
	if carry {
		tens, carry = Digit(tens, tensMax, tensMask)
	}
	return tens<<4 | units, carry
}
