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

// Package delay models signals that arrive a fixed number of cycles after they
// were generated. In the chip these are chains of flip-flops clocked once per
// bus cycle; here they are a short pipeline of values.
//
// A Line of length zero passes values through unchanged, which lets a caller
// select between a delayed and an immediate signal at construction time
// without changing the way the signal is used.
//
//	l := delay.NewLine(1)
//	l.Tick(0x01) // returns 0x00
//	l.Tick(0x00) // returns 0x01
//
// The Line type has no pointers or slices and can be copied freely, which is
// how the CIA snapshot is taken.
package delay
