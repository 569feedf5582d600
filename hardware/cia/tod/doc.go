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

// Package tod implements the time-of-day clock of the CIA.
//
// The clock counts tenths of a second, seconds, minutes and hours in BCD.
// Bit 7 of the hours register is the PM flag. The clock is advanced by a
// divided 50Hz or 60Hz reference on the TOD pin.
//
// Writing the hours register stops the clock and writing the tenths register
// starts it again. Reading the hours register freezes the values returned by
// all four registers until the tenths register is read. This allows software
// to set and read the time without the clock advancing part way through.
//
// Two quirks of the real chip are reproduced. Writing 12 to the hours
// register inverts the PM flag. After 12:59:59.9 the clock advances to
// 01:00:00.0 and the PM flag is inverted.
//
// When the alarm select bit of CRB is set, writes to the four registers set
// the alarm instead. The alarm is not readable. A single pulse is produced
// for the interrupt controller on the step the clock becomes equal to the
// alarm.
package tod
