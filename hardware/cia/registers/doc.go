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

// Package registers names the sixteen registers of the CIA and converts
// between addresses, names and the Register type. It knows nothing about what
// the registers do; each register is owned by exactly one of the sub-system
// packages.
//
// The address field of the bus is four bits wide so every value from 0x0 to
// 0xf is a valid register. Addresses from outside that range are a caller
// error and are rejected by FromAddress() and Parse() with the
// UnknownRegister pattern.
package registers
