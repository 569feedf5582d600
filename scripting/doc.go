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

// Package scripting runs Lua scripts that drive a CIA instance. Scripts are
// an alternative to transcripts when the stimulus is easier to describe with
// a loop than with a list of lines.
//
// The following functions are available to the script in the cia table:
//
//	cia.read(reg)            read register, taking one cycle
//	cia.write(reg, value)    write register, taking one cycle
//	cia.peek(reg)            register value without side effects
//	cia.step([n])            wait n cycles (default 1)
//	cia.pin(name)            level of an output pin
//	cia.setpin(name, level)  set the level of an input pin
//	cia.port(name)           levels driven on to port PA or PB
//	cia.setport(name, value) set the input levels of port PA or PB
//	cia.irq()                true if the IRQ pin is asserted
//	cia.reset()              assert reset for one cycle
//	cia.cycles()             number of cycles since the chip was created
//
// Registers can be given by address or by name (eg. "ICR"). The global
// functions print() and log() write to the script output and to the central
// logger respectively.
package scripting
