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

// Package clocks defines the frequencies of the clocks that surround the CIA.
//
// The bus clock values are those of the machines the chip is commonly found
// in, in MHz. The transcript player assumes the Nominal bus clock.
//
// The TOD pin is normally driven by the mains frequency. The TODGenerator
// type can produce a TOD signal of any frequency in the range
// MinTODFrequency to MaxTODFrequency.
package clocks

// Bus clock frequencies in MHz.
const (
	Nominal = 1.0
	NTSC    = 1.022727
	PAL     = 0.985248
)

// Mains frequencies in Hz.
const (
	Mains50Hz = 50
	Mains60Hz = 60
)
