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

package clocks

import (
	"github.com/jetsetilly/gopher6526/curated"
)

// Range of frequencies accepted by NewTODGenerator(), in Hz.
const (
	MinTODFrequency = 1
	MaxTODFrequency = 1000000
)

// SubSteps is the number of time steps the generator advances for every bus
// cycle.
const SubSteps = 8

// length of one sub-step in picoseconds. eight sub-steps make up one cycle of
// the Nominal bus clock.
const subStep = 125000

const picoseconds = 1000000000000

// InvalidTODFrequency is returned by NewTODGenerator().
const InvalidTODFrequency = "clocks: tod frequency out of range (%d)"

// TODGenerator produces a square wave suitable for driving the TOD pin.
type TODGenerator struct {
	frequency int

	// half the period of the wave in picoseconds
	half  uint64
	count uint64
	level bool
}

// NewTODGenerator is the preferred method of initialisation for the
// TODGenerator type.
func NewTODGenerator(frequency int) (*TODGenerator, error) {
	if frequency < MinTODFrequency || frequency > MaxTODFrequency {
		return nil, curated.Errorf(InvalidTODFrequency, frequency)
	}
	return &TODGenerator{
		frequency: frequency,
		half:      uint64(picoseconds / float64(frequency) / 2),
	}, nil
}

// Frequency returns the frequency of the generated wave.
func (gen *TODGenerator) Frequency() int {
	return gen.frequency
}

// Reset the generator to the start of a low half period.
func (gen *TODGenerator) Reset() {
	gen.count = 0
	gen.level = false
}

// Advance the generator by one bus cycle. Returns the level of the output at
// the end of the cycle.
//
// Frequencies above half the bus clock alias because the output is only
// observed once per cycle.
func (gen *TODGenerator) Advance() bool {
	for range SubSteps {
		gen.count += subStep
		if gen.count >= gen.half {
			gen.count -= gen.half
			gen.level = !gen.level
		}
	}
	return gen.level
}

// Level returns the current output level.
func (gen *TODGenerator) Level() bool {
	return gen.level
}
