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

package bus

import "strings"

// PhaseClock tracks the edges of the two-phase bus clock.
type PhaseClock int

// the two halves of a bus cycle. PHI1 is the inverse of PHI2
const (
	phi2Low PhaseClock = iota
	phi2High
)

func (clk PhaseClock) String() string {
	s := strings.Builder{}
	switch clk {
	case phi2Low:
		s.WriteString("__.--*")
	case phi2High:
		s.WriteString("__*--.")
	}
	return s.String()
}

// Tick advances the clock to the next phase.
func (clk *PhaseClock) Tick() {
	switch *clk {
	case phi2Low:
		*clk = phi2High
	case phi2High:
		*clk = phi2Low
	}
}

// Follow moves the clock to the phase given by the level of PHI2. The return
// values report whether the move was a rising or a falling edge.
func (clk *PhaseClock) Follow(phi2 bool) (rise bool, fall bool) {
	if phi2 == clk.High() {
		return false, false
	}
	clk.Tick()
	return phi2, !phi2
}

// High returns true if the clock is in the PHI2 high phase.
func (clk PhaseClock) High() bool {
	return clk == phi2High
}
