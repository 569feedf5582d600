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

package delay

import (
	"fmt"
	"strings"
)

// MaxLength is the longest delay that can be modelled by a Line.
const MaxLength = 4

// Line is a fixed length delay line for eight bit values. Each bit can be
// thought of as an independent pulse signal.
type Line struct {
	stages [MaxLength]uint8
	length int
}

// NewLine is the preferred method of initialisation for the Line type. The
// length will be clamped to the range 0 to MaxLength.
func NewLine(length int) Line {
	if length < 0 {
		length = 0
	}
	if length > MaxLength {
		length = MaxLength
	}
	return Line{length: length}
}

func (l Line) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("delay(%d)", l.length))
	for i := 0; i < l.length; i++ {
		s.WriteString(fmt.Sprintf(" %02x", l.stages[i]))
	}
	return s.String()
}

// Len returns the number of cycles of delay.
func (l Line) Len() int {
	return l.length
}

// Tick advances the line by one cycle. The value entering the line is v and
// the value leaving the line is returned.
func (l *Line) Tick(v uint8) uint8 {
	if l.length == 0 {
		return v
	}

	out := l.stages[l.length-1]
	copy(l.stages[1:l.length], l.stages[:l.length-1])
	l.stages[0] = v

	return out
}

// Peek returns the value that will leave the line on the next Tick().
func (l Line) Peek() uint8 {
	if l.length == 0 {
		return 0
	}
	return l.stages[l.length-1]
}

// Pending returns the OR of every value in the line.
func (l Line) Pending() uint8 {
	var p uint8
	for i := 0; i < l.length; i++ {
		p |= l.stages[i]
	}
	return p
}

// Reset empties the line.
func (l *Line) Reset() {
	l.stages = [MaxLength]uint8{}
}
