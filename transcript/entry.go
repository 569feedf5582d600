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

package transcript

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher6526/curated"
	"github.com/jetsetilly/gopher6526/hardware/cia"
	"github.com/jetsetilly/gopher6526/hardware/cia/registers"
)

// Sentinal error patterns. The first value of each pattern is the line
// number.
const (
	InvalidLine      = "transcript: invalid line %d (%s)"
	InvalidOperation = "transcript: invalid operation in line %d (%s)"
	InvalidValue     = "transcript: invalid value in line %d (%s)"
	InvalidAddress   = "transcript: invalid address in line %d (%s)"
	InvalidPin       = "transcript: invalid pin/port name in line %d (%s)"
)

// Op is the operation of a transcript line.
type Op string

// List of valid Op values.
const (
	Read      Op = "R"
	Write     Op = "W"
	Interrupt Op = "I"
)

// Entry is a single line of a transcript.
type Entry struct {
	Line   int
	Cycles int
	Op     Op
	Target string
	Value  string
}

func (e Entry) String() string {
	return fmt.Sprintf("%d %s %s %s", e.Cycles, e.Op, e.Target, e.Value)
}

// ParseEntry splits a transcript line into its fields. Returns false if the
// line is blank. Only the syntax of the line is checked. Targets and values
// are checked when the entry is resolved by the Player.
func ParseEntry(line int, s string) (Entry, bool, error) {
	f := strings.Fields(s)
	if len(f) == 0 {
		return Entry{}, false, nil
	}
	if len(f) != 4 {
		return Entry{}, false, curated.Errorf(InvalidLine, line, s)
	}

	cycles, err := strconv.Atoi(f[0])
	if err != nil || cycles < 0 {
		return Entry{}, false, curated.Errorf(InvalidLine, line, s)
	}

	e := Entry{
		Line:   line,
		Cycles: cycles,
		Op:     Op(f[1]),
		Target: f[2],
		Value:  f[3],
	}

	switch e.Op {
	case Read, Write, Interrupt:
	default:
		return Entry{}, false, curated.Errorf(InvalidOperation, line, f[1])
	}

	return e, true, nil
}

type kind int

const (
	register kind = iota
	port
	pin
)

// access is a resolved R or W entry.
type access struct {
	kind  kind
	reg   registers.Register
	port  cia.Port
	pin   cia.Pin
	value uint8
}

// resolve the target and value of a R or W entry.
func (e Entry) resolve() (access, error) {
	v, err := strconv.ParseUint(e.Value, 16, 8)
	if err != nil {
		return access{}, curated.Errorf(InvalidValue, e.Line, e.Value)
	}
	acc := access{value: uint8(v)}

	// a hexadecimal target is a register address
	if a, err := strconv.ParseUint(e.Target, 16, 64); err == nil {
		if a >= registers.NumRegisters {
			return access{}, curated.Errorf(InvalidAddress, e.Line, e.Target)
		}
		acc.kind = register
		acc.reg = registers.Register(a)
		return acc, nil
	}

	if p, err := cia.ParsePort(e.Target); err == nil {
		acc.kind = port
		acc.port = p
		return acc, nil
	}

	if p, err := cia.ParsePin(e.Target); err == nil {
		if acc.value > 1 {
			return access{}, curated.Errorf(InvalidValue, e.Line, e.Value)
		}
		if (e.Op == Read && !p.Output()) || (e.Op == Write && !p.Input()) {
			return access{}, curated.Errorf(InvalidPin, e.Line, e.Target)
		}
		acc.kind = pin
		acc.pin = p
		return acc, nil
	}

	if r, err := registers.Parse(e.Target); err == nil {
		acc.kind = register
		acc.reg = r
		return acc, nil
	}

	return access{}, curated.Errorf(InvalidPin, e.Line, e.Target)
}

// format an output line. pin values are written as a single bit.
func format(cycles int, op Op, target string, value uint8, bit bool) string {
	if bit {
		return fmt.Sprintf("%d %s %s %d\n", cycles, op, target, value)
	}
	return fmt.Sprintf("%d %s %s %02X\n", cycles, op, target, value)
}
