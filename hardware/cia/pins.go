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

package cia

import (
	"strings"

	"github.com/jetsetilly/gopher6526/curated"
)

// UnknownPin is the curated error pattern for names and values that do not
// refer to a pin, or for pins used in the wrong direction.
const UnknownPin = "cia: no such pin (%v)"

// UnknownPort is the curated error pattern for names that do not refer to a
// parallel port.
const UnknownPort = "cia: no such port (%v)"

// Pin is one of the single bit pins of the CIA.
type Pin int

// List of valid Pin values.
const (
	// RES is the active low reset input
	RES Pin = iota

	// SP and CNT are bidirectional. Setting the pin sets the level driven by
	// the outside world. Querying the pin returns the level driven by the CIA
	SP
	CNT

	// TOD and FLAG are inputs only
	TOD
	FLAG

	// IRQ and PC are active low outputs
	IRQ
	PC
)

var pinNames = []string{"RES", "SP", "CNT", "TOD", "FLAG", "IRQ", "PC"}

func (pin Pin) String() string {
	if pin < 0 || int(pin) >= len(pinNames) {
		return "unknown"
	}
	return pinNames[pin]
}

// Input returns true if the pin can be set.
func (pin Pin) Input() bool {
	switch pin {
	case RES, SP, CNT, TOD, FLAG:
		return true
	}
	return false
}

// Output returns true if the pin can be queried.
func (pin Pin) Output() bool {
	switch pin {
	case SP, CNT, IRQ, PC:
		return true
	}
	return false
}

// ParsePin converts a pin name to a Pin. The name is case insensitive.
func ParsePin(s string) (Pin, error) {
	u := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range pinNames {
		if n == u {
			return Pin(i), nil
		}
	}
	return 0, curated.Errorf(UnknownPin, s)
}

// Port is one of the two parallel ports.
type Port int

// List of valid Port values.
const (
	PA Port = iota
	PB
)

func (port Port) String() string {
	switch port {
	case PA:
		return "PA"
	case PB:
		return "PB"
	}
	return "unknown"
}

// ParsePort converts a port name to a Port. The name is case insensitive.
func ParsePort(s string) (Port, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "PA":
		return PA, nil
	case "PB":
		return PB, nil
	}
	return 0, curated.Errorf(UnknownPort, s)
}

// the levels of the input pins as driven by the outside world.
type inputs struct {
	res  bool
	sp   bool
	cnt  bool
	tod  bool
	flag bool
	pa   uint8
	pb   uint8
}

// all inputs are pulled high when not driven.
func releasedInputs() inputs {
	return inputs{
		res:  true,
		sp:   true,
		cnt:  true,
		tod:  true,
		flag: true,
		pa:   0xff,
		pb:   0xff,
	}
}
