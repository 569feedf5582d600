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

package registers

import (
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher6526/curated"
)

// UnknownRegister is the curated error pattern for addresses and names that do
// not refer to a CIA register.
const UnknownRegister = "registers: no such register (%v)"

// Register is a CIA register address. Only the lower four bits are
// meaningful.
type Register uint8

// List of valid Register values.
const (
	PRA Register = iota
	PRB
	DDRA
	DDRB
	TALO
	TAHI
	TBLO
	TBHI
	TOD10THS
	TODSEC
	TODMIN
	TODHR
	SDR
	ICR
	CRA
	CRB
)

// NumRegisters is the number of registers in the register file.
const NumRegisters = 16

// Mask is applied to any value before it is used as a register address.
const Mask = 0x0f

var names = [NumRegisters]string{
	"PRA", "PRB", "DDRA", "DDRB",
	"TALO", "TAHI", "TBLO", "TBHI",
	"TOD10THS", "TODSEC", "TODMIN", "TODHR",
	"SDR", "ICR", "CRA", "CRB",
}

func (r Register) String() string {
	return names[r&Mask]
}

// Hex returns the address of the register as a single upper case hex digit.
// This is the form used in transcripts.
func (r Register) Hex() string {
	return strings.ToUpper(strconv.FormatUint(uint64(r&Mask), 16))
}

// FromAddress returns the Register for the numeric address. The address must
// be in the range 0x0 to 0xf.
func FromAddress(address int) (Register, error) {
	if address < 0 || address >= NumRegisters {
		return 0, curated.Errorf(UnknownRegister, address)
	}
	return Register(address), nil
}

// Parse a register from a string. The string can be the canonical register
// name (case insensitive) or the address as a hex number, optionally prefixed
// with "0x" or "$".
func Parse(s string) (Register, error) {
	u := strings.ToUpper(strings.TrimSpace(s))
	for i := range names {
		if names[i] == u {
			return Register(i), nil
		}
	}

	h := strings.TrimPrefix(strings.TrimPrefix(u, "0X"), "$")
	if h == "" {
		return 0, curated.Errorf(UnknownRegister, s)
	}

	v, err := strconv.ParseUint(h, 16, 8)
	if err != nil || v >= NumRegisters {
		return 0, curated.Errorf(UnknownRegister, s)
	}

	return Register(v), nil
}

// InRange returns true if the register is in the range [lo, hi].
func (r Register) InRange(lo, hi Register) bool {
	return r >= lo && r <= hi
}
