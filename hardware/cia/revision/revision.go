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

// Package revision identifies the chip variant being emulated. The variants
// differ in the timing of the interrupt controller: the original 6526 latches
// interrupt sources one cycle later than the 6526A/8521, which exposes a
// window where reading the ICR loses the interrupt.
package revision

import (
	"strings"

	"github.com/jetsetilly/gopher6526/curated"
)

// UnknownModel is the curated error pattern for unrecognised model names.
const UnknownModel = "revision: unknown model (%s)"

// Model of the CIA.
type Model int

// List of valid Model values.
const (
	MOS6526 Model = iota
	MOS8521
)

// Default is the model used when none is specified.
const Default = MOS8521

// ModelList is the list of model names accepted by ParseModel().
var ModelList = []string{"6526", "8521"}

func (m Model) String() string {
	switch m {
	case MOS6526:
		return "6526"
	case MOS8521:
		return "8521"
	}
	return "unknown"
}

// ParseModel converts a string to a Model. The strings "6526A" and "8520"
// are accepted as aliases for the 8521 because they share its interrupt
// timing.
func ParseModel(s string) (Model, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "6526", "MOS6526":
		return MOS6526, nil
	case "8521", "MOS8521", "6526A", "8520":
		return MOS8521, nil
	}
	return Default, curated.Errorf(UnknownModel, s)
}

// InterruptDelay returns the number of additional cycles between an interrupt
// source pulse and the corresponding ICR flag being set.
func (m Model) InterruptDelay() int {
	if m == MOS6526 {
		return 1
	}
	return 0
}
