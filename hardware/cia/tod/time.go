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

package tod

import (
	"fmt"

	"github.com/jetsetilly/gopher6526/hardware/cia/bcd"
)

// Masks of the bits that exist in each register.
const (
	TenthsMask  uint8 = 0x0f
	SecondsMask uint8 = 0x7f
	MinutesMask uint8 = 0x7f
	HoursMask   uint8 = 0x9f
)

// PM is the bit in the hours register indicating the afternoon.
const PM uint8 = 0x80

// Time is the value of the clock or of the alarm. Each field is BCD.
type Time struct {
	Tenths  uint8
	Seconds uint8
	Minutes uint8
	Hours   uint8
}

// Midnight is the value of the clock after reset.
var Midnight = Time{Hours: 0x01}

func (t Time) String() string {
	ampm := "AM"
	if t.Hours&PM == PM {
		ampm = "PM"
	}
	return fmt.Sprintf("%02x:%02x:%02x.%x %s", t.Hours&^PM, t.Minutes, t.Seconds, t.Tenths, ampm)
}

// Tick advances the time by one tenth of a second.
func (t Time) Tick() Time {
	var carry bool

	t.Tenths, carry = bcd.Digit(t.Tenths&TenthsMask, 9, TenthsMask)
	if !carry {
		return t
	}

	t.Seconds, carry = bcd.Increment(t.Seconds, 5, 0x07)
	if !carry {
		return t
	}

	t.Minutes, carry = bcd.Increment(t.Minutes, 5, 0x07)
	if !carry {
		return t
	}

	pm := t.Hours & PM
	hr := t.Hours &^ PM
	if hr == 0x12 {
		t.Hours = 0x01 | (pm ^ PM)
	} else {
		hr, _ = bcd.Increment(hr, 1, 0x01)
		t.Hours = hr | pm
	}

	return t
}
