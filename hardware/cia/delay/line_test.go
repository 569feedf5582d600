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

package delay_test

import (
	"testing"

	"github.com/jetsetilly/gopher6526/hardware/cia/delay"
	"github.com/jetsetilly/gopher6526/test"
)

func TestPassThrough(t *testing.T) {
	l := delay.NewLine(0)
	test.ExpectEquality(t, l.Tick(0x1f), 0x1f)
	test.ExpectEquality(t, l.Tick(0x00), 0x00)
	test.ExpectEquality(t, l.Pending(), 0x00)
}

func TestDelay(t *testing.T) {
	l := delay.NewLine(2)
	test.ExpectEquality(t, l.Tick(0x01), 0x00)
	test.ExpectEquality(t, l.Tick(0x02), 0x00)
	test.ExpectEquality(t, l.Peek(), 0x01)
	test.ExpectEquality(t, l.Pending(), 0x03)
	test.ExpectEquality(t, l.Tick(0x00), 0x01)
	test.ExpectEquality(t, l.Tick(0x00), 0x02)
	test.ExpectEquality(t, l.Tick(0x00), 0x00)
}

func TestReset(t *testing.T) {
	l := delay.NewLine(1)
	l.Tick(0xff)
	test.ExpectEquality(t, l.Pending(), 0xff)
	l.Reset()
	test.ExpectEquality(t, l.Tick(0x00), 0x00)
}

func TestClamp(t *testing.T) {
	test.ExpectEquality(t, delay.NewLine(-1).Len(), 0)
	test.ExpectEquality(t, delay.NewLine(100).Len(), delay.MaxLength)
}
