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
	"strings"

	"github.com/jetsetilly/gopher6526/hardware/cia/bus"
	"github.com/jetsetilly/gopher6526/hardware/cia/edge"
	"github.com/jetsetilly/gopher6526/hardware/cia/registers"
)

// Input to the clock for a single step.
type Input struct {
	Phase bus.Phase

	// the transition on the TOD pin this step
	Edge edge.Edge

	// the TODIN bit of CRA. divide the reference by 5 rather than 6
	FiftyHz bool

	// the ALARM bit of CRB. writes set the alarm
	AlarmSelect bool
}

// Clock is the TOD clock.
type Clock struct {
	Time  Time
	Alarm Time

	// Running is false between a write to the hours register and a write to
	// the tenths register
	Running bool

	// values returned by reads while latched
	latched  bool
	snapshot Time

	// count of reference edges
	divider int

	// the clock was equal to the alarm at the end of the previous step
	match bool
}

// NewClock is the preferred method of initialisation for the Clock type.
func NewClock() *Clock {
	c := &Clock{}
	c.Reset()
	return c
}

func (c Clock) String() string {
	s := strings.Builder{}
	s.WriteString(c.Time.String())
	if !c.Running {
		s.WriteString(" stopped")
	}
	if c.latched {
		s.WriteString(fmt.Sprintf(" latched=%s", c.snapshot))
	}
	s.WriteString(fmt.Sprintf(" alarm=%s", c.Alarm))
	return s.String()
}

// Reset the clock to 01:00:00.0 AM. The clock is running after reset.
func (c *Clock) Reset() {
	c.Time = Midnight
	c.Alarm = Time{}
	c.Running = true
	c.latched = false
	c.snapshot = Time{}
	c.divider = 0
	c.match = false
}

// Read returns the value of one of the four TOD registers. Returns zero for
// any other register.
func (c Clock) Read(reg registers.Register) uint8 {
	t := c.Time
	if c.latched {
		t = c.snapshot
	}

	switch reg {
	case registers.TOD10THS:
		return t.Tenths
	case registers.TODSEC:
		return t.Seconds
	case registers.TODMIN:
		return t.Minutes
	case registers.TODHR:
		return t.Hours
	}
	return 0
}

// Step advances the clock by one bus cycle. Returns true if the clock has
// become equal to the alarm.
func (c *Clock) Step(in Input) bool {
	p := in.Phase
	if p.Reset {
		c.Reset()
		return false
	}

	if p.Read(registers.TODHR) && !c.latched {
		c.latched = true
		c.snapshot = c.Time
	}
	if p.Read(registers.TOD10THS) {
		c.latched = false
	}

	written := c.write(p, in.AlarmSelect)

	if c.Running && !written && in.Edge == edge.Rising {
		c.divider++
		if (in.FiftyHz && c.divider >= 5) || c.divider >= 6 {
			c.divider = 0
			c.Time = c.Time.Tick()
		}
	}

	match := c.Time == c.Alarm
	pulse := match && !c.match
	c.match = match

	return pulse
}

// write commits a write to the TOD registers. Returns true if the clock (as
// opposed to the alarm) was written.
func (c *Clock) write(p bus.Phase, alarm bool) bool {
	if !p.WriteEnable || !p.Address.InRange(registers.TOD10THS, registers.TODHR) {
		return false
	}

	t := &c.Time
	if alarm {
		t = &c.Alarm
	}

	switch p.Address {
	case registers.TOD10THS:
		t.Tenths = p.WriteData & TenthsMask
		if !alarm {
			c.Running = true
			c.divider = 0
		}
	case registers.TODSEC:
		t.Seconds = p.WriteData & SecondsMask
	case registers.TODMIN:
		t.Minutes = p.WriteData & MinutesMask
	case registers.TODHR:
		v := p.WriteData & HoursMask
		if !alarm {
			if v&^PM == 0x12 {
				v ^= PM
			}
			c.Running = false
		}
		t.Hours = v
	default:
		return false
	}

	return !alarm
}
