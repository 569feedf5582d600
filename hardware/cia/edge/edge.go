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

// Package edge implements the edge detectors used on the CNT, TOD and /FLAG
// input pins. A pin level is sampled once per bus cycle and compared with the
// previous sample. At most one transition is reported per sample.
package edge

// Edge is the transition detected by a Detector.
type Edge int

// List of valid Edge values.
const (
	None Edge = iota
	Rising
	Falling
)

func (e Edge) String() string {
	switch e {
	case Rising:
		return "rising"
	case Falling:
		return "falling"
	}
	return "none"
}

// Detector synchronises an external level to the bus clock.
type Detector struct {
	level bool
}

// NewDetector is the preferred method of initialisation for the Detector
// type. The idle level is the level the pin is assumed to have before the
// first sample.
func NewDetector(idle bool) Detector {
	return Detector{level: idle}
}

// Sample the pin. Returns the transition since the previous sample.
func (d *Detector) Sample(level bool) Edge {
	prev := d.level
	d.level = level
	switch {
	case level && !prev:
		return Rising
	case !level && prev:
		return Falling
	}
	return None
}

// Level returns the most recently sampled level.
func (d Detector) Level() bool {
	return d.level
}

// Reset forces the sampled level without reporting a transition.
func (d *Detector) Reset(level bool) {
	d.level = level
}
