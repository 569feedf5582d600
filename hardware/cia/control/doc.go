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

// Package control implements the two control registers of the CIA, CRA and
// CRB, and derives from them the signals that drive the two timers.
//
// The force-load bit is a strobe. It is never read back and it does not take
// effect on the step it is written. Instead it is stored and the reload
// happens on the following step. Two consecutive writes to a control register
// therefore see the force-load of the first write applied while the second
// write is being committed.
//
// A timer in one-shot mode has its start bit cleared by the underflow. A
// write to the control register on the same step takes priority.
package control
