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

package logger

import (
	"io"
)

// the central log is shared by every part of the application.
var central = newLogger(centralSize)

// maximum number of entries kept by the central log. older entries are
// forgotten.
const centralSize = 512

// Log adds an entry to the central log if the permission allows it.
func Log(perm Permission, tag, detail string) {
	if perm.AllowLogging() {
		central.log(tag, detail)
	}
}

// Logf adds a formatted entry to the central log if the permission allows
// it.
func Logf(perm Permission, tag, detail string, args ...any) {
	if perm.AllowLogging() {
		central.log(tag, sprintf(detail, args...))
	}
}

// Clear all entries from the central log.
func Clear() {
	central.clear()
}

// Write every entry in the central log to output.
func Write(output io.Writer) {
	central.tail(output, -1)
}

// Tail writes the last number of entries to output.
func Tail(output io.Writer, number int) {
	central.tail(output, number)
}

// Entries returns a copy of the central log, oldest entry first.
func Entries() []Entry {
	return central.entries()
}

// SetEcho writes new entries to output as they are made. A nil writer turns
// echoing off.
func SetEcho(output io.Writer) {
	central.setEcho(output)
}
