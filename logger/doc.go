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

// Package logger is the central log for the application. Entries are tagged
// with the part of the program making the entry and repeated entries are
// folded into a single entry with a repeat count.
//
// The number of entries is capped and older entries are discarded. The log
// can be echoed to an io.Writer as entries are made, which is how the command
// line tool shows the log when the -log flag is given.
//
// Entries are only made if the Permission argument allows it. The Allow
// value can be used for entries that should always be made.
package logger
