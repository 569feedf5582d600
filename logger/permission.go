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

import "fmt"

// Permission implementations decide whether a log request is honoured. A
// component that is stepped many times a second can use a Permission to keep
// its logging quiet while it is being driven at full speed.
type Permission interface {
	AllowLogging() bool
}

type fixed bool

func (p fixed) AllowLogging() bool {
	return bool(p)
}

// The two fixed permissions.
var (
	Allow Permission = fixed(true)
	Deny  Permission = fixed(false)
)

func sprintf(detail string, args ...any) string {
	if len(args) == 0 {
		return detail
	}
	return fmt.Sprintf(detail, args...)
}
