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
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Entry is a single line in the log. Consecutive identical entries are
// folded into one entry.
type Entry struct {
	Time     time.Time
	Tag      string
	Detail   string
	Repeated int
}

func (e Entry) String() string {
	if e.Repeated > 0 {
		return fmt.Sprintf("%s: %s (repeat x%d)\n", e.Tag, e.Detail, e.Repeated+1)
	}
	return fmt.Sprintf("%s: %s\n", e.Tag, e.Detail)
}

// logger is a fixed size ring of entries. the package level functions log to
// the central instance.
type logger struct {
	crit sync.Mutex

	ring []Entry

	// index of the oldest entry and the number of entries in the ring
	head  int
	count int

	echo io.Writer
}

func newLogger(size int) *logger {
	return &logger{
		ring: make([]Entry, size),
	}
}

// entry returns a pointer to the i'th oldest entry.
func (l *logger) entry(i int) *Entry {
	return &l.ring[(l.head+i)%len(l.ring)]
}

func (l *logger) log(tag, detail string) {
	l.crit.Lock()
	defer l.crit.Unlock()

	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	var e *Entry
	if l.count > 0 {
		e = l.entry(l.count - 1)
	}

	if e != nil && e.Tag == tag && e.Detail == detail {
		e.Repeated++
		e.Time = time.Now()
	} else {
		if l.count == len(l.ring) {
			l.head = (l.head + 1) % len(l.ring)
		} else {
			l.count++
		}
		e = l.entry(l.count - 1)
		*e = Entry{Time: time.Now(), Tag: tag, Detail: detail}
	}

	if l.echo != nil {
		io.WriteString(l.echo, e.String())
	}
}

func (l *logger) clear() {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.head = 0
	l.count = 0
}

// tail writes the most recent entries. a negative number writes every entry.
func (l *logger) tail(output io.Writer, number int) {
	l.crit.Lock()
	defer l.crit.Unlock()

	if number < 0 || number > l.count {
		number = l.count
	}

	for i := l.count - number; i < l.count; i++ {
		io.WriteString(output, l.entry(i).String())
	}
}

func (l *logger) entries() []Entry {
	l.crit.Lock()
	defer l.crit.Unlock()

	e := make([]Entry, l.count)
	for i := range e {
		e[i] = *l.entry(i)
	}
	return e
}

func (l *logger) setEcho(output io.Writer) {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.echo = output
}
