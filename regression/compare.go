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

package regression

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Difference is a line of output that does not match the reference.
type Difference struct {
	Line     int
	Expected string
	Got      string
}

func (d Difference) String() string {
	return fmt.Sprintf("line %d: expected %q got %q", d.Line, d.Expected, d.Got)
}

// Result of a comparison.
type Result struct {
	// number of lines compared. the longer of the two transcripts
	Lines int

	Differences []Difference
}

// Passed returns true if there are no differences.
func (r Result) Passed() bool {
	return len(r.Differences) == 0
}

func (r Result) String() string {
	if r.Passed() {
		return fmt.Sprintf("%d lines match", r.Lines)
	}
	return fmt.Sprintf("%d of %d lines differ", len(r.Differences), r.Lines)
}

// Write the first limit differences to the output. A limit of zero or less
// writes all differences.
func (r Result) Write(output io.Writer, limit int) {
	for i, d := range r.Differences {
		if limit > 0 && i >= limit {
			fmt.Fprintf(output, "... and %d more\n", len(r.Differences)-limit)
			return
		}
		fmt.Fprintf(output, "%s\n", d)
	}
}

// Compare two transcripts line by line. Trailing whitespace is ignored. A
// line missing from either transcript is a difference.
func Compare(reference io.Reader, output io.Reader) (Result, error) {
	exp, err := readLines(reference)
	if err != nil {
		return Result{}, err
	}
	got, err := readLines(output)
	if err != nil {
		return Result{}, err
	}

	res := Result{Lines: max(len(exp), len(got))}
	for i := range res.Lines {
		var e, g string
		if i < len(exp) {
			e = exp[i]
		}
		if i < len(got) {
			g = got[i]
		}
		if e != g {
			res.Differences = append(res.Differences, Difference{
				Line:     i + 1,
				Expected: e,
				Got:      g,
			})
		}
	}

	return res, nil
}

func readLines(r io.Reader) ([]string, error) {
	var l []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		l = append(l, strings.TrimRight(scanner.Text(), " \t\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("regression: %w", err)
	}

	// trailing blank lines are not significant
	for len(l) > 0 && l[len(l)-1] == "" {
		l = l[:len(l)-1]
	}

	return l, nil
}
