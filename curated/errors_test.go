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

package curated_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jetsetilly/gopher6526/curated"
	"github.com/jetsetilly/gopher6526/test"
)

const testPattern = "test error: %v"
const wrapPattern = "wrapped: %v"

func TestIsAndHas(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, wrapPattern))

	f := curated.Errorf(wrapPattern, e)
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, wrapPattern))

	// plain errors are not curated
	p := fmt.Errorf("plain")
	test.ExpectFailure(t, curated.IsAny(p))
	test.ExpectFailure(t, curated.Has(p, testPattern))
	test.ExpectFailure(t, curated.IsAny(nil))
}

func TestDeduplication(t *testing.T) {
	e := curated.Errorf("cia: %v", curated.Errorf("cia: no such pin"))
	test.ExpectEquality(t, e.Error(), "cia: no such pin")

	e = curated.Errorf("transcript: %v", curated.Errorf("transcript: %v", curated.Errorf("line 3")))
	test.ExpectEquality(t, e.Error(), "transcript: line 3")

	// non-adjacent repeats are kept
	e = curated.Errorf("a: b: a")
	test.ExpectEquality(t, e.Error(), "a: b: a")
}

func TestUnwrap(t *testing.T) {
	sentinel := errors.New("sentinel")
	e := curated.Errorf(wrapPattern, sentinel)
	test.ExpectSuccess(t, errors.Is(e, sentinel))
}
