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
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/jetsetilly/gopher6526/paths"
)

// the name of the file listing the failures of the most recent run.
const fails = "fails"

// the keyword that is replaced by the previous failures.
const failsKeyword = "FAILS"

var errNoPreviousFails = errors.New("no previous fails")

func saveFails(keys []string) error {
	slices.Sort(keys)
	keys = slices.Compact(keys)

	p, err := paths.ResourcePath(regressionPath, fails)
	if err != nil {
		return fmt.Errorf("save fails: %w", err)
	}

	var s strings.Builder
	for _, k := range keys {
		s.WriteString(k)
		s.WriteString("\n")
	}

	if err := os.WriteFile(p, []byte(s.String()), 0o600); err != nil {
		return fmt.Errorf("save fails: %w", err)
	}

	return nil
}

func loadFails() ([]string, error) {
	p, err := paths.ResourcePath(regressionPath, fails)
	if err != nil {
		return nil, fmt.Errorf("load fails: %w", err)
	}

	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("load fails: %w", err)
	}

	keys := strings.Split(string(b), "\n")
	keys = slices.DeleteFunc(keys, func(s string) bool {
		return len(strings.TrimSpace(s)) == 0
	})
	slices.Sort(keys)

	return slices.Compact(keys), nil
}

// addFailsToKeys replaces the FAILS keyword with the previous failures.
// Returns errNoPreviousFails if the keyword is the only key and there are no
// previous failures.
func addFailsToKeys(keys []string) ([]string, error) {
	n := slices.IndexFunc(keys, func(s string) bool {
		return strings.ToUpper(s) == failsKeyword
	})
	if n < 0 {
		return keys, nil
	}

	keys = slices.Delete(slices.Clone(keys), n, n+1)

	prev, err := loadFails()
	if err != nil {
		return keys, err
	}

	if len(prev) == 0 && len(keys) == 0 {
		return keys, errNoPreviousFails
	}

	keys = append(keys, prev...)
	slices.Sort(keys)

	return slices.Compact(keys), nil
}
