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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function. The first argument
// is a pattern string and it is the pattern that identifies the error:
//
//	const UnknownPin = "cia: no such pin (%s)"
//
//	func pinByName(name string) (Pin, error) {
//		...
//		return 0, curated.Errorf(UnknownPin, name)
//	}
//
// The Is() function answers whether an error was created with a specific
// pattern. The Has() function answers the same question for every curated
// error wrapped in the values of the error, recursively:
//
//	err := curated.Errorf("transcript: line %d: %v", 10, pinErr)
//	curated.Has(err, cia.UnknownPin) == true
//
// The Error() implementation normalises the error chain, so that repeated
// adjacent parts are printed once. Wrapping an error with the same prefix as
// the error being wrapped is therefore harmless:
//
//	transcript: transcript: invalid op (X)
//
// is printed as:
//
//	transcript: invalid op (X)
//
// Sentinel patterns should be stored as exported string constants in the
// package that produces them.
package curated
