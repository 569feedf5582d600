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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes (and sub-modes) and allows different
// flags for each mode.
//
// Arguments are given to NewArgs() and then Parse() is called with no
// arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "COMPARE")
//	p, err := md.Parse()
//
// After Parse() the selected mode is returned by Mode(). The first sub-mode
// added is the default and is selected if the first non-flag argument does
// not name a sub-mode. Sub-mode comparisons are case insensitive.
//
// Each mode then starts with a call to NewMode(), adds its own flags and
// calls Parse() again:
//
//	md.NewMode()
//	model := md.AddString("model", "8521", "chip model")
//	p, err = md.Parse()
//	...
//	filename := md.GetArg(0)
//
// Modes can be chained as deep as required. Path() returns the list of
// selected modes, which is used as the banner of the help message printed
// when the -help flag is given.
package modalflag
