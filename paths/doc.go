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

// Package paths contains functions to prepare paths to gopher6526 resources.
//
// The ResourcePath() function prepends the supplied resource with the
// appropriate config directory. For example, the following returns the path
// to the list of failed comparisons.
//
//	pth, err := paths.ResourcePath("regression", "fails")
//
// If the base resource path ".gopher6526" is present in the program's current
// directory then that is the base path that will be used. Otherwise the
// user's config directory, as returned by os.UserConfigDir(), is used. On a
// modern Linux system the path in the example above would be:
//
//	/home/user/.config/gopher6526/regression/fails
package paths
