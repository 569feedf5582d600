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

// Package prefs implements the typed preference values used throughout the
// program. Values can be grouped with a Disk instance so that they can be
// saved to and loaded from a file.
//
// Command line overrides are pushed onto a stack with PushCommandLineStack()
// in the form "key::value; key::value". Disk.Load() applies any matching
// override after reading the file, consuming it in the process.
package prefs
