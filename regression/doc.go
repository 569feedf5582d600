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

// Package regression compares the output of the transcript player with
// reference captures.
//
// A regression test is a stimulus transcript and a reference capture. The
// reference for a stimulus file is found by replacing the extension of the
// stimulus file with the reference extension (".log" by default). The
// stimulus is played with transcript.Player and every line of the output is
// compared with the corresponding line of the reference.
//
// The names of failed stimulus files are remembered. The keyword FAILS in the
// list of files given to RegressFiles() is replaced with the failures of the
// previous run.
//
// The output of a failed test is kept in the regression resource directory
// for inspection.
package regression
