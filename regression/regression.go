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
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher6526/hardware/cia"
	"github.com/jetsetilly/gopher6526/hardware/cia/revision"
	"github.com/jetsetilly/gopher6526/logger"
	"github.com/jetsetilly/gopher6526/paths"
	"github.com/jetsetilly/gopher6526/transcript"
)

// the resource sub-directory for regression files.
const regressionPath = "regression"

// DefaultReferenceExt is the extension of reference captures.
const DefaultReferenceExt = ".log"

// Config for a regression run.
type Config struct {
	Model        revision.Model
	TODFrequency int

	// the extension of the reference capture for every stimulus file. if
	// empty the DefaultReferenceExt is used
	ReferenceExt string

	// maximum number of differences written for a failed test. zero for
	// all differences
	MaxDifferences int
}

// ReferenceFile returns the name of the reference capture for a stimulus
// file.
func (cfg Config) ReferenceFile(stimulus string) string {
	ext := cfg.ReferenceExt
	if ext == "" {
		ext = DefaultReferenceExt
	}
	return strings.TrimSuffix(stimulus, filepath.Ext(stimulus)) + ext
}

// Regress plays the stimulus and compares the output with the reference.
// The output of the player is also written to the out argument if it is not
// nil.
func Regress(stimulus io.Reader, reference io.Reader, cfg Config, out io.Writer) (Result, error) {
	var buf bytes.Buffer

	w := io.Writer(&buf)
	if out != nil {
		w = io.MultiWriter(&buf, out)
	}

	plr := transcript.NewPlayer(cia.NewCIA(cfg.Model), w)
	if err := plr.SetTODFrequency(cfg.TODFrequency); err != nil {
		return Result{}, err
	}
	plr.Start()

	if err := plr.Play(stimulus); err != nil {
		return Result{}, err
	}

	return Compare(reference, &buf)
}

// RegressFiles runs the regression test for every stimulus file. The keyword
// FAILS is replaced by the failures of the previous run. Returns the number
// of failed tests.
func RegressFiles(output io.Writer, files []string, cfg Config) (int, error) {
	files, err := addFailsToKeys(files)
	if err != nil {
		if err == errNoPreviousFails {
			fmt.Fprintln(output, "no previous failures")
			return 0, nil
		}
		return 0, err
	}

	var numSucceed, numFail, numError int
	var fails []string

	defer func() {
		fmt.Fprintf(output, "regression tests: %d succeed, %d fail", numSucceed, numFail)
		if numError > 0 {
			fmt.Fprint(output, " [with errors]")
		}
		fmt.Fprintln(output)
	}()

	for _, fn := range files {
		res, kept, err := regressFile(fn, cfg)
		switch {
		case err != nil:
			numError++
			numFail++
			fails = append(fails, fn)
			fmt.Fprintf(output, "  error: %s: %v\n", fn, err)
		case !res.Passed():
			numFail++
			fails = append(fails, fn)
			fmt.Fprintf(output, "failure: %s (%s)\n", fn, res)
			res.Write(output, cfg.MaxDifferences)
			if kept != "" {
				fmt.Fprintf(output, "output kept in %s\n", kept)
			}
		default:
			numSucceed++
			fmt.Fprintf(output, "succeed: %s (%s)\n", fn, res)
		}
	}

	if err := saveFails(fails); err != nil {
		return numFail, err
	}

	return numFail, nil
}

// regressFile returns the name of the file the output was kept in if the
// test fails.
func regressFile(fn string, cfg Config) (Result, string, error) {
	stim, err := os.Open(fn)
	if err != nil {
		return Result{}, "", err
	}
	defer stim.Close()

	ref, err := os.Open(cfg.ReferenceFile(fn))
	if err != nil {
		return Result{}, "", err
	}
	defer ref.Close()

	var out bytes.Buffer
	res, err := Regress(stim, ref, cfg, &out)
	if err != nil || res.Passed() {
		return res, "", err
	}

	logger.Logf(logger.Allow, "regression", "%s: %s", fn, res)

	pth, err := paths.ResourcePath(regressionPath, paths.UniqueFilename("fail", fn)+DefaultReferenceExt)
	if err != nil {
		return res, "", err
	}
	if err := os.WriteFile(pth, out.Bytes(), 0o600); err != nil {
		return res, "", fmt.Errorf("regression: %w", err)
	}

	return res, pth, nil
}
