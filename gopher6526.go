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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"golang.org/x/term"

	"github.com/jetsetilly/gopher6526/hardware/cia"
	"github.com/jetsetilly/gopher6526/hardware/cia/revision"
	"github.com/jetsetilly/gopher6526/hardware/preferences"
	"github.com/jetsetilly/gopher6526/logger"
	"github.com/jetsetilly/gopher6526/modalflag"
	"github.com/jetsetilly/gopher6526/performance"
	"github.com/jetsetilly/gopher6526/prefs"
	"github.com/jetsetilly/gopher6526/regression"
	"github.com/jetsetilly/gopher6526/scripting"
	"github.com/jetsetilly/gopher6526/statsview"
	"github.com/jetsetilly/gopher6526/transcript"
	"github.com/jetsetilly/gopher6526/version"
	"github.com/jetsetilly/gopher6526/wavwriter"
)

// the file written by RUN mode when no other file is specified.
const defaultOutputFile = "cia_sim.log"

// exit values.
const (
	exitParseError = 10
	exitModeError  = 20
)

// communication between the main() function and the launch() function.
type mainSync struct {
	// the value to use with os.Exit()
	quit chan int

	// cancels the context given to the launched mode
	cancel context.CancelFunc
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	sync := &mainSync{
		quit:   make(chan int),
		cancel: cancel,
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(ctx, sync, os.Args[1:])

	// the first interrupt asks the running mode to stop. a second interrupt
	// ends the program immediately
	var interrupted bool
	for {
		select {
		case <-intChan:
			fmt.Print("\r")
			if interrupted {
				os.Exit(1)
			}
			interrupted = true
			sync.cancel()

		case exitVal := <-sync.quit:
			os.Exit(exitVal)
		}
	}
}

func launch(ctx context.Context, sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.AddSubModes("RUN", "COMPARE", "SCRIPT", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.quit <- 0
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.quit <- exitParseError
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md)

	case "COMPARE":
		err = compare(md)

	case "SCRIPT":
		err = script(ctx, md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		sync.quit <- exitModeError
		return
	}

	sync.quit <- 0
}

// chipFlags are the flags shared by every mode that creates a chip.
type chipFlags struct {
	model        *string
	todFrequency *int
	prefs        *string
	log          *bool
}

func addChipFlags(md *modalflag.Modes) chipFlags {
	return chipFlags{
		model:        md.AddString("model", "", "chip model: 6526, 8521 (default from preferences)"),
		todFrequency: md.AddInt("tod-frequency", -1, "frequency of TOD pin in Hz. zero for external only (default from preferences)"),
		prefs:        md.AddString("prefs", "", "preferences for this run only: \"key::value; key::value\""),
		log:          md.AddBool("log", false, "echo debugging log to stdout"),
	}
}

// resolve the chip model and the TOD frequency. flags take priority over
// the preferences file.
func (f chipFlags) resolve() (revision.Model, int, error) {
	if *f.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *f.prefs != "" {
		prefs.PushCommandLineStack(*f.prefs)
		defer prefs.PopCommandLineStack()
	}

	pref, err := preferences.NewPreferences()
	if err != nil {
		return revision.Default, 0, err
	}

	model := pref.ChipModel()
	if *f.model != "" {
		model, err = revision.ParseModel(*f.model)
		if err != nil {
			return revision.Default, 0, err
		}
	}

	frequency := *f.todFrequency
	if frequency < 0 {
		v, ok := pref.TODFrequency.Get().(int)
		if !ok {
			return revision.Default, 0, fmt.Errorf("preferences: tod frequency is not an integer")
		}
		frequency = v
	}

	return model, frequency, nil
}

// reader that stops when the context is cancelled.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (r ctxReader) Read(p []byte) (int, error) {
	if err := r.ctx.Err(); err != nil {
		return 0, err
	}
	return r.r.Read(p)
}

func run(ctx context.Context, md *modalflag.Modes) (rerr error) {
	md.NewMode()
	md.AdditionalHelp("the transcript is read from the named file or from standard input")

	chip := addChipFlags(md)
	out := md.AddString("out", defaultOutputFile, "file to write the output transcript to")
	stdout := md.AddBool("stdout", false, "also write the output transcript to stdout")
	wav := md.AddString("wav", "", "record pin levels to wav file")
	mem := md.AddString("memviz", "", "write graphviz dump of chip to file after transcript")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var in io.Reader
	switch len(md.RemainingArgs()) {
	case 0:
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("standard input is a terminal")
		}
		in = os.Stdin
	case 1:
		f, err := os.Open(md.GetArg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	model, frequency, err := chip.resolve()
	if err != nil {
		return err
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = err
		}
	}()

	w := io.Writer(f)
	if *stdout {
		w = io.MultiWriter(f, md.Output)
	}

	plr := transcript.NewPlayer(cia.NewCIA(model), w)
	err = plr.SetTODFrequency(frequency)
	if err != nil {
		return err
	}

	if *wav != "" {
		aw, err := wavwriter.New(*wav)
		if err != nil {
			return err
		}
		plr.AddObserver(aw)
		defer func() {
			if err := aw.End(); err != nil && rerr == nil {
				rerr = err
			}
		}()
	}

	plr.Start()
	err = plr.Play(ctxReader{ctx: ctx, r: in})
	if err != nil {
		return err
	}

	logger.Logf(logger.Allow, "run", "output transcript written to %s", *out)

	if *mem != "" {
		mf, err := os.Create(*mem)
		if err != nil {
			return err
		}
		defer mf.Close()
		memviz.Map(mf, plr.CIA())
		logger.Logf(logger.Allow, "run", "chip graph written to %s", *mem)
	}

	return nil
}

func compare(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("each stimulus file is compared with a reference capture of the same name\nwith the reference extension. use FAILS to rerun the failures of the\nprevious comparison")

	chip := addChipFlags(md)
	ref := md.AddString("ref", regression.DefaultReferenceExt, "extension of reference captures")
	limit := md.AddInt("max", 10, "maximum number of differences to show for each file. zero for all")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("at least one stimulus file required for %s mode", md)
	}

	model, frequency, err := chip.resolve()
	if err != nil {
		return err
	}

	cfg := regression.Config{
		Model:          model,
		TODFrequency:   frequency,
		ReferenceExt:   *ref,
		MaxDifferences: *limit,
	}

	fails, err := regression.RegressFiles(md.Output, md.RemainingArgs(), cfg)
	if err != nil {
		return err
	}
	if fails > 0 {
		return fmt.Errorf("%d comparisons failed", fails)
	}

	return nil
}

func script(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	chip := addChipFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("lua script required for %s mode", md)
	case 1:
		model, _, err := chip.resolve()
		if err != nil {
			return err
		}

		scr := scripting.NewScript(cia.NewCIA(model), md.Output)
		defer scr.Close()

		err = scr.RunFile(ctx, md.GetArg(0))
		if err != nil {
			if errors.Is(ctx.Err(), context.Canceled) {
				return fmt.Errorf("script interrupted")
			}
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	chip := addChipFlags(md)
	duration := md.AddString("duration", "5s", "run duration (note: there is a 1s overhead)")
	profile := md.AddString("profile", "NONE", "run performance check with profiling: CPU, MEM, TRACE, ALL (comma separated)")
	capped := md.AddBool("capped", false, "limit the chip to the nominal bus clock")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	model, _, err := chip.resolve()
	if err != nil {
		return err
	}

	if *stats {
		stop := statsview.Launch(md.Output)
		defer stop()
	}

	return performance.Check(md.Output, prf, model, *capped, *duration)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	rev := md.AddBool("revision", false, "display revision information from version control")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *rev {
		_, r, _ := version.Version()
		fmt.Fprintln(md.Output, strings.TrimSpace(r))
	} else {
		fmt.Fprintln(md.Output, version.String())
	}

	return nil
}
