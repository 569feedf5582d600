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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher6526/hardware/cia"
	"github.com/jetsetilly/gopher6526/hardware/cia/bus"
	"github.com/jetsetilly/gopher6526/hardware/cia/registers"
	"github.com/jetsetilly/gopher6526/hardware/cia/revision"
	"github.com/jetsetilly/gopher6526/hardware/clocks"
	"github.com/jetsetilly/gopher6526/performance/limiter"
)

// sentinal error returned by the run loop.
var timedOut = errors.New("performance timed out")

// the time allowed for the rate to settle before measurement begins.
const leadTime = time.Second

// the timer channel is only checked every brake cycles.
const brake = 10000

// number of batches per second when the rate is capped. each batch is a
// thousandth of a second of bus cycles.
const batchRate = 1000

// CalcRate takes the number of bus cycles and the duration (in seconds) and
// returns the emulated bus clock in MHz and the accuracy of that value as a
// percentage of the nominal bus clock.
func CalcRate(cycles int, duration float64) (mhz float64, accuracy float64) {
	mhz = float64(cycles) / duration / 1000000
	accuracy = 100 * mhz / clocks.Nominal
	return mhz, accuracy
}

// Workload prepares the chip for a performance run. Every sub-system is
// active: both timers running and driving port B, the serial port sending,
// every interrupt source enabled and the TOD clock running from the 60Hz
// input.
func Workload(c *cia.CIA) {
	c.Reset()
	c.Write(registers.ICR, 0x80|0x1f)
	c.Write(registers.TALO, 0x10)
	c.Write(registers.TAHI, 0x00)
	c.Write(registers.TBLO, 0x04)
	c.Write(registers.TBHI, 0x00)
	c.Write(registers.CRB, 0x47)
	c.Write(registers.CRA, 0x47)
	c.Write(registers.TODHR, 0x01)
	c.Write(registers.TOD10THS, 0x00)
	c.Write(registers.SDR, 0xa5)
}

// Check the performance of the chip. The chip runs the Workload for the
// specified duration and creates a cpu profile, a memory profile and a trace
// (or a combination of those) as defined by the Profile argument. If capped
// is true the chip is limited to the nominal bus clock.
func Check(output io.Writer, profile Profile, model revision.Model, capped bool, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	c := cia.NewCIA(model)
	Workload(c)

	gen, err := clocks.NewTODGenerator(clocks.Mains60Hz)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	var lim *limiter.Limiter
	batch := int(clocks.Nominal*1000000) / batchRate
	if capped {
		lim, err = limiter.NewLimiter(batchRate)
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer lim.Stop()
	}

	startCycle := c.Cycles

	runner := func() error {
		// signals false when the lead time has elapsed and true when the
		// measurement period has finished
		timerChan := make(chan bool)
		time.AfterFunc(leadTime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		for n := 0; ; n++ {
			if lim != nil && n%batch == 0 {
				lim.Wait()
			}

			if n%brake == 0 {
				select {
				case v := <-timerChan:
					if v {
						return timedOut
					}
					startCycle = c.Cycles
				default:
				}
			}

			_ = c.SetPin(cia.TOD, gen.Advance())

			// acknowledge interrupts as a handler would
			if c.IRQ() {
				c.Read(registers.ICR)
				continue
			}

			// keep the serial port busy
			if !c.Serial.Active() {
				c.Write(registers.SDR, uint8(n))
				continue
			}

			c.Step(bus.Idle)
		}
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	cycles := c.Cycles - startCycle
	mhz, accuracy := CalcRate(cycles, dur.Seconds())
	fmt.Fprintf(output, "%.2f MHz (%d cycles in %.2f seconds) %.1f%%\n", mhz, cycles, dur.Seconds(), accuracy)

	return nil
}
