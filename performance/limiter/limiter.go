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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new Limiter can be created with (error handling removed for clarity):
//
//	lim, _ := limiter.NewLimiter(1000)
//	defer lim.Stop()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		lim.Wait()
//		runBatch()
//	}
package limiter

import (
	"fmt"
	"time"
)

// Limiter triggers rate times per second. Only any good if the base
// performance of the machine is well above the required rate.
type Limiter struct {
	rate   int
	period time.Duration

	tick chan bool
	quit chan struct{}
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter(rate int) (*Limiter, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("limiter: rate must be positive (%d)", rate)
	}

	lim := &Limiter{
		rate:   rate,
		period: time.Second / time.Duration(rate),
		tick:   make(chan bool),
		quit:   make(chan struct{}),
	}

	go func() {
		adjusted := lim.period
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case <-lim.quit:
				return
			}
			time.Sleep(adjusted)
			nt := time.Now()
			adjusted -= nt.Sub(t) - lim.period
			t = nt
		}
	}()

	return lim, nil
}

// Rate returns the number of triggers per second.
func (lim *Limiter) Rate() int {
	return lim.rate
}

// Wait blocks until the next trigger.
func (lim *Limiter) Wait() {
	<-lim.tick
}

// HasWaited returns true if the trigger has already happened and false if it
// is still yet to happen. Never blocks.
func (lim *Limiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		return false
	}
}

// Stop the limiter. Wait() must not be called after Stop().
func (lim *Limiter) Stop() {
	close(lim.quit)
}
