// This file is part of Beebcore.
//
// Beebcore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Beebcore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Beebcore.  If not, see <https://www.gnu.org/licenses/>.

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/beebcore/debugger/govern"
	"github.com/jetsetilly/beebcore/hardware"
	"github.com/jetsetilly/beebcore/hardware/clocks"
)

// Result of a performance check.
type Result struct {
	Cycles  int64
	Elapsed time.Duration
}

// MHz returns the effective clock speed of the emulated CPU.
func (r Result) MHz() float64 {
	return float64(r.Cycles) / r.Elapsed.Seconds() / 1000000
}

// Ratio returns the speed of the emulation relative to the real machine.
func (r Result) Ratio() float64 {
	return clocks.Seconds(r.Cycles) / r.Elapsed.Seconds()
}

func (r Result) String() string {
	return fmt.Sprintf("%d cycles in %.2fs: %.2f MHz (%.1fx real speed)", r.Cycles, r.Elapsed.Seconds(), r.MHz(), r.Ratio())
}

// Check runs the machine as quickly as possible for the duration and writes
// the result to output.
func Check(output io.Writer, m *hardware.Machine, duration string) (Result, error) {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return Result{}, fmt.Errorf("performance: %w", err)
	}
	if dur <= 0 {
		return Result{}, fmt.Errorf("performance: duration must be positive (%s)", duration)
	}

	startCycles := m.Elapsed()
	startTime := time.Now()
	timer := time.After(dur)

	_, err = m.Run(func() (govern.State, error) {
		select {
		case <-timer:
			return govern.Ending, nil
		default:
		}
		return govern.Running, nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("performance: %w", err)
	}

	r := Result{
		Cycles:  m.Elapsed() - startCycles,
		Elapsed: time.Since(startTime),
	}
	fmt.Fprintln(output, r)

	return r, nil
}
