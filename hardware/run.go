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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/beebcore/debugger/govern"
)

// RunBurst runs the CPU for the number of cycles given by the
// machine.cyclesPerBurst preference.
//
// Returns false if the instruction hook stopped the CPU.
func (m *Machine) RunBurst() bool {
	return m.CPU.Execute(m.Instance.Prefs.CyclesPerBurst.Get().(int))
}

// Run sets the emulation running as quickly as possible. The continueCheck
// function is called after every burst and decides whether the emulation
// continues. Returning govern.Paused or govern.Ending from continueCheck
// causes Run() to return. A nil continueCheck runs the emulation until the
// CPU is stopped by the instruction hook or jams.
//
// Returns true if the CPU was stopped by the instruction hook.
func (m *Machine) Run(continueCheck func() (govern.State, error)) (bool, error) {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	for {
		if !m.RunBurst() {
			return true, nil
		}
		if m.CPU.Jammed() {
			return false, nil
		}

		state, err := continueCheck()
		if err != nil {
			return false, err
		}

		switch state {
		case govern.Running:
		case govern.Paused, govern.Ending:
			return false, nil
		default:
			return false, fmt.Errorf("machine: unsupported emulation state (%s) in Run() function", state)
		}
	}
}

// RunForCycles runs the emulation for at least the number of cycles. The
// final instruction may take the machine past the target.
//
// Returns true if the CPU was stopped by the instruction hook.
func (m *Machine) RunForCycles(cycles int) bool {
	target := m.elapsed + int64(cycles)
	burst := m.Instance.Prefs.CyclesPerBurst.Get().(int)

	for m.elapsed < target {
		n := min(burst, int(target-m.elapsed))
		if !m.CPU.Execute(n) {
			return true
		}
		if m.CPU.Halted() {
			return false
		}
	}

	return false
}

// Step runs a single instruction. Any pending interrupt is serviced after
// the instruction.
//
// Returns false if the instruction hook stopped the CPU.
func (m *Machine) Step() bool {
	return m.CPU.Execute(1 - m.CPU.Cycles)
}
