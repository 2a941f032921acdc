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

package debugger

import (
	"fmt"

	"github.com/jetsetilly/beebcore/debugger/govern"
	"github.com/jetsetilly/beebcore/debugger/terminal"
)

// instructionHook is installed as the CPU's instruction hook.
func (dbg *Debugger) instructionHook(pc uint16, opcode uint8) bool {
	if dbg.skipHook {
		dbg.skipHook = false
		if pc == dbg.skipHookPC {
			return false
		}
	}

	var stop bool

	if dbg.breakpoints.check(pc) {
		dbg.halt = append(dbg.halt, fmt.Sprintf("break at &%04X", pc))
		stop = true
	}

	if dbg.script != nil && dbg.script.InstructionHook(pc, opcode) {
		if err := dbg.script.Err(); err != nil {
			dbg.halt = append(dbg.halt, err.Error())
		} else {
			dbg.halt = append(dbg.halt, fmt.Sprintf("script halt at &%04X", pc))
		}
		stop = true
	}

	return stop
}

// resume prepares the debugger for execution to continue.
func (dbg *Debugger) resume() {
	dbg.halt = dbg.halt[:0]
	dbg.skipHook = true
	dbg.skipHookPC = dbg.machine.CPU.PC.Address()
}

func (dbg *Debugger) continueCheck() (govern.State, error) {
	select {
	case <-dbg.events.IntEvents:
		dbg.halt = append(dbg.halt, "user interrupt")
	default:
	}

	if len(dbg.halt) > 0 || dbg.machine.CPU.Halted() {
		return govern.Paused, nil
	}

	return govern.Running, nil
}

// run the emulation until a halt condition is met.
func (dbg *Debugger) run() error {
	dbg.resume()
	dbg.state = govern.Running
	defer func() {
		dbg.state = govern.Paused
	}()

	_, err := dbg.machine.Run(dbg.continueCheck)
	if err != nil {
		return err
	}

	dbg.checkJam()
	dbg.reportHalt()
	return nil
}

// step the emulation forward by the number of instructions. Each instruction
// is printed after it has been executed.
func (dbg *Debugger) step(count int) {
	dbg.resume()
	dbg.state = govern.Stepping
	defer func() {
		dbg.state = govern.Paused
	}()

	for range count {
		pc := dbg.machine.CPU.PC.Address()
		if !dbg.machine.Step() {
			break
		}

		h := dbg.machine.CPU.History.Entry(0)
		e := dbg.disasm.Decode(pc)
		dbg.printLine(terminal.StyleCPUStep, "&%04X %-15s A=%02x X=%02x Y=%02x P=%02x", pc, e, h.A, h.X, h.Y, h.P)

		if dbg.checkJam() || len(dbg.halt) > 0 {
			break
		}
	}

	dbg.reportHalt()
}

// checkJam adds a halt reason if the CPU has jammed.
func (dbg *Debugger) checkJam() bool {
	if !dbg.machine.CPU.Jammed() {
		return false
	}
	dbg.halt = append(dbg.halt, fmt.Sprintf("CPU jammed at &%04X", dbg.machine.CPU.PC.Address()))
	return true
}

func (dbg *Debugger) reportHalt() {
	for _, s := range dbg.halt {
		dbg.printLine(terminal.StyleFeedback, "%s", s)
	}
}
