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
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jetsetilly/beebcore/debugger/commandline"
	"github.com/jetsetilly/beebcore/debugger/govern"
	"github.com/jetsetilly/beebcore/debugger/terminal"
	"github.com/jetsetilly/beebcore/disassembly"
	"github.com/jetsetilly/beebcore/hardware"
	"github.com/jetsetilly/beebcore/hardware/memory/bus"
	"github.com/jetsetilly/beebcore/logger"
	"github.com/jetsetilly/beebcore/script"
)

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	machine *hardware.Machine
	mem     bus.DebuggerBus
	term    terminal.Terminal
	cmds    *commandline.Commands
	disasm  *disassembly.Disassembly

	state govern.State

	breakpoints *breakpoints
	watches     *watches

	// created on first use of the SCRIPT command
	script *script.Engine

	// the instruction hook is skipped for the first instruction after the
	// emulation resumes. the instruction at the PC is always executed even if
	// it is the location of a breakpoint
	skipHook   bool
	skipHookPC uint16

	// reasons for the most recent halt
	halt []string

	events terminal.ReadEvents
}

// NewDebugger creates and initialises everything required for a new
// debugging session. The debugger takes ownership of the machine's
// instruction hook and memory monitor.
func NewDebugger(machine *hardware.Machine, term terminal.Terminal) (*Debugger, error) {
	dbg := &Debugger{
		machine: machine,
		mem:     machine.Mem,
		term:    term,
		state:   govern.Initialising,
	}

	var err error

	dbg.cmds, err = commandline.ParseCommandTemplate(commandTemplate)
	if err != nil {
		return nil, fmt.Errorf("debugger: %w", err)
	}

	dbg.disasm = disassembly.NewDisassembly(machine.CPU.Variant(), dbg.mem)
	dbg.breakpoints = newBreakpoints()
	dbg.watches = newWatches(dbg)

	machine.CPU.SetInstructionHook(dbg.instructionHook)
	machine.Mem.SetMonitor(dbg.watches)

	return dbg, nil
}

// State returns the current state of the debugger.
func (dbg *Debugger) State() govern.State {
	return dbg.state
}

// Start the main debugger sequence. The script, if not empty, is run before
// the first prompt.
func (dbg *Debugger) Start(initScript string) error {
	if err := dbg.term.Initialise(); err != nil {
		return fmt.Errorf("debugger: %w", err)
	}
	defer dbg.term.CleanUp()

	dbg.term.RegisterTabCompletion(commandline.NewTabCompletion(dbg.cmds))

	dbg.events.IntEvents = make(chan os.Signal, 1)
	signal.Notify(dbg.events.IntEvents, os.Interrupt)
	defer signal.Stop(dbg.events.IntEvents)

	defer func() {
		if dbg.script != nil {
			dbg.script.Close()
		}
	}()

	dbg.state = govern.Paused

	if initScript != "" {
		if err := dbg.runScript(initScript); err != nil {
			dbg.printLine(terminal.StyleError, "%v", err)
		}
	}

	return dbg.inputLoop()
}

func (dbg *Debugger) inputLoop() error {
	for dbg.state != govern.Ending {
		input, err := dbg.term.TermRead(dbg.buildPrompt(), &dbg.events)
		if err != nil {
			if errors.Is(err, terminal.UserInterrupt) || errors.Is(err, terminal.UserAbort) || errors.Is(err, io.EOF) {
				logger.Log(logger.Allow, "debugger", "input ended. quitting")
				dbg.state = govern.Ending
				return nil
			}
			return fmt.Errorf("debugger: %w", err)
		}

		dbg.term.TermPrintLine(terminal.StyleEcho, input)

		if err := dbg.parseInput(input); err != nil {
			dbg.printLine(terminal.StyleError, "%v", err)
		}
	}

	return nil
}

func (dbg *Debugger) runScript(filename string) error {
	if dbg.script == nil {
		dbg.script = script.NewEngine(dbg.machine, dbg)
	}
	return dbg.script.RunFile(filename)
}

// Mode implements the script.Host interface.
func (dbg *Debugger) Mode() govern.Mode {
	return govern.ModeDebugger
}

// Print implements the script.Host interface.
func (dbg *Debugger) Print(s string) {
	dbg.printLine(terminal.StyleScript, "%s", s)
}

// AddBreakpoint implements the script.Host interface.
func (dbg *Debugger) AddBreakpoint(addr uint16) error {
	return dbg.breakpoints.add(addr)
}

// Command implements the script.Host interface.
func (dbg *Debugger) Command(input string) error {
	return dbg.parseInput(input)
}
