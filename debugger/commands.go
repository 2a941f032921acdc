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
	"os"
	"strings"

	"github.com/jetsetilly/beebcore/debugger/commandline"
	"github.com/jetsetilly/beebcore/debugger/govern"
	"github.com/jetsetilly/beebcore/debugger/terminal"
	"github.com/jetsetilly/beebcore/hardware/memory/memorymap"
	"github.com/jetsetilly/beebcore/logger"
)

// parseInput splits the input into separate commands and processes each
// one. Commands are separated by semicolons.
func (dbg *Debugger) parseInput(input string) error {
	for _, s := range strings.Split(input, ";") {
		tokens := commandline.TokeniseInput(s)
		if err := dbg.cmds.ValidateTokens(tokens); err != nil {
			return err
		}
		if err := dbg.processTokens(tokens); err != nil {
			return err
		}
		if dbg.state == govern.Ending {
			return nil
		}
	}
	return nil
}

func (dbg *Debugger) processTokens(tokens *commandline.Tokens) error {
	command, ok := tokens.Get()
	if !ok {
		return nil
	}
	command = strings.ToUpper(command)

	switch command {
	case cmdHelp:
		dbg.help(tokens)

	case cmdQuit:
		if dbg.term.IsInteractive() {
			ok, err := dbg.confirm("really quit (y/n) ")
			if err != nil || !ok {
				return err
			}
		}
		dbg.state = govern.Ending

	case cmdReset:
		hard := false
		if arg, ok := tokens.Get(); ok {
			hard = strings.ToUpper(arg) == "HARD"
		}
		dbg.machine.Reset(hard)
		dbg.halt = dbg.halt[:0]
		if hard {
			dbg.printLine(terminal.StyleFeedback, "machine hard reset")
		} else {
			dbg.printLine(terminal.StyleFeedback, "machine soft reset")
		}

	case cmdRun:
		return dbg.run()

	case cmdStep:
		n, ok := tokens.GetNumber()
		if !ok {
			n = 1
		}
		dbg.step(n)

	case cmdBreak:
		addr, _ := tokens.GetNumber()
		if err := dbg.breakpoints.add(uint16(addr)); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "breakpoint at &%04X", uint16(addr))

	case cmdWatch:
		addr, _ := tokens.GetNumber()
		w := watcher{address: uint16(addr)}
		if ev, ok := tokens.Get(); ok {
			switch strings.ToUpper(ev) {
			case "READ":
				w.event = watchEventRead
			case "WRITE":
				w.event = watchEventWrite
			}
		}
		if v, ok := tokens.GetNumber(); ok {
			w.matchValue = true
			w.value = uint8(v)
		}
		if err := dbg.watches.add(w); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "watch on %s", w)

	case cmdList:
		dbg.printLine(terminal.StyleFeedback, "%s", dbg.breakpoints)
		dbg.printLine(terminal.StyleFeedback, "%s", dbg.watches)

	case cmdDrop:
		kind, _ := tokens.Get()
		n, _ := tokens.GetNumber()
		if strings.ToUpper(kind) == "BREAK" {
			return dbg.breakpoints.drop(n)
		}
		return dbg.watches.drop(n)

	case cmdClear:
		kind, _ := tokens.Get()
		switch strings.ToUpper(kind) {
		case "BREAK":
			dbg.breakpoints.clear()
		case "WATCH":
			dbg.watches.clear()
		default:
			dbg.breakpoints.clear()
			dbg.watches.clear()
		}

	case cmdCPU:
		dbg.printLine(terminal.StyleInstrument, "%s", dbg.machine.CPU)

	case cmdSet:
		return dbg.setRegister(tokens)

	case cmdPeek:
		addr, _ := tokens.GetNumber()
		n, ok := tokens.GetNumber()
		if !ok {
			n = 1
		}
		dbg.peek(uint16(addr), n)

	case cmdPoke:
		addr, _ := tokens.GetNumber()
		v, _ := tokens.GetNumber()
		if v < 0 || v > 0xff {
			return fmt.Errorf("poke value out of range (%d)", v)
		}
		if err := dbg.mem.Poke(uint16(addr), uint8(v)); err != nil {
			return err
		}

	case cmdMemMap:
		dbg.printLine(terminal.StyleInstrument, "%s", memorymap.Summary())
		dbg.printLine(terminal.StyleInstrument, "ROMSEL=&%02X ACCCON=&%02X", dbg.machine.Mem.ROMSEL(), dbg.machine.Mem.ACCCON())

	case cmdDisasm:
		addr, ok := tokens.GetNumber()
		if !ok {
			addr = int(dbg.machine.CPU.PC.Address())
		}
		n, ok := tokens.GetNumber()
		if !ok {
			n = 16
		}
		dbg.disasm.Linear(dbg.printStyle(terminal.StyleFeedback), uint16(addr), n)

	case cmdHistory:
		n, ok := tokens.GetNumber()
		if !ok {
			n = dbg.machine.Instance.Prefs.DumpLength.Get().(int)
		}
		dbg.disasm.DumpTime(dbg.printStyle(terminal.StyleFeedback), &dbg.machine.CPU.History, n)

	case cmdString:
		addr, _ := tokens.GetNumber()
		dbg.printLine(terminal.StyleFeedback, "%q", dbg.machine.ReadString(uint16(addr)))

	case cmdFind:
		s, _ := tokens.Get()
		from, _ := tokens.GetNumber()
		addr, ok := dbg.machine.FindString(s, uint16(from))
		if !ok {
			return fmt.Errorf("%s not found", s)
		}
		dbg.printLine(terminal.StyleFeedback, "&%04X", addr)

	case cmdMemviz:
		fn, _ := tokens.Get()
		f, err := os.Create(fn)
		if err != nil {
			return err
		}
		WriteMemviz(f, dbg.machine.CPU)
		if err := f.Close(); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "memviz written to %s", fn)

	case cmdScript:
		fn, _ := tokens.Get()
		return dbg.runScript(fn)

	case cmdLog:
		n, ok := tokens.GetNumber()
		if !ok {
			n = 10
		}
		logger.Tail(dbg.printStyle(terminal.StyleLog), n)
	}

	return nil
}

func (dbg *Debugger) help(tokens *commandline.Tokens) {
	keyword, ok := tokens.Get()
	if ok {
		keyword = strings.ToUpper(keyword)
		usage, ok := dbg.cmds.Usage(keyword)
		if !ok {
			dbg.printLine(terminal.StyleHelp, "no help for %s", keyword)
			return
		}
		dbg.printLine(terminal.StyleHelp, "%s", helps[keyword])
		dbg.printLine(terminal.StyleHelp, "  Usage: %s", usage)
		return
	}

	// arrange keywords in columns that fit the terminal, if the width is
	// known
	width := 80
	if w, ok := dbg.term.(interface{ TermWidth() int }); ok && w.TermWidth() > 0 {
		width = w.TermWidth()
	}

	const colWidth = 10
	cols := max(1, width/colWidth)

	s := strings.Builder{}
	for i, kw := range dbg.cmds.Keywords() {
		fmt.Fprintf(&s, "%-*s", colWidth, kw)
		if (i+1)%cols == 0 {
			s.WriteString("\n")
		}
	}
	dbg.printLine(terminal.StyleHelp, "%s", s.String())
}

func (dbg *Debugger) setRegister(tokens *commandline.Tokens) error {
	reg, _ := tokens.Get()
	v, _ := tokens.GetNumber()

	mc := dbg.machine.CPU
	reg = strings.ToUpper(reg)

	if reg == "PC" {
		if v < 0 || v > 0xffff {
			return fmt.Errorf("value out of range for PC (%d)", v)
		}
		mc.PC.Load(uint16(v))
		return nil
	}

	if v < 0 || v > 0xff {
		return fmt.Errorf("value out of range for %s (%d)", reg, v)
	}

	switch reg {
	case "A":
		mc.A.Load(uint8(v))
	case "X":
		mc.X.Load(uint8(v))
	case "Y":
		mc.Y.Load(uint8(v))
	case "SP":
		mc.SP.Load(uint8(v))
	case "P":
		mc.Status.FromValue(uint8(v))
	}

	return nil
}

// peek prints memory in rows of 16 bytes.
func (dbg *Debugger) peek(addr uint16, n int) {
	s := strings.Builder{}
	for i := range n {
		a := addr + uint16(i)
		if i%16 == 0 {
			if i > 0 {
				s.WriteString("\n")
			}
			fmt.Fprintf(&s, "&%04X ", a)
		}
		v, _ := dbg.mem.Peek(a)
		fmt.Fprintf(&s, " %02x", v)
	}
	dbg.printLine(terminal.StyleInstrument, "%s", s.String())
}

// confirm asks the question and returns true if the answer is yes. An
// interrupt counts as no.
func (dbg *Debugger) confirm(question string) (bool, error) {
	prompt := terminal.Prompt{Type: terminal.PromptTypeConfirm, Content: question}
	input, err := dbg.term.TermRead(prompt, &dbg.events)
	if err != nil {
		if errors.Is(err, terminal.UserInterrupt) {
			return false, nil
		}
		return false, err
	}
	input = strings.ToLower(strings.TrimSpace(input))
	return input == "y" || input == "yes", nil
}
