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

package debugger_test

import (
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/jetsetilly/beebcore/debugger"
	"github.com/jetsetilly/beebcore/debugger/govern"
	"github.com/jetsetilly/beebcore/debugger/terminal"
	"github.com/jetsetilly/beebcore/hardware"
	"github.com/jetsetilly/beebcore/hardware/instance"
	"github.com/jetsetilly/beebcore/hardware/models"
	"github.com/jetsetilly/beebcore/test"
)

type mockTerm struct {
	interactive bool
	input       []string
	output      []string
	errors      []string
	prompts     []terminal.Prompt
}

func (trm *mockTerm) Initialise() error {
	return nil
}

func (trm *mockTerm) CleanUp() {
}

func (trm *mockTerm) RegisterTabCompletion(terminal.TabCompletion) {
}

func (trm *mockTerm) Silence(bool) {
}

func (trm *mockTerm) IsInteractive() bool {
	return trm.interactive
}

func (trm *mockTerm) TermRead(p terminal.Prompt, _ *terminal.ReadEvents) (string, error) {
	trm.prompts = append(trm.prompts, p)
	if len(trm.input) == 0 {
		return "", io.EOF
	}
	s := trm.input[0]
	trm.input = trm.input[1:]
	return s, nil
}

func (trm *mockTerm) TermPrintLine(sty terminal.Style, s string) {
	switch sty {
	case terminal.StyleEcho:
	case terminal.StyleError:
		trm.errors = append(trm.errors, s)
	default:
		trm.output = append(trm.output, s)
	}
}

// contains returns true if any line of output begins with the prefix.
func (trm *mockTerm) contains(prefix string) bool {
	return slices.ContainsFunc(trm.output, func(s string) bool {
		return strings.HasPrefix(s, prefix)
	})
}

var program = []uint8{
	0xa9, 0x42, // 1000 LDA #&42
	0x8d, 0x00, 0x20, // 1002 STA &2000
	0xe8,             // 1005 INX
	0xea,             // 1006 NOP
	0x4c, 0x05, 0x10, // 1007 JMP &1005
}

func newMachine(t *testing.T) *hardware.Machine {
	t.Helper()
	model, err := models.Find("TEST6502")
	test.DemandSuccess(t, err)
	ins, err := instance.NewInstance(instance.Test, nil)
	test.DemandSuccess(t, err)
	m, err := hardware.NewMachine(ins, model, hardware.Images{}, nil)
	test.DemandSuccess(t, err)

	copy(m.Mem.Store[0x1000:], program)
	m.Mem.Store[0xfffc] = 0x00
	m.Mem.Store[0xfffd] = 0x10
	m.Reset(false)
	return m
}

// session runs the debugger with the input and returns the terminal.
func session(t *testing.T, m *hardware.Machine, input ...string) *mockTerm {
	t.Helper()
	trm := &mockTerm{input: input}
	dbg, err := debugger.NewDebugger(m, trm)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dbg.Start(""))
	test.ExpectEquality(t, dbg.State(), govern.Ending)
	return trm
}

func TestStep(t *testing.T) {
	m := newMachine(t)
	trm := session(t, m, "STEP", "STEP 2", "QUIT", "STEP")

	test.DemandEquality(t, len(trm.output), 3)
	test.ExpectEquality(t, trm.output[0], "&1000 LDA #&42        A=42 X=00 Y=00 P=34")
	test.ExpectSuccess(t, strings.HasPrefix(trm.output[1], "&1002 STA &2000"))
	test.ExpectSuccess(t, strings.HasPrefix(trm.output[2], "&1005 INX"))
	test.ExpectSuccess(t, strings.HasSuffix(trm.output[2], "X=01 Y=00 P=34"))

	// input after QUIT is not processed
	test.ExpectEquality(t, m.CPU.PC.Address(), 0x1006)
}

func TestBreakpoint(t *testing.T) {
	m := newMachine(t)
	trm := session(t, m, "BREAK &1005", "RUN", "CPU", "RUN", "STEP 10")

	test.DemandEquality(t, len(trm.output), 8)
	test.ExpectEquality(t, trm.output[1], "break at &1005")

	// resuming executes the instruction at the breakpoint
	test.ExpectEquality(t, trm.output[3], "break at &1005")

	// stepping stops at breakpoints after the first instruction
	test.ExpectSuccess(t, strings.HasPrefix(trm.output[4], "&1005 INX"))
	test.ExpectSuccess(t, strings.HasPrefix(trm.output[6], "&1007 JMP &1005"))
	test.ExpectEquality(t, trm.output[7], "break at &1005")

	test.ExpectEquality(t, m.CPU.PC.Address(), 0x1005)
	test.ExpectEquality(t, m.CPU.X.Value(), 2)
}

func TestBreakpointList(t *testing.T) {
	m := newMachine(t)
	trm := session(t, m, "LIST", "BREAK &1005", "BREAK 4096", "BREAK &1005", "LIST", "DROP BREAK 0", "LIST", "CLEAR", "LIST")

	test.ExpectEquality(t, len(trm.errors), 1)
	test.ExpectEquality(t, strings.Join(trm.output, "|"),
		"no breakpoints|no watches|breakpoint at &1005|breakpoint at &1000|"+
			" 0: &1005| 1: &1000|no watches|"+
			" 0: &1000|no watches|"+
			"no breakpoints|no watches")
}

func TestWatch(t *testing.T) {
	m := newMachine(t)
	trm := session(t, m, "WATCH &2000 WRITE", "RUN", "PEEK &2000")
	test.ExpectSuccess(t, trm.contains("watch on &2000 write-only"))
	test.ExpectSuccess(t, trm.contains("watch at &2000 write-only -> &42"))
	test.ExpectSuccess(t, trm.contains("&2000  42"))
	test.ExpectEquality(t, m.CPU.PC.Address(), 0x1005)

	// value doesn't match
	m = newMachine(t)
	trm = session(t, m, "WATCH &2000 ANY &43", "STEP 3")
	test.ExpectFailure(t, trm.contains("watch at"))

	// read watch triggered by the opcode fetch
	m = newMachine(t)
	trm = session(t, m, "WATCH &1006 READ", "RUN")
	test.ExpectSuccess(t, trm.contains("watch at &1006 read-only"))
	test.ExpectEquality(t, m.CPU.PC.Address(), 0x1007)
}

func TestMemoryCommands(t *testing.T) {
	m := newMachine(t)
	copy(m.Mem.Store[0x4000:], "HELLO\r")

	trm := session(t, m,
		"POKE &3000 &55",
		"PEEK &3000 2",
		"POKE &3000 256",
		"STRING &4000",
		"FIND HELLO &3000",
		"FIND WORLD",
		"DISASM &1000 2",
	)

	test.ExpectEquality(t, m.Mem.Store[0x3000], 0x55)
	test.ExpectEquality(t, len(trm.errors), 2)
	test.ExpectEquality(t, strings.Join(trm.output, "|"),
		`&3000  55 00|"HELLO"|&4000|1000  a9 42     LDA #&42|1002  8d 00 20  STA &2000`)
}

func TestRegisters(t *testing.T) {
	m := newMachine(t)
	trm := session(t, m, "SET A &10", "SET PC &1005", "SET X 300", "STEP")

	test.ExpectEquality(t, len(trm.errors), 1)
	test.ExpectEquality(t, m.CPU.A.Value(), 0x10)
	test.ExpectEquality(t, m.CPU.X.Value(), 1)
	test.ExpectEquality(t, m.CPU.PC.Address(), 0x1006)
}

func TestHistory(t *testing.T) {
	m := newMachine(t)
	trm := session(t, m, "STEP 3", "HISTORY 2")

	test.DemandEquality(t, len(trm.output), 5)
	test.ExpectSuccess(t, strings.HasPrefix(trm.output[3], "1002 STA &2000"))
	test.ExpectSuccess(t, strings.HasPrefix(trm.output[4], "1005 INX"))
}

func TestReset(t *testing.T) {
	m := newMachine(t)
	trm := session(t, m, "STEP 2", "RESET", "RESET HARD")

	test.ExpectSuccess(t, trm.contains("machine soft reset"))
	test.ExpectSuccess(t, trm.contains("machine hard reset"))
	test.ExpectEquality(t, m.Elapsed(), int64(0))
}

func TestInvalidInput(t *testing.T) {
	m := newMachine(t)
	trm := session(t, m, "FOO", "STEP X", "BREAK", "STEP; FOO; STEP")

	test.ExpectEquality(t, len(trm.errors), 4)

	// the first command in the sequence is run but not the one after the error
	test.ExpectEquality(t, m.CPU.PC.Address(), 0x1002)
}

func TestHelp(t *testing.T) {
	m := newMachine(t)
	trm := session(t, m, "HELP STEP", "HELP FOO", "HELP")

	test.ExpectSuccess(t, trm.contains("Executes one or more instructions"))
	test.ExpectSuccess(t, trm.contains("  Usage: STEP [%N]"))
	test.ExpectSuccess(t, trm.contains("no help for FOO"))
	test.ExpectSuccess(t, trm.contains("BREAK"))
}

func TestScript(t *testing.T) {
	m := newMachine(t)

	fn := filepath.Join(t.TempDir(), "test.lua")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(`
		breakat(0x1005)
		command("POKE &3000 1")
		print("loaded")
	`), 0o600))

	trm := session(t, m, "SCRIPT "+fn, "RUN")
	test.ExpectSuccess(t, trm.contains("loaded"))
	test.ExpectSuccess(t, trm.contains("break at &1005"))
	test.ExpectEquality(t, m.Mem.Store[0x3000], 1)
}

func TestScriptHook(t *testing.T) {
	m := newMachine(t)

	fn := filepath.Join(t.TempDir(), "test.lua")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(`
		onstep(function(pc, opcode)
			return opcode == 0xea
		end)
	`), 0o600))

	trm := session(t, m, "SCRIPT "+fn, "RUN")
	test.ExpectSuccess(t, trm.contains("script halt at &1006"))
	test.ExpectEquality(t, m.CPU.PC.Address(), 0x1006)
}

func TestMemviz(t *testing.T) {
	m := newMachine(t)

	fn := filepath.Join(t.TempDir(), "cpu.dot")
	trm := session(t, m, "MEMVIZ "+fn)
	test.ExpectSuccess(t, trm.contains("memviz written to"))

	b, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(b), "digraph"))
}

func TestQuitConfirm(t *testing.T) {
	m := newMachine(t)
	trm := &mockTerm{
		interactive: true,
		input:       []string{"QUIT", "n", "STEP", "QUIT", "yes", "STEP"},
	}
	dbg, err := debugger.NewDebugger(m, trm)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dbg.Start(""))
	test.ExpectEquality(t, dbg.State(), govern.Ending)

	// the second STEP is never read
	test.ExpectEquality(t, len(trm.input), 1)
	test.ExpectEquality(t, m.CPU.PC.Address(), 0x1002)
	test.ExpectEquality(t, trm.prompts[1].Type, terminal.PromptTypeConfirm)
	test.ExpectEquality(t, trm.prompts[4].Type, terminal.PromptTypeConfirm)
}

func TestJam(t *testing.T) {
	m := newMachine(t)
	trm := session(t, m, "POKE &1006 &02", "RUN", "STEP 3")
	test.ExpectEquality(t, len(trm.errors), 0)
	test.ExpectSuccess(t, trm.contains("CPU jammed at &1006"))
	test.ExpectEquality(t, m.CPU.PC.Address(), 0x1006)

	// stepping a jammed CPU stops after the first instruction
	n := 0
	for _, s := range trm.output {
		if strings.HasPrefix(s, "CPU jammed") {
			n++
		}
	}
	test.ExpectEquality(t, n, 2)
}
