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

package disassembly

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/beebcore/hardware/cpu"
	"github.com/jetsetilly/beebcore/hardware/cpu/instructions"
	"github.com/jetsetilly/beebcore/hardware/memory/bus"
)

// Disassembly decodes instructions from memory for a processor variant.
type Disassembly struct {
	mem   bus.DebuggerBus
	defns []*instructions.Definition
}

// NewDisassembly is the preferred method of initialisation for the
// Disassembly type.
func NewDisassembly(variant instructions.Variant, mem bus.DebuggerBus) *Disassembly {
	return &Disassembly{
		mem:   mem,
		defns: instructions.GetDefinitions(variant),
	}
}

// Decode the instruction at the address.
func (dsm *Disassembly) Decode(addr uint16) Entry {
	return decode(dsm.mem, dsm.defns, addr)
}

// Linear writes count instructions starting at the address. Returns the
// address of the instruction following the last instruction written.
func (dsm *Disassembly) Linear(w io.Writer, addr uint16, count int) uint16 {
	for range count {
		e := dsm.Decode(addr)
		fmt.Fprintf(w, "%04x  %-9s %s\n", e.Address, e.Bytecode(), e)
		addr = e.Next()
	}
	return addr
}

// DumpTime writes the most recent entries of the CPU's history, oldest
// first. Each entry shows the address and disassembly of the instruction and
// the values of A, X, Y and P after the instruction was executed.
//
// The instructions are disassembled from memory as it is now, which may not
// be what was executed if the memory has since been paged or modified.
func (dsm *Disassembly) DumpTime(w io.Writer, history *cpu.History, length int) {
	length = max(0, min(length, cpu.HistoryLength))
	for i := length - 1; i >= 0; i-- {
		h := history.Entry(i)
		e := dsm.Decode(h.PC)
		s := e.String()
		if len(s) < 15 {
			s += strings.Repeat(" ", 15-len(s))
		}
		fmt.Fprintf(w, "%04x %s %02x %02x %02x %02x\n", h.PC, s, h.A, h.X, h.Y, h.P)
	}
}

// Dump writes the entire history of the CPU. See DumpTime().
func Dump(w io.Writer, mc *cpu.CPU, mem bus.DebuggerBus) {
	NewDisassembly(mc.Variant(), mem).DumpTime(w, &mc.History, cpu.HistoryLength)
}
