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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/beebcore/disassembly"
	"github.com/jetsetilly/beebcore/hardware/cpu"
	"github.com/jetsetilly/beebcore/hardware/cpu/instructions"
	"github.com/jetsetilly/beebcore/hardware/memory/memorymap"
	"github.com/jetsetilly/beebcore/test"
)

type flatMemory [0x10000]uint8

func (m *flatMemory) Peek(addr uint16) (uint8, memorymap.Status) {
	return m[addr], memorymap.RAM
}

func (m *flatMemory) Poke(addr uint16, data uint8) error { m[addr] = data; return nil }
func (m *flatMemory) Read(addr uint16) uint8 { return m[addr] }
func (m *flatMemory) Write(addr uint16, data uint8) { m[addr] = data }
func (m *flatMemory) ReadZpStack(addr uint16) uint8 { return m[addr] }
func (m *flatMemory) WriteZpStack(addr uint16, d uint8) { m[addr] = d }
func (m *flatMemory) SetFetchBank(_ uint16) {}
func (m *flatMemory) Is1MHzAccess(_ uint16) bool { return false }

func TestDecode(t *testing.T) {
	mem := &flatMemory{}
	program := []uint8{
		0xa9, 0x42, // LDA #&42
		0x20, 0xee, 0xff, // JSR OSWRCH
		0x8d, 0x30, 0xfe, // STA ROMSEL
		0xd0, 0xfe, // BNE to self
		0x6c, 0x34, 0x12, // JMP (&1234)
		0xb1, 0x70, // LDA (&70),Y
		0x0a, // ASL A
		0x60, // RTS
	}
	copy(mem[0x1900:], program)

	dsm := disassembly.NewDisassembly(instructions.NMOS, mem)

	expected := []string{
		"LDA #&42",
		"JSR OSWRCH",
		"STA ROMSEL",
		"BNE &1908",
		"JMP (&1234)",
		"LDA (&70),Y",
		"ASL A",
		"RTS",
	}

	addr := uint16(0x1900)
	for i, s := range expected {
		e := dsm.Decode(addr)
		test.ExpectEquality(t, e.String(), s, i)
		addr = e.Next()
	}
	test.ExpectEquality(t, addr, uint16(0x1900+len(program)))

	e := dsm.Decode(0x1908)
	test.ExpectSuccess(t, e.HasTarget)
	test.ExpectEquality(t, e.Target, 0x1908)
	test.ExpectEquality(t, e.Bytecode(), "d0 fe")
}

func TestVariants(t *testing.T) {
	mem := &flatMemory{}
	copy(mem[0x2000:], []uint8{0x12, 0x70, 0x80, 0x02})

	nmos := disassembly.NewDisassembly(instructions.NMOS, mem)
	cmos := disassembly.NewDisassembly(instructions.CMOS, mem)

	test.ExpectEquality(t, nmos.Decode(0x2000).Operator, "KIL")
	test.ExpectEquality(t, cmos.Decode(0x2000).String(), "ORA (&70)")
	test.ExpectEquality(t, cmos.Decode(0x2002).String(), "BRA &2006")
}

func TestLinear(t *testing.T) {
	mem := &flatMemory{}
	copy(mem[0x3000:], []uint8{0xea, 0xa2, 0x00})

	dsm := disassembly.NewDisassembly(instructions.NMOS, mem)
	w := &strings.Builder{}
	next := dsm.Linear(w, 0x3000, 2)

	test.ExpectEquality(t, next, 0x3003)
	test.ExpectEquality(t, w.String(), "3000  ea        NOP\n3001  a2 00     LDX #&00\n")
}

func TestDump(t *testing.T) {
	mem := &flatMemory{}
	mem[0xfffc] = 0x00
	mem[0xfffd] = 0x40
	copy(mem[0x4000:], []uint8{0xa9, 0x01, 0xaa, 0xa8})

	mc := cpu.NewCPU(instructions.NMOS, mem, nil)
	mc.Reset()
	mc.Execute(6)

	w := &strings.Builder{}
	dsm := disassembly.NewDisassembly(instructions.NMOS, mem)
	dsm.DumpTime(w, &mc.History, 3)

	lines := strings.Split(strings.TrimSpace(w.String()), "\n")
	test.DemandEquality(t, len(lines), 3)
	test.ExpectEquality(t, lines[0], "4000 LDA #&01        01 00 00 34")
	test.ExpectEquality(t, lines[1], "4002 TAX             01 01 00 34")
	test.ExpectEquality(t, lines[2], "4003 TAY             01 01 01 34")

	w.Reset()
	disassembly.Dump(w, mc, mem)
	test.ExpectEquality(t, strings.Count(w.String(), "\n"), cpu.HistoryLength)
}
