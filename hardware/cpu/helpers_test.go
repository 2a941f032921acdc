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

package cpu_test

import (
	"github.com/jetsetilly/beebcore/hardware/cpu"
	"github.com/jetsetilly/beebcore/hardware/cpu/instructions"
)

// mockMem is a flat 64k address space. the top three pages before the
// vectors are on the 1MHz bus.
type mockMem struct {
	data [0x10000]uint8
}

func (m *mockMem) Read(addr uint16) uint8 {
	return m.data[addr]
}

func (m *mockMem) Write(addr uint16, data uint8) {
	m.data[addr] = data
}

func (m *mockMem) ReadZpStack(addr uint16) uint8 {
	return m.data[addr]
}

func (m *mockMem) WriteZpStack(addr uint16, data uint8) {
	m.data[addr] = data
}

func (m *mockMem) SetFetchBank(_ uint16) {}

func (m *mockMem) Is1MHzAccess(addr uint16) bool {
	return addr >= 0xfc00 && addr < 0xff00
}

// put a sequence of bytes into memory.
func (m *mockMem) put(addr uint16, data ...uint8) {
	for i, d := range data {
		m.data[addr+uint16(i)] = d
	}
}

// mockClock counts the number of cycles it has been advanced by.
type mockClock struct {
	total int
}

func (c *mockClock) Polltime(cycles int) {
	c.total += cycles
}

const (
	testReset = 0x0200
	testIRQ   = 0x3000
	testNMI   = 0x4000
)

// newTestCPU creates a CPU with the vectors pointing to the test addresses.
// the CPU has been reset and the PC is at testReset. the stack pointer is
// initialised to 0xff and interrupts are enabled.
func newTestCPU(variant instructions.Variant) (*cpu.CPU, *mockMem, *mockClock) {
	mem := &mockMem{}
	clk := &mockClock{}
	mem.put(cpu.NMIVector, testNMI&0xff, testNMI>>8)
	mem.put(cpu.ResetVector, testReset&0xff, testReset>>8)
	mem.put(cpu.IRQVector, testIRQ&0xff, testIRQ>>8)

	mc := cpu.NewCPU(variant, mem, clk)
	mc.Reset()
	mc.SP.Load(0xff)
	mc.Status.InterruptDisable = false
	return mc, mem, clk
}

// step executes exactly one instruction, along with any interrupt that
// follows it.
func step(mc *cpu.CPU) {
	mc.Execute(1 - mc.Cycles)
}
