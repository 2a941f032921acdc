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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/beebcore/hardware/cpu/instructions"
	"github.com/jetsetilly/beebcore/hardware/cpu/registers"
	"github.com/jetsetilly/beebcore/hardware/memory/bus"
)

// Memory is the view of the address space required by the CPU.
type Memory interface {
	bus.CPUBus

	// access to unpaged RAM. used for zero page and stack
	ReadZpStack(addr uint16) uint8
	WriteZpStack(addr uint16, data uint8)

	// SetFetchBank is called before every opcode fetch with the current value
	// of the PC. the memory implementation uses it to decide which set of
	// memory tables are used for the duration of the instruction
	SetFetchBank(pc uint16)

	// Is1MHzAccess returns true if an access to the address must be
	// synchronised with the 1MHz bus
	Is1MHzAccess(addr uint16) bool
}

// Clock is advanced by the CPU every time cycles are consumed.
type Clock interface {
	Polltime(cycles int)
}

// InstructionHook is called before an instruction is decoded. Returning true
// will stop the CPU before the instruction is executed.
type InstructionHook func(pc uint16, opcode uint8) bool

// CPU implements the 6502 and 65C12 as found in the BBC Micro family.
// Register logic is implemented by the Register type in the registers
// sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.Register
	Status registers.StatusRegister

	// Cycles is the remaining cycle budget of the current burst. it can be
	// negative if the last instruction took longer than the remaining budget.
	// the overrun is carried over to the next burst
	Cycles int

	History History

	variant      instructions.Variant
	mem          Memory
	clock        Clock
	instructions *InstructionSet

	// level of the IRQ line. each bit is a separate source and the line is
	// asserted if any bit is set
	interrupt uint8

	nmi     bool
	takeInt bool
	halted  bool

	// a jammed CPU ignores interrupts. only a reset clears it
	jammed bool

	hook InstructionHook

	// the unindexed address resolved by the most recent addressing mode. only
	// used by the unstable SHA, SHX, SHY and SHS instructions
	base uint16
}

// NewCPU is the preferred method of initialisation for the CPU structure.
func NewCPU(variant instructions.Variant, mem Memory, clock Clock) *CPU {
	mc := &CPU{
		variant: variant,
		mem:     mem,
		clock:   clock,
		PC:      registers.NewProgramCounter(0),
		A:       registers.NewRegister(0, "A"),
		X:       registers.NewRegister(0, "X"),
		Y:       registers.NewRegister(0, "Y"),
		SP:      registers.NewRegister(0, "SP"),
	}
	mc.instructions = NewInstructionSet(variant)
	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Variant returns the processor variant being emulated.
func (mc *CPU) Variant() instructions.Variant {
	return mc.variant
}

// IsCMOS returns true if the CPU is emulating the 65C12.
func (mc *CPU) IsCMOS() bool {
	return mc.variant == instructions.CMOS
}

// SetInstructionSet replaces the opcode table.
func (mc *CPU) SetInstructionSet(set *InstructionSet) {
	mc.instructions = set
}

// SetInstructionHook installs a function to be called before each
// instruction. A nil value removes the hook.
func (mc *CPU) SetInstructionHook(hook InstructionHook) {
	mc.hook = hook
}

// Reset the CPU. The memory map should have been reset before calling this
// function because the PC is loaded from the reset vector.
//
// Registers A, X, Y and SP are not changed. The flags are cleared except for
// the interrupt disable flag, which is set.
func (mc *CPU) Reset() {
	mc.Cycles = 0
	mc.Status.Reset()
	mc.Status.InterruptDisable = true
	mc.nmi = false
	mc.takeInt = false
	mc.halted = false
	mc.jammed = false

	mc.mem.SetFetchBank(0xfffc)
	mc.PC.Load(mc.readVector(0xfffc))
}

// Stop the CPU at the next instruction boundary. Execute() will return true.
func (mc *CPU) Stop() {
	mc.halted = true
}

// Halted returns true if the CPU has been stopped.
func (mc *CPU) Halted() bool {
	return mc.halted
}

// Jammed returns true if the CPU has executed a KIL instruction since the
// last reset.
func (mc *CPU) Jammed() bool {
	return mc.jammed
}

// Polltime consumes cycles from the budget and advances the clock by the
// same amount.
func (mc *CPU) Polltime(cycles int) {
	mc.Cycles -= cycles
	if mc.clock != nil {
		mc.clock.Polltime(cycles)
	}
}

// PolltimeAddr is the same as Polltime() except that the cycles are
// stretched if the address is on the 1MHz bus. The stretch is one or two
// cycles depending on the phase of the 2MHz clock.
func (mc *CPU) PolltimeAddr(cycles int, addr uint16) {
	if mc.mem.Is1MHzAccess(addr) {
		cycles += 1 + ((cycles ^ mc.Cycles) & 1)
	}
	mc.Polltime(cycles)
}

// read the next byte from the PC and advance the PC.
func (mc *CPU) getb() uint8 {
	v := mc.mem.Read(mc.PC.Address())
	mc.PC.Increment()
	return v
}

// read the next word from the PC and advance the PC.
func (mc *CPU) getw() uint16 {
	lo := mc.getb()
	hi := mc.getb()
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) readVector(addr uint16) uint16 {
	return uint16(mc.mem.Read(addr)) | uint16(mc.mem.Read(addr+1))<<8
}

func (mc *CPU) push(v uint8) {
	mc.mem.WriteZpStack(0x100|mc.SP.Address(), v)
	mc.SP.Load(mc.SP.Value() - 1)
}

func (mc *CPU) pull() uint8 {
	mc.SP.Load(mc.SP.Value() + 1)
	return mc.mem.ReadZpStack(0x100 | mc.SP.Address())
}

func (mc *CPU) setZN(v uint8) uint8 {
	mc.Status.SetZN(v)
	return v
}
