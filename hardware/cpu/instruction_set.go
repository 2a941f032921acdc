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
)

// Operation is the implementation of a single opcode. The PC points to the
// byte following the opcode when the Operation is called. The Operation is
// responsible for charging all the cycles it consumes through Polltime() and
// for sampling the IRQ line with checkInt() before the last cycle.
type Operation func(mc *CPU)

// InstructionSet is the opcode table used by the CPU.
type InstructionSet [256]Operation

// NewInstructionSet builds the opcode table for the processor variant.
//
// Panics if a definition has no implementation. This can only happen if the
// instruction definitions and the implementations have diverged.
func NewInstructionSet(variant instructions.Variant) *InstructionSet {
	var set InstructionSet
	for _, defn := range instructions.GetDefinitions(variant) {
		op, err := newOperation(defn)
		if err != nil {
			panic(fmt.Sprintf("cpu: %s: %v", variant, err))
		}
		set[defn.OpCode] = op
	}
	return &set
}

// newOperation returns the Operation for the definition.
func newOperation(defn *instructions.Definition) (Operation, error) {
	cycles := defn.Cycles

	if defn.AddressingMode == instructions.Relative {
		cond, ok := branches[defn.Mnemonic]
		if !ok {
			return nil, fmt.Errorf("no branch condition for %s", defn.Mnemonic)
		}
		return func(mc *CPU) {
			mc.branch(cond(mc))
		}, nil
	}

	if f, ok := special[defn.Mnemonic]; ok {
		return f(defn), nil
	}

	switch defn.AddressingMode {
	case instructions.Implied:
		f, ok := implied[defn.Mnemonic]
		if !ok {
			return nil, fmt.Errorf("no implied implementation for %s", defn.Mnemonic)
		}
		return func(mc *CPU) {
			mc.Polltime(cycles - 1)
			mc.checkInt()
			f(mc)
			mc.Polltime(1)
		}, nil

	case instructions.Accumulator:
		f, ok := modify[defn.Mnemonic]
		if !ok {
			return nil, fmt.Errorf("no accumulator implementation for %s", defn.Mnemonic)
		}
		return func(mc *CPU) {
			mc.Polltime(cycles - 1)
			mc.checkInt()
			mc.A.Load(f(mc, mc.A.Value()))
			mc.Polltime(1)
		}, nil

	case instructions.Immediate:
		f, ok := read[defn.Mnemonic]
		if !ok {
			return nil, fmt.Errorf("no immediate implementation for %s", defn.Mnemonic)
		}
		if defn.Mnemonic == "BIT" {
			f = bitImmediate
		}
		return func(mc *CPU) {
			v := mc.getb()
			mc.Polltime(cycles - 1)
			mc.checkInt()
			f(mc, v)
			mc.Polltime(1)
		}, nil
	}

	mode := defn.AddressingMode
	pageSensitive := defn.PageSensitive

	switch defn.Effect {
	case instructions.Read:
		f, ok := read[defn.Mnemonic]
		if !ok {
			return nil, fmt.Errorf("no read implementation for %s", defn.Mnemonic)
		}
		return func(mc *CPU) {
			addr, crossed := mc.resolve(mode)
			n := cycles
			if crossed && pageSensitive {
				n++
			}
			mc.Polltime(n - 1)
			mc.checkInt()
			mc.PolltimeAddr(1, addr)
			f(mc, mc.mem.Read(addr))
		}, nil

	case instructions.Write:
		f, ok := write[defn.Mnemonic]
		if !ok {
			return nil, fmt.Errorf("no write implementation for %s", defn.Mnemonic)
		}
		return func(mc *CPU) {
			addr, _ := mc.resolve(mode)
			mc.Polltime(cycles - 1)
			mc.checkInt()
			mc.PolltimeAddr(1, addr)
			mc.mem.Write(addr, f(mc, addr))
		}, nil

	case instructions.RMW:
		f, ok := modify[defn.Mnemonic]
		if !ok {
			return nil, fmt.Errorf("no read-modify-write implementation for %s", defn.Mnemonic)
		}
		return func(mc *CPU) {
			addr, crossed := mc.resolve(mode)
			n := cycles
			if crossed && pageSensitive {
				n++
			}
			mc.Polltime(n - 3)
			mc.PolltimeAddr(1, addr)
			v := mc.mem.Read(addr)

			// the NMOS part writes the unmodified value back before writing
			// the result. the 65C12 reads the address again
			if mc.IsCMOS() {
				mc.Polltime(1)
			} else {
				mc.Polltime(1)
				mc.mem.Write(addr, v)
			}

			r := f(mc, v)
			mc.checkInt()
			mc.Polltime(1)
			mc.mem.Write(addr, r)
		}, nil
	}

	return nil, fmt.Errorf("no implementation for %s", defn)
}

// resolve the effective address for the addressing mode, reading any operand
// bytes from the PC. also returns whether indexing crossed a page boundary.
func (mc *CPU) resolve(mode instructions.AddressingMode) (uint16, bool) {
	switch mode {
	case instructions.ZeroPage:
		mc.base = uint16(mc.getb())
		return mc.base, false

	case instructions.ZeroPageIndexedX:
		mc.base = uint16(mc.getb())
		return (mc.base + mc.X.Address()) & 0xff, false

	case instructions.ZeroPageIndexedY:
		mc.base = uint16(mc.getb())
		return (mc.base + mc.Y.Address()) & 0xff, false

	case instructions.Absolute:
		mc.base = mc.getw()
		return mc.base, false

	case instructions.AbsoluteIndexedX:
		mc.base = mc.getw()
		addr := mc.base + mc.X.Address()
		return addr, addr&0xff00 != mc.base&0xff00

	case instructions.AbsoluteIndexedY:
		mc.base = mc.getw()
		addr := mc.base + mc.Y.Address()
		return addr, addr&0xff00 != mc.base&0xff00

	case instructions.IndexedIndirect:
		zp := (mc.getb() + mc.X.Value())
		mc.base = mc.zpWord(zp)
		return mc.base, false

	case instructions.IndirectIndexed:
		mc.base = mc.zpWord(mc.getb())
		addr := mc.base + mc.Y.Address()
		return addr, addr&0xff00 != mc.base&0xff00

	case instructions.ZeroPageIndirect:
		mc.base = mc.zpWord(mc.getb())
		return mc.base, false
	}

	panic(fmt.Sprintf("cpu: cannot resolve address for addressing mode %d", mode))
}

// read a little-endian word from zero page. the high byte wraps around to
// the start of zero page.
func (mc *CPU) zpWord(zp uint8) uint16 {
	lo := mc.mem.ReadZpStack(uint16(zp))
	hi := mc.mem.ReadZpStack(uint16(zp + 1))
	return uint16(hi)<<8 | uint16(lo)
}
