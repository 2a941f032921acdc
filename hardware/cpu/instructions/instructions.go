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

package instructions

import "fmt"

// Variant of the processor.
type Variant int

// List of processor variants.
const (
	NMOS Variant = iota
	CMOS
)

func (v Variant) String() string {
	switch v {
	case NMOS:
		return "6502"
	case CMOS:
		return "65C12"
	}
	return "unknown variant"
}

// AddressingMode describes the method data for the instruction should be
// received.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	Relative // relative addressing is used for branch instructions

	Absolute // abs
	ZeroPage // zpg
	Indirect // ind

	IndexedIndirect // (ind,X)
	IndirectIndexed // (ind),Y

	AbsoluteIndexedX // abs,X
	AbsoluteIndexedY // abs,Y

	ZeroPageIndexedX // zpg,X
	ZeroPageIndexedY // zpg,Y

	// 65C12 only
	ZeroPageIndirect        // (zpg)
	AbsoluteIndexedIndirect // (abs,X)
)

var modeNames = map[string]AddressingMode{
	"IMP": Implied,
	"ACC": Accumulator,
	"IMM": Immediate,
	"REL": Relative,
	"ABS": Absolute,
	"ZP":  ZeroPage,
	"IND": Indirect,
	"IZX": IndexedIndirect,
	"IZY": IndirectIndexed,
	"ABX": AbsoluteIndexedX,
	"ABY": AbsoluteIndexedY,
	"ZPX": ZeroPageIndexedX,
	"ZPY": ZeroPageIndexedY,
	"IZP": ZeroPageIndirect,
	"IAX": AbsoluteIndexedIndirect,
}

// Bytes returns the number of bytes used by an instruction with the
// addressing mode, including the opcode.
func (m AddressingMode) Bytes() int {
	switch m {
	case Implied, Accumulator:
		return 1
	case Absolute, AbsoluteIndexedX, AbsoluteIndexedY, Indirect, AbsoluteIndexedIndirect:
		return 3
	}
	return 2
}

// EffectCategory categorises an instruction by the effect it has.
type EffectCategory int

// List of effect categories.
const (
	Read EffectCategory = iota
	Write
	RMW

	// the following three effects have a variable effect on the program
	// counter, depending on the instruction's precise operand.

	// flow consists of the Branch and JMP instructions. Branch instructions
	// specifically can be distinguished by the AddressingMode.
	Flow

	Subroutine
	Interrupt
)

var effectNames = map[string]EffectCategory{
	"":  Read,
	"R": Read,
	"W": Write,
	"M": RMW,
	"F": Flow,
	"S": Subroutine,
	"I": Interrupt,
}

// Definition defines each instruction in the instruction set; one per
// instruction.
type Definition struct {
	OpCode         uint8
	Mnemonic       string
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	PageSensitive  bool
	Effect         EffectCategory
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%d pagesens=%t effect=%d]", defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.PageSensitive, defn.Effect)
}

// IsBranch returns true if the instruction is a conditional (or on the 65C12,
// unconditional) relative branch.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative
}
