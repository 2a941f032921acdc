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
	"strings"

	"github.com/jetsetilly/beebcore/hardware/cpu/instructions"
	"github.com/jetsetilly/beebcore/hardware/memory/addresses"
	"github.com/jetsetilly/beebcore/hardware/memory/bus"
)

// Entry is a disassembled instruction.
type Entry struct {
	Address uint16
	Defn    *instructions.Definition

	// the opcode and operand bytes
	Bytes []uint8

	Operator string
	Operand  string

	// the address referred to by the operand. only valid if HasTarget is
	// true. for relative branches it is the destination of the branch
	Target    uint16
	HasTarget bool
}

func (e Entry) String() string {
	if e.Operand == "" {
		return e.Operator
	}
	return fmt.Sprintf("%s %s", e.Operator, e.Operand)
}

// Bytecode returns the bytes of the instruction as a string of hex pairs.
func (e Entry) Bytecode() string {
	s := make([]string, len(e.Bytes))
	for i, b := range e.Bytes {
		s[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(s, " ")
}

// Next returns the address of the instruction following this one.
func (e Entry) Next() uint16 {
	return e.Address + uint16(len(e.Bytes))
}

func hexByte(v uint8) string {
	return fmt.Sprintf("&%02X", v)
}

func hexWord(v uint16) string {
	return fmt.Sprintf("&%04X", v)
}

// label returns the symbol for the address if there is one. otherwise the
// address is formatted as a hex word.
func label(addr uint16, write bool) string {
	if s, ok := addresses.Symbol(addr, write); ok {
		return s
	}
	return hexWord(addr)
}

// decode the instruction at the address.
func decode(mem bus.DebuggerBus, defns []*instructions.Definition, addr uint16) Entry {
	opcode, _ := mem.Peek(addr)
	defn := defns[opcode]

	e := Entry{
		Address:  addr,
		Defn:     defn,
		Operator: defn.Mnemonic,
	}

	e.Bytes = make([]uint8, defn.Bytes)
	for i := range e.Bytes {
		e.Bytes[i], _ = mem.Peek(addr + uint16(i))
	}

	var b uint8
	var w uint16
	if len(e.Bytes) > 1 {
		b = e.Bytes[1]
		w = uint16(b)
	}
	if len(e.Bytes) > 2 {
		w |= uint16(e.Bytes[2]) << 8
	}

	write := defn.Effect == instructions.Write

	switch defn.AddressingMode {
	case instructions.Implied:
	case instructions.Accumulator:
		e.Operand = "A"
	case instructions.Immediate:
		e.Operand = "#" + hexByte(b)
	case instructions.Relative:
		e.Target = addr + 2 + uint16(int8(b))
		e.HasTarget = true
		e.Operand = hexWord(e.Target)
	case instructions.Absolute:
		e.Target = w
		e.HasTarget = true
		e.Operand = label(w, write)
	case instructions.ZeroPage:
		e.Target = w
		e.HasTarget = true
		e.Operand = hexByte(b)
	case instructions.Indirect:
		e.Operand = fmt.Sprintf("(%s)", label(w, false))
	case instructions.IndexedIndirect:
		e.Operand = fmt.Sprintf("(%s,X)", hexByte(b))
	case instructions.IndirectIndexed:
		e.Operand = fmt.Sprintf("(%s),Y", hexByte(b))
	case instructions.AbsoluteIndexedX:
		e.Operand = fmt.Sprintf("%s,X", label(w, write))
	case instructions.AbsoluteIndexedY:
		e.Operand = fmt.Sprintf("%s,Y", label(w, write))
	case instructions.ZeroPageIndexedX:
		e.Operand = fmt.Sprintf("%s,X", hexByte(b))
	case instructions.ZeroPageIndexedY:
		e.Operand = fmt.Sprintf("%s,Y", hexByte(b))
	case instructions.ZeroPageIndirect:
		e.Operand = fmt.Sprintf("(%s)", hexByte(b))
	case instructions.AbsoluteIndexedIndirect:
		e.Operand = fmt.Sprintf("(%s,X)", label(w, false))
	}

	return e
}
