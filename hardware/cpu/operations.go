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
	"github.com/jetsetilly/beebcore/hardware/cpu/instructions"
)

// branch conditions.
var branches = map[string]func(mc *CPU) bool{
	"BPL": func(mc *CPU) bool { return !mc.Status.Sign },
	"BMI": func(mc *CPU) bool { return mc.Status.Sign },
	"BVC": func(mc *CPU) bool { return !mc.Status.Overflow },
	"BVS": func(mc *CPU) bool { return mc.Status.Overflow },
	"BCC": func(mc *CPU) bool { return !mc.Status.Carry },
	"BCS": func(mc *CPU) bool { return mc.Status.Carry },
	"BNE": func(mc *CPU) bool { return !mc.Status.Zero },
	"BEQ": func(mc *CPU) bool { return mc.Status.Zero },
	"BRA": func(mc *CPU) bool { return true },
}

// timed wraps an operation that has no data access of its own. the IRQ line
// is sampled before the last cycle.
func timed(cycles int, f func(mc *CPU)) Operation {
	return func(mc *CPU) {
		mc.Polltime(cycles - 1)
		mc.checkInt()
		f(mc)
		mc.Polltime(1)
	}
}

// instructions that manipulate the PC or the stack. they are keyed by
// mnemonic only and the function is given the definition so that the
// addressing mode can be honoured.
var special = map[string]func(defn *instructions.Definition) Operation{
	"BRK": func(defn *instructions.Definition) Operation {
		return timed(defn.Cycles, (*CPU).brk)
	},

	"JMP": func(defn *instructions.Definition) Operation {
		switch defn.AddressingMode {
		case instructions.Indirect:
			return func(mc *CPU) {
				ptr := mc.getw()
				mc.Polltime(defn.Cycles - 1)
				mc.checkInt()
				lo := mc.mem.Read(ptr)

				// the NMOS part does not carry into the high byte of the
				// pointer
				var hi uint8
				if mc.IsCMOS() {
					hi = mc.mem.Read(ptr + 1)
				} else {
					hi = mc.mem.Read(ptr&0xff00 | (ptr+1)&0x00ff)
				}
				mc.PC.Load(uint16(hi)<<8 | uint16(lo))
				mc.Polltime(1)
			}
		case instructions.AbsoluteIndexedIndirect:
			return func(mc *CPU) {
				ptr := mc.getw() + mc.X.Address()
				mc.Polltime(defn.Cycles - 1)
				mc.checkInt()
				mc.PC.Load(mc.readVector(ptr))
				mc.Polltime(1)
			}
		}
		return func(mc *CPU) {
			addr := mc.getw()
			mc.Polltime(defn.Cycles - 1)
			mc.checkInt()
			mc.PC.Load(addr)
			mc.Polltime(1)
		}
	},

	"JSR": func(defn *instructions.Definition) Operation {
		return func(mc *CPU) {
			addr := mc.getw()
			mc.Polltime(defn.Cycles - 1)
			mc.checkInt()
			ret := mc.PC.Address() - 1
			mc.push(uint8(ret >> 8))
			mc.push(uint8(ret))
			mc.PC.Load(addr)
			mc.Polltime(1)
		}
	},

	"RTS": func(defn *instructions.Definition) Operation {
		return timed(defn.Cycles, func(mc *CPU) {
			lo := mc.pull()
			hi := mc.pull()
			mc.PC.Load(uint16(hi)<<8 | uint16(lo))
			mc.PC.Increment()
		})
	},

	// the change to the interrupt disable flag by RTI takes effect
	// immediately. compare with PLP and CLI
	"RTI": func(defn *instructions.Definition) Operation {
		return func(mc *CPU) {
			mc.Polltime(defn.Cycles - 1)
			mc.Status.FromValue(mc.pull())
			lo := mc.pull()
			hi := mc.pull()
			mc.PC.Load(uint16(hi)<<8 | uint16(lo))
			mc.checkInt()
			mc.Polltime(1)
		}
	},

	"PHA": func(defn *instructions.Definition) Operation {
		return timed(defn.Cycles, func(mc *CPU) { mc.push(mc.A.Value()) })
	},
	"PHP": func(defn *instructions.Definition) Operation {
		return timed(defn.Cycles, func(mc *CPU) { mc.push(mc.Status.Value(true)) })
	},
	"PHX": func(defn *instructions.Definition) Operation {
		return timed(defn.Cycles, func(mc *CPU) { mc.push(mc.X.Value()) })
	},
	"PHY": func(defn *instructions.Definition) Operation {
		return timed(defn.Cycles, func(mc *CPU) { mc.push(mc.Y.Value()) })
	},
	"PLA": func(defn *instructions.Definition) Operation {
		return timed(defn.Cycles, func(mc *CPU) { mc.A.Load(mc.setZN(mc.pull())) })
	},
	"PLP": func(defn *instructions.Definition) Operation {
		return timed(defn.Cycles, func(mc *CPU) { mc.Status.FromValue(mc.pull()) })
	},
	"PLX": func(defn *instructions.Definition) Operation {
		return timed(defn.Cycles, func(mc *CPU) { mc.X.Load(mc.setZN(mc.pull())) })
	},
	"PLY": func(defn *instructions.Definition) Operation {
		return timed(defn.Cycles, func(mc *CPU) { mc.Y.Load(mc.setZN(mc.pull())) })
	},

	// the processor jams. the PC does not advance and so the instruction is
	// fetched again if execution is resumed. the CPU stops so that the jam is
	// visible to the caller
	"KIL": func(defn *instructions.Definition) Operation {
		return func(mc *CPU) {
			mc.PC.Load(mc.PC.Address() - 1)
			mc.Polltime(defn.Cycles)
			mc.jammed = true
			mc.Stop()
		}
	},
}

// instructions with implied addressing.
var implied = map[string]func(mc *CPU){
	"NOP": func(mc *CPU) {},

	"CLC": func(mc *CPU) { mc.Status.Carry = false },
	"SEC": func(mc *CPU) { mc.Status.Carry = true },
	"CLI": func(mc *CPU) { mc.Status.InterruptDisable = false },
	"SEI": func(mc *CPU) { mc.Status.InterruptDisable = true },
	"CLD": func(mc *CPU) { mc.Status.DecimalMode = false },
	"SED": func(mc *CPU) { mc.Status.DecimalMode = true },
	"CLV": func(mc *CPU) { mc.Status.Overflow = false },

	"TAX": func(mc *CPU) { mc.X.Load(mc.setZN(mc.A.Value())) },
	"TAY": func(mc *CPU) { mc.Y.Load(mc.setZN(mc.A.Value())) },
	"TXA": func(mc *CPU) { mc.A.Load(mc.setZN(mc.X.Value())) },
	"TYA": func(mc *CPU) { mc.A.Load(mc.setZN(mc.Y.Value())) },
	"TSX": func(mc *CPU) { mc.X.Load(mc.setZN(mc.SP.Value())) },
	"TXS": func(mc *CPU) { mc.SP.Load(mc.X.Value()) },

	"INX": func(mc *CPU) { mc.X.Load(mc.setZN(mc.X.Value() + 1)) },
	"INY": func(mc *CPU) { mc.Y.Load(mc.setZN(mc.Y.Value() + 1)) },
	"DEX": func(mc *CPU) { mc.X.Load(mc.setZN(mc.X.Value() - 1)) },
	"DEY": func(mc *CPU) { mc.Y.Load(mc.setZN(mc.Y.Value() - 1)) },
}

// instructions that read a value from memory (or from the operand in the
// case of immediate addressing).
var read = map[string]func(mc *CPU, v uint8){
	"NOP": func(mc *CPU, v uint8) {},

	"LDA": func(mc *CPU, v uint8) { mc.A.Load(mc.setZN(v)) },
	"LDX": func(mc *CPU, v uint8) { mc.X.Load(mc.setZN(v)) },
	"LDY": func(mc *CPU, v uint8) { mc.Y.Load(mc.setZN(v)) },

	"ADC": (*CPU).adc,
	"SBC": (*CPU).sbc,

	"AND": func(mc *CPU, v uint8) {
		mc.A.AND(v)
		mc.Status.SetZN(mc.A.Value())
	},
	"ORA": func(mc *CPU, v uint8) {
		mc.A.ORA(v)
		mc.Status.SetZN(mc.A.Value())
	},
	"EOR": func(mc *CPU, v uint8) {
		mc.A.EOR(v)
		mc.Status.SetZN(mc.A.Value())
	},

	"CMP": func(mc *CPU, v uint8) { mc.compare(mc.A.Value(), v) },
	"CPX": func(mc *CPU, v uint8) { mc.compare(mc.X.Value(), v) },
	"CPY": func(mc *CPU, v uint8) { mc.compare(mc.Y.Value(), v) },

	"BIT": func(mc *CPU, v uint8) {
		mc.Status.Zero = mc.A.Value()&v == 0
		mc.Status.Sign = v&0x80 == 0x80
		mc.Status.Overflow = v&0x40 == 0x40
	},

	// undocumented NMOS instructions
	"LAX": func(mc *CPU, v uint8) {
		mc.A.Load(mc.setZN(v))
		mc.X.Load(v)
	},
	"ANC": func(mc *CPU, v uint8) {
		mc.A.AND(v)
		mc.Status.SetZN(mc.A.Value())
		mc.Status.Carry = mc.Status.Sign
	},
	"ALR": func(mc *CPU, v uint8) {
		mc.A.AND(v)
		mc.Status.Carry = mc.A.LSR()
		mc.Status.SetZN(mc.A.Value())
	},
	"ARR": (*CPU).arr,
	"ANE": func(mc *CPU, v uint8) {
		mc.A.Load(mc.setZN((mc.A.Value() | 0xee) & mc.X.Value() & v))
	},
	"LXA": func(mc *CPU, v uint8) {
		r := mc.setZN((mc.A.Value() | 0xee) & v)
		mc.A.Load(r)
		mc.X.Load(r)
	},
	"SBX": func(mc *CPU, v uint8) {
		t := mc.A.Value() & mc.X.Value()
		mc.Status.Carry = t >= v
		mc.X.Load(mc.setZN(t - v))
	},
	"LAS": func(mc *CPU, v uint8) {
		r := mc.setZN(v & mc.SP.Value())
		mc.A.Load(r)
		mc.X.Load(r)
		mc.SP.Load(r)
	},
}

// BIT with immediate addressing (65C12 only) affects the zero flag only.
func bitImmediate(mc *CPU, v uint8) {
	mc.Status.Zero = mc.A.Value()&v == 0
}

// instructions that write to memory. the function returns the value to be
// written.
var write = map[string]func(mc *CPU, addr uint16) uint8{
	"STA": func(mc *CPU, _ uint16) uint8 { return mc.A.Value() },
	"STX": func(mc *CPU, _ uint16) uint8 { return mc.X.Value() },
	"STY": func(mc *CPU, _ uint16) uint8 { return mc.Y.Value() },
	"STZ": func(mc *CPU, _ uint16) uint8 { return 0 },

	// undocumented NMOS instructions
	"SAX": func(mc *CPU, _ uint16) uint8 { return mc.A.Value() & mc.X.Value() },

	// the unstable store instructions AND the value with the high byte of the
	// unindexed address plus one
	"SHA": func(mc *CPU, _ uint16) uint8 {
		return mc.A.Value() & mc.X.Value() & (uint8(mc.base>>8) + 1)
	},
	"SHX": func(mc *CPU, _ uint16) uint8 {
		return mc.X.Value() & (uint8(mc.base>>8) + 1)
	},
	"SHY": func(mc *CPU, _ uint16) uint8 {
		return mc.Y.Value() & (uint8(mc.base>>8) + 1)
	},
	"SHS": func(mc *CPU, _ uint16) uint8 {
		mc.SP.Load(mc.A.Value() & mc.X.Value())
		return mc.SP.Value() & (uint8(mc.base>>8) + 1)
	},
}

// instructions that modify a value. used for both accumulator and memory
// addressing. the function returns the modified value.
var modify = map[string]func(mc *CPU, v uint8) uint8{
	"ASL": func(mc *CPU, v uint8) uint8 {
		mc.Status.Carry = v&0x80 == 0x80
		return mc.setZN(v << 1)
	},
	"LSR": func(mc *CPU, v uint8) uint8 {
		mc.Status.Carry = v&0x01 == 0x01
		return mc.setZN(v >> 1)
	},
	"ROL": func(mc *CPU, v uint8) uint8 {
		r := v << 1
		if mc.Status.Carry {
			r |= 0x01
		}
		mc.Status.Carry = v&0x80 == 0x80
		return mc.setZN(r)
	},
	"ROR": func(mc *CPU, v uint8) uint8 {
		r := v >> 1
		if mc.Status.Carry {
			r |= 0x80
		}
		mc.Status.Carry = v&0x01 == 0x01
		return mc.setZN(r)
	},
	"INC": func(mc *CPU, v uint8) uint8 { return mc.setZN(v + 1) },
	"DEC": func(mc *CPU, v uint8) uint8 { return mc.setZN(v - 1) },

	// 65C12 only
	"TSB": func(mc *CPU, v uint8) uint8 {
		mc.Status.Zero = mc.A.Value()&v == 0
		return v | mc.A.Value()
	},
	"TRB": func(mc *CPU, v uint8) uint8 {
		mc.Status.Zero = mc.A.Value()&v == 0
		return v &^ mc.A.Value()
	},

	// undocumented NMOS instructions
	"SLO": func(mc *CPU, v uint8) uint8 {
		mc.Status.Carry = v&0x80 == 0x80
		r := v << 1
		mc.A.ORA(r)
		mc.Status.SetZN(mc.A.Value())
		return r
	},
	"RLA": func(mc *CPU, v uint8) uint8 {
		r := v << 1
		if mc.Status.Carry {
			r |= 0x01
		}
		mc.Status.Carry = v&0x80 == 0x80
		mc.A.AND(r)
		mc.Status.SetZN(mc.A.Value())
		return r
	},
	"SRE": func(mc *CPU, v uint8) uint8 {
		mc.Status.Carry = v&0x01 == 0x01
		r := v >> 1
		mc.A.EOR(r)
		mc.Status.SetZN(mc.A.Value())
		return r
	},
	"RRA": func(mc *CPU, v uint8) uint8 {
		r := v >> 1
		if mc.Status.Carry {
			r |= 0x80
		}
		mc.Status.Carry = v&0x01 == 0x01
		mc.adc(r)
		return r
	},
	"DCP": func(mc *CPU, v uint8) uint8 {
		r := v - 1
		mc.compare(mc.A.Value(), r)
		return r
	},
	"ISB": func(mc *CPU, v uint8) uint8 {
		r := v + 1
		mc.sbc(r)
		return r
	},
}
