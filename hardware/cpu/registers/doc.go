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

// Package registers implements the registers of the 6502 and 65C12. The
// Register type is used for the 8-bit accumulator, index registers and stack
// pointer. The ProgramCounter is a 16-bit register and the StatusRegister
// holds the six processor flags.
//
// Registers do not update the status register themselves. Operations that
// produce flag information return it and it is the responsibility of the
// caller (the cpu package) to decide what to do with it:
//
//	carry, overflow := a.Add(v, sr.Carry)
//	sr.Carry = carry
//	sr.Overflow = overflow
//	sr.SetZN(a.Value())
//
// The decimal mode arithmetic for both the NMOS and CMOS variants of the
// processor is found in decimal_mode.go.
package registers
