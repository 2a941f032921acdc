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

// Package disassembly decodes 6502 and 65C12 machine code into a readable
// form. Memory is read with Peek() so disassembly has no effect on the
// emulation.
//
// Addresses are written in the BBC Micro convention, with an ampersand
// prefix. Device registers and OS entry points are replaced with their
// canonical names where possible.
//
// The Dump() function writes the CPU's recent history with a disassembly of
// each instruction. This is the most useful view of the machine after an
// unexpected halt.
package disassembly
