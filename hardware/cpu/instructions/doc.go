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

// Package instructions defines the instruction sets of the two processor
// variants found in the BBC Micro family: the NMOS 6502 of the Model B and
// the CMOS 65C12 of the Master.
//
// The definitions describe an instruction (mnemonic, addressing mode, size
// and base cycle count) but not what the instruction does. Execution is the
// responsibility of the cpu package, which uses these definitions to build
// its opcode tables. The disassembly package uses them for formatting.
//
// Definitions are held in CSV files embedded in the package and parsed on
// first use.
package instructions
