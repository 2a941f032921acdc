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

// Package cpu emulates the 6502 and 65C12 processors of the BBC Micro family.
//
// The CPU is driven in bursts. Execute() is given a budget of cycles and runs
// instructions until the budget is exhausted, Stop() is called or the
// instruction hook requests a stop. All cycles consumed by the CPU are charged
// through Polltime(), which also advances the peripherals by the same number
// of cycles. Peripherals therefore observe time in lockstep with the CPU.
//
// Accesses to the 1MHz part of the address space stall the CPU by one or two
// cycles, depending on the phase of the 2MHz clock at the time of the access.
// See PolltimeAddr().
//
// Maskable interrupts are level sensitive. The level is set by the
// peripherals with SetIRQ() and is sampled at instruction boundaries and
// during the timing cycles of branch instructions. The NMI line is edge
// latched and is serviced regardless of the interrupt disable flag.
//
// The instruction set is a table of 256 Operations, built from the
// definitions in the instructions package for the processor variant. The
// table can be replaced with SetInstructionSet().
package cpu
