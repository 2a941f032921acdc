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

package bus

import "github.com/jetsetilly/beebcore/hardware/memory/memorymap"

// CPUBus defines the operations for the memory system when accessed from the
// CPU. Reads and writes can have side effects in device space.
type CPUBus interface {
	Read(addr uint16) uint8
	Write(addr uint16, data uint8)
}

// DebuggerBus defines the meta-operations for memory, used by the debugger,
// the disassembler and scripts. Peek never has side effects. The status
// reports what the address is mapped to in the current fetch bank.
type DebuggerBus interface {
	Peek(addr uint16) (uint8, memorymap.Status)
	Poke(addr uint16, value uint8) error
}

// Register is a device that responds to reads and writes in device space.
// The address is passed unchanged so the device can decode the low bits.
type Register interface {
	Read(addr uint16) uint8
	Write(addr uint16, data uint8)
}

// Paging is the part of the memory system that is controlled through device
// space.
type Paging interface {
	SelectROMBank(b uint8)
	WriteACCCON(b uint8)
	ACCCON() uint8

	// TSTActive returns true if device reads should be serviced from the OS
	// ROM instead of the devices
	TSTActive() bool
	OSByte(addr uint16) uint8
}
