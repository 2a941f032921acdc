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

package memory

import "github.com/jetsetilly/beebcore/hardware/memory/memorymap"

// ROMSEL returns the last value written to the paged ROM select register.
func (mem *Memory) ROMSEL() uint8 {
	return mem.romsel
}

// ACCCON returns the last value written to the access control register. It
// is always zero on models other than the Master.
func (mem *Memory) ACCCON() uint8 {
	return mem.acccon
}

// SelectROMBank pages a ROM bank into 8000 -> bfff in both table sets. Banks
// that the model fits with sideways RAM are writable.
//
// On the Master, if memorymap.ROMSELRAM is set then ANDY replaces the first
// 4k of the selected bank.
func (mem *Memory) SelectROMBank(b uint8) {
	mem.romsel = b

	bank := int(b & 0x0f)
	offset := bank*memorymap.BankSize + memorymap.ROMOffset - 0x8000
	status := memorymap.ROM
	if mem.model.SidewaysRAM[bank] {
		status = memorymap.RAM
	}

	for i := 0x80; i < 0xc0; i++ {
		mem.status[i] = status
		mem.offset[i] = offset
		mem.status[memorymap.ShadowBank+i] = status
		mem.offset[memorymap.ShadowBank+i] = offset
	}

	if mem.model.IsMaster && b&memorymap.ROMSELRAM == memorymap.ROMSELRAM {
		for i := 0x80; i < 0x90; i++ {
			mem.status[i] = memorymap.RAM
			mem.offset[i] = memorymap.AndyOffset - 0x8000
			mem.status[memorymap.ShadowBank+i] = memorymap.RAM
			mem.offset[memorymap.ShadowBank+i] = memorymap.AndyOffset - 0x8000
		}
	}
}

// WriteACCCON changes the Master's access control register. The tables are
// adjusted according to the D, E, X and Y bits. The TST bit is honoured by
// the device dispatcher. Has no effect on other models.
func (mem *Memory) WriteACCCON(b uint8) {
	if !mem.model.IsMaster {
		return
	}
	mem.acccon = b

	if b&memorymap.ACCCOND == memorymap.ACCCOND {
		mem.videoDisplayPage = memorymap.AndyOffset
	} else {
		mem.videoDisplayPage = 0
	}

	// instructions fetched from c000 -> dfff use the shadow table set
	if b&memorymap.ACCCONE == memorymap.ACCCONE {
		mem.fetchBankOffset[0xc] = memorymap.ShadowBank
		mem.fetchBankOffset[0xd] = memorymap.ShadowBank
	} else {
		mem.fetchBankOffset[0xc] = 0
		mem.fetchBankOffset[0xd] = 0
	}

	// LYNNE replaces main RAM in the normal table set
	lynne := 0
	if b&memorymap.ACCCONX == memorymap.ACCCONX {
		lynne = memorymap.LynneOffset - 0x3000
	}
	for i := 0x30; i < 0x80; i++ {
		mem.offset[i] = lynne
	}

	// HAZEL replaces the OS ROM in both table sets
	hazelStatus := memorymap.ROM
	hazelOffset := memorymap.OSOffset - 0xc000
	if b&memorymap.ACCCONY == memorymap.ACCCONY {
		hazelStatus = memorymap.RAM
		hazelOffset = memorymap.HazelOffset - 0xc000
	}
	for i := 0xc0; i < 0xe0; i++ {
		mem.status[i] = hazelStatus
		mem.offset[i] = hazelOffset
		mem.status[memorymap.ShadowBank+i] = hazelStatus
		mem.offset[memorymap.ShadowBank+i] = hazelOffset
	}
}

// TSTActive returns true if device reads should return OS ROM contents.
func (mem *Memory) TSTActive() bool {
	return mem.model.IsMaster && mem.acccon&memorymap.ACCCONTST == memorymap.ACCCONTST
}
