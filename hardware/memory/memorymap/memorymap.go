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

package memorymap

// Status of a page in the memory tables. The status alone decides whether an
// access is serviced by the backing store or by a device.
type Status uint8

// List of valid Status values.
const (
	Device Status = iota
	RAM
	ROM
)

func (s Status) String() string {
	switch s {
	case Device:
		return "device"
	case RAM:
		return "RAM"
	case ROM:
		return "ROM"
	}
	return "undefined"
}

// Layout of the backing store.
const (
	BankSize    = 0x4000
	NumROMBanks = 16
	RAMSize     = 128 * 1024

	ROMOffset = RAMSize
	OSOffset  = ROMOffset + NumROMBanks*BankSize
	StoreSize = OSOffset + BankSize
)

// Private RAM regions of the Master. They occupy the second 32k of RAM in the
// backing store.
const (
	// ANDY is 4k at 8000 -> 8fff
	AndyOffset = 0x8000

	// HAZEL is 8k paged in at c000 -> dfff
	HazelOffset = 0x9000

	// LYNNE is 20k shadowing 3000 -> 7fff
	LynneOffset = 0xb000
)

// Number of entries in the memory tables. There are two sets of 256 pages.
// The second set is used when the instruction being executed was fetched from
// a region that has been switched to the alternative set. See ACCCON.
const (
	Pages       = 256
	TableLength = Pages * 2
	ShadowBank  = Pages
)

// Bits in the Master's ACCCON register.
const (
	ACCCOND   = 0x01 // display LYNNE
	ACCCONE   = 0x02 // VDU code accesses LYNNE
	ACCCONX   = 0x04 // LYNNE replaces main RAM
	ACCCONY   = 0x08 // HAZEL replaces OS ROM
	ACCCONITU = 0x10
	ACCCONIJF = 0x20
	ACCCONTST = 0x40 // device reads return OS ROM
	ACCCONIRR = 0x80
)

// ROMSELRAM is the bit in the ROMSEL register that pages ANDY into 8000 ->
// 8fff on the Master.
const ROMSELRAM = 0x80

// Device space.
const (
	OriginDevice = uint16(0xfc00)
	MemtopDevice = uint16(0xfeff)

	OriginFRED   = uint16(0xfc00)
	OriginJIM    = uint16(0xfd00)
	OriginSHEILA = uint16(0xfe00)
)

// which 32 byte blocks of SHEILA are on the 1MHz bus.
var sheilaSlow = [8]bool{true, false, true, true, false, false, true, false}

// Is1MHz returns true if the address is accessed through the 1MHz bus. FRED
// and JIM are always on the 1MHz bus. Some of SHEILA is.
func Is1MHz(addr uint16) bool {
	if addr < OriginDevice || addr > MemtopDevice {
		return false
	}
	return addr < OriginSHEILA || sheilaSlow[(addr>>5)&7]
}

// FloatingBus returns the value read from an address that is not driven by
// any device.
func FloatingBus(addr uint16) uint8 {
	if addr >= OriginFRED && addr < OriginSHEILA {
		return 0xff
	}
	return uint8(addr >> 8)
}
