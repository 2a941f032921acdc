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

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/beebcore/hardware/memory/memorymap"
)

// Sentinel errors returned by image validation.
var (
	InvalidOSImage  = errors.New("invalid OS image")
	InvalidROMImage = errors.New("invalid ROM image")
)

// ValidateOS checks that an OS image has a length that can be loaded. An OS
// image is one or more 16k banks. The first bank is the OS proper. Any
// remaining banks are paged ROMs.
func ValidateOS(length int) error {
	if length < memorymap.BankSize || length%memorymap.BankSize != 0 {
		return fmt.Errorf("%w: length %d is not a multiple of 16k", InvalidOSImage, length)
	}
	if length/memorymap.BankSize-1 > memorymap.NumROMBanks {
		return fmt.Errorf("%w: too many banks (%d)", InvalidOSImage, length/memorymap.BankSize-1)
	}
	return nil
}

// ValidateROM checks that a paged ROM image is either 8k or 16k.
func ValidateROM(length int) error {
	if length != memorymap.BankSize && length != memorymap.BankSize/2 {
		return fmt.Errorf("%w: length %d is neither 8k nor 16k", InvalidROMImage, length)
	}
	return nil
}

// LoadOS copies the OS image into the backing store. Additional banks in the
// image are loaded into the highest numbered ROM slots, starting at slot 16-n
// where n is the number of additional banks.
//
// Returns the number of ROM slots filled by the image.
func (mem *Memory) LoadOS(data []uint8) (int, error) {
	if err := ValidateOS(len(data)); err != nil {
		return 0, err
	}

	copy(mem.Store[memorymap.OSOffset:], data[:memorymap.BankSize])

	extra := len(data)/memorymap.BankSize - 1
	for i := range extra {
		slot := memorymap.NumROMBanks - extra + i
		src := data[(i+1)*memorymap.BankSize : (i+2)*memorymap.BankSize]
		copy(mem.Store[memorymap.ROMOffset+slot*memorymap.BankSize:], src)
	}

	return extra, nil
}

// LoadROM copies a paged ROM image into the slot. An 8k image occupies the
// first half of the slot.
func (mem *Memory) LoadROM(slot int, data []uint8) error {
	if slot < 0 || slot >= memorymap.NumROMBanks {
		return fmt.Errorf("%w: slot %d out of range", InvalidROMImage, slot)
	}
	if err := ValidateROM(len(data)); err != nil {
		return err
	}
	copy(mem.Store[memorymap.ROMOffset+slot*memorymap.BankSize:], data)
	return nil
}
