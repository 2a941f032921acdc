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
	"fmt"

	"github.com/jetsetilly/beebcore/hardware/memory/bus"
	"github.com/jetsetilly/beebcore/hardware/memory/memorymap"
	"github.com/jetsetilly/beebcore/hardware/models"
)

var (
	_ bus.CPUBus      = (*Memory)(nil)
	_ bus.DebuggerBus = (*Memory)(nil)
)

// Device services accesses to device space.
type Device interface {
	Read(addr uint16) uint8
	Write(addr uint16, data uint8)
}

// Monitor is notified of every access made through Memory. The offset is the
// displacement into the backing store and is only meaningful if mapped is
// true.
type Monitor interface {
	DebugRead(addr uint16, offset int, mapped bool)
	DebugWrite(addr uint16, data uint8)
}

// floating is the Device used before a real Device has been plumbed in.
type floating struct{}

func (floating) Read(addr uint16) uint8 {
	return memorymap.FloatingBus(addr)
}

func (floating) Write(_ uint16, _ uint8) {}

// Memory is the address space as seen by the CPU.
type Memory struct {
	model models.Model

	// the backing store. the layout is described by the memorymap package
	Store []uint8

	status [memorymap.TableLength]memorymap.Status
	offset [memorymap.TableLength]int

	// the table set to use for each 4k region of instruction fetch. either
	// zero or memorymap.ShadowBank
	fetchBankOffset [16]int

	// the table set selected by the most recent call to SetFetchBank()
	current int

	romsel uint8
	acccon uint8

	// added to addresses read by the video circuitry
	videoDisplayPage int

	device  Device
	monitor Monitor
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The tables are initialised with HardReset().
func NewMemory(model models.Model) *Memory {
	mem := &Memory{
		model:  model,
		Store:  make([]uint8, memorymap.StoreSize),
		device: floating{},
	}
	mem.HardReset(model.IsTest)
	return mem
}

func (mem *Memory) String() string {
	return fmt.Sprintf("ROMSEL=%02x ACCCON=%02x", mem.romsel, mem.acccon)
}

// Plumb a Device into memory. Accesses to device space are forwarded to it.
func (mem *Memory) Plumb(device Device) {
	if device == nil {
		mem.device = floating{}
		return
	}
	mem.device = device
}

// SetMonitor installs a Monitor. A nil value removes the Monitor.
func (mem *Memory) SetMonitor(monitor Monitor) {
	mem.monitor = monitor
}

// HardReset rebuilds the memory tables.
//
// In normal mode, 0000 -> 7fff is RAM, 8000 -> bfff is paged ROM bank zero,
// c000 -> ffff is the OS ROM except for fc00 -> feff, which is device space.
// In the shadow table set 3000 -> 7fff is mapped to LYNNE.
//
// In test mode the entire address space in both table sets is RAM.
//
// The paging registers and the video display page are cleared. The contents
// of the backing store are not changed.
func (mem *Memory) HardReset(testMode bool) {
	for i := range mem.fetchBankOffset {
		mem.fetchBankOffset[i] = 0
	}
	mem.current = 0
	mem.romsel = 0
	mem.acccon = 0
	mem.videoDisplayPage = 0

	if testMode {
		for i := range memorymap.TableLength {
			mem.status[i] = memorymap.RAM
			mem.offset[i] = 0
		}
		return
	}

	for i := range memorymap.Pages {
		var status memorymap.Status
		var offset int

		switch {
		case i < 0x80:
			status = memorymap.RAM
		case i < 0xc0:
			status = memorymap.ROM
			offset = memorymap.ROMOffset - 0x8000
		case i >= 0xfc && i <= 0xfe:
			status = memorymap.Device
			offset = memorymap.OSOffset - 0xc000
		default:
			status = memorymap.ROM
			offset = memorymap.OSOffset - 0xc000
		}

		mem.status[i] = status
		mem.offset[i] = offset
		mem.status[memorymap.ShadowBank+i] = status
		mem.offset[memorymap.ShadowBank+i] = offset
	}

	for i := 0x30; i < 0x80; i++ {
		mem.offset[memorymap.ShadowBank+i] = memorymap.LynneOffset - 0x3000
	}
}

// SetFetchBank selects the table set to use for the instruction at the PC.
// It should be called before every opcode fetch.
func (mem *Memory) SetFetchBank(pc uint16) {
	mem.current = mem.fetchBankOffset[pc>>12]
}

// Translate returns the backing store offset and the status of the page
// containing the address, using the table set selected by the most recent
// call to SetFetchBank(). For a write, a ROM page is reported as a Device
// page because the write will not reach the backing store.
func (mem *Memory) Translate(addr uint16, forWrite bool) (int, memorymap.Status) {
	page := mem.current + int(addr>>8)
	status := mem.status[page]
	if forWrite && status == memorymap.ROM {
		return 0, memorymap.Device
	}
	return mem.offset[page], status
}

// Read implements the cpu.Memory interface.
func (mem *Memory) Read(addr uint16) uint8 {
	page := mem.current + int(addr>>8)
	if mem.status[page] != memorymap.Device {
		offset := mem.offset[page]
		if mem.monitor != nil {
			mem.monitor.DebugRead(addr, offset, true)
		}
		return mem.Store[offset+int(addr)]
	}

	if mem.monitor != nil {
		mem.monitor.DebugRead(addr, 0, false)
	}
	return mem.device.Read(addr)
}

// Write implements the cpu.Memory interface. Writes to ROM are ignored.
// Writes to a device page outside of device space are also ignored.
func (mem *Memory) Write(addr uint16, data uint8) {
	if mem.monitor != nil {
		mem.monitor.DebugWrite(addr, data)
	}

	page := mem.current + int(addr>>8)
	switch mem.status[page] {
	case memorymap.RAM:
		mem.Store[mem.offset[page]+int(addr)] = data
	case memorymap.Device:
		if addr >= memorymap.OriginDevice && addr <= memorymap.MemtopDevice {
			mem.device.Write(addr, data)
		}
	}
}

// ReadZpStack reads directly from main RAM without consulting the tables. It
// is only valid for zero page and the stack, which are never paged.
func (mem *Memory) ReadZpStack(addr uint16) uint8 {
	if mem.monitor != nil {
		mem.monitor.DebugRead(addr, 0, true)
	}
	return mem.Store[addr]
}

// WriteZpStack writes directly to main RAM. See ReadZpStack().
func (mem *Memory) WriteZpStack(addr uint16, data uint8) {
	if mem.monitor != nil {
		mem.monitor.DebugWrite(addr, data)
	}
	mem.Store[addr] = data
}

// VideoRead returns the byte fetched by the video circuitry for the
// address. On the Master the display can be switched to LYNNE with ACCCON.
func (mem *Memory) VideoRead(addr uint16) uint8 {
	return mem.Store[int(addr)|mem.videoDisplayPage]
}

// Is1MHzAccess implements the cpu.Memory interface.
func (mem *Memory) Is1MHzAccess(addr uint16) bool {
	return memorymap.Is1MHz(addr)
}

// OSByte returns the OS ROM byte corresponding to the address. The address
// is masked to the 16k of the OS ROM.
func (mem *Memory) OSByte(addr uint16) uint8 {
	return mem.Store[memorymap.OSOffset+int(addr&0x3fff)]
}

// Peek returns the value at the address without side effects. Device space
// is not read and the floating bus value is returned instead.
func (mem *Memory) Peek(addr uint16) (uint8, memorymap.Status) {
	offset, status := mem.Translate(addr, false)
	if status == memorymap.Device {
		return memorymap.FloatingBus(addr), status
	}
	return mem.Store[offset+int(addr)], status
}

// Poke changes the value at the address in the backing store. ROM can be
// poked. Device space cannot.
func (mem *Memory) Poke(addr uint16, data uint8) error {
	offset, status := mem.Translate(addr, false)
	if status == memorymap.Device {
		return fmt.Errorf("memory: cannot poke device space (%04x)", addr)
	}
	mem.Store[offset+int(addr)] = data
	return nil
}
