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

package memory_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/beebcore/hardware/memory"
	"github.com/jetsetilly/beebcore/hardware/memory/bus"
	"github.com/jetsetilly/beebcore/hardware/memory/memorymap"
	"github.com/jetsetilly/beebcore/hardware/models"
	"github.com/jetsetilly/beebcore/test"
)

func model(t *testing.T, name string) models.Model {
	t.Helper()
	m, err := models.Find(name)
	test.DemandSuccess(t, err)
	return m
}

// fillBanks marks every paged ROM bank with its own number and the OS with
// 0xee.
func fillBanks(mem *memory.Memory) {
	for b := range memorymap.NumROMBanks {
		for i := range memorymap.BankSize {
			mem.Store[memorymap.ROMOffset+b*memorymap.BankSize+i] = uint8(b)
		}
	}
	for i := range memorymap.BankSize {
		mem.Store[memorymap.OSOffset+i] = 0xee
	}
}

type recordingDevice struct {
	reads  []uint16
	writes []uint16
}

func (d *recordingDevice) Read(addr uint16) uint8 {
	d.reads = append(d.reads, addr)
	return 0x42
}

func (d *recordingDevice) Write(addr uint16, _ uint8) {
	d.writes = append(d.writes, addr)
}

func TestHardReset(t *testing.T) {
	mem := memory.NewMemory(model(t, "B"))
	fillBanks(mem)

	mem.Write(0x1234, 0x55)
	test.ExpectEquality(t, mem.Read(0x1234), 0x55)
	test.ExpectEquality(t, mem.Store[0x1234], 0x55)

	// paged ROM bank zero and the OS
	test.ExpectEquality(t, mem.Read(0x8000), 0x00)
	test.ExpectEquality(t, mem.Read(0xc000), 0xee)
	test.ExpectEquality(t, mem.Read(0xfffc), 0xee)

	for _, addr := range []uint16{0xfc00, 0xfd80, 0xfeff} {
		_, status := mem.Translate(addr, false)
		test.ExpectEquality(t, status, memorymap.Device, addr)
	}
	_, status := mem.Translate(0xff00, false)
	test.ExpectEquality(t, status, memorymap.ROM)
}

func TestTestMode(t *testing.T) {
	mem := memory.NewMemory(model(t, "TEST6502"))
	dev := &recordingDevice{}
	mem.Plumb(dev)

	for _, addr := range []uint16{0x0000, 0x8000, 0xc000, 0xfe40, 0xffff} {
		mem.Write(addr, uint8(addr>>8))
		test.ExpectEquality(t, mem.Read(addr), uint8(addr>>8), addr)
		test.ExpectEquality(t, mem.Store[addr], uint8(addr>>8), addr)
	}
	test.ExpectEquality(t, len(dev.reads), 0)
	test.ExpectEquality(t, len(dev.writes), 0)
}

func TestWriteToROM(t *testing.T) {
	mem := memory.NewMemory(model(t, "B"))
	fillBanks(mem)

	mem.Write(0x8000, 0x99)
	mem.Write(0xc000, 0x99)
	test.ExpectEquality(t, mem.Read(0x8000), 0x00)
	test.ExpectEquality(t, mem.Read(0xc000), 0xee)

	_, status := mem.Translate(0x8000, true)
	test.ExpectEquality(t, status, memorymap.Device)
}

func TestDeviceForwarding(t *testing.T) {
	mem := memory.NewMemory(model(t, "B"))

	// floating bus before a device is plumbed
	test.ExpectEquality(t, mem.Read(0xfc10), 0xff)
	test.ExpectEquality(t, mem.Read(0xfe10), 0xfe)

	dev := &recordingDevice{}
	mem.Plumb(dev)
	test.ExpectEquality(t, mem.Read(0xfe40), 0x42)
	mem.Write(0xfe30, 0x01)

	test.DemandEquality(t, len(dev.reads), 1)
	test.DemandEquality(t, len(dev.writes), 1)
	test.ExpectEquality(t, dev.reads[0], 0xfe40)
	test.ExpectEquality(t, dev.writes[0], 0xfe30)
}

func TestSelectROMBank(t *testing.T) {
	mem := memory.NewMemory(model(t, "B"))
	fillBanks(mem)

	for b := range memorymap.NumROMBanks {
		mem.SelectROMBank(uint8(b))
		test.ExpectEquality(t, mem.Read(0x8000), uint8(b), b)
		test.ExpectEquality(t, mem.Read(0xbfff), uint8(b), b)
	}

	// selecting the same bank twice leaves the same mapping
	mem.SelectROMBank(0x0f)
	a := mem.Read(0x9000)
	mem.SelectROMBank(0x0f)
	test.ExpectEquality(t, mem.Read(0x9000), a)

	// only the low nibble selects the bank
	mem.SelectROMBank(0x13)
	test.ExpectEquality(t, mem.Read(0x8000), 0x03)
	test.ExpectEquality(t, mem.ROMSEL(), 0x13)
}

func TestSelectROMBankWindow(t *testing.T) {
	// addresses outside the paged ROM window, excluding device space
	outside := func(yield func(uint16) bool) {
		for a := 0; a < 0x10000; a++ {
			if a >= 0x8000 && a < 0xc000 || a >= 0xfc00 && a < 0xff00 {
				continue
			}
			if !yield(uint16(a)) {
				return
			}
		}
	}

	for _, name := range []string{"B", "BSWRAM", "MASTER"} {
		mem := memory.NewMemory(model(t, name))
		fillBanks(mem)
		for a := range outside {
			if a < 0x8000 {
				mem.Write(a, uint8(a^(a>>8)))
			}
		}

		before := make(map[uint16]uint8)
		for a := range outside {
			before[a] = mem.Read(a)
		}

		for _, b := range []uint8{0x00, 0x05, 0x0f, 0x80 | 0x07, 0x13} {
			mem.SelectROMBank(b)
			for a := range outside {
				if mem.Read(a) != before[a] {
					t.Fatalf("%s: bank %02x changed %04x", name, b, a)
				}
			}
		}
	}
}

func TestBusInterfaces(t *testing.T) {
	mem := memory.NewMemory(model(t, "B"))
	fillBanks(mem)

	var cpuBus bus.CPUBus = mem
	var dbgBus bus.DebuggerBus = mem

	cpuBus.Write(0x1000, 0x55)
	v, status := dbgBus.Peek(0x1000)
	test.ExpectEquality(t, v, 0x55)
	test.ExpectEquality(t, status, memorymap.RAM)

	// poking ROM changes the backing store but the CPU still cannot write it
	test.ExpectSuccess(t, dbgBus.Poke(0xc000, 0x12))
	test.ExpectEquality(t, cpuBus.Read(0xc000), 0x12)
	cpuBus.Write(0xc000, 0x34)
	test.ExpectEquality(t, cpuBus.Read(0xc000), 0x12)

	test.ExpectFailure(t, dbgBus.Poke(0xfe30, 0x00))
}

func TestSidewaysRAM(t *testing.T) {
	mem := memory.NewMemory(model(t, "BSWRAM"))
	fillBanks(mem)

	mem.SelectROMBank(4)
	mem.Write(0x8000, 0xaa)
	test.ExpectEquality(t, mem.Read(0x8000), 0xaa)

	mem.SelectROMBank(3)
	mem.Write(0x8000, 0xaa)
	test.ExpectEquality(t, mem.Read(0x8000), 0x03)
}

func TestANDY(t *testing.T) {
	mem := memory.NewMemory(model(t, "MASTER"))
	fillBanks(mem)

	mem.SelectROMBank(memorymap.ROMSELRAM | 0x02)
	mem.Write(0x8000, 0x77)
	test.ExpectEquality(t, mem.Read(0x8000), 0x77)
	test.ExpectEquality(t, mem.Store[memorymap.AndyOffset], 0x77)

	// the rest of the bank is unaffected
	test.ExpectEquality(t, mem.Read(0x9000), 0x02)

	// ROMSELRAM has no effect on other models
	mem = memory.NewMemory(model(t, "B"))
	fillBanks(mem)
	mem.SelectROMBank(memorymap.ROMSELRAM | 0x02)
	test.ExpectEquality(t, mem.Read(0x8000), 0x02)
}

func TestACCCON(t *testing.T) {
	mem := memory.NewMemory(model(t, "MASTER"))
	fillBanks(mem)

	mem.Store[0x3000] = 0x11
	mem.Store[memorymap.LynneOffset] = 0x22
	mem.Store[memorymap.HazelOffset] = 0x33

	// X: LYNNE replaces main RAM
	mem.WriteACCCON(memorymap.ACCCONX)
	test.ExpectEquality(t, mem.Read(0x3000), 0x22)
	mem.WriteACCCON(0)
	test.ExpectEquality(t, mem.Read(0x3000), 0x11)

	// Y: HAZEL replaces the OS ROM and is writable
	mem.WriteACCCON(memorymap.ACCCONY)
	test.ExpectEquality(t, mem.Read(0xc000), 0x33)
	mem.Write(0xc000, 0x44)
	test.ExpectEquality(t, mem.Store[memorymap.HazelOffset], 0x44)
	test.ExpectEquality(t, mem.Read(0xe000), 0xee)
	mem.WriteACCCON(0)
	test.ExpectEquality(t, mem.Read(0xc000), 0xee)

	// D: video reads LYNNE
	test.ExpectEquality(t, mem.VideoRead(0x3000), 0x11)
	mem.WriteACCCON(memorymap.ACCCOND)
	test.ExpectEquality(t, mem.VideoRead(0x3000), 0x22)
}

func TestShadowFetchBank(t *testing.T) {
	mem := memory.NewMemory(model(t, "MASTER"))
	mem.Store[0x3000] = 0x11
	mem.Store[memorymap.LynneOffset] = 0x22

	// with E set, code in c000 -> dfff sees LYNNE
	mem.WriteACCCON(memorymap.ACCCONE)

	mem.SetFetchBank(0x1000)
	test.ExpectEquality(t, mem.Read(0x3000), 0x11)

	mem.SetFetchBank(0xc100)
	test.ExpectEquality(t, mem.Read(0x3000), 0x22)
	mem.SetFetchBank(0xdfff)
	test.ExpectEquality(t, mem.Read(0x3000), 0x22)

	mem.SetFetchBank(0xe000)
	test.ExpectEquality(t, mem.Read(0x3000), 0x11)

	mem.WriteACCCON(0)
	mem.SetFetchBank(0xc100)
	test.ExpectEquality(t, mem.Read(0x3000), 0x11)
}

func TestTST(t *testing.T) {
	mem := memory.NewMemory(model(t, "MASTER"))
	test.ExpectFailure(t, mem.TSTActive())
	mem.WriteACCCON(memorymap.ACCCONTST)
	test.ExpectSuccess(t, mem.TSTActive())

	mem.Store[memorymap.OSOffset+0x3e40] = 0x5a
	test.ExpectEquality(t, mem.OSByte(0xfe40), 0x5a)

	mem = memory.NewMemory(model(t, "B"))
	mem.WriteACCCON(memorymap.ACCCONTST)
	test.ExpectFailure(t, mem.TSTActive())
}

func TestACCCONOtherModels(t *testing.T) {
	for _, name := range []string{"B", "BSWRAM"} {
		mem := memory.NewMemory(model(t, name))
		fillBanks(mem)
		mem.Store[0x3000] = 0x11
		mem.Store[memorymap.LynneOffset] = 0x22

		mem.WriteACCCON(memorymap.ACCCOND | memorymap.ACCCONE | memorymap.ACCCONX | memorymap.ACCCONY)
		test.ExpectEquality(t, mem.ACCCON(), 0, name)
		test.ExpectEquality(t, mem.VideoRead(0x3000), 0x11, name)

		mem.SetFetchBank(0xc100)
		test.ExpectEquality(t, mem.Read(0x3000), 0x11, name)
		test.ExpectEquality(t, mem.Read(0xc000), mem.Store[memorymap.OSOffset], name)
	}
}

func TestResetClearsPaging(t *testing.T) {
	mem := memory.NewMemory(model(t, "MASTER"))
	fillBanks(mem)
	mem.SelectROMBank(5)
	mem.WriteACCCON(memorymap.ACCCONY)

	mem.HardReset(false)
	test.ExpectEquality(t, mem.ROMSEL(), 0)
	test.ExpectEquality(t, mem.ACCCON(), 0)
	test.ExpectEquality(t, mem.Read(0x8000), 0x00)
	test.ExpectEquality(t, mem.Read(0xc000), 0xee)
}

func TestPeekPoke(t *testing.T) {
	mem := memory.NewMemory(model(t, "B"))
	fillBanks(mem)
	mem.SelectROMBank(2)

	test.ExpectSuccess(t, mem.Poke(0x8000, 0x12))
	v, status := mem.Peek(0x8000)
	test.ExpectEquality(t, v, 0x12)
	test.ExpectEquality(t, status, memorymap.ROM)

	test.ExpectFailure(t, mem.Poke(0xfe40, 0x00))
	v, status = mem.Peek(0xfe40)
	test.ExpectEquality(t, v, 0xfe)
	test.ExpectEquality(t, status, memorymap.Device)
}

func TestImages(t *testing.T) {
	test.ExpectSuccess(t, memory.ValidateOS(memorymap.BankSize))
	test.ExpectSuccess(t, memory.ValidateOS(memorymap.BankSize*4))
	test.ExpectFailure(t, memory.ValidateOS(memorymap.BankSize-1))
	test.ExpectFailure(t, memory.ValidateOS(memorymap.BankSize+1))
	test.ExpectSuccess(t, errors.Is(memory.ValidateOS(100), memory.InvalidOSImage))

	test.ExpectSuccess(t, memory.ValidateROM(8192))
	test.ExpectSuccess(t, memory.ValidateROM(16384))
	test.ExpectFailure(t, memory.ValidateROM(4096))
	test.ExpectSuccess(t, errors.Is(memory.ValidateROM(0), memory.InvalidROMImage))

	mem := memory.NewMemory(model(t, "B"))

	// OS image with two extra banks
	img := make([]uint8, memorymap.BankSize*3)
	for i := range img {
		img[i] = uint8(i / memorymap.BankSize)
	}
	n, err := mem.LoadOS(img)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, 2)
	test.ExpectEquality(t, mem.Read(0xc000), 0x00)

	mem.SelectROMBank(14)
	test.ExpectEquality(t, mem.Read(0x8000), 0x01)
	mem.SelectROMBank(15)
	test.ExpectEquality(t, mem.Read(0xbfff), 0x02)

	rom := make([]uint8, 8192)
	rom[0] = 0xab
	test.DemandSuccess(t, mem.LoadROM(13, rom))
	mem.SelectROMBank(13)
	test.ExpectEquality(t, mem.Read(0x8000), 0xab)

	test.ExpectFailure(t, mem.LoadROM(16, rom))
	test.ExpectFailure(t, mem.LoadROM(0, rom[:100]))
}
