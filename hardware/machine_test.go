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

package hardware_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/beebcore/debugger/govern"
	"github.com/jetsetilly/beebcore/hardware"
	"github.com/jetsetilly/beebcore/hardware/instance"
	"github.com/jetsetilly/beebcore/hardware/memory"
	"github.com/jetsetilly/beebcore/hardware/memory/memorymap"
	"github.com/jetsetilly/beebcore/hardware/models"
	"github.com/jetsetilly/beebcore/hardware/peripherals"
	"github.com/jetsetilly/beebcore/test"
)

const irqDestination = 0xc100

// osImage returns a 16k OS image with the reset vector pointing at 0200 and
// the IRQ vector pointing at irqDestination.
func osImage() []uint8 {
	img := make([]uint8, memorymap.BankSize)
	img[0x3ffc] = 0x00
	img[0x3ffd] = 0x02
	img[0x3ffe] = irqDestination & 0xff
	img[0x3fff] = irqDestination >> 8
	return img
}

func newMachine(t *testing.T, name string, images hardware.Images, builder peripherals.Builder) *hardware.Machine {
	t.Helper()
	model, err := models.Find(name)
	test.DemandSuccess(t, err)
	ins, err := instance.NewInstance(instance.Test, nil)
	test.DemandSuccess(t, err)
	m, err := hardware.NewMachine(ins, model, images, builder)
	test.DemandSuccess(t, err)
	return m
}

func TestBootAndBreak(t *testing.T) {
	m := newMachine(t, "B", hardware.Images{OS: osImage()}, nil)

	copy(m.Mem.Store[0x0200:], []uint8{0xa9, 0x42, 0x00})
	m.Reset(false)
	test.ExpectEquality(t, m.CPU.PC.Address(), 0x0200)

	// LDA immediate and BRK
	test.DemandSuccess(t, m.Instance.Prefs.CyclesPerBurst.Set(9))
	test.ExpectSuccess(t, m.RunBurst())

	test.ExpectEquality(t, m.CPU.A.Value(), 0x42)
	test.ExpectEquality(t, m.CPU.PC.Address(), irqDestination)
	test.ExpectEquality(t, m.CPU.History.Prev(1), 0x0200)

	pushed := m.Mem.Store[0x100+int(m.CPU.SP.Value())+1]
	test.ExpectEquality(t, pushed&0x10, 0x10)
	test.ExpectEquality(t, m.Elapsed(), int64(9))
}

func TestROMSelect(t *testing.T) {
	m := newMachine(t, "B", hardware.Images{OS: osImage()}, nil)
	for b := range memorymap.NumROMBanks {
		m.Mem.Store[memorymap.ROMOffset+b*memorymap.BankSize+0x1000] = uint8(0xa0 + b)
	}

	m.Mem.Write(0xfe30, 0x03)
	expected := m.Mem.Store[memorymap.ROMOffset+0x03*memorymap.BankSize+(0x9000-0x8000)]
	test.ExpectEquality(t, m.Mem.Read(0x9000), expected)
	test.ExpectEquality(t, m.Mem.Read(0x9000), 0xa3)

	// soft reset preserves the memory map
	m.Reset(false)
	test.ExpectEquality(t, m.Mem.Read(0x9000), 0xa3)
	test.ExpectEquality(t, m.Mem.ROMSEL(), 0x03)

	// hard reset does not
	m.Reset(true)
	test.ExpectEquality(t, m.Mem.Read(0x9000), 0xa0)
	test.ExpectEquality(t, m.Mem.ROMSEL(), 0x00)
}

func TestUnassignedDevice(t *testing.T) {
	for _, name := range []string{"B", "MASTER"} {
		m := newMachine(t, name, hardware.Images{OS: osImage()}, nil)
		test.ExpectEquality(t, m.Mem.Read(0xfc60), 0xff, name)
		test.ExpectEquality(t, m.Mem.Read(0xfc7f), 0xff, name)
	}
}

func TestImageValidation(t *testing.T) {
	model, err := models.Find("B")
	test.DemandSuccess(t, err)

	_, err = hardware.NewMachine(nil, model, hardware.Images{OS: make([]uint8, 1000)}, nil)
	test.ExpectSuccess(t, errors.Is(err, memory.InvalidOSImage))

	_, err = hardware.NewMachine(nil, model, hardware.Images{}, nil)
	test.ExpectSuccess(t, errors.Is(err, memory.InvalidOSImage))

	_, err = hardware.NewMachine(nil, model, hardware.Images{
		OS:   osImage(),
		ROMs: [][]uint8{make([]uint8, 100)},
	}, nil)
	test.ExpectSuccess(t, errors.Is(err, memory.InvalidROMImage))

	roms := make([][]uint8, 17)
	for i := range roms {
		roms[i] = make([]uint8, 8192)
	}
	_, err = hardware.NewMachine(nil, model, hardware.Images{OS: osImage(), ROMs: roms}, nil)
	test.ExpectSuccess(t, errors.Is(err, memory.InvalidROMImage))

	// test models do not need an OS
	model, err = models.Find("TEST6502")
	test.DemandSuccess(t, err)
	_, err = hardware.NewMachine(nil, model, hardware.Images{}, nil)
	test.ExpectSuccess(t, err)
}

func TestROMPlacement(t *testing.T) {
	os := make([]uint8, memorymap.BankSize*2)
	copy(os, osImage())
	os[memorymap.BankSize] = 0xee

	basic := make([]uint8, memorymap.BankSize)
	basic[0] = 0xb1
	dfs := make([]uint8, memorymap.BankSize/2)
	dfs[0] = 0xdf

	m := newMachine(t, "B", hardware.Images{OS: os, ROMs: [][]uint8{basic, dfs}}, nil)

	m.Mem.SelectROMBank(15)
	test.ExpectEquality(t, m.Mem.Read(0x8000), 0xee)
	m.Mem.SelectROMBank(14)
	test.ExpectEquality(t, m.Mem.Read(0x8000), 0xb1)
	m.Mem.SelectROMBank(13)
	test.ExpectEquality(t, m.Mem.Read(0x8000), 0xdf)
}

type countingVIA struct {
	peripherals.Null
	cycles int
	resets int
}

func (v *countingVIA) Polltime(cycles int) {
	v.cycles += cycles
}

func (v *countingVIA) Reset(_ bool) {
	v.resets++
}

func TestPeripheralClocking(t *testing.T) {
	var via *countingVIA
	builder := func(_ peripherals.Core) *peripherals.Set {
		via = &countingVIA{}
		return &peripherals.Set{SysVIA: via}
	}

	m := newMachine(t, "TEST6502", hardware.Images{}, builder)
	test.ExpectEquality(t, via.resets, 1)

	// NOPs everywhere
	for i := range 0x10000 {
		m.Mem.Store[i] = 0xea
	}
	m.Reset(false)

	m.RunForCycles(1000)
	test.ExpectEquality(t, int64(via.cycles), m.Elapsed())
	test.ExpectEquality(t, via.cycles, 1000)

	// a hard reset recreates the peripherals
	old := via
	m.Reset(true)
	test.ExpectInequality(t, via, old)
	test.ExpectEquality(t, via.cycles, 0)
}

// tagged is a peripheral that returns its own value for every read.
type tagged uint8

func (p tagged) Read(_ uint16) uint8     { return uint8(p) }
func (p tagged) Write(_ uint16, _ uint8) {}
func (p tagged) Polltime(_ int)          {}

type taggedVideo struct {
	peripherals.NullVideo
}

func (v *taggedVideo) CRTC() peripherals.Peripheral {
	return tagged(0x10)
}

func TestPeripheralAttachment(t *testing.T) {
	builder := func(_ peripherals.Core) *peripherals.Set {
		return &peripherals.Set{
			SysVIA:  tagged(0x01),
			UserVIA: tagged(0x02),
			ACIA:    tagged(0x03),
			Serial:  tagged(0x04),
			FDC:     tagged(0x05),
			ADC:     tagged(0x06),
			Tube:    tagged(0x07),
			Video:   &taggedVideo{},
		}
	}

	m := newMachine(t, "B", hardware.Images{OS: osImage()}, builder)
	for addr, v := range map[uint16]uint8{
		0xfe00: 0x10,
		0xfe08: 0x03,
		0xfe10: 0x04,
		0xfe40: 0x01,
		0xfe60: 0x02,
		0xfe80: 0x05,
		0xfec0: 0x06,
		0xfee0: 0x07,
	} {
		test.ExpectEquality(t, m.Mem.Read(addr), v, addr)
	}

	// the peripherals are attached again after a hard reset
	m.Reset(true)
	test.ExpectEquality(t, m.Mem.Read(0xfe40), 0x01)
}

func TestRun(t *testing.T) {
	m := newMachine(t, "TEST6502", hardware.Images{}, nil)
	for i := range 0x10000 {
		m.Mem.Store[i] = 0xea
	}
	m.Reset(false)
	test.DemandSuccess(t, m.Instance.Prefs.CyclesPerBurst.Set(100))

	bursts := 0
	stopped, err := m.Run(func() (govern.State, error) {
		bursts++
		if bursts == 5 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, stopped)
	test.ExpectEquality(t, m.Elapsed(), int64(500))

	// the instruction hook stops the emulation
	m.CPU.SetInstructionHook(func(pc uint16, _ uint8) bool {
		return pc == 0x1000
	})
	m.CPU.PC.Load(0x0ff0)
	stopped, err = m.Run(nil)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, stopped)
	test.ExpectEquality(t, m.CPU.PC.Address(), 0x1000)

	m.CPU.SetInstructionHook(nil)
	stopped, err = m.Run(func() (govern.State, error) { return govern.Paused, nil })
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, stopped)
	test.ExpectEquality(t, m.Elapsed(), int64(700))

	_, err = m.Run(func() (govern.State, error) { return govern.Stepping, nil })
	test.ExpectFailure(t, err)
}

func TestRunJammed(t *testing.T) {
	m := newMachine(t, "TEST6502", hardware.Images{}, nil)
	for i := range 0x10000 {
		m.Mem.Store[i] = 0xea
	}
	m.Mem.Store[0x1000] = 0x02
	m.Mem.Store[0xfffc] = 0x00
	m.Mem.Store[0xfffd] = 0x10
	m.Reset(false)

	// Run returns even though the continue check never stops it
	stopped, err := m.Run(nil)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, stopped)
	test.ExpectSuccess(t, m.CPU.Jammed())
	test.ExpectEquality(t, m.CPU.PC.Address(), 0x1000)

	test.ExpectFailure(t, m.RunForCycles(1000))
	test.ExpectEquality(t, m.CPU.PC.Address(), 0x1000)
}

func TestStrings(t *testing.T) {
	m := newMachine(t, "TEST6502", hardware.Images{}, nil)
	copy(m.Mem.Store[0x2000:], "HELLO\rWORLD\x00")

	test.ExpectEquality(t, m.ReadString(0x2000), "HELLO")
	test.ExpectEquality(t, m.ReadString(0x2006), "WORLD")

	addr, ok := m.FindString("WORLD", 0x1000)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, addr, 0x2006)

	_, ok = m.FindString("WORLD", 0x2007)
	test.ExpectFailure(t, ok)
}
