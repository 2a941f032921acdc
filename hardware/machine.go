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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/beebcore/hardware/cpu"
	"github.com/jetsetilly/beebcore/hardware/instance"
	"github.com/jetsetilly/beebcore/hardware/memory"
	"github.com/jetsetilly/beebcore/hardware/memory/bus"
	"github.com/jetsetilly/beebcore/hardware/memory/memorymap"
	"github.com/jetsetilly/beebcore/hardware/models"
	"github.com/jetsetilly/beebcore/hardware/peripherals"
	"github.com/jetsetilly/beebcore/logger"
)

// Images are the boot images of a machine.
type Images struct {
	// the OS image. one or more 16k banks. banks after the first are paged
	// ROMs. can be empty for test models
	OS []uint8

	// paged ROMs. the first ROM is placed in the slot immediately below any
	// extra banks in the OS image, the second ROM below that, and so on
	ROMs [][]uint8
}

// Machine is the main container for the emulated components of a BBC Micro.
type Machine struct {
	Instance *instance.Instance
	Model    models.Model

	CPU         *cpu.CPU
	Mem         *memory.Memory
	Bus         *bus.Dispatcher
	Peripherals *peripherals.Set

	builder peripherals.Builder

	// number of CPU cycles since the last hard reset
	elapsed int64
}

// clock advances the peripherals whenever the CPU consumes cycles.
type clock struct {
	m *Machine
}

func (c clock) Polltime(cycles int) {
	c.m.elapsed += int64(cycles)
	c.m.Peripherals.Polltime(cycles)
}

// core is the view of the machine given to the peripherals.
type core struct {
	m *Machine
}

func (c core) VideoRead(addr uint16) uint8 {
	return c.m.Mem.VideoRead(addr)
}

func (c core) SetIRQ(source uint8, asserted bool) {
	c.m.CPU.SetIRQ(source, asserted)
}

func (c core) NMI(level bool) {
	c.m.CPU.NMI(level)
}

// slots returns the ROM slot for each paged ROM.
func slots(extraBanks int, numROMs int) ([]int, error) {
	first := memorymap.NumROMBanks - extraBanks - 1
	if numROMs > first+1 {
		return nil, fmt.Errorf("%w: too many ROMs (%d) for the available slots (%d)",
			memory.InvalidROMImage, numROMs, first+1)
	}
	s := make([]int, numROMs)
	for i := range s {
		s[i] = first - i
	}
	return s, nil
}

// NewMachine creates a new Machine of the specified model. If builder is nil
// then the machine uses null peripherals.
//
// The images are validated before the machine is created.
func NewMachine(ins *instance.Instance, model models.Model, images Images, builder peripherals.Builder) (*Machine, error) {
	var romSlots []int
	var err error

	if len(images.OS) > 0 || !model.IsTest {
		if err := memory.ValidateOS(len(images.OS)); err != nil {
			return nil, fmt.Errorf("machine: %w", err)
		}
		romSlots, err = slots(len(images.OS)/memorymap.BankSize-1, len(images.ROMs))
		if err != nil {
			return nil, fmt.Errorf("machine: %w", err)
		}
	} else if len(images.ROMs) > 0 {
		return nil, fmt.Errorf("machine: %w: paged ROMs require an OS image", memory.InvalidROMImage)
	}

	for i, r := range images.ROMs {
		if err := memory.ValidateROM(len(r)); err != nil {
			return nil, fmt.Errorf("machine: ROM %d: %w", i, err)
		}
	}

	if ins == nil {
		ins, err = instance.NewInstance(instance.Main, nil)
		if err != nil {
			return nil, fmt.Errorf("machine: %w", err)
		}
	}

	if builder == nil {
		builder = peripherals.NewNullSet
	}

	m := &Machine{
		Instance: ins,
		Model:    model,
		builder:  builder,
	}

	m.Mem = memory.NewMemory(model)
	if len(images.OS) > 0 {
		extra, err := m.Mem.LoadOS(images.OS)
		if err != nil {
			return nil, fmt.Errorf("machine: %w", err)
		}
		logger.Logf(logger.Allow, ins.Tag("machine"), "OS loaded with %d extra banks", extra)

		for i, r := range images.ROMs {
			if err := m.Mem.LoadROM(romSlots[i], r); err != nil {
				return nil, fmt.Errorf("machine: %w", err)
			}
			logger.Logf(logger.Allow, ins.Tag("machine"), "ROM %d loaded into slot %d", i, romSlots[i])
		}
	}

	m.Bus = bus.NewDispatcher(model.IsMaster, m.Mem)
	m.Mem.Plumb(m.Bus)

	m.CPU = cpu.NewCPU(model.Variant, m.Mem, clock{m: m})

	m.Reset(true)

	return m, nil
}

func (m *Machine) String() string {
	return fmt.Sprintf("%s: %s %s", m.Model.Name, m.CPU, m.Mem)
}

// Reset the machine. A hard reset is a power-on reset: the memory tables are
// rebuilt and the peripherals are recreated. A soft reset is equivalent to
// pressing the BREAK key: the memory map is preserved and only the CPU and
// the video circuitry are reset.
func (m *Machine) Reset(hard bool) {
	if hard {
		m.Mem.HardReset(m.Model.IsTest)
		m.elapsed = 0

		m.Peripherals = m.builder(core{m: m})
		m.Peripherals.Fill()
		m.attach()
		m.Peripherals.Reset(true)

		logger.Logf(logger.Allow, m.Instance.Tag("machine"), "hard reset (%s)", m.Model.Name)
	}

	m.CPU.Reset()
	m.Peripherals.Video.Reset(core{m: m}, m.Peripherals.SysVIA)
}

// attach the peripherals to the device dispatcher. the list of devices is
// fixed and every entry is attachable so an error is a programming error.
func (m *Machine) attach() {
	p := m.Peripherals
	for _, d := range []struct {
		id  bus.DeviceID
		reg bus.Register
	}{
		{bus.CRTC, p.Video.CRTC()},
		{bus.ULA, p.Video.ULA()},
		{bus.ACIA, p.ACIA},
		{bus.Serial, p.Serial},
		{bus.SysVIA, p.SysVIA},
		{bus.UserVIA, p.UserVIA},
		{bus.FDC, p.FDC},
		{bus.ADC, p.ADC},
		{bus.Tube, p.Tube},
	} {
		if err := m.Bus.Attach(d.id, d.reg); err != nil {
			panic(fmt.Sprintf("machine: %v", err))
		}
	}
}

// Elapsed returns the number of CPU cycles since the last hard reset.
func (m *Machine) Elapsed() int64 {
	return m.elapsed
}
