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

import (
	"fmt"

	"github.com/jetsetilly/beebcore/hardware/memory/memorymap"
)

// DeviceID identifies a device that responds in device space.
type DeviceID int

// List of valid DeviceID values.
const (
	Floating DeviceID = iota
	CRTC
	ACIA
	Serial
	ULA
	ROMSEL
	ACCCON
	SysVIA
	UserVIA
	FDC
	ADC
	Tube
	numDevices
)

var deviceNames = [numDevices]string{
	"floating", "CRTC", "ACIA", "serial", "ULA", "ROMSEL", "ACCCON",
	"system VIA", "user VIA", "FDC", "ADC", "tube",
}

func (id DeviceID) String() string {
	if id < 0 || id >= numDevices {
		return "unknown"
	}
	return deviceNames[id]
}

// constraint on the models for which a window entry applies.
type constraint int

const (
	anyModel constraint = iota
	masterOnly
	nonMaster
)

// the type of access for which a window entry applies.
type access int

const (
	readWrite access = iota
	readOnly
	writeOnly
)

type window struct {
	origin uint16
	memtop uint16
	device DeviceID
	access access
	models constraint
}

// windows describes the decoding of device space. An address that is not
// covered by any applicable entry reads from the floating bus and ignores
// writes. The SID cartridge at fc20 and the IDE interface at fc40 are not
// emulated and so do not appear.
//
// Later entries take precedence over earlier ones.
var windows = []window{
	{0xfe00, 0xfe07, CRTC, readWrite, anyModel},
	{0xfe08, 0xfe0f, ACIA, readWrite, anyModel},
	{0xfe10, 0xfe17, Serial, readWrite, anyModel},
	{0xfe18, 0xfe1b, ADC, readWrite, masterOnly},
	{0xfe20, 0xfe23, ULA, writeOnly, anyModel},
	{0xfe24, 0xfe27, ULA, writeOnly, nonMaster},
	{0xfe24, 0xfe2b, FDC, readWrite, masterOnly},
	{0xfe30, 0xfe33, ROMSEL, writeOnly, anyModel},
	{0xfe34, 0xfe37, ACCCON, readWrite, masterOnly},
	{0xfe40, 0xfe5f, SysVIA, readWrite, anyModel},
	{0xfe60, 0xfe7f, UserVIA, readWrite, anyModel},
	{0xfe80, 0xfe9f, FDC, readWrite, nonMaster},
	{0xfec0, 0xfedf, ADC, readWrite, nonMaster},
	{0xfee0, 0xfeff, Tube, readWrite, anyModel},
}

const windowSize = 4
const numWindows = int(memorymap.MemtopDevice-memorymap.OriginDevice+1) / windowSize

// Dispatcher decodes accesses to device space. It implements the
// memory.Device interface.
type Dispatcher struct {
	paging  Paging
	devices [numDevices]Register

	read  [numWindows]DeviceID
	write [numWindows]DeviceID
}

// NewDispatcher is the preferred method of initialisation for the Dispatcher
// type. The decoding tables are built for the model. All devices other than
// the paging registers are initially unattached and behave like the floating
// bus.
func NewDispatcher(isMaster bool, paging Paging) *Dispatcher {
	d := &Dispatcher{paging: paging}

	for _, w := range windows {
		switch w.models {
		case masterOnly:
			if !isMaster {
				continue
			}
		case nonMaster:
			if isMaster {
				continue
			}
		}

		for a := int(w.origin); a <= int(w.memtop); a += windowSize {
			i := (a - int(memorymap.OriginDevice)) / windowSize
			if w.access != writeOnly {
				d.read[i] = w.device
			}
			if w.access != readOnly {
				d.write[i] = w.device
			}
		}
	}

	return d
}

// Attach a device to the Dispatcher. Attaching nil detaches the device. The
// paging registers cannot be attached.
func (d *Dispatcher) Attach(id DeviceID, reg Register) error {
	switch id {
	case Floating, ROMSEL, ACCCON:
		return fmt.Errorf("bus: %s cannot be attached", id)
	}
	if id < 0 || id >= numDevices {
		return fmt.Errorf("bus: unknown device (%d)", id)
	}
	d.devices[id] = reg
	return nil
}

// Decode returns the DeviceID that responds to an access of the address.
func (d *Dispatcher) Decode(addr uint16, write bool) DeviceID {
	if addr < memorymap.OriginDevice || addr > memorymap.MemtopDevice {
		return Floating
	}
	i := (addr - memorymap.OriginDevice) / windowSize
	if write {
		return d.write[i]
	}
	return d.read[i]
}

// Read implements the memory.Device interface.
func (d *Dispatcher) Read(addr uint16) uint8 {
	if d.paging.TSTActive() {
		return d.paging.OSByte(addr)
	}

	switch id := d.Decode(addr, false); id {
	case Floating:
	case ACCCON:
		return d.paging.ACCCON()
	default:
		if reg := d.devices[id]; reg != nil {
			return reg.Read(addr)
		}
	}

	return memorymap.FloatingBus(addr)
}

// Write implements the memory.Device interface.
func (d *Dispatcher) Write(addr uint16, data uint8) {
	switch id := d.Decode(addr, true); id {
	case Floating:
	case ROMSEL:
		d.paging.SelectROMBank(data)
	case ACCCON:
		d.paging.WriteACCCON(data)
	default:
		if reg := d.devices[id]; reg != nil {
			reg.Write(addr, data)
		}
	}
}
