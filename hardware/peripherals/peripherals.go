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

package peripherals

// Peripheral is a chip that appears in device space and is clocked by the
// CPU.
type Peripheral interface {
	// the address is passed unchanged so that the peripheral can decode the
	// low bits itself
	Read(addr uint16) uint8
	Write(addr uint16, data uint8)

	// cycles have passed since the previous call to Polltime()
	Polltime(cycles int)
}

// Core is the view of the machine given to peripherals.
type Core interface {
	// read memory as the video circuitry sees it
	VideoRead(addr uint16) uint8

	// assert or release the IRQ line on behalf of a source. each source must
	// use a different bit
	SetIRQ(source uint8, asserted bool)

	// set the NMI latch
	NMI(level bool)
}

// Video is the CRTC and video ULA pair. The video circuitry is clocked like
// any other peripheral but is reset with the system VIA, through which it
// signals vertical sync.
type Video interface {
	Polltime(cycles int)
	Reset(core Core, sysvia Peripheral)

	// the two halves of the video circuitry that appear in device space
	CRTC() Peripheral
	ULA() Peripheral
}

// Sound is the sound generator. It does not appear in device space and is
// reached through the system VIA.
type Sound interface {
	Polltime(cycles int)
	Reset(hard bool)
}

// Resetter is implemented by peripherals that have state to reset on a
// reset of the machine. The hard flag indicates a power-on reset.
type Resetter interface {
	Reset(hard bool)
}

// IRQ sources used by the built in peripherals. Additional peripherals should
// use bits that are not listed here.
const (
	IRQSysVIA  = uint8(0x01)
	IRQUserVIA = uint8(0x02)
	IRQACIA    = uint8(0x04)
	IRQTube    = uint8(0x08)
)

// Set is the collection of peripherals attached to a machine.
type Set struct {
	SysVIA  Peripheral
	UserVIA Peripheral
	ACIA    Peripheral
	Serial  Peripheral
	FDC     Peripheral
	ADC     Peripheral
	Tube    Peripheral
	Video   Video
	Sound   Sound
}

// Builder creates a new Set of peripherals. It is called on every hard reset
// of the machine.
type Builder func(core Core) *Set

// Polltime advances every clocked peripheral. The order is fixed and matches
// the order in which the chips react to the clock in the hardware.
func (s *Set) Polltime(cycles int) {
	s.SysVIA.Polltime(cycles)
	s.UserVIA.Polltime(cycles)
	s.FDC.Polltime(cycles)
	s.ACIA.Polltime(cycles)
	s.Video.Polltime(cycles)
	s.Sound.Polltime(cycles)
}

// Reset all peripherals that implement the Resetter interface. The video
// circuitry is not reset by this function. See Video.Reset().
func (s *Set) Reset(hard bool) {
	for _, p := range []any{s.SysVIA, s.UserVIA, s.ACIA, s.Serial, s.FDC, s.ADC, s.Tube} {
		if r, ok := p.(Resetter); ok {
			r.Reset(hard)
		}
	}
	s.Sound.Reset(hard)
}

// Fill replaces nil entries in the Set with null implementations.
func (s *Set) Fill() {
	for _, p := range []*Peripheral{&s.SysVIA, &s.UserVIA, &s.ACIA, &s.Serial, &s.FDC, &s.ADC, &s.Tube} {
		if *p == nil {
			*p = Null{}
		}
	}
	if s.Video == nil {
		s.Video = &NullVideo{}
	}
	if s.Sound == nil {
		s.Sound = NullSound{}
	}
}
