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

// Null is a peripheral that does nothing. Reads return the floating bus
// value for SHEILA.
type Null struct{}

func (Null) Read(addr uint16) uint8 {
	return uint8(addr >> 8)
}

func (Null) Write(_ uint16, _ uint8) {}

func (Null) Polltime(_ int) {}

// NullVideo is video circuitry that generates no picture.
type NullVideo struct {
	core   Core
	sysvia Peripheral
}

func (v *NullVideo) Polltime(_ int) {}

func (v *NullVideo) Reset(core Core, sysvia Peripheral) {
	v.core = core
	v.sysvia = sysvia
}

func (v *NullVideo) CRTC() Peripheral {
	return Null{}
}

func (v *NullVideo) ULA() Peripheral {
	return Null{}
}

// NullSound is a sound generator that generates no sound.
type NullSound struct{}

func (NullSound) Polltime(_ int) {}

func (NullSound) Reset(_ bool) {}

// NewNullSet is a Builder that creates a Set of null peripherals.
func NewNullSet(_ Core) *Set {
	s := &Set{}
	s.Fill()
	return s
}
