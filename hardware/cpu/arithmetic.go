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

package cpu

// adc adds the value to the accumulator. in decimal mode the flags are set
// differently depending on the processor variant and the 65C12 takes an
// extra cycle.
func (mc *CPU) adc(v uint8) {
	if !mc.Status.DecimalMode {
		mc.Status.Carry, mc.Status.Overflow = mc.A.Add(v, mc.Status.Carry)
		mc.Status.SetZN(mc.A.Value())
		return
	}

	if mc.IsCMOS() {
		mc.Polltime(1)
		mc.Status.Carry, mc.Status.Overflow = mc.A.AddDecimalCMOS(v, mc.Status.Carry)
		mc.Status.SetZN(mc.A.Value())
		return
	}

	mc.Status.Carry, mc.Status.Zero, mc.Status.Overflow, mc.Status.Sign = mc.A.AddDecimal(v, mc.Status.Carry)
}

// sbc subtracts the value from the accumulator. in binary mode this is
// exactly the same as adc() with the one's complement of the value.
func (mc *CPU) sbc(v uint8) {
	if !mc.Status.DecimalMode {
		mc.adc(v ^ 0xff)
		return
	}

	if mc.IsCMOS() {
		mc.Polltime(1)
		mc.Status.Carry, mc.Status.Overflow = mc.A.SubtractDecimalCMOS(v, mc.Status.Carry)
		mc.Status.SetZN(mc.A.Value())
		return
	}

	mc.Status.Carry, mc.Status.Zero, mc.Status.Overflow, mc.Status.Sign = mc.A.SubtractDecimal(v, mc.Status.Carry)
}

// compare sets the flags as though the value was subtracted from the
// register.
func (mc *CPU) compare(r uint8, v uint8) {
	mc.Status.Carry = r >= v
	mc.Status.SetZN(r - v)
}

// arr is the undocumented AND and ROR instruction of the NMOS part. the
// result and flags are affected by decimal mode.
func (mc *CPU) arr(v uint8) {
	if !mc.Status.DecimalMode {
		a := mc.A.Value() & v
		mc.Status.Overflow = ((a>>7)^(a>>6))&0x01 == 0x01
		a >>= 1
		if mc.Status.Carry {
			a |= 0x80
		}
		mc.A.Load(mc.setZN(a))
		mc.Status.Carry = a&0x40 == 0x40
		return
	}

	t := mc.A.Value() & v
	ah := t >> 4
	al := t & 0x0f

	a := t >> 1
	if mc.Status.Carry {
		a |= 0x80
	}
	mc.Status.Sign = mc.Status.Carry
	mc.Status.Zero = a == 0
	mc.Status.Overflow = (t^a)&0x40 == 0x40

	if al+(al&1) > 5 {
		a = (a & 0xf0) | ((a + 6) & 0x0f)
	}

	mc.Status.Carry = ah+(ah&1) > 5
	if mc.Status.Carry {
		a += 0x60
	}

	mc.A.Load(a)
}
