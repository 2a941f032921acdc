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

package registers

// The NMOS 6502 and the CMOS 65C12 agree on the result of a decimal mode
// addition or subtraction when the operands are valid BCD. They disagree on
// how the zero and sign flags are derived. The NMOS part derives them from
// intermediate values in the adder, the CMOS part derives them from the final
// result.
//
// Flag behaviour for the NMOS part follows the visual6502 traces and 64doc.

// AddDecimal adds val to the register as though both were BCD numbers, as
// performed by the NMOS 6502. Returns carry, zero, overflow and sign.
//
// The zero flag is taken from the binary sum. The sign and overflow flags are
// taken after the low nibble has been adjusted but before the high nibble is
// adjusted.
func (r *Register) AddDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	a := int(r.value)
	m := int(val)
	c := 0
	if carry {
		c = 1
	}

	zero = (a+m+c)&0xff == 0

	lo := (a & 0x0f) + (m & 0x0f) + c
	hi := 0
	if lo > 9 {
		lo = (lo - 10) & 0x0f
		hi = 1
	}
	hi += (a >> 4) + (m >> 4)

	sign = hi&0x08 == 0x08
	overflow = (a^m)&0x80 == 0 && (a^(hi<<4))&0x80 != 0

	if hi > 9 {
		rcarry = true
		hi = (hi - 10) & 0x0f
	}

	r.value = uint8((lo & 0x0f) | (hi << 4))
	return rcarry, zero, overflow, sign
}

// AddDecimalCMOS adds val to the register as though both were BCD numbers, as
// performed by the 65C12. Returns carry and overflow. The zero and sign flags
// should be taken from the new value of the register.
func (r *Register) AddDecimalCMOS(val uint8, carry bool) (rcarry, overflow bool) {
	a := int(r.value)
	m := int(val)
	c := 0
	if carry {
		c = 1
	}

	lo := (a & 0x0f) + (m & 0x0f) + c
	hi := (a >> 4) + (m >> 4)
	if lo > 9 {
		lo = (lo - 10) & 0x0f
		hi++
	}

	overflow = (a^m)&0x80 == 0 && (a^(hi<<4))&0x80 != 0

	if hi > 9 {
		rcarry = true
		hi = (hi - 10) & 0x0f
	}

	r.value = uint8(lo | (hi << 4))
	return rcarry, overflow
}

// SubtractDecimal subtracts val from the register as though both were BCD
// numbers, as performed by the NMOS 6502. The carry argument is the state of
// the carry flag (ie. true means no borrow). Returns carry, zero, overflow
// and sign, all of which are derived from the binary subtraction.
func (r *Register) SubtractDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	a := int(r.value)
	m := int(val)
	borrow := 1
	if carry {
		borrow = 0
	}

	lo := (a & 0x0f) - (m & 0x0f) - borrow
	hi := (a >> 4) - (m >> 4)
	if lo&0x10 != 0 {
		lo = (lo - 6) & 0x0f
		hi--
	}
	if hi&0x10 != 0 {
		hi = (hi - 6) & 0x0f
	}

	result := a - m - borrow
	sign = result&0x80 != 0
	zero = result&0xff == 0
	overflow = (a^result)&(m^a)&0x80 != 0
	rcarry = result&0x100 == 0

	r.value = uint8((lo & 0x0f) | (hi << 4))
	return rcarry, zero, overflow, sign
}

// SubtractDecimalCMOS subtracts val from the register as though both were BCD
// numbers, as performed by the 65C12. Returns carry and overflow, which are
// the same as for a binary subtraction. The zero and sign flags should be
// taken from the new value of the register.
func (r *Register) SubtractDecimalCMOS(val uint8, carry bool) (rcarry, overflow bool) {
	a := int(r.value)
	m := int(val)
	borrow := 1
	if carry {
		borrow = 0
	}

	lo := (a & 0x0f) - (m & 0x0f) - borrow
	result := a - m - borrow
	if result < 0 {
		result -= 0x60
	}
	if lo < 0 {
		result -= 0x06
	}

	bin := *r
	rcarry, overflow = bin.Subtract(val, carry)

	r.value = uint8(result)
	return rcarry, overflow
}
