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

import (
	"testing"

	"github.com/jetsetilly/beebcore/hardware/cpu/instructions"
	"github.com/jetsetilly/beebcore/hardware/cpu/registers"
	"github.com/jetsetilly/beebcore/test"
)

type flags struct {
	a          uint8
	c, v, z, n bool
}

func state(mc *CPU) flags {
	return flags{
		a: mc.A.Value(),
		c: mc.Status.Carry,
		v: mc.Status.Overflow,
		z: mc.Status.Zero,
		n: mc.Status.Sign,
	}
}

func TestSubtractionIdentity(t *testing.T) {
	for _, variant := range []instructions.Variant{instructions.NMOS, instructions.CMOS} {
		mc := &CPU{variant: variant}
		for a := 0; a < 256; a++ {
			for m := 0; m < 256; m++ {
				for _, c := range []bool{false, true} {
					mc.Status = registers.StatusRegister{Carry: c}
					mc.A.Load(uint8(a))
					mc.sbc(uint8(m))
					sub := state(mc)

					mc.Status = registers.StatusRegister{Carry: c}
					mc.A.Load(uint8(a))
					mc.adc(uint8(m) ^ 0xff)
					add := state(mc)

					if sub != add {
						t.Fatalf("%s: sbc(%02x) with A=%02x C=%v: %+v != %+v", variant, m, a, c, sub, add)
					}
				}
			}
		}
	}
}

func bcd(v int) uint8 {
	return uint8((v/10)<<4 | (v % 10))
}

func TestDecimalAddition(t *testing.T) {
	cmos := &CPU{variant: instructions.CMOS}
	nmos := &CPU{variant: instructions.NMOS}

	for a := 0; a < 100; a++ {
		for m := 0; m < 100; m++ {
			for c := 0; c < 2; c++ {
				sum := a + m + c

				// the NMOS sign flag is taken from the high digit after the
				// carry from the low digit but before the high digit is
				// corrected
				hi := a/10 + m/10
				if a%10+m%10+c > 9 {
					hi++
				}

				cmos.Status = registers.StatusRegister{DecimalMode: true, Carry: c == 1}
				cmos.A.Load(bcd(a))
				cycles := cmos.Cycles
				cmos.adc(bcd(m))
				test.ExpectEquality(t, cmos.A.Value(), bcd(sum%100), a, m, c)
				test.ExpectEquality(t, cmos.Status.Carry, sum > 99, a, m, c)
				test.ExpectEquality(t, cmos.Status.Zero, sum%100 == 0, a, m, c)
				test.ExpectEquality(t, cmos.Status.Sign, bcd(sum%100)&0x80 == 0x80, a, m, c)
				test.ExpectEquality(t, cycles-cmos.Cycles, 1, a, m, c)

				nmos.Status = registers.StatusRegister{DecimalMode: true, Carry: c == 1}
				nmos.A.Load(bcd(a))
				cycles = nmos.Cycles
				nmos.adc(bcd(m))
				test.ExpectEquality(t, nmos.A.Value(), bcd(sum%100), a, m, c)
				test.ExpectEquality(t, nmos.Status.Carry, sum > 99, a, m, c)
				test.ExpectEquality(t, nmos.Status.Zero, (int(bcd(a))+int(bcd(m))+c)&0xff == 0, a, m, c)
				test.ExpectEquality(t, nmos.Status.Sign, hi&0x08 == 0x08, a, m, c)
				test.ExpectEquality(t, cycles-nmos.Cycles, 0, a, m, c)
			}
		}
	}
}

func TestARR(t *testing.T) {
	mc := &CPU{variant: instructions.NMOS}

	mc.A.Load(0xff)
	mc.Status = registers.StatusRegister{Carry: true}
	mc.arr(0xc0)
	test.ExpectEquality(t, mc.A.Value(), 0xe0)
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectFailure(t, mc.Status.Overflow)
	test.ExpectSuccess(t, mc.Status.Sign)

	mc.A.Load(0x40)
	mc.Status = registers.StatusRegister{}
	mc.arr(0xff)
	test.ExpectEquality(t, mc.A.Value(), 0x20)
	test.ExpectFailure(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Overflow)

	// decimal mode
	mc.A.Load(0xff)
	mc.Status = registers.StatusRegister{DecimalMode: true}
	mc.arr(0xff)
	test.ExpectEquality(t, mc.A.Value(), 0xd5)
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectFailure(t, mc.Status.Sign)
}
