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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/beebcore/hardware/cpu/registers"
	"github.com/jetsetilly/beebcore/test"
)

func toBCD(v int) uint8 {
	return uint8((v/10)<<4 | (v % 10))
}

func TestDecimalAddCMOS(t *testing.T) {
	for a := 0; a < 100; a++ {
		for m := 0; m < 100; m++ {
			for c := 0; c < 2; c++ {
				r := registers.NewRegister(toBCD(a), "A")
				carry, _ := r.AddDecimalCMOS(toBCD(m), c == 1)
				sum := a + m + c
				test.ExpectEquality(t, r.Value(), toBCD(sum%100), a, m, c)
				test.ExpectEquality(t, carry, sum > 99, a, m, c)
			}
		}
	}
}

func TestDecimalAddNMOS(t *testing.T) {
	for a := 0; a < 100; a++ {
		for m := 0; m < 100; m++ {
			for c := 0; c < 2; c++ {
				r := registers.NewRegister(toBCD(a), "A")
				carry, zero, _, _ := r.AddDecimal(toBCD(m), c == 1)
				sum := a + m + c
				test.ExpectEquality(t, r.Value(), toBCD(sum%100), a, m, c)
				test.ExpectEquality(t, carry, sum > 99, a, m, c)

				// zero flag comes from the binary sum
				bin := (int(toBCD(a)) + int(toBCD(m)) + c) & 0xff
				test.ExpectEquality(t, zero, bin == 0, a, m, c)
			}
		}
	}
}

func TestDecimalNMOSDivergence(t *testing.T) {
	// 99 + 1 is zero in decimal but 0x9a in binary
	r := registers.NewRegister(0x99, "A")
	carry, zero, _, sign := r.AddDecimal(0x01, false)
	test.ExpectEquality(t, r.Value(), 0x00)
	test.ExpectSuccess(t, carry)
	test.ExpectFailure(t, zero)
	test.ExpectSuccess(t, sign)

	// the same operation on the CMOS part
	r.Load(0x99)
	carry, _ = r.AddDecimalCMOS(0x01, false)
	test.ExpectEquality(t, r.Value(), 0x00)
	test.ExpectSuccess(t, carry)
	test.ExpectSuccess(t, r.IsZero())
}

func TestDecimalSubtract(t *testing.T) {
	for a := 0; a < 100; a++ {
		for m := 0; m < 100; m++ {
			for c := 0; c < 2; c++ {
				diff := a - m - (1 - c)
				expected := toBCD((diff + 100) % 100)

				r := registers.NewRegister(toBCD(a), "A")
				carry, _, _, _ := r.SubtractDecimal(toBCD(m), c == 1)
				test.ExpectEquality(t, r.Value(), expected, "nmos", a, m, c)
				test.ExpectEquality(t, carry, diff >= 0, "nmos", a, m, c)

				r.Load(toBCD(a))
				carry, _ = r.SubtractDecimalCMOS(toBCD(m), c == 1)
				test.ExpectEquality(t, r.Value(), expected, "cmos", a, m, c)
				test.ExpectEquality(t, carry, diff >= 0, "cmos", a, m, c)
			}
		}
	}
}
