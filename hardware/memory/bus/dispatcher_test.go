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

package bus_test

import (
	"testing"

	"github.com/jetsetilly/beebcore/hardware/memory/bus"
	"github.com/jetsetilly/beebcore/test"
)

type mockPaging struct {
	romsel uint8
	acccon uint8
	tst    bool
}

func (p *mockPaging) SelectROMBank(b uint8) { p.romsel = b }
func (p *mockPaging) WriteACCCON(b uint8)   { p.acccon = b }
func (p *mockPaging) ACCCON() uint8         { return p.acccon }
func (p *mockPaging) TSTActive() bool       { return p.tst }
func (p *mockPaging) OSByte(addr uint16) uint8 {
	return uint8(addr & 0x3f)
}

type mockRegister struct {
	value  uint8
	reads  int
	writes int
	last   uint16
}

func (r *mockRegister) Read(addr uint16) uint8 {
	r.reads++
	r.last = addr
	return r.value
}

func (r *mockRegister) Write(addr uint16, _ uint8) {
	r.writes++
	r.last = addr
}

func TestDecode(t *testing.T) {
	b := bus.NewDispatcher(false, &mockPaging{})
	m := bus.NewDispatcher(true, &mockPaging{})

	cases := []struct {
		addr   uint16
		write  bool
		b      bus.DeviceID
		master bus.DeviceID
	}{
		{0xfe00, false, bus.CRTC, bus.CRTC},
		{0xfe07, true, bus.CRTC, bus.CRTC},
		{0xfe08, false, bus.ACIA, bus.ACIA},
		{0xfe14, false, bus.Serial, bus.Serial},
		{0xfe18, false, bus.Floating, bus.ADC},
		{0xfe18, true, bus.Floating, bus.ADC},
		{0xfe20, true, bus.ULA, bus.ULA},
		{0xfe20, false, bus.Floating, bus.Floating},
		{0xfe24, true, bus.ULA, bus.FDC},
		{0xfe28, true, bus.Floating, bus.FDC},
		{0xfe28, false, bus.Floating, bus.FDC},
		{0xfe30, true, bus.ROMSEL, bus.ROMSEL},
		{0xfe30, false, bus.Floating, bus.Floating},
		{0xfe34, true, bus.Floating, bus.ACCCON},
		{0xfe34, false, bus.Floating, bus.ACCCON},
		{0xfe40, false, bus.SysVIA, bus.SysVIA},
		{0xfe5f, true, bus.SysVIA, bus.SysVIA},
		{0xfe60, false, bus.UserVIA, bus.UserVIA},
		{0xfe80, false, bus.FDC, bus.Floating},
		{0xfec0, false, bus.ADC, bus.Floating},
		{0xfee0, false, bus.Tube, bus.Tube},
		{0xfc20, false, bus.Floating, bus.Floating},
		{0xfc40, true, bus.Floating, bus.Floating},
		{0x8000, false, bus.Floating, bus.Floating},
	}

	for _, c := range cases {
		test.ExpectEquality(t, b.Decode(c.addr, c.write), c.b, "B", c.addr, c.write)
		test.ExpectEquality(t, m.Decode(c.addr, c.write), c.master, "MASTER", c.addr, c.write)
	}
}

func TestFloatingBus(t *testing.T) {
	d := bus.NewDispatcher(false, &mockPaging{})

	// FRED and JIM
	test.ExpectEquality(t, d.Read(0xfc60), 0xff)
	test.ExpectEquality(t, d.Read(0xfd00), 0xff)

	// unattached devices in SHEILA return the high byte of the address
	test.ExpectEquality(t, d.Read(0xfe40), 0xfe)
}

func TestAttach(t *testing.T) {
	d := bus.NewDispatcher(false, &mockPaging{})
	via := &mockRegister{value: 0x12}

	test.ExpectSuccess(t, d.Attach(bus.SysVIA, via))
	test.ExpectFailure(t, d.Attach(bus.ROMSEL, via))
	test.ExpectFailure(t, d.Attach(bus.Floating, via))

	test.ExpectEquality(t, d.Read(0xfe4d), 0x12)
	test.ExpectEquality(t, via.last, 0xfe4d)
	d.Write(0xfe42, 0xff)
	test.ExpectEquality(t, via.writes, 1)
	test.ExpectEquality(t, via.last, 0xfe42)

	test.ExpectSuccess(t, d.Attach(bus.SysVIA, nil))
	test.ExpectEquality(t, d.Read(0xfe4d), 0xfe)
}

func TestPagingRegisters(t *testing.T) {
	p := &mockPaging{}
	d := bus.NewDispatcher(true, p)

	d.Write(0xfe30, 0x8c)
	test.ExpectEquality(t, p.romsel, 0x8c)

	d.Write(0xfe34, 0x0f)
	test.ExpectEquality(t, p.acccon, 0x0f)
	test.ExpectEquality(t, d.Read(0xfe34), 0x0f)

	// ACCCON is not present on other models
	p = &mockPaging{}
	d = bus.NewDispatcher(false, p)
	d.Write(0xfe34, 0x0f)
	test.ExpectEquality(t, p.acccon, 0)
}

func TestTST(t *testing.T) {
	p := &mockPaging{tst: true}
	d := bus.NewDispatcher(true, p)
	via := &mockRegister{value: 0x12}
	test.DemandSuccess(t, d.Attach(bus.SysVIA, via))

	test.ExpectEquality(t, d.Read(0xfe41), 0x01)
	test.ExpectEquality(t, via.reads, 0)

	// writes are unaffected
	d.Write(0xfe41, 0x00)
	test.ExpectEquality(t, via.writes, 1)
}
