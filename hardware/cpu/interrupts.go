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

// Interrupt vectors.
const (
	NMIVector   = uint16(0xfffa)
	ResetVector = uint16(0xfffc)
	IRQVector   = uint16(0xfffe)
)

// SetIRQ asserts or releases the IRQ line on behalf of a source. The source
// is a bit mask and each source should use a different bit. The line is
// asserted if any source is asserting it.
func (mc *CPU) SetIRQ(source uint8, asserted bool) {
	if asserted {
		mc.interrupt |= source
	} else {
		mc.interrupt &^= source
	}
}

// IRQ returns the current level of the IRQ line as a mask of the asserting
// sources.
func (mc *CPU) IRQ() uint8 {
	return mc.interrupt
}

// NMI latches the NMI line. The NMI will be serviced at the end of the
// current instruction. The latch is cleared when the NMI is serviced.
func (mc *CPU) NMI(level bool) {
	mc.nmi = level
}

// decide whether a maskable interrupt is to be taken at the next instruction
// boundary.
func (mc *CPU) checkInt() {
	mc.takeInt = mc.interrupt != 0 && !mc.Status.InterruptDisable
}

// push the interrupt frame and jump through the vector. the break bit of the
// pushed status is always clear.
func (mc *CPU) interruptFrame(vector uint16) {
	pc := mc.PC.Address()
	mc.push(uint8(pc >> 8))
	mc.push(uint8(pc))
	mc.push(mc.Status.Value(false))
	mc.PC.Load(mc.readVector(vector))
	mc.Status.InterruptDisable = true
	if mc.IsCMOS() {
		mc.Status.DecimalMode = false
	}
	mc.Polltime(7)
}

// service any interrupt that is pending at the end of an instruction. a
// pending IRQ is serviced first and then the NMI. the NMI frame is pushed on
// top of the IRQ frame so the NMI handler runs before the IRQ handler.
func (mc *CPU) serviceInterrupts() {
	if mc.jammed {
		return
	}
	if mc.takeInt {
		mc.takeInt = false
		mc.interruptFrame(IRQVector)
	}
	if mc.nmi {
		mc.interruptFrame(NMIVector)
		mc.nmi = false
	}
}

// brk pushes the address of the byte following the BRK signature byte and
// the status register with the break bit set.
func (mc *CPU) brk() {
	next := mc.PC.Address() + 1
	mc.push(uint8(next >> 8))
	mc.push(uint8(next))
	mc.push(mc.Status.Value(true))
	mc.PC.Load(mc.readVector(IRQVector))
	mc.Status.InterruptDisable = true
	if mc.IsCMOS() {
		mc.Status.DecimalMode = false
		mc.takeInt = false
	}
}

// branch reads the offset operand and takes the branch if required. the
// interrupt line is sampled between the timing cycles of the branch.
//
// cycles charged: 2 if the branch is not taken, 3 if it is taken and 4 if
// the branch crosses a page.
func (mc *CPU) branch(taken bool) {
	offset := int8(mc.getb())
	if !taken {
		mc.Polltime(1)
		mc.checkInt()
		mc.Polltime(1)
		return
	}

	crossed := mc.PC.Add(uint16(int16(offset)))
	if crossed {
		mc.Polltime(3)
		mc.checkInt()
		mc.Polltime(1)
	} else {
		mc.Polltime(1)
		mc.checkInt()
		mc.Polltime(2)
	}
}
