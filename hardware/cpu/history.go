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

import "fmt"

// HistoryLength is the number of instructions recorded by History.
const HistoryLength = 256

// History records the address and the resulting register state of the most
// recently executed instructions. The buffers wrap continuously.
type History struct {
	pc  [HistoryLength]uint16
	a   [HistoryLength]uint8
	x   [HistoryLength]uint8
	y   [HistoryLength]uint8
	p   [HistoryLength]uint8
	idx uint8
}

// HistoryEntry is a single entry in the History.
type HistoryEntry struct {
	PC uint16
	A  uint8
	X  uint8
	Y  uint8
	P  uint8
}

func (e HistoryEntry) String() string {
	return fmt.Sprintf("%04x A=%02x X=%02x Y=%02x P=%02x", e.PC, e.A, e.X, e.Y, e.P)
}

func (h *History) pushPC(pc uint16) {
	h.idx++
	h.pc[h.idx] = pc
}

func (h *History) record(a, x, y, p uint8) {
	h.a[h.idx] = a
	h.x[h.idx] = x
	h.y[h.idx] = y
	h.p[h.idx] = p
}

// Prev returns the address of an instruction in the history. Prev(0) is the
// most recent instruction (or the instruction about to be executed if called
// from an instruction hook).
func (h *History) Prev(i int) uint16 {
	return h.pc[h.idx-uint8(i)]
}

// Entry returns the history entry for an instruction in the history. The
// index has the same meaning as in Prev().
func (h *History) Entry(i int) HistoryEntry {
	j := h.idx - uint8(i)
	return HistoryEntry{
		PC: h.pc[j],
		A:  h.a[j],
		X:  h.x[j],
		Y:  h.y[j],
		P:  h.p[j],
	}
}
