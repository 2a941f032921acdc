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

package debugger

import (
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/beebcore/hardware/cpu"
	"github.com/jetsetilly/beebcore/hardware/cpu/registers"
)

// the CPU type is not visualised directly because it refers to the memory
// implementation, which is too large to be usefully drawn
type registerView struct {
	PC     *registers.ProgramCounter
	A      *registers.Register
	X      *registers.Register
	Y      *registers.Register
	SP     *registers.Register
	Status *registers.StatusRegister
	Cycles int
}

// WriteMemviz writes a graphviz description of the CPU registers.
func WriteMemviz(w io.Writer, mc *cpu.CPU) {
	v := &registerView{
		PC:     &mc.PC,
		A:      &mc.A,
		X:      &mc.X,
		Y:      &mc.Y,
		SP:     &mc.SP,
		Status: &mc.Status,
		Cycles: mc.Cycles,
	}
	memviz.Map(w, v)
}
