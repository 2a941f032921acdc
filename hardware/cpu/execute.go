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

// Execute instructions until the cycle budget is exhausted. The budget is
// added to whatever remains from the previous burst.
//
// Returns false if the instruction hook stopped execution. In that case the
// instruction at the PC has not been executed. Returns true otherwise,
// including when execution was stopped by Stop().
func (mc *CPU) Execute(budget int) bool {
	mc.halted = false
	mc.Cycles += budget

	for !mc.halted && mc.Cycles > 0 {
		pc := mc.PC.Address()
		mc.History.pushPC(pc)
		mc.mem.SetFetchBank(pc)
		opcode := mc.mem.Read(pc)

		// the hook is not called if the instruction at the PC was also the
		// subject of the check two instructions ago. this prevents the hook
		// from being called repeatedly in tight loops
		if mc.hook != nil && mc.History.Prev(2) != pc && mc.hook(pc, opcode) {
			return false
		}

		mc.PC.Increment()

		op := mc.instructions[opcode]
		if op == nil {
			panic(fmt.Sprintf("cpu: no operation for opcode %02x", opcode))
		}
		op(mc)

		mc.History.record(mc.A.Value(), mc.X.Value(), mc.Y.Value(), mc.Status.Value(true))

		mc.serviceInterrupts()
	}

	return true
}
