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
	"fmt"

	"github.com/jetsetilly/beebcore/debugger/terminal"
)

func (dbg *Debugger) buildPrompt() terminal.Prompt {
	e := dbg.disasm.Decode(dbg.machine.CPU.PC.Address())
	p := terminal.Prompt{
		Type:    terminal.PromptTypeCPUStep,
		Content: fmt.Sprintf("&%04X %s", e.Address, e),
	}
	if len(dbg.halt) > 0 {
		p.Type = terminal.PromptTypeHalted
	}
	return p
}
