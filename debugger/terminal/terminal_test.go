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

package terminal_test

import (
	"testing"

	"github.com/jetsetilly/beebcore/debugger/terminal"
	"github.com/jetsetilly/beebcore/test"
)

func TestPrompt(t *testing.T) {
	p := terminal.Prompt{Content: " &C100 LDA #&42 "}
	test.ExpectEquality(t, p.String(), "[ &C100 LDA #&42 ] >> ")

	p.Type = terminal.PromptTypeHalted
	test.ExpectEquality(t, p.String(), "[ &C100 LDA #&42 ] !! ")

	p = terminal.Prompt{Type: terminal.PromptTypeConfirm, Content: "are you sure? "}
	test.ExpectEquality(t, p.String(), "are you sure? ")
}

func TestStyle(t *testing.T) {
	test.ExpectEquality(t, terminal.StyleError.String(), "error")
	test.ExpectEquality(t, terminal.Style(100).String(), "unknown")
}
