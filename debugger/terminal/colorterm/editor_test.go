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

package colorterm

import (
	"testing"

	"github.com/jetsetilly/beebcore/debugger/commandline"
	"github.com/jetsetilly/beebcore/debugger/terminal/colorterm/easyterm"
	"github.com/jetsetilly/beebcore/test"
)

func feed(ed *editor, s string) editResult {
	res := editContinue
	for _, r := range s {
		res = ed.key(r)
	}
	return res
}

func TestEditing(t *testing.T) {
	ed := newEditor(nil, nil)
	test.ExpectEquality(t, feed(ed, "stpe"), editContinue)
	test.ExpectEquality(t, ed.String(), "stpe")

	// cursor left twice, delete forward and insert
	feed(ed, "\033[D\033[D\033[3~")
	test.ExpectEquality(t, ed.String(), "ste")
	feed(ed, "e\033[F")
	test.ExpectEquality(t, ed.String(), "stee")
	test.ExpectEquality(t, ed.cursor, 4)

	// backspace and retype
	feed(ed, "\x7f\x7fep")
	test.ExpectEquality(t, ed.String(), "step")

	// home and insert
	feed(ed, "\033[Hx")
	test.ExpectEquality(t, ed.String(), "xstep")

	test.ExpectEquality(t, ed.key(easyterm.KeyCarriageReturn), editDone)
	test.ExpectEquality(t, ed.key(easyterm.KeyInterrupt), editInterrupt)
	test.ExpectEquality(t, ed.key(easyterm.KeySuspend), editSuspend)
}

func TestHistory(t *testing.T) {
	ed := newEditor([]string{"first", "second"}, nil)
	feed(ed, "new")

	feed(ed, "\033[A")
	test.ExpectEquality(t, ed.String(), "second")
	feed(ed, "\033[A")
	test.ExpectEquality(t, ed.String(), "first")
	feed(ed, "\033[A")
	test.ExpectEquality(t, ed.String(), "first")
	feed(ed, "\033[B\033[B")
	test.ExpectEquality(t, ed.String(), "new")
}

func TestTabCompletion(t *testing.T) {
	cmds, err := commandline.ParseCommandTemplate([]string{"BREAK %N", "RESET [(HARD|SOFT)]"})
	test.DemandSuccess(t, err)

	ed := newEditor(nil, commandline.NewTabCompletion(cmds))
	feed(ed, "res\th\t")
	test.ExpectEquality(t, ed.String(), "RESET HARD ")
}
