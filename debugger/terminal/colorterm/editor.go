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
	"unicode"

	"github.com/jetsetilly/beebcore/debugger/terminal"
	"github.com/jetsetilly/beebcore/debugger/terminal/colorterm/easyterm"
)

// editor is the line editing state for a single call to TermRead(). It is
// kept separate from the terminal so that it can be driven without a real
// terminal.
type editor struct {
	input  []rune
	cursor int

	// escape sequence being collected
	escaping bool
	esc      []rune

	history []string

	// index into history. equal to len(history) when not browsing
	historyIdx int

	// input as it was before history browsing began
	stash []rune

	tabCompletion terminal.TabCompletion
}

type editResult int

const (
	editContinue editResult = iota
	editDone
	editInterrupt
	editSuspend
)

func newEditor(history []string, tc terminal.TabCompletion) *editor {
	return &editor{
		history:       history,
		historyIdx:    len(history),
		tabCompletion: tc,
	}
}

func (ed *editor) String() string {
	return string(ed.input)
}

func (ed *editor) insert(r rune) {
	ed.input = append(ed.input, 0)
	copy(ed.input[ed.cursor+1:], ed.input[ed.cursor:])
	ed.input[ed.cursor] = r
	ed.cursor++
}

func (ed *editor) set(s string) {
	ed.input = []rune(s)
	ed.cursor = len(ed.input)
}

func (ed *editor) escape(r rune) {
	ed.esc = append(ed.esc, r)

	if len(ed.esc) == 1 {
		ed.escaping = r == easyterm.EscCursor
		return
	}

	if len(ed.esc) == 2 && r == easyterm.CursorDelete {
		// wait for the trailing tilde
		return
	}

	ed.escaping = false

	switch ed.esc[1] {
	case easyterm.CursorUp:
		if ed.historyIdx > 0 {
			if ed.historyIdx == len(ed.history) {
				ed.stash = append(ed.stash[:0], ed.input...)
			}
			ed.historyIdx--
			ed.set(ed.history[ed.historyIdx])
		}
	case easyterm.CursorDown:
		if ed.historyIdx < len(ed.history) {
			ed.historyIdx++
			if ed.historyIdx == len(ed.history) {
				ed.set(string(ed.stash))
			} else {
				ed.set(ed.history[ed.historyIdx])
			}
		}
	case easyterm.CursorForward:
		if ed.cursor < len(ed.input) {
			ed.cursor++
		}
	case easyterm.CursorBackward:
		if ed.cursor > 0 {
			ed.cursor--
		}
	case easyterm.CursorHome:
		ed.cursor = 0
	case easyterm.CursorEnd:
		ed.cursor = len(ed.input)
	case easyterm.CursorDelete:
		if ed.cursor < len(ed.input) {
			ed.input = append(ed.input[:ed.cursor], ed.input[ed.cursor+1:]...)
		}
	}
}

// key processes a single rune of input.
func (ed *editor) key(r rune) editResult {
	if ed.escaping {
		ed.escape(r)
		return editContinue
	}

	if r != easyterm.KeyTab && ed.tabCompletion != nil {
		ed.tabCompletion.Reset()
	}

	switch r {
	case easyterm.KeyEsc:
		ed.escaping = true
		ed.esc = ed.esc[:0]
	case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
		return editDone
	case easyterm.KeyInterrupt:
		return editInterrupt
	case easyterm.KeySuspend:
		return editSuspend
	case easyterm.KeyTab:
		if ed.tabCompletion != nil {
			c := []rune(ed.tabCompletion.Complete(string(ed.input[:ed.cursor])))
			ed.input = append(c, ed.input[ed.cursor:]...)
			ed.cursor = len(c)
		}
	case easyterm.KeyBackspace, easyterm.KeyDelete:
		if ed.cursor > 0 {
			ed.input = append(ed.input[:ed.cursor-1], ed.input[ed.cursor:]...)
			ed.cursor--
		}
	default:
		if unicode.IsPrint(r) {
			ed.insert(r)
		}
	}

	return editContinue
}
