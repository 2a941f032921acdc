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

//go:build !windows

package colorterm

import (
	"bufio"
	"os"

	"github.com/jetsetilly/beebcore/debugger/terminal"
	"github.com/jetsetilly/beebcore/debugger/terminal/colorterm/easyterm"
)

// maximum number of entries kept in the command history
const maxHistory = 100

// ColorTerminal implements debugger UI interface with a basic ANSI terminal.
type ColorTerminal struct {
	easyterm.EasyTerm

	reader         chan readRune
	commandHistory []string
	tabCompletion  terminal.TabCompletion

	silenced bool
}

type readRune struct {
	r   rune
	err error
}

// Initialise perfoms any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	err := ct.EasyTerm.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	// input is read in a separate goroutine so that TermRead() can also
	// service interrupt events
	ct.reader = make(chan readRune)
	go func() {
		b := bufio.NewReader(os.Stdin)
		for {
			r, _, err := b.ReadRune()
			ct.reader <- readRune{r: r, err: err}
			if err != nil {
				return
			}
		}
	}()

	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	ct.TermPrint("\r")
	_ = ct.Flush()
	ct.EasyTerm.CleanUp()
}

// RegisterTabCompletion adds an implementation of TabCompletion to the
// ColorTerminal.
func (ct *ColorTerminal) RegisterTabCompletion(tc terminal.TabCompletion) {
	ct.tabCompletion = tc
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.silenced = silenced
}

// TermWidth returns the width of the terminal in characters.
func (ct *ColorTerminal) TermWidth() int {
	return ct.Geometry().Cols
}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt, events *terminal.ReadEvents) (string, error) {
	ct.CBreakMode()
	defer ct.CanonicalMode()

	var intEvents chan os.Signal
	if events != nil {
		intEvents = events.IntEvents
	}

	ed := newEditor(ct.commandHistory, ct.tabCompletion)
	ct.redraw(prompt, ed)

	for {
		select {
		case <-intEvents:
			ct.TermPrint("\n")
			return "", terminal.UserInterrupt

		case rr := <-ct.reader:
			if rr.err != nil {
				ct.TermPrint("\n")
				return "", rr.err
			}

			switch ed.key(rr.r) {
			case editDone:
				ct.TermPrint("\n")
				s := ed.String()
				if s != "" && (len(ct.commandHistory) == 0 || ct.commandHistory[len(ct.commandHistory)-1] != s) {
					ct.commandHistory = append(ct.commandHistory, s)
					if len(ct.commandHistory) > maxHistory {
						ct.commandHistory = ct.commandHistory[1:]
					}
				}
				return s, nil
			case editInterrupt:
				ct.TermPrint("\n")
				return "", terminal.UserInterrupt
			case editSuspend:
				ct.CanonicalMode()
				easyterm.SuspendProcess()
				ct.CBreakMode()
			}

			ct.redraw(prompt, ed)
		}
	}
}

func (ct *ColorTerminal) redraw(prompt terminal.Prompt, ed *editor) {
	ct.TermPrint("\r")
	ct.TermPrint(promptPen(prompt.Type))
	ct.TermPrint(prompt.String())
	ct.TermPrint(easyterm.NormalPen)
	ct.TermPrint(ed.String())
	ct.TermPrint(easyterm.ClearToEOL)
	ct.TermPrint(easyterm.CursorLeft(len(ed.input) - ed.cursor))
}
