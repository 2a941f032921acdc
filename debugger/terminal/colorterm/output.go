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
	"github.com/jetsetilly/beebcore/debugger/terminal"
	"github.com/jetsetilly/beebcore/debugger/terminal/colorterm/easyterm"
)

func promptPen(t terminal.PromptType) string {
	switch t {
	case terminal.PromptTypeHalted:
		return easyterm.Pen(easyterm.ColRed, true)
	case terminal.PromptTypeConfirm:
		return easyterm.Pen(easyterm.ColBlue, true)
	}
	return easyterm.BoldPen
}

func stylePen(style terminal.Style) string {
	switch style {
	case terminal.StyleHelp, terminal.StyleFeedback, terminal.StyleLog:
		return easyterm.DimPen
	case terminal.StyleCPUStep:
		return easyterm.Pen(easyterm.ColYellow, true)
	case terminal.StyleInstrument:
		return easyterm.Pen(easyterm.ColCyan, true)
	case terminal.StyleScript:
		return easyterm.Pen(easyterm.ColMagenta, false)
	case terminal.StyleError:
		return easyterm.Pen(easyterm.ColRed, true) + "* "
	}
	return ""
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	if ct.silenced && style != terminal.StyleError {
		return
	}

	// the user's input is already on screen
	if style == terminal.StyleEcho {
		return
	}

	ct.TermPrint("\r")
	ct.TermPrint(stylePen(style))
	ct.TermPrint(s)
	ct.TermPrint(easyterm.NormalPen)
	ct.TermPrint("\n")
}
