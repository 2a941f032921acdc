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

package plainterm_test

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/jetsetilly/beebcore/debugger/terminal"
	"github.com/jetsetilly/beebcore/debugger/terminal/plainterm"
	"github.com/jetsetilly/beebcore/test"
)

func TestPlainTerminal(t *testing.T) {
	out := &strings.Builder{}
	pt := plainterm.NewPlainTerminal(strings.NewReader("step\r\nquit"), out)
	test.DemandSuccess(t, pt.Initialise())
	test.ExpectFailure(t, pt.IsInteractive())

	s, err := pt.TermRead(terminal.Prompt{}, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "step")

	// last line without a newline
	s, err = pt.TermRead(terminal.Prompt{}, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "quit")

	_, err = pt.TermRead(terminal.Prompt{}, nil)
	test.ExpectEquality(t, err, io.EOF)

	pt.TermPrintLine(terminal.StyleEcho, "echo")
	pt.TermPrintLine(terminal.StyleFeedback, "feedback")
	pt.TermPrintLine(terminal.StyleError, "error")
	pt.Silence(true)
	pt.TermPrintLine(terminal.StyleFeedback, "silenced")
	pt.TermPrintLine(terminal.StyleError, "loud")
	test.ExpectEquality(t, out.String(), "feedback\n* error\n* loud\n")
}

func TestInterrupt(t *testing.T) {
	pt := plainterm.NewPlainTerminal(strings.NewReader("run\n"), io.Discard)
	test.DemandSuccess(t, pt.Initialise())

	events := &terminal.ReadEvents{IntEvents: make(chan os.Signal, 1)}
	events.IntEvents <- os.Interrupt
	_, err := pt.TermRead(terminal.Prompt{}, events)
	test.ExpectEquality(t, err, terminal.UserInterrupt)
}
