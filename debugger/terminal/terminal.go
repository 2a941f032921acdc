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

package terminal

import (
	"errors"
	"os"
)

// Sentinel errors returned by TermRead() if caught whilst waiting for input.
var (
	UserInterrupt = errors.New("user interrupt")
	UserAbort     = errors.New("user abort")
)

// ReadEvents should be monitored during a TermRead() if at all possible.
type ReadEvents struct {
	// interrupt signals from the operating system
	IntEvents chan os.Signal
}

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns a line of input, without the trailing newline.
	TermRead(prompt Prompt, events *ReadEvents) (string, error)

	// IsInteractive() should return true for implementations that require
	// user interaction.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need to
	// do anything.
	Initialise() error

	// Restore the terminal to its original state, if possible.
	CleanUp()

	// Register a tab completion implementation to use with the terminal. Not
	// all implementations need to respond meaningfully to this.
	RegisterTabCompletion(TabCompletion)

	// Silence all output except error messages.
	Silence(silenced bool)
}

// TabCompletion defines the operations required for tab completion. An
// implementation can be found in the commandline package.
type TabCompletion interface {
	Complete(input string) string
	Reset()
}
