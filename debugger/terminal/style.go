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

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function. The terminal implementation can interpret
// this how it sees fit.
type Style int

// List of terminal styles.
const (
	// input from the user being echoed back to the user
	StyleEcho Style = iota

	// information from the internal help system
	StyleHelp

	// information from a command
	StyleFeedback

	// disassembly output at CPU cycle boundaries
	StyleCPUStep

	// information about the machine, such as register values
	StyleInstrument

	// logging messages
	StyleLog

	// information about the execution of a script
	StyleScript

	// error messages
	StyleError
)

func (s Style) String() string {
	switch s {
	case StyleEcho:
		return "echo"
	case StyleHelp:
		return "help"
	case StyleFeedback:
		return "feedback"
	case StyleCPUStep:
		return "cpu step"
	case StyleInstrument:
		return "instrument"
	case StyleLog:
		return "log"
	case StyleScript:
		return "script"
	case StyleError:
		return "error"
	}
	return "unknown"
}
