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

package commandline

import (
	"strings"
)

// TabCompletion transforms input such that it more closely resembles a valid
// command. Successive calls to Complete() with the result of the previous
// call cycle through the possible completions.
type TabCompletion struct {
	cmds *Commands

	matches []string
	match   int

	// the input as it was before completion began
	base string

	// the result of the previous completion
	last string
}

// NewTabCompletion is the preferred method of initialisation for the
// TabCompletion type.
func NewTabCompletion(cmds *Commands) *TabCompletion {
	return &TabCompletion{cmds: cmds}
}

// Reset ends the current completion session.
func (tc *TabCompletion) Reset() {
	tc.matches = tc.matches[:0]
	tc.match = 0
	tc.base = ""
	tc.last = ""
}

// Complete returns the next completion for the input.
func (tc *TabCompletion) Complete(input string) string {
	if len(tc.matches) > 0 && input == tc.last {
		tc.match = (tc.match + 1) % len(tc.matches)
		tc.last = tc.base + tc.matches[tc.match] + " "
		return tc.last
	}

	tc.Reset()

	fields := strings.Fields(input)
	partial := ""
	if len(fields) > 0 && !strings.HasSuffix(input, " ") {
		partial = strings.ToUpper(fields[len(fields)-1])
		fields = fields[:len(fields)-1]
	}

	var options []string
	if len(fields) == 0 {
		options = tc.cmds.keywords
	} else {
		cmd, ok := tc.cmds.index[strings.ToUpper(fields[0])]
		if !ok || len(fields)-1 >= len(cmd.args) {
			return input
		}
		a := cmd.args[len(fields)-1]
		if a.kind != argChoice {
			return input
		}
		options = a.options
	}

	for _, o := range options {
		if strings.HasPrefix(o, partial) {
			tc.matches = append(tc.matches, o)
		}
	}
	if len(tc.matches) == 0 {
		return input
	}

	tc.base = strings.Join(fields, " ")
	if tc.base != "" {
		tc.base += " "
	}
	tc.last = tc.base + tc.matches[0] + " "
	return tc.last
}
