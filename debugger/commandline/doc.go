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

// Package commandline facilitates parsing of debugger input. Given a command
// template, it can be used to tokenise and validate user input. It also
// functions as a tab-completion engine.
//
// A template is a list of command definitions. Each definition is a keyword
// followed by zero or more argument specifications:
//
//	%N       a number. decimal, or hex with a & $ or 0x prefix
//	%S       any string
//	(A|B)    one of the listed keywords
//	[spec]   an optional argument. optional arguments must come last
//
// For example:
//
//	template := []string{
//		"STEP [%N]",
//		"BREAK %N",
//		"RESET [(HARD|SOFT)]",
//	}
//
// Validation is case-insensitive. Once validated the tokens can be processed
// with Get() knowing that the values are of the expected form.
package commandline
