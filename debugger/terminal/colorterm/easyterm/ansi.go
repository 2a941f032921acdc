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

package easyterm

import "fmt"

// ANSI colour numbers.
const (
	ColBlack = iota
	ColRed
	ColGreen
	ColYellow
	ColBlue
	ColMagenta
	ColCyan
	ColWhite
)

// Pen returns the CSI sequence that selects a foreground colour.
func Pen(col int, bright bool) string {
	if bright {
		return fmt.Sprintf("\033[9%dm", col)
	}
	return fmt.Sprintf("\033[3%dm", col)
}

// CSI sequences for pen styles and line control.
const (
	NormalPen  = "\033[0m"
	BoldPen    = "\033[1m"
	DimPen     = "\033[2m"
	ClearToEOL = "\033[K"
)

// CursorLeft returns the CSI sequence to move the cursor n columns left. An
// empty string is returned for values less than one.
func CursorLeft(n int) string {
	if n < 1 {
		return ""
	}
	return fmt.Sprintf("\033[%dD", n)
}
