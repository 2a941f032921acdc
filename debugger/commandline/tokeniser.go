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
	"strconv"
	"strings"
)

// Tokens represents tokenised input.
type Tokens struct {
	input  string
	tokens []string
	curr   int
}

func (tk *Tokens) String() string {
	return tk.input
}

// Reset begins the token traversal process from the beginning.
func (tk *Tokens) Reset() {
	tk.curr = 0
}

// IsEnd returns true if we're at the end of the token list.
func (tk *Tokens) IsEnd() bool {
	return tk.curr >= len(tk.tokens)
}

// Remaining returns the count of remaining tokens in the token list.
func (tk *Tokens) Remaining() int {
	return len(tk.tokens) - tk.curr
}

// Remainder returns the remaining tokens as a string.
func (tk *Tokens) Remainder() string {
	return strings.Join(tk.tokens[tk.curr:], " ")
}

// Get returns the next token in the list, and a success boolean. If the end
// of the token list has been reached, the function returns false.
func (tk *Tokens) Get() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	tk.curr++
	return tk.tokens[tk.curr-1], true
}

// Peek returns the next token in the list without advancing.
func (tk *Tokens) Peek() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	return tk.tokens[tk.curr], true
}

// GetNumber returns the next token as a number. The token should have been
// validated as a number with ValidateTokens().
func (tk *Tokens) GetNumber() (int, bool) {
	s, ok := tk.Get()
	if !ok {
		return 0, false
	}
	v, err := ParseNumber(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

// TokeniseInput creates and returns a new Tokens instance.
func TokeniseInput(input string) *Tokens {
	input = strings.TrimSpace(input)
	return &Tokens{
		input:  input,
		tokens: strings.Fields(input),
	}
}

// ParseNumber parses a decimal or hexadecimal number. Hexadecimal numbers are
// prefixed with &, $ or 0x.
func ParseNumber(s string) (int, error) {
	base := 10
	switch {
	case strings.HasPrefix(s, "&"), strings.HasPrefix(s, "$"):
		s = s[1:]
		base = 16
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s = s[2:]
		base = 16
	}
	v, err := strconv.ParseInt(s, base, 32)
	return int(v), err
}
