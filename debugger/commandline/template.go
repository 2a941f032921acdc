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
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors returned by ParseCommandTemplate() and ValidateTokens().
var (
	InvalidTemplate = errors.New("invalid template")
	InvalidInput    = errors.New("invalid input")
)

type argKind int

const (
	argNumber argKind = iota
	argString
	argChoice
)

type arg struct {
	kind     argKind
	options  []string
	optional bool
	spec     string
}

type command struct {
	keyword string
	args    []arg
	defn    string
}

// Commands is a parsed command template.
type Commands struct {
	index    map[string]*command
	keywords []string
}

func parseArg(spec string) (arg, error) {
	a := arg{spec: spec}

	if strings.HasPrefix(spec, "[") {
		if !strings.HasSuffix(spec, "]") {
			return a, fmt.Errorf("%w: unterminated optional argument (%s)", InvalidTemplate, spec)
		}
		inner, err := parseArg(spec[1 : len(spec)-1])
		if err != nil {
			return a, err
		}
		inner.optional = true
		inner.spec = spec
		return inner, nil
	}

	switch {
	case spec == "%N":
		a.kind = argNumber
	case spec == "%S":
		a.kind = argString
	case strings.HasPrefix(spec, "("):
		if !strings.HasSuffix(spec, ")") {
			return a, fmt.Errorf("%w: unterminated group (%s)", InvalidTemplate, spec)
		}
		a.kind = argChoice
		for _, o := range strings.Split(spec[1:len(spec)-1], "|") {
			if o == "" {
				return a, fmt.Errorf("%w: empty option in group (%s)", InvalidTemplate, spec)
			}
			a.options = append(a.options, strings.ToUpper(o))
		}
	default:
		return a, fmt.Errorf("%w: unrecognised argument (%s)", InvalidTemplate, spec)
	}

	return a, nil
}

// ParseCommandTemplate turns a list of command definitions into a Commands
// instance.
func ParseCommandTemplate(template []string) (*Commands, error) {
	cmds := &Commands{
		index: make(map[string]*command),
	}

	for _, defn := range template {
		f := strings.Fields(defn)
		if len(f) == 0 {
			return nil, fmt.Errorf("%w: empty definition", InvalidTemplate)
		}

		cmd := &command{
			keyword: strings.ToUpper(f[0]),
			defn:    defn,
		}
		if _, ok := cmds.index[cmd.keyword]; ok {
			return nil, fmt.Errorf("%w: %s: already defined", InvalidTemplate, cmd.keyword)
		}

		optional := false
		for _, s := range f[1:] {
			a, err := parseArg(s)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", cmd.keyword, err)
			}
			if optional && !a.optional {
				return nil, fmt.Errorf("%w: %s: required argument after optional argument", InvalidTemplate, cmd.keyword)
			}
			optional = a.optional
			cmd.args = append(cmd.args, a)
		}

		cmds.index[cmd.keyword] = cmd
		cmds.keywords = append(cmds.keywords, cmd.keyword)
	}

	sort.Strings(cmds.keywords)

	return cmds, nil
}

// Keywords returns the list of command keywords in alphabetical order.
func (cmds *Commands) Keywords() []string {
	return cmds.keywords
}

// Usage returns the definition of the command.
func (cmds *Commands) Usage(keyword string) (string, bool) {
	cmd, ok := cmds.index[strings.ToUpper(keyword)]
	if !ok {
		return "", false
	}
	return cmd.defn, true
}

// ValidateTokens checks the tokens against the template. The token list is
// reset after validation.
func (cmds *Commands) ValidateTokens(tokens *Tokens) error {
	defer tokens.Reset()

	kw, ok := tokens.Get()
	if !ok {
		return nil
	}
	kw = strings.ToUpper(kw)

	cmd, ok := cmds.index[kw]
	if !ok {
		return fmt.Errorf("%w: unrecognised command (%s)", InvalidInput, kw)
	}

	for _, a := range cmd.args {
		tok, ok := tokens.Get()
		if !ok {
			if a.optional {
				return nil
			}
			return fmt.Errorf("%w: missing argument %s for %s", InvalidInput, a.spec, kw)
		}

		switch a.kind {
		case argNumber:
			if _, err := ParseNumber(tok); err != nil {
				return fmt.Errorf("%w: %s is not a number", InvalidInput, tok)
			}
		case argChoice:
			found := false
			for _, o := range a.options {
				if strings.EqualFold(o, tok) {
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("%w: %s is not one of %s", InvalidInput, tok, strings.Join(a.options, ", "))
			}
		}
	}

	if tokens.Remaining() > 0 {
		return fmt.Errorf("%w: too many arguments for %s", InvalidInput, kw)
	}

	return nil
}
