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

package preferences

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/beebcore/hardware/clocks"
	"github.com/jetsetilly/beebcore/hardware/models"
	"github.com/jetsetilly/beebcore/prefs"
)

// Keys used on the prefs command line.
const (
	KeyModel          = "machine.model"
	KeyCyclesPerBurst = "machine.cyclesPerBurst"
	KeyDumpLength     = "debugger.dumpLength"
)

// Default values.
const (
	DefaultModel      = "B"
	DefaultDumpLength = 16
)

// Preferences defines and collates all the preference values used by a
// machine.
type Preferences struct {
	// the name of the model to emulate. see the models package
	Model prefs.String

	// number of CPU cycles run by the machine before returning control to
	// the caller
	CyclesPerBurst prefs.Int

	// number of history entries shown by the debugger's HISTORY command
	DumpLength prefs.Int
}

func (p *Preferences) String() string {
	return fmt.Sprintf("%s::%s; %s::%s; %s::%s",
		KeyModel, p.Model.String(),
		KeyCyclesPerBurst, p.CyclesPerBurst.String(),
		KeyDumpLength, p.DumpLength.String())
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values on the current command line group are applied
// after the defaults have been set.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}

	p.Model.SetHookPre(func(v prefs.Value) error {
		_, err := models.Find(strings.TrimSpace(fmt.Sprintf("%v", v)))
		return err
	})

	positive := func(v prefs.Value) error {
		switch v := v.(type) {
		case int:
			if v <= 0 {
				return fmt.Errorf("preferences: value must be positive (%d)", v)
			}
		}
		return nil
	}
	p.CyclesPerBurst.SetHookPre(positive)
	p.DumpLength.SetHookPre(positive)

	if err := p.SetDefaults(); err != nil {
		return nil, err
	}

	for k, v := range map[string]prefs.Pref{
		KeyModel:          &p.Model,
		KeyCyclesPerBurst: &p.CyclesPerBurst,
		KeyDumpLength:     &p.DumpLength,
	} {
		if err := prefs.ApplyCommandLine(k, v); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() error {
	if err := p.Model.Set(DefaultModel); err != nil {
		return err
	}
	if err := p.CyclesPerBurst.Set(clocks.CyclesPerField); err != nil {
		return err
	}
	return p.DumpLength.Set(DefaultDumpLength)
}
