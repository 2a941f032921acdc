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

// Package instance defines those parts of the emulation that might change from
// instance to instance of the Machine type, but is not actually the Machine
// itself.
//
// Particularly useful when running more than one instance of the emulation in
// parallel.
package instance

import (
	"github.com/jetsetilly/beebcore/hardware/preferences"
)

// Label indicates the context of the instance.
type Label string

// List of valid Label values.
const (
	Main   Label = ""
	Script Label = "script"
	Test   Label = "test"
)

// Instance defines those parts of the emulation that might change between
// different instantiations of the Machine type, but is not actually the
// Machine itself.
type Instance struct {
	Label Label

	// the preferences of the running instance. this instance can be shared
	// with other running instances of the emulation.
	Prefs *preferences.Preferences
}

// NewInstance is the preferred method of initialisation for the Instance type.
//
// The prefs argument can be nil, in which case a new preferences instance
// will be created. Providing a non-nil value allows the preferences of more
// than one Machine to be synchronised.
func NewInstance(label Label, prefs *preferences.Preferences) (*Instance, error) {
	ins := &Instance{
		Label: label,
	}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	ins.Prefs = prefs

	return ins, nil
}

// Normalise ensures the instance is in a known default state. Useful for
// tests where the initial state must be the same for every run.
func (ins *Instance) Normalise() error {
	return ins.Prefs.SetDefaults()
}

// Tag returns a string suitable for use as a logging tag.
func (ins *Instance) Tag(tag string) string {
	if ins.Label == Main {
		return tag
	}
	return string(ins.Label) + ": " + tag
}
