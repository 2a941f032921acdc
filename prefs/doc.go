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

// Package prefs defines the typed preference values used to configure a
// machine. Each type (Bool, Int, String) can have hook functions attached
// that are called just before and just after a new value is stored.
//
// Preferences can be overridden from the command line with a prefs string.
// The string is made up of key/value pairs separated by semi-colons. The key
// and value are separated by a double colon:
//
//	machine.model::MASTER; machine.cyclesPerBurst::20000
//
// A prefs string is pushed onto the command line stack with
// PushCommandLineStack(). Individual values are claimed with
// GetCommandLinePref(). A value can only be claimed once.
package prefs
