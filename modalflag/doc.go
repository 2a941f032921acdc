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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It adds the concept of modes to command line parsing.
//
// A mode is a non-flag argument that changes the meaning of the flags that
// follow it. For example, the beebcore command line has a RUN mode and a
// DEBUG mode, each of which accept a different set of flags:
//
//	beebcore RUN -model MASTER -cycles 2000000
//	beebcore DEBUG -script hooks.lua
//
// The first sub-mode added with AddSubModes() is the default mode and is
// selected when the first argument is not a recognised mode.
package modalflag
