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

// Package debugger implements a command line debugger for the emulated
// machine. It can stop the emulation at breakpoints and on memory access,
// inspect and modify memory and CPU registers, disassemble code and show the
// recent execution history.
//
// Interaction with the user happens through an implementation of the
// terminal.Terminal interface. Lua scripts can extend the debugger. See the
// script package.
//
// The debugger installs itself as the CPU's instruction hook and as the
// memory monitor. Neither should be replaced while the debugger is in use.
package debugger
