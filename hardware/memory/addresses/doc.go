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

// Package addresses contains the canonical names for the device registers
// and the documented OS entry points of the BBC Micro. The names are used by
// the disassembler and the debugger to label addresses.
//
// In addition to the canonical symbol maps, there are two sparse arrays Read
// and Write, created from the canonical maps at run time. The sparse arrays
// cover device space only and are indexed by the address relative to the
// start of device space.
package addresses
