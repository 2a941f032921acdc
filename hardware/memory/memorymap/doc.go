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

// Package memorymap describes the layout of the BBC Micro address space and
// of the backing store used to emulate it.
//
// The 64k address space is divided into these areas:
//
//	0000 -> 7fff	RAM
//	8000 -> bfff	paged ROM (or sideways RAM)
//	c000 -> fbff	OS ROM
//	fc00 -> feff	device space (FRED, JIM and SHEILA)
//	ff00 -> ffff	OS ROM
//
// The backing store is a single array holding the RAM, the sixteen paged ROM
// banks and the OS ROM. The offset of each region in the store is defined by
// the constants in this package. On the Master the second 32k of RAM holds
// the private regions known as ANDY, HAZEL and LYNNE.
//
// Within SHEILA some devices are on the 1MHz bus and accesses to them
// stretch the CPU cycle. See Is1MHz().
package memorymap
