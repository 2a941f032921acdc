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

// Package script embeds a Lua interpreter for driving and probing the
// machine. Scripts can be run from the debugger with the SCRIPT command or
// from the command line with the -script flag.
//
// The following functions are available to Lua scripts:
//
//	peek(addr)            value at address, without side effects
//	poke(addr, value)     write to RAM or ROM. device addresses are an error
//	reg(name)             value of register: a, x, y, sp, p or pc
//	setreg(name, value)   change register value
//	step()                run a single instruction
//	run(cycles)           run for the number of cycles. returns true if stopped by a hook
//	elapsed()             number of cycles since the last hard reset
//	readstring(addr)      string at address, terminated by zero or carriage return
//	findstring(s, from)   address of string at or after from. nil if not found
//	onstep(fn)            call fn(pc, opcode) before every instruction. a
//	                      true result stops the emulation. nil removes the hook
//	breakat(addr)         add a breakpoint
//	command(input)        run a debugger command
//	print(...)            print to the debugger terminal
//	mode()                "Debugger" or "Run"
//
// Addresses and values are plain Lua numbers.
package script
