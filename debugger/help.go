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

package debugger

var helps = map[string]string{
	cmdHelp:  "Lists commands or describes a specific command",
	cmdQuit:  "Exits the debugger. Asks for confirmation on an interactive terminal",
	cmdReset: "Resets the machine. A soft reset, the default, is the same as pressing BREAK",

	cmdRun:  "Runs the emulation until a halt condition is met or the user interrupts",
	cmdStep: "Executes one or more instructions",

	cmdBreak: "Halts the emulation when the CPU is about to execute the instruction at the address",
	cmdWatch: "Halts the emulation when the address is accessed. The access can be narrowed to a read or write and to a specific value",
	cmdList:  "Lists breakpoints and watches",
	cmdDrop:  "Drops a breakpoint or watch, using the number reported by LIST",
	cmdClear: "Clears all breakpoints and watches, or all of one kind",

	cmdCPU:     "Displays the CPU registers",
	cmdSet:     "Changes the value of a CPU register",
	cmdPeek:    "Displays memory as the CPU currently sees it. Device addresses are not read",
	cmdPoke:    "Changes the value of RAM or ROM as the CPU currently sees it",
	cmdMemMap:  "Displays the memory map and the paging registers",
	cmdDisasm:  "Disassembles memory. Starts at the PC by default",
	cmdHistory: "Displays the most recently executed instructions with the register values after each instruction",
	cmdString:  "Displays the string at the address. Strings end with a zero or carriage return",
	cmdFind:    "Searches memory for a string and displays the address of the first match",

	cmdMemviz: "Writes a graphviz description of the CPU registers to file",
	cmdScript: "Runs a Lua script",
	cmdLog:    "Displays the most recent log entries",
}
