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

// debugger keywords
const (
	cmdHelp  = "HELP"
	cmdQuit  = "QUIT"
	cmdReset = "RESET"

	cmdRun  = "RUN"
	cmdStep = "STEP"

	cmdBreak = "BREAK"
	cmdWatch = "WATCH"
	cmdList  = "LIST"
	cmdDrop  = "DROP"
	cmdClear = "CLEAR"

	cmdCPU     = "CPU"
	cmdSet     = "SET"
	cmdPeek    = "PEEK"
	cmdPoke    = "POKE"
	cmdMemMap  = "MEMMAP"
	cmdDisasm  = "DISASM"
	cmdHistory = "HISTORY"
	cmdString  = "STRING"
	cmdFind    = "FIND"

	cmdMemviz = "MEMVIZ"
	cmdScript = "SCRIPT"
	cmdLog    = "LOG"
)

var commandTemplate = []string{
	cmdHelp + " [%S]",
	cmdQuit,
	cmdReset + " [(HARD|SOFT)]",

	cmdRun,
	cmdStep + " [%N]",

	cmdBreak + " %N",
	cmdWatch + " %N [(ANY|READ|WRITE)] [%N]",
	cmdList,
	cmdDrop + " (BREAK|WATCH) %N",
	cmdClear + " [(BREAK|WATCH)]",

	cmdCPU,
	cmdSet + " (A|X|Y|SP|P|PC) %N",
	cmdPeek + " %N [%N]",
	cmdPoke + " %N %N",
	cmdMemMap,
	cmdDisasm + " [%N] [%N]",
	cmdHistory + " [%N]",
	cmdString + " %N",
	cmdFind + " %S [%N]",

	cmdMemviz + " %S",
	cmdScript + " %S",
	cmdLog + " [%N]",
}
