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

// Package hardware is the base package for the emulation of the BBC Micro.
// The Machine type collects the CPU, memory, device dispatcher and
// peripherals of a machine and wires them together.
//
// A Machine is created with NewMachine(). The boot images are validated
// before any part of the machine is created, so an invalid image never
// produces a partially constructed Machine.
//
// The machine is run in bursts of CPU cycles. Each burst is a call to
// cpu.CPU.Execute(). Between bursts the caller can inspect the machine and
// decide whether to continue. See Run().
package hardware
