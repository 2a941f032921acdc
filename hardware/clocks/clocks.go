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

// Package clocks defines the constant values that define the speed of the
// clocks in the BBC Micro.
//
// The CPU runs at 2MHz. Devices on the 1MHz bus are accessed at half that
// rate and the CPU is stretched to meet them. The display runs at 50 fields
// per second.
package clocks

const (
	// CPU clock in cycles per second
	CPU = 2000000

	// the 1MHz bus
	Bus = CPU / 2

	// display fields per second
	FieldRate = 50

	// CPU cycles per display field
	CyclesPerField = CPU / FieldRate
)

// Seconds converts a number of CPU cycles into seconds.
func Seconds(cycles int64) float64 {
	return float64(cycles) / CPU
}
