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

// Package peripherals defines the contracts between the CPU core and the
// chips attached to it: the VIAs, the ACIA, the serial ULA, the disc
// controller, the ADC, the tube, the video circuitry and the sound chip.
//
// The behaviour of the chips is outside of this package. The package provides
// null implementations of every chip so that a machine can be run without
// them. A null chip reads as the floating bus and ignores writes and the
// passage of time.
//
// A Set collects the chips of a machine. The Set is rebuilt on every hard
// reset with a Builder.
package peripherals
