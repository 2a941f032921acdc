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

// Package bus defines the interfaces through which parts of the emulation
// reach memory and implements the Dispatcher, which decodes accesses to
// device space and forwards them to the appropriate device.
//
// Device space is decoded in four byte windows. Which device responds to a
// window depends on the model and on whether the access is a read or a write.
// The decoding is described by a table and built into flat arrays when the
// Dispatcher is created, so that decoding an access is a single array index.
package bus
