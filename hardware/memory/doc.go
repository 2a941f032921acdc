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

// Package memory implements the bank-switched memory of the BBC Micro family.
//
// Every access is resolved through a pair of tables indexed by the high byte
// of the address. The status table decides whether the access is serviced by
// the backing store or by a device. The offset table gives the displacement
// into the backing store. Bank switching is implemented by altering the
// tables, so the cost of an access does not depend on the banking mode.
//
// There are two sets of tables. Which set is used depends on where the
// current instruction was fetched from, not on the address being accessed.
// On the Master this allows OS code in c000 -> dfff to write to the shadow
// screen while other code writes to main RAM. See SetFetchBank().
//
// Accesses that resolve to device space are forwarded to the Device plumbed
// into Memory. In the emulation this is the dispatcher in the bus
// sub-package.
//
//	    CPU ---- Memory ---- tables ---- backing store
//	                \
//	                 \
//	                  \---- bus.Dispatcher ---- peripherals
//
//	    Video ---- VideoRead() ---- backing store
//
// The tables are rebuilt completely by HardReset(). After that they are only
// altered by writes to ROMSEL and (on the Master) ACCCON.
package memory
