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

// Package statsview serves runtime statistics of the emulator process over
// HTTP. The server is only available when the program is built with the
// statsview build tag. Without the tag, Available() returns false and
// Launch() does nothing except report that the server is missing.
//
// When available, graphical statistics are viewable at:
//
//	localhost:12800/debug/statsview
//
// And the standard Go pprof statistics at:
//
//	localhost:12800/debug/pprof/
package statsview
