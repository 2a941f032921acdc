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

// Package models defines the machines that can be emulated. A Model is plain
// data: which processor variant is fitted, whether the Master features are
// present, which paged ROM banks are sideways RAM and which ROM images are
// loaded by default.
//
// The test models map the entire address space as RAM. They are used for
// running processor conformance tests.
package models
