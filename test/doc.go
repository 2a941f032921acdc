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

// Package test contains helper functions that remove common boilerplate from
// the package tests.
//
// The Expect functions record a test failure and allow the test to continue.
// The Demand functions stop the test immediately. Use a Demand function when
// later parts of the test depend on the value being correct, for example
// checking the length of two slices before iterating over them in unison.
//
// Success and failure are judged according to the type of the value:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// Any other type causes the test to fail immediately.
//
// All functions accept optional tags. The tags are printed at the head of the
// failure message and help to identify which iteration of a loop failed.
package test
