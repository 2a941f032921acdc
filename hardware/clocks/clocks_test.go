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

package clocks_test

import (
	"testing"

	"github.com/jetsetilly/beebcore/hardware/clocks"
	"github.com/jetsetilly/beebcore/test"
)

func TestClocks(t *testing.T) {
	test.ExpectEquality(t, clocks.CyclesPerField, 40000)
	test.ExpectEquality(t, clocks.Seconds(clocks.CPU*3), 3.0)
	test.ExpectEquality(t, clocks.Seconds(clocks.Bus), 0.5)
}
