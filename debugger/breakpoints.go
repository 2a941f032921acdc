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

import (
	"fmt"
	"slices"
	"strings"
)

type breakpoints struct {
	addresses []uint16
}

func newBreakpoints() *breakpoints {
	return &breakpoints{}
}

func (bp *breakpoints) clear() {
	bp.addresses = bp.addresses[:0]
}

func (bp *breakpoints) add(addr uint16) error {
	if slices.Contains(bp.addresses, addr) {
		return fmt.Errorf("breakpoint at &%04X already exists", addr)
	}
	bp.addresses = append(bp.addresses, addr)
	return nil
}

func (bp *breakpoints) drop(num int) error {
	if num < 0 || num >= len(bp.addresses) {
		return fmt.Errorf("breakpoint #%d is not defined", num)
	}
	bp.addresses = slices.Delete(bp.addresses, num, num+1)
	return nil
}

// check returns true if there is a breakpoint at the address.
func (bp *breakpoints) check(addr uint16) bool {
	return slices.Contains(bp.addresses, addr)
}

func (bp *breakpoints) String() string {
	if len(bp.addresses) == 0 {
		return "no breakpoints"
	}
	s := strings.Builder{}
	for i, a := range bp.addresses {
		fmt.Fprintf(&s, "% 2d: &%04X\n", i, a)
	}
	return s.String()
}
