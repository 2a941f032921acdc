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

package memorymap

import (
	"fmt"
	"strings"
)

// Area represents the different areas of the address space.
type Area int

func (a Area) String() string {
	switch a {
	case AreaRAM:
		return "RAM"
	case AreaPaged:
		return "Paged ROM"
	case AreaOS:
		return "OS ROM"
	case AreaFRED:
		return "FRED"
	case AreaJIM:
		return "JIM"
	case AreaSHEILA:
		return "SHEILA"
	}
	return "undefined"
}

// List of address space areas.
const (
	AreaRAM Area = iota
	AreaPaged
	AreaOS
	AreaFRED
	AreaJIM
	AreaSHEILA
)

// MapAddress returns the Area of the address.
func MapAddress(addr uint16) Area {
	switch {
	case addr < 0x8000:
		return AreaRAM
	case addr < 0xc000:
		return AreaPaged
	case addr < OriginFRED:
		return AreaOS
	case addr < OriginJIM:
		return AreaFRED
	case addr < OriginSHEILA:
		return AreaJIM
	case addr <= MemtopDevice:
		return AreaSHEILA
	}
	return AreaOS
}

// Summary returns a single multiline string detailing all the areas in
// memory. Useful for reference.
func Summary() string {
	s := strings.Builder{}

	sa := 0
	current := MapAddress(0)
	for a := 1; a <= 0xffff; a++ {
		area := MapAddress(uint16(a))
		if area != current {
			s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", sa, a-1, current))
			current = area
			sa = a
		}
	}
	s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", sa, 0xffff, current))

	return s.String()
}
