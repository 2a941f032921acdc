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

package hardware

// maximum length of string returned by ReadString()
const maxStringLength = 256

// ReadString returns the string at the address. The string is terminated by
// a zero byte or a carriage return. The memory is read without side effects.
func (m *Machine) ReadString(addr uint16) string {
	s := make([]byte, 0, 32)
	for range maxStringLength {
		b, _ := m.Mem.Peek(addr)
		addr++
		if b == 0x00 || b == 0x0d {
			break
		}
		s = append(s, b)
	}
	return string(s)
}

// FindString returns the first address at or after from where the string is
// found. The memory is read without side effects.
func (m *Machine) FindString(s string, from uint16) (uint16, bool) {
	if len(s) == 0 {
		return from, true
	}

	for addr := int(from); addr < 0xffff; addr++ {
		i := 0
		for ; i < len(s); i++ {
			b, _ := m.Mem.Peek(uint16(addr + i))
			if b != s[i] {
				break
			}
		}
		if i == len(s) {
			return uint16(addr), true
		}
	}

	return 0, false
}
