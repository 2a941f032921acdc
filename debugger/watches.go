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

type watchEvent int

const (
	watchEventAny watchEvent = iota
	watchEventRead
	watchEventWrite
)

func (ev watchEvent) String() string {
	switch ev {
	case watchEventRead:
		return "read-only"
	case watchEventWrite:
		return "write-only"
	}
	return "any"
}

type watcher struct {
	address uint16
	event   watchEvent

	// whether to watch for a specific value
	matchValue bool
	value      uint8
}

func (w watcher) String() string {
	s := fmt.Sprintf("&%04X %s", w.address, w.event)
	if w.matchValue {
		s = fmt.Sprintf("%s (value=&%02X)", s, w.value)
	}
	return s
}

// watches implements the memory.Monitor interface. A matching access stops
// the CPU at the end of the current instruction.
type watches struct {
	dbg     *Debugger
	watches []watcher
}

func newWatches(dbg *Debugger) *watches {
	return &watches{dbg: dbg}
}

func (wtc *watches) clear() {
	wtc.watches = wtc.watches[:0]
}

func (wtc *watches) add(w watcher) error {
	if slices.Contains(wtc.watches, w) {
		return fmt.Errorf("watch on %s already exists", w)
	}
	wtc.watches = append(wtc.watches, w)
	return nil
}

func (wtc *watches) drop(num int) error {
	if num < 0 || num >= len(wtc.watches) {
		return fmt.Errorf("watch #%d is not defined", num)
	}
	wtc.watches = slices.Delete(wtc.watches, num, num+1)
	return nil
}

func (wtc *watches) hit(w watcher, write bool, value uint8) {
	if write {
		wtc.dbg.halt = append(wtc.dbg.halt, fmt.Sprintf("watch at %s -> &%02X", w, value))
	} else {
		wtc.dbg.halt = append(wtc.dbg.halt, fmt.Sprintf("watch at %s", w))
	}
	wtc.dbg.machine.CPU.Stop()
}

// DebugRead implements the memory.Monitor interface. The value of device
// reads is not known so a watch with a value never matches a device read.
func (wtc *watches) DebugRead(addr uint16, offset int, mapped bool) {
	for _, w := range wtc.watches {
		if w.address != addr || w.event == watchEventWrite {
			continue
		}
		var v uint8
		if mapped {
			v = wtc.dbg.machine.Mem.Store[offset+int(addr)]
		} else if w.matchValue {
			continue
		}
		if w.matchValue && w.value != v {
			continue
		}
		wtc.hit(w, false, v)
	}
}

// DebugWrite implements the memory.Monitor interface.
func (wtc *watches) DebugWrite(addr uint16, data uint8) {
	for _, w := range wtc.watches {
		if w.address != addr || w.event == watchEventRead {
			continue
		}
		if w.matchValue && w.value != data {
			continue
		}
		wtc.hit(w, true, data)
	}
}

func (wtc *watches) String() string {
	if len(wtc.watches) == 0 {
		return "no watches"
	}
	s := strings.Builder{}
	for i, w := range wtc.watches {
		fmt.Fprintf(&s, "% 2d: %s\n", i, w)
	}
	return s.String()
}
