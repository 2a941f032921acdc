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

package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jetsetilly/beebcore/hardware/cpu/instructions"
	"github.com/jetsetilly/beebcore/hardware/memory/memorymap"
)

// Model describes a machine.
type Model struct {
	// short name used to select the model
	Name string

	// long description
	Description string

	Variant instructions.Variant

	// the Master has ACCCON, the private RAM regions and a different layout
	// of device space
	IsMaster bool

	// the entire address space is RAM and there is no device space
	IsTest bool

	// paged ROM banks that are RAM
	SidewaysRAM [memorymap.NumROMBanks]bool

	// default images. the OS image is loaded first and then the ROMs are
	// loaded into the banks below any extra banks in the OS image, in the
	// order listed
	OS   string
	ROMs []string
}

func (m Model) String() string {
	return m.Name
}

// UnknownModel is returned by Find() if the requested model does not exist.
var UnknownModel = errors.New("unknown model")

// sideways RAM in banks 4 to 7.
var swram4to7 = [memorymap.NumROMBanks]bool{4: true, 5: true, 6: true, 7: true}

var models = []Model{
	{
		Name:        "B",
		Description: "BBC Model B",
		Variant:     instructions.NMOS,
		OS:          "os.rom",
		ROMs:        []string{"b/BASIC.ROM", "b/DFS-1.2.rom"},
	},
	{
		Name:        "BSWRAM",
		Description: "BBC Model B with 64k sideways RAM",
		Variant:     instructions.NMOS,
		SidewaysRAM: swram4to7,
		OS:          "os.rom",
		ROMs:        []string{"b/BASIC.ROM", "b/DFS-1.2.rom"},
	},
	{
		Name:        "MASTER",
		Description: "BBC Master 128",
		Variant:     instructions.CMOS,
		IsMaster:    true,
		SidewaysRAM: swram4to7,
		OS:          "master/mos3.20",
	},
	{
		Name:        "TEST6502",
		Description: "Flat RAM with NMOS 6502",
		Variant:     instructions.NMOS,
		IsTest:      true,
	},
	{
		Name:        "TEST65C12",
		Description: "Flat RAM with CMOS 65C12",
		Variant:     instructions.CMOS,
		IsTest:      true,
	},
}

// Find the model with the name. The search is not case sensitive. The
// returned Model is a copy and may be altered by the caller.
func Find(name string) (Model, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for _, m := range models {
		if m.Name == name {
			m.ROMs = append([]string(nil), m.ROMs...)
			return m, nil
		}
	}
	return Model{}, fmt.Errorf("%w: %s", UnknownModel, name)
}

// Names returns the names of all the models in alphabetical order.
func Names() []string {
	n := make([]string, 0, len(models))
	for _, m := range models {
		n = append(n, m.Name)
	}
	sort.Strings(n)
	return n
}
