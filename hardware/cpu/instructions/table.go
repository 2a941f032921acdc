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

package instructions

import (
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

//go:embed nmos.csv
var nmosCSV string

//go:embed cmos.csv
var cmosCSV string

// InvalidDefinition is returned by Parse when the instruction data is
// malformed.
var InvalidDefinition = errors.New("invalid instruction definition")

// Parse instruction definitions in CSV form. Every opcode must be defined
// exactly once.
//
// Each record is: opcode (hex), mnemonic, addressing mode, cycles, optional
// page sensitivity ("P") and optional effect. Lines beginning with '#' are
// comments.
func Parse(r io.Reader) ([]*Definition, error) {
	csvr := csv.NewReader(r)
	csvr.Comment = '#'
	csvr.TrimLeadingSpace = true
	csvr.FieldsPerRecord = -1

	defs := make([]*Definition, 256)

	for {
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", InvalidDefinition, err)
		}

		line, _ := csvr.FieldPos(0)

		if len(rec) < 4 || len(rec) > 6 {
			return nil, fmt.Errorf("%w: line %d: wrong number of fields (%d)", InvalidDefinition, line, len(rec))
		}

		opcode, err := strconv.ParseUint(rec[0], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", InvalidDefinition, line, err)
		}
		if defs[opcode] != nil {
			return nil, fmt.Errorf("%w: line %d: duplicate opcode %02x", InvalidDefinition, line, opcode)
		}

		mode, ok := modeNames[rec[2]]
		if !ok {
			return nil, fmt.Errorf("%w: line %d: unknown addressing mode (%s)", InvalidDefinition, line, rec[2])
		}

		cycles, err := strconv.Atoi(rec[3])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", InvalidDefinition, line, err)
		}

		defn := &Definition{
			OpCode:         uint8(opcode),
			Mnemonic:       strings.ToUpper(rec[1]),
			Bytes:          mode.Bytes(),
			Cycles:         cycles,
			AddressingMode: mode,
		}

		if len(rec) > 4 {
			switch rec[4] {
			case "":
			case "P":
				defn.PageSensitive = true
			default:
				return nil, fmt.Errorf("%w: line %d: unknown page sensitivity flag (%s)", InvalidDefinition, line, rec[4])
			}
		}

		if len(rec) > 5 {
			defn.Effect, ok = effectNames[rec[5]]
			if !ok {
				return nil, fmt.Errorf("%w: line %d: unknown effect (%s)", InvalidDefinition, line, rec[5])
			}
		}

		defs[opcode] = defn
	}

	for i, d := range defs {
		if d == nil {
			return nil, fmt.Errorf("%w: opcode %02x is not defined", InvalidDefinition, i)
		}
	}

	return defs, nil
}

var definitions = struct {
	once sync.Once
	nmos []*Definition
	cmos []*Definition
}{}

// GetDefinitions returns the table of instruction definitions for the
// processor variant. The table is indexed by opcode and must not be altered
// by the caller.
func GetDefinitions(variant Variant) []*Definition {
	definitions.once.Do(func() {
		var err error
		definitions.nmos, err = Parse(strings.NewReader(nmosCSV))
		if err != nil {
			panic(fmt.Sprintf("instructions: NMOS table: %v", err))
		}
		definitions.cmos, err = Parse(strings.NewReader(cmosCSV))
		if err != nil {
			panic(fmt.Sprintf("instructions: CMOS table: %v", err))
		}
	})

	if variant == CMOS {
		return definitions.cmos
	}
	return definitions.nmos
}
