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

package romloader

import (
	"fmt"
	"path/filepath"

	"github.com/jetsetilly/beebcore/hardware"
	"github.com/jetsetilly/beebcore/hardware/memory"
	"github.com/jetsetilly/beebcore/hardware/models"
	"github.com/jetsetilly/beebcore/logger"
)

// resolve a filename against the ROM directory. absolute paths and URLs are
// left alone.
func resolve(dir string, filename string) string {
	if filepath.IsAbs(filename) || hasScheme(filename) {
		return filename
	}
	return filepath.Join(dir, filename)
}

func hasScheme(filename string) bool {
	for i, c := range filename {
		if c == ':' {
			return i > 1
		}
		if !(c >= 'a' && c <= 'z') && !(c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return false
}

// LoadImages loads the images required by the model. Filenames are relative
// to the ROM directory unless they are absolute paths or URLs.
//
// If osFile is not empty then it replaces the model's OS image. If roms is
// not nil then it replaces the model's list of paged ROMs.
//
// Image lengths are validated before the function returns.
func LoadImages(dir string, model models.Model, osFile string, roms []string) (hardware.Images, error) {
	var images hardware.Images

	if osFile == "" {
		osFile = model.OS
	}
	if roms == nil {
		roms = model.ROMs
	}

	if osFile == "" {
		if len(roms) > 0 {
			return images, fmt.Errorf("romloader: %w: paged ROMs require an OS image", memory.InvalidROMImage)
		}
		return images, nil
	}

	ld := NewLoader(resolve(dir, osFile))
	if err := ld.Load(); err != nil {
		return images, err
	}
	if err := memory.ValidateOS(len(ld.Data)); err != nil {
		return images, fmt.Errorf("romloader: %s: %w", ld.Filename, err)
	}
	images.OS = ld.Data
	logger.Logf(logger.Allow, "romloader", "OS %s (%s)", ld.ShortName(), ld.Hash)

	for _, r := range roms {
		ld := NewLoader(resolve(dir, r))
		if err := ld.Load(); err != nil {
			return images, err
		}
		if err := memory.ValidateROM(len(ld.Data)); err != nil {
			return images, fmt.Errorf("romloader: %s: %w", ld.Filename, err)
		}
		images.ROMs = append(images.ROMs, ld.Data)
		logger.Logf(logger.Allow, "romloader", "ROM %s (%s)", ld.ShortName(), ld.Hash)
	}

	return images, nil
}
