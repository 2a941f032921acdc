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

package addresses

// Interrupt and reset vectors.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
)

// CanonicalReadSymbols lists the readable device registers with their
// canonical names.
var CanonicalReadSymbols = map[uint16]string{
	// CRTC
	0xfe01: "CRTC_DATA",

	// ACIA
	0xfe08: "ACIA_STATUS",
	0xfe09: "ACIA_RXDATA",

	// system VIA
	0xfe40: "SYSVIA_ORB",
	0xfe41: "SYSVIA_ORA",
	0xfe42: "SYSVIA_DDRB",
	0xfe43: "SYSVIA_DDRA",
	0xfe44: "SYSVIA_T1CL",
	0xfe45: "SYSVIA_T1CH",
	0xfe46: "SYSVIA_T1LL",
	0xfe47: "SYSVIA_T1LH",
	0xfe48: "SYSVIA_T2CL",
	0xfe49: "SYSVIA_T2CH",
	0xfe4a: "SYSVIA_SR",
	0xfe4b: "SYSVIA_ACR",
	0xfe4c: "SYSVIA_PCR",
	0xfe4d: "SYSVIA_IFR",
	0xfe4e: "SYSVIA_IER",
	0xfe4f: "SYSVIA_ORA_NH",

	// user VIA
	0xfe60: "USRVIA_ORB",
	0xfe61: "USRVIA_ORA",
	0xfe62: "USRVIA_DDRB",
	0xfe63: "USRVIA_DDRA",
	0xfe64: "USRVIA_T1CL",
	0xfe65: "USRVIA_T1CH",
	0xfe66: "USRVIA_T1LL",
	0xfe67: "USRVIA_T1LH",
	0xfe68: "USRVIA_T2CL",
	0xfe69: "USRVIA_T2CH",
	0xfe6a: "USRVIA_SR",
	0xfe6b: "USRVIA_ACR",
	0xfe6c: "USRVIA_PCR",
	0xfe6d: "USRVIA_IFR",
	0xfe6e: "USRVIA_IER",
	0xfe6f: "USRVIA_ORA_NH",

	// 8271 disc controller
	0xfe80: "FDC_STATUS",
	0xfe81: "FDC_RESULT",

	// ADC
	0xfec0: "ADC_STATUS",
	0xfec1: "ADC_HIGH",
	0xfec2: "ADC_LOW",
}

// CanonicalWriteSymbols lists the writable device registers with their
// canonical names.
var CanonicalWriteSymbols = map[uint16]string{
	// CRTC
	0xfe00: "CRTC_ADDR",
	0xfe01: "CRTC_DATA",

	// ACIA
	0xfe08: "ACIA_CONTROL",
	0xfe09: "ACIA_TXDATA",

	// serial ULA
	0xfe10: "SERPROC",

	// video ULA
	0xfe20: "ULA_CONTROL",
	0xfe21: "ULA_PALETTE",

	// paging
	0xfe30: "ROMSEL",
	0xfe34: "ACCCON",

	// system VIA
	0xfe40: "SYSVIA_ORB",
	0xfe41: "SYSVIA_ORA",
	0xfe42: "SYSVIA_DDRB",
	0xfe43: "SYSVIA_DDRA",
	0xfe44: "SYSVIA_T1CL",
	0xfe45: "SYSVIA_T1CH",
	0xfe46: "SYSVIA_T1LL",
	0xfe47: "SYSVIA_T1LH",
	0xfe48: "SYSVIA_T2CL",
	0xfe49: "SYSVIA_T2CH",
	0xfe4a: "SYSVIA_SR",
	0xfe4b: "SYSVIA_ACR",
	0xfe4c: "SYSVIA_PCR",
	0xfe4d: "SYSVIA_IFR",
	0xfe4e: "SYSVIA_IER",
	0xfe4f: "SYSVIA_ORA_NH",

	// user VIA
	0xfe60: "USRVIA_ORB",
	0xfe61: "USRVIA_ORA",
	0xfe62: "USRVIA_DDRB",
	0xfe63: "USRVIA_DDRA",
	0xfe64: "USRVIA_T1CL",
	0xfe65: "USRVIA_T1CH",
	0xfe66: "USRVIA_T1LL",
	0xfe67: "USRVIA_T1LH",
	0xfe68: "USRVIA_T2CL",
	0xfe69: "USRVIA_T2CH",
	0xfe6a: "USRVIA_SR",
	0xfe6b: "USRVIA_ACR",
	0xfe6c: "USRVIA_PCR",
	0xfe6d: "USRVIA_IFR",
	0xfe6e: "USRVIA_IER",
	0xfe6f: "USRVIA_ORA_NH",

	// 8271 disc controller
	0xfe80: "FDC_COMMAND",
	0xfe81: "FDC_PARAM",

	// ADC
	0xfec0: "ADC_START",
}

// OSEntryPoints are the documented entry points into the OS ROM.
var OSEntryPoints = map[uint16]string{
	0xffb9: "OSRDRM",
	0xffbf: "OSEVEN",
	0xffc2: "GSINIT",
	0xffc5: "GSREAD",
	0xffc8: "NVRDCH",
	0xffcb: "NVWRCH",
	0xffce: "OSFIND",
	0xffd1: "OSGBPB",
	0xffd4: "OSBPUT",
	0xffd7: "OSBGET",
	0xffda: "OSARGS",
	0xffdd: "OSFILE",
	0xffe0: "OSRDCH",
	0xffe3: "OSASCI",
	0xffe7: "OSNEWL",
	0xffee: "OSWRCH",
	0xfff1: "OSWORD",
	0xfff4: "OSBYTE",
	0xfff7: "OSCLI",
}

const (
	deviceOrigin = 0xfc00
	deviceMemtop = 0xfeff
)

// Read is a sparse array containing the canonical labels for readable device
// registers, indexed from the start of device space. An empty string means
// the register has no canonical name.
var Read []string

// Write is a sparse array containing the canonical labels for writable
// device registers. See Read.
var Write []string

func init() {
	Read = make([]string, deviceMemtop-deviceOrigin+1)
	for k, v := range CanonicalReadSymbols {
		Read[k-deviceOrigin] = v
	}

	Write = make([]string, deviceMemtop-deviceOrigin+1)
	for k, v := range CanonicalWriteSymbols {
		Write[k-deviceOrigin] = v
	}
}

// Symbol returns the canonical name for an address. The write flag selects
// between the read and write names of device registers. OS entry points are
// named regardless of the write flag.
func Symbol(addr uint16, write bool) (string, bool) {
	if addr >= deviceOrigin && addr <= deviceMemtop {
		var s string
		if write {
			s = Write[addr-deviceOrigin]
		} else {
			s = Read[addr-deviceOrigin]
		}
		return s, s != ""
	}
	s, ok := OSEntryPoints[addr]
	return s, ok
}
