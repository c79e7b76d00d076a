package cartridge

func init() {
	registerMapper(0, newNROM)
}

// nrom is mapper 0, the plain-wired cartridge: a single 16KiB or 32KiB
// PRG bank visible at $8000-$FFFF (the 16KiB case mirrors into both
// halves of the window) and a fixed 8KiB CHR bank (ROM or RAM) at
// $0000-$1FFF. It has no bank-switching registers of its own.
type nrom struct {
	rom     *ROM
	prgRAM  [prgRAMBank]uint8
	chrRAM  []uint8
	prgMask uint16
}

func newNROM(rom *ROM) Mapper {
	m := &nrom{rom: rom}
	if rom.HasCHRRAM() {
		m.chrRAM = make([]uint8, chrBankSize)
	}
	// A single 16KiB bank mirrors; two banks span the full window.
	if len(rom.prg) <= prgBankSize {
		m.prgMask = prgBankSize - 1
	} else {
		m.prgMask = uint16(len(rom.prg) - 1)
	}
	return m
}

func (m *nrom) ID() uint16   { return 0 }
func (m *nrom) Name() string { return "NROM" }

func (m *nrom) MirroringMode() uint8 { return m.rom.MirroringMode() }

func (m *nrom) PrgRead(addr uint16) uint8 {
	switch {
	case addr >= 0x6000 && addr < 0x8000:
		return m.prgRAM[addr-0x6000]
	case addr >= 0x8000:
		return m.rom.prg[addr&m.prgMask]
	default:
		return 0
	}
}

func (m *nrom) PrgWrite(addr uint16, val uint8) {
	if addr >= 0x6000 && addr < 0x8000 {
		m.prgRAM[addr-0x6000] = val
	}
	// Writes into $8000-$FFFF hit ROM on real NROM hardware and are
	// silently dropped.
}

func (m *nrom) ChrRead(addr uint16) uint8 {
	if m.chrRAM != nil {
		return m.chrRAM[addr&(chrBankSize-1)]
	}
	return m.rom.chr[addr&(chrBankSize-1)]
}

func (m *nrom) ChrWrite(addr uint16, val uint8) {
	if m.chrRAM != nil {
		m.chrRAM[addr&(chrBankSize-1)] = val
	}
	// CHR-ROM carts ignore PPU writes to pattern table space.
}
