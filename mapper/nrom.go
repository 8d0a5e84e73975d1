package mapper

import "github.com/sixfiveohtwo/nescore/cartridge"

// nrom implements mapper 0 (NROM): a fixed, unbanked PRG-ROM window at
// 0x8000-0xFFFF, mirrored every 0x4000 bytes when the cartridge carries only
// a single 16KB PRG bank. CHR is typically ROM, but a zero-length CHR image
// is treated as 8KB of CHR-RAM, matching common NROM carts that ship no CHR
// data at all.
type nrom struct {
	prg       []byte
	chr       []byte
	mirroring cartridge.Mirroring
}

func newNROM(c *cartridge.Cartridge) Mapper {
	chr := c.CHR
	if len(chr) == 0 {
		chr = make([]byte, 0x2000)
	}
	return &nrom{
		prg:       c.PRG,
		chr:       chr,
		mirroring: c.Mirroring,
	}
}

func (m *nrom) ID() uint8    { return 0 }
func (m *nrom) Name() string { return "NROM" }

func (m *nrom) Mirroring() cartridge.Mirroring { return m.mirroring }

func (m *nrom) PrgRead(addr uint16) uint8 {
	off := int(addr-0x8000) % len(m.prg)
	return m.prg[off]
}

// PrgWrite is a no-op: NROM carries no PRG-RAM or bank-select registers.
func (m *nrom) PrgWrite(addr uint16, val uint8) {}

func (m *nrom) ChrRead(addr uint16) uint8 {
	return m.chr[addr]
}

func (m *nrom) ChrWrite(addr uint16, val uint8) {
	m.chr[addr] = val
}
