package ppu

// WriteOAMAddr stores the address the next OAMDATA read or write will
// target. The spec's bus table lists OAMADDR as write-only against the CPU
// and fatal on read.
func (p *PPU) WriteOAMAddr(val uint8) {
	p.oamAddr = val
}

// WriteOAMData writes val into OAM at the current OAM address and advances
// the address by one, matching real OAMDATA write behavior.
func (p *PPU) WriteOAMData(val uint8) {
	p.oam[p.oamAddr] = val
	p.oamAddr++
}

// ReadOAMData returns the byte at the current OAM address without
// advancing it.
func (p *PPU) ReadOAMData() uint8 {
	return p.oam[p.oamAddr]
}
