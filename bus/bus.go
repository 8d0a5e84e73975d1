// Package bus implements the NES CPU-side address decode: RAM mirroring,
// the PPU register window, OAMDMA, and the PRG-ROM window backed by a
// mapper. It satisfies cpu.Memory so a CPU can execute directly against it.
package bus

import (
	"fmt"

	"github.com/sixfiveohtwo/nescore/mapper"
	"github.com/sixfiveohtwo/nescore/ppu"
)

const (
	ramSize      = 0x0800 // 2 KiB built-in RAM
	ramEnd       = 0x2000
	ppuRegEnd    = 0x4000
	oamDMA       = 0x4014
	ioEnd        = 0x8000 // APU/IO and unmodeled cartridge space, ignored
	prgStart     = 0x8000
	ppuRegMirror = 0x2007
)

// PPU register offsets once folded through addr & 0x2007.
const (
	regCtrl    = 0x2000
	regMask    = 0x2001
	regStatus  = 0x2002
	regOAMAddr = 0x2003
	regOAMData = 0x2004
	regScroll  = 0x2005
	regAddr    = 0x2006
	regData    = 0x2007
)

// ErrWriteToReadOnly is the panic value for a CPU write into PRG-ROM or
// into the read-only PPUSTATUS register.
type ErrWriteToReadOnly struct {
	Addr uint16
}

func (e ErrWriteToReadOnly) Error() string {
	return fmt.Sprintf("bus: write to read-only address %#04x", e.Addr)
}

// ErrReadFromWriteOnly is the panic value for a CPU read of a write-only
// PPU register.
type ErrReadFromWriteOnly struct {
	Addr uint16
}

func (e ErrReadFromWriteOnly) Error() string {
	return fmt.Sprintf("bus: read from write-only address %#04x", e.Addr)
}

// Bus ties CPU RAM, the PPU register file, and the cartridge mapper
// together behind a single 16-bit address space.
type Bus struct {
	ram    [ramSize]uint8
	ppu    *ppu.PPU
	mapper mapper.Mapper
}

// New builds a Bus over an already-constructed PPU and mapper.
func New(p *ppu.PPU, m mapper.Mapper) *Bus {
	return &Bus{ppu: p, mapper: m}
}

// Read implements cpu.Memory.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr < ramEnd:
		return b.ram[addr&0x07FF]
	case addr < ppuRegEnd:
		return b.readPPU(addr & ppuRegMirror)
	case addr == oamDMA:
		panic(ErrReadFromWriteOnly{Addr: addr})
	case addr < ioEnd:
		return 0 // APU/IO, ignored
	default:
		return b.mapper.PrgRead(addr)
	}
}

func (b *Bus) readPPU(reg uint16) uint8 {
	switch reg {
	case regStatus:
		return b.ppu.ReadStatus()
	case regOAMData:
		return b.ppu.ReadOAMData()
	case regData:
		return b.ppu.ReadData()
	default:
		panic(ErrReadFromWriteOnly{Addr: reg})
	}
}

// Write implements cpu.Memory.
func (b *Bus) Write(addr uint16, val uint8) {
	switch {
	case addr < ramEnd:
		b.ram[addr&0x07FF] = val
	case addr < ppuRegEnd:
		b.writePPU(addr&ppuRegMirror, val)
	case addr == oamDMA:
		b.oamDMA(val)
	case addr < ioEnd:
		// APU/IO, ignored
	default:
		panic(ErrWriteToReadOnly{Addr: addr})
	}
}

func (b *Bus) writePPU(reg uint16, val uint8) {
	switch reg {
	case regCtrl:
		b.ppu.WriteCtrl(val)
	case regMask:
		b.ppu.WriteMask(val)
	case regOAMAddr:
		b.ppu.WriteOAMAddr(val)
	case regOAMData:
		b.ppu.WriteOAMData(val)
	case regScroll:
		// Scrolling is out of scope; the register still accepts writes.
	case regAddr:
		b.ppu.WriteAddr(val)
	case regData:
		b.ppu.WriteData(val)
	default:
		panic(ErrWriteToReadOnly{Addr: reg})
	}
}

// oamDMA copies 256 bytes from CPU page (val<<8)..+256 into OAM, one byte
// at a time through WriteOAMData so the destination address auto-increments
// exactly as a real OAMDATA write would.
func (b *Bus) oamDMA(val uint8) {
	base := uint16(val) << 8
	for i := 0; i < 256; i++ {
		b.ppu.WriteOAMData(b.Read(base + uint16(i)))
	}
}

// Read16 reads a little-endian u16, wrapping at 0xFFFF rather than
// crossing into address 0x10000.
func (b *Bus) Read16(addr uint16) uint16 {
	lo := uint16(b.Read(addr))
	hi := uint16(b.Read(addr + 1))
	return hi<<8 | lo
}

// Write16 writes a little-endian u16, low byte first.
func (b *Bus) Write16(addr uint16, val uint16) {
	b.Write(addr, uint8(val))
	b.Write(addr+1, uint8(val>>8))
}
