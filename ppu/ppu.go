// Package ppu implements the programmer-visible register file of the NES
// picture processing unit: PPUCTRL, PPUMASK, PPUSTATUS, the toggling VRAM
// address latch, OAM, and the VRAM mirroring logic seen from the CPU side.
// The rendering pipeline itself (sprite evaluation, background fetch,
// scanline timing, NMI generation) is an external collaborator's concern
// and is not implemented here.
package ppu

import (
	"fmt"

	"github.com/sixfiveohtwo/nescore/cartridge"
)

const (
	vramSize = 0x1000 // 4 banks of 1KB, enough to address four-screen mirroring without panicking
	oamSize  = 256
)

// ErrUnmapped is the panic value for an access to 0x3000-0x3EFF, a range the
// spec defines as fatal because nothing backs it, and for a PPUDATA write
// into CHR space (0x0000-0x1FFF).
type ErrUnmapped struct {
	Addr uint16
}

func (e ErrUnmapped) Error() string {
	return fmt.Sprintf("ppu: address %#04x is not mapped", e.Addr)
}

// PPU holds the register file and memory a CPU-visible NES PPU exposes at
// 0x2000-0x2007 and 0x4014.
type PPU struct {
	chr       ChrMemory
	mirroring cartridge.Mirroring

	ctrl   uint8
	mask   uint8
	status uint8

	addr   addrReg
	buffer uint8

	oamAddr uint8
	oam     [oamSize]uint8

	vram         [vramSize]uint8
	paletteTable [paletteSize]uint8
}

// New builds a PPU reading pattern-table data from chr and mirroring
// nametable writes according to m.
func New(chr ChrMemory, m cartridge.Mirroring) *PPU {
	p := &PPU{chr: chr, mirroring: m}
	p.addr.resetLatch()
	return p
}

// WriteCtrl stores val into PPUCTRL.
func (p *PPU) WriteCtrl(val uint8) {
	p.ctrl = val
}

// WriteMask stores val into PPUMASK.
func (p *PPU) WriteMask(val uint8) {
	p.mask = val
}

// ReadStatus returns PPUSTATUS, then clears the vertical-blank bit and
// resets the address latch, matching real hardware's read side effect.
func (p *PPU) ReadStatus() uint8 {
	val := p.status
	p.status &^= statusVerticalBlank
	p.addr.resetLatch()
	return val
}

// SetVerticalBlank sets or clears the STATUS vertical-blank bit. It exists
// so an embedder driving frame timing can signal vblank without reaching
// into PPU internals; the core never sets it on its own since scanline
// timing is out of scope.
func (p *PPU) SetVerticalBlank(set bool) {
	if set {
		p.status |= statusVerticalBlank
	} else {
		p.status &^= statusVerticalBlank
	}
}

// WriteAddr feeds one byte of a two-write sequence into the address latch:
// high byte first, then low byte, per §4.3.
func (p *PPU) WriteAddr(val uint8) {
	p.addr.write(val)
}

// vramStep returns the PPUDATA address increment selected by CTRL bit 2.
func (p *PPU) vramStep() uint16 {
	if p.ctrl&ctrlVRAMAddIncrement != 0 {
		return incrDown
	}
	return incrAcross
}

// WriteData writes val into PPU memory at the current address, then
// advances the address by the CTRL-selected step.
func (p *PPU) WriteData(val uint8) {
	p.write(p.addr.get(), val)
	p.addr.increment(p.vramStep())
}

// ReadData reads from PPU memory at the current address, then advances the
// address by the CTRL-selected step.
func (p *PPU) ReadData() uint8 {
	val := p.read(p.addr.get())
	p.addr.increment(p.vramStep())
	return val
}

