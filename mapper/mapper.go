// Package mapper implements and registers the cartridge mappers referenced
// numerically by the iNES container format. Only NROM (mapper 0) is
// implemented; other mapper numbers are a registration point for future
// work.
package mapper

import (
	"fmt"

	"github.com/sixfiveohtwo/nescore/cartridge"
)

// Mapper windows a cartridge's PRG-ROM and CHR-ROM into the address ranges
// the bus and PPU read and write.
type Mapper interface {
	ID() uint8
	Name() string
	PrgRead(addr uint16) uint8
	PrgWrite(addr uint16, val uint8)
	ChrRead(addr uint16) uint8
	ChrWrite(addr uint16, val uint8)
	Mirroring() cartridge.Mirroring
}

// ErrUnsupportedMapper is returned by Get when no mapper is registered for
// a cartridge's mapper number.
var ErrUnsupportedMapper = fmt.Errorf("mapper: unsupported mapper number")

type factory func(c *cartridge.Cartridge) Mapper

var registry = map[uint8]factory{}

// RegisterMapper installs the factory used to build a Mapper for the given
// iNES mapper number. It panics on an attempt to re-register an id, mirroring
// the teacher registry's guard against silently shadowing a mapper.
func RegisterMapper(id uint8, f factory) {
	if _, ok := registry[id]; ok {
		panic(fmt.Sprintf("mapper: id %d already registered", id))
	}
	registry[id] = f
}

// Get builds the Mapper appropriate for c's mapper number.
func Get(c *cartridge.Cartridge) (Mapper, error) {
	f, ok := registry[c.Mapper]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedMapper, c.Mapper)
	}
	return f(c), nil
}

func init() {
	RegisterMapper(0, newNROM)
}
