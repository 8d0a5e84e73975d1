package mapper

import (
	"errors"
	"testing"

	"github.com/sixfiveohtwo/nescore/cartridge"
)

func TestGetUnsupportedMapper(t *testing.T) {
	c := &cartridge.Cartridge{Mapper: 99}
	if _, err := Get(c); !errors.Is(err, ErrUnsupportedMapper) {
		t.Errorf("Get() error = %v, want ErrUnsupportedMapper", err)
	}
}

func TestNROMPrgMirroring(t *testing.T) {
	prg := make([]byte, 0x4000)
	prg[0] = 0xEA
	prg[0x3FFF] = 0x60
	c := &cartridge.Cartridge{Mapper: 0, PRG: prg, Mirroring: cartridge.MirrorHorizontal}

	m, err := Get(c)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got := m.PrgRead(0x8000); got != 0xEA {
		t.Errorf("PrgRead(0x8000) = %#02x, want 0xEA", got)
	}
	if got := m.PrgRead(0xC000); got != 0xEA {
		t.Errorf("PrgRead(0xC000) = %#02x, want 0xEA (mirrored bank)", got)
	}
	if got := m.PrgRead(0xFFFF); got != 0x60 {
		t.Errorf("PrgRead(0xFFFF) = %#02x, want 0x60", got)
	}
}

func TestNROMChrRAMWhenEmpty(t *testing.T) {
	c := &cartridge.Cartridge{Mapper: 0, PRG: make([]byte, 0x4000)}
	m, err := Get(c)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	m.ChrWrite(0x10, 0x42)
	if got := m.ChrRead(0x10); got != 0x42 {
		t.Errorf("ChrRead(0x10) = %#02x, want 0x42", got)
	}
}

func TestNROMMirroringReportsCartridge(t *testing.T) {
	c := &cartridge.Cartridge{Mapper: 0, PRG: make([]byte, 0x4000), Mirroring: cartridge.MirrorVertical}
	m, err := Get(c)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got := m.Mirroring(); got != cartridge.MirrorVertical {
		t.Errorf("Mirroring() = %v, want vertical", got)
	}
}
