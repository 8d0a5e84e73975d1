package ppu

import (
	"testing"

	"github.com/sixfiveohtwo/nescore/cartridge"
)

type fakeChr struct {
	data [0x2000]uint8
}

func (c *fakeChr) ChrRead(addr uint16) uint8      { return c.data[addr] }
func (c *fakeChr) ChrWrite(addr uint16, val uint8) { c.data[addr] = val }

func TestReadStatusClearsVBlankAndLatch(t *testing.T) {
	p := New(&fakeChr{}, cartridge.MirrorHorizontal)
	p.SetVerticalBlank(true)

	p.WriteAddr(0x21) // first write, would go to high byte
	if got := p.ReadStatus(); got&statusVerticalBlank == 0 {
		t.Fatalf("ReadStatus() = %#02x, want vblank bit set", got)
	}
	if p.status&statusVerticalBlank != 0 {
		t.Errorf("status after read = %#02x, want vblank cleared", p.status)
	}

	// Latch was reset by the status read, so this write lands in the high byte again.
	p.WriteAddr(0x23)
	p.WriteAddr(0x45)
	if got := p.addr.get(); got != 0x2345 {
		t.Errorf("addr = %#04x, want 0x2345", got)
	}
}

func TestWriteAddrMasksAbove3FFF(t *testing.T) {
	p := New(&fakeChr{}, cartridge.MirrorHorizontal)
	p.WriteAddr(0xFF)
	p.WriteAddr(0xFF)
	if got := p.addr.get(); got > 0x3FFF {
		t.Errorf("addr = %#04x, want <= 0x3FFF", got)
	}
}

func TestReadDataBuffersChr(t *testing.T) {
	chr := &fakeChr{}
	chr.data[0x0010] = 0x42
	p := New(chr, cartridge.MirrorHorizontal)

	p.WriteAddr(0x00)
	p.WriteAddr(0x10)
	if got := p.ReadData(); got != 0 {
		t.Errorf("first ReadData() = %#02x, want 0 (buffered)", got)
	}
	if got := p.ReadData(); got != 0x42 {
		t.Errorf("second ReadData() = %#02x, want 0x42", got)
	}
}

func TestReadDataPaletteIsImmediate(t *testing.T) {
	p := New(&fakeChr{}, cartridge.MirrorHorizontal)
	p.WriteAddr(0x3F)
	p.WriteAddr(0x05)
	p.WriteData(0x16)

	p.WriteAddr(0x3F)
	p.WriteAddr(0x05)
	if got := p.ReadData(); got != 0x16 {
		t.Errorf("ReadData() = %#02x, want 0x16 (immediate)", got)
	}
}

func TestPaletteMirrorAliases(t *testing.T) {
	p := New(&fakeChr{}, cartridge.MirrorHorizontal)

	p.WriteAddr(0x3F)
	p.WriteAddr(0x10)
	p.WriteData(0x07)

	p.WriteAddr(0x3F)
	p.WriteAddr(0x00)
	if got := p.ReadData(); got != 0x07 {
		t.Errorf("0x3F00 = %#02x, want 0x07 (aliased from 0x3F10)", got)
	}
}

func TestUnmappedRangePanics(t *testing.T) {
	p := New(&fakeChr{}, cartridge.MirrorHorizontal)
	p.WriteAddr(0x30)
	p.WriteAddr(0x00)

	defer func() {
		if recover() == nil {
			t.Fatal("ReadData() in 0x3000-0x3EFF did not panic")
		}
	}()
	p.ReadData()
}

func TestWriteDataToChrRangePanics(t *testing.T) {
	p := New(&fakeChr{}, cartridge.MirrorHorizontal)
	p.WriteAddr(0x00)
	p.WriteAddr(0x10)

	defer func() {
		if recover() == nil {
			t.Fatal("WriteData() into CHR space did not panic")
		}
	}()
	p.WriteData(0xFF)
}

func TestNametableMirroringVertical(t *testing.T) {
	p := New(&fakeChr{}, cartridge.MirrorVertical)

	p.WriteAddr(0x20)
	p.WriteAddr(0x00)
	p.WriteData(0x11)

	// Vertical mirroring: bank 2 (0x2800) mirrors bank 0 (0x2000).
	p.WriteAddr(0x28)
	p.WriteAddr(0x00)
	p.ReadData()               // discard stale buffer, refills from the mirrored address
	if got := p.ReadData(); got != 0x11 {
		t.Errorf("mirrored read = %#02x, want 0x11", got)
	}
}

func TestOAMReadWrite(t *testing.T) {
	p := New(&fakeChr{}, cartridge.MirrorHorizontal)
	p.WriteOAMAddr(0x10)
	p.WriteOAMData(0x99)
	if got := p.ReadOAMData(); got != 0 {
		t.Errorf("ReadOAMData() after one write = %#02x, want 0 (addr auto-incremented)", got)
	}

	p.WriteOAMAddr(0x10)
	if got := p.ReadOAMData(); got != 0x99 {
		t.Errorf("ReadOAMData() = %#02x, want 0x99", got)
	}
}
