// Command gintendo loads an iNES ROM and drives the emulated CPU through an
// ebiten game loop. Rendering is a placeholder: the PPU's visible-pixel
// pipeline is out of scope, so Draw paints a solid frame while the CPU runs.
package main

import (
	"context"
	"flag"
	"image/color"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sixfiveohtwo/nescore/cartridge"
	"github.com/sixfiveohtwo/nescore/emu"
)

const (
	resWidth  = 256
	resHeight = 240
)

var romFile = flag.String("rom", "", "Path to an iNES ROM to run.")

type game struct {
	e *emu.Emu
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return resWidth, resHeight
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xFF})
}

// Update is part of the ebiten.Game interface; the CPU runs on its own
// goroutine via Emu.RunWithCallback rather than being driven by ebiten's
// tick, so this is a no-op.
func (g *game) Update() error {
	return nil
}

func main() {
	flag.Parse()

	data, err := os.ReadFile(*romFile)
	if err != nil {
		log.Fatalf("couldn't read ROM: %v", err)
	}

	cart, err := cartridge.Parse(data)
	if err != nil {
		log.Fatalf("couldn't parse ROM: %v", err)
	}

	e, err := emu.FromCartridge(cart)
	if err != nil {
		log.Fatalf("couldn't build emulator: %v", err)
	}
	e.Reset()

	ctx, cancel := context.WithCancel(context.Background())

	sigQuit := make(chan os.Signal, 1)
	signal.Notify(sigQuit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigQuit:
			cancel()
		case <-ctx.Done():
		}
	}()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Fatalf("emulation core halted: %v", r)
			}
		}()
		e.RunWithCallback(ctx, nil)
	}()

	ebiten.SetWindowSize(resWidth*2, resHeight*2)
	ebiten.SetWindowTitle("gintendo")

	if err := ebiten.RunGame(&game{e: e}); err != nil {
		log.Fatal(err)
	}

	cancel()
}
