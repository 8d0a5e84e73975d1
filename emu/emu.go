// Package emu assembles the cartridge loader, mapper registry, PPU
// register file, bus, and CPU core into a single runnable unit, the way
// gintendo.go wires console.New around a loaded ROM.
package emu

import (
	"context"

	"github.com/sixfiveohtwo/nescore/bus"
	"github.com/sixfiveohtwo/nescore/cartridge"
	"github.com/sixfiveohtwo/nescore/cpu"
	"github.com/sixfiveohtwo/nescore/mapper"
	"github.com/sixfiveohtwo/nescore/ppu"
)

// Emu owns the Bus, the PPU, and the CPU, and wires one ROM's worth of
// parsed cartridge data through a selected mapper.
type Emu struct {
	CPU *cpu.CPU
	Bus *bus.Bus
	PPU *ppu.PPU
}

// FromCartridge builds the Bus/PPU/CPU aggregate for a parsed cartridge,
// selecting its mapper from the registry.
func FromCartridge(c *cartridge.Cartridge) (*Emu, error) {
	m, err := mapper.Get(c)
	if err != nil {
		return nil, err
	}

	p := ppu.New(m, c.Mirroring)
	b := bus.New(p, m)

	return &Emu{
		CPU: cpu.New(b),
		Bus: b,
		PPU: p,
	}, nil
}

// Reset brings the CPU back to its post-power-up state, reloading PC from
// the reset vector.
func (e *Emu) Reset() {
	e.CPU.Reset()
}

// Step executes exactly one instruction and reports whether it halted the
// CPU (BRK).
func (e *Emu) Step() cpu.Status {
	return e.CPU.Step()
}

// Trace renders the instruction about to execute in nestest.log format.
func (e *Emu) Trace() string {
	return cpu.Trace(e.CPU)
}

// RunWithCallback steps the CPU in a loop, invoking callback with e before
// each step. It returns when callback returns false, ctx is cancelled, or
// an instruction halts the CPU.
func (e *Emu) RunWithCallback(ctx context.Context, callback func(*Emu) bool) {
	e.CPU.Run(ctx, func(*cpu.CPU) bool {
		return callback == nil || callback(e)
	})
}
