// Command nestest runs nestest.nes headlessly from its automation entry
// point ($C000) and prints a trace line per instruction in Nintendulator's
// nestest.log format, for diffing against the reference log.
package main

import (
	"bufio"
	"flag"
	"log"
	"os"

	"github.com/sixfiveohtwo/nescore/cartridge"
	"github.com/sixfiveohtwo/nescore/cpu"
	"github.com/sixfiveohtwo/nescore/emu"
)

var romFile = flag.String("rom", "", "Path to nestest.nes.")

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
	e.CPU.PC = 0xC000 // nestest's automated (no-input) entry point

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	defer func() {
		if r := recover(); r != nil {
			out.Flush()
			log.Fatalf("emulation core halted: %v", r)
		}
	}()

	for {
		out.WriteString(e.Trace())
		out.WriteString("\n")

		if e.Step() == cpu.Halted {
			break
		}
	}
}
