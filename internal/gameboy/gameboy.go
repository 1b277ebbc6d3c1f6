// Package gameboy wires the CPU to its memory and owns a single run of a
// program image.
package gameboy

import (
	"fmt"

	"github.com/cespare/xxhash"
	"github.com/thelolagemann/gbcore/internal/boot"
	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/internal/mmu"
	"github.com/thelolagemann/gbcore/pkg/log"
)

var _ cpu.Memory = (*mmu.MMU)(nil)

// GameBoy represents a Game Boy. It contains all the components of the Game Boy.
// It is the main entry point for the emulator.
type GameBoy struct {
	CPU  *cpu.CPU
	MMU  *mmu.MMU
	Boot *boot.ROM

	log.Logger

	// Fingerprint is the xxhash of the program image.
	Fingerprint uint64

	bootROM []byte
	debug   bool
}

// NewGameBoy returns a new GameBoy with the program loaded at 0x0000.
func NewGameBoy(rom []byte, opts ...Opt) (*GameBoy, error) {
	g := &GameBoy{
		Logger:      log.NewNullLogger(),
		Fingerprint: xxhash.Sum64(rom),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.MMU = mmu.NewMMU(g.Logger)
	if g.bootROM != nil {
		b, err := boot.LoadBootROM(g.bootROM)
		if err != nil {
			return nil, err
		}
		g.Boot = b
		g.MMU.SetBootROM(b)
	}
	if err := g.MMU.LoadProgram(rom); err != nil {
		return nil, fmt.Errorf("gameboy: %w", err)
	}

	g.CPU = cpu.NewCPU(g.MMU, g.Logger)
	g.CPU.Debug = g.debug

	g.Infof("loaded program (%d bytes, xxhash %016x, boot rom %s)", len(rom), g.Fingerprint, g.Boot.Model())
	return g, nil
}

// Run runs the CPU until an instruction aborts. The abort is returned to
// the caller unlogged and the run can not be resumed.
func (g *GameBoy) Run() error {
	return g.CPU.Run()
}

// Step executes at most n instructions.
func (g *GameBoy) Step(n int) error {
	if err := g.CPU.RunFor(n); err != nil {
		return err
	}
	g.Debugf("executed %d instructions (%d cycles) %s", n, g.CPU.Clock, g.CPU)
	return nil
}
