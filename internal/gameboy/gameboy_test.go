package gameboy

import (
	"errors"
	"strings"
	"testing"

	"github.com/cespare/xxhash"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/internal/mmu"
)

// LD A, 5; XOR A; NOP; illegal
var program = []byte{0x3E, 0x05, 0xAF, 0x00, 0xD3}

func TestNewGameBoy(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.InfoLevel)

	g, err := NewGameBoy(program, WithLogger(logger))
	if err != nil {
		t.Fatal(err)
	}
	if g.Fingerprint != xxhash.Sum64(program) {
		t.Errorf("expected fingerprint %016x, got %016x", xxhash.Sum64(program), g.Fingerprint)
	}
	if g.MMU.Read(0x0000) != 0x3E {
		t.Errorf("expected the program to be loaded at 0x0000")
	}
	if g.CPU.Debug {
		t.Errorf("expected debug to be disabled by default")
	}

	entry := hook.LastEntry()
	if entry == nil || !strings.Contains(entry.Message, "loaded program (5 bytes") {
		t.Errorf("expected a load message, got %v", entry)
	}
}

func TestNewGameBoy_Options(t *testing.T) {
	t.Run("debug", func(t *testing.T) {
		g, err := NewGameBoy(program, Debug())
		if err != nil {
			t.Fatal(err)
		}
		if !g.CPU.Debug {
			t.Errorf("expected debug to be enabled")
		}
	})
	t.Run("boot rom", func(t *testing.T) {
		bootROM := make([]byte, 256)
		bootROM[0] = 0x31

		g, err := NewGameBoy(program, WithBootROM(bootROM))
		if err != nil {
			t.Fatal(err)
		}
		if !g.MMU.BootROMMapped() {
			t.Errorf("expected the boot rom to be mapped")
		}
		if g.MMU.Read(0x0000) != 0x31 {
			t.Errorf("expected boot rom at 0x0000, got 0x%02X", g.MMU.Read(0x0000))
		}
		if g.Boot.Model() != "unknown" {
			t.Errorf("expected unknown model, got %s", g.Boot.Model())
		}
	})
	t.Run("invalid boot rom", func(t *testing.T) {
		if _, err := NewGameBoy(program, WithBootROM(make([]byte, 100))); err == nil {
			t.Errorf("expected an error for a 100 byte boot rom")
		}
	})
	t.Run("oversized program", func(t *testing.T) {
		if _, err := NewGameBoy(make([]byte, mmu.ROMSize+1)); err == nil {
			t.Errorf("expected an error for an oversized program")
		}
	})
}

func TestGameBoy_Run(t *testing.T) {
	logger, hook := test.NewNullLogger()
	g, err := NewGameBoy(program, WithLogger(logger))
	if err != nil {
		t.Fatal(err)
	}

	err = g.Run()
	var unimplemented *cpu.UnimplementedError
	if !errors.As(err, &unimplemented) {
		t.Fatalf("expected *cpu.UnimplementedError, got %v", err)
	}
	if g.CPU.A != 0 || g.CPU.F != cpu.FlagZero {
		t.Errorf("expected A=0 with Z, got %s", g.CPU)
	}
	if g.CPU.Clock != 16 {
		t.Errorf("expected 16 cycles, got %d", g.CPU.Clock)
	}
	// the abort is left to the caller to report
	for _, entry := range hook.AllEntries() {
		if entry.Level <= logrus.ErrorLevel {
			t.Errorf("expected the abort not to be logged, got %q", entry.Message)
		}
	}
}

func TestGameBoy_Step(t *testing.T) {
	g, err := NewGameBoy(program)
	if err != nil {
		t.Fatal(err)
	}

	if err := g.Step(1); err != nil {
		t.Fatal(err)
	}
	if g.CPU.A != 5 || g.CPU.PC != 2 {
		t.Errorf("expected A=5 PC=2, got %s", g.CPU)
	}
	if err := g.Step(2); err != nil {
		t.Fatal(err)
	}
	if err := g.Step(1); err == nil {
		t.Errorf("expected the illegal opcode to abort")
	}
}
