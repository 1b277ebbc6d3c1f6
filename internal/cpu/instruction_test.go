package cpu

import (
	"testing"

	"github.com/thelolagemann/gbcore/internal/mmu"
)

var (
	cpu *CPU
	mem *mmu.MMU
)

// unimplementedOpcodes are the opcodes that abort when executed.
var unimplementedOpcodes = map[uint8]string{
	0x10: "STOP", 0x76: "HALT",
	0xC0: "RET NZ", 0xC2: "JP NZ, a16", 0xC4: "CALL NZ, a16", 0xC8: "RET Z",
	0xCA: "JP Z, a16", 0xCB: "PREFIX CB", 0xCC: "CALL Z, a16",
	0xD0: "RET NC", 0xD2: "JP NC, a16", 0xD3: "illegal", 0xD4: "CALL NC, a16",
	0xD8: "RET C", 0xD9: "RETI", 0xDA: "JP C, a16", 0xDB: "illegal",
	0xDC: "CALL C, a16", 0xDD: "illegal",
	0xE3: "illegal", 0xE4: "illegal", 0xE8: "ADD SP, r8", 0xEB: "illegal",
	0xEC: "illegal", 0xED: "illegal",
	0xF1: "POP AF", 0xF3: "DI", 0xF4: "illegal", 0xF5: "PUSH AF",
	0xF8: "LD HL, SP+r8", 0xFB: "EI", 0xFC: "illegal", 0xFD: "illegal",
}

// reset creates a fresh CPU backed by empty memory.
func reset() {
	mem = mmu.NewMMU(nil)
	cpu = NewCPU(mem, nil)
}

// loadProgram resets the CPU and loads the given program at 0x0000.
func loadProgram(t *testing.T, program ...byte) {
	t.Helper()
	reset()
	if err := mem.LoadProgram(program); err != nil {
		t.Fatal(err)
	}
}

// execute runs the behavior of the instruction with the given operand, the
// same way Step does after decoding.
func execute(instr OpCode, operand Operand) {
	cpu.cycles = 0
	instr.fn(cpu, mem, operand)
}

func testInstruction(t *testing.T, name string, opcode uint8, f func(*testing.T, OpCode)) {
	reset()

	t.Run(name, func(t *testing.T) {
		instr := Lookup(opcode)
		if instr.Name != name {
			t.Fatalf("expected opcode %02X to be %q, got %q", opcode, name, instr.Name)
		}
		f(t, instr)
	})
}

func TestInstructionSet(t *testing.T) {
	names := make(map[string]uint8)
	for i := 0; i < 256; i++ {
		opcode := uint8(i)
		instr := Lookup(opcode)

		if _, ok := unimplementedOpcodes[opcode]; ok {
			if instr.Implemented() {
				t.Errorf("expected opcode %02X to be unimplemented, got %s", opcode, instr.Name)
			}
			continue
		}

		if !instr.Implemented() {
			t.Errorf("expected opcode %02X to be implemented", opcode)
			continue
		}
		if instr.Length > 2 {
			t.Errorf("%s: expected operand length <= 2, got %d", instr.Name, instr.Length)
		}
		if instr.Cycles == 0 || instr.Cycles%4 != 0 {
			t.Errorf("%s: expected a non-zero multiple of 4 cycles, got %d", instr.Name, instr.Cycles)
		}
		if other, ok := names[instr.Name]; ok {
			t.Errorf("%s: defined at both %02X and %02X", instr.Name, other, opcode)
		}
		names[instr.Name] = opcode
	}
}

func TestInstruction_Timing(t *testing.T) {
	// base costs in T-cycles, 0 for unimplemented opcodes
	timings := []uint16{
		4, 12, 8, 8, 4, 4, 8, 4, 20, 8, 8, 8, 4, 4, 8, 4,
		0, 12, 8, 8, 4, 4, 8, 4, 12, 8, 8, 8, 4, 4, 8, 4,
		8, 12, 8, 8, 4, 4, 8, 4, 8, 8, 8, 8, 4, 4, 8, 4,
		8, 12, 8, 8, 12, 12, 12, 4, 8, 8, 8, 8, 4, 4, 8, 4,
		4, 4, 4, 4, 4, 4, 8, 4, 4, 4, 4, 4, 4, 4, 8, 4,
		4, 4, 4, 4, 4, 4, 8, 4, 4, 4, 4, 4, 4, 4, 8, 4,
		4, 4, 4, 4, 4, 4, 8, 4, 4, 4, 4, 4, 4, 4, 8, 4,
		8, 8, 8, 8, 8, 8, 0, 8, 4, 4, 4, 4, 4, 4, 8, 4,
		4, 4, 4, 4, 4, 4, 8, 4, 4, 4, 4, 4, 4, 4, 8, 4,
		4, 4, 4, 4, 4, 4, 8, 4, 4, 4, 4, 4, 4, 4, 8, 4,
		4, 4, 4, 4, 4, 4, 8, 4, 4, 4, 4, 4, 4, 4, 8, 4,
		4, 4, 4, 4, 4, 4, 8, 4, 4, 4, 4, 4, 4, 4, 8, 4,
		0, 12, 0, 16, 0, 16, 8, 16, 0, 16, 0, 0, 0, 24, 8, 16,
		0, 12, 0, 0, 0, 16, 8, 16, 0, 0, 0, 0, 0, 0, 8, 16,
		12, 12, 8, 0, 0, 16, 8, 16, 0, 4, 16, 0, 0, 0, 8, 16,
		12, 0, 8, 0, 0, 0, 8, 16, 0, 8, 16, 0, 0, 0, 8, 16,
	}

	for i, timing := range timings {
		instr := Lookup(uint8(i))
		if timing == 0 {
			if instr.Implemented() {
				t.Errorf("expected opcode %02X to be unimplemented", i)
			}
			continue
		}
		if instr.Cycles != timing {
			t.Errorf("%s: expected %d cycles, got %d", instr.Name, timing, instr.Cycles)
		}
	}
}

func TestInstruction_Lengths(t *testing.T) {
	for opcode, length := range map[uint8]uint8{
		0x00: 0, 0x01: 2, 0x06: 1, 0x08: 2, 0x18: 1, 0x20: 1, 0x31: 2, 0x3E: 1,
		0xAF: 0, 0xC3: 2, 0xCD: 2, 0xE0: 1, 0xEA: 2, 0xEE: 1, 0xF0: 1, 0xFA: 2,
		0xFE: 1, 0xFF: 0,
	} {
		if got := Lookup(opcode).Length; got != length {
			t.Errorf("%s: expected length %d, got %d", Lookup(opcode).Name, length, got)
		}
	}
}

func TestDefineInstruction(t *testing.T) {
	t.Run("duplicate", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Errorf("expected redefining NOP to panic")
			}
		}()
		DefineInstruction(0x00, "NOP", func(c *CPU, m Memory, op Operand) {})
	})
	t.Run("invalid length", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Errorf("expected a 3 byte operand to panic")
			}
		}()
		Length(3)
	})
}

func TestOpCode_String(t *testing.T) {
	if s := Lookup(0x3E).String(); s != "LD A, d8 +1bytes (8 cycles)" {
		t.Errorf("unexpected string %q", s)
	}
	if s := Lookup(0xD3).String(); s != "unimplemented" {
		t.Errorf("unexpected string %q", s)
	}
}
