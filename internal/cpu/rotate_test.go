package cpu

import "testing"

func TestInstruction_Rotate(t *testing.T) {
	for _, tc := range []struct {
		name     string
		opcode   uint8
		a        uint8
		flags    Flag
		result   uint8
		expected Flag
	}{
		{"RLCA", 0x07, 0x85, 0, 0x0B, FlagCarry},
		{"RLCA", 0x07, 0x00, FlagZero, 0x00, 0},
		{"RRCA", 0x0F, 0x01, 0, 0x80, FlagCarry},
		{"RRCA", 0x0F, 0x3C, FlagCarry, 0x1E, 0},
		{"RLA", 0x17, 0x95, FlagCarry, 0x2B, FlagCarry},
		{"RLA", 0x17, 0x80, 0, 0x00, FlagCarry},
		{"RRA", 0x1F, 0x81, 0, 0x40, FlagCarry},
		{"RRA", 0x1F, 0x00, FlagCarry, 0x80, 0},
	} {
		testInstruction(t, tc.name, tc.opcode, func(t *testing.T, instr OpCode) {
			cpu.A, cpu.F = tc.a, tc.flags
			execute(instr, 0)
			if cpu.A != tc.result {
				t.Errorf("A=0x%02X: expected 0x%02X, got 0x%02X", tc.a, tc.result, cpu.A)
			}
			// Z is always cleared, even for a zero result
			if cpu.F != tc.expected {
				t.Errorf("A=0x%02X: expected flags %08b, got %08b", tc.a, tc.expected, cpu.F)
			}
		})
	}
}
