package cpu

import (
	"fmt"
)

// Operand is the immediate data decoded after an opcode. Depending on the
// OpCode's Length it holds nothing, one byte, or one little-endian word.
type Operand uint16

// Uint8 returns the operand as a single byte.
func (o Operand) Uint8() uint8 {
	return uint8(o)
}

// Uint16 returns the operand as a word.
func (o Operand) Uint16() uint16 {
	return uint16(o)
}

// Behavior is the semantic body of an opcode. It may mutate the CPU, the
// memory, or assign PC and SP directly.
type Behavior func(c *CPU, m Memory, op Operand)

// OpCode describes a single entry of the dispatch table.
type OpCode struct {
	// Name is the mnemonic of the instruction, with d8, a8, r8, d16 and
	// a16 standing in for immediate operands.
	Name string
	// Length is the number of operand bytes following the opcode.
	Length uint8
	// Cycles is the base cost of the instruction.
	Cycles uint16

	fn Behavior
}

// Implemented reports whether the opcode has a behavior.
func (o OpCode) Implemented() bool {
	return o.fn != nil
}

// String returns the opcode as it appears in diagnostics.
func (o OpCode) String() string {
	if !o.Implemented() {
		return "unimplemented"
	}
	return fmt.Sprintf("%s +%dbytes (%d cycles)", o.Name, o.Length, o.Cycles)
}

// instructionSet holds the 256 entries of the non-prefixed instruction
// set. It is populated during package initialisation and never mutated
// afterwards.
var instructionSet [256]OpCode

// Lookup returns the dispatch table entry for the given opcode.
func Lookup(opcode uint8) OpCode {
	return instructionSet[opcode]
}

// DefineInstruction defines an instruction in the instruction set with the
// provided opcode. Defining the same opcode twice panics.
func DefineInstruction(opcode uint8, name string, fn Behavior, opts ...InstructionOpt) {
	if instructionSet[opcode].Implemented() {
		panic(fmt.Sprintf("cpu: opcode %02X already defined as %q", opcode, instructionSet[opcode].Name))
	}
	instruction := OpCode{
		Name:   name,
		Cycles: 4,
		fn:     fn,
	}
	for _, opt := range opts {
		opt(&instruction)
	}

	instructionSet[opcode] = instruction
}

// InstructionOpt configures an OpCode being defined.
type InstructionOpt func(*OpCode)

// Length sets the number of operand bytes of the instruction.
func Length(n uint8) InstructionOpt {
	if n > 2 {
		panic(fmt.Sprintf("cpu: invalid operand length %d", n))
	}
	return func(o *OpCode) {
		o.Length = n
	}
}

// Cycles sets the base cost of the instruction.
func Cycles(n uint16) InstructionOpt {
	return func(o *OpCode) {
		o.Cycles = n
	}
}

func init() {
	DefineInstruction(0x00, "NOP", func(c *CPU, m Memory, op Operand) {})
	DefineInstruction(0x27, "DAA", func(c *CPU, m Memory, op Operand) {
		c.decimalAdjust()
	})
	DefineInstruction(0x2F, "CPL", func(c *CPU, m Memory, op Operand) {
		c.A = 0xFF ^ c.A
		c.setFlag(FlagSubtract)
		c.setFlag(FlagHalfCarry)
	})
	DefineInstruction(0x37, "SCF", func(c *CPU, m Memory, op Operand) {
		c.setFlag(FlagCarry)
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
	})
	DefineInstruction(0x3F, "CCF", func(c *CPU, m Memory, op Operand) {
		c.setOrClearFlag(FlagCarry, !c.isFlagSet(FlagCarry))
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
	})
}
