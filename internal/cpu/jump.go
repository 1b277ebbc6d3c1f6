package cpu

import (
	"encoding/binary"
	"fmt"
)

// pushStack writes b starting at SP, then moves SP down by len(b).
func (c *CPU) pushStack(m Memory, b []byte) {
	m.WriteBytes(c.SP, b)
	c.SP -= uint16(len(b))
}

// popStack reads n bytes starting at PC and advances PC past them. SP is
// left untouched.
func (c *CPU) popStack(m Memory, n int) []byte {
	pc := c.PC
	c.PC += uint16(n)
	return m.ReadBytes(pc, n)
}

// pushProgramCounter pushes PC onto the stack, low byte first.
func (c *CPU) pushProgramCounter(m Memory) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], c.PC)
	c.pushStack(m, b[:])
}

// jump jumps to the given address.
//
//	JP nn
//	nn = 16-bit immediate value
func (c *CPU) jump(address uint16) {
	c.PC = address
}

// jumpRelative jumps forward from the current PC by offset.
//
//	JR e
//	e = 8-bit unsigned immediate value
func (c *CPU) jumpRelative(offset uint8) {
	c.jump(c.PC + uint16(offset))
}

// jumpRelativeConditional jumps forward from the current PC by offset if
// the whole F register equals pattern. A taken jump costs 12 cycles.
//
//	JR cc, e
//	cc = NZ, Z, NC, C
//	e = 8-bit unsigned immediate value
func (c *CPU) jumpRelativeConditional(pattern Flag, offset uint8) {
	if c.F == pattern {
		c.jumpRelative(offset)
		c.setCycles(12)
	}
}

// call pushes the address of the next instruction onto the stack and jumps to
// the given address.
//
//	CALL nn
//	nn = 16-bit immediate value
func (c *CPU) call(m Memory, address uint16) {
	c.pushProgramCounter(m)
	c.jump(address)
}

// ret pops two bytes and jumps to the address they hold.
//
//	RET
func (c *CPU) ret(m Memory) {
	c.jump(binary.LittleEndian.Uint16(c.popStack(m, 2)))
}

// reset pushes PC onto the stack and jumps to the given vector.
//
//	RST n
//	n = 0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38
func (c *CPU) reset(m Memory, vector uint16) {
	c.pushProgramCounter(m)
	c.jump(vector)
}

// conditions maps the JR condition codes to the F register pattern that
// must match exactly for the jump to be taken.
var conditions = [4]struct {
	name    string
	pattern Flag
}{
	{"NZ", flagMask &^ FlagZero},
	{"Z", FlagZero},
	{"NC", flagMask &^ FlagCarry},
	{"C", FlagCarry},
}

func init() {
	DefineInstruction(0x18, "JR r8", func(c *CPU, _ Memory, n Operand) {
		c.jumpRelative(n.Uint8())
	}, Length(1), Cycles(12))

	// 0x20, 0x28, 0x30, 0x38 JR cc, r8
	for cc := uint8(0); cc < 4; cc++ {
		pattern := conditions[cc].pattern
		DefineInstruction(0x20|cc<<3, fmt.Sprintf("JR %s, r8", conditions[cc].name), func(c *CPU, _ Memory, n Operand) {
			c.jumpRelativeConditional(pattern, n.Uint8())
		}, Length(1), Cycles(8))
	}

	DefineInstruction(0xC3, "JP a16", func(c *CPU, _ Memory, n Operand) {
		c.jump(n.Uint16())
	}, Length(2), Cycles(16))
	DefineInstruction(0xE9, "JP HL", func(c *CPU, _ Memory, _ Operand) {
		c.jump(c.HL.Uint16())
	})
	DefineInstruction(0xCD, "CALL a16", func(c *CPU, m Memory, n Operand) {
		c.call(m, n.Uint16())
	}, Length(2), Cycles(24))
	DefineInstruction(0xC9, "RET", func(c *CPU, m Memory, _ Operand) {
		c.ret(m)
	}, Cycles(16))

	// 0xC7, 0xCF, ... 0xFF RST n
	for vector := uint16(0x00); vector <= 0x38; vector += 0x08 {
		vector := vector
		DefineInstruction(0xC7|uint8(vector), fmt.Sprintf("RST %02XH", vector), func(c *CPU, m Memory, _ Operand) {
			c.reset(m, vector)
		}, Cycles(16))
	}

	for pair := uint8(0); pair < 3; pair++ {
		pair := pair
		// 0xC5, 0xD5, 0xE5 PUSH rr
		DefineInstruction(0xC5|pair<<4, "PUSH "+pairNames[pair], func(c *CPU, m Memory, _ Operand) {
			var b [2]byte
			binary.LittleEndian.PutUint16(b[:], c.readPair(pair))
			c.pushStack(m, b[:])
		}, Cycles(16))
		// 0xC1, 0xD1, 0xE1 POP rr
		DefineInstruction(0xC1|pair<<4, "POP "+pairNames[pair], func(c *CPU, m Memory, _ Operand) {
			c.writePair(pair, binary.LittleEndian.Uint16(c.popStack(m, 2)))
		}, Cycles(12))
	}
}
