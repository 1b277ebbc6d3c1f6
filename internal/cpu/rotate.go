package cpu

// rotateLeftCarryAccumulator rotates A left by 1 bit. The most significant
// bit is copied to both the carry flag and the least significant bit.
//
//	RLCA
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftCarryAccumulator() {
	carry := c.A & 0x80
	c.A = c.A<<1 | carry>>7
	c.setFlags(false, false, false, carry != 0)
}

// rotateRightCarryAccumulator rotates A right by 1 bit. The least
// significant bit is copied to both the carry flag and the most
// significant bit.
//
//	RRCA
func (c *CPU) rotateRightCarryAccumulator() {
	carry := c.A & 0x01
	c.A = c.A>>1 | carry<<7
	c.setFlags(false, false, false, carry != 0)
}

// rotateLeftAccumulator rotates A left through the carry flag.
//
//	RLA
func (c *CPU) rotateLeftAccumulator() {
	var in uint8
	if c.isFlagSet(FlagCarry) {
		in = 1
	}
	carry := c.A & 0x80
	c.A = c.A<<1 | in
	c.setFlags(false, false, false, carry != 0)
}

// rotateRightAccumulator rotates A right through the carry flag.
//
//	RRA
func (c *CPU) rotateRightAccumulator() {
	var in uint8
	if c.isFlagSet(FlagCarry) {
		in = 0x80
	}
	carry := c.A & 0x01
	c.A = c.A>>1 | in
	c.setFlags(false, false, false, carry != 0)
}

func init() {
	DefineInstruction(0x07, "RLCA", func(c *CPU, _ Memory, _ Operand) { c.rotateLeftCarryAccumulator() })
	DefineInstruction(0x0F, "RRCA", func(c *CPU, _ Memory, _ Operand) { c.rotateRightCarryAccumulator() })
	DefineInstruction(0x17, "RLA", func(c *CPU, _ Memory, _ Operand) { c.rotateLeftAccumulator() })
	DefineInstruction(0x1F, "RRA", func(c *CPU, _ Memory, _ Operand) { c.rotateRightAccumulator() })
}
