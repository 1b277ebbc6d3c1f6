package cpu

import "fmt"

// increment the given value and set the flags accordingly.
//
//	INC n
//	n = 8-bit value
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(value uint8) uint8 {
	incremented := value + 0x01
	c.setFlags(incremented == 0, false, value&0xF == 0xF, c.isFlagSet(FlagCarry))
	return incremented
}

// decrement the given value and set the flags accordingly.
//
//	DEC n
//	n = 8-bit value
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(value uint8) uint8 {
	decremented := value - 0x01
	c.setFlags(decremented == 0, true, value&0xF == 0x0, c.isFlagSet(FlagCarry))
	return decremented
}

// add16 adds from to the value pointed to by to.
//
//	ADD HL, nn
//	nn = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if the low nibble of the truncated sum plus the low nibble
//	    of from exceeds 0x0F.
//	C - Set if carry from bit 15.
//
// H is tested after *to has been truncated to 16 bits, which is not the
// same as the carry from bit 11.
func (c *CPU) add16(to *uint16, from uint16) {
	result := uint32(*to) + uint32(from)
	c.setOrClearFlag(FlagCarry, result&0xFFFF0000 != 0)
	*to = uint16(result)
	c.setOrClearFlag(FlagHalfCarry, (*to&0x0F)+(from&0x0F) > 0x0F)
	c.clearFlag(FlagSubtract)
}

// addHLRR adds the register pair at index to HL.
func (c *CPU) addHLRR(index uint8) {
	from := c.readPair(index)
	hl := c.HL.Uint16()
	c.add16(&hl, from)
	c.HL.SetUint16(hl)
}

// decimalAdjust adjusts the A Register to hold a binary coded decimal
// after an addition or subtraction.
//
//	DAA
func (c *CPU) decimalAdjust() {
	if !c.isFlagSet(FlagSubtract) {
		if c.isFlagSet(FlagCarry) || c.A > 0x99 {
			c.A += 0x60
			c.setFlag(FlagCarry)
		}
		if c.isFlagSet(FlagHalfCarry) || c.A&0xF > 0x9 {
			c.A += 0x06
		}
	} else {
		if c.isFlagSet(FlagCarry) {
			c.A -= 0x60
		}
		if c.isFlagSet(FlagHalfCarry) {
			c.A -= 0x06
		}
	}
	c.clearFlag(FlagHalfCarry)
	c.shouldZeroFlag(c.A)
}

func init() {
	for reg := uint8(0); reg < 8; reg++ {
		reg := reg
		cycles := uint16(4)
		if reg == indirectHL {
			cycles = 12
		}
		// 0x04, 0x0C, ... 0x3C INC r
		DefineInstruction(0x04|reg<<3, "INC "+registerNames[reg], func(c *CPU, m Memory, _ Operand) {
			c.writeIndex(m, reg, c.increment(c.readIndex(m, reg)))
		}, Cycles(cycles))
		// 0x05, 0x0D, ... 0x3D DEC r
		DefineInstruction(0x05|reg<<3, "DEC "+registerNames[reg], func(c *CPU, m Memory, _ Operand) {
			c.writeIndex(m, reg, c.decrement(c.readIndex(m, reg)))
		}, Cycles(cycles))
	}

	for pair := uint8(0); pair < 4; pair++ {
		pair := pair
		// 0x03, 0x13, 0x23, 0x33 INC rr
		DefineInstruction(0x03|pair<<4, "INC "+pairNames[pair], func(c *CPU, _ Memory, _ Operand) {
			c.writePair(pair, c.readPair(pair)+1)
		}, Cycles(8))
		// 0x0B, 0x1B, 0x2B, 0x3B DEC rr
		DefineInstruction(0x0B|pair<<4, "DEC "+pairNames[pair], func(c *CPU, _ Memory, _ Operand) {
			c.writePair(pair, c.readPair(pair)-1)
		}, Cycles(8))
		// 0x09, 0x19, 0x29, 0x39 ADD HL, rr
		DefineInstruction(0x09|pair<<4, fmt.Sprintf("ADD HL, %s", pairNames[pair]), func(c *CPU, _ Memory, _ Operand) {
			c.addHLRR(pair)
		}, Cycles(8))
	}
}
