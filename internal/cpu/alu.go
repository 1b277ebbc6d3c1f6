package cpu

import "fmt"

// add adds n to the A Register.
//
//	ADD A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n uint8) {
	sum := uint16(c.A) + uint16(n)
	c.setFlags(uint8(sum) == 0, false, c.A&0x0F+n&0x0F > 0x0F, sum > 0xFF)
	c.A = uint8(sum)
}

// addCarry adds n plus the carry flag to the A Register.
//
//	ADC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
func (c *CPU) addCarry(n uint8) {
	var carry uint8
	if c.isFlagSet(FlagCarry) {
		carry = 1
	}
	sum := uint16(c.A) + uint16(n) + uint16(carry)
	c.setFlags(uint8(sum) == 0, false, c.A&0x0F+n&0x0F+carry > 0x0F, sum > 0xFF)
	c.A = uint8(sum)
}

// sub subtracts n from the A Register.
//
//	SUB n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if no borrow from bit 4.
//	C - Set if no borrow.
func (c *CPU) sub(n uint8) {
	c.setFlags(c.A == n, true, n&0x0F > c.A&0x0F, n > c.A)
	c.A -= n
}

// subtractBorrow compares n against the A Register the way SBC does,
// setting the flags for A - n. The difference is not written back, so A
// keeps its value and the carry flag is not used as a borrow.
//
//	SBC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if n equals A.
//	N - Set.
//	H - Set if the low nibble of n exceeds the low nibble of A.
//	C - Set if n exceeds A.
func (c *CPU) subtractBorrow(n uint8) {
	c.setFlag(FlagSubtract)
	c.setOrClearFlag(FlagZero, n == c.A)
	c.setOrClearFlag(FlagCarry, n > c.A)
	c.setOrClearFlag(FlagHalfCarry, n&0x0F > c.A&0x0F)
}

// and performs a bitwise AND operation on n and the A Register.
//
//	AND n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(n uint8) {
	c.A &= n
	c.setFlags(c.A == 0, false, true, false)
}

// or performs a bitwise OR operation on n and the A Register.
//
//	OR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(n uint8) {
	c.A |= n
	c.setFlags(c.A == 0, false, false, false)
}

// xor performs a bitwise XOR operation on n and the A Register. Every flag
// is cleared first and only Z can end up set.
//
//	XOR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(n uint8) {
	c.F = 0
	c.A ^= n
	if c.A == 0 {
		c.F = FlagZero
	}
}

// compare compares n to the A Register without modifying it. Z, C and H are
// tested in that order and at most one of them is set.
//
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if A equals n.
//	N - Set.
//	H - Set if A is not less than n and the low nibble of n exceeds that of A.
//	C - Set if A is less than n.
func (c *CPU) compare(n uint8) {
	c.F = 0
	if c.A == n {
		c.setFlag(FlagZero)
	} else if c.A < n {
		c.setFlag(FlagCarry)
	} else if n&0x0F > c.A&0x0F {
		c.setFlag(FlagHalfCarry)
	}
	c.setFlag(FlagSubtract)
}

// aluOps are the eight accumulator operations in opcode order.
var aluOps = [8]struct {
	name string
	fn   func(c *CPU, n uint8)
}{
	{"ADD A,", (*CPU).add},
	{"ADC A,", (*CPU).addCarry},
	{"SUB", (*CPU).sub},
	{"SBC A,", (*CPU).subtractBorrow},
	{"AND", (*CPU).and},
	{"XOR", (*CPU).xor},
	{"OR", (*CPU).or},
	{"CP", (*CPU).compare},
}

func init() {
	// 0x80 - 0xBF ALU A, r
	for op := uint8(0); op < 8; op++ {
		op := op
		for reg := uint8(0); reg < 8; reg++ {
			reg := reg
			cycles := uint16(4)
			if reg == indirectHL {
				cycles = 8
			}
			DefineInstruction(0x80|op<<3|reg, fmt.Sprintf("%s %s", aluOps[op].name, registerNames[reg]), func(c *CPU, m Memory, _ Operand) {
				aluOps[op].fn(c, c.readIndex(m, reg))
			}, Cycles(cycles))
		}

		// 0xC6, 0xCE, ... 0xFE ALU A, d8
		fn := aluOps[op].fn
		DefineInstruction(0xC6|op<<3, aluOps[op].name+" d8", func(c *CPU, m Memory, n Operand) {
			fn(c, n.Uint8())
		}, Length(1), Cycles(8))
	}
}
