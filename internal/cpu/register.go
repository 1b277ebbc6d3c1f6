package cpu

import "fmt"

// Register represents an 8-bit CPU register.
type Register = uint8

// RegisterPair represents a pair of Registers addressed as a single
// 16-bit value. Low supplies bits 0-7 and High supplies bits 8-15.
type RegisterPair struct {
	High *Register
	Low  *Register
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value)
}

// Registers holds the 8-bit registers, the flag register and the
// register pairs BC, DE and HL.
//
// The first-named register of each pair holds the low byte of the pair,
// so for HL, H is bits 0-7 and L is bits 8-15. Programs that rely on the
// conventional ordering will observe swapped halves.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	H Register
	L Register

	// F holds the flags. Only the upper nibble is ever set.
	F Flag

	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
}

// pairs wires the register pairs to their backing registers.
func (r *Registers) pairs() {
	r.BC = &RegisterPair{High: &r.C, Low: &r.B}
	r.DE = &RegisterPair{High: &r.E, Low: &r.D}
	r.HL = &RegisterPair{High: &r.L, Low: &r.H}
}

// registerNames lists the 8-bit operands in the order they are encoded in
// opcodes. Index 6 is the byte addressed by HL.
var registerNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// pairNames lists the 16-bit operands in the order they are encoded in
// opcodes.
var pairNames = [4]string{"BC", "DE", "HL", "SP"}

const indirectHL = 6

// registerIndex returns a Register pointer for the given index.
func (c *CPU) registerIndex(index uint8) *Register {
	switch index {
	case 0:
		return &c.B
	case 1:
		return &c.C
	case 2:
		return &c.D
	case 3:
		return &c.E
	case 4:
		return &c.H
	case 5:
		return &c.L
	case 7:
		return &c.A
	}
	panic(fmt.Sprintf("invalid register index: %d", index))
}

// readIndex returns the 8-bit operand at index, reading (HL) from memory.
func (c *CPU) readIndex(m Memory, index uint8) uint8 {
	if index == indirectHL {
		return m.Read(c.HL.Uint16())
	}
	return *c.registerIndex(index)
}

// writeIndex writes the 8-bit operand at index, writing (HL) to memory.
func (c *CPU) writeIndex(m Memory, index uint8, value uint8) {
	if index == indirectHL {
		m.Write(c.HL.Uint16(), value)
		return
	}
	*c.registerIndex(index) = value
}

// readPair returns the 16-bit operand at index.
func (c *CPU) readPair(index uint8) uint16 {
	switch index {
	case 0:
		return c.BC.Uint16()
	case 1:
		return c.DE.Uint16()
	case 2:
		return c.HL.Uint16()
	case 3:
		return c.SP
	}
	panic(fmt.Sprintf("invalid register pair index: %d", index))
}

// writePair sets the 16-bit operand at index.
func (c *CPU) writePair(index uint8, value uint16) {
	switch index {
	case 0:
		c.BC.SetUint16(value)
	case 1:
		c.DE.SetUint16(value)
	case 2:
		c.HL.SetUint16(value)
	case 3:
		c.SP = value
	default:
		panic(fmt.Sprintf("invalid register pair index: %d", index))
	}
}
