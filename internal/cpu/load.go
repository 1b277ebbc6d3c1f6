package cpu

import "fmt"

// storeHLAndStep stores A into the byte addressed by HL, then moves HL by
// delta.
//
//	LD (HL+), A
//	LD (HL-), A
func (c *CPU) storeHLAndStep(m Memory, delta uint16) {
	hl := c.HL.Uint16()
	m.Write(hl, c.A)
	c.HL.SetUint16(hl + delta)
}

// loadHLAndStep loads the byte addressed by HL into A, then moves HL by
// delta.
//
//	LD A, (HL+)
//	LD A, (HL-)
func (c *CPU) loadHLAndStep(m Memory, delta uint16) {
	hl := c.HL.Uint16()
	c.A = m.Read(hl)
	c.HL.SetUint16(hl + delta)
}

func init() {
	// 0x40 - 0x7F LD r, r'
	for dst := uint8(0); dst < 8; dst++ {
		dst := dst
		for src := uint8(0); src < 8; src++ {
			src := src
			if dst == indirectHL && src == indirectHL {
				continue // 0x76 HALT
			}
			cycles := uint16(4)
			if dst == indirectHL || src == indirectHL {
				cycles = 8
			}
			DefineInstruction(0x40|dst<<3|src, fmt.Sprintf("LD %s, %s", registerNames[dst], registerNames[src]), func(c *CPU, m Memory, _ Operand) {
				c.writeIndex(m, dst, c.readIndex(m, src))
			}, Cycles(cycles))
		}

		// 0x06, 0x0E, ... 0x3E LD r, d8
		cycles := uint16(8)
		if dst == indirectHL {
			cycles = 12
		}
		DefineInstruction(0x06|dst<<3, fmt.Sprintf("LD %s, d8", registerNames[dst]), func(c *CPU, m Memory, n Operand) {
			c.writeIndex(m, dst, n.Uint8())
		}, Length(1), Cycles(cycles))
	}

	// 0x01, 0x11, 0x21, 0x31 LD rr, d16
	for pair := uint8(0); pair < 4; pair++ {
		pair := pair
		DefineInstruction(0x01|pair<<4, fmt.Sprintf("LD %s, d16", pairNames[pair]), func(c *CPU, _ Memory, n Operand) {
			c.writePair(pair, n.Uint16())
		}, Length(2), Cycles(12))
	}

	DefineInstruction(0x02, "LD (BC), A", func(c *CPU, m Memory, _ Operand) {
		m.Write(c.BC.Uint16(), c.A)
	}, Cycles(8))
	DefineInstruction(0x0A, "LD A, (BC)", func(c *CPU, m Memory, _ Operand) {
		c.A = m.Read(c.BC.Uint16())
	}, Cycles(8))
	DefineInstruction(0x12, "LD (DE), A", func(c *CPU, m Memory, _ Operand) {
		m.Write(c.DE.Uint16(), c.A)
	}, Cycles(8))
	DefineInstruction(0x1A, "LD A, (DE)", func(c *CPU, m Memory, _ Operand) {
		c.A = m.Read(c.DE.Uint16())
	}, Cycles(8))
	DefineInstruction(0x22, "LD (HL+), A", func(c *CPU, m Memory, _ Operand) {
		c.storeHLAndStep(m, 1)
	}, Cycles(8))
	DefineInstruction(0x2A, "LD A, (HL+)", func(c *CPU, m Memory, _ Operand) {
		c.loadHLAndStep(m, 1)
	}, Cycles(8))
	DefineInstruction(0x32, "LD (HL-), A", func(c *CPU, m Memory, _ Operand) {
		c.storeHLAndStep(m, 0xFFFF)
	}, Cycles(8))
	DefineInstruction(0x3A, "LD A, (HL-)", func(c *CPU, m Memory, _ Operand) {
		c.loadHLAndStep(m, 0xFFFF)
	}, Cycles(8))

	DefineInstruction(0x08, "LD (a16), SP", func(c *CPU, m Memory, n Operand) {
		m.Write16(n.Uint16(), c.SP)
	}, Length(2), Cycles(20))
	DefineInstruction(0xF9, "LD SP, HL", func(c *CPU, _ Memory, _ Operand) {
		c.SP = c.HL.Uint16()
	}, Cycles(8))

	// high memory
	DefineInstruction(0xE0, "LDH (a8), A", func(c *CPU, m Memory, n Operand) {
		m.Write(0xFF00+uint16(n.Uint8()), c.A)
	}, Length(1), Cycles(12))
	DefineInstruction(0xF0, "LDH A, (a8)", func(c *CPU, m Memory, n Operand) {
		c.A = m.Read(0xFF00 + uint16(n.Uint8()))
	}, Length(1), Cycles(12))
	DefineInstruction(0xE2, "LD (C), A", func(c *CPU, m Memory, _ Operand) {
		m.Write(0xFF00+uint16(c.C), c.A)
	}, Cycles(8))
	DefineInstruction(0xF2, "LD A, (C)", func(c *CPU, m Memory, _ Operand) {
		c.A = m.Read(0xFF00 + uint16(c.C))
	}, Cycles(8))

	DefineInstruction(0xEA, "LD (a16), A", func(c *CPU, m Memory, n Operand) {
		m.Write(n.Uint16(), c.A)
	}, Length(2), Cycles(16))
	DefineInstruction(0xFA, "LD A, (a16)", func(c *CPU, m Memory, n Operand) {
		c.A = m.Read(n.Uint16())
	}, Length(2), Cycles(16))
}
