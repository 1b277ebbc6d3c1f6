package cpu

// Flag is a bit mask over the F register.
type Flag = uint8

const (
	FlagZero      Flag = 1 << 7
	FlagSubtract  Flag = 1 << 6
	FlagHalfCarry Flag = 1 << 5
	FlagCarry     Flag = 1 << 4

	// flagMask covers every defined flag.
	flagMask = FlagZero | FlagSubtract | FlagHalfCarry | FlagCarry
)

// clearFlag clears a flag from the F register.
func (c *CPU) clearFlag(flag Flag) {
	c.F &^= flag
}

// setFlag sets a flag in the F register.
func (c *CPU) setFlag(flag Flag) {
	c.F |= flag
}

// setOrClearFlag sets flag if cond is true and clears it otherwise.
// No other flag is touched.
func (c *CPU) setOrClearFlag(flag Flag, cond bool) {
	if cond {
		c.setFlag(flag)
	} else {
		c.clearFlag(flag)
	}
}

// setFlags sets every flag at once.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	c.F = 0
	c.setOrClearFlag(FlagZero, zero)
	c.setOrClearFlag(FlagSubtract, subtract)
	c.setOrClearFlag(FlagHalfCarry, halfCarry)
	c.setOrClearFlag(FlagCarry, carry)
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag Flag) bool {
	return c.F&flag != 0
}

// shouldZeroFlag sets FlagZero if the given value is 0.
func (c *CPU) shouldZeroFlag(value uint8) {
	c.setOrClearFlag(FlagZero, value == 0)
}
