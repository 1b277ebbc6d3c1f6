// Package cpu implements the interpreter core of the Game Boy CPU: the
// register and flag model, the opcode dispatch table, the instruction
// behaviors and the fetch-decode-execute loop.
package cpu

import (
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// Memory is the address space the CPU executes from. Implementations
// signal invalid accesses by panicking with an error value.
type Memory interface {
	// Read returns the byte at the given address.
	Read(address uint16) uint8
	// Read16 returns the little-endian word at the given address.
	Read16(address uint16) uint16
	// Write writes a byte to the given address.
	Write(address uint16, value uint8)
	// Write16 writes a little-endian word to the given address.
	Write16(address uint16, value uint16)
	// ReadBytes returns n consecutive bytes starting at address.
	ReadBytes(address uint16, n int) []byte
	// WriteBytes writes b starting at address.
	WriteBytes(address uint16, b []byte)
	// LoadProgram installs the program image. It is called once,
	// before execution starts.
	LoadProgram(program []byte) error
}

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	Registers

	// Clock is the cumulative number of cycles executed. It wraps
	// silently on overflow.
	Clock uint16

	// Debug enables per-instruction tracing.
	Debug bool

	// cycles overrides the base cost of the instruction being executed
	// when non-zero.
	cycles uint16

	mmu Memory
	log log.Logger
}

// NewCPU creates a new CPU instance with the given memory.
func NewCPU(mmu Memory, logger log.Logger) *CPU {
	if logger == nil {
		logger = log.NewNullLogger()
	}
	c := &CPU{
		mmu: mmu,
		log: logger,
	}
	c.pairs()

	return c
}

// Reset zeroes every register, the flags and the clock.
func (c *CPU) Reset() {
	c.PC, c.SP = 0, 0
	c.Registers = Registers{}
	c.pairs()
	c.Clock, c.cycles = 0, 0
}

// setCycles overrides the base cost of the current instruction.
func (c *CPU) setCycles(n uint16) {
	c.cycles = n
}

// Step executes a single instruction and returns the number of cycles it
// took. Step panics with an *UnimplementedError if the opcode at PC has no
// behavior, and propagates any panic raised by the memory.
func (c *CPU) Step() uint16 {
	// fetch
	pc := c.PC
	opcode := c.mmu.Read(pc)

	// decode
	instruction := instructionSet[opcode]
	if !instruction.Implemented() {
		panic(&UnimplementedError{Opcode: opcode, PC: pc})
	}
	c.PC++

	var operand Operand
	switch instruction.Length {
	case 1:
		operand = Operand(c.mmu.Read(c.PC))
	case 2:
		operand = Operand(c.mmu.Read16(c.PC))
	}
	c.PC += uint16(instruction.Length)

	if c.Debug && c.log.IsLevelEnabled(logrus.TraceLevel) {
		c.trace(pc, opcode, instruction, operand)
	}

	// execute
	c.cycles = 0
	instruction.fn(c, c.mmu, operand)

	cycles := instruction.Cycles
	if c.cycles != 0 {
		cycles = c.cycles
	}
	c.Clock += cycles

	return cycles
}

// Run executes instructions until one of them aborts, returning the
// cause. Run never returns a nil error.
func (c *CPU) Run() (err error) {
	defer c.recoverAbort(&err)
	for {
		c.Step()
	}
}

// RunFor executes at most n instructions, stopping early if one of them
// aborts.
func (c *CPU) RunFor(n int) (err error) {
	defer c.recoverAbort(&err)
	for i := 0; i < n; i++ {
		c.Step()
	}
	return nil
}

// recoverAbort turns a panic carrying an error into a returned error.
// Runtime errors and non-error values keep panicking.
func (c *CPU) recoverAbort(err *error) {
	r := recover()
	if r == nil {
		return
	}
	e, ok := r.(error)
	if !ok {
		panic(r)
	}
	if _, ok := e.(runtime.Error); ok {
		panic(r)
	}
	*err = fmt.Errorf("cpu: aborted after %d cycles (PC=%04X): %w", c.Clock, c.PC, e)
}

func (c *CPU) trace(pc uint16, opcode uint8, instruction OpCode, operand Operand) {
	c.log.WithFields(logrus.Fields{
		"pc":      fmt.Sprintf("%04X", pc),
		"opcode":  fmt.Sprintf("%02X", opcode),
		"name":    instruction.Name,
		"operand": fmt.Sprintf("%04X", uint16(operand)),
		"regs":    c.String(),
	}).Trace("step")
}

// String returns a snapshot of the registers.
func (c *CPU) String() string {
	return fmt.Sprintf("A: %02X F: %02X B: %02X C: %02X D: %02X E: %02X H: %02X L: %02X SP: %04X PC: %04X",
		c.A, c.F, c.B, c.C, c.D, c.E, c.H, c.L, c.SP, c.PC)
}
