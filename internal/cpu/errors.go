package cpu

import "fmt"

// UnimplementedError is raised when the CPU fetches an opcode whose
// dispatch table entry has no behavior.
type UnimplementedError struct {
	Opcode uint8
	PC     uint16
}

func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("unimplemented opcode %02X at %04X", e.Opcode, e.PC)
}
