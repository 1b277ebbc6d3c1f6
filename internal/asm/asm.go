// Package asm assembles programs for the CPU. The accepted mnemonics are
// exactly the implemented entries of the opcode dispatch table, so anything
// that assembles can be executed.
package asm

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/thelolagemann/gbcore/internal/cpu"
)

// statement is a resolved source line.
type statement struct {
	pos     lexer.Position
	address uint16
	opcode  uint8
	instr   cpu.OpCode
	// value is the operand filling the instruction's immediate, if any
	value       *Expr
	placeholder string
	data        []*Expr
}

func (s *statement) size() int {
	if s.data != nil {
		return len(s.data)
	}
	return 1 + int(s.instr.Length)
}

// Assemble assembles src into a program image with its origin at 0x0000.
func Assemble(filename string, src []byte) ([]byte, error) {
	source, err := Parse(filename, src)
	if err != nil {
		return nil, err
	}

	// first pass, select opcodes and lay out labels
	var (
		statements []*statement
		labels     = make(map[string]uint16)
		address    int
	)
	for _, line := range source.Lines {
		if line.Label != nil {
			name := strings.ToUpper(strings.TrimSuffix(*line.Label, ":"))
			if _, ok := labels[name]; ok {
				return nil, fmt.Errorf("%s: label %s redefined", line.Pos, name)
			}
			if reserved[name] {
				return nil, fmt.Errorf("%s: label %s shadows a register or condition", line.Pos, name)
			}
			labels[name] = uint16(address)
		}
		if line.Statement == nil {
			continue
		}

		s, err := selectStatement(line.Statement)
		if err != nil {
			return nil, err
		}
		s.address = uint16(address)
		address += s.size()
		if address > 0x10000 {
			return nil, fmt.Errorf("%s: program exceeds the address space", line.Pos)
		}
		statements = append(statements, s)
	}

	// second pass, encode
	out := make([]byte, 0, address)
	for _, s := range statements {
		if s.data != nil {
			for _, e := range s.data {
				v, err := resolve(e, labels)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", s.pos, err)
				}
				if v > 0xFF {
					return nil, fmt.Errorf("%s: DB value %s does not fit in a byte", s.pos, e)
				}
				out = append(out, uint8(v))
			}
			continue
		}

		out = append(out, s.opcode)
		if s.value == nil {
			continue
		}
		v, err := resolve(s.value, labels)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.pos, err)
		}
		switch s.placeholder {
		case "r8":
			if s.value.Ident != nil {
				// labels resolve to the forward offset from the next instruction
				next := int(s.address) + s.size()
				offset := int(v) - next
				if offset < 0 || offset > 0xFF {
					return nil, fmt.Errorf("%s: label %s is %d bytes from %04X, want 0..255", s.pos, s.value, offset, next)
				}
				v = uint64(offset)
			}
			fallthrough
		case "d8", "a8":
			if v > 0xFF {
				return nil, fmt.Errorf("%s: %s does not fit in %s", s.pos, s.value, s.placeholder)
			}
			out = append(out, uint8(v))
		case "d16", "a16":
			out = append(out, uint8(v), uint8(v>>8))
		}
	}

	return out, nil
}

// resolve returns the value of a number or label.
func resolve(e *Expr, labels map[string]uint16) (uint64, error) {
	if e.Number != nil {
		v, err := parseNumber(*e.Number)
		if err != nil {
			return 0, fmt.Errorf("invalid number %s: %w", *e.Number, err)
		}
		return v, nil
	}
	address, ok := labels[strings.ToUpper(*e.Ident)]
	if !ok {
		return 0, fmt.Errorf("undefined label %s", *e.Ident)
	}
	return uint64(address), nil
}
