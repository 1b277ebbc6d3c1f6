package asm

import (
	"fmt"
	"strings"

	"github.com/thelolagemann/gbcore/internal/cpu"
)

// reserved are the operand names that can never be labels.
var reserved = map[string]bool{
	"A": true, "B": true, "C": true, "D": true, "E": true, "H": true, "L": true,
	"AF": true, "BC": true, "DE": true, "HL": true, "SP": true,
	"NZ": true, "Z": true, "NC": true,
}

// placeholders are the immediate operands in opcode names.
var placeholders = map[string]bool{
	"d8": true, "a8": true, "r8": true, "d16": true, "a16": true,
}

type template struct {
	opcode   uint8
	operands []string
}

// templates indexes the implemented opcodes by mnemonic.
var templates = make(map[string][]template)

func init() {
	for i := 0; i < 256; i++ {
		instr := cpu.Lookup(uint8(i))
		if !instr.Implemented() {
			continue
		}
		mnemonic, rest, _ := strings.Cut(instr.Name, " ")
		var operands []string
		if rest != "" {
			operands = strings.Split(rest, ", ")
		}
		templates[mnemonic] = append(templates[mnemonic], template{opcode: uint8(i), operands: operands})
	}
}

// selectStatement picks the opcode for an instruction, or wraps a DB
// directive.
func selectStatement(st *Statement) (*statement, error) {
	if st.Data != nil {
		return &statement{pos: st.Pos, data: st.Data}, nil
	}

	mnemonic := strings.ToUpper(st.Mnemonic)
	candidates, ok := templates[mnemonic]
	if !ok {
		return nil, fmt.Errorf("%s: unknown or unimplemented mnemonic %s", st.Pos, mnemonic)
	}

	for _, t := range candidates {
		if s, ok := t.match(st.Operands); ok {
			s.pos = st.Pos
			return s, nil
		}
	}

	operands := make([]string, len(st.Operands))
	for i, o := range st.Operands {
		operands[i] = o.String()
	}
	return nil, fmt.Errorf("%s: no instruction matches %s %s", st.Pos, mnemonic, strings.Join(operands, ", "))
}

// match reports whether the operands fit the template, returning the
// resolved statement if they do.
func (t template) match(operands []*Operand) (*statement, bool) {
	if len(operands) != len(t.operands) {
		return nil, false
	}

	s := &statement{opcode: t.opcode, instr: cpu.Lookup(t.opcode)}
	for i, o := range operands {
		want := t.operands[i]

		// (a8), (a16)
		indirect := strings.HasPrefix(want, "(") && strings.HasSuffix(want, ")")
		if inner := strings.Trim(want, "()"); placeholders[inner] {
			if indirect != (o.Indirect != nil) || !isValue(o.expr()) {
				return nil, false
			}
			s.value, s.placeholder = o.expr(), inner
			continue
		}

		// RST vectors are written as hex numbers, 38H
		if isVector(want) {
			if o.Direct == nil || o.Direct.Number == nil || o.Direct.Step != "" {
				return nil, false
			}
			got, err := parseNumber(*o.Direct.Number)
			vector, _ := parseNumber(want)
			if err != nil || got != vector {
				return nil, false
			}
			continue
		}

		if o.String() != want {
			return nil, false
		}
	}
	return s, true
}

// isValue reports whether e can fill an immediate.
func isValue(e *Expr) bool {
	if e.Step != "" {
		return false
	}
	return e.Number != nil || !reserved[strings.ToUpper(*e.Ident)]
}

func isVector(s string) bool {
	if len(s) != 3 || s[2] != 'H' {
		return false
	}
	for _, r := range s[:2] {
		if !strings.ContainsRune("0123456789ABCDEF", r) {
			return false
		}
	}
	return true
}
