package asm

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Source is the top-level AST node.
type Source struct {
	Lines []*Line `@@*`
}

// Line is an optional label followed by an optional statement.
type Line struct {
	Pos lexer.Position

	Label     *string    `@Label?`
	Statement *Statement `@@? EOL`
}

// Statement is either a DB directive or an instruction.
type Statement struct {
	Pos lexer.Position

	Data     []*Expr    `(  "DB" @@ ( "," @@ )*`
	Mnemonic string     ` | @Ident`
	Operands []*Operand `    ( @@ ( "," @@ )* )? )`
}

// Operand is a direct or parenthesised expression.
type Operand struct {
	Pos lexer.Position

	Indirect *Expr `  "(" @@ ")"`
	Direct   *Expr `| @@`
}

// Expr is a number, a register, a condition or a label, optionally
// followed by a post-increment or post-decrement.
type Expr struct {
	Number *string `(  @Number`
	Ident  *string ` | @Ident )`
	Step   string  `@( "+" | "-" )?`
}

var asmLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `;[^\n]*`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
	{Name: "EOL", Pattern: `\n`},

	{Name: "Label", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*:`},
	{Name: "Number", Pattern: `\$[0-9a-fA-F]+|0[xX][0-9a-fA-F]+|%[01]+|[0-9][0-9a-fA-F]*[hH]|[0-9]+`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[,()+\-]`},
})

var parser = participle.MustBuild[Source](
	participle.Lexer(asmLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.CaseInsensitive("Ident"),
)

// Parse parses assembly source into its AST.
func Parse(filename string, src []byte) (*Source, error) {
	s := string(src)
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	return parser.ParseString(filename, s)
}

// parseNumber parses the $, 0x, %, h-suffixed and decimal forms.
func parseNumber(s string) (uint64, error) {
	switch {
	case strings.HasPrefix(s, "$"):
		return strconv.ParseUint(s[1:], 16, 16)
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		return strconv.ParseUint(s[2:], 16, 16)
	case strings.HasPrefix(s, "%"):
		return strconv.ParseUint(s[1:], 2, 16)
	case strings.HasSuffix(s, "h"), strings.HasSuffix(s, "H"):
		return strconv.ParseUint(s[:len(s)-1], 16, 16)
	}
	return strconv.ParseUint(s, 10, 16)
}

// String renders the expression in the form used by the opcode names.
func (e *Expr) String() string {
	if e.Number != nil {
		return strings.ToUpper(*e.Number) + e.Step
	}
	return strings.ToUpper(*e.Ident) + e.Step
}

// String renders the operand in the form used by the opcode names.
func (o *Operand) String() string {
	if o.Indirect != nil {
		return "(" + o.Indirect.String() + ")"
	}
	return o.Direct.String()
}

func (o *Operand) expr() *Expr {
	if o.Indirect != nil {
		return o.Indirect
	}
	return o.Direct
}
