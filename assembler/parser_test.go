package assembler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kkinos/zktc-asm/cpu"
)

func parseSource(t *testing.T, src string) []*Statement {
	t.Helper()
	tokens, err := lex(src)
	require.NoError(t, err)
	statements, err := parse(tokens)
	require.NoError(t, err)
	return statements
}

func TestParseInstructionFormats(t *testing.T) {
	tests := []struct {
		src    string
		format cpu.Format
		rd, rs uint16
		imm    Expr
	}{
		{"mov x1, x2", cpu.FormatR, 1, 2, nil},
		{"addi a0, a1, 31", cpu.FormatI5, 3, 4, Literal{Value: 31}},
		{"beq x1, x2, -3", cpu.FormatI5, 1, 2, Literal{Value: -3}},
		{"jal ra, loop", cpu.FormatI8, 1, 0, SymbolRef{Name: "loop"}},
		{"lil x1, msg@l", cpu.FormatI8, 1, 0, ByteSelect{Inner: SymbolRef{Name: "msg"}}},
		{"lih x2, msg@h", cpu.FormatI8, 2, 0, ByteSelect{Inner: SymbolRef{Name: "msg"}, High: true}},
		{"push t0", cpu.FormatC1, 6, 0, nil},
		{"rfi", cpu.FormatC2, 0, 0, nil},
		{"trap", cpu.FormatTrap, 0, 0, nil},
	}
	for _, tc := range tests {
		statements := parseSource(t, tc.src)
		require.Len(t, statements, 1, tc.src)
		stmt := statements[0]
		assert.Equal(t, StatementInstruction, stmt.Type, tc.src)
		assert.Equal(t, tc.format, stmt.Desc.Format, tc.src)
		assert.Equal(t, tc.rd, stmt.Rd, tc.src)
		assert.Equal(t, tc.rs, stmt.Rs, tc.src)
		assert.Equal(t, tc.imm, stmt.Imm, tc.src)
	}
}

func TestParseLabels(t *testing.T) {
	statements := parseSource(t, "start:\n  mov x1, x2\nloop: jal x0, loop\n")
	require.Len(t, statements, 4)

	assert.Equal(t, StatementLabel, statements[0].Type)
	assert.Equal(t, "start", statements[0].Label)
	assert.Equal(t, 1, statements[0].Line)

	// label sharing a line with an instruction
	assert.Equal(t, StatementLabel, statements[2].Type)
	assert.Equal(t, "loop", statements[2].Label)
	assert.Equal(t, StatementInstruction, statements[3].Type)
	assert.Equal(t, 3, statements[3].Line)
}

func TestParseDirectives(t *testing.T) {
	statements := parseSource(t, ".word 0x6c6c, msg, msg@h\n.byte 1, -2, 0xff\n")
	require.Len(t, statements, 2)

	words := statements[0]
	assert.Equal(t, StatementDirective, words.Type)
	assert.Equal(t, "word", words.Directive)
	assert.Equal(t, []Expr{
		Literal{Value: 0x6c6c},
		SymbolRef{Name: "msg"},
		ByteSelect{Inner: SymbolRef{Name: "msg"}, High: true},
	}, words.Values)
	assert.Equal(t, uint32(6), words.Size())

	bytes := statements[1]
	assert.Equal(t, "byte", bytes.Directive)
	assert.Equal(t, []Expr{
		Literal{Value: 1},
		Literal{Value: -2},
		Literal{Value: 0xff},
	}, bytes.Values)
	assert.Equal(t, uint32(3), bytes.Size())
}

func TestParseLiteralDiagnostics(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{".word 0x10000", `number "0x10000" out of range`},
		{".word 70000", `number "70000" out of range`},
		{".word -40000", `number "-40000" out of range`},
		{".word 0xg1", `malformed number "0xg1"`},
	}
	for _, tc := range tests {
		tokens, err := lex(tc.src)
		require.NoError(t, err, tc.src)
		_, err = parse(tokens)
		require.Error(t, err, tc.src)
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr, tc.src)
		assert.Equal(t, tc.want, parseErr.Msg, tc.src)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
	}{
		{"unknown mnemonic", "nop", 1},
		{"unknown directive", ".string \"hi\"", 1},
		{"missing operand", "mov x1", 1},
		{"excess operand", "mov x1, x2, x3", 1},
		{"register as expression", "lil x1, x2", 1},
		{"expression as register", "mov 1, x2", 1},
		{"unknown register", "mov x9, x2", 1},
		{"register as label", "ra: mov x1, x2", 1},
		{"malformed number", "addi x1, x2, 0xg1", 1},
		{"oversized literal", ".word 0x10000", 1},
		{"bare label line junk", "start: :", 1},
		{"second statement on line", "mov x1, x2 mov x3, x4", 1},
		{"late line number", "mov x1, x2\n\nsw x1", 3},
	}
	for _, tc := range tests {
		tokens, err := lex(tc.src)
		require.NoError(t, err, tc.name)
		_, err = parse(tokens)
		require.Error(t, err, tc.name)
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr, tc.name)
		assert.Equal(t, tc.line, parseErr.Line, tc.name)
	}
}
