package assembler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kkinos/zktc-asm/cpu"
)

// parser consumes the token sequence one source line at a time.
type parser struct {
	tokens []Token
	pos    int
}

// parse turns the token sequence into an ordered statement list. Only
// syntactic shape is validated here; symbol resolution and range checks
// belong to the two resolver passes.
func parse(tokens []Token) ([]*Statement, error) {
	p := &parser{tokens: tokens}
	var statements []*Statement
	for p.peek().Type != TokenEOF {
		stmts, err := p.parseLine()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmts...)
	}
	return statements, nil
}

func (p *parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *parser) advance() Token {
	tok := p.tokens[p.pos]
	if tok.Type != TokenEOF {
		p.pos++
	}
	return tok
}

// expect consumes the next token, which must be of the given type.
func (p *parser) expect(t TokenType) (Token, error) {
	tok := p.advance()
	if tok.Type != t {
		return tok, &ParseError{Line: tok.Line, Msg: fmt.Sprintf("expected %s, found %s", t, describe(tok))}
	}
	return tok, nil
}

// parseLine emits the statements of a single source line: an optional
// label definition followed by at most one instruction or directive.
func (p *parser) parseLine() ([]*Statement, error) {
	var statements []*Statement

	// Leading label definition: an identifier bound to a colon.
	if p.peek().Type == TokenIdent && p.tokens[p.pos+1].Type == TokenColon {
		name := p.advance()
		p.advance() // colon
		if cpu.IsRegister(name.Value) {
			return nil, &ParseError{Line: name.Line, Msg: fmt.Sprintf("register name %q cannot be used as a label", name.Value)}
		}
		statements = append(statements, &Statement{
			Type:  StatementLabel,
			Line:  name.Line,
			Label: name.Value,
		})
	}

	switch tok := p.peek(); tok.Type {
	case TokenNewline:
		p.advance()
		return statements, nil

	case TokenDirective:
		stmt, err := p.parseDirective()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)

	case TokenIdent:
		stmt, err := p.parseInstruction()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)

	default:
		return nil, &ParseError{Line: tok.Line, Msg: fmt.Sprintf("expected instruction or directive, found %s", describe(tok))}
	}

	if tok := p.advance(); tok.Type != TokenNewline {
		return nil, &ParseError{Line: tok.Line, Msg: fmt.Sprintf("unexpected %s after statement", describe(tok))}
	}
	return statements, nil
}

// parseDirective handles `.word expr[, expr...]` and `.byte expr[, expr...]`.
func (p *parser) parseDirective() (*Statement, error) {
	tok := p.advance()
	name := tok.Value
	if name != "word" && name != "byte" {
		return nil, &ParseError{Line: tok.Line, Msg: fmt.Sprintf("unknown directive .%s", name)}
	}

	stmt := &Statement{Type: StatementDirective, Line: tok.Line, Directive: name}
	for {
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		stmt.Values = append(stmt.Values, expr)
		if p.peek().Type != TokenComma {
			break
		}
		p.advance()
	}
	return stmt, nil
}

// parseInstruction validates a mnemonic against the format table and
// consumes exactly the operands its format demands.
func (p *parser) parseInstruction() (*Statement, error) {
	tok := p.advance()
	desc, ok := cpu.Lookup(tok.Value)
	if !ok {
		return nil, &ParseError{Line: tok.Line, Msg: fmt.Sprintf("unknown mnemonic %q", tok.Value)}
	}

	stmt := &Statement{
		Type:     StatementInstruction,
		Line:     tok.Line,
		Mnemonic: tok.Value,
		Desc:     desc,
	}

	first := true
	operand := func() error {
		if !first {
			if _, err := p.expect(TokenComma); err != nil {
				return &ParseError{Line: tok.Line, Msg: fmt.Sprintf("%s: missing operand", tok.Value)}
			}
		}
		first = false
		return nil
	}

	if desc.HasRd() {
		if err := operand(); err != nil {
			return nil, err
		}
		rd, err := p.parseRegister(tok.Value)
		if err != nil {
			return nil, err
		}
		stmt.Rd = rd
	}
	if desc.HasRs() {
		if err := operand(); err != nil {
			return nil, err
		}
		rs, err := p.parseRegister(tok.Value)
		if err != nil {
			return nil, err
		}
		stmt.Rs = rs
	}
	if desc.ImmBits() > 0 {
		if err := operand(); err != nil {
			return nil, err
		}
		imm, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		stmt.Imm = imm
	}
	return stmt, nil
}

// parseRegister consumes one register operand.
func (p *parser) parseRegister(mnemonic string) (uint16, error) {
	tok := p.advance()
	if tok.Type != TokenIdent {
		return 0, &ParseError{Line: tok.Line, Msg: fmt.Sprintf("%s: expected register, found %s", mnemonic, describe(tok))}
	}
	r, ok := cpu.Register(tok.Value)
	if !ok {
		return 0, &ParseError{Line: tok.Line, Msg: fmt.Sprintf("%s: unknown register %q", mnemonic, tok.Value)}
	}
	return r, nil
}

// parseExpr consumes one value expression: a literal or a label name,
// optionally followed by a byte selector.
func (p *parser) parseExpr() (Expr, error) {
	tok := p.advance()

	var expr Expr
	switch tok.Type {
	case TokenNumber:
		v, err := parseLiteral(tok)
		if err != nil {
			return nil, err
		}
		expr = Literal{Value: v}

	case TokenIdent:
		if cpu.IsRegister(tok.Value) {
			return nil, &ParseError{Line: tok.Line, Msg: fmt.Sprintf("expected expression, found register %q", tok.Value)}
		}
		expr = SymbolRef{Name: tok.Value}

	default:
		return nil, &ParseError{Line: tok.Line, Msg: fmt.Sprintf("expected expression, found %s", describe(tok))}
	}

	if p.peek().Type == TokenSelector {
		sel := p.advance()
		expr = ByteSelect{Inner: expr, High: sel.Value == "h"}
	}
	return expr, nil
}

// parseLiteral converts the raw text of a number token. Decimal literals
// may be negative; hexadecimal literals use the 0x prefix.
func parseLiteral(tok Token) (int32, error) {
	s := tok.Value
	neg := strings.HasPrefix(s, "-")
	digits := strings.TrimPrefix(s, "-")

	var v uint64
	var err error
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		v, err = strconv.ParseUint(digits[2:], 16, 16)
	} else {
		v, err = strconv.ParseUint(digits, 10, 16)
	}
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &ParseError{Line: tok.Line, Msg: fmt.Sprintf("number %q out of range", s)}
		}
		return 0, &ParseError{Line: tok.Line, Msg: fmt.Sprintf("malformed number %q", s)}
	}

	result := int32(v)
	if neg {
		result = -result
		if result < -0x8000 {
			return 0, &ParseError{Line: tok.Line, Msg: fmt.Sprintf("number %q out of range", s)}
		}
	}
	return result, nil
}

// describe renders a token for diagnostics.
func describe(tok Token) string {
	switch tok.Type {
	case TokenIdent, TokenNumber:
		return fmt.Sprintf("%q", tok.Value)
	case TokenDirective:
		return fmt.Sprintf("\".%s\"", tok.Value)
	case TokenSelector:
		return fmt.Sprintf("\"@%s\"", tok.Value)
	default:
		return tok.Type.String()
	}
}
