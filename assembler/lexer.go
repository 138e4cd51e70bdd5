package assembler

import "unicode"

// lexer holds all mutable state for a single scanning pass over src.
type lexer struct {
	src  []rune
	pos  int // index of the next rune to consume
	line int // current 1-based source line
}

// lex scans the complete source text into a token sequence. The result
// always ends with a TokenEOF, and every source line (including the last)
// is terminated by a TokenNewline.
func lex(src string) ([]Token, error) {
	l := &lexer{src: []rune(src), line: 1}
	var tokens []Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens, nil
		}
	}
}

// peek returns the rune at the current position without advancing.
func (l *lexer) peek() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

// peek2 returns the rune one position ahead of the current position.
func (l *lexer) peek2() rune {
	if l.pos+1 >= len(l.src) {
		return 0
	}
	return l.src[l.pos+1]
}

// advance consumes one rune and returns it.
func (l *lexer) advance() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	r := l.src[l.pos]
	l.pos++
	return r
}

// skipLineComment discards everything up to, but not including, the
// end-of-line. The opening "//" must already have been consumed.
func (l *lexer) skipLineComment() {
	for l.pos < len(l.src) && l.peek() != '\n' {
		l.advance()
	}
}

func (l *lexer) next() (Token, error) {
	for l.pos < len(l.src) {
		r := l.peek()
		switch {
		case r == ' ' || r == '\t' || r == '\r':
			l.advance()
		case r == '/' && l.peek2() == '/':
			l.skipLineComment()
		default:
			return l.scanToken()
		}
	}
	// A final line without a trailing newline still terminates.
	if l.line > 0 {
		line := l.line
		l.line = 0
		return Token{Type: TokenNewline, Line: line}, nil
	}
	return Token{Type: TokenEOF}, nil
}

func (l *lexer) scanToken() (Token, error) {
	line := l.line
	r := l.peek()

	switch {
	case r == '\n':
		l.advance()
		l.line++
		return Token{Type: TokenNewline, Line: line}, nil

	case r == ',':
		l.advance()
		return Token{Type: TokenComma, Line: line}, nil

	case r == ':':
		l.advance()
		return Token{Type: TokenColon, Line: line}, nil

	case r == '@':
		sel := l.peek2()
		if sel != 'h' && sel != 'l' {
			return Token{}, &LexError{Line: line, Char: r}
		}
		l.advance()
		l.advance()
		return Token{Type: TokenSelector, Value: string(sel), Line: line}, nil

	case r == '.':
		l.advance()
		if !isIdentStart(l.peek()) {
			return Token{}, &LexError{Line: line, Char: r}
		}
		return Token{Type: TokenDirective, Value: l.scanIdent(), Line: line}, nil

	case isIdentStart(r):
		return Token{Type: TokenIdent, Value: l.scanIdent(), Line: line}, nil

	case unicode.IsDigit(r), r == '-' && unicode.IsDigit(l.peek2()):
		return Token{Type: TokenNumber, Value: l.scanNumber(), Line: line}, nil

	default:
		return Token{}, &LexError{Line: line, Char: r}
	}
}

// scanIdent consumes an identifier: a letter or underscore followed by any
// run of letters, digits and underscores.
func (l *lexer) scanIdent() string {
	start := l.pos
	for l.pos < len(l.src) && isIdentPart(l.peek()) {
		l.advance()
	}
	return string(l.src[start:l.pos])
}

// scanNumber consumes the raw text of a numeric literal: an optional minus
// sign followed by a run of digits and letters. Validation of the digits
// against the radix happens in the parser, so that a malformed literal is
// reported as a malformed expression rather than a stray character.
func (l *lexer) scanNumber() string {
	start := l.pos
	if l.peek() == '-' {
		l.advance()
	}
	for l.pos < len(l.src) && isIdentPart(l.peek()) {
		l.advance()
	}
	return string(l.src[start:l.pos])
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
