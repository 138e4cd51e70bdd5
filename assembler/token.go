package assembler

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	TokenEOF TokenType = iota // sentinel: end of input

	TokenIdent     // mnemonic, register or label name
	TokenNumber    // decimal or 0x hexadecimal literal, possibly negative
	TokenDirective // .name, stored without the leading dot
	TokenSelector  // @h or @l, stored as "h" or "l"
	TokenComma     // ,
	TokenColon     // :
	TokenNewline   // end of a source line
)

var tokenNames = [...]string{
	TokenEOF:       "EOF",
	TokenIdent:     "identifier",
	TokenNumber:    "number",
	TokenDirective: "directive",
	TokenSelector:  "selector",
	TokenComma:     "','",
	TokenColon:     "':'",
	TokenNewline:   "end of line",
}

func (t TokenType) String() string {
	if int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token is one lexical element of the source text. Value holds the raw
// text for identifiers, numbers, directives and selectors.
type Token struct {
	Type  TokenType
	Value string
	Line  int // 1-based source line
}
