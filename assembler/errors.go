package assembler

import "fmt"

// LexError reports a character the lexer does not recognize.
type LexError struct {
	Line int
	Char rune
}

func (e *LexError) Error() string {
	return fmt.Sprintf("line %d: unrecognized character %q", e.Line, e.Char)
}

// ParseError reports a statement whose shape is invalid: an unknown
// mnemonic or directive, wrong operand count or kind, or a malformed
// expression.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// DuplicateSymbolError reports a label defined more than once.
type DuplicateSymbolError struct {
	Line int
	Name string
}

func (e *DuplicateSymbolError) Error() string {
	return fmt.Sprintf("line %d: duplicate label %q", e.Line, e.Name)
}

// UndefinedSymbolError reports a reference to a label that is never defined.
type UndefinedSymbolError struct {
	Line int
	Name string
}

func (e *UndefinedSymbolError) Error() string {
	return fmt.Sprintf("line %d: undefined label %q", e.Line, e.Name)
}

// ImmediateRangeError reports a resolved value that does not fit the
// field width required by its context.
type ImmediateRangeError struct {
	Line  int
	Value int32
	Min   int32
	Max   int32
}

func (e *ImmediateRangeError) Error() string {
	return fmt.Sprintf("line %d: value %d out of range %d..%d", e.Line, e.Value, e.Min, e.Max)
}
