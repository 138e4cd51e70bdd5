package assembler

import "github.com/kkinos/zktc-asm/cpu"

// StatementType defines the type of a parsed statement.
type StatementType int

const (
	// StatementInstruction type.
	StatementInstruction StatementType = iota
	// StatementDirective type.
	StatementDirective
	// StatementLabel type.
	StatementLabel
)

// Statement represents one parsed element from the assembly source.
// Which fields are meaningful depends on Type.
type Statement struct {
	Type StatementType
	Line int // 1-based source line

	// StatementLabel
	Label string

	// StatementInstruction
	Mnemonic string
	Desc     cpu.Descriptor
	Rd, Rs   uint16
	Imm      Expr // nil when the format has no immediate field

	// StatementDirective
	Directive string // "word" or "byte"
	Values    []Expr
}

// Size returns the number of bytes the statement occupies in the memory
// image. It never depends on the value of any symbol, which is what makes
// forward references resolvable in a single sizing pass.
func (s *Statement) Size() uint32 {
	switch s.Type {
	case StatementInstruction:
		return cpu.InstructionSize
	case StatementDirective:
		return uint32(len(s.Values)) * directiveElementSize(s.Directive)
	default:
		return 0
	}
}

// directiveElementSize returns the byte size of a single directive value.
func directiveElementSize(directive string) uint32 {
	if directive == "byte" {
		return 1
	}
	return 2
}
