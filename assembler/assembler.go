package assembler

import (
	"fmt"

	"github.com/kkinos/zktc-asm/cpu"
)

// Assembler holds the state for one assembly run.
type Assembler struct {
	symbols *SymbolTable
}

// New creates a new Assembler instance.
func New() *Assembler {
	return &Assembler{symbols: newSymbolTable()}
}

// Symbols exposes the resolved symbol table, populated after a successful
// Assemble call.
func (asm *Assembler) Symbols() *SymbolTable {
	return asm.symbols
}

// Assemble translates ZKTC assembly source into a byte-exact memory image.
// The byte at index i of the result is the value at memory address i.
func (asm *Assembler) Assemble(src string) ([]byte, error) {
	tokens, err := lex(src)
	if err != nil {
		return nil, err
	}
	statements, err := parse(tokens)
	if err != nil {
		return nil, err
	}
	if err := asm.resolve(statements); err != nil {
		return nil, err
	}
	return asm.encode(statements)
}

// resolve is the sizing and addressing pass. It walks the statement list
// once, binding every label to the running address. Statement sizes never
// depend on symbol values, so one pass suffices and forward references
// fall out for free; no expression is evaluated here.
func (asm *Assembler) resolve(statements []*Statement) error {
	var address uint32
	for _, stmt := range statements {
		if stmt.Type == StatementLabel {
			if address > 0xffff {
				return fmt.Errorf("line %d: label %q points past addressable memory", stmt.Line, stmt.Label)
			}
			if err := asm.symbols.define(stmt.Label, uint16(address), stmt.Line); err != nil {
				return err
			}
			continue
		}
		address += stmt.Size()
		if address > 0x10000 {
			return fmt.Errorf("line %d: program exceeds 64 KiB of addressable memory", stmt.Line)
		}
	}
	return nil
}

// encode is the resolution and encoding pass. The symbol table is frozen
// by now; expressions evaluate against it and each statement appends its
// bytes to the image.
func (asm *Assembler) encode(statements []*Statement) ([]byte, error) {
	var image []byte
	var address uint16
	for _, stmt := range statements {
		switch stmt.Type {
		case StatementLabel:
			continue
		case StatementInstruction:
			word, err := asm.encodeInstruction(stmt, address)
			if err != nil {
				return nil, err
			}
			image = cpu.AppendWord(image, word)
		case StatementDirective:
			var err error
			image, err = asm.encodeDirective(image, stmt)
			if err != nil {
				return nil, err
			}
		}
		address += uint16(stmt.Size())
	}
	return image, nil
}
