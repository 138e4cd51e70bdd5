package assembler

import (
	"github.com/kkinos/zktc-asm/cpu"
)

// encodeInstruction packs one instruction into its 16-bit word. address is
// the instruction's own address, needed for pc-relative branch targets.
func (asm *Assembler) encodeInstruction(stmt *Statement, address uint16) (uint16, error) {
	var imm int32
	if stmt.Imm != nil {
		var err error
		imm, err = asm.resolveImmediate(stmt, address)
		if err != nil {
			return 0, err
		}
		if err := checkRange(imm, stmt.Desc.ImmBits(), stmt.Desc.Signed, stmt.Line); err != nil {
			return 0, err
		}
	}
	return stmt.Desc.Pack(stmt.Rd, stmt.Rs, uint16(imm)), nil
}

// resolveImmediate evaluates an instruction's immediate operand. On a
// branch-format instruction a bare label does not evaluate to its address:
// it encodes the displacement from the instruction to the label.
func (asm *Assembler) resolveImmediate(stmt *Statement, address uint16) (int32, error) {
	if ref, ok := stmt.Imm.(SymbolRef); ok && stmt.Desc.Branch {
		target, found := asm.symbols.Lookup(ref.Name)
		if !found {
			return 0, &UndefinedSymbolError{Line: stmt.Line, Name: ref.Name}
		}
		return int32(target) - int32(address), nil
	}
	return asm.evalExpr(stmt.Imm, stmt.Line)
}

// encodeDirective appends the bytes of a .word or .byte directive to the
// image, one or two little-endian bytes per value.
func (asm *Assembler) encodeDirective(image []byte, stmt *Statement) ([]byte, error) {
	wide := stmt.Directive == "word"
	for _, expr := range stmt.Values {
		v, err := asm.evalExpr(expr, stmt.Line)
		if err != nil {
			return nil, err
		}
		if wide {
			if v < -0x8000 || v > 0xffff {
				return nil, &ImmediateRangeError{Line: stmt.Line, Value: v, Min: -0x8000, Max: 0xffff}
			}
			image = cpu.AppendWord(image, uint16(v))
		} else {
			if v < -0x80 || v > 0xff {
				return nil, &ImmediateRangeError{Line: stmt.Line, Value: v, Min: -0x80, Max: 0xff}
			}
			image = append(image, byte(uint16(v)&0xff))
		}
	}
	return image, nil
}

// checkRange validates a resolved value against an immediate field width.
// Signed fields span the symmetric two's-complement range, unsigned fields
// start at zero; both encodings mask to the field on packing.
func checkRange(v int32, bits int, signed bool, line int) error {
	var min, max int32
	if signed {
		min, max = -(1 << (bits - 1)), 1<<(bits-1)-1
	} else {
		min, max = 0, 1<<bits-1
	}
	if v < min || v > max {
		return &ImmediateRangeError{Line: line, Value: v, Min: min, Max: max}
	}
	return nil
}
