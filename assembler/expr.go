package assembler

// Expr is a value expression appearing as an instruction immediate or a
// directive value: a numeric literal, a label reference, or a byte
// selection over either. The grammar is closed; evaluation is the
// exhaustive type switch in evalExpr.
type Expr interface {
	exprNode()
}

// Literal is a numeric literal. The value is kept signed so that negative
// immediates survive until field-width validation; the usable range is
// -0x8000..0xffff.
type Literal struct {
	Value int32
}

// SymbolRef is a reference to a label, evaluating to its address.
type SymbolRef struct {
	Name string
}

// ByteSelect selects one byte of a 16-bit value: high for `@h`, low for `@l`.
type ByteSelect struct {
	Inner Expr
	High  bool
}

func (Literal) exprNode()    {}
func (SymbolRef) exprNode()  {}
func (ByteSelect) exprNode() {}

// evalExpr resolves an expression to a concrete value against the frozen
// symbol table. line is the referencing source line, used for diagnostics.
func (asm *Assembler) evalExpr(e Expr, line int) (int32, error) {
	switch e := e.(type) {
	case Literal:
		return e.Value, nil

	case SymbolRef:
		addr, ok := asm.symbols.Lookup(e.Name)
		if !ok {
			return 0, &UndefinedSymbolError{Line: line, Name: e.Name}
		}
		return int32(addr), nil

	case ByteSelect:
		v, err := asm.evalExpr(e.Inner, line)
		if err != nil {
			return 0, err
		}
		// Selectors operate on unsigned 16-bit quantities only.
		if v < 0 || v > 0xffff {
			return 0, &ImmediateRangeError{Line: line, Value: v, Min: 0, Max: 0xffff}
		}
		if e.High {
			return (v >> 8) & 0xff, nil
		}
		return v & 0xff, nil

	default:
		panic("assembler: unknown expression type")
	}
}
