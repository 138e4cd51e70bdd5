package assembler

// SymbolTable maps label names to their resolved addresses. It is written
// during the sizing pass and read-only from then on.
type SymbolTable struct {
	addrs map[string]uint16
}

func newSymbolTable() *SymbolTable {
	return &SymbolTable{addrs: make(map[string]uint16)}
}

// define binds a label to an address. Redefinition is fatal.
func (st *SymbolTable) define(name string, addr uint16, line int) error {
	if _, exists := st.addrs[name]; exists {
		return &DuplicateSymbolError{Line: line, Name: name}
	}
	st.addrs[name] = addr
	return nil
}

// Lookup returns the address bound to a label.
func (st *SymbolTable) Lookup(name string) (uint16, bool) {
	addr, ok := st.addrs[name]
	return addr, ok
}

// Len returns the number of defined labels.
func (st *SymbolTable) Len() int {
	return len(st.addrs)
}
