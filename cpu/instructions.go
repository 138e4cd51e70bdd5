package cpu

// Format identifies one of the ZKTC instruction format classes. Every
// instruction occupies a single 16-bit word; the format determines which
// operand fields exist and where they sit in that word.
type Format int

const (
	// FormatR takes two registers: mnemonic rd, rs.
	FormatR Format = iota
	// FormatI5 takes two registers and a 5-bit immediate: mnemonic rd, rs, imm.
	FormatI5
	// FormatI8 takes one register and an 8-bit immediate: mnemonic rd, imm.
	FormatI8
	// FormatC1 takes a single register: mnemonic rd.
	FormatC1
	// FormatC2 takes no operands.
	FormatC2
	// FormatTrap is the fixed trap word with no operands.
	FormatTrap
)

// Opcode constants for the fixed low-bit patterns of the control formats.
const (
	opcodeC1 = 0x1e
	opcodeC2 = 0x1f
	trapWord = 0xffff
)

// InstructionSize is the encoded size of every ZKTC instruction, in bytes.
const InstructionSize = 2

// Descriptor describes how one mnemonic is encoded: its format class, its
// opcode or funct value, and how its immediate field (if any) is interpreted.
type Descriptor struct {
	Format Format
	Code   uint16 // funct for R/C1/C2, opcode for I5/I8
	Signed bool   // immediate field holds a two's-complement value
	Branch bool   // a bare label immediate encodes a pc-relative displacement
}

// descriptors is the authoritative per-mnemonic format table.
var descriptors = map[string]Descriptor{
	// R format
	"mov": {Format: FormatR, Code: 0x01},
	"add": {Format: FormatR, Code: 0x02},
	"sub": {Format: FormatR, Code: 0x03},
	"and": {Format: FormatR, Code: 0x04},
	"or":  {Format: FormatR, Code: 0x05},
	"xor": {Format: FormatR, Code: 0x06},
	"sll": {Format: FormatR, Code: 0x07},
	"srl": {Format: FormatR, Code: 0x08},
	"sra": {Format: FormatR, Code: 0x09},

	// I5 format. addi/subi take an unsigned shift amount style immediate,
	// the rest take a signed word offset or branch displacement.
	"addi": {Format: FormatI5, Code: 0x01},
	"subi": {Format: FormatI5, Code: 0x02},
	"beq":  {Format: FormatI5, Code: 0x03, Signed: true},
	"bnq":  {Format: FormatI5, Code: 0x04, Signed: true},
	"blt":  {Format: FormatI5, Code: 0x05, Signed: true},
	"bge":  {Format: FormatI5, Code: 0x06, Signed: true},
	"bltu": {Format: FormatI5, Code: 0x07, Signed: true},
	"bgeu": {Format: FormatI5, Code: 0x08, Signed: true},
	"jalr": {Format: FormatI5, Code: 0x09, Signed: true},
	"lw":   {Format: FormatI5, Code: 0x0a, Signed: true},
	"sw":   {Format: FormatI5, Code: 0x0b, Signed: true},

	// I8 format
	"jal": {Format: FormatI8, Code: 0x0c, Signed: true, Branch: true},
	"lil": {Format: FormatI8, Code: 0x0d},
	"lih": {Format: FormatI8, Code: 0x0e},

	// C1 format
	"push":  {Format: FormatC1, Code: 0x01},
	"pop":   {Format: FormatC1, Code: 0x02},
	"rpc":   {Format: FormatC1, Code: 0x03},
	"rsp":   {Format: FormatC1, Code: 0x04},
	"rpsr":  {Format: FormatC1, Code: 0x05},
	"rtlr":  {Format: FormatC1, Code: 0x06},
	"rthr":  {Format: FormatC1, Code: 0x07},
	"rppc":  {Format: FormatC1, Code: 0x08},
	"rppsr": {Format: FormatC1, Code: 0x09},
	"wsp":   {Format: FormatC1, Code: 0x0a},
	"wpsr":  {Format: FormatC1, Code: 0x0b},
	"wtlr":  {Format: FormatC1, Code: 0x0c},
	"wthr":  {Format: FormatC1, Code: 0x0d},
	"wppc":  {Format: FormatC1, Code: 0x0e},
	"wppsr": {Format: FormatC1, Code: 0x0f},

	// C2 format
	"rfi": {Format: FormatC2, Code: 0x01},
	"rtr": {Format: FormatC2, Code: 0x02},
	"wtr": {Format: FormatC2, Code: 0x03},

	"trap": {Format: FormatTrap},
}

// Lookup returns the format descriptor for a mnemonic.
func Lookup(mnemonic string) (Descriptor, bool) {
	d, ok := descriptors[mnemonic]
	return d, ok
}

// HasRd reports whether the format has a destination register field.
func (d Descriptor) HasRd() bool {
	return d.Format != FormatC2 && d.Format != FormatTrap
}

// HasRs reports whether the format has a source register field.
func (d Descriptor) HasRs() bool {
	return d.Format == FormatR || d.Format == FormatI5
}

// ImmBits returns the width of the format's immediate field in bits,
// or 0 if the format has none.
func (d Descriptor) ImmBits() int {
	switch d.Format {
	case FormatI5:
		return 5
	case FormatI8:
		return 8
	default:
		return 0
	}
}

// Pack assembles the instruction word from its resolved operand fields.
// Field values are masked to their widths; range validation is the
// caller's responsibility.
func (d Descriptor) Pack(rd, rs, imm uint16) uint16 {
	rd &= 0x07
	rs &= 0x07
	switch d.Format {
	case FormatR:
		return d.Code<<11 | rs<<8 | rd<<5
	case FormatI5:
		return (imm&0x1f)<<11 | rs<<8 | rd<<5 | d.Code
	case FormatI8:
		return (imm&0xff)<<8 | rd<<5 | d.Code
	case FormatC1:
		return d.Code<<11 | rd<<5 | opcodeC1
	case FormatC2:
		return d.Code<<11 | opcodeC2
	default:
		return trapWord
	}
}
