package cpu

// registers maps register names and their ABI aliases to encodings.
var registers = map[string]uint16{
	"x0": 0, "zero": 0,
	"x1": 1, "ra": 1,
	"x2": 2, "fp": 2,
	"x3": 3, "a0": 3,
	"x4": 4, "a1": 4,
	"x5": 5, "a2": 5,
	"x6": 6, "t0": 6,
	"x7": 7, "t1": 7,
}

// Register looks up the encoding for a register name or ABI alias.
func Register(name string) (uint16, bool) {
	r, ok := registers[name]
	return r, ok
}

// IsRegister reports whether name names a general-purpose register.
func IsRegister(name string) bool {
	_, ok := registers[name]
	return ok
}
