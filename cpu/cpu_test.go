package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAliases(t *testing.T) {
	aliases := map[string]string{
		"zero": "x0",
		"ra":   "x1",
		"fp":   "x2",
		"a0":   "x3",
		"a1":   "x4",
		"a2":   "x5",
		"t0":   "x6",
		"t1":   "x7",
	}
	for alias, name := range aliases {
		a, ok := Register(alias)
		require.True(t, ok, "alias %s", alias)
		n, ok := Register(name)
		require.True(t, ok, "register %s", name)
		assert.Equal(t, n, a, "%s should encode like %s", alias, name)
	}

	_, ok := Register("x8")
	assert.False(t, ok)
	assert.False(t, IsRegister("msg"))
	assert.True(t, IsRegister("t1"))
}

func TestLookupShapes(t *testing.T) {
	tests := []struct {
		mnemonic string
		format   Format
		rd, rs   bool
		immBits  int
	}{
		{"mov", FormatR, true, true, 0},
		{"sra", FormatR, true, true, 0},
		{"addi", FormatI5, true, true, 5},
		{"sw", FormatI5, true, true, 5},
		{"jal", FormatI8, true, false, 8},
		{"lih", FormatI8, true, false, 8},
		{"push", FormatC1, true, false, 0},
		{"wppsr", FormatC1, true, false, 0},
		{"rfi", FormatC2, false, false, 0},
		{"trap", FormatTrap, false, false, 0},
	}
	for _, tc := range tests {
		d, ok := Lookup(tc.mnemonic)
		require.True(t, ok, tc.mnemonic)
		assert.Equal(t, tc.format, d.Format, tc.mnemonic)
		assert.Equal(t, tc.rd, d.HasRd(), tc.mnemonic)
		assert.Equal(t, tc.rs, d.HasRs(), tc.mnemonic)
		assert.Equal(t, tc.immBits, d.ImmBits(), tc.mnemonic)
	}

	_, ok := Lookup("nop")
	assert.False(t, ok)
}

func TestPack(t *testing.T) {
	tests := []struct {
		mnemonic string
		rd, rs   uint16
		imm      uint16
		want     uint16
	}{
		{"mov", 1, 2, 0, 0x0a20},
		{"or", 1, 2, 0, 0x2a20},
		{"sra", 0, 1, 0, 0x4900},
		{"addi", 1, 2, 31, 0xfa21},
		{"lw", 5, 6, 15, 0x7eaa},
		{"sw", 1, 2, 0xfffd, 0xea2b}, // -3 in 5 bits
		{"jal", 1, 0, 0xfff8, 0xf82c}, // -8 in 8 bits
		{"lil", 1, 0, 10, 0x0a2d},
		{"push", 5, 0, 0, 0x08be},
		{"wppsr", 5, 0, 0, 0x78be},
		{"rfi", 0, 0, 0, 0x081f},
		{"wtr", 0, 0, 0, 0x181f},
		{"trap", 0, 0, 0, 0xffff},
	}
	for _, tc := range tests {
		d, ok := Lookup(tc.mnemonic)
		require.True(t, ok, tc.mnemonic)
		assert.Equal(t, tc.want, d.Pack(tc.rd, tc.rs, tc.imm), tc.mnemonic)
	}
}

func TestAppendWord(t *testing.T) {
	img := AppendWord(nil, 0x6548)
	require.Equal(t, []byte{0x48, 0x65}, img)

	img = AppendWord(img, 0x0a2d)
	assert.Equal(t, []byte{0x48, 0x65, 0x2d, 0x0a}, img)
}
