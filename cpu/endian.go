package cpu

import (
	"encoding/binary"
)

// AppendWord appends a 16-bit word to b in little-endian order, the byte
// order of the ZKTC memory image.
func AppendWord(b []byte, w uint16) []byte {
	return binary.LittleEndian.AppendUint16(b, w)
}
