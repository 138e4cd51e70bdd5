package assembler

import (
	"bufio"
	"fmt"
	"io"
)

// WriteImage renders an assembled memory image in the textual output
// format: one two-digit lowercase hex value per line, ending with a
// trailing newline. It performs no validation; the image is assumed to
// have come out of a successful Assemble call.
func WriteImage(w io.Writer, image []byte) error {
	bw := bufio.NewWriter(w)
	for _, b := range image {
		if _, err := fmt.Fprintf(bw, "%02x\n", b); err != nil {
			return err
		}
	}
	return bw.Flush()
}
