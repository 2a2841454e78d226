package pkg

import (
	"bytes"
	"io"

	"github.com/dgryski/go-bitstream"
)

// Bits are written most significant bit first. The last byte is padded
// with zero bits.

func writeCode(bw *bitstream.BitWriter, c Code) error {
	for _, bit := range c {
		if err := bw.WriteBit(bitstream.Bit(bit)); err != nil {
			return err
		}
	}
	return nil
}

// pack writes code(0) through code(n-1) to w and pads the final byte.
func pack(w io.Writer, n int, code func(i int) Code) error {
	bw := bitstream.NewWriter(w)
	for i := 0; i < n; i++ {
		if err := writeCode(bw, code(i)); err != nil {
			return err
		}
	}
	return bw.Flush(bitstream.Zero)
}

func newBitReader(data []byte) *bitstream.BitReader {
	return bitstream.NewReader(bytes.NewReader(data))
}

// Pack concatenates codes and groups the bits into bytes.
func Pack(codes []Code) []byte {
	var buf bytes.Buffer
	// bytes.Buffer writes do not fail
	_ = pack(&buf, len(codes), func(i int) Code { return codes[i] })
	return buf.Bytes()
}

// Unpack expands every byte of data into eight bits. Padding is kept; the
// caller knows how many bits are meaningful.
func Unpack(data []byte) Code {
	br := newBitReader(data)
	bits := make(Code, 0, 8*len(data))
	for {
		bit, err := br.ReadBit()
		if err != nil {
			break
		}
		bits = append(bits, bool(bit))
	}
	return bits
}
