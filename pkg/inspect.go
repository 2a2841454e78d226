package pkg

import (
	"fmt"
	"math/bits"
)

type SymbolStat struct {
	Symbol byte
	Count  uint64
	Code   Code
}

// Summary describes an encoded artifact without decoding it.
type Summary struct {
	Symbols      []SymbolStat
	TotalSymbols uint64
	HeaderSize   int
	PayloadSize  int
	EncodedBits  uint64
	PaddingBits  uint64
}

// ArtifactSize is the full size of the artifact in bytes.
func (s *Summary) ArtifactSize() int { return s.HeaderSize + s.PayloadSize }

// Ratio is the artifact size over the original size. It is zero for an
// empty original.
func (s *Summary) Ratio() float64 {
	if s.TotalSymbols == 0 {
		return 0
	}
	return float64(s.ArtifactSize()) / float64(s.TotalSymbols)
}

// Summarize parses the header of artifact, rebuilds the code book and checks
// that the payload holds enough bits for every symbol.
func Summarize(artifact []byte) (*Summary, error) {
	ft, off, err := ParseHeader(artifact)
	if err != nil {
		return nil, err
	}
	total, ok := ft.TotalCount()
	if !ok {
		return nil, fmt.Errorf("%w: symbol count overflows", ErrCorruptHeader)
	}

	s := &Summary{
		TotalSymbols: total,
		HeaderSize:   off,
		PayloadSize:  len(artifact) - off,
	}

	cb := GenerateCodeBook(BuildTree(ft))
	for _, sym := range cb.Symbols() {
		code, _ := cb.Code(sym)
		s.Symbols = append(s.Symbols, SymbolStat{Symbol: sym, Count: ft[sym], Code: code})
		hi, n := bits.Mul64(ft[sym], uint64(len(code)))
		var carry uint64
		s.EncodedBits, carry = bits.Add64(s.EncodedBits, n, 0)
		if hi != 0 || carry != 0 {
			return nil, fmt.Errorf("%w: encoded bit count overflows", ErrCorruptHeader)
		}
	}

	payloadBits := 8 * uint64(s.PayloadSize)
	if payloadBits < s.EncodedBits {
		return nil, fmt.Errorf("%w: payload has %d bits, %d needed", ErrTruncatedPayload, payloadBits, s.EncodedBits)
	}
	s.PaddingBits = payloadBits - s.EncodedBits

	return s, nil
}
