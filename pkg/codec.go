package pkg

import (
	"bytes"
	"fmt"
	"math"
)

// DefaultMaxDecodedSize bounds the output Decode will allocate.
const DefaultMaxDecodedSize uint64 = 1 << 30

type decodeOptions struct {
	maxDecodedSize uint64
}

type DecodeOption func(*decodeOptions)

// WithMaxDecodedSize makes Decode reject artifacts whose header announces
// more than n symbols. Counts above math.MaxInt are always rejected.
func WithMaxDecodedSize(n uint64) DecodeOption {
	return func(o *decodeOptions) { o.maxDecodedSize = n }
}

// Encode compresses data into a header plus packed payload. Empty data
// produces a header with every count zero and no payload.
func Encode(data []byte) []byte {
	ft := BuildFrequencyTable(data)
	out := AppendHeader(make([]byte, 0, 2*NumSymbols+len(data)/2), &ft)
	if len(data) == 0 {
		return out
	}

	cb := GenerateCodeBook(BuildTree(ft))

	buf := bytes.NewBuffer(out)
	_ = pack(buf, len(data), func(i int) Code {
		code, _ := cb.Code(data[i])
		return code
	})

	return buf.Bytes()
}

// Decode reverses Encode. It stops after the number of symbols recorded in
// the header, so padding and any trailing bytes are ignored. On error no
// output is returned.
func Decode(artifact []byte, opts ...DecodeOption) ([]byte, error) {
	o := decodeOptions{maxDecodedSize: DefaultMaxDecodedSize}
	for _, opt := range opts {
		opt(&o)
	}

	ft, off, err := ParseHeader(artifact)
	if err != nil {
		return nil, err
	}
	total, ok := ft.TotalCount()
	if !ok {
		return nil, fmt.Errorf("%w: symbol count overflows", ErrCorruptHeader)
	}
	if total > o.maxDecodedSize || total > math.MaxInt {
		return nil, fmt.Errorf("%w: header announces %d bytes, limit is %d", ErrOutputTooLarge, total, o.maxDecodedSize)
	}
	if total == 0 {
		return []byte{}, nil
	}

	t := BuildTree(ft)

	// A lone symbol has the empty code, the payload carries nothing.
	if t.RootIsLeaf() {
		return bytes.Repeat([]byte{t.nodes[t.root].symbol}, int(total)), nil
	}

	// Every code is at least one bit long here.
	payload := artifact[off:]
	if total > 8*uint64(len(payload)) {
		return nil, fmt.Errorf("%w: %d symbols announced, payload holds at most %d", ErrTruncatedPayload, total, 8*len(payload))
	}

	out := make([]byte, 0, total)
	br := newBitReader(payload)
	for uint64(len(out)) < total {
		n := &t.nodes[t.root]
		for !n.isLeaf() {
			bit, err := br.ReadBit()
			if err != nil {
				return nil, fmt.Errorf("%w: decoded %d of %d symbols", ErrTruncatedPayload, len(out), total)
			}
			if bit {
				n = &t.nodes[n.right]
			} else {
				n = &t.nodes[n.left]
			}
		}
		out = append(out, n.symbol)
	}

	return out, nil
}
