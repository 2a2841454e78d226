package pkg

import (
	"fmt"
	"strconv"
)

// Artifact layout: 256 counts in byte-value order, each as decimal text
// followed by Delimiter, then the packed payload up to end of input.

// Delimiter terminates every header field. It never occurs in decimal text.
const Delimiter byte = 0xFE

// AppendHeader appends the serialized frequency table to dst.
func AppendHeader(dst []byte, ft *FrequencyTable) []byte {
	for _, f := range ft {
		dst = strconv.AppendUint(dst, f, 10)
		dst = append(dst, Delimiter)
	}
	return dst
}

type headerScanner struct {
	data  []byte
	pos   int
	field int
}

func (s *headerScanner) next() (uint64, error) {
	start := s.pos
	for s.pos < len(s.data) && s.data[s.pos] != Delimiter {
		c := s.data[s.pos]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: field %d: unexpected byte %#02x at offset %d", ErrCorruptHeader, s.field, c, s.pos)
		}
		s.pos++
	}
	if s.pos == len(s.data) {
		return 0, fmt.Errorf("%w: field %d: missing delimiter", ErrCorruptHeader, s.field)
	}
	digits := s.data[start:s.pos]
	s.pos++
	if len(digits) == 0 {
		return 0, fmt.Errorf("%w: field %d: empty", ErrCorruptHeader, s.field)
	}
	v, err := strconv.ParseUint(string(digits), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: field %d: %v", ErrCorruptHeader, s.field, err)
	}
	s.field++
	return v, nil
}

// ParseHeader reads the frequency table at the start of artifact and returns
// it with the offset of the first payload byte.
func ParseHeader(artifact []byte) (FrequencyTable, int, error) {
	var ft FrequencyTable
	s := &headerScanner{data: artifact}
	for i := range ft {
		v, err := s.next()
		if err != nil {
			return FrequencyTable{}, 0, err
		}
		ft[i] = v
	}
	return ft, s.pos, nil
}
