package pkg

import "math/bits"

// NumSymbols is the size of the byte alphabet.
const NumSymbols = 256

// FrequencyTable holds the occurrence count of every byte value.
type FrequencyTable [NumSymbols]uint64

// BuildFrequencyTable counts every byte of data.
func BuildFrequencyTable(data []byte) FrequencyTable {
	var ft FrequencyTable
	for _, b := range data {
		ft[b]++
	}
	return ft
}

// TotalCount returns the sum of all counts. ok is false if the sum does not
// fit in a uint64, which only a forged header can cause.
func (ft *FrequencyTable) TotalCount() (total uint64, ok bool) {
	var carry uint64
	for _, f := range ft {
		total, carry = bits.Add64(total, f, 0)
		if carry != 0 {
			return 0, false
		}
	}
	return total, true
}

// Symbols returns the byte values with a non-zero count, ascending.
func (ft *FrequencyTable) Symbols() []byte {
	var syms []byte
	for i, f := range ft {
		if f != 0 {
			syms = append(syms, byte(i))
		}
	}
	return syms
}
