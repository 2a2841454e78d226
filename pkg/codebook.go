package pkg

import "strings"

// Code is a variable-length bit string, one element per bit.
type Code []bool

func (c Code) String() string {
	var sb strings.Builder
	sb.Grow(len(c))
	for _, bit := range c {
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// HasPrefix reports whether p is a prefix of c.
func (c Code) HasPrefix(p Code) bool {
	if len(p) > len(c) {
		return false
	}
	for i := range p {
		if c[i] != p[i] {
			return false
		}
	}
	return true
}

// CodeBook maps byte values to their codes. Only symbols present in the
// tree have an entry.
type CodeBook struct {
	codes   [NumSymbols]Code
	present [NumSymbols]bool
}

// Code returns the code for b and whether b has one.
func (cb *CodeBook) Code(b byte) (Code, bool) {
	return cb.codes[b], cb.present[b]
}

// Symbols returns the coded byte values in ascending order.
func (cb *CodeBook) Symbols() []byte {
	var syms []byte
	for i, ok := range cb.present {
		if ok {
			syms = append(syms, byte(i))
		}
	}
	return syms
}

// GenerateCodeBook walks t, appending 0 for every left branch and 1 for
// every right branch. A root that is itself a leaf gets the empty code.
func GenerateCodeBook(t *HuffmanTree) *CodeBook {
	cb := &CodeBook{}
	if t.Empty() {
		return cb
	}
	cb.generate(t, t.root, nil)
	return cb
}

func (cb *CodeBook) generate(t *HuffmanTree, i int, prefix Code) {
	n := &t.nodes[i]
	if n.isLeaf() {
		cb.codes[n.symbol] = append(Code{}, prefix...)
		cb.present[n.symbol] = true
		return
	}

	next := append(append(Code{}, prefix...), false)
	cb.generate(t, n.left, next)

	next = append(append(Code{}, prefix...), true)
	cb.generate(t, n.right, next)
}
