package pkg

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codeStrings(cb *CodeBook) map[byte]string {
	m := make(map[byte]string)
	for _, s := range cb.Symbols() {
		c, _ := cb.Code(s)
		m[s] = c.String()
	}
	return m
}

func TestGenerateCodeBook(t *testing.T) {
	cases := []struct {
		Input string
		Codes map[byte]string
	}{
		{"aaab", map[byte]string{'b': "0", 'a': "1"}},
		{"abcd", map[byte]string{'a': "00", 'b': "01", 'c': "10", 'd': "11"}},
		{"aaaabbc", map[byte]string{'a': "1", 'b': "01", 'c': "00"}},
	}
	for _, c := range cases {
		t.Run(c.Input, func(t *testing.T) {
			cb := GenerateCodeBook(BuildTree(BuildFrequencyTable([]byte(c.Input))))
			assert.Equal(t, c.Codes, codeStrings(cb))
		})
	}
}

func TestGenerateCodeBookSingleLeaf(t *testing.T) {
	cb := GenerateCodeBook(BuildTree(BuildFrequencyTable([]byte("zzzz"))))
	code, ok := cb.Code('z')
	require.True(t, ok)
	assert.Empty(t, code)

	_, ok = cb.Code('a')
	assert.False(t, ok)
}

func TestGenerateCodeBookEmpty(t *testing.T) {
	cb := GenerateCodeBook(BuildTree(FrequencyTable{}))
	assert.Empty(t, cb.Symbols())
}

func TestCodeBookPrefixFree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 20; round++ {
		var ft FrequencyTable
		for i := range ft {
			if rng.Intn(3) > 0 {
				ft[i] = uint64(rng.Intn(5000) + 1)
			}
		}
		cb := GenerateCodeBook(BuildTree(ft))
		syms := cb.Symbols()
		require.Equal(t, ft.Symbols(), syms)

		for _, x := range syms {
			cx, _ := cb.Code(x)
			for _, y := range syms {
				if x == y {
					continue
				}
				cy, _ := cb.Code(y)
				assert.False(t, cy.HasPrefix(cx), "code %s of %d prefixes %s of %d", cx, x, cy, y)
			}
		}
	}
}

func TestCodeBookDeterministic(t *testing.T) {
	ft := BuildFrequencyTable([]byte("she sells sea shells by the sea shore"))
	a := GenerateCodeBook(BuildTree(ft))
	b := GenerateCodeBook(BuildTree(ft))
	assert.Equal(t, codeStrings(a), codeStrings(b))
}

func TestCodeHasPrefix(t *testing.T) {
	c := Code{true, false, true}
	assert.True(t, c.HasPrefix(nil))
	assert.True(t, c.HasPrefix(Code{true, false}))
	assert.False(t, c.HasPrefix(Code{false}))
	assert.False(t, c.HasPrefix(Code{true, false, true, true}))
	assert.Equal(t, "101", c.String())
}
