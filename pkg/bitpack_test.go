package pkg

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func bitsOf(s string) Code {
	c := make(Code, len(s))
	for i := range s {
		c[i] = s[i] == '1'
	}
	return c
}

func TestPack(t *testing.T) {
	cases := []struct {
		Codes []string
		E     string
	}{
		{[]string{"1", "01"}, "\xa0"},
		{[]string{"1111", "0000"}, "\xf0"},
		{[]string{"10100101", "1"}, "\xa5\x80"},
		{[]string{"", "0", ""}, "\x00"},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%v", c.Codes), func(t *testing.T) {
			codes := make([]Code, len(c.Codes))
			for i, s := range c.Codes {
				codes[i] = bitsOf(s)
			}
			assert.Equal(t, c.E, string(Pack(codes)))
		})
	}
}

func TestPackEmpty(t *testing.T) {
	assert.Empty(t, Pack(nil))
	assert.Empty(t, Pack([]Code{{}, {}}))
}

func TestPackPadding(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for round := 0; round < 50; round++ {
		var codes []Code
		nbits := 0
		for i := rng.Intn(40) + 1; i > 0; i-- {
			c := make(Code, rng.Intn(13))
			for j := range c {
				c[j] = rng.Intn(2) == 1
			}
			nbits += len(c)
			codes = append(codes, c)
		}

		packed := Pack(codes)
		assert.Equal(t, (nbits+7)/8, len(packed))

		bits := Unpack(packed)
		assert.Zero(t, len(bits)%8)

		var want Code
		for _, c := range codes {
			want = append(want, c...)
		}
		assert.Equal(t, want.String(), bits[:nbits].String())
		for _, pad := range bits[nbits:] {
			assert.False(t, pad)
		}
	}
}

func TestUnpack(t *testing.T) {
	assert.Equal(t, "1010010100000001", Unpack([]byte{0xa5, 0x01}).String())
	assert.Empty(t, Unpack(nil))
}
