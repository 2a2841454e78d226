package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTreeTwoSymbols(t *testing.T) {
	tree := BuildTree(BuildFrequencyTable([]byte("aaab")))
	require.Equal(t, 3, tree.Len())

	root := tree.nodes[tree.root]
	assert.Equal(t, uint64(4), root.freq)
	assert.False(t, root.isLeaf())

	// lowest frequency is taken first and goes left
	assert.Equal(t, byte('b'), tree.nodes[root.left].symbol)
	assert.Equal(t, byte('a'), tree.nodes[root.right].symbol)
}

func TestBuildTreeEmpty(t *testing.T) {
	tree := BuildTree(FrequencyTable{})
	assert.True(t, tree.Empty())
	assert.False(t, tree.RootIsLeaf())
}

func TestBuildTreeSingleSymbol(t *testing.T) {
	var ft FrequencyTable
	ft[0x41] = 1000
	tree := BuildTree(ft)
	require.True(t, tree.RootIsLeaf())
	assert.Equal(t, byte(0x41), tree.nodes[tree.root].symbol)
	assert.Equal(t, uint64(1000), tree.nodes[tree.root].freq)
}

func TestBuildTreeInternalNodes(t *testing.T) {
	tree := BuildTree(BuildFrequencyTable([]byte("abracadabra")))
	// five leaves, four merges
	assert.Equal(t, 9, tree.Len())

	for _, n := range tree.nodes {
		if n.isLeaf() {
			assert.Equal(t, noChild, n.right)
			continue
		}
		assert.NotEqual(t, noChild, n.right)
		assert.Equal(t, tree.nodes[n.left].freq+tree.nodes[n.right].freq, n.freq)
	}
	assert.Equal(t, uint64(11), tree.nodes[tree.root].freq)
}

func TestBuildTreeDeterministic(t *testing.T) {
	ft := BuildFrequencyTable([]byte("mississippi river banks are muddy in spring"))
	a := BuildTree(ft)
	b := BuildTree(ft)
	assert.Equal(t, a.nodes, b.nodes)
	assert.Equal(t, a.root, b.root)
}
