package pkg

import "container/heap"

// Huffman tree construction over a frequency table.
//
// Nodes live in a flat arena and refer to their children by index. Ties in
// frequency are broken by creation order: leaves are created in ascending
// byte order, internal nodes after them as they are merged. Two trees built
// from the same table are therefore identical.

const noChild = -1

type treeNode struct {
	symbol byte
	freq   uint64
	left   int
	right  int
}

func (n *treeNode) isLeaf() bool { return n.left == noChild }

type HuffmanTree struct {
	nodes []treeNode
	root  int
}

// Empty reports whether the tree has no symbols.
func (t *HuffmanTree) Empty() bool { return len(t.nodes) == 0 }

// Len returns the number of nodes, leaves and internal.
func (t *HuffmanTree) Len() int { return len(t.nodes) }

// RootIsLeaf reports the single-symbol case, where the root has no children
// and every symbol is coded with zero bits.
func (t *HuffmanTree) RootIsLeaf() bool {
	return !t.Empty() && t.nodes[t.root].isLeaf()
}

type nodeHeap struct {
	tree *HuffmanTree
	idx  []int
}

func (h nodeHeap) Len() int { return len(h.idx) }
func (h nodeHeap) Less(i, j int) bool {
	a, b := h.tree.nodes[h.idx[i]].freq, h.tree.nodes[h.idx[j]].freq
	if a != b {
		return a < b
	}
	// arena index doubles as creation sequence
	return h.idx[i] < h.idx[j]
}
func (h nodeHeap) Swap(i, j int) { h.idx[i], h.idx[j] = h.idx[j], h.idx[i] }
func (h *nodeHeap) Push(x interface{}) {
	h.idx = append(h.idx, x.(int))
}
func (h *nodeHeap) Pop() interface{} {
	old := h.idx
	n := len(old)
	i := old[n-1]
	h.idx = old[0 : n-1]
	return i
}

// BuildTree builds the Huffman tree for ft. Symbols with a zero count are
// left out. The first node taken from the queue becomes the left child.
func BuildTree(ft FrequencyTable) *HuffmanTree {
	syms := ft.Symbols()
	t := &HuffmanTree{root: noChild}
	if len(syms) == 0 {
		return t
	}
	t.nodes = make([]treeNode, 0, 2*len(syms)-1)

	h := &nodeHeap{tree: t, idx: make([]int, 0, len(syms))}
	for _, s := range syms {
		t.nodes = append(t.nodes, treeNode{symbol: s, freq: ft[s], left: noChild, right: noChild})
		h.idx = append(h.idx, len(t.nodes)-1)
	}
	heap.Init(h)

	for h.Len() > 1 {
		left := heap.Pop(h).(int)
		right := heap.Pop(h).(int)
		t.nodes = append(t.nodes, treeNode{
			freq:  t.nodes[left].freq + t.nodes[right].freq,
			left:  left,
			right: right,
		})
		heap.Push(h, len(t.nodes)-1)
	}

	t.root = heap.Pop(h).(int)
	return t
}
