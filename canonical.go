package huffman

import (
	"sort"

	"github.com/chronos-tachyon/assert"
)

// BuildCanonical is like Build, but reassigns the codewords to form a
// canonical Huffman code: each symbol keeps the bit length Build chose, and
// codes of equal length are consecutive integers in Symbol order.  The
// returned Tree is rebuilt from the canonical codes so that it decodes what
// the CodeTable encodes.
func BuildCanonical(frequencies []FrequencyEntry) (*Tree, *CodeTable, error) {
	tree, table, err := Build(frequencies)
	if err != nil {
		return nil, nil, err
	}
	if tree.NumSymbols() == 1 {
		return tree, table, nil
	}

	canonicalize(table)
	return treeFromCodes(tree, table), table, nil
}

// canonicalize overwrites every entry's Code.Bits, keeping Code.Size, per the
// algorithm at
// <https://en.wikipedia.org/w/index.php?title=Canonical_Huffman_code&oldid=999983137>.
func canonicalize(table *CodeTable) {
	// Step 1: sort the entries by (Size, Symbol) ascending.

	sorted := make(bySize, len(table.entries))
	for index, entry := range table.entries {
		sorted[index] = indexAndSize{index, entry.symbol, entry.code.Size}
	}
	sorted.Sort()

	// Step 2: assign the codes sequentially.

	lastSize := sorted[0].size
	nextCode := uint64(0)
	for _, item := range sorted {
		if item.size > lastSize {
			nextCode <<= (item.size - lastSize)
			lastSize = item.size
		}
		table.entries[item.index].code.Bits = nextCode
		nextCode++
	}
}

// treeFromCodes builds a new arena whose leaves are copied from old and whose
// internal nodes follow the codes in table.
func treeFromCodes(old *Tree, table *CodeTable) *Tree {
	numSymbols := old.NumSymbols()
	nodes := make([]node, numSymbols, 2*numSymbols-1)
	copy(nodes, old.nodes[:numSymbols])

	root := int32(len(nodes))
	nodes = append(nodes, node{symbol: InvalidSymbol, left: noChild, right: noChild})

	for leaf, entry := range table.entries {
		hc := entry.code
		freq := nodes[leaf].freq
		cur := root
		for i := byte(0); i < hc.Size; i++ {
			nodes[cur].freq = saturatingAdd(nodes[cur].freq, freq)

			right := hc.Bit(i) != 0
			child := nodes[cur].left
			if right {
				child = nodes[cur].right
			}

			if i == hc.Size-1 {
				assert.Assertf(child == noChild, "code %s for symbol %d collides with another code", hc, entry.symbol)
				nodes[cur].setChild(right, int32(leaf))
				break
			}

			if child == noChild {
				child = int32(len(nodes))
				nodes = append(nodes, node{symbol: InvalidSymbol, left: noChild, right: noChild})
				nodes[cur].setChild(right, child)
			}
			assert.Assertf(!isLeafIndex(child, numSymbols), "code %s for symbol %d extends another code", hc, entry.symbol)
			cur = child
		}
	}

	assert.Assertf(len(nodes) == 2*numSymbols-1, "arena holds %d nodes, expected %d", len(nodes), 2*numSymbols-1)
	for index := numSymbols; index < len(nodes); index++ {
		n := nodes[index]
		assert.Assertf(n.left != noChild && n.right != noChild, "internal node %d is missing a child", index)
	}

	return &Tree{nodes: nodes, root: root}
}

func (n *node) setChild(right bool, index int32) {
	if right {
		n.right = index
	} else {
		n.left = index
	}
}

func isLeafIndex(index int32, numSymbols int) bool {
	return index >= 0 && int(index) < numSymbols
}

// type indexAndSize + type bySize {{{

type indexAndSize struct {
	index  int
	symbol Symbol
	size   byte
}

type bySize []indexAndSize

func (list bySize) Len() int {
	return len(list)
}

func (list bySize) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySize) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.size != b.size {
		return a.size < b.size
	}
	return a.symbol < b.symbol
}

func (list bySize) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = bySize(nil)

// }}}
