package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
	logging "github.com/op/go-logging"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// Tree is a Huffman code tree.  All nodes live in a single arena; children
// are referenced by arena index.  Leaves occupy indices 0 .. NumSymbols()-1 in
// ascending Symbol order.
//
// A Tree is immutable once built and may be shared between goroutines.
type Tree struct {
	nodes []node
	root  int32
}

type node struct {
	freq   uint32
	symbol Symbol
	left   int32
	right  int32
}

const noChild = int32(-1)

func (n node) isLeaf() bool {
	return n.left == noChild
}

// NumSymbols returns the number of leaves in the tree.
func (t *Tree) NumSymbols() int {
	if t == nil {
		return 0
	}
	return (len(t.nodes) + 1) / 2
}

// Weight returns the frequency of the root, i.e. the (saturated) sum of all
// symbol frequencies.
func (t *Tree) Weight() uint32 {
	if t == nil || len(t.nodes) == 0 {
		return 0
	}
	return t.nodes[t.root].freq
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer, one node per line in arena order.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	if t != nil && len(t.nodes) != 0 {
		fmt.Fprintf(&buf, "\tRoot() = %d\n", t.root)
		for index, n := range t.nodes {
			if n.isLeaf() {
				fmt.Fprintf(&buf, "\t%d: leaf{symbol: %d, freq: %d}\n", index, n.symbol, n.freq)
			} else {
				fmt.Fprintf(&buf, "\t%d: node{left: %d, right: %d, freq: %d}\n", index, n.left, n.right, n.freq)
			}
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Build constructs the Huffman tree for the given symbol frequencies and
// derives a codeword for every symbol.
//
// The list is sorted by Symbol before use and may not contain the same Symbol
// twice.  Symbols with a frequency of 0 are still assigned a codeword.  With a
// single symbol, that symbol is assigned the 1-bit code "0".
func Build(frequencies []FrequencyEntry) (*Tree, *CodeTable, error) {
	sorted, err := sortFrequencies(frequencies)
	if err != nil {
		return nil, nil, err
	}

	var b treeBuilder
	b.init(sorted)
	if err := b.merge(); err != nil {
		return nil, nil, err
	}

	tree := b.finish()
	table, err := newCodeTable(tree)
	if err != nil {
		return nil, nil, err
	}
	return tree, table, nil
}

func sortFrequencies(frequencies []FrequencyEntry) ([]FrequencyEntry, error) {
	if len(frequencies) == 0 {
		return nil, ErrEmptyAlphabet
	}
	if len(frequencies) > int(MaxSymbol)/2 {
		return nil, errors.Wrapf(ErrCodeTooLong, "%d symbols", len(frequencies))
	}

	sorted := make([]FrequencyEntry, len(frequencies))
	copy(sorted, frequencies)
	slices.SortStableFunc(sorted, func(a, b FrequencyEntry) int {
		return compareSymbols(a.Symbol, b.Symbol)
	})

	for index, entry := range sorted {
		if entry.Symbol < 0 {
			return nil, errors.Wrapf(ErrInvalidSymbol, "symbol %d", entry.Symbol)
		}
		if index > 0 && sorted[index-1].Symbol == entry.Symbol {
			return nil, errors.Wrapf(ErrDuplicateSymbol, "symbol %d", entry.Symbol)
		}
	}
	return sorted, nil
}

func compareSymbols(a, b Symbol) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// type treeBuilder {{{

// nodeRef is what the builder keeps in its heap: a pointer into the arena
// plus a copy of the node's frequency.
type nodeRef struct {
	freq  uint32
	index int32
}

type byFrequency struct{}

func (byFrequency) Compare(a, b nodeRef) int {
	switch {
	case a.freq < b.freq:
		return -1
	case a.freq > b.freq:
		return 1
	default:
		return 0
	}
}

var _ Comparator[nodeRef] = byFrequency{}

type treeBuilder struct {
	nodes      []node
	heap       *MinHeap[nodeRef, byFrequency]
	numSymbols int
}

func (b *treeBuilder) init(sorted []FrequencyEntry) {
	numSymbols := len(sorted)
	*b = treeBuilder{
		nodes:      make([]node, 0, 2*numSymbols-1),
		heap:       NewMinHeap[nodeRef](byFrequency{}, numSymbols),
		numSymbols: numSymbols,
	}
	for _, entry := range sorted {
		b.push(node{freq: entry.Freq, symbol: entry.Symbol, left: noChild, right: noChild})
	}
}

func (b *treeBuilder) push(n node) {
	index := int32(len(b.nodes))
	b.nodes = append(b.nodes, n)
	b.heap.Insert(nodeRef{freq: n.freq, index: index})
}

// merge repeatedly pops the two least frequent nodes a and b and replaces
// them with a new internal node whose left child is a and right child is b.
func (b *treeBuilder) merge() error {
	for b.heap.Len() > 1 {
		x, err := b.heap.ExtractMin()
		if err != nil {
			return err
		}
		y, err := b.heap.ExtractMin()
		if err != nil {
			return err
		}

		b.push(node{
			freq:   saturatingAdd(x.freq, y.freq),
			symbol: InvalidSymbol,
			left:   x.index,
			right:  y.index,
		})

		if log.IsEnabledFor(logging.DEBUG) {
			log.Debugf("merged %d + %d -> %d; heap: %s", x.freq, y.freq, saturatingAdd(x.freq, y.freq), b.heapString())
		}
	}
	return nil
}

func (b *treeBuilder) finish() *Tree {
	root, err := b.heap.ExtractMin()
	assert.Assertf(err == nil, "heap empty after merging %d symbols", b.numSymbols)
	assert.Assertf(len(b.nodes) == 2*b.numSymbols-1, "arena holds %d nodes, expected %d", len(b.nodes), 2*b.numSymbols-1)
	return &Tree{nodes: b.nodes, root: root.index}
}

func (b *treeBuilder) heapString() string {
	parts := make([]string, len(b.heap.list))
	for index, ref := range b.heap.list {
		parts[index] = fmt.Sprint(ref.freq)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// }}}
