package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// CodeTable maps each Symbol of an alphabet to its Code.  Entries are kept
// sorted by Symbol; Lookup is a binary search.
//
// A CodeTable is immutable once built and may be shared between goroutines.
type CodeTable struct {
	entries []codeEntry
	minSize byte
	maxSize byte
}

type codeEntry struct {
	symbol Symbol
	code   Code
}

// newCodeTable walks the tree depth-first, left before right, and records the
// root-to-leaf path of every leaf.
func newCodeTable(tree *Tree) (*CodeTable, error) {
	numSymbols := tree.NumSymbols()
	entries := make([]codeEntry, numSymbols)

	// A lone leaf has an empty path; give it the code "0" instead.
	if root := tree.nodes[tree.root]; root.isLeaf() {
		entries[tree.root] = codeEntry{root.symbol, MakeCode(1, 0)}
		return &CodeTable{entries: entries, minSize: 1, maxSize: 1}, nil
	}

	type stackItem struct {
		index int32
		code  Code
	}

	stack := make([]stackItem, 0, log2uint32(uint32(numSymbols))+1)
	stack = append(stack, stackItem{index: tree.root})

	var minSize, maxSize byte
	var hasMinMax bool

	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := tree.nodes[top.index]
		if n.isLeaf() {
			size := top.code.Size
			entries[top.index] = codeEntry{n.symbol, top.code}
			if !hasMinMax {
				hasMinMax = true
				minSize, maxSize = size, size
			} else if minSize > size {
				minSize = size
			} else if maxSize < size {
				maxSize = size
			}
			continue
		}

		assert.Assertf(n.right != noChild, "internal node %d has no right child", top.index)
		if top.code.Size >= MaxCodeSize {
			return nil, errors.Wrapf(ErrCodeTooLong, "tree deeper than %d bits", MaxCodeSize)
		}

		// Push right first so that the left subtree is visited first.
		stack = append(stack, stackItem{n.right, top.code.Append(1)})
		stack = append(stack, stackItem{n.left, top.code.Append(0)})
	}

	return &CodeTable{entries: entries, minSize: minSize, maxSize: maxSize}, nil
}

// Lookup returns the Code for symbol.  It returns ErrUnknownSymbol if symbol
// is not part of the alphabet.
func (t *CodeTable) Lookup(symbol Symbol) (Code, error) {
	if t != nil {
		index, found := slices.BinarySearchFunc(t.entries, symbol, func(entry codeEntry, target Symbol) int {
			return compareSymbols(entry.symbol, target)
		})
		if found {
			return t.entries[index].code, nil
		}
	}
	return Code{}, errors.Wrapf(ErrUnknownSymbol, "symbol %d", symbol)
}

// Len returns the number of symbols in the alphabet.
func (t *CodeTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// MinSize is the bit length of the shortest code.
func (t *CodeTable) MinSize() byte {
	if t == nil {
		return 0
	}
	return t.minSize
}

// MaxSize is the bit length of the longest code.
func (t *CodeTable) MaxSize() byte {
	if t == nil {
		return 0
	}
	return t.maxSize
}

// FixedWidthSize is the bit length a fixed-width code would need for this
// alphabet.
func (t *CodeTable) FixedWidthSize() byte {
	return fixedWidthSize(t.Len())
}

// Symbols returns the alphabet in ascending order.
func (t *CodeTable) Symbols() []Symbol {
	out := make([]Symbol, t.Len())
	for index := range out {
		out[index] = t.entries[index].symbol
	}
	return out
}

// SizeBySymbol returns the bit length of each Symbol's code.
func (t *CodeTable) SizeBySymbol() map[Symbol]byte {
	out := make(map[Symbol]byte, t.Len())
	for index := 0; index < t.Len(); index++ {
		entry := t.entries[index]
		out[entry.symbol] = entry.code.Size
	}
	return out
}

// WeightedSize returns the number of bits needed to encode a text whose
// histogram is frequencies.
func (t *CodeTable) WeightedSize(frequencies []FrequencyEntry) (uint64, error) {
	var total uint64
	for _, entry := range frequencies {
		hc, err := t.Lookup(entry.Symbol)
		if err != nil {
			return 0, err
		}
		total += uint64(hc.Size) * uint64(entry.Freq)
	}
	return total, nil
}

// String returns a short human-readable description of this CodeTable.
func (t *CodeTable) String() string {
	return fmt.Sprintf("(Huffman code with %d symbols, with coded lengths of %d .. %d bits)", t.Len(), t.MinSize(), t.MaxSize())
}

var _ fmt.Stringer = (*CodeTable)(nil)

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.
func (t *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", t.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", t.MaxSize())
	for index := 0; index < t.Len(); index++ {
		entry := t.entries[index]
		fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", entry.symbol, entry.code)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
