package huffman

import (
	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// Encode encodes text using table.  It returns ErrUnknownSymbol if text
// contains a Symbol outside the table's alphabet; no partial output is
// returned in that case.
func Encode(table *CodeTable, text []Symbol) (EncodedStream, error) {
	if len(text) == 0 {
		return EncodedStream{}, nil
	}

	buf := NewBitBuffer(len(text) * int(table.MaxSize()))
	cursor := 0
	for pos, symbol := range text {
		hc, err := table.Lookup(symbol)
		if err != nil {
			return EncodedStream{}, errors.Wrapf(err, "position %d", pos)
		}
		for i := byte(0); i < hc.Size; i++ {
			if hc.Bit(i) != 0 {
				if err := buf.SetBit(cursor); err != nil {
					return EncodedStream{}, err
				}
			}
			cursor++
		}
	}

	data := buf.Bytes()[:(cursor+7)>>3]
	return EncodedStream{Buffer: WrapBitBuffer(data), Len: cursor}, nil
}

// Decode decodes stream by walking tree from the root once per Symbol.
//
// It returns ErrTruncatedStream if the stream ends in the middle of a
// codeword, and ErrOutOfBounds if stream.Len exceeds the buffer's capacity.
func Decode(tree *Tree, stream EncodedStream) ([]Symbol, error) {
	if stream.Len < 0 || stream.Len > stream.Buffer.Cap() {
		return nil, errors.Wrapf(ErrOutOfBounds, "stream length %d bits, capacity %d bits", stream.Len, stream.Buffer.Cap())
	}
	out := make([]Symbol, 0, stream.Len)
	if stream.Len == 0 {
		return out, nil
	}
	if tree.NumSymbols() == 0 {
		return nil, errors.Wrap(ErrInvalidCodeword, "no tree to decode with")
	}

	cursor := 0
	for cursor < stream.Len {
		start := cursor
		index := tree.root
		n := tree.nodes[index]

		// A lone leaf is coded as a single 0 bit.
		if n.isLeaf() {
			bit, err := stream.Buffer.Bit(cursor)
			if err != nil {
				return nil, err
			}
			if bit != 0 {
				return nil, errors.Wrapf(ErrInvalidCodeword, "bit %d", cursor)
			}
			cursor++
			out = append(out, n.symbol)
			continue
		}

		for !n.isLeaf() {
			assert.Assertf(n.right != noChild, "internal node %d has no right child", index)
			if cursor >= stream.Len {
				return nil, errors.Wrapf(ErrTruncatedStream, "codeword starting at bit %d", start)
			}
			bit, err := stream.Buffer.Bit(cursor)
			if err != nil {
				return nil, err
			}
			cursor++
			if bit == 0 {
				index = n.left
			} else {
				index = n.right
			}
			n = tree.nodes[index]
		}
		out = append(out, n.symbol)
	}
	return out, nil
}

// Codec bundles a Tree with its CodeTable.  A Codec is immutable and may be
// used from multiple goroutines at once.
type Codec struct {
	tree  *Tree
	table *CodeTable
}

// NewCodec builds a Codec for the given symbol frequencies.  See Build.
func NewCodec(frequencies []FrequencyEntry) (*Codec, error) {
	tree, table, err := Build(frequencies)
	if err != nil {
		return nil, err
	}
	return &Codec{tree: tree, table: table}, nil
}

// NewCanonicalCodec builds a Codec using canonical codes.  See
// BuildCanonical.
func NewCanonicalCodec(frequencies []FrequencyEntry) (*Codec, error) {
	tree, table, err := BuildCanonical(frequencies)
	if err != nil {
		return nil, err
	}
	return &Codec{tree: tree, table: table}, nil
}

// Tree returns the Codec's Tree.
func (c *Codec) Tree() *Tree {
	return c.tree
}

// Table returns the Codec's CodeTable.
func (c *Codec) Table() *CodeTable {
	return c.table
}

// Encode encodes text.  See Encode.
func (c *Codec) Encode(text []Symbol) (EncodedStream, error) {
	return Encode(c.table, text)
}

// Decode decodes stream.  See Decode.
func (c *Codec) Decode(stream EncodedStream) ([]Symbol, error) {
	return Decode(c.tree, stream)
}

// EncodeString encodes the runes of str.
func (c *Codec) EncodeString(str string) (EncodedStream, error) {
	return c.Encode(SymbolsFromString(str))
}

// DecodeString decodes stream into a string of runes.
func (c *Codec) DecodeString(stream EncodedStream) (string, error) {
	text, err := c.Decode(stream)
	if err != nil {
		return "", err
	}
	return StringFromSymbols(text), nil
}
