package huffman

import (
	"github.com/pkg/errors"
)

var (
	// ErrEmptyAlphabet is returned by Build when no symbols are given.
	ErrEmptyAlphabet = errors.New("huffman: empty alphabet")

	// ErrEmptyHeap is returned by MinHeap.ExtractMin when the heap holds
	// no elements.
	ErrEmptyHeap = errors.New("huffman: extract from empty heap")

	// ErrUnknownSymbol is returned when a symbol outside the alphabet is
	// looked up or encoded.
	ErrUnknownSymbol = errors.New("huffman: unknown symbol")

	// ErrOutOfBounds is returned by BitBuffer for accesses past its
	// capacity.
	ErrOutOfBounds = errors.New("huffman: bit index out of bounds")

	// ErrTruncatedStream is returned by Decode when the stream ends in the
	// middle of a codeword.
	ErrTruncatedStream = errors.New("huffman: truncated stream")

	// ErrInvalidCodeword is returned by Decode when the stream holds a bit
	// sequence that no symbol is assigned to.
	ErrInvalidCodeword = errors.New("huffman: invalid codeword")

	// ErrDuplicateSymbol is returned by Build when a symbol is listed more
	// than once.
	ErrDuplicateSymbol = errors.New("huffman: duplicate symbol")

	// ErrInvalidSymbol is returned by Build for negative symbols.
	ErrInvalidSymbol = errors.New("huffman: invalid symbol")

	// ErrCodeTooLong is returned by Build when some codeword would need
	// more than MaxCodeSize bits.
	ErrCodeTooLong = errors.New("huffman: codeword exceeds maximum size")
)
