package huffman

import (
	"fmt"
	"strconv"
)

// MaxCodeSize is the largest number of bits a Code can hold.
const MaxCodeSize = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The first bit is the most
	// significant of the Size low-order bits, so the Code "01" has Bits 1.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// Bit returns the index'th bit of this Code, counting from the first.
func (hc Code) Bit(index byte) byte {
	return byte(hc.Bits>>(hc.Size-1-index)) & 1
}

// Append returns this Code extended by one bit.
func (hc Code) Append(bit byte) Code {
	return MakeCode(hc.Size+1, (hc.Bits<<1)|uint64(bit&1))
}

// HasPrefix reports whether prefix is a leading subsequence of this Code.
// Every Code has the empty Code as a prefix, and every Code is a prefix of
// itself.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Bits>>(hc.Size-prefix.Size) == prefix.Bits
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}
