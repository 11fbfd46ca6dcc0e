package huffman

import (
	"strings"

	"github.com/pkg/errors"
)

// BitBuffer is a fixed-capacity sequence of bits stored in a byte slice.
//
// Bit i lives in byte i>>3 at position i&7, where position 0 is the least
// significant bit of the byte.  A BitBuffer never grows; accesses at or past
// Cap() fail with ErrOutOfBounds.
type BitBuffer struct {
	data []byte
}

// NewBitBuffer returns a zeroed BitBuffer able to hold at least numBits bits.
func NewBitBuffer(numBits int) BitBuffer {
	if numBits < 0 {
		numBits = 0
	}
	return BitBuffer{data: make([]byte, (numBits+7)>>3)}
}

// WrapBitBuffer returns a BitBuffer backed by data.  The slice is not copied.
func WrapBitBuffer(data []byte) BitBuffer {
	return BitBuffer{data: data}
}

// Cap returns the capacity of this BitBuffer, in bits.
func (bb BitBuffer) Cap() int {
	return len(bb.data) << 3
}

// Bytes returns the backing slice.
func (bb BitBuffer) Bytes() []byte {
	return bb.data
}

// SetBit sets the index'th bit to 1.
func (bb BitBuffer) SetBit(index int) error {
	if err := bb.check(index); err != nil {
		return err
	}
	bb.data[index>>3] |= 1 << uint(index&7)
	return nil
}

// ClearBit sets the index'th bit to 0.
func (bb BitBuffer) ClearBit(index int) error {
	if err := bb.check(index); err != nil {
		return err
	}
	bb.data[index>>3] &^= 1 << uint(index&7)
	return nil
}

// Bit returns the index'th bit, either 0 or 1.
func (bb BitBuffer) Bit(index int) (byte, error) {
	if err := bb.check(index); err != nil {
		return 0, err
	}
	return (bb.data[index>>3] >> uint(index&7)) & 1, nil
}

// Format renders the bits in [start, end) as a string of '0' and '1'.
func (bb BitBuffer) Format(start, end int) (string, error) {
	if start > end {
		return "", errors.Wrapf(ErrOutOfBounds, "range [%d, %d) is reversed", start, end)
	}
	if start == end {
		return "", nil
	}
	if err := bb.check(start); err != nil {
		return "", err
	}
	if err := bb.check(end - 1); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(end - start)
	for index := start; index < end; index++ {
		bit, _ := bb.Bit(index)
		sb.WriteByte('0' + bit)
	}
	return sb.String(), nil
}

func (bb BitBuffer) check(index int) error {
	if index < 0 || index >= bb.Cap() {
		return errors.Wrapf(ErrOutOfBounds, "index %d, capacity %d bits", index, bb.Cap())
	}
	return nil
}
