package huffman

import (
	"io"
	mathbits "math/bits"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// MaxStreamBits is the largest bit length ReadEncodedStream will accept.
const MaxStreamBits = 1 << 36

// EncodedStream is the output of Encode: a BitBuffer plus the number of bits
// in it that are meaningful.
type EncodedStream struct {
	Buffer BitBuffer
	Len    int
}

// String renders the stream's bits as a string of '0' and '1'.
func (s EncodedStream) String() string {
	str, err := s.Buffer.Format(0, s.Len)
	if err != nil {
		return "<" + err.Error() + ">"
	}
	return str
}

// WriteTo writes the stream to w as a 64-bit big-endian bit count followed by
// the bits themselves, first bit in the most significant position of the
// first byte, padded with zeroes to a whole byte.
func (s EncodedStream) WriteTo(w io.Writer) (int64, error) {
	if s.Len < 0 || s.Len > s.Buffer.Cap() {
		return 0, errors.Wrapf(ErrOutOfBounds, "stream length %d bits, capacity %d bits", s.Len, s.Buffer.Cap())
	}

	bw := bitio.NewWriter(w)
	if err := bw.WriteBits(uint64(s.Len), 64); err != nil {
		return 0, errors.Wrap(err, "write stream length")
	}
	for index := 0; index < s.Len; index++ {
		bit, err := s.Buffer.Bit(index)
		if err != nil {
			return 0, err
		}
		if err := bw.WriteBool(bit != 0); err != nil {
			return 0, errors.Wrapf(err, "write bit %d", index)
		}
	}
	if err := bw.Close(); err != nil {
		return 0, errors.Wrap(err, "flush stream")
	}
	return int64(8 + (s.Len+7)>>3), nil
}

var _ io.WriterTo = EncodedStream{}

// ReadEncodedStream reads a stream written by EncodedStream.WriteTo.
func ReadEncodedStream(r io.Reader) (EncodedStream, error) {
	br := bitio.NewReader(r)
	length, err := br.ReadBits(64)
	if err != nil {
		return EncodedStream{}, readError(err, "read stream length")
	}
	if length > MaxStreamBits {
		return EncodedStream{}, errors.Wrapf(ErrOutOfBounds, "stream length %d bits exceeds %d", length, MaxStreamBits)
	}

	// Grow as bytes arrive; the header alone is not trusted for sizing.
	numBits := int(length)
	data := make([]byte, 0, readChunkBytes)
	for index := 0; index < numBits; index += 8 {
		n := numBits - index
		if n > 8 {
			n = 8
		}
		bits, err := br.ReadBits(uint8(n))
		if err != nil {
			return EncodedStream{}, readError(err, "read bits")
		}
		// Wire order puts the first bit in the MSB; BitBuffer wants it in the LSB.
		data = append(data, mathbits.Reverse8(byte(bits<<(8-n))))
	}
	return EncodedStream{Buffer: WrapBitBuffer(data), Len: numBits}, nil
}

// readChunkBytes is the initial buffer size for ReadEncodedStream.
const readChunkBytes = 512

func readError(err error, msg string) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return errors.Wrap(ErrTruncatedStream, msg)
	}
	return errors.Wrap(err, msg)
}
