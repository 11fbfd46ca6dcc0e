package huffman

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodedStream_WriteTo(t *testing.T) {
	c, err := NewCodec(abcFrequencies())
	require.NoError(t, err)
	stream, err := c.EncodeString("aabaccba")
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := stream.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(10), n)
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 12, 0xca, 0x90}, buf.Bytes())

	readBack, err := ReadEncodedStream(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, 12, readBack.Len)
	require.Equal(t, stream.String(), readBack.String())

	text, err := c.DecodeString(readBack)
	require.NoError(t, err)
	require.Equal(t, "aabaccba", text)
}

func TestEncodedStream_Empty(t *testing.T) {
	var buf bytes.Buffer
	n, err := EncodedStream{}.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(8), n)
	require.Equal(t, make([]byte, 8), buf.Bytes())

	readBack, err := ReadEncodedStream(&buf)
	require.NoError(t, err)
	require.Equal(t, 0, readBack.Len)
}

func TestReadEncodedStream_Errors(t *testing.T) {
	_, err := ReadEncodedStream(bytes.NewReader([]byte{0, 0, 0}))
	require.ErrorIs(t, err, ErrTruncatedStream)

	_, err = ReadEncodedStream(bytes.NewReader([]byte{0, 0, 0, 0, 0, 0, 0, 12, 0xca}))
	require.ErrorIs(t, err, ErrTruncatedStream)

	_, err = ReadEncodedStream(bytes.NewReader([]byte{0xff, 0, 0, 0, 0, 0, 0, 0}))
	require.ErrorIs(t, err, ErrOutOfBounds)

	_, err = EncodedStream{Len: 3}.WriteTo(&bytes.Buffer{})
	require.ErrorIs(t, err, ErrOutOfBounds)
}

func TestReadEncodedStream_HeaderDoesNotDriveAllocation(t *testing.T) {
	// 1<<33 bits announced, no payload.
	header := []byte{0, 0, 0, 2, 0, 0, 0, 0}

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	_, err := ReadEncodedStream(bytes.NewReader(header))
	runtime.ReadMemStats(&after)

	require.ErrorIs(t, err, ErrTruncatedStream)
	require.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(1<<20))
}

func TestReadEncodedStream_PartialByte(t *testing.T) {
	// 11 bits: "10110011" "101", padded with zeroes.
	raw := []byte{0, 0, 0, 0, 0, 0, 0, 11, 0xb3, 0xa0}
	stream, err := ReadEncodedStream(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Equal(t, 11, stream.Len)
	require.Equal(t, "10110011101", stream.String())
	require.Equal(t, []byte{0xcd, 0x05}, stream.Buffer.Bytes())
}
