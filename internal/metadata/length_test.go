package metadata

import (
	"encoding/binary"
	"testing"

	"github.com/danmuck/solcver/internal/testutil/testlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mockLengths = []uint16{0, 0x20, 100, 137, 0xff, 0x201, 523, 0xffff}

func lengthSuffix(v uint16) []byte {
	buf := make([]byte, LengthFieldSize)
	binary.BigEndian.PutUint16(buf, v)
	return buf
}

func TestReadTrailingLength(t *testing.T) {
	testlog.Start(t)
	for _, v := range mockLengths {
		got, err := ReadTrailingLength(lengthSuffix(v))
		require.NoError(t, err)
		assert.Equal(t, int(v)+LengthFieldSize, got, "length %d", v)
	}
}

func TestReadTrailingLengthIgnoresLeadingBytes(t *testing.T) {
	testlog.Start(t)
	padding := []byte("testbuffer")
	for _, v := range mockLengths {
		buf := append(append([]byte(nil), padding...), lengthSuffix(v)...)
		got, err := ReadTrailingLength(buf)
		require.NoError(t, err)
		assert.Equal(t, int(v)+LengthFieldSize, got, "length %d", v)
	}
}

func TestReadTrailingLengthAllValues(t *testing.T) {
	for v := 0; v <= MaxPayloadLen; v++ {
		got, err := ReadTrailingLength(lengthSuffix(uint16(v)))
		if err != nil || got != v+LengthFieldSize {
			t.Fatalf("length %d: got=%d err=%v", v, got, err)
		}
	}
}

func TestReadTrailingLengthTruncated(t *testing.T) {
	testlog.Start(t)
	for _, buf := range [][]byte{nil, {}, {0x01}} {
		_, err := ReadTrailingLength(buf)
		require.ErrorIs(t, err, ErrTruncatedInput)
	}
}

func TestExtractPayload(t *testing.T) {
	testlog.Start(t)
	buf := []byte{0xde, 0xad, 0xa0, 0x01, 0x02, 0x00, 0x03}
	payload, err := ExtractPayload(buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xa0, 0x01, 0x02}, payload)

	payload[0] = 0xff
	assert.Equal(t, byte(0xa0), buf[2], "payload must not alias the input")
}

func TestExtractPayloadErrors(t *testing.T) {
	testlog.Start(t)

	_, err := ExtractPayload([]byte{0x07})
	require.ErrorIs(t, err, ErrTruncatedInput)

	_, err = ExtractPayload([]byte{0xa0, 0x00, 0x05})
	require.ErrorIs(t, err, ErrSectionTooLarge)

	_, err = ExtractPayload([]byte("This is no contract bytecode."))
	require.ErrorIs(t, err, ErrSectionTooLarge)

	_, err = ExtractPayload([]byte{0x60, 0x80, 0x00, 0x00})
	require.ErrorIs(t, err, ErrEmptyPayload)
}

func TestAppendTrailer(t *testing.T) {
	testlog.Start(t)
	code := []byte{0x60, 0x80}
	out, err := AppendTrailer(code, []byte{0xa0})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x60, 0x80, 0xa0, 0x00, 0x01}, out)
	assert.Equal(t, []byte{0x60, 0x80}, code)

	_, err = AppendTrailer(code, nil)
	require.ErrorIs(t, err, ErrEmptyPayload)

	_, err = AppendTrailer(code, make([]byte, MaxPayloadLen+1))
	require.ErrorIs(t, err, ErrPayloadTooLarge)

	out, err = AppendTrailer(nil, make([]byte, MaxPayloadLen))
	require.NoError(t, err)
	total, err := ReadTrailingLength(out)
	require.NoError(t, err)
	assert.Equal(t, len(out), total)
}
