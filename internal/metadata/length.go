package metadata

import "encoding/binary"

// LengthFieldSize is the width of the big-endian length suffix.
const LengthFieldSize = 2

// MaxPayloadLen is the largest payload the length suffix can describe.
const MaxPayloadLen = 0xffff

// ReadTrailingLength returns the total section length (payload plus the
// length field itself) claimed by the last two bytes of buf.
//
// The result is not checked against len(buf) so the reader stays usable on
// short diagnostic buffers.
func ReadTrailingLength(buf []byte) (int, error) {
	if len(buf) < LengthFieldSize {
		return 0, ErrTruncatedInput
	}
	l := binary.BigEndian.Uint16(buf[len(buf)-LengthFieldSize:])
	return int(l) + LengthFieldSize, nil
}

// ExtractPayload returns a copy of the metadata payload at the tail of buf.
// Bytes before the section are ignored.
func ExtractPayload(buf []byte) ([]byte, error) {
	total, err := ReadTrailingLength(buf)
	if err != nil {
		return nil, err
	}
	if total > len(buf) {
		return nil, ErrSectionTooLarge
	}
	if total == LengthFieldSize {
		return nil, ErrEmptyPayload
	}
	start := len(buf) - total
	end := len(buf) - LengthFieldSize
	payload := make([]byte, end-start)
	copy(payload, buf[start:end])
	return payload, nil
}

// AppendTrailer returns code followed by payload and its length suffix. code
// is not modified.
func AppendTrailer(code, payload []byte) ([]byte, error) {
	if len(payload) == 0 {
		return nil, ErrEmptyPayload
	}
	if len(payload) > MaxPayloadLen {
		return nil, ErrPayloadTooLarge
	}
	out := make([]byte, 0, len(code)+len(payload)+LengthFieldSize)
	out = append(out, code...)
	out = append(out, payload...)
	out = binary.BigEndian.AppendUint16(out, uint16(len(payload)))
	return out, nil
}
