package metadata

import "fmt"

// Decode extracts the trailer at the tail of buf and decodes it. The raw
// payload bytes are returned alongside the mapping.
//
// Extraction errors are returned unchanged. A payload that is not valid CBOR,
// carries trailing bytes, or whose root is not a map fails with
// ErrMalformedMetadata.
func Decode(buf []byte) (Metadata, []byte, error) {
	payload, err := ExtractPayload(buf)
	if err != nil {
		return nil, nil, err
	}
	m, err := decodePayload(payload)
	if err != nil {
		return nil, nil, err
	}
	return m, payload, nil
}

func decodePayload(payload []byte) (Metadata, error) {
	var root any
	if err := decMode.Unmarshal(payload, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMetadata, err)
	}
	raw, ok := root.(map[any]any)
	if !ok {
		return nil, fmt.Errorf("%w: root is %T, not a map", ErrMalformedMetadata, root)
	}
	return fromRoot(raw), nil
}

// fromRoot keys the root map by string. Non-text keys are kept under their
// rendered form unless a text key of the same spelling already exists.
func fromRoot(raw map[any]any) Metadata {
	m := make(Metadata, len(raw))
	var rest []any
	for k, v := range raw {
		if s, ok := k.(string); ok {
			m[s] = v
			continue
		}
		rest = append(rest, k)
	}
	for _, k := range rest {
		name := keyString(k)
		if _, taken := m[name]; !taken {
			m[name] = raw[k]
		}
	}
	return m
}

// Encode returns the deterministic CBOR encoding of m.
func Encode(m Metadata) ([]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil mapping", ErrMalformedMetadata)
	}
	return encMode.Marshal(map[string]any(m))
}

// Seal encodes m and appends it, with its length suffix, to code.
func Seal(code []byte, m Metadata) ([]byte, error) {
	payload, err := Encode(m)
	if err != nil {
		return nil, err
	}
	return AppendTrailer(code, payload)
}
