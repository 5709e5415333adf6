package metadata

import (
	"fmt"
	"math"
	"math/big"
	"sort"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/fxamacker/cbor/v2"
	"github.com/mr-tron/base58"
)

// Keys solc has written into the trailer over its history.
const (
	KeySolc         = "solc"
	KeyBzzr0        = "bzzr0"
	KeyBzzr1        = "bzzr1"
	KeyIPFS         = "ipfs"
	KeyExperimental = "experimental"
)

// SolcVersionLen is the width of the binary solc field (major, minor, patch).
const SolcVersionLen = 3

var knownKeys = map[string]struct{}{
	KeySolc:         {},
	KeyBzzr0:        {},
	KeyBzzr1:        {},
	KeyIPFS:         {},
	KeyExperimental: {},
}

// Summary is a typed view over a decoded trailer.
type Summary struct {
	Solc         string   `json:"solc,omitempty" yaml:"solc,omitempty"`
	SolcRaw      []byte   `json:"-" yaml:"-"`
	IPFS         string   `json:"ipfs,omitempty" yaml:"ipfs,omitempty"`
	Bzzr0        string   `json:"bzzr0,omitempty" yaml:"bzzr0,omitempty"`
	Bzzr1        string   `json:"bzzr1,omitempty" yaml:"bzzr1,omitempty"`
	Experimental bool     `json:"experimental,omitempty" yaml:"experimental,omitempty"`
	Unknown      []string `json:"unknown,omitempty" yaml:"unknown,omitempty"`
}

// SolcBytes returns the binary solc field when it has the release shape.
func (m Metadata) SolcBytes() ([]byte, bool) {
	raw, ok := m[KeySolc].([]byte)
	if !ok || len(raw) != SolcVersionLen {
		return nil, false
	}
	return raw, true
}

// Fields builds the typed view of m. Values with an unexpected shape are
// left empty rather than rejected.
func Fields(m Metadata) Summary {
	var s Summary
	if m == nil {
		return s
	}

	switch v := m[KeySolc].(type) {
	case []byte:
		s.SolcRaw = append([]byte(nil), v...)
		if len(v) == SolcVersionLen {
			s.Solc = fmt.Sprintf("%d.%d.%d", v[0], v[1], v[2])
		}
	case string:
		s.Solc = v
	}

	switch v := m[KeyIPFS].(type) {
	case []byte:
		s.IPFS = base58.Encode(v)
	case string:
		s.IPFS = v
	}

	s.Bzzr0 = hashString(m[KeyBzzr0])
	s.Bzzr1 = hashString(m[KeyBzzr1])

	if v, ok := m[KeyExperimental].(bool); ok {
		s.Experimental = v
	}

	for k := range m {
		if _, ok := knownKeys[k]; !ok {
			s.Unknown = append(s.Unknown, k)
		}
	}
	sort.Strings(s.Unknown)
	return s
}

func hashString(v any) string {
	switch h := v.(type) {
	case []byte:
		return hexutil.Encode(h)
	case string:
		return h
	default:
		return ""
	}
}

// Printable returns a deep copy of m that JSON and YAML encoders can render:
// byte strings become 0x-prefixed hex, map keys become strings and
// non-finite floats become their names.
func Printable(m Metadata) map[string]any {
	if m == nil {
		return nil
	}
	return printableMap(m)
}

func printableMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = printableValue(v)
	}
	return out
}

func printableValue(v any) any {
	switch t := v.(type) {
	case []byte:
		return hexutil.Encode(t)
	case Metadata:
		return printableMap(t)
	case map[string]any:
		return printableMap(t)
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[keyString(k)] = printableValue(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = printableValue(e)
		}
		return out
	case float64:
		return printableFloat(t)
	case float32:
		return printableFloat(float64(t))
	case big.Int:
		return t.String()
	case *big.Int:
		return t.String()
	case cbor.Tag:
		return map[string]any{"tag": t.Number, "content": printableValue(t.Content)}
	case cbor.ByteString:
		return hexutil.Encode([]byte(t))
	default:
		return v
	}
}

func printableFloat(f float64) any {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	default:
		return f
	}
}

// keyString renders a decoded map key as text.
func keyString(k any) string {
	switch t := k.(type) {
	case string:
		return t
	case cbor.ByteString:
		return hexutil.Encode([]byte(t))
	default:
		if f, ok := printableValue(k).(string); ok {
			return f
		}
		return fmt.Sprint(k)
	}
}
