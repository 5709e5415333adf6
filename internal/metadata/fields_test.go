package metadata

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/danmuck/solcver/internal/testutil/solcfixtures"
	"github.com/fxamacker/cbor/v2"
	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldsReleaseTrailer(t *testing.T) {
	m, _, err := Decode(solcfixtures.Solc070.Bytes())
	require.NoError(t, err)

	s := Fields(m)
	assert.Equal(t, "0.7.0", s.Solc)
	assert.Equal(t, []byte{0, 7, 0}, s.SolcRaw)
	assert.Empty(t, s.Unknown)
	require.NotEmpty(t, s.IPFS)
	assert.Equal(t, "Qm", s.IPFS[:2])

	raw, err := base58.Decode(s.IPFS)
	require.NoError(t, err)
	assert.Equal(t, m[KeyIPFS], raw)
}

func TestFieldsLegacySwarmTrailer(t *testing.T) {
	m, _, err := Decode(solcfixtures.Solc0426.Bytes())
	require.NoError(t, err)

	s := Fields(m)
	assert.Empty(t, s.Solc)
	assert.Equal(t, "0xb6817df49c1566ffc22f6e10f7b6810c64f515e307c157f5a240574f5ebb10c7", s.Bzzr0)
}

func TestFieldsTolerantShapes(t *testing.T) {
	s := Fields(Metadata{
		KeySolc:         "0.8.0-develop.2020.11.20",
		KeyBzzr1:        "already text",
		KeyExperimental: true,
		"zeta":          uint64(1),
		"alpha":         "x",
	})
	assert.Equal(t, "0.8.0-develop.2020.11.20", s.Solc)
	assert.Nil(t, s.SolcRaw)
	assert.Equal(t, "already text", s.Bzzr1)
	assert.True(t, s.Experimental)
	assert.Equal(t, []string{"alpha", "zeta"}, s.Unknown)

	s = Fields(Metadata{KeySolc: []byte{0, 5}, KeyExperimental: "yes"})
	assert.Empty(t, s.Solc)
	assert.Equal(t, []byte{0, 5}, s.SolcRaw)
	assert.False(t, s.Experimental)

	assert.Equal(t, Summary{}, Fields(nil))
}

func TestSolcBytes(t *testing.T) {
	raw, ok := Metadata{KeySolc: []byte{0, 5, 9}}.SolcBytes()
	require.True(t, ok)
	assert.Equal(t, []byte{0, 5, 9}, raw)

	_, ok = Metadata{KeySolc: "0.5.9"}.SolcBytes()
	assert.False(t, ok)
	_, ok = Metadata{KeySolc: []byte{0, 5, 9, 1}}.SolcBytes()
	assert.False(t, ok)
	_, ok = Metadata{}.SolcBytes()
	assert.False(t, ok)
}

func TestPrintable(t *testing.T) {
	in := Metadata{
		"solc":   []byte{0, 7, 0},
		"nested": map[string]any{"hash": []byte{0xab}},
		"list":   []any{[]byte{0x01}, "x"},
		"n":      uint64(3),
	}
	out := Printable(in)
	assert.Equal(t, map[string]any{
		"solc":   "0x000700",
		"nested": map[string]any{"hash": "0xab"},
		"list":   []any{"0x01", "x"},
		"n":      uint64(3),
	}, out)
	assert.Equal(t, []byte{0, 7, 0}, in["solc"], "input must be left untouched")
	assert.Nil(t, Printable(nil))
}

func TestPrintableNonFiniteAndKeys(t *testing.T) {
	in := Metadata{
		"nan":  math.NaN(),
		"inf":  math.Inf(1),
		"ninf": math.Inf(-1),
		"f":    1.5,
		"keys": map[any]any{uint64(7): []byte{0x01}, cbor.ByteString("\x0a"): "b"},
		"tag":  cbor.Tag{Number: 42, Content: []byte{0xff}},
	}
	out := Printable(in)
	assert.Equal(t, "NaN", out["nan"])
	assert.Equal(t, "+Inf", out["inf"])
	assert.Equal(t, "-Inf", out["ninf"])
	assert.Equal(t, 1.5, out["f"])
	assert.Equal(t, map[string]any{"7": "0x01", "0x0a": "b"}, out["keys"])
	assert.Equal(t, map[string]any{"tag": uint64(42), "content": "0xff"}, out["tag"])

	_, err := json.Marshal(out)
	assert.NoError(t, err)
}
