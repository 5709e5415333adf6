package solcver

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEraText(t *testing.T) {
	for _, e := range []Era{EraAbsent, EraUnrecorded, EraExact} {
		b, err := e.MarshalText()
		require.NoError(t, err)

		var back Era
		require.NoError(t, back.UnmarshalText(b))
		assert.Equal(t, e, back)
	}
	assert.Equal(t, "era(9)", Era(9).String())

	var e Era
	assert.Error(t, e.UnmarshalText([]byte("ancient")))
}

func TestErasTableIsContiguous(t *testing.T) {
	eras := Eras()
	require.Len(t, eras, 3)

	b, err := json.Marshal(eras[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"era":"absent","range":"<0.4.7","description":"no metadata trailer, or a trailer that does not decode"}`, string(b))

	probes := []string{"0.1.0", "0.4.6", "0.4.7", "0.5.8", "0.5.9", "0.8.26"}
	for _, v := range probes {
		matches := 0
		for _, info := range eras {
			ok, err := Satisfies(info.Range, v)
			require.NoError(t, err)
			if ok {
				matches++
			}
		}
		assert.Equal(t, 1, matches, "version %s must fall in exactly one era", v)
	}
}

func TestSatisfies(t *testing.T) {
	ok, err := Satisfies(UnrecordedRange, "v0.5.8")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Satisfies(UnrecordedRange, "0.5.9")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = Satisfies("0.7.0", "0.7")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = Satisfies("~~nope", "0.7.0")
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = Satisfies(AbsentRange, "latest")
	assert.ErrorIs(t, err, ErrInvalidVersion)
}
