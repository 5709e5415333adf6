package metadata

import "github.com/fxamacker/cbor/v2"

// Metadata is a decoded trailer. Keys the decoder does not recognise are kept.
// Nested maps keep their original key types as map[any]any.
type Metadata map[string]any

var (
	decMode = mustDecMode()
	encMode = mustEncMode()
)

func mustDecMode() cbor.DecMode {
	dm, err := cbor.DecOptions{
		DupMapKey: cbor.DupMapKeyEnforcedAPF,
	}.DecMode()
	if err != nil {
		panic(err)
	}
	return dm
}

func mustEncMode() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}
