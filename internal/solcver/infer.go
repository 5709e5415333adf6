package solcver

import (
	"github.com/blang/semver/v4"
	"github.com/danmuck/solcver/internal/metadata"
)

// Inference is the classification of one buffer.
type Inference struct {
	Era Era
	// Version is set for EraExact only.
	Version string
	// Decoded is nil for EraAbsent.
	Decoded metadata.Metadata
	// Cause is the decode failure behind EraAbsent. Diagnostic only.
	Cause error
}

// Descriptor is the boundary form of an Inference.
type Descriptor struct {
	Range   string            `json:"range" yaml:"range"`
	Decoded metadata.Metadata `json:"decoded,omitempty" yaml:"decoded,omitempty"`
}

// Infer classifies buf. It is total: decode failures collapse into EraAbsent
// and a solc value of unexpected shape falls back to EraUnrecorded.
func Infer(buf []byte) Inference {
	m, _, err := metadata.Decode(buf)
	if err != nil {
		return Inference{Era: EraAbsent, Cause: err}
	}
	raw, ok := m.SolcBytes()
	if !ok {
		return Inference{Era: EraUnrecorded, Decoded: m}
	}
	return Inference{Era: EraExact, Version: exactVersion(raw), Decoded: m}
}

// InferCompilerVersion is Infer rendered to its range expression.
func InferCompilerVersion(buf []byte) Descriptor {
	return Infer(buf).Descriptor()
}

// Range renders the inference as a semver range expression.
func (i Inference) Range() string {
	switch i.Era {
	case EraExact:
		return i.Version
	case EraUnrecorded:
		return UnrecordedRange
	default:
		return AbsentRange
	}
}

func (i Inference) Descriptor() Descriptor {
	return Descriptor{Range: i.Range(), Decoded: i.Decoded}
}

// Admits reports whether version falls inside the inferred range.
func (i Inference) Admits(version string) (bool, error) {
	return Satisfies(i.Range(), version)
}

func exactVersion(raw []byte) string {
	v := semver.Version{
		Major: uint64(raw[0]),
		Minor: uint64(raw[1]),
		Patch: uint64(raw[2]),
	}
	return v.String()
}
