package solcver

import (
	"fmt"
	"strings"
)

// Era is the metadata era a buffer was classified into.
type Era int

const (
	EraAbsent Era = iota
	EraUnrecorded
	EraExact
)

// Era boundaries. These are historical policy, not derived values.
const (
	FirstMetadataVersion  = "0.4.7"
	LastUnrecordedVersion = "0.5.8"
	FirstRecordedVersion  = "0.5.9"
)

const (
	AbsentRange     = "<" + FirstMetadataVersion
	UnrecordedRange = ">=" + FirstMetadataVersion + " <=" + LastUnrecordedVersion
	RecordedRange   = ">=" + FirstRecordedVersion
)

func (e Era) String() string {
	switch e {
	case EraAbsent:
		return "absent"
	case EraUnrecorded:
		return "unrecorded"
	case EraExact:
		return "exact"
	default:
		return fmt.Sprintf("era(%d)", int(e))
	}
}

func (e Era) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *Era) UnmarshalText(b []byte) error {
	v, err := ParseEra(string(b))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

func ParseEra(s string) (Era, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "absent":
		return EraAbsent, nil
	case "unrecorded":
		return EraUnrecorded, nil
	case "exact":
		return EraExact, nil
	default:
		return 0, fmt.Errorf("solcver: unknown era %q", s)
	}
}

// EraInfo describes one era for listings.
type EraInfo struct {
	Era         Era    `json:"era" yaml:"era"`
	Range       string `json:"range" yaml:"range"`
	Description string `json:"description" yaml:"description"`
}

// Eras returns the era table, oldest first.
func Eras() []EraInfo {
	return []EraInfo{
		{
			Era:         EraAbsent,
			Range:       AbsentRange,
			Description: "no metadata trailer, or a trailer that does not decode",
		},
		{
			Era:         EraUnrecorded,
			Range:       UnrecordedRange,
			Description: "metadata trailer without a solc version field",
		},
		{
			Era:         EraExact,
			Range:       RecordedRange,
			Description: "metadata trailer records major.minor.patch under solc",
		},
	}
}
