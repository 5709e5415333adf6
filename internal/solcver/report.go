package solcver

import "github.com/danmuck/solcver/internal/metadata"

// Report is a render-ready view of an Inference for JSON and YAML output.
type Report struct {
	Era     Era               `json:"era" yaml:"era"`
	Range   string            `json:"range" yaml:"range"`
	Version string            `json:"version,omitempty" yaml:"version,omitempty"`
	Reason  string            `json:"reason,omitempty" yaml:"reason,omitempty"`
	Decoded map[string]any    `json:"decoded,omitempty" yaml:"decoded,omitempty"`
	Fields  *metadata.Summary `json:"fields,omitempty" yaml:"fields,omitempty"`
}

func (i Inference) Report() Report {
	r := Report{
		Era:     i.Era,
		Range:   i.Range(),
		Version: i.Version,
		Reason:  metadata.Reason(i.Cause),
	}
	if i.Decoded != nil {
		r.Decoded = metadata.Printable(i.Decoded)
		fields := metadata.Fields(i.Decoded)
		r.Fields = &fields
	}
	return r
}
