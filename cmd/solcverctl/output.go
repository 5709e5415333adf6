package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/danmuck/solcver/internal/metadata"
	"gopkg.in/yaml.v3"
)

// render writes v as JSON or YAML, or calls text for the human format.
func render(w io.Writer, format string, v any, text func(*tabwriter.Writer)) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		text(tw)
		return tw.Flush()
	}
}

func row(tw *tabwriter.Writer, key string, value any) {
	fmt.Fprintf(tw, "%s:\t%v\n", key, value)
}

// summaryRows prints the non-empty fields of s.
func summaryRows(tw *tabwriter.Writer, s metadata.Summary) {
	if s.Solc != "" {
		row(tw, "solc", s.Solc)
	}
	if s.IPFS != "" {
		row(tw, "ipfs", s.IPFS)
	}
	if s.Bzzr0 != "" {
		row(tw, "bzzr0", s.Bzzr0)
	}
	if s.Bzzr1 != "" {
		row(tw, "bzzr1", s.Bzzr1)
	}
	if s.Experimental {
		row(tw, "experimental", true)
	}
	if len(s.Unknown) > 0 {
		row(tw, "unknown keys", strings.Join(s.Unknown, ", "))
	}
}

// decodedRows prints every key of a printable mapping in sorted order.
func decodedRows(tw *tabwriter.Writer, decoded map[string]any) {
	keys := make([]string, 0, len(decoded))
	for k := range decoded {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		row(tw, "  "+k, decoded[k])
	}
}
