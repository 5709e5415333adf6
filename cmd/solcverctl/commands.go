package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/danmuck/solcver/internal/metadata"
	"github.com/danmuck/solcver/internal/solcver"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var errNotSatisfied = errors.New("version not admitted")

// inferView adds the compiler version an artifact records, and whether the
// inferred range admits it.
type inferView struct {
	solcver.Report   `yaml:",inline"`
	RecordedVersion  string `json:"recorded_version,omitempty" yaml:"recorded_version,omitempty"`
	RecordedAdmitted *bool  `json:"recorded_admitted,omitempty" yaml:"recorded_admitted,omitempty"`
}

func newInferCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "infer [hex]",
		Short: "Infer the solc version range that produced the bytecode",
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := a.readInput(cmd, args)
			if err != nil {
				return err
			}
			inf := solcver.Infer(buf)
			view := inferView{Report: inf.Report(), RecordedVersion: a.recorded}
			if a.recorded != "" {
				admitted, err := inf.Admits(a.recorded)
				if err != nil {
					log.Debug().Err(err).Str("version", a.recorded).Msg("recorded compiler version not comparable")
				} else {
					view.RecordedAdmitted = &admitted
				}
			}
			return render(cmd.OutOrStdout(), a.cfg.Output, view, func(tw *tabwriter.Writer) {
				row(tw, "era", view.Era)
				row(tw, "range", view.Range)
				if view.Reason != "" {
					row(tw, "reason", view.Reason)
				}
				if view.Fields != nil {
					summaryRows(tw, *view.Fields)
				}
				if view.RecordedVersion != "" {
					row(tw, "artifact compiler", view.RecordedVersion)
				}
				if view.RecordedAdmitted != nil {
					row(tw, "artifact admitted", *view.RecordedAdmitted)
				}
			})
		},
	}
}

type decodeView struct {
	SectionLength int              `json:"section_length" yaml:"section_length"`
	Payload       string           `json:"payload" yaml:"payload"`
	Decoded       map[string]any   `json:"decoded" yaml:"decoded"`
	Fields        metadata.Summary `json:"fields" yaml:"fields"`
}

func newDecodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode [hex]",
		Short: "Decode the CBOR metadata trailer",
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := a.readInput(cmd, args)
			if err != nil {
				return err
			}
			m, payload, err := metadata.Decode(buf)
			if err != nil {
				return fmt.Errorf("%s: %w", metadata.Reason(err), err)
			}
			view := decodeView{
				SectionLength: len(payload) + metadata.LengthFieldSize,
				Payload:       hexutil.Encode(payload),
				Decoded:       metadata.Printable(m),
				Fields:        metadata.Fields(m),
			}
			return render(cmd.OutOrStdout(), a.cfg.Output, view, func(tw *tabwriter.Writer) {
				row(tw, "section length", view.SectionLength)
				row(tw, "payload", view.Payload)
				row(tw, "decoded", "")
				decodedRows(tw, view.Decoded)
			})
		},
	}
}

type lengthView struct {
	BufferLength  int  `json:"buffer_length" yaml:"buffer_length"`
	SectionLength int  `json:"section_length" yaml:"section_length"`
	PayloadLength int  `json:"payload_length" yaml:"payload_length"`
	Fits          bool `json:"fits" yaml:"fits"`
}

func newLengthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "length [hex]",
		Short: "Read the trailing length field without decoding",
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := a.readInput(cmd, args)
			if err != nil {
				return err
			}
			total, err := metadata.ReadTrailingLength(buf)
			if err != nil {
				return err
			}
			view := lengthView{
				BufferLength:  len(buf),
				SectionLength: total,
				PayloadLength: total - metadata.LengthFieldSize,
				Fits:          total <= len(buf),
			}
			return render(cmd.OutOrStdout(), a.cfg.Output, view, func(tw *tabwriter.Writer) {
				row(tw, "buffer length", view.BufferLength)
				row(tw, "section length", view.SectionLength)
				row(tw, "payload length", view.PayloadLength)
				row(tw, "fits", view.Fits)
			})
		},
	}
}

type checkView struct {
	Era       solcver.Era `json:"era" yaml:"era"`
	Range     string      `json:"range" yaml:"range"`
	Version   string      `json:"version" yaml:"version"`
	Satisfies bool        `json:"satisfies" yaml:"satisfies"`
}

func newCheckCmd(a *app) *cobra.Command {
	var version string
	cmd := &cobra.Command{
		Use:   "check --version X.Y.Z [hex]",
		Short: "Check whether a compiler version could have produced the bytecode",
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := a.readInput(cmd, args)
			if err != nil {
				return err
			}
			inf := solcver.Infer(buf)
			admitted, err := inf.Admits(version)
			if err != nil {
				return err
			}
			view := checkView{
				Era:       inf.Era,
				Range:     inf.Range(),
				Version:   version,
				Satisfies: admitted,
			}
			err = render(cmd.OutOrStdout(), a.cfg.Output, view, func(tw *tabwriter.Writer) {
				row(tw, "era", view.Era)
				row(tw, "range", view.Range)
				row(tw, "version", view.Version)
				row(tw, "satisfies", view.Satisfies)
			})
			if err != nil {
				return err
			}
			if !admitted {
				return fmt.Errorf("%w: %s is outside %s", errNotSatisfied, version, view.Range)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&version, "version", "", "compiler version to check, e.g. 0.5.3")
	_ = cmd.MarkFlagRequired("version")
	return cmd
}

func newErasCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eras",
		Short: "List the metadata eras and their version ranges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eras := solcver.Eras()
			return render(cmd.OutOrStdout(), a.cfg.Output, eras, func(tw *tabwriter.Writer) {
				fmt.Fprintln(tw, "ERA\tRANGE\tDESCRIPTION")
				for _, e := range eras {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Era, e.Range, e.Description)
				}
			})
		},
	}
}
