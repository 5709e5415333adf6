package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/danmuck/solcver/internal/bytecode"
	"github.com/danmuck/solcver/internal/logging"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const envConfigPath = "SOLCVER_CONFIG"

var errNoInput = errors.New("no bytecode given (pass hex, --file, or pipe hex on stdin)")

type app struct {
	cfg        cliConfig
	configPath string
	file       string
	output     string
	logLevel   string

	// recorded is the compiler version named by a loaded artifact.
	recorded string
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: defaultCLIConfig()}

	root := &cobra.Command{
		Use:           "solcverctl",
		Short:         "Inspect solc metadata trailers and infer compiler versions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", os.Getenv(envConfigPath), "solcverctl TOML config path")
	flags.StringVarP(&a.file, "file", "f", "", "read bytecode from a hex file or compiler artifact JSON")
	flags.StringVarP(&a.output, "output", "o", "", "output format: text|json|yaml")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: trace|debug|info|warn|error|off")

	root.AddCommand(
		newInferCmd(a),
		newDecodeCmd(a),
		newLengthCmd(a),
		newCheckCmd(a),
		newErasCmd(a),
	)
	return root
}

// setup resolves config file, flags and logging before any subcommand runs.
func (a *app) setup(cmd *cobra.Command) error {
	if a.configPath != "" {
		cfg, err := loadCLIConfig(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	if a.output != "" {
		a.cfg.Output = strings.ToLower(strings.TrimSpace(a.output))
	}
	if a.logLevel != "" {
		a.cfg.LogLevel = a.logLevel
	}
	if err := validateCLIConfig(a.cfg); err != nil {
		return err
	}

	level, ok := logging.ParseLevel(a.cfg.LogLevel)
	if !ok {
		level = zerolog.WarnLevel
	}
	cfg := logging.DefaultConfig(logging.ProfileRuntime)
	cfg.Level = level
	cfg.Timestamp = false
	cfg.Out = cmd.ErrOrStderr()
	logging.Apply(cfg)
	return nil
}

// readInput returns the bytecode named by args, --file or stdin, in that
// order of preference.
func (a *app) readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	var (
		buf    []byte
		err    error
		source string
	)
	switch {
	case len(args) > 0:
		source = "argument"
		buf, err = bytecode.ParseHex(strings.Join(args, ""))
		if err == nil {
			err = bytecode.CheckLimit(buf, a.cfg.MaxBytecodeBytes)
		}
	case a.file != "":
		source = a.file
		var src bytecode.Source
		src, err = bytecode.Load(a.file, a.cfg.MaxBytecodeBytes)
		buf, a.recorded = src.Bytecode, src.CompilerVersion
	default:
		source = "stdin"
		buf, err = readStdin(cmd.InOrStdin(), a.cfg.MaxBytecodeBytes)
	}
	if err != nil {
		return nil, err
	}
	log.Debug().Str("source", source).Int("bytes", len(buf)).Msg("bytecode loaded")
	return buf, nil
}

func readStdin(r io.Reader, limit int) ([]byte, error) {
	if f, ok := r.(*os.File); ok {
		if info, err := f.Stat(); err == nil && info.Mode()&os.ModeCharDevice != 0 {
			return nil, errNoInput
		}
	}
	var maxText int64 = -1
	if limit > 0 {
		// two hex digits per byte, plus room for a prefix and whitespace
		maxText = int64(2*limit + 1024)
		r = io.LimitReader(r, maxText+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	if maxText >= 0 && int64(len(data)) > maxText {
		return nil, fmt.Errorf("%w: stdin exceeds %d characters", bytecode.ErrInputTooLarge, maxText)
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, errNoInput
	}
	buf, err := bytecode.ParseHex(string(data))
	if err != nil {
		return nil, err
	}
	return buf, bytecode.CheckLimit(buf, limit)
}
