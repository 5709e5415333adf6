// Package bytecode turns user input (hex text, artifact files) into raw
// bytecode buffers.
package bytecode

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

var (
	ErrEmptyBytecode = errors.New("bytecode: empty input")
	ErrInvalidHex    = errors.New("bytecode: invalid hex")
	ErrInputTooLarge = errors.New("bytecode: input too large")
	ErrNoBytecode    = errors.New("bytecode: artifact has no bytecode")
)

// ParseHex decodes hex bytecode. The 0x prefix is optional and surrounding
// or embedded whitespace is ignored.
func ParseHex(s string) ([]byte, error) {
	s = strings.Join(strings.Fields(s), "")
	if s == "" || s == "0x" || s == "0X" {
		return nil, ErrEmptyBytecode
	}
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	b, err := hexutil.Decode("0x" + s[2:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return b, nil
}

// CheckLimit fails with ErrInputTooLarge when b exceeds limit. A limit of 0
// disables the check.
func CheckLimit(b []byte, limit int) error {
	if limit > 0 && len(b) > limit {
		return fmt.Errorf("%w: %d bytes (limit %d)", ErrInputTooLarge, len(b), limit)
	}
	return nil
}

// Source is bytecode read from a file, with the compiler version when the
// file is an artifact that records one.
type Source struct {
	Bytecode        []byte
	CompilerVersion string
}

// Load reads bytecode from path. JSON files are read as compiler artifacts
// (deployed bytecode preferred), anything else as hex text.
func Load(path string, limit int) (Source, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		a, err := LoadArtifact(path)
		if err != nil {
			return Source{}, err
		}
		b, err := a.Runtime()
		if err != nil {
			return Source{}, fmt.Errorf("%s: %w", path, err)
		}
		if err := CheckLimit(b, limit); err != nil {
			return Source{}, err
		}
		return Source{Bytecode: b, CompilerVersion: a.CompilerVersion}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("bytecode load failed (%s): %w", path, err)
	}
	b, err := ParseHex(string(data))
	if err != nil {
		return Source{}, fmt.Errorf("%s: %w", path, err)
	}
	if err := CheckLimit(b, limit); err != nil {
		return Source{}, err
	}
	return Source{Bytecode: b}, nil
}

// LoadFile is Load without the compiler version.
func LoadFile(path string, limit int) ([]byte, error) {
	src, err := Load(path, limit)
	if err != nil {
		return nil, err
	}
	return src.Bytecode, nil
}
