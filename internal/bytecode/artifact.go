package bytecode

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Artifact is the subset of a compiler artifact needed to locate bytecode.
type Artifact struct {
	Name             string
	Bytecode         string
	DeployedBytecode string
	// CompilerVersion is only known for artifacts that record it.
	CompilerVersion string
}

// Hardhat and Truffle artifact layout.
type hardhatArtifact struct {
	ContractName     string `json:"contractName"`
	Bytecode         string `json:"bytecode"`
	DeployedBytecode string `json:"deployedBytecode"`
	Compiler         *struct {
		Version string `json:"version"`
	} `json:"compiler,omitempty"`
}

// go-ethereum compiler.Contract layout.
type gethContract struct {
	Code        string `json:"code"`
	RuntimeCode string `json:"runtime-code"`
	Info        struct {
		CompilerVersion string `json:"compilerVersion"`
	} `json:"info"`
}

// LoadArtifact reads a Hardhat/Truffle artifact or a go-ethereum
// compiler.Contract JSON document.
func LoadArtifact(path string) (Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Artifact{}, fmt.Errorf("artifact load failed (%s): %w", path, err)
	}
	a, err := ParseArtifact(data)
	if err != nil {
		return Artifact{}, fmt.Errorf("artifact parse failed (%s): %w", path, err)
	}
	return a, nil
}

func ParseArtifact(data []byte) (Artifact, error) {
	var hh hardhatArtifact
	if err := json.Unmarshal(data, &hh); err != nil {
		return Artifact{}, err
	}
	if hh.Bytecode != "" || hh.DeployedBytecode != "" {
		a := Artifact{
			Name:             hh.ContractName,
			Bytecode:         hh.Bytecode,
			DeployedBytecode: hh.DeployedBytecode,
		}
		if hh.Compiler != nil {
			a.CompilerVersion = hh.Compiler.Version
		}
		return a, nil
	}

	var gc gethContract
	if err := json.Unmarshal(data, &gc); err != nil {
		return Artifact{}, err
	}
	if gc.Code == "" && gc.RuntimeCode == "" {
		return Artifact{}, ErrNoBytecode
	}
	return Artifact{
		Bytecode:         gc.Code,
		DeployedBytecode: gc.RuntimeCode,
		CompilerVersion:  gc.Info.CompilerVersion,
	}, nil
}

// Runtime decodes the deployed bytecode, falling back to the creation
// bytecode when the artifact has none.
func (a Artifact) Runtime() ([]byte, error) {
	for _, s := range []string{a.DeployedBytecode, a.Bytecode} {
		if strings.TrimSpace(s) == "" || strings.TrimSpace(s) == "0x" {
			continue
		}
		return ParseHex(s)
	}
	return nil, ErrNoBytecode
}
