package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const (
	DefaultName = "solcverd"
	DefaultAddr = ":9300"
	// DefaultMaxBytecodeBytes is twice the EIP-170 runtime code limit so that
	// creation bytecode fits as well.
	DefaultMaxBytecodeBytes = 2 * 24576
)

var (
	ErrTLSCertFileRequired = errors.New("config: tls cert file required")
	ErrTLSKeyFileRequired  = errors.New("config: tls key file required")
)

type ServerConfig struct {
	Name             string    `toml:"name"`
	Addr             string    `toml:"addr"`
	CorsOrigins      []string  `toml:"cors_origins"`
	MaxBytecodeBytes int       `toml:"max_bytecode_bytes"`
	APIToken         string    `toml:"api_token"`
	APITokens        []string  `toml:"api_tokens"`
	TLS              TLSConfig `toml:"tls"`
}

// Tokens returns every configured API token, api_token first.
func (c ServerConfig) Tokens() []string {
	var out []string
	if strings.TrimSpace(c.APIToken) != "" {
		out = append(out, c.APIToken)
	}
	for _, tok := range c.APITokens {
		if strings.TrimSpace(tok) != "" {
			out = append(out, tok)
		}
	}
	return out
}

// TLSConfig enables HTTPS when both files are set.
type TLSConfig struct {
	CertFile string `toml:"cert_file"`
	KeyFile  string `toml:"key_file"`
}

func (c TLSConfig) Enabled() bool {
	return strings.TrimSpace(c.CertFile) != "" || strings.TrimSpace(c.KeyFile) != ""
}

func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Name:             DefaultName,
		Addr:             DefaultAddr,
		MaxBytecodeBytes: DefaultMaxBytecodeBytes,
	}
}

func LoadServerConfig(path string) (ServerConfig, error) {
	var cfg ServerConfig
	if err := loadToml(path, &cfg); err != nil {
		return ServerConfig{}, err
	}
	if cfg.Name == "" {
		cfg.Name = DefaultName
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.MaxBytecodeBytes == 0 {
		cfg.MaxBytecodeBytes = DefaultMaxBytecodeBytes
	}
	if err := ValidateServerConfig(cfg); err != nil {
		return ServerConfig{}, err
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func ValidateServerConfig(cfg ServerConfig) error {
	if strings.TrimSpace(cfg.Name) == "" {
		return fmt.Errorf("server config missing name")
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		return fmt.Errorf("server config missing addr")
	}
	if cfg.MaxBytecodeBytes < 0 {
		return fmt.Errorf("server config max_bytecode_bytes must not be negative")
	}
	if cfg.TLS.Enabled() {
		if strings.TrimSpace(cfg.TLS.CertFile) == "" {
			return ErrTLSCertFileRequired
		}
		if strings.TrimSpace(cfg.TLS.KeyFile) == "" {
			return ErrTLSKeyFileRequired
		}
	}
	for i, origin := range cfg.CorsOrigins {
		if strings.TrimSpace(origin) == "" {
			return fmt.Errorf("cors_origins[%d] is empty", i)
		}
	}
	return nil
}
