package config

import (
	"fmt"
	"os"
	"strings"
)

func Template(kind string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "server", "solcverd":
		return serverTemplate, nil
	case "cli", "solcverctl":
		return cliTemplate, nil
	default:
		return "", fmt.Errorf("unknown config kind: %s", kind)
	}
}

func WriteTemplate(path, kind string, overwrite bool) error {
	template, err := Template(kind)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

const serverTemplate = `name = "solcverd"
addr = ":9300"
cors_origins = ["http://localhost:3000"]
max_bytecode_bytes = 49152
# api_token = "change-me"
# api_tokens = ["next-token"]

[tls]
# cert_file = "certs/solcverd.crt"
# key_file = "certs/solcverd.key"
`

const cliTemplate = `output = "text"
log_level = "warn"
max_bytecode_bytes = 0
`
