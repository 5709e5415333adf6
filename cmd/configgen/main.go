package main

import (
	"flag"
	"log"

	"github.com/danmuck/solcver/internal/config"
)

func main() {
	kind := flag.String("kind", "server", "config kind: server|cli")
	output := flag.String("output", "", "output path for config template")
	validate := flag.Bool("validate", false, "validate an existing server config file")
	input := flag.String("input", "cmd/solcverd/config.toml", "server config path for validation")
	force := flag.Bool("force", false, "overwrite existing config file")
	flag.Parse()

	if *validate {
		cfg, err := config.LoadServerConfig(*input)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("Validated server config at %s (name=%s addr=%s)", *input, cfg.Name, cfg.Addr)
		return
	}

	target := *output
	if target == "" {
		switch *kind {
		case "server":
			target = "cmd/solcverd/config.toml"
		case "cli":
			target = "solcverctl.toml"
		default:
			log.Fatalf("unknown kind: %s", *kind)
		}
	}

	if err := config.WriteTemplate(target, *kind, *force); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote %s config template to %s", *kind, target)
}
