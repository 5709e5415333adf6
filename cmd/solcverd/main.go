package main

import (
	"flag"

	"github.com/danmuck/solcver/internal/config"
	"github.com/danmuck/solcver/internal/observability"
	"github.com/danmuck/solcver/internal/server"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()
	observability.InitLogger("solcverd")

	configPath := flag.String("config", "cmd/solcverd/config.toml", "server config path")
	flag.Parse()

	cfg, err := config.LoadServerConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load server config")
	}
	log.Info().Str("path", *configPath).Msg("loaded server config")

	srv := server.New(cfg)
	if err := srv.Serve(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
