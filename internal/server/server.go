package server

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	"github.com/danmuck/solcver/internal/auth"
	"github.com/danmuck/solcver/internal/config"
	"github.com/danmuck/solcver/internal/observability"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const version = "0.1.0"

// Server exposes metadata decoding and compiler version inference over HTTP.
type Server struct {
	ID               string    `json:"id"`
	Addr             string    `json:"addr"`
	MaxBytecodeBytes int       `json:"max_bytecode_bytes"`
	Appeared         time.Time `json:"appeared"`

	validator auth.Validator
	tls       config.TLSConfig
	router    *gin.Engine
}

func New(cfg config.ServerConfig) *Server {
	observability.RegisterMetrics()
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestLogger(log.Logger, "/health", "/ready", "/metrics"))
	r.Use(observability.RequestMetricsMiddleware(cfg.Name))
	r.Use(cors.New(cors.Config{
		AllowOrigins: normalizeOrigins(cfg.CorsOrigins),
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))
	_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	s := &Server{
		ID:               cfg.Name,
		Addr:             cfg.Addr,
		MaxBytecodeBytes: cfg.MaxBytecodeBytes,
		Appeared:         time.Now(),
		tls:              cfg.TLS,
		router:           r,
	}
	s.validator = auth.Tokens(cfg.Tokens()...)
	return s
}

func (s *Server) HTTPRouter() *gin.Engine {
	return s.router
}

// TLSConfig loads the configured key pair. It returns nil when TLS is off.
func (s *Server) TLSConfig() (*tls.Config, error) {
	if !s.tls.Enabled() {
		return nil, nil
	}
	cert, err := tls.LoadX509KeyPair(s.tls.CertFile, s.tls.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("load tls key pair: %w", err)
	}
	return &tls.Config{
		MinVersion:   tls.VersionTLS12,
		Certificates: []tls.Certificate{cert},
	}, nil
}

func (s *Server) Serve() error {
	s.RegisterRoutes()
	tlsConfig, err := s.TLSConfig()
	if err != nil {
		return err
	}
	httpServer := &http.Server{
		Addr:              s.Addr,
		Handler:           s.router,
		TLSConfig:         tlsConfig,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info().
		Str("id", s.ID).
		Str("addr", s.Addr).
		Int("max_bytecode_bytes", s.MaxBytecodeBytes).
		Bool("auth", s.validator != nil).
		Bool("tls", tlsConfig != nil).
		Msg("solcver server listening")
	if tlsConfig != nil {
		return httpServer.ListenAndServeTLS("", "")
	}
	return httpServer.ListenAndServe()
}

func normalizeOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"http://localhost:3000"}
	}
	return origins
}
