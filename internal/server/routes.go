package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/danmuck/solcver/internal/auth"
	"github.com/danmuck/solcver/internal/bytecode"
	"github.com/danmuck/solcver/internal/metadata"
	"github.com/danmuck/solcver/internal/observability"
	"github.com/danmuck/solcver/internal/solcver"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

// requestOverhead is the allowance for JSON framing on top of the hex body.
const requestOverhead = 4096

type bytecodeRequest struct {
	Bytecode string `json:"bytecode" binding:"required"`
	Version  string `json:"version"`
}

type decodeResponse struct {
	SectionLength int              `json:"section_length"`
	Payload       string           `json:"payload"`
	Decoded       map[string]any   `json:"decoded"`
	Fields        metadata.Summary `json:"fields"`
}

type satisfiesResponse struct {
	Era       solcver.Era `json:"era"`
	Range     string      `json:"range"`
	Version   string      `json:"version"`
	Satisfies bool        `json:"satisfies"`
}

func (s *Server) RegisterRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(s.Appeared).String(),
			"service": s.ID,
			"version": version,
		})
	})

	s.router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ready":   true,
			"uptime":  time.Since(s.Appeared).String(),
			"service": s.ID,
			"version": version,
		})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.router.Group("/v1")
	v1.Use(auth.Middleware(s.validator))
	v1.GET("/eras", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"eras": solcver.Eras()})
	})
	v1.POST("/infer", s.handleInfer)
	v1.POST("/decode", s.handleDecode)
	v1.POST("/satisfies", s.handleSatisfies)
}

func (s *Server) handleInfer(c *gin.Context) {
	_, buf, ok := s.bindBytecode(c)
	if !ok {
		return
	}

	inf := s.infer(buf)
	c.JSON(http.StatusOK, inf.Report())
}

func (s *Server) handleDecode(c *gin.Context) {
	_, buf, ok := s.bindBytecode(c)
	if !ok {
		return
	}

	m, payload, err := metadata.Decode(buf)
	if err != nil {
		reason := metadata.Reason(err)
		observability.RecordDecodeFailure(reason)
		body := gin.H{"error": err.Error(), "reason": reason}
		if total, lerr := metadata.ReadTrailingLength(buf); lerr == nil {
			body["section_length"] = total
		}
		c.JSON(http.StatusUnprocessableEntity, body)
		return
	}

	c.JSON(http.StatusOK, decodeResponse{
		SectionLength: len(payload) + metadata.LengthFieldSize,
		Payload:       hexutil.Encode(payload),
		Decoded:       metadata.Printable(m),
		Fields:        metadata.Fields(m),
	})
}

func (s *Server) handleSatisfies(c *gin.Context) {
	req, buf, ok := s.bindBytecode(c)
	if !ok {
		return
	}
	if req.Version == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "version is required"})
		return
	}

	inf := s.infer(buf)
	admitted, err := inf.Admits(req.Version)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, satisfiesResponse{
		Era:       inf.Era,
		Range:     inf.Range(),
		Version:   req.Version,
		Satisfies: admitted,
	})
}

func (s *Server) infer(buf []byte) solcver.Inference {
	inf := solcver.Infer(buf)
	reason := metadata.Reason(inf.Cause)
	observability.RecordInference(inf.Era.String(), reason, len(buf))
	log.Debug().
		Str("service", s.ID).
		Str("era", inf.Era.String()).
		Str("range", inf.Range()).
		Str("reason", reason).
		Int("bytes", len(buf)).
		Msg("compiler version inferred")
	return inf
}

// bindBytecode parses the request body and decodes its bytecode. On failure
// the response has been written and ok is false.
func (s *Server) bindBytecode(c *gin.Context) (bytecodeRequest, []byte, bool) {
	var req bytecodeRequest
	if s.MaxBytecodeBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, int64(2*s.MaxBytecodeBytes+requestOverhead))
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": bytecode.ErrInputTooLarge.Error()})
			return req, nil, false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return req, nil, false
	}

	buf, err := bytecode.ParseHex(req.Bytecode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return req, nil, false
	}
	if err := bytecode.CheckLimit(buf, s.MaxBytecodeBytes); err != nil {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		return req, nil, false
	}
	return req, buf, true
}
