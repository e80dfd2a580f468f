// Package httpapi exposes the analysis service over HTTP.
package httpapi

import (
	"context"
	"crypto/rand"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"

	"github.com/andreystarchikov/lemmatizator/pkg/lemma"
)

// Config holds the HTTP server settings.
type Config struct {
	Host         string
	Port         int
	EnableCORS   bool
	Debug        bool
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DefaultConfig returns sensible server defaults.
func DefaultConfig() Config {
	return Config{
		Port:         8000,
		EnableCORS:   true,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// Server wires the analysis service into a gin engine.
type Server struct {
	svc    *lemma.Service
	engine *gin.Engine
	http   *http.Server

	// ulid.MonotonicEntropy is not safe for concurrent use
	entropyMu sync.Mutex
	entropy   *ulid.MonotonicEntropy
}

// NewServer builds the engine, middleware and routes. CORS allows any
// origin so a separately hosted frontend can call the API.
func NewServer(svc *lemma.Service, cfg Config) *Server {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Logger())
	engine.Use(gin.Recovery())

	if cfg.EnableCORS {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type"}
		engine.Use(cors.New(corsConfig))
	}

	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = 30 * time.Second
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 30 * time.Second
	}

	s := &Server{
		svc:     svc,
		engine:  engine,
		entropy: ulid.Monotonic(rand.Reader, 0),
		http: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:      engine,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}

	engine.Use(s.requestID)
	api := engine.Group("/api")
	api.GET("/health", s.handleHealth)
	api.POST("/analyze", s.handleAnalyze)

	return s
}

// Run serves until the listener fails or Shutdown is called.
func (s *Server) Run() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Handler exposes the engine for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// requestID tags every response with a ULID for log correlation.
func (s *Server) requestID(c *gin.Context) {
	s.entropyMu.Lock()
	id := ulid.MustNew(ulid.Now(), s.entropy).String()
	s.entropyMu.Unlock()

	c.Writer.Header().Set("X-Request-ID", id)
	c.Next()
}
