package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podfeed-api/api/types"
	"github.com/killallgit/podfeed-api/pkg/config"
)

// Server represents the HTTP server
type Server struct {
	engine             *gin.Engine
	httpServer         *http.Server
	config             *config.Config
	rateLimiters       *sync.Map
	cleanupInitialized sync.Once
	cleanupStop        chan struct{}
	stopOnce           sync.Once

	// Dependencies for handlers
	dependencies *types.Dependencies
}

// NewServer creates a new HTTP server from the server section of cfg
func NewServer(cfg *config.Config, deps *types.Dependencies) *Server {
	if deps == nil {
		deps = &types.Dependencies{}
	}

	engine := gin.New()

	address := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	return &Server{
		engine:       engine,
		config:       cfg,
		rateLimiters: &sync.Map{},
		cleanupStop:  make(chan struct{}),
		dependencies: deps,
		httpServer: &http.Server{
			Addr:              address,
			Handler:           engine,
			ReadTimeout:       cfg.Server.ReadTimeout,
			ReadHeaderTimeout: cfg.Server.ReadTimeout,
			WriteTimeout:      cfg.Server.WriteTimeout,
			IdleTimeout:       cfg.Server.ReadTimeout,
			MaxHeaderBytes:    cfg.Server.MaxHeaderBytes,
		},
	}
}

// Engine returns the Gin engine for testing
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Addr returns the configured listen address
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Initialize sets up middleware and routes
func (s *Server) Initialize() error {
	if s.dependencies.PodcastService == nil {
		return fmt.Errorf("podcast service is not configured")
	}

	s.setupMiddleware()

	return RegisterRoutes(s.engine, s.dependencies, s.config.RateLimiting, s.rateLimiters, s.cleanupStop, &s.cleanupInitialized)
}

// setupMiddleware configures global middleware
func (s *Server) setupMiddleware() {
	logger := s.dependencies.Log()

	if s.config.Security.EnableRequestID {
		s.engine.Use(RequestID())
	}
	s.engine.Use(AccessLog(logger.Named("http")))
	s.engine.Use(Recovery(logger))

	if s.config.Security.EnableCORS {
		s.engine.Use(CORS(s.config.Security.CORSOrigins))
	}
}

// Start serves until Shutdown is called. It returns http.ErrServerClosed
// after a graceful shutdown.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Serve accepts connections on l
func (s *Server) Serve(l net.Listener) error {
	return s.httpServer.Serve(l)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	// Stop the rate limiter cleanup goroutine
	s.stopOnce.Do(func() {
		close(s.cleanupStop)
	})

	return s.httpServer.Shutdown(ctx)
}
