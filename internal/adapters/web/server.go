package web

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"exomind/internal/application/commands"
	"exomind/internal/domain"
)

// Engine is the subset of commands.Service the HTTP API needs
type Engine interface {
	Index(ctx context.Context, notesRoot, outRoot string) (*domain.IndexResult, error)
	Recall(ctx context.Context, graphPath, query string, topk int, weights domain.Weights) ([]domain.RecallRow, error)
	Doctor(ctx context.Context, notesRoot, graphPath string) (*commands.DoctorReport, error)
}

// Defaults fill request fields the client leaves out
type Defaults struct {
	NotesRoot string
	OutRoot   string
	GraphPath string
	TopK      int
	Weights   domain.Weights
}

// Server is the exomind HTTP API
type Server struct {
	engine   Engine
	defaults Defaults
	router   *gin.Engine
}

// NewServer creates a new API server
func NewServer(engine Engine, defaults Defaults) *Server {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	s := &Server{
		engine:   engine,
		defaults: defaults,
		router:   router,
	}

	router.GET("/health", s.handleHealth)
	router.GET("/doctor", s.handleDoctor)
	router.POST("/index", s.handleIndex)
	router.POST("/recall", s.handleRecall)

	return s
}

// Handler exposes the router for tests and custom listeners
func (s *Server) Handler() *gin.Engine {
	return s.router
}

// Run starts the web server
func (s *Server) Run(addr string) error {
	slog.Info("serving exomind API", "addr", addr)
	return s.router.Run(addr)
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}
