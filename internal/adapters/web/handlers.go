package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"exomind/internal/application"
	"exomind/internal/config"
	"exomind/internal/domain"
)

type indexRequest struct {
	NotesRoot string `json:"notes_root" binding:"required"`
	OutRoot   string `json:"out_root"`
}

type recallRequest struct {
	Query          *string  `json:"query" binding:"required"`
	TopK           *int     `json:"topk" binding:"omitempty,gte=0"`
	Graph          string   `json:"graph"`
	LexicalWeight  *float64 `json:"lexical_weight" binding:"omitempty,gte=0"`
	GraphWeight    *float64 `json:"graph_weight" binding:"omitempty,gte=0"`
	SemanticWeight *float64 `json:"semantic_weight" binding:"omitempty,gte=0"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "service": "exomind"})
}

func (s *Server) handleDoctor(c *gin.Context) {
	notesRoot := config.ExpandPath(c.DefaultQuery("notes_root", s.defaults.NotesRoot))
	graphPath := config.ExpandPath(c.DefaultQuery("graph", s.defaults.GraphPath))

	report, err := s.engine.Doctor(c.Request.Context(), notesRoot, graphPath)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) handleIndex(c *gin.Context) {
	var req indexRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	outRoot := req.OutRoot
	if outRoot == "" {
		outRoot = s.defaults.OutRoot
	}

	result, err := s.engine.Index(c.Request.Context(), config.ExpandPath(req.NotesRoot), config.ExpandPath(outRoot))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleRecall(c *gin.Context) {
	var req recallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	topk := s.defaults.TopK
	if req.TopK != nil {
		topk = *req.TopK
	}
	graphPath := req.Graph
	if graphPath == "" {
		graphPath = s.defaults.GraphPath
	}
	weights := s.defaults.Weights
	if req.LexicalWeight != nil {
		weights.Lexical = *req.LexicalWeight
	}
	if req.GraphWeight != nil {
		weights.Graph = *req.GraphWeight
	}
	if req.SemanticWeight != nil {
		weights.Semantic = *req.SemanticWeight
	}

	rows, err := s.engine.Recall(c.Request.Context(), config.ExpandPath(graphPath), *req.Query, topk, weights)
	if err != nil {
		writeError(c, err)
		return
	}
	if rows == nil {
		rows = []domain.RecallRow{}
	}

	c.JSON(http.StatusOK, gin.H{
		"query":   *req.Query,
		"topk":    topk,
		"results": rows,
	})
}

// writeError maps application errors to status codes
func writeError(c *gin.Context, err error) {
	var validationErr *application.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	case errors.Is(err, application.ErrGraphNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
	}
}
