package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andreystarchikov/lemmatizator/pkg/lemma/internalerr"
)

type analyzeRequest struct {
	Text string `json:"text"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleHealth is a liveness check independent of the analysis path: it
// never touches the morphological engine.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleAnalyze runs one analysis. Blank input is a client error and never
// reaches the pipeline; an unconstructible engine is a server error naming
// the unavailable capability. No partial results either way.
func (s *Server) handleAnalyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	result, err := s.svc.Analyze(req.Text)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, result)
	case errors.Is(err, internalerr.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, errorResponse{Error: "text is empty"})
	case errors.Is(err, internalerr.ErrEngineUnavailable):
		c.JSON(http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "analysis failed"})
	}
}
