package handler

import (
	"github.com/gin-gonic/gin"

	"go.uber.org/zap"

	"github.com/quantumcareers/backend/internal/assessment"
	"github.com/quantumcareers/backend/internal/mistral"
	"github.com/quantumcareers/backend/internal/store"
)

type Handler struct {
	Logger         *zap.Logger
	Store          *store.Store
	LLM            *mistral.Client
	Generator      *assessment.Generator
	MaxUploadBytes int64
}

// Health is a trivial liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}
