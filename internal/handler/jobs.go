package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/quantumcareers/backend/internal/catalog"
	"github.com/quantumcareers/backend/internal/scoring"
	"github.com/quantumcareers/backend/pkg/response"
)

// GetJobRecommendations recomputes the user's matches against the catalog.
func (h *Handler) GetJobRecommendations(c *gin.Context) {
	userID := c.Param("user_id")

	analysis, ok := h.Store.Resume(c.Request.Context(), userID)
	if !ok {
		response.NotFound(c, "Resume analysis not found")
		return
	}

	recs := scoring.Recommend(analysis.TechStacks, catalog.Jobs)
	h.Store.SaveRecommendations(c.Request.Context(), userID, recs)

	response.OK(c, gin.H{
		"recommendations": recs,
		"jobs_detail":     catalog.Jobs,
	})
}
