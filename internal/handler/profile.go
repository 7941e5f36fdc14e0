package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/quantumcareers/backend/pkg"
	"github.com/quantumcareers/backend/pkg/model"
	"github.com/quantumcareers/backend/pkg/response"
)

// ProfileOverview aggregates the user's resume, cached recommendation count,
// and test performance into one view. Missing pieces degrade to empty values
// rather than failing.
func (h *Handler) ProfileOverview(c *gin.Context) {
	userID := c.Param("user_id")
	overview := gin.H{}

	if analysis, ok := h.Store.Resume(c.Request.Context(), userID); ok {
		overview["resume"] = analysis
	} else {
		overview["resume"] = nil
	}

	overview["available_jobs"] = len(h.Store.Recommendations(userID))

	results := h.Store.ResultsByUser(c.Request.Context(), userID)
	performance := model.TestPerformance{}
	if len(results) > 0 {
		sum := 0.0
		for _, r := range results {
			sum += r.TotalScore
		}
		performance.AverageScore = pkg.Round2(sum / float64(len(results)))
		performance.TotalTests = len(results)
		performance.LastScore = pkg.Round2(results[0].TotalScore)
	}
	overview["test_performance"] = performance

	response.OK(c, overview)
}
