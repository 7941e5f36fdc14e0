package handler

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/quantumcareers/backend/internal/catalog"
	"github.com/quantumcareers/backend/internal/scoring"
	"github.com/quantumcareers/backend/pkg"
	"github.com/quantumcareers/backend/pkg/model"
	"github.com/quantumcareers/backend/pkg/response"
)

// UpgradeMe builds a skill-gap plan towards a supported target role.
func (h *Handler) UpgradeMe(c *gin.Context) {
	targetRole := c.PostForm("target_role")
	userID := c.PostForm("user_id")
	if targetRole == "" || userID == "" {
		response.BadRequest(c, "target_role and user_id are required")
		return
	}

	analysis, ok := h.Store.Resume(c.Request.Context(), userID)
	if !ok {
		response.NotFound(c, "Resume analysis not found")
		return
	}

	reqs, ok := catalog.RoleRequirements[targetRole]
	if !ok {
		response.BadRequest(c, "Target role not supported")
		return
	}

	_, _, missing := scoring.JobMatch(analysis.TechStacks, reqs.RequiredSkills)

	resources := make([]model.LearningResource, 0, len(missing))
	for _, skill := range missing {
		resources = append(resources, model.LearningResource{
			Skill:        skill,
			ResourceName: fmt.Sprintf("Master %s – curated path", pkg.TitleCase(skill)),
			URL:          fmt.Sprintf("https://example.com/learn-%s", pkg.Slugify(skill)),
			Type:         "online_course",
			Duration:     "3-5 weeks",
		})
	}

	projects := make([]string, 0, 4)
	for _, skill := range missing {
		if len(projects) == 4 {
			break
		}
		if strings.Contains(skill, "quantum") {
			projects = append(projects, fmt.Sprintf("Build a quantum algorithm using %s", skill))
		} else {
			projects = append(projects, fmt.Sprintf("Create a demo showcasing %s", skill))
		}
	}

	response.OK(c, model.UpgradePlan{
		TargetRole:           targetRole,
		MissingSkills:        missing,
		RecommendedResources: resources,
		SuggestedProjects:    projects,
		EstimatedTimeWeeks:   max(4, len(missing)*4),
	})
}
