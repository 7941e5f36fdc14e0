package handler

import (
	"errors"
	"io"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/quantumcareers/backend/internal/extract"
	"github.com/quantumcareers/backend/internal/parse"
	"github.com/quantumcareers/backend/internal/scoring"
	"github.com/quantumcareers/backend/pkg/model"
	"github.com/quantumcareers/backend/pkg/response"
)

// UploadResume accepts a resume file, extracts its text, analyzes it with
// the LLM when available (heuristics otherwise), and stores the analysis.
func (h *Handler) UploadResume(c *gin.Context) {
	userID := c.PostForm("user_id")
	if userID == "" {
		response.BadRequest(c, "user_id is required")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.Logger.Sugar().Errorw("failed to open upload", "err", err)
		response.InternalError(c, "error processing resume")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		h.Logger.Sugar().Errorw("failed to read upload", "err", err)
		response.InternalError(c, "error processing resume")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	text, err := extract.Text(contentType, content, h.MaxUploadBytes)
	if err != nil {
		var parseErr *extract.ParseError
		switch {
		case errors.Is(err, extract.ErrUnsupportedType):
			response.BadRequest(c, "Only PDF, DOCX/DOC, and TXT files are supported")
		case errors.Is(err, extract.ErrEmptyFile):
			response.BadRequest(c, "Empty file")
		case errors.Is(err, extract.ErrFileTooLarge):
			response.BadRequest(c, "File size must be less than 10MB")
		case errors.As(err, &parseErr):
			response.BadRequest(c, parseErr.Error())
		default:
			h.Logger.Sugar().Errorw("resume extraction failed", "err", err)
			response.InternalError(c, "error processing resume")
		}
		return
	}

	analysis := h.analyze(c, userID, text)
	h.Store.SaveResume(c.Request.Context(), analysis)

	response.OK(c, analysis)
}

// analyze runs the LLM extraction when configured and merges it with the
// heuristics; heuristics alone otherwise. The heuristic skill scan always
// runs as a safety net.
func (h *Handler) analyze(c *gin.Context, userID, text string) model.ResumeAnalysis {
	techStacks := parse.TechStacks(text)
	education := parse.Education(text)
	experience := parse.WorkExperience(text)

	if h.LLM.Enabled() {
		facts, err := h.LLM.ExtractResume(c.Request.Context(), text)
		if err != nil {
			h.Logger.Sugar().Warnw("llm resume extraction failed, using heuristics", "err", err)
		} else {
			techStacks = mergeSkills(techStacks, facts.TechStacks)
			if len(facts.Education) > 0 {
				education = facts.Education
			}
			if len(facts.WorkExperience) > 0 {
				experience = facts.WorkExperience
			}
		}
	}

	return model.ResumeAnalysis{
		ID:             uuid.NewString(),
		UserID:         userID,
		TechStacks:     techStacks,
		Education:      education,
		WorkExperience: experience,
		StrengthScore:  scoring.Strength(techStacks, education, experience),
		Timestamp:      time.Now().UTC(),
	}
}

func mergeSkills(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	merged := make([]string, 0, len(a)+len(b))
	for _, s := range append(append([]string{}, a...), b...) {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		merged = append(merged, s)
	}
	sort.Strings(merged)
	return merged
}

// GetResumeAnalysis returns the stored analysis for a user.
func (h *Handler) GetResumeAnalysis(c *gin.Context) {
	userID := c.Param("user_id")

	analysis, ok := h.Store.Resume(c.Request.Context(), userID)
	if !ok {
		response.NotFound(c, "Resume analysis not found")
		return
	}
	response.OK(c, analysis)
}
