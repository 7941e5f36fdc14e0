package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/quantumcareers/backend/internal/scoring"
	"github.com/quantumcareers/backend/pkg/model"
	"github.com/quantumcareers/backend/pkg/response"
)

const sessionDurationMinutes = 30

// mocked: the client does not report elapsed time yet
const mockedDurationTaken = 25

// StartTest generates a quiz (LLM or fallback bank) and opens a session.
func (h *Handler) StartTest(c *gin.Context) {
	userID := c.PostForm("user_id")
	if userID == "" {
		response.BadRequest(c, "user_id is required")
		return
	}

	mcq, coding := h.Generator.Generate(c.Request.Context())

	now := time.Now().UTC()
	session := model.TestSession{
		ID:              uuid.NewString(),
		UserID:          userID,
		MCQQuestions:    mcq,
		CodingQuestions: coding,
		DurationMinutes: sessionDurationMinutes,
		Status:          model.SessionActive,
		StartTime:       now,
		ExpiresAt:       now.Add(sessionDurationMinutes * time.Minute),
	}
	h.Store.SaveSession(c.Request.Context(), session)

	response.OK(c, gin.H{
		"session_id":       session.ID,
		"mcq_questions":    session.MCQQuestions,
		"coding_questions": session.CodingQuestions,
		"duration_minutes": session.DurationMinutes,
	})
}

// SubmitTest grades a submission and completes the session. A session is
// graded at most once; a repeat submission is rejected, not recomputed.
func (h *Handler) SubmitTest(c *gin.Context) {
	var submission model.TestSubmission
	if err := c.ShouldBindJSON(&submission); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	session, ok := h.Store.Session(submission.SessionID)
	if !ok {
		response.NotFound(c, "Test session not found")
		return
	}

	if session.Status == model.SessionActive && time.Now().UTC().After(session.ExpiresAt) {
		session.Status = model.SessionExpired
		h.Store.SetSessionStatus(c.Request.Context(), session.ID, model.SessionExpired)
	}
	if session.Status != model.SessionActive {
		response.BadRequest(c, "Test session is not active")
		return
	}

	mcqResults := scoring.GradeMCQ(session.MCQQuestions, submission.MCQAnswers)
	codingResults := scoring.GradeCoding(session.CodingQuestions, submission.CodingAnswers)

	result := model.TestResult{
		SessionID:     submission.SessionID,
		UserID:        session.UserID,
		MCQResults:    mcqResults,
		CodingResults: codingResults,
		TotalScore:    scoring.Total(mcqResults.Score, codingResults.Score),
		Timestamp:     time.Now().UTC(),
		DurationTaken: mockedDurationTaken,
	}

	h.Store.SaveResult(c.Request.Context(), result)
	h.Store.SetSessionStatus(c.Request.Context(), session.ID, model.SessionCompleted)

	response.OK(c, result)
}

// GetTestHistory returns a user's results newest-first with summary
// analytics.
func (h *Handler) GetTestHistory(c *gin.Context) {
	userID := c.Param("user_id")

	results := h.Store.ResultsByUser(c.Request.Context(), userID)
	if results == nil {
		results = []model.TestResult{}
	}

	response.OK(c, gin.H{
		"test_history": results,
		"analytics":    scoring.Analytics(results),
	})
}
