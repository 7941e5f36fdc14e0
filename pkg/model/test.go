package model

import (
	"time"
)

type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
	SessionExpired   SessionStatus = "expired"
)

// MCQQuestion is a multiple-choice question. CorrectAnswer is a zero-based
// index into Options.
type MCQQuestion struct {
	ID            string   `json:"id" bson:"id"`
	Question      string   `json:"question" bson:"question"`
	Options       []string `json:"options" bson:"options"`
	CorrectAnswer int      `json:"correct_answer" bson:"correct_answer"`
	Category      string   `json:"category" bson:"category"`
	Difficulty    string   `json:"difficulty" bson:"difficulty"`
}

// TestCase is a sample input/expected pair attached to a coding question.
// Values come from generated JSON and stay loosely typed.
type TestCase struct {
	Input    any `json:"input" bson:"input"`
	Expected any `json:"expected" bson:"expected"`
}

type CodingQuestion struct {
	ID         string     `json:"id" bson:"id"`
	Question   string     `json:"question" bson:"question"`
	Template   string     `json:"template" bson:"template"`
	TestCases  []TestCase `json:"test_cases" bson:"test_cases"`
	Category   string     `json:"category" bson:"category"`
	Difficulty string     `json:"difficulty" bson:"difficulty"`
}

// TestSession is one assessment run. Status transitions active→completed or
// active→expired at most once.
type TestSession struct {
	ID              string           `json:"id" bson:"id"`
	UserID          string           `json:"user_id" bson:"user_id"`
	MCQQuestions    []MCQQuestion    `json:"mcq_questions" bson:"mcq_questions"`
	CodingQuestions []CodingQuestion `json:"coding_questions" bson:"coding_questions"`
	DurationMinutes int              `json:"duration_minutes" bson:"duration_minutes"`
	Status          SessionStatus    `json:"status" bson:"status"`
	StartTime       time.Time        `json:"start_time" bson:"start_time"`
	ExpiresAt       time.Time        `json:"expires_at" bson:"expires_at"`
}

// TestSubmission is the submit_test request body.
type TestSubmission struct {
	SessionID     string            `json:"session_id" binding:"required"`
	MCQAnswers    map[string]int    `json:"mcq_answers"`
	CodingAnswers map[string]string `json:"coding_answers"`
}

// MCQDetail is the per-question grading record for one MCQ.
type MCQDetail struct {
	QuestionID    string `json:"question_id" bson:"question_id"`
	Correct       bool   `json:"correct" bson:"correct"`
	UserAnswer    int    `json:"user_answer" bson:"user_answer"`
	CorrectAnswer int    `json:"correct_answer" bson:"correct_answer"`
	Category      string `json:"category" bson:"category"`
}

type MCQResults struct {
	Score   float64     `json:"score" bson:"score"`
	Correct int         `json:"correct" bson:"correct"`
	Total   int         `json:"total" bson:"total"`
	Details []MCQDetail `json:"details" bson:"details"`
}

// CodingDetail is the per-question grading record for one coding answer.
type CodingDetail struct {
	QuestionID string `json:"question_id" bson:"question_id"`
	Score      int    `json:"score" bson:"score"`
	MaxScore   int    `json:"max_score" bson:"max_score"`
	Feedback   string `json:"feedback" bson:"feedback"`
}

type CodingResults struct {
	Score   float64        `json:"score" bson:"score"`
	Details []CodingDetail `json:"details" bson:"details"`
}

// TestResult is the graded outcome of one session, created exactly once.
type TestResult struct {
	SessionID     string        `json:"session_id" bson:"session_id"`
	UserID        string        `json:"user_id" bson:"user_id"`
	MCQResults    MCQResults    `json:"mcq_results" bson:"mcq_results"`
	CodingResults CodingResults `json:"coding_results" bson:"coding_results"`
	TotalScore    float64       `json:"total_score" bson:"total_score"`
	Timestamp     time.Time     `json:"timestamp" bson:"timestamp"`
	DurationTaken int           `json:"duration_taken" bson:"duration_taken"`
}

// TestAnalytics summarizes a user's test history.
type TestAnalytics struct {
	AverageScore     float64 `json:"average_score"`
	BestScore        float64 `json:"best_score"`
	TotalTests       int     `json:"total_tests"`
	ImprovementTrend string  `json:"improvement_trend"`
}

// TestPerformance is the condensed score summary on the profile overview.
type TestPerformance struct {
	AverageScore float64 `json:"average_score"`
	TotalTests   int     `json:"total_tests"`
	LastScore    float64 `json:"last_score"`
}
