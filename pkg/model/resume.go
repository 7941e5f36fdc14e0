package model

import (
	"time"
)

// Education is one qualifying education line from a resume. Year is the
// largest 4-digit year found on the line, nil when the line carries none.
type Education struct {
	Description string `json:"description" bson:"description"`
	Year        *int   `json:"year" bson:"year"`
}

// Experience is one qualifying work-experience line from a resume.
// Duration is a filler value, not derived from the text.
type Experience struct {
	Role     string `json:"role" bson:"role"`
	Year     *int   `json:"year" bson:"year"`
	Duration int    `json:"duration" bson:"duration"`
}

// ResumeAnalysis is the structured extraction for one uploaded resume.
// At most one live analysis exists per user; a re-upload replaces it.
type ResumeAnalysis struct {
	ID             string       `json:"id" bson:"id"`
	UserID         string       `json:"user_id" bson:"user_id"`
	TechStacks     []string     `json:"tech_stacks" bson:"tech_stacks"`
	Education      []Education  `json:"education" bson:"education"`
	WorkExperience []Experience `json:"work_experience" bson:"work_experience"`
	StrengthScore  float64      `json:"strength_score" bson:"strength_score"`
	Timestamp      time.Time    `json:"timestamp" bson:"timestamp"`
}
