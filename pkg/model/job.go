package model

// JobPosting is one entry in the static job catalog.
type JobPosting struct {
	ID              string   `json:"id" bson:"id"`
	Title           string   `json:"title" bson:"title"`
	Company         string   `json:"company" bson:"company"`
	Description     string   `json:"description" bson:"description"`
	RequiredSkills  []string `json:"required_skills" bson:"required_skills"`
	ExperienceYears int      `json:"experience_years" bson:"experience_years"`
	SalaryRange     string   `json:"salary_range" bson:"salary_range"`
}

// JobRecommendation is a match against one catalog posting, recomputed on
// every request.
type JobRecommendation struct {
	JobID           string   `json:"job_id" bson:"job_id"`
	Title           string   `json:"title" bson:"title"`
	Company         string   `json:"company" bson:"company"`
	MatchPercentage float64  `json:"match_percentage" bson:"match_percentage"`
	MatchingSkills  []string `json:"matching_skills" bson:"matching_skills"`
	MissingSkills   []string `json:"missing_skills" bson:"missing_skills"`
}

// RoleRequirement describes what a supported target role expects from a
// candidate.
type RoleRequirement struct {
	RequiredSkills  []string `json:"required_skills"`
	PreferredSkills []string `json:"preferred_skills"`
	MinExperience   int      `json:"min_experience"`
	Education       string   `json:"education"`
}

// LearningResource is one generated study pointer in an upgrade plan.
type LearningResource struct {
	Skill        string `json:"skill"`
	ResourceName string `json:"resource_name"`
	URL          string `json:"url"`
	Type         string `json:"type"`
	Duration     string `json:"duration"`
}

// UpgradePlan is the derived skill-gap plan for a target role.
type UpgradePlan struct {
	TargetRole           string             `json:"target_role"`
	MissingSkills        []string           `json:"missing_skills"`
	RecommendedResources []LearningResource `json:"recommended_resources"`
	SuggestedProjects    []string           `json:"suggested_projects"`
	EstimatedTimeWeeks   int                `json:"estimated_time_weeks"`
}
