// Package scoring holds the pure scoring rules: resume strength, job
// matching, and quiz grading.
package scoring

import (
	"sort"
	"strings"

	"github.com/quantumcareers/backend/pkg"
	"github.com/quantumcareers/backend/pkg/model"
)

// Strength summarizes resume richness on a 0..10 scale. Each dimension is
// capped so no single one can dominate the total.
func Strength(tech []string, education []model.Education, experience []model.Experience) float64 {
	score := 0.0
	score += min(float64(len(tech))*0.5, 4.0)
	score += min(float64(len(education))*1.0, 3.0)
	score += min(float64(len(experience))*0.75, 3.0)
	return pkg.Round2(min(score, 10.0))
}

// JobMatch compares a user's skills against a job's required skills,
// case-insensitively. The percentage is 0 when the job requires nothing.
func JobMatch(userSkills, jobSkills []string) (pct float64, matching, missing []string) {
	user := lowerSet(userSkills)
	required := lowerSet(jobSkills)

	matching = make([]string, 0, len(required))
	missing = make([]string, 0, len(required))
	for s := range required {
		if _, ok := user[s]; ok {
			matching = append(matching, s)
		} else {
			missing = append(missing, s)
		}
	}
	sort.Strings(matching)
	sort.Strings(missing)

	if len(required) > 0 {
		pct = float64(len(matching)) / float64(len(required)) * 100.0
	}
	return pct, matching, missing
}

// Recommend scores the user against the whole catalog, keeps strictly
// positive matches, and returns the top 3 by descending percentage. The sort
// is stable so ties keep catalog order.
func Recommend(userSkills []string, jobs []model.JobPosting) []model.JobRecommendation {
	recs := make([]model.JobRecommendation, 0, len(jobs))
	for _, job := range jobs {
		pct, matching, missing := JobMatch(userSkills, job.RequiredSkills)
		if pct <= 0 {
			continue
		}
		recs = append(recs, model.JobRecommendation{
			JobID:           job.ID,
			Title:           job.Title,
			Company:         job.Company,
			MatchPercentage: pkg.Round2(pct),
			MatchingSkills:  matching,
			MissingSkills:   missing,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].MatchPercentage > recs[j].MatchPercentage
	})
	if len(recs) > 3 {
		recs = recs[:3]
	}
	return recs
}

// unanswered is the sentinel for an MCQ the user never answered. It can never
// equal a stored correct index.
const unanswered = -1

// GradeMCQ compares submitted answer indexes to the stored correct answers.
func GradeMCQ(questions []model.MCQQuestion, answers map[string]int) model.MCQResults {
	results := model.MCQResults{
		Total:   len(questions),
		Details: make([]model.MCQDetail, 0, len(questions)),
	}
	for _, q := range questions {
		userAnswer, ok := answers[q.ID]
		if !ok {
			userAnswer = unanswered
		}
		correct := userAnswer == q.CorrectAnswer
		if correct {
			results.Correct++
		}
		results.Details = append(results.Details, model.MCQDetail{
			QuestionID:    q.ID,
			Correct:       correct,
			UserAnswer:    userAnswer,
			CorrectAnswer: q.CorrectAnswer,
			Category:      q.Category,
		})
	}
	if results.Total > 0 {
		results.Score = float64(results.Correct) / float64(results.Total) * 100
	}
	return results
}

// GradeCoding awards partial credit from the structure of the submitted
// source text. It is a structural proxy, not execution or test-case
// verification.
func GradeCoding(questions []model.CodingQuestion, answers map[string]string) model.CodingResults {
	results := model.CodingResults{
		Details: make([]model.CodingDetail, 0, len(questions)),
	}
	total := 0
	for _, q := range questions {
		code := answers[q.ID]
		score := 0
		if len(strings.TrimSpace(code)) > 20 {
			score += 30
		}
		if strings.Contains(code, "def ") || strings.Contains(code, "function ") {
			score += 30
		}
		if strings.Contains(code, "return") {
			score += 40
		}
		total += score

		feedback := "Could use improvement in structure."
		if score > 60 {
			feedback = "Code structure looks good!"
		}
		results.Details = append(results.Details, model.CodingDetail{
			QuestionID: q.ID,
			Score:      score,
			MaxScore:   100,
			Feedback:   feedback,
		})
	}
	if len(questions) > 0 {
		results.Score = float64(total) / float64(len(questions)*100) * 100
	}
	return results
}

// Total weighs the MCQ score at 60% and the coding score at 40%.
func Total(mcqScore, codingScore float64) float64 {
	return pkg.Round2(mcqScore*0.6 + codingScore*0.4)
}

// Analytics summarizes a result list that is sorted newest-first.
func Analytics(results []model.TestResult) model.TestAnalytics {
	if len(results) == 0 {
		return model.TestAnalytics{ImprovementTrend: "no_data"}
	}

	sum, best := 0.0, results[0].TotalScore
	for _, r := range results {
		sum += r.TotalScore
		if r.TotalScore > best {
			best = r.TotalScore
		}
	}

	trend := "stable"
	if len(results) > 1 && results[0].TotalScore > results[len(results)-1].TotalScore {
		trend = "improving"
	}

	return model.TestAnalytics{
		AverageScore:     pkg.Round2(sum / float64(len(results))),
		BestScore:        pkg.Round2(best),
		TotalTests:       len(results),
		ImprovementTrend: trend,
	}
}

func lowerSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			set[s] = struct{}{}
		}
	}
	return set
}
