package scoring

import (
	"math"
	"testing"
	"time"

	"github.com/quantumcareers/backend/pkg/model"
)

func skills(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = string(rune('a' + i%26))
	}
	return out
}

func educations(n int) []model.Education {
	out := make([]model.Education, n)
	for i := range out {
		out[i] = model.Education{Description: "BSc Physics, Example University"}
	}
	return out
}

func experiences(n int) []model.Experience {
	out := make([]model.Experience, n)
	for i := range out {
		out[i] = model.Experience{Role: "Software Engineer at Example Corp", Duration: 2}
	}
	return out
}

func TestStrengthBounds(t *testing.T) {
	for s := 0; s <= 20; s++ {
		for e := 0; e <= 6; e++ {
			for w := 0; w <= 8; w++ {
				got := Strength(skills(s), educations(e), experiences(w))
				if got < 0 || got > 10 {
					t.Fatalf("Strength(%d,%d,%d) = %v, want within [0,10]", s, e, w, got)
				}
			}
		}
	}
}

func TestStrengthMonotonic(t *testing.T) {
	for s := 0; s < 12; s++ {
		a := Strength(skills(s), educations(2), experiences(2))
		b := Strength(skills(s+1), educations(2), experiences(2))
		if b < a {
			t.Fatalf("strength decreased when adding a skill: %v -> %v", a, b)
		}
	}
	for e := 0; e < 5; e++ {
		a := Strength(skills(3), educations(e), experiences(2))
		b := Strength(skills(3), educations(e+1), experiences(2))
		if b < a {
			t.Fatalf("strength decreased when adding education: %v -> %v", a, b)
		}
	}
	for w := 0; w < 7; w++ {
		a := Strength(skills(3), educations(2), experiences(w))
		b := Strength(skills(3), educations(2), experiences(w+1))
		if b < a {
			t.Fatalf("strength decreased when adding experience: %v -> %v", a, b)
		}
	}
}

func TestStrengthCaps(t *testing.T) {
	// Each dimension saturates: 4 + 3 + 3 = 10 at most.
	if got := Strength(skills(20), educations(6), experiences(8)); got != 10.0 {
		t.Fatalf("saturated strength = %v, want 10", got)
	}
	if got := Strength(nil, nil, nil); got != 0.0 {
		t.Fatalf("empty strength = %v, want 0", got)
	}
}

func TestJobMatch(t *testing.T) {
	pct, matching, missing := JobMatch(
		[]string{"Python", " docker ", "Git"},
		[]string{"python", "Docker", "Kubernetes", "AWS"},
	)
	if want := 50.0; pct != want {
		t.Fatalf("pct = %v, want %v", pct, want)
	}
	if len(matching) != 2 || matching[0] != "docker" || matching[1] != "python" {
		t.Fatalf("matching = %v", matching)
	}
	if len(missing) != 2 || missing[0] != "aws" || missing[1] != "kubernetes" {
		t.Fatalf("missing = %v", missing)
	}
}

func TestJobMatchEdges(t *testing.T) {
	// Empty requirement list matches nothing.
	if pct, _, _ := JobMatch([]string{"Python"}, nil); pct != 0 {
		t.Fatalf("empty requirements: pct = %v, want 0", pct)
	}
	// Superset of requirements is a full match.
	pct, _, missing := JobMatch([]string{"Python", "Git", "Docker"}, []string{"git", "docker"})
	if pct != 100 {
		t.Fatalf("superset: pct = %v, want 100", pct)
	}
	if len(missing) != 0 {
		t.Fatalf("superset: missing = %v, want none", missing)
	}
	// Always within [0,100].
	for n := 0; n < 6; n++ {
		pct, _, _ := JobMatch(skills(n), []string{"a", "b", "c", "z"})
		if pct < 0 || pct > 100 {
			t.Fatalf("pct = %v out of range", pct)
		}
	}
}

func TestRecommend(t *testing.T) {
	jobs := []model.JobPosting{
		{ID: "j1", Title: "One", RequiredSkills: []string{"Python", "Rust"}},
		{ID: "j2", Title: "Two", RequiredSkills: []string{"Python"}},
		{ID: "j3", Title: "Three", RequiredSkills: []string{"Haskell"}},
		{ID: "j4", Title: "Four", RequiredSkills: []string{"Python", "Go"}},
		{ID: "j5", Title: "Five", RequiredSkills: []string{"Python", "Go", "Rust", "C"}},
	}

	recs := Recommend([]string{"python", "go"}, jobs)
	if len(recs) != 3 {
		t.Fatalf("got %d recommendations, want 3", len(recs))
	}
	// j3 has zero match and must be excluded even though the list is capped.
	for _, r := range recs {
		if r.JobID == "j3" {
			t.Fatalf("zero-match job included: %+v", r)
		}
		if r.MatchPercentage <= 0 || r.MatchPercentage > 100 {
			t.Fatalf("match percentage out of range: %+v", r)
		}
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].MatchPercentage > recs[i-1].MatchPercentage {
			t.Fatalf("not sorted descending: %v then %v", recs[i-1].MatchPercentage, recs[i].MatchPercentage)
		}
	}
	if recs[0].JobID != "j2" {
		t.Fatalf("best match = %s, want j2", recs[0].JobID)
	}
	// j2 and j4 tie at 100 and keep catalog order; j1 beats j5 the same way
	// at 50, and j5 drops off the cap.
	if recs[1].JobID != "j4" || recs[2].JobID != "j1" {
		t.Fatalf("order = %s, %s; want j4 then j1", recs[1].JobID, recs[2].JobID)
	}
}

func mcqs() []model.MCQQuestion {
	return []model.MCQQuestion{
		{ID: "mcq1", CorrectAnswer: 2, Category: "basics"},
		{ID: "mcq2", CorrectAnswer: 0, Category: "basics"},
		{ID: "mcq3", CorrectAnswer: 1, Category: "gates"},
	}
}

func TestGradeMCQ(t *testing.T) {
	// No answers at all: everything wrong, score 0.
	res := GradeMCQ(mcqs(), nil)
	if res.Score != 0 || res.Correct != 0 || res.Total != 3 {
		t.Fatalf("unanswered: %+v", res)
	}
	for _, d := range res.Details {
		if d.Correct || d.UserAnswer != -1 {
			t.Fatalf("unanswered detail should be wrong with sentinel: %+v", d)
		}
	}

	// All correct: score 100.
	res = GradeMCQ(mcqs(), map[string]int{"mcq1": 2, "mcq2": 0, "mcq3": 1})
	if res.Score != 100 || res.Correct != 3 {
		t.Fatalf("all correct: %+v", res)
	}

	// Partial.
	res = GradeMCQ(mcqs(), map[string]int{"mcq1": 2, "mcq2": 3})
	if res.Correct != 1 {
		t.Fatalf("partial: correct = %d, want 1", res.Correct)
	}
	if math.Abs(res.Score-100.0/3.0) > 1e-9 {
		t.Fatalf("partial: score = %v", res.Score)
	}

	// No questions: score 0, not NaN.
	res = GradeMCQ(nil, nil)
	if res.Score != 0 || res.Total != 0 {
		t.Fatalf("no questions: %+v", res)
	}
}

func TestGradeCoding(t *testing.T) {
	questions := []model.CodingQuestion{{ID: "code1"}, {ID: "code2"}}

	// Empty submission: zero for that question.
	res := GradeCoding(questions, map[string]string{})
	if res.Score != 0 {
		t.Fatalf("empty: score = %v, want 0", res.Score)
	}
	for _, d := range res.Details {
		if d.Score != 0 || d.MaxScore != 100 {
			t.Fatalf("empty detail: %+v", d)
		}
	}

	// Full structural credit: >20 chars, def marker, return statement.
	full := "def factorial(n):\n    if n == 0:\n        return 1\n    return n * factorial(n-1)"
	res = GradeCoding(questions[:1], map[string]string{"code1": full})
	if res.Details[0].Score != 100 || res.Score != 100 {
		t.Fatalf("full credit: %+v", res)
	}
	if res.Details[0].Feedback != "Code structure looks good!" {
		t.Fatalf("feedback = %q", res.Details[0].Feedback)
	}

	// Return alone earns 40.
	res = GradeCoding(questions[:1], map[string]string{"code1": "return 1"})
	if res.Details[0].Score != 40 {
		t.Fatalf("return only: %+v", res.Details[0])
	}
}

func TestTotal(t *testing.T) {
	if got := Total(100, 0); got != 60.0 {
		t.Fatalf("Total(100,0) = %v, want 60", got)
	}
	if got := Total(50, 50); got != 50.0 {
		t.Fatalf("Total(50,50) = %v, want 50", got)
	}
	if got := Total(100.0/3.0, 40); got != 36.0 {
		t.Fatalf("Total = %v, want 36", got)
	}
}

func results(scores ...float64) []model.TestResult {
	now := time.Now().UTC()
	out := make([]model.TestResult, len(scores))
	for i, s := range scores {
		// newest first, like ResultsByUser returns
		out[i] = model.TestResult{TotalScore: s, Timestamp: now.Add(-time.Duration(i) * time.Hour)}
	}
	return out
}

func TestAnalytics(t *testing.T) {
	a := Analytics(nil)
	if a.ImprovementTrend != "no_data" || a.TotalTests != 0 {
		t.Fatalf("empty analytics: %+v", a)
	}

	a = Analytics(results(80, 60, 40))
	if a.ImprovementTrend != "improving" {
		t.Fatalf("trend = %q, want improving", a.ImprovementTrend)
	}
	if a.AverageScore != 60.0 || a.BestScore != 80.0 || a.TotalTests != 3 {
		t.Fatalf("analytics: %+v", a)
	}

	a = Analytics(results(40, 60, 80))
	if a.ImprovementTrend != "stable" {
		t.Fatalf("trend = %q, want stable", a.ImprovementTrend)
	}

	a = Analytics(results(55))
	if a.ImprovementTrend != "stable" || a.BestScore != 55 {
		t.Fatalf("single result: %+v", a)
	}
}
