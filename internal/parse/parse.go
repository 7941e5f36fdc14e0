// Package parse holds the deterministic resume heuristics. They are shallow
// line-based pattern matching, always available, and serve as the fallback
// when the LLM path is unavailable.
package parse

import (
	"regexp"
	"sort"
	"strings"

	"github.com/quantumcareers/backend/pkg/model"
)

// TechKeywords is the canonical skill vocabulary. Matching is
// case-insensitive substring containment; the canonical form is reported.
var TechKeywords = []string{
	"Python", "JavaScript", "Java", "C++", "C#", "Go", "Rust", "Ruby", "PHP",
	"React", "Angular", "Vue", "Node.js", "Django", "Flask", "FastAPI", "Spring",
	"Docker", "Kubernetes", "AWS", "Azure", "GCP", "Git", "Linux", "SQL", "MongoDB",
	"Machine Learning", "AI", "Deep Learning", "TensorFlow", "PyTorch", "Pandas", "NumPy",
	"Quantum Computing", "Qiskit", "Cirq", "Linear Algebra", "Statistics", "MATLAB",
	"Blockchain", "DevOps", "CI/CD", "Terraform", "Ansible",
}

var educationKeywords = []string{"Bachelor", "Master", "PhD", "University", "College", "Degree"}

var workKeywords = []string{"Engineer", "Developer", "Manager", "Analyst", "Scientist", "Researcher", "Intern"}

var yearRe = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)

const (
	maxEducationEntries  = 4
	maxExperienceEntries = 6

	minEducationLineLen  = 12
	minExperienceLineLen = 15
)

// TechStacks returns every vocabulary skill mentioned anywhere in the text,
// deduplicated and sorted.
func TechStacks(text string) []string {
	upper := strings.ToUpper(text)
	found := make(map[string]struct{})
	for _, tech := range TechKeywords {
		if strings.Contains(upper, strings.ToUpper(tech)) {
			found[tech] = struct{}{}
		}
	}

	stacks := make([]string, 0, len(found))
	for tech := range found {
		stacks = append(stacks, tech)
	}
	sort.Strings(stacks)
	return stacks
}

// Years returns all 4-digit years in 1900..2099 found in the text.
func Years(text string) []int {
	var years []int
	for _, m := range yearRe.FindAllString(text, -1) {
		y := 0
		for _, c := range m {
			y = y*10 + int(c-'0')
		}
		years = append(years, y)
	}
	return years
}

func maxYear(line string) *int {
	years := Years(line)
	if len(years) == 0 {
		return nil
	}
	max := years[0]
	for _, y := range years[1:] {
		if y > max {
			max = y
		}
	}
	return &max
}

func containsAny(line string, keywords []string) bool {
	lower := strings.ToLower(line)
	for _, k := range keywords {
		if strings.Contains(lower, strings.ToLower(k)) {
			return true
		}
	}
	return false
}

// Education scans line by line for degree and institution markers. Output is
// capped to the first qualifying lines in document order.
func Education(text string) []model.Education {
	var education []model.Education
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) < minEducationLineLen {
			continue
		}
		if !containsAny(trimmed, educationKeywords) {
			continue
		}
		education = append(education, model.Education{
			Description: trimmed,
			Year:        maxYear(trimmed),
		})
		if len(education) == maxEducationEntries {
			break
		}
	}
	return education
}

// WorkExperience scans line by line for job-title markers. Duration is a
// filler value, not derived from the text.
func WorkExperience(text string) []model.Experience {
	var exp []model.Experience
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) < minExperienceLineLen {
			continue
		}
		if !containsAny(trimmed, workKeywords) {
			continue
		}
		exp = append(exp, model.Experience{
			Role:     trimmed,
			Year:     maxYear(trimmed),
			Duration: len(trimmed)%4 + 1,
		})
		if len(exp) == maxExperienceEntries {
			break
		}
	}
	return exp
}
