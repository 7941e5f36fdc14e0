// Package catalog holds the fixed reference data: the demo job postings and
// the supported target-role requirements. Both are read-only for the process
// lifetime.
package catalog

import (
	"github.com/quantumcareers/backend/pkg/model"
)

// Jobs is the demo quantum-career job catalog.
var Jobs = []model.JobPosting{
	{
		ID:              "qjob1",
		Title:           "Quantum Software Engineer",
		Company:         "IBM Quantum",
		Description:     "Develop quantum algorithms and software solutions",
		RequiredSkills:  []string{"Python", "Qiskit", "Machine Learning", "Linear Algebra", "Quantum Computing"},
		ExperienceYears: 3,
		SalaryRange:     "$120k - $180k",
	},
	{
		ID:              "qjob2",
		Title:           "Quantum Research Scientist",
		Company:         "Google Quantum AI",
		Description:     "Research quantum algorithms and quantum advantage",
		RequiredSkills:  []string{"Physics", "Python", "C++", "Mathematics", "Research", "Quantum Computing"},
		ExperienceYears: 5,
		SalaryRange:     "$150k - $220k",
	},
	{
		ID:              "qjob3",
		Title:           "Quantum Applications Developer",
		Company:         "Rigetti Computing",
		Description:     "Build quantum applications for real-world problems",
		RequiredSkills:  []string{"Python", "JavaScript", "Quantum Computing", "Cloud Computing", "APIs"},
		ExperienceYears: 2,
		SalaryRange:     "$100k - $150k",
	},
	{
		ID:              "qjob4",
		Title:           "Quantum Hardware Engineer",
		Company:         "IonQ",
		Description:     "Design and optimize quantum hardware systems",
		RequiredSkills:  []string{"Physics", "Electronics", "Python", "MATLAB", "Quantum Computing"},
		ExperienceYears: 4,
		SalaryRange:     "$130k - $190k",
	},
	{
		ID:              "qjob5",
		Title:           "Quantum Product Manager",
		Company:         "Amazon Braket",
		Description:     "Lead quantum computing product development",
		RequiredSkills:  []string{"Product Management", "Quantum Computing", "Business Strategy", "Python", "Communication"},
		ExperienceYears: 6,
		SalaryRange:     "$140k - $200k",
	},
}

// RoleRequirements maps each supported target role to what it expects.
var RoleRequirements = map[string]model.RoleRequirement{
	"Quantum Software Engineer": {
		RequiredSkills:  []string{"Python", "Qiskit", "Linear Algebra", "Quantum Computing", "Git"},
		PreferredSkills: []string{"C++", "Machine Learning", "Cloud Computing"},
		MinExperience:   2,
		Education:       "Bachelor's in Computer Science, Physics, or related field",
	},
	"Quantum Research Scientist": {
		RequiredSkills:  []string{"Physics", "Mathematics", "Python", "Research", "Quantum Computing"},
		PreferredSkills: []string{"Machine Learning", "Statistics", "MATLAB"},
		MinExperience:   4,
		Education:       "PhD in Physics, Computer Science, or related field",
	},
	"Quantum Applications Developer": {
		RequiredSkills:  []string{"Python", "JavaScript", "APIs", "Software Development", "Quantum Computing"},
		PreferredSkills: []string{"React", "FastAPI", "Cloud Platforms"},
		MinExperience:   1,
		Education:       "Bachelor's in Computer Science or related field",
	},
}
