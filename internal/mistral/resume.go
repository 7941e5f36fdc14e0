package mistral

import (
	"context"

	"github.com/quantumcareers/backend/pkg/model"
)

// maxResumeChars bounds the resume text sent to the model.
const maxResumeChars = 20000

const resumeSystemPrompt = "You are an expert resume parser. Extract a concise JSON with keys: " +
	"tech_stacks (string array), education (array of {description, year:int|null}), " +
	"work_experience (array of {role, year:int|null, duration:int months or years if clear}). " +
	"Only output JSON and keep arrays short and relevant."

// ResumeFacts is the shape-normalized extraction result. Fields degrade to
// empty slices rather than failing when the model reply is loosely shaped.
type ResumeFacts struct {
	TechStacks     []string
	Education      []model.Education
	WorkExperience []model.Experience
}

// ExtractResume asks the model for structured resume insights. An error means
// the caller should fall back to the heuristic parser.
func (c *Client) ExtractResume(ctx context.Context, text string) (*ResumeFacts, error) {
	if len(text) > maxResumeChars {
		text = text[:maxResumeChars]
	}

	data, err := c.ChatJSON(ctx, ChatRequest{
		Messages: []map[string]string{
			{"role": "system", "content": resumeSystemPrompt},
			{"role": "user", "content": text},
		},
		MaxTokens:   1200,
		Temperature: 0.2,
	})
	if err != nil {
		return nil, err
	}

	// Accept either key name for each logical field.
	tech := asList(data["tech_stacks"])
	if tech == nil {
		tech = asList(data["skills"])
	}
	exp := asList(data["work_experience"])
	if exp == nil {
		exp = asList(data["experience"])
	}

	facts := &ResumeFacts{
		TechStacks:     make([]string, 0, len(tech)),
		Education:      make([]model.Education, 0),
		WorkExperience: make([]model.Experience, 0),
	}
	for _, t := range tech {
		if s := asString(t); s != "" {
			facts.TechStacks = append(facts.TechStacks, s)
		}
	}
	for _, e := range asList(data["education"]) {
		entry, ok := e.(map[string]any)
		if !ok {
			continue
		}
		edu := model.Education{Description: asString(entry["description"])}
		if y, ok := asInt(entry["year"]); ok {
			edu.Year = &y
		}
		facts.Education = append(facts.Education, edu)
	}
	for _, e := range exp {
		entry, ok := e.(map[string]any)
		if !ok {
			continue
		}
		w := model.Experience{Role: asString(entry["role"])}
		if y, ok := asInt(entry["year"]); ok {
			w.Year = &y
		}
		if d, ok := asInt(entry["duration"]); ok {
			w.Duration = d
		}
		facts.WorkExperience = append(facts.WorkExperience, w)
	}

	return facts, nil
}
