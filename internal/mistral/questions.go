package mistral

import (
	"context"
	"fmt"

	"github.com/quantumcareers/backend/pkg/model"
)

const questionSystemPrompt = "You generate short, challenging assessments for quantum & software roles. Output strict JSON with keys: " +
	"mcq_questions (array of {id, question, options[4], correct_answer:index, category, difficulty}), " +
	"coding_questions (array of {id, question, template, test_cases:array, category, difficulty})."

// maxOptions caps how many answer options a generated MCQ may carry.
const maxOptions = 6

// QuestionSet is a normalized, validated batch of generated questions.
type QuestionSet struct {
	MCQ    []model.MCQQuestion
	Coding []model.CodingQuestion
}

// GenerateQuestions asks the model for a quiz and normalizes it into our
// schema. An error means the caller should use the fallback bank.
func (c *Client) GenerateQuestions(ctx context.Context, nMCQ, nCoding int) (*QuestionSet, error) {
	userPrompt := fmt.Sprintf(
		"Create %d MCQs and %d coding questions. MCQs must include 'options' and 'correct_answer' as index. "+
			"Coding must include short 'template' and a few 'test_cases' with 'input' and 'expected'.",
		nMCQ, nCoding)

	data, err := c.ChatJSON(ctx, ChatRequest{
		Messages: []map[string]string{
			{"role": "system", "content": questionSystemPrompt},
			{"role": "user", "content": userPrompt},
		},
		MaxTokens:   1400,
		Temperature: 0.4,
	})
	if err != nil {
		return nil, err
	}

	set := &QuestionSet{}
	for i, raw := range asList(data["mcq_questions"]) {
		if len(set.MCQ) == nMCQ {
			break
		}
		q, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		mcq, err := normalizeMCQ(i, q)
		if err != nil {
			return nil, err
		}
		set.MCQ = append(set.MCQ, mcq)
	}
	for i, raw := range asList(data["coding_questions"]) {
		if len(set.Coding) == nCoding {
			break
		}
		q, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		set.Coding = append(set.Coding, normalizeCoding(i, q))
	}

	if len(set.MCQ) == 0 || len(set.Coding) == 0 {
		return nil, fmt.Errorf("empty questions from model")
	}
	return set, nil
}

// normalizeMCQ fills defaults and synthesizes a positional id. A missing or
// non-numeric correct_answer rejects the item: the field is required, and a
// rejected item fails the whole set so the fallback bank is used instead.
func normalizeMCQ(i int, q map[string]any) (model.MCQQuestion, error) {
	options := make([]string, 0, maxOptions)
	for _, o := range asList(q["options"]) {
		if len(options) == maxOptions {
			break
		}
		options = append(options, asString(o))
	}
	if len(options) == 0 {
		return model.MCQQuestion{}, fmt.Errorf("mcq %d has no options", i+1)
	}

	correct, ok := asInt(q["correct_answer"])
	if !ok {
		return model.MCQQuestion{}, fmt.Errorf("mcq %d has no usable correct_answer", i+1)
	}

	return model.MCQQuestion{
		ID:            stringOr(q, "id", fmt.Sprintf("mcq%d", i+1)),
		Question:      asString(q["question"]),
		Options:       options,
		CorrectAnswer: correct,
		Category:      stringOr(q, "category", "general"),
		Difficulty:    stringOr(q, "difficulty", "medium"),
	}, nil
}

func normalizeCoding(i int, q map[string]any) model.CodingQuestion {
	question := asString(q["question"])
	if question == "" {
		question = asString(q["prompt"])
	}

	var cases []model.TestCase
	for _, raw := range asList(q["test_cases"]) {
		if tc, ok := raw.(map[string]any); ok {
			cases = append(cases, model.TestCase{Input: tc["input"], Expected: tc["expected"]})
		}
	}

	return model.CodingQuestion{
		ID:         stringOr(q, "id", fmt.Sprintf("code%d", i+1)),
		Question:   question,
		Template:   asString(q["template"]),
		TestCases:  cases,
		Category:   stringOr(q, "category", "programming"),
		Difficulty: stringOr(q, "difficulty", "medium"),
	}
}
