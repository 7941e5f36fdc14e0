// Package assessment produces quiz question sets. The LLM path is optional;
// a hand-authored fallback bank guarantees a test session can always start.
package assessment

import (
	"context"

	"go.uber.org/zap"

	"github.com/quantumcareers/backend/internal/mistral"
	"github.com/quantumcareers/backend/pkg/model"
)

const (
	defaultMCQCount    = 3
	defaultCodingCount = 2
)

// MCQFallback is the fixed multiple-choice bank.
var MCQFallback = []model.MCQQuestion{
	{
		ID:            "mcq1",
		Question:      "What is the basic unit of quantum information?",
		Options:       []string{"Bit", "Byte", "Qubit", "Gate"},
		CorrectAnswer: 2,
		Category:      "quantum_basics",
		Difficulty:    "easy",
	},
	{
		ID:            "mcq2",
		Question:      "Which principle allows quantum computers to process multiple states simultaneously?",
		Options:       []string{"Entanglement", "Superposition", "Decoherence", "Interference"},
		CorrectAnswer: 1,
		Category:      "quantum_basics",
		Difficulty:    "medium",
	},
	{
		ID:            "mcq3",
		Question:      "Which quantum gate creates superposition from |0⟩?",
		Options:       []string{"Pauli-X", "Pauli-Z", "Hadamard", "CNOT"},
		CorrectAnswer: 2,
		Category:      "quantum_gates",
		Difficulty:    "medium",
	},
}

// CodingFallback is the fixed coding-question bank.
var CodingFallback = []model.CodingQuestion{
	{
		ID:       "code1",
		Question: "Write a Python function that calculates the factorial of a number recursively.",
		Template: "def factorial(n):\n    # Your code here\n    pass",
		TestCases: []model.TestCase{
			{Input: 5, Expected: 120},
			{Input: 0, Expected: 1},
			{Input: 3, Expected: 6},
		},
		Category:   "programming",
		Difficulty: "easy",
	},
	{
		ID:       "code2",
		Question: "Implement a function to check if a string is a palindrome (ignore case and spaces).",
		Template: "def is_palindrome(s):\n    # Your code here\n    pass",
		TestCases: []model.TestCase{
			{Input: "A man a plan a canal Panama", Expected: true},
			{Input: "race a car", Expected: false},
			{Input: "Madam", Expected: true},
		},
		Category:   "programming",
		Difficulty: "medium",
	},
}

// Generator builds question sets for new test sessions.
type Generator struct {
	llm *mistral.Client
	log *zap.Logger
}

func NewGenerator(llm *mistral.Client, log *zap.Logger) *Generator {
	return &Generator{llm: llm, log: log}
}

// Generate returns a quiz. It never fails: any problem on the LLM path is
// logged and the fallback bank is substituted.
func (g *Generator) Generate(ctx context.Context) ([]model.MCQQuestion, []model.CodingQuestion) {
	if !g.llm.Enabled() {
		return MCQFallback, CodingFallback
	}

	set, err := g.llm.GenerateQuestions(ctx, defaultMCQCount, defaultCodingCount)
	if err != nil {
		g.log.Sugar().Warnw("question generation failed, using fallback", "err", err)
		return MCQFallback, CodingFallback
	}
	return set.MCQ, set.Coding
}
