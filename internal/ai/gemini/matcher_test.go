package gemini

import (
	"context"
	"strings"
	"testing"

	"github.com/ArifBabayev05/cvibes/internal/cvibes"
	"go.uber.org/zap"
)

type stubGenerator struct {
	response   string
	err        error
	lastSystem string
	lastPrompt string
}

func (s *stubGenerator) GenerateContent(_ context.Context, system, message string) (string, error) {
	s.lastSystem = system
	s.lastPrompt = message
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func testCandidate() *cvibes.Candidate {
	return &cvibes.Candidate{
		ID:     "c1",
		Name:   "Jane Doe",
		Skills: []string{"Go", "PostgreSQL"},
		Status: cvibes.StatusCompleted,
	}
}

func TestMatcherEvaluate(t *testing.T) {
	stub := &stubGenerator{response: `{"score": 87, "reason": "Strong Go overlap"}`}
	matcher := NewMatcher(stub, 0, zap.NewNop())

	assessment, err := matcher.Evaluate(context.Background(), "Go developer wanted", testCandidate())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if assessment.Score != 87 {
		t.Fatalf("expected score 87, got %v", assessment.Score)
	}
	if assessment.Reason != "Strong Go overlap" {
		t.Fatalf("unexpected reason: %q", assessment.Reason)
	}
	if assessment.Raw == "" {
		t.Fatal("expected raw response to be preserved")
	}

	if !strings.Contains(stub.lastPrompt, "Go developer wanted") {
		t.Fatal("prompt should contain the vacancy description")
	}
	if !strings.Contains(stub.lastPrompt, "Jane Doe") {
		t.Fatal("prompt should contain the candidate record")
	}
	if stub.lastSystem == "" {
		t.Fatal("expected a system instruction")
	}
}

func TestMatcherParsesFencedResponse(t *testing.T) {
	stub := &stubGenerator{response: "```json\n{\"score\": \"92.5\", \"reason\": \"fits\"}\n```"}
	matcher := NewMatcher(stub, 0, zap.NewNop())

	assessment, err := matcher.Evaluate(context.Background(), "vacancy", testCandidate())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if assessment.Score != 92.5 {
		t.Fatalf("expected score 92.5, got %v", assessment.Score)
	}
}

func TestMatcherClampsScore(t *testing.T) {
	tests := []struct {
		name     string
		response string
		expect   float64
	}{
		{name: "above range", response: `{"score": 140}`, expect: 100},
		{name: "below range", response: `{"score": -3}`, expect: 0},
		{name: "missing score", response: `{"reason": "no idea"}`, expect: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matcher := NewMatcher(&stubGenerator{response: tt.response}, 0, zap.NewNop())

			assessment, err := matcher.Evaluate(context.Background(), "vacancy", testCandidate())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if assessment.Score != tt.expect {
				t.Fatalf("expected %v, got %v", tt.expect, assessment.Score)
			}
		})
	}
}

func TestMatcherRejectsInvalidJSON(t *testing.T) {
	matcher := NewMatcher(&stubGenerator{response: "the candidate looks fine to me"}, 0, zap.NewNop())

	if _, err := matcher.Evaluate(context.Background(), "vacancy", testCandidate()); err == nil {
		t.Fatal("expected an error for a non-JSON response")
	}
}

func TestMatcherRequiresVacancyAndCandidate(t *testing.T) {
	matcher := NewMatcher(&stubGenerator{response: `{"score": 1}`}, 0, zap.NewNop())

	if _, err := matcher.Evaluate(context.Background(), "  ", testCandidate()); err == nil {
		t.Fatal("expected an error for an empty vacancy")
	}
	if _, err := matcher.Evaluate(context.Background(), "vacancy", nil); err == nil {
		t.Fatal("expected an error for a nil candidate")
	}
}
