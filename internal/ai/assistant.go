package ai

import (
	"context"

	"github.com/ArifBabayev05/cvibes/internal/cvibes"
)

// MatchAssessment is the provider's verdict on how well a candidate fits a
// vacancy. Score is a percentage in [0, 100].
type MatchAssessment struct {
	Score  float64
	Reason string
	Raw    string
}

type Matcher interface {
	Evaluate(ctx context.Context, vacancy string, candidate *cvibes.Candidate) (*MatchAssessment, error)
}
