package sentiment

import (
	"fmt"
	"strings"

	csentiment "github.com/cdipaolo/sentiment"
)

type analyzerImpl struct {
	model csentiment.Models
}

// New restores the pre-trained sentiment model.
func New() (IAnalyzer, error) {
	model, err := csentiment.Restore()
	if err != nil {
		return nil, fmt.Errorf("sentiment: failed to restore model: %w", err)
	}
	return &analyzerImpl{model: model}, nil
}

func (a *analyzerImpl) IsPositive(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		// Empty text carries no signal; count it as non-negative.
		return true
	}
	analysis := a.model.SentimentAnalysis(text, csentiment.English)
	return analysis.Score == 1
}

func (a *analyzerImpl) Polarity(text string) float64 {
	if a.IsPositive(text) {
		return 1
	}
	return -1
}
