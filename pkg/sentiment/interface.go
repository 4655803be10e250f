package sentiment

// IAnalyzer classifies short text sentiment.
// Implementations are safe for concurrent use.
type IAnalyzer interface {
	// IsPositive reports whether the text reads as non-negative.
	IsPositive(text string) bool

	// Polarity maps the classification to -1.0 or +1.0.
	Polarity(text string) float64
}
