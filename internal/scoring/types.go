package scoring

import (
	"math"

	"influencer-srv/internal/model"
)

// Aggregate is the normalized per-platform input to the metric calculators:
// a follower count and the fetched posts in source order.
type Aggregate struct {
	Followers int
	Posts     []model.PostStats
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func ptr(v float64) *float64 {
	return &v
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
