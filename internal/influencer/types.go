package influencer

import "influencer-srv/internal/model"

const (
	// DefaultTopLimit is the default size of top-engagement listings.
	DefaultTopLimit = 5
	// MaxTopLimit bounds top-engagement listings.
	MaxTopLimit = 50
)

// UpsertInput carries a freshly fetched profile snapshot.
type UpsertInput struct {
	Profile model.InfluencerProfile
}

// GetByCreatorInput selects profiles owned by a user on one platform.
type GetByCreatorInput struct {
	CreatorID string
	Platform  model.Platform
}

// TopEngagementInput selects the highest-engagement profiles of a platform.
type TopEngagementInput struct {
	Platform model.Platform
	Limit    int
}
