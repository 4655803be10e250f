package repository

import "influencer-srv/internal/model"

// UpsertOptions carries a whole profile snapshot. The row is matched on
// (platform, platform_id); an existing row is overwritten wholesale.
type UpsertOptions struct {
	Profile model.InfluencerProfile
}

// ListByCreatorOptions selects non-deleted profiles owned by a creator.
type ListByCreatorOptions struct {
	CreatorID string
	Platform  model.Platform
}

// TopEngagementOptions selects non-deleted profiles of a platform ordered by
// engagement rate.
type TopEngagementOptions struct {
	Platform model.Platform
	Limit    int
}

// CandidatesOptions shapes the candidate retrieval feeding the query planner:
// non-deleted profiles with posts flattened one row per post, sorted by
// engagement rate descending, projected down to Keys.
type CandidatesOptions struct {
	Keys  []string
	Limit int
}

// Candidate is one flattened, projected candidate row. Keys use the schema
// field-path notation ("metrics.engagement_rate_per_post", "posts.title");
// "_id" holds the plain profile id string.
type Candidate map[string]any
