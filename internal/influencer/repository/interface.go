package repository

import (
	"context"

	"influencer-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	Upsert(ctx context.Context, opt UpsertOptions) (model.InfluencerProfile, error)
	GetByID(ctx context.Context, id string) (model.InfluencerProfile, error)
	GetByIDs(ctx context.Context, ids []string) ([]model.InfluencerProfile, error)
	ListByCreator(ctx context.Context, opt ListByCreatorOptions) ([]model.InfluencerProfile, error)
	TopEngagement(ctx context.Context, opt TopEngagementOptions) ([]model.InfluencerProfile, error)
	Candidates(ctx context.Context, opt CandidatesOptions) ([]Candidate, error)
	SoftDelete(ctx context.Context, id string) error
}
