package influencer

import (
	"context"

	"influencer-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Upsert(ctx context.Context, input UpsertInput) (model.InfluencerProfile, error)
	GetByID(ctx context.Context, sc model.Scope, id string) (model.InfluencerProfile, error)
	GetByCreator(ctx context.Context, sc model.Scope, input GetByCreatorInput) ([]model.InfluencerProfile, error)
	TopEngagement(ctx context.Context, sc model.Scope, input TopEngagementInput) ([]model.InfluencerProfile, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
