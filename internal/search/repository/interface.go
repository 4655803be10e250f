package repository

import (
	"context"

	infRepo "influencer-srv/internal/influencer/repository"
	"influencer-srv/internal/model"
)

// ProfileRepository is the slice of the influencer store the planner needs.
// The influencer postgre repository satisfies it.
//
//go:generate mockery --name ProfileRepository
type ProfileRepository interface {
	Candidates(ctx context.Context, opt infRepo.CandidatesOptions) ([]infRepo.Candidate, error)
	GetByIDs(ctx context.Context, ids []string) ([]model.InfluencerProfile, error)
}

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	GetSearchResults(ctx context.Context, cacheKey string) ([]byte, error)
	SaveSearchResults(ctx context.Context, cacheKey string, data []byte) error
}
