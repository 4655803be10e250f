package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"influencer-srv/internal/influencer"
	"influencer-srv/internal/influencer/repository"
	"influencer-srv/internal/model"
)

// profileUpdatedEvent is published after each successful upsert.
type profileUpdatedEvent struct {
	Event      string   `json:"event"`
	ProfileID  string   `json:"profile_id"`
	Platform   string   `json:"platform"`
	PlatformID string   `json:"platform_id"`
	Overall    *float64 `json:"overall_score,omitempty"`
}

// Upsert persists a fetched profile snapshot and publishes a profile.updated
// event. Publishing failures are logged, not propagated.
func (uc *implUseCase) Upsert(ctx context.Context, input influencer.UpsertInput) (model.InfluencerProfile, error) {
	if !input.Profile.Platform.IsValid() {
		return model.InfluencerProfile{}, influencer.ErrInvalidPlatform
	}

	saved, err := uc.repo.Upsert(ctx, repository.UpsertOptions{Profile: input.Profile})
	if err != nil {
		uc.l.Errorf(ctx, "influencer.usecase.Upsert: repo upsert: %v", err)
		return model.InfluencerProfile{}, influencer.ErrStoreFailed
	}

	uc.publishProfileUpdated(ctx, saved)

	return saved, nil
}

// GetByID returns one non-deleted profile.
func (uc *implUseCase) GetByID(ctx context.Context, sc model.Scope, id string) (model.InfluencerProfile, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.InfluencerProfile{}, influencer.ErrProfileNotFound
		}
		uc.l.Errorf(ctx, "influencer.usecase.GetByID: %v", err)
		return model.InfluencerProfile{}, influencer.ErrStoreFailed
	}
	return p, nil
}

// GetByCreator returns a creator's profiles on one platform.
func (uc *implUseCase) GetByCreator(ctx context.Context, sc model.Scope, input influencer.GetByCreatorInput) ([]model.InfluencerProfile, error) {
	if input.CreatorID == "" {
		return nil, influencer.ErrCreatorRequired
	}
	if !input.Platform.IsValid() {
		return nil, influencer.ErrInvalidPlatform
	}

	profiles, err := uc.repo.ListByCreator(ctx, repository.ListByCreatorOptions{
		CreatorID: input.CreatorID,
		Platform:  input.Platform,
	})
	if err != nil {
		uc.l.Errorf(ctx, "influencer.usecase.GetByCreator: %v", err)
		return nil, influencer.ErrStoreFailed
	}
	return profiles, nil
}

// TopEngagement lists the platform's highest-engagement profiles.
func (uc *implUseCase) TopEngagement(ctx context.Context, sc model.Scope, input influencer.TopEngagementInput) ([]model.InfluencerProfile, error) {
	if !input.Platform.IsValid() {
		return nil, influencer.ErrInvalidPlatform
	}

	limit := input.Limit
	if limit <= 0 {
		limit = influencer.DefaultTopLimit
	}
	if limit > influencer.MaxTopLimit {
		limit = influencer.MaxTopLimit
	}

	profiles, err := uc.repo.TopEngagement(ctx, repository.TopEngagementOptions{
		Platform: input.Platform,
		Limit:    limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "influencer.usecase.TopEngagement: %v", err)
		return nil, influencer.ErrStoreFailed
	}
	return profiles, nil
}

// Delete soft-deletes a profile.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return influencer.ErrProfileNotFound
		}
		uc.l.Errorf(ctx, "influencer.usecase.Delete: %v", err)
		return influencer.ErrStoreFailed
	}
	return nil
}

func (uc *implUseCase) publishProfileUpdated(ctx context.Context, p model.InfluencerProfile) {
	if uc.producer == nil {
		return
	}

	event := profileUpdatedEvent{
		Event:      "profile.updated",
		ProfileID:  p.ID,
		Platform:   string(p.Platform),
		PlatformID: p.PlatformID,
	}
	if p.Metrics != nil {
		event.Overall = p.Metrics.OverallScore
	}

	payload, err := json.Marshal(event)
	if err != nil {
		uc.l.Errorf(ctx, "influencer.usecase.publishProfileUpdated: marshal: %v", err)
		return
	}
	if err := uc.producer.Publish([]byte(p.ID), payload); err != nil {
		uc.l.Warnf(ctx, "influencer.usecase.publishProfileUpdated: publish: %v", err)
	}
}
