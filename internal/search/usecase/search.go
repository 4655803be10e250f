package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	infRepo "influencer-srv/internal/influencer/repository"
	"influencer-srv/internal/model"
	"influencer-srv/internal/search"
)

// Search - Main planner flow
// Flow: check cache → select keys → pull candidates → oracle picks ids → resolve ids → cache → return
func (uc *implUseCase) Search(ctx context.Context, sc model.Scope, input search.SearchInput) (search.SearchOutput, error) {
	startTime := time.Now()

	if err := uc.validateInput(input); err != nil {
		return search.SearchOutput{}, err
	}

	// Step 1: Check Search Results Cache
	key := cacheKey("ids", input.Query)
	if cachedData, err := uc.cacheRepo.GetSearchResults(ctx, key); err == nil && cachedData != nil {
		var cached search.SearchOutput
		if err := json.Unmarshal(cachedData, &cached); err == nil {
			cached.CacheHit = true
			cached.ProcessingTimeMs = time.Since(startTime).Milliseconds()
			uc.l.Debugf(ctx, "search.usecase.Search: cache hit for key %s", key)
			return cached, nil
		}
	}

	// Step 2: Select the field paths the query needs
	keys := uc.selectKeys(ctx, input.Query)

	// Step 3: Pull candidate rows (non-deleted, posts flattened, sorted by engagement)
	candidates, err := uc.profileRepo.Candidates(ctx, infRepo.CandidatesOptions{
		Keys:  keys,
		Limit: uc.cfg.CandidateLimit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "search.usecase.Search: candidate retrieval failed: %v", err)
		return search.SearchOutput{}, fmt.Errorf("%w: %v", search.ErrSearchFailed, err)
	}

	// Step 4: Oracle resolves relevance to an id set
	ids, err := uc.matchIDs(ctx, candidates, input.Query)
	if err != nil {
		uc.l.Errorf(ctx, "search.usecase.Search: id matching failed: %v", err)
		return search.SearchOutput{}, fmt.Errorf("%w: %v", search.ErrOracleFailed, err)
	}

	// Step 5: Resolve ids against the store (soft-deleted rows stay excluded)
	var profiles []model.InfluencerProfile
	if len(ids) > 0 {
		profiles, err = uc.profileRepo.GetByIDs(ctx, ids)
		if err != nil {
			uc.l.Errorf(ctx, "search.usecase.Search: id resolution failed: %v", err)
			return search.SearchOutput{}, fmt.Errorf("%w: %v", search.ErrSearchFailed, err)
		}
	}

	output := search.SearchOutput{
		Profiles:         profiles,
		SelectedKeys:     keys,
		Total:            len(profiles),
		ProcessingTimeMs: time.Since(startTime).Milliseconds(),
	}

	// Step 6: Cache the result (best effort)
	if data, err := json.Marshal(output); err == nil {
		if err := uc.cacheRepo.SaveSearchResults(ctx, key, data); err != nil {
			uc.l.Warnf(ctx, "search.usecase.Search: failed to cache results: %v", err)
		}
	}

	return output, nil
}

// Filter - Whole-object mode
// The oracle receives the full candidate rows and its filtered array is the answer.
func (uc *implUseCase) Filter(ctx context.Context, sc model.Scope, input search.SearchInput) (search.FilterOutput, error) {
	startTime := time.Now()

	if err := uc.validateInput(input); err != nil {
		return search.FilterOutput{}, err
	}

	key := cacheKey("filter", input.Query)
	if cachedData, err := uc.cacheRepo.GetSearchResults(ctx, key); err == nil && cachedData != nil {
		var cached search.FilterOutput
		if err := json.Unmarshal(cachedData, &cached); err == nil {
			cached.CacheHit = true
			cached.ProcessingTimeMs = time.Since(startTime).Milliseconds()
			uc.l.Debugf(ctx, "search.usecase.Filter: cache hit for key %s", key)
			return cached, nil
		}
	}

	keys := uc.selectKeys(ctx, input.Query)

	candidates, err := uc.profileRepo.Candidates(ctx, infRepo.CandidatesOptions{
		Keys:  keys,
		Limit: uc.cfg.CandidateLimit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "search.usecase.Filter: candidate retrieval failed: %v", err)
		return search.FilterOutput{}, fmt.Errorf("%w: %v", search.ErrSearchFailed, err)
	}

	results, err := uc.filterObjects(ctx, candidates, input.Query)
	if err != nil {
		uc.l.Errorf(ctx, "search.usecase.Filter: object filtering failed: %v", err)
		return search.FilterOutput{}, fmt.Errorf("%w: %v", search.ErrOracleFailed, err)
	}

	output := search.FilterOutput{
		Results:          results,
		Total:            len(results),
		ProcessingTimeMs: time.Since(startTime).Milliseconds(),
	}

	if data, err := json.Marshal(output); err == nil {
		if err := uc.cacheRepo.SaveSearchResults(ctx, key, data); err != nil {
			uc.l.Warnf(ctx, "search.usecase.Filter: failed to cache results: %v", err)
		}
	}

	return output, nil
}

func (uc *implUseCase) validateInput(input search.SearchInput) error {
	if input.Query == "" {
		return search.ErrQueryRequired
	}
	if len(input.Query) > uc.cfg.MaxQueryLength {
		return search.ErrQueryTooLong
	}
	return nil
}
