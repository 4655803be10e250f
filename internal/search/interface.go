package search

import (
	"context"

	"influencer-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Search runs the staged planner: select keys, pull candidates, ask the
	// oracle for matching ids, resolve the ids against the store.
	Search(ctx context.Context, sc model.Scope, input SearchInput) (SearchOutput, error)

	// Filter runs the whole-object mode: candidates go to the oracle in full
	// and its filtered array is the answer.
	Filter(ctx context.Context, sc model.Scope, input SearchInput) (FilterOutput, error)
}
