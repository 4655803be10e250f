package user

import (
	"context"

	"influencer-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Signup(ctx context.Context, input SignupInput) (SignupOutput, error)
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
	Stats(ctx context.Context, sc model.Scope) (StatsOutput, error)
	ExchangeFBCode(ctx context.Context, input ExchangeFBCodeInput) (ExchangeFBCodeOutput, error)
}
