package repository

import (
	"context"

	"influencer-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	Create(ctx context.Context, opt CreateOptions) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByEmailAndType(ctx context.Context, opt GetByEmailAndTypeOptions) (model.User, error)
	GetByID(ctx context.Context, id string) (model.User, error)
	CountByType(ctx context.Context, userType model.UserType) (int, error)
	UpdateFBToken(ctx context.Context, opt UpdateFBTokenOptions) error
}
