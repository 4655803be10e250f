package usecase

import (
	"influencer-srv/internal/influencer"
	"influencer-srv/internal/influencer/repository"
	"influencer-srv/pkg/kafka"
	"influencer-srv/pkg/log"
)

// implUseCase - Implementation of the UseCase interface
type implUseCase struct {
	repo     repository.PostgresRepository
	producer kafka.IProducer
	l        log.Logger
}

// New - Factory function. producer may be nil when event publishing is
// disabled.
func New(repo repository.PostgresRepository, producer kafka.IProducer, l log.Logger) influencer.UseCase {
	return &implUseCase{
		repo:     repo,
		producer: producer,
		l:        l,
	}
}
